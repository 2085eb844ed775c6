package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/irlquest-backend/internal/infrastructure/http/middleware"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/interfaces"
	apperrors "github.com/wekeepgrowing/irlquest-backend/pkg/errors"
)

const dateLayout = "2006-01-02"

// StatsHandler 일일/주간 활동 통계 HTTP 핸들러
type StatsHandler struct {
	logger       *zap.Logger
	statsUseCase interfaces.StatsUseCase
}

// NewStatsHandler 통계 핸들러 생성
func NewStatsHandler(logger *zap.Logger, statsUseCase interfaces.StatsUseCase) *StatsHandler {
	return &StatsHandler{
		logger:       logger,
		statsUseCase: statsUseCase,
	}
}

// Today handles GET /api/v1/stats/today
func (h *StatsHandler) Today(c echo.Context) error {
	actor, err := middleware.GetUserFromContext(c)
	if err != nil {
		return err
	}

	stats, err := h.statsUseCase.Today(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDailyStatsResponse(stats))
}

// Daily handles GET /api/v1/stats/daily/:date
func (h *StatsHandler) Daily(c echo.Context) error {
	actor, err := middleware.GetUserFromContext(c)
	if err != nil {
		return err
	}

	date, err := parseDateParam(c, "date")
	if err != nil {
		return err
	}

	stats, err := h.statsUseCase.Daily(c.Request().Context(), actor, date)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDailyStatsResponse(stats))
}

// CurrentWeek handles GET /api/v1/stats/weekly
func (h *StatsHandler) CurrentWeek(c echo.Context) error {
	actor, err := middleware.GetUserFromContext(c)
	if err != nil {
		return err
	}

	weekly, err := h.statsUseCase.CurrentWeek(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toWeeklyStatsResponse(weekly))
}

// Weekly handles GET /api/v1/stats/weekly/:week_start
func (h *StatsHandler) Weekly(c echo.Context) error {
	actor, err := middleware.GetUserFromContext(c)
	if err != nil {
		return err
	}

	weekStart, err := parseDateParam(c, "week_start")
	if err != nil {
		return err
	}

	weekly, err := h.statsUseCase.Weekly(c.Request().Context(), actor, weekStart)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toWeeklyStatsResponse(weekly))
}

// Summary handles GET /api/v1/stats/summary
func (h *StatsHandler) Summary(c echo.Context) error {
	actor, err := middleware.GetUserFromContext(c)
	if err != nil {
		return err
	}

	summary, err := h.statsUseCase.Summary(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}

func parseDateParam(c echo.Context, name string) (time.Time, error) {
	date, err := time.Parse(dateLayout, c.Param(name))
	if err != nil {
		return time.Time{}, apperrors.InvalidArgument("날짜 형식은 YYYY-MM-DD 입니다: " + name)
	}
	return date, nil
}
