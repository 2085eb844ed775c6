package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/irlquest-backend/internal/infrastructure/http/middleware"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/dto"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/interfaces"
	apperrors "github.com/wekeepgrowing/irlquest-backend/pkg/errors"
)

// StartFocusSessionRequest 집중 세션 시작 요청
type StartFocusSessionRequest struct {
	TaskID          *string `json:"task_id"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,min=1,max=480"`
	SessionType     string  `json:"session_type" validate:"omitempty,oneof=work break"`
	Notes           string  `json:"notes" validate:"max=2000"`
}

// UpdateFocusSessionRequest 집중 세션 수정 요청
type UpdateFocusSessionRequest struct {
	ActualDurationMinutes *int    `json:"actual_duration_minutes" validate:"omitempty,min=1,max=480"`
	Notes                 *string `json:"notes" validate:"omitempty,max=2000"`
	Interruptions         *int    `json:"interruptions" validate:"omitempty,min=0"`
	ProductivityRating    *int    `json:"productivity_rating" validate:"omitempty,min=1,max=5"`
}

// EndFocusSessionRequest 세션 종료 요청. 본문은 비어 있어도 됩니다.
type EndFocusSessionRequest struct {
	ActualDuration     *int `json:"actual_duration" validate:"omitempty,min=1,max=480"`
	ProductivityRating *int `json:"productivity_rating" validate:"omitempty,min=1,max=5"`
}

// FocusHandler 집중 세션 HTTP 핸들러
type FocusHandler struct {
	logger       *zap.Logger
	focusUseCase interfaces.FocusSessionUseCase
}

// NewFocusHandler 집중 세션 핸들러 생성
func NewFocusHandler(logger *zap.Logger, focusUseCase interfaces.FocusSessionUseCase) *FocusHandler {
	return &FocusHandler{
		logger:       logger,
		focusUseCase: focusUseCase,
	}
}

// Start handles POST /api/v1/focus-sessions
func (h *FocusHandler) Start(c echo.Context) error {
	actor, err := middleware.GetUserFromContext(c)
	if err != nil {
		return err
	}

	var req StartFocusSessionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	session, err := h.focusUseCase.Start(c.Request().Context(), actor, dto.StartFocusSessionParams{
		TaskID:          req.TaskID,
		DurationMinutes: req.DurationMinutes,
		SessionType:     req.SessionType,
		Notes:           req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toFocusSessionResponse(session))
}

// List handles GET /api/v1/focus-sessions
func (h *FocusHandler) List(c echo.Context) error {
	actor, err := middleware.GetUserFromContext(c)
	if err != nil {
		return err
	}

	limit := 0
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			return apperrors.InvalidArgument("잘못된 limit 파라미터입니다")
		}
	}

	sessions, err := h.focusUseCase.List(c.Request().Context(), actor, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toFocusSessionResponses(sessions))
}

// Get handles GET /api/v1/focus-sessions/:id
func (h *FocusHandler) Get(c echo.Context) error {
	actor, err := middleware.GetUserFromContext(c)
	if err != nil {
		return err
	}

	session, err := h.focusUseCase.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toFocusSessionResponse(session))
}

// Update handles PUT /api/v1/focus-sessions/:id
func (h *FocusHandler) Update(c echo.Context) error {
	actor, err := middleware.GetUserFromContext(c)
	if err != nil {
		return err
	}

	var req UpdateFocusSessionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	session, err := h.focusUseCase.Update(c.Request().Context(), actor, c.Param("id"), dto.UpdateFocusSessionParams{
		ActualDurationMinutes: req.ActualDurationMinutes,
		Notes:                 req.Notes,
		Interruptions:         req.Interruptions,
		ProductivityRating:    req.ProductivityRating,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toFocusSessionResponse(session))
}

// End handles POST /api/v1/focus-sessions/:id/end
func (h *FocusHandler) End(c echo.Context) error {
	actor, err := middleware.GetUserFromContext(c)
	if err != nil {
		return err
	}

	var req EndFocusSessionRequest
	if c.Request().ContentLength != 0 {
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}
	}

	session, err := h.focusUseCase.End(c.Request().Context(), actor, c.Param("id"), dto.EndFocusSessionParams{
		ActualDurationMinutes: req.ActualDuration,
		ProductivityRating:    req.ProductivityRating,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toFocusSessionResponse(session))
}

// Active handles GET /api/v1/focus-sessions/active. 진행 중인 세션이 없으면 null.
func (h *FocusHandler) Active(c echo.Context) error {
	actor, err := middleware.GetUserFromContext(c)
	if err != nil {
		return err
	}

	session, err := h.focusUseCase.Active(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	if session == nil {
		return c.JSON(http.StatusOK, nil)
	}
	return c.JSON(http.StatusOK, toFocusSessionResponse(session))
}
