package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	rootBanner         = "IRL Quest API Server - Transform your TODO into epic D&D adventures!"
	healthCheckTimeout = 3 * time.Second
)

var readyFeatures = []string{"quest_generation", "task_enhancement", "rag_system"}

// Pinger 데이터베이스 연결 확인
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler 헬스 체크 핸들러
type HealthHandler struct {
	logger  *zap.Logger
	pinger  Pinger
	version string
}

// NewHealthHandler 헬스 체크 핸들러 생성
func NewHealthHandler(logger *zap.Logger, pinger Pinger, version string) *HealthHandler {
	return &HealthHandler{
		logger:  logger,
		pinger:  pinger,
		version: version,
	}
}

// Root handles GET /
func (h *HealthHandler) Root(c echo.Context) error {
	return c.String(http.StatusOK, rootBanner)
}

// Health handles GET /health
func (h *HealthHandler) Health(c echo.Context) error {
	if !h.databaseUp(c) {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{
			"status":   "unavailable",
			"database": "disconnected",
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":   "ok",
		"database": "connected",
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c echo.Context) error {
	if !h.databaseUp(c) {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{
			"status":   "not_ready",
			"database": "disconnected",
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":   "ready",
		"database": "connected",
		"version":  h.version,
		"features": readyFeatures,
	})
}

func (h *HealthHandler) databaseUp(c echo.Context) bool {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		h.logger.Warn("데이터베이스 헬스 체크 실패", zap.Error(err))
		return false
	}
	return true
}
