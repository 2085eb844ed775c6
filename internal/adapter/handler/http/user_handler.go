package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/irlquest-backend/internal/infrastructure/http/middleware"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/dto"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/interfaces"
)

// UpdateProfileRequest 프로필 수정 요청
type UpdateProfileRequest struct {
	Username  *string `json:"username" validate:"omitempty,min=3,max=50"`
	Password  *string `json:"password"`
	AvatarURL *string `json:"avatar_url" validate:"omitempty,url"`
	Bio       *string `json:"bio" validate:"omitempty,max=500"`
	Timezone  *string `json:"timezone" validate:"omitempty,max=50"`
}

// UserHandler 사용자 프로필 HTTP 핸들러
type UserHandler struct {
	logger      *zap.Logger
	userUseCase interfaces.UserUseCase
}

// NewUserHandler 사용자 핸들러 생성
func NewUserHandler(logger *zap.Logger, userUseCase interfaces.UserUseCase) *UserHandler {
	return &UserHandler{
		logger:      logger,
		userUseCase: userUseCase,
	}
}

// GetMe handles GET /api/v1/users/me
func (h *UserHandler) GetMe(c echo.Context) error {
	actor, err := middleware.GetUserFromContext(c)
	if err != nil {
		return err
	}

	user, err := h.userUseCase.GetProfile(c.Request().Context(), actor.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// UpdateMe handles PUT /api/v1/users/me
func (h *UserHandler) UpdateMe(c echo.Context) error {
	actor, err := middleware.GetUserFromContext(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), actor.ID, dto.UpdateProfileParams{
		Username:  req.Username,
		Password:  req.Password,
		AvatarURL: req.AvatarURL,
		Bio:       req.Bio,
		Timezone:  req.Timezone,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// GetStats handles GET /api/v1/users/me/stats
func (h *UserHandler) GetStats(c echo.Context) error {
	actor, err := middleware.GetUserFromContext(c)
	if err != nil {
		return err
	}

	stats, err := h.userUseCase.GetStats(c.Request().Context(), actor.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// GetAchievements handles GET /api/v1/users/me/achievements.
// 업적 시스템이 없으므로 항상 빈 목록을 돌려줍니다.
func (h *UserHandler) GetAchievements(c echo.Context) error {
	if _, err := middleware.GetUserFromContext(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, []AchievementResponse{})
}
