package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/irlquest-backend/internal/infrastructure/http/middleware"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/dto"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/interfaces"
)

// RegisterRequest 회원가입 요청
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Username  string `json:"username" validate:"omitempty,min=3,max=50"`
	Password  string `json:"password" validate:"required"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url"`
	Bio       string `json:"bio" validate:"max=500"`
	Timezone  string `json:"timezone" validate:"max=50"`
}

// TokenRequest 로그인 요청. username 자리에 이메일도 허용합니다.
type TokenRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// AuthHandler 인증 HTTP 핸들러
type AuthHandler struct {
	logger      *zap.Logger
	authUseCase interfaces.AuthUseCase
}

// NewAuthHandler 인증 핸들러 생성
func NewAuthHandler(logger *zap.Logger, authUseCase interfaces.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		logger:      logger,
		authUseCase: authUseCase,
	}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.authUseCase.Register(c.Request().Context(), dto.RegisterParams{
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
		AvatarURL: req.AvatarURL,
		Bio:       req.Bio,
		Timezone:  req.Timezone,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// Token handles POST /api/v1/auth/token
func (h *AuthHandler) Token(c echo.Context) error {
	var req TokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.authUseCase.Login(c.Request().Context(), dto.LoginParams{
		Identifier: req.Username,
		Password:   req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, TokenResponse{
		AccessToken: result.AccessToken,
		TokenType:   result.TokenType,
		User:        toUserResponse(result.User),
	})
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := middleware.GetUserFromContext(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}
