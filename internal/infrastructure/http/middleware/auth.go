package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/irlquest-backend/internal/domain/entity"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/interfaces"
	apperrors "github.com/wekeepgrowing/irlquest-backend/pkg/errors"
)

// 컨텍스트 키 상수
const (
	UserIDKey = "user_id"
	UserKey   = "user"
)

// JWTAuthMiddleware는 Bearer 토큰 인증을 처리하는 미들웨어입니다.
// 토큰 검증과 사용자 조회는 TokenUseCase에 위임합니다.
type JWTAuthMiddleware struct {
	tokenUseCase interfaces.TokenUseCase
	logger       *zap.Logger
}

// NewJWTAuthMiddleware는 새로운 JWT 인증 미들웨어를 생성합니다.
func NewJWTAuthMiddleware(tokenUseCase interfaces.TokenUseCase, logger *zap.Logger) *JWTAuthMiddleware {
	return &JWTAuthMiddleware{
		tokenUseCase: tokenUseCase,
		logger:       logger,
	}
}

// Handle는 요청에서 Bearer 토큰을 추출하고 검증하는 미들웨어 함수를 반환합니다.
func (m *JWTAuthMiddleware) Handle() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// 1. 요청 헤더에서 토큰 추출
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return apperrors.Unauthenticated("인증 토큰이 없습니다")
			}

			// Bearer 토큰 형식 확인 및 추출
			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return apperrors.Unauthenticated("인증 헤더 형식이 올바르지 않습니다")
			}

			// 2. 토큰 유스케이스를 통해 토큰 검증
			user, err := m.tokenUseCase.ValidateAccessToken(c.Request().Context(), parts[1])
			if err != nil {
				m.logger.Info("인증 실패",
					zap.String("error", err.Error()),
					zap.String("ip", c.RealIP()),
					zap.String("path", c.Request().URL.Path),
				)
				return err
			}

			// 3. 검증된 사용자 정보를 컨텍스트에 저장
			c.Set(UserIDKey, user.ID)
			c.Set(UserKey, user)

			return next(c)
		}
	}
}

// GetUserFromContext 인증 미들웨어가 저장한 사용자를 반환합니다
func GetUserFromContext(c echo.Context) (*entity.User, error) {
	user, ok := c.Get(UserKey).(*entity.User)
	if !ok || user == nil {
		return nil, apperrors.Unauthenticated("인증이 필요합니다")
	}
	return user, nil
}
