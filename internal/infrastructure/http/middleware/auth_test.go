package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/irlquest-backend/internal/domain/entity"
	"github.com/wekeepgrowing/irlquest-backend/internal/infrastructure/http/middleware"
	apperrors "github.com/wekeepgrowing/irlquest-backend/pkg/errors"
	"github.com/wekeepgrowing/irlquest-backend/pkg/logger"
)

type MockTokenUseCase struct{ mock.Mock }

func (m *MockTokenUseCase) GenerateAccessToken(ctx context.Context, user *entity.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockTokenUseCase) ValidateAccessToken(ctx context.Context, accessToken string) (*entity.User, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func newProtectedEcho(tokenUC *MockTokenUseCase) *echo.Echo {
	e := echo.New()
	logger.WithEchoLogger(e, zap.NewNop())

	mw := middleware.NewJWTAuthMiddleware(tokenUC, zap.NewNop())
	e.GET("/me", func(c echo.Context) error {
		user, err := middleware.GetUserFromContext(c)
		if err != nil {
			return err
		}
		return c.String(http.StatusOK, user.ID+":"+c.Get(middleware.UserIDKey).(string))
	}, mw.Handle())
	return e
}

func serve(e *echo.Echo, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuthMiddlewareAcceptsBearer(t *testing.T) {
	tokenUC := new(MockTokenUseCase)
	user := entity.NewUser("U01ABCDEFGHI", "hero@example.com", "hero", "hash")
	tokenUC.On("ValidateAccessToken", mock.Anything, "good-token").Return(user, nil)

	rec := serve(newProtectedEcho(tokenUC), "Bearer good-token")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "U01ABCDEFGHI:U01ABCDEFGHI", rec.Body.String())

	// 스킴은 대소문자를 구분하지 않습니다
	rec = serve(newProtectedEcho(tokenUC), "bearer good-token")
	assert.Equal(t, http.StatusOK, rec.Code)
	tokenUC.AssertExpectations(t)
}

func TestJWTAuthMiddlewareRejects(t *testing.T) {
	tokenUC := new(MockTokenUseCase)
	tokenUC.On("ValidateAccessToken", mock.Anything, "expired-token").
		Return(nil, apperrors.Unauthenticated("유효하지 않은 토큰입니다"))

	e := newProtectedEcho(tokenUC)

	for name, header := range map[string]string{
		"missing header": "",
		"wrong scheme":   "Basic Zm9vOmJhcg==",
		"no token":       "Bearer",
		"invalid token":  "Bearer expired-token",
	} {
		t.Run(name, func(t *testing.T) {
			rec := serve(e, header)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), apperrors.ErrUnauthenticated)
		})
	}
	tokenUC.AssertNumberOfCalls(t, "ValidateAccessToken", 1)
}
