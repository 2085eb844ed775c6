package usecase_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/irlquest-backend/internal/domain/entity"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/dto"
	apperrors "github.com/wekeepgrowing/irlquest-backend/pkg/errors"
)

const testSecret = "test-secret-0123456789"

func newTokenUseCase(userRepo *MockUserRepository) *usecase.TokenUseCase {
	return usecase.NewTokenUseCase(zap.NewNop(), usecase.TokenConfig{
		Issuer:            "irlquest",
		Secret:            testSecret,
		AccessTokenExpiry: 30,
	}, userRepo).(*usecase.TokenUseCase)
}

func signClaims(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestGenerateID(t *testing.T) {
	pattern := regexp.MustCompile(`^T[0-9]{2}[0-9A-Z]{9}$`)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id, err := usecase.GenerateID("t")
		require.NoError(t, err)
		assert.Regexp(t, pattern, id)
		assert.False(t, seen[id], "중복 ID: %s", id)
		seen[id] = true
	}
}

func TestHashPassword(t *testing.T) {
	hash, err := usecase.HashPassword("correct horse", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	assert.NoError(t, usecase.VerifyPassword(hash, "correct horse"))
	assert.Error(t, usecase.VerifyPassword(hash, "wrong horse"))
}

func TestTokenUseCase(t *testing.T) {
	ctx := context.Background()
	user := entity.NewUser("U01ABCDEFGHI", "hero@example.com", "hero", "hash")

	t.Run("round trip", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc := newTokenUseCase(userRepo)
		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

		token, err := uc.GenerateAccessToken(ctx, user)
		require.NoError(t, err)

		parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
		require.NoError(t, err)
		claims := parsed.Claims.(jwt.MapClaims)
		assert.Equal(t, user.ID, claims["sub"])
		assert.Equal(t, "hero", claims["username"])
		assert.Equal(t, "irlquest", claims["iss"])
		assert.Equal(t, "HS256", parsed.Method.Alg())

		got, err := uc.ValidateAccessToken(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		userRepo.AssertExpectations(t)
	})

	t.Run("expired", func(t *testing.T) {
		uc := newTokenUseCase(new(MockUserRepository))
		token := signClaims(t, jwt.MapClaims{
			"sub": user.ID,
			"iss": "irlquest",
			"exp": time.Now().Add(-time.Minute).Unix(),
		}, testSecret)

		_, err := uc.ValidateAccessToken(ctx, token)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrUnauthenticated))
	})

	t.Run("wrong secret", func(t *testing.T) {
		uc := newTokenUseCase(new(MockUserRepository))
		token := signClaims(t, jwt.MapClaims{
			"sub": user.ID,
			"iss": "irlquest",
			"exp": time.Now().Add(time.Hour).Unix(),
		}, "another-secret-0123456789")

		_, err := uc.ValidateAccessToken(ctx, token)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrUnauthenticated))
	})

	t.Run("wrong issuer", func(t *testing.T) {
		uc := newTokenUseCase(new(MockUserRepository))
		token := signClaims(t, jwt.MapClaims{
			"sub": user.ID,
			"iss": "someone-else",
			"exp": time.Now().Add(time.Hour).Unix(),
		}, testSecret)

		_, err := uc.ValidateAccessToken(ctx, token)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrUnauthenticated))
	})

	t.Run("missing exp", func(t *testing.T) {
		uc := newTokenUseCase(new(MockUserRepository))
		token := signClaims(t, jwt.MapClaims{"sub": user.ID, "iss": "irlquest"}, testSecret)

		_, err := uc.ValidateAccessToken(ctx, token)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrUnauthenticated))
	})

	t.Run("inactive user", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc := newTokenUseCase(userRepo)
		inactive := *user
		inactive.IsActive = false
		userRepo.On("FindByID", ctx, user.ID).Return(&inactive, nil)

		token, err := uc.GenerateAccessToken(ctx, user)
		require.NoError(t, err)

		_, err = uc.ValidateAccessToken(ctx, token)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrUnauthenticated))
	})

	t.Run("deleted user", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc := newTokenUseCase(userRepo)
		userRepo.On("FindByID", ctx, user.ID).Return(nil, nil)

		token, err := uc.GenerateAccessToken(ctx, user)
		require.NoError(t, err)

		_, err = uc.ValidateAccessToken(ctx, token)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrUnauthenticated))
	})
}

func newAuthUseCase(userRepo *MockUserRepository) interface {
	Register(context.Context, dto.RegisterParams) (*entity.User, error)
	Login(context.Context, dto.LoginParams) (*dto.AuthResult, error)
} {
	tokenUC := newTokenUseCase(userRepo)
	return usecase.NewAuthUseCase(zap.NewNop(), usecase.AuthConfig{
		PasswordMinLength: 8,
		HashCost:          4,
	}, userRepo, tokenUC)
}

func TestAuthUseCase_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("successful registration", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc := newAuthUseCase(userRepo)

		userRepo.On("FindByEmail", ctx, "hero@example.com").Return(nil, nil)
		userRepo.On("FindByUsername", ctx, "hero").Return(nil, nil)
		userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil)

		user, err := uc.Register(ctx, dto.RegisterParams{
			Email:    "hero@example.com",
			Username: "hero",
			Password: "supersecret",
			Timezone: "Asia/Seoul",
		})
		require.NoError(t, err)
		assert.Regexp(t, `^U`, user.ID)
		assert.Equal(t, 1, user.Level)
		assert.Equal(t, 0, user.Experience)
		assert.True(t, user.IsActive)
		assert.Equal(t, "Asia/Seoul", user.Timezone)
		assert.NotEqual(t, "supersecret", user.Password)
		assert.NoError(t, usecase.VerifyPassword(user.Password, "supersecret"))
		userRepo.AssertExpectations(t)
	})

	t.Run("username defaults to email local part", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc := newAuthUseCase(userRepo)

		userRepo.On("FindByEmail", ctx, "sage@example.com").Return(nil, nil)
		userRepo.On("FindByUsername", ctx, "sage").Return(nil, nil)
		userRepo.On("Create", ctx, mock.Anything).Return(nil)

		user, err := uc.Register(ctx, dto.RegisterParams{Email: "sage@example.com", Password: "supersecret"})
		require.NoError(t, err)
		assert.Equal(t, "sage", user.Username)
	})

	t.Run("duplicate email", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc := newAuthUseCase(userRepo)

		userRepo.On("FindByEmail", ctx, "hero@example.com").Return(&entity.User{ID: "U1"}, nil)

		_, err := uc.Register(ctx, dto.RegisterParams{Email: "hero@example.com", Username: "hero", Password: "supersecret"})
		assert.True(t, apperrors.HasCode(err, apperrors.ErrConflict))
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate username", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc := newAuthUseCase(userRepo)

		userRepo.On("FindByEmail", ctx, "hero@example.com").Return(nil, nil)
		userRepo.On("FindByUsername", ctx, "hero").Return(&entity.User{ID: "U1"}, nil)

		_, err := uc.Register(ctx, dto.RegisterParams{Email: "hero@example.com", Username: "hero", Password: "supersecret"})
		assert.True(t, apperrors.HasCode(err, apperrors.ErrConflict))
	})

	t.Run("invalid input", func(t *testing.T) {
		uc := newAuthUseCase(new(MockUserRepository))

		_, err := uc.Register(ctx, dto.RegisterParams{Email: "not-an-email", Username: "hero", Password: "supersecret"})
		assert.True(t, apperrors.HasCode(err, apperrors.ErrInvalidArgument))

		_, err = uc.Register(ctx, dto.RegisterParams{Email: "hero@example.com", Username: "hero", Password: "short"})
		assert.True(t, apperrors.HasCode(err, apperrors.ErrInvalidArgument))
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := usecase.HashPassword("supersecret", 4)
	require.NoError(t, err)

	newUser := func() *entity.User {
		return entity.NewUser("U01ABCDEFGHI", "hero@example.com", "hero", hash)
	}

	t.Run("login with username", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc := newAuthUseCase(userRepo)
		user := newUser()

		userRepo.On("FindByUsername", ctx, "hero").Return(user, nil)
		userRepo.On("Update", ctx, user).Return(nil)

		result, err := uc.Login(ctx, dto.LoginParams{Identifier: "hero", Password: "supersecret"})
		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.Equal(t, "bearer", result.TokenType)
		assert.Equal(t, user.ID, result.User.ID)
		assert.NotNil(t, result.User.LastLoginAt)
		userRepo.AssertExpectations(t)
	})

	t.Run("login with email", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc := newAuthUseCase(userRepo)
		user := newUser()

		userRepo.On("FindByEmail", ctx, "hero@example.com").Return(user, nil)
		userRepo.On("Update", ctx, user).Return(nil)

		_, err := uc.Login(ctx, dto.LoginParams{Identifier: "hero@example.com", Password: "supersecret"})
		require.NoError(t, err)
	})

	t.Run("wrong password and unknown user look the same", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc := newAuthUseCase(userRepo)

		userRepo.On("FindByUsername", ctx, "hero").Return(newUser(), nil)
		userRepo.On("FindByUsername", ctx, "ghost").Return(nil, nil)

		_, errWrong := uc.Login(ctx, dto.LoginParams{Identifier: "hero", Password: "nope-nope"})
		_, errGhost := uc.Login(ctx, dto.LoginParams{Identifier: "ghost", Password: "supersecret"})

		assert.True(t, apperrors.HasCode(errWrong, apperrors.ErrUnauthenticated))
		assert.True(t, apperrors.HasCode(errGhost, apperrors.ErrUnauthenticated))
		assert.Equal(t, errWrong.Error(), errGhost.Error())
		userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
