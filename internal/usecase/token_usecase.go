package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/irlquest-backend/internal/domain/entity"
	"github.com/wekeepgrowing/irlquest-backend/internal/domain/repository"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/constants"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/interfaces"
	apperrors "github.com/wekeepgrowing/irlquest-backend/pkg/errors"
)

// TokenConfig 토큰 관련 설정
type TokenConfig struct {
	Issuer            string // 발급자 (iss)
	Secret            string // HS256 서명 키
	AccessTokenExpiry int    // 액세스 토큰 만료 시간 (분)
}

// TokenUseCase 토큰 유스케이스 구현체
type TokenUseCase struct {
	logger         *zap.Logger
	config         TokenConfig
	userRepository repository.UserRepository
	now            func() time.Time
}

// NewTokenUseCase 새 토큰 유스케이스 생성
func NewTokenUseCase(
	logger *zap.Logger,
	config TokenConfig,
	userRepo repository.UserRepository,
) interfaces.TokenUseCase {
	return &TokenUseCase{
		logger:         logger,
		config:         config,
		userRepository: userRepo,
		now:            time.Now,
	}
}

// GenerateAccessToken 사용자 정보로부터 액세스 토큰 생성
func (uc *TokenUseCase) GenerateAccessToken(ctx context.Context, user *entity.User) (string, error) {
	// 토큰 만료 시간 설정
	now := uc.now()
	expiry := uc.config.AccessTokenExpiry
	if expiry <= 0 {
		expiry = constants.AccessTokenExpiry // 기본값 사용
	}
	expiresAt := now.Add(time.Duration(expiry) * time.Minute)

	// JWT 클레임 설정
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"iss":      uc.config.Issuer,
		"iat":      now.Unix(),
		"exp":      expiresAt.Unix(),
	}

	// 토큰 생성 및 서명
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(uc.config.Secret))
	if err != nil {
		uc.logger.Error("액세스 토큰 서명 실패", zap.Error(err))
		return "", fmt.Errorf("액세스 토큰 서명 실패: %w", err)
	}

	return signedToken, nil
}

// ValidateAccessToken 액세스 토큰 검증
func (uc *TokenUseCase) ValidateAccessToken(ctx context.Context, accessToken string) (*entity.User, error) {
	// 1. 서명 및 표준 클레임 검증
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(uc.now),
	}
	if uc.config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(uc.config.Issuer))
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(accessToken, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(uc.config.Secret), nil
	}, opts...)
	if err != nil {
		uc.logger.Debug("액세스 토큰 검증 실패", zap.Error(err))
		return nil, apperrors.NewAppError(apperrors.ErrUnauthenticated, "유효하지 않은 토큰", err)
	}

	// 2. 사용자 ID 추출
	userID, err := claims.GetSubject()
	if err != nil || userID == "" {
		return nil, apperrors.Unauthenticated("토큰에 사용자 정보가 없습니다")
	}

	// 3. 사용자 조회
	user, err := uc.userRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("사용자 조회 실패", err)
	}
	if user == nil {
		return nil, apperrors.Unauthenticated("사용자를 찾을 수 없습니다")
	}

	// 4. 비활성 사용자 거부
	if !user.IsActive {
		return nil, apperrors.Unauthenticated("비활성화된 사용자입니다")
	}

	return user, nil
}
