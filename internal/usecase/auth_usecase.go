package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/wekeepgrowing/irlquest-backend/internal/domain/entity"
	"github.com/wekeepgrowing/irlquest-backend/internal/domain/repository"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/constants"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/dto"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/interfaces"
	apperrors "github.com/wekeepgrowing/irlquest-backend/pkg/errors"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// AuthConfig 인증 설정
type AuthConfig struct {
	PasswordMinLength int
	HashCost          int
}

func (c AuthConfig) withDefaults() AuthConfig {
	if c.PasswordMinLength <= 0 {
		c.PasswordMinLength = constants.PasswordMinLength
	}
	return c
}

// AuthUseCase 인증 유스케이스 구현체
type AuthUseCase struct {
	logger         *zap.Logger
	config         AuthConfig
	userRepository repository.UserRepository
	tokenUseCase   interfaces.TokenUseCase
}

// NewAuthUseCase 새 인증 유스케이스 생성
func NewAuthUseCase(
	logger *zap.Logger,
	config AuthConfig,
	userRepo repository.UserRepository,
	tokenUC interfaces.TokenUseCase,
) interfaces.AuthUseCase {
	return &AuthUseCase{
		logger:         logger,
		config:         config.withDefaults(),
		userRepository: userRepo,
		tokenUseCase:   tokenUC,
	}
}

// Register 사용자 회원가입
func (uc *AuthUseCase) Register(ctx context.Context, params dto.RegisterParams) (*entity.User, error) {
	email := strings.TrimSpace(params.Email)

	// 1. 이메일 형식 검증
	if !isValidEmail(email) {
		return nil, apperrors.InvalidArgument("유효하지 않은 이메일 형식입니다")
	}

	// 2. 비밀번호 길이 검증
	if len(params.Password) < uc.config.PasswordMinLength {
		return nil, apperrors.InvalidArgument("비밀번호가 너무 짧습니다")
	}

	// 사용자 이름이 없으면 이메일에서 추출
	username := strings.TrimSpace(params.Username)
	if username == "" {
		username = ExtractUsernameFromEmail(email)
	}

	// 3. 이메일/사용자 이름 중복 확인
	existing, err := uc.userRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.Internal("이메일 중복 확인 실패", err)
	}
	if existing != nil {
		return nil, apperrors.Conflict("이미 등록된 이메일입니다")
	}

	existing, err = uc.userRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, apperrors.Internal("사용자 이름 중복 확인 실패", err)
	}
	if existing != nil {
		return nil, apperrors.Conflict("이미 사용 중인 사용자 이름입니다")
	}

	// 4. 비밀번호 해싱
	hashedPassword, err := HashPassword(params.Password, uc.config.HashCost)
	if err != nil {
		return nil, apperrors.Internal("비밀번호 해싱 실패", err)
	}

	// 5. 사용자 생성
	id, err := GenerateID(constants.UserIDPrefix)
	if err != nil {
		return nil, apperrors.Internal("사용자 ID 생성 실패", err)
	}

	user := entity.NewUser(id, email, username, hashedPassword)
	user.AvatarURL = params.AvatarURL
	user.Bio = params.Bio
	if params.Timezone != "" {
		user.Timezone = params.Timezone
	}

	if err := uc.userRepository.Create(ctx, user); err != nil {
		return nil, apperrors.Internal("사용자 생성 실패", err)
	}

	uc.logger.Info("사용자 가입 완료", zap.String("user_id", user.ID), zap.String("username", user.Username))

	return user, nil
}

// Login 사용자 로그인
func (uc *AuthUseCase) Login(ctx context.Context, params dto.LoginParams) (*dto.AuthResult, error) {
	identifier := strings.TrimSpace(params.Identifier)

	// 1. 사용자 조회 (이메일 형식이면 이메일, 아니면 사용자 이름)
	var (
		user *entity.User
		err  error
	)
	if strings.Contains(identifier, "@") {
		user, err = uc.userRepository.FindByEmail(ctx, identifier)
	} else {
		user, err = uc.userRepository.FindByUsername(ctx, identifier)
	}
	if err != nil {
		return nil, apperrors.Internal("사용자 조회 실패", err)
	}

	// 2. 비밀번호 확인. 존재 여부를 드러내지 않도록 같은 에러를 사용합니다.
	if user == nil || VerifyPassword(user.Password, params.Password) != nil {
		return nil, apperrors.Unauthenticated("잘못된 사용자 이름 또는 비밀번호입니다")
	}
	if !user.IsActive {
		return nil, apperrors.Unauthenticated("비활성화된 사용자입니다")
	}

	// 3. 토큰 발급
	accessToken, err := uc.tokenUseCase.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, apperrors.Internal("토큰 발급 실패", err)
	}

	// 4. 마지막 로그인 시각 갱신 (실패해도 로그인은 성공)
	user.RecordLogin(time.Now())
	if err := uc.userRepository.Update(ctx, user); err != nil {
		uc.logger.Warn("마지막 로그인 시각 갱신 실패", zap.String("user_id", user.ID), zap.Error(err))
	}

	return &dto.AuthResult{
		AccessToken: accessToken,
		TokenType:   constants.TokenType,
		User:        user,
	}, nil
}

func isValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
