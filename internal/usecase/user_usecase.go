package usecase

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/wekeepgrowing/irlquest-backend/internal/domain/entity"
	"github.com/wekeepgrowing/irlquest-backend/internal/domain/repository"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/dto"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/interfaces"
	apperrors "github.com/wekeepgrowing/irlquest-backend/pkg/errors"
)

// UserUseCase 사용자 프로필 유스케이스 구현체
type UserUseCase struct {
	logger          *zap.Logger
	config          AuthConfig
	userRepository  repository.UserRepository
	taskRepository  repository.TaskRepository
	questRepository repository.QuestRepository
}

// NewUserUseCase 새 사용자 유스케이스 생성
func NewUserUseCase(
	logger *zap.Logger,
	config AuthConfig,
	userRepo repository.UserRepository,
	taskRepo repository.TaskRepository,
	questRepo repository.QuestRepository,
) interfaces.UserUseCase {
	return &UserUseCase{
		logger:          logger,
		config:          config.withDefaults(),
		userRepository:  userRepo,
		taskRepository:  taskRepo,
		questRepository: questRepo,
	}
}

// GetProfile 사용자 프로필 조회
func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("사용자 조회 실패", err)
	}
	if user == nil {
		return nil, apperrors.NotFound("사용자를 찾을 수 없습니다")
	}
	return user, nil
}

// UpdateProfile 사용자 프로필 수정
func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, params dto.UpdateProfileParams) (*entity.User, error) {
	// 1. 사용자 조회
	user, err := uc.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 2. 사용자 이름 변경 시 중복 확인
	if params.Username != nil {
		username := strings.TrimSpace(*params.Username)
		if username == "" {
			return nil, apperrors.InvalidArgument("사용자 이름은 비어 있을 수 없습니다")
		}
		if username != user.Username {
			existing, err := uc.userRepository.FindByUsername(ctx, username)
			if err != nil {
				return nil, apperrors.Internal("사용자 이름 중복 확인 실패", err)
			}
			if existing != nil && existing.ID != user.ID {
				return nil, apperrors.Conflict("이미 사용 중인 사용자 이름입니다")
			}
			user.Username = username
		}
	}

	// 3. 비밀번호 변경
	if params.Password != nil {
		if len(*params.Password) < uc.config.PasswordMinLength {
			return nil, apperrors.InvalidArgument("비밀번호가 너무 짧습니다")
		}
		hashed, err := HashPassword(*params.Password, uc.config.HashCost)
		if err != nil {
			return nil, apperrors.Internal("비밀번호 해싱 실패", err)
		}
		user.Password = hashed
	}

	if params.AvatarURL != nil {
		user.AvatarURL = *params.AvatarURL
	}
	if params.Bio != nil {
		user.Bio = *params.Bio
	}
	if params.Timezone != nil && *params.Timezone != "" {
		user.Timezone = *params.Timezone
	}

	// 4. 저장
	user.UpdatedAt = time.Now()
	if err := uc.userRepository.Update(ctx, user); err != nil {
		return nil, apperrors.Internal("사용자 수정 실패", err)
	}

	return user, nil
}

// GetStats 사용자 통계 조회
func (uc *UserUseCase) GetStats(ctx context.Context, userID string) (*entity.UserStats, error) {
	user, err := uc.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	questCounts, err := uc.questRepository.CountByOwner(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("퀘스트 통계 조회 실패", err)
	}

	taskCounts, err := uc.taskRepository.CountByOwner(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("작업 통계 조회 실패", err)
	}

	return &entity.UserStats{
		Level:           user.Level,
		Experience:      user.Experience,
		TotalQuests:     questCounts.Total,
		CompletedQuests: questCounts.Completed,
		TotalTasks:      taskCounts.Total,
		CompletedTasks:  taskCounts.Completed,
	}, nil
}
