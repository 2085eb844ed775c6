package usecase

import (
	"context"
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

// FocusSessionUseCase 집중 세션 유스케이스 구현체
type FocusSessionUseCase struct {
	logger            *zap.Logger
	sessionRepository repository.FocusSessionRepository
	taskRepository    repository.TaskRepository
	statsRepository   repository.DailyStatsRepository
}

// NewFocusSessionUseCase 새 집중 세션 유스케이스 생성
func NewFocusSessionUseCase(
	logger *zap.Logger,
	sessionRepo repository.FocusSessionRepository,
	taskRepo repository.TaskRepository,
	statsRepo repository.DailyStatsRepository,
) interfaces.FocusSessionUseCase {
	return &FocusSessionUseCase{
		logger:            logger,
		sessionRepository: sessionRepo,
		taskRepository:    taskRepo,
		statsRepository:   statsRepo,
	}
}

// Start 세션 시작
func (uc *FocusSessionUseCase) Start(ctx context.Context, actor *entity.User, params dto.StartFocusSessionParams) (*entity.FocusSession, error) {
	// 1. 입력 검증
	if err := validateMinutes(params.DurationMinutes); err != nil {
		return nil, err
	}

	sessionType := params.SessionType
	if sessionType == "" {
		sessionType = entity.SessionTypeWork
	}
	if !entity.ValidSessionType(sessionType) {
		return nil, apperrors.InvalidArgument("알 수 없는 세션 유형: " + sessionType)
	}

	// 2. 연결할 작업 확인
	taskID := params.TaskID
	if taskID != nil && strings.TrimSpace(*taskID) == "" {
		taskID = nil
	}
	if taskID != nil {
		task, err := uc.taskRepository.FindByID(ctx, actor.ID, *taskID)
		if err != nil {
			return nil, apperrors.Internal("작업 조회 실패", err)
		}
		if task == nil {
			return nil, apperrors.NotFound("작업을 찾을 수 없습니다")
		}
	}

	id, err := GenerateID(constants.FocusIDPrefix)
	if err != nil {
		return nil, apperrors.Internal("세션 ID 생성 실패", err)
	}

	// 3. 저장
	session := &entity.FocusSession{
		ID:              id,
		OwnerID:         actor.ID,
		TaskID:          taskID,
		DurationMinutes: params.DurationMinutes,
		StartedAt:       time.Now(),
		SessionType:     sessionType,
		Notes:           params.Notes,
	}
	if err := uc.sessionRepository.Create(ctx, session); err != nil {
		return nil, apperrors.Internal("세션 생성 실패", err)
	}

	return session, nil
}

// List 최근 세션 목록
func (uc *FocusSessionUseCase) List(ctx context.Context, actor *entity.User, limit int) ([]*entity.FocusSession, error) {
	if limit <= 0 {
		limit = constants.FocusSessionListLimit
	}
	sessions, err := uc.sessionRepository.List(ctx, actor.ID, limit)
	if err != nil {
		return nil, apperrors.Internal("세션 목록 조회 실패", err)
	}
	return sessions, nil
}

// Get 세션 조회
func (uc *FocusSessionUseCase) Get(ctx context.Context, actor *entity.User, id string) (*entity.FocusSession, error) {
	session, err := uc.sessionRepository.FindByID(ctx, actor.ID, id)
	if err != nil {
		return nil, apperrors.Internal("세션 조회 실패", err)
	}
	if session == nil {
		return nil, apperrors.NotFound("세션을 찾을 수 없습니다")
	}
	return session, nil
}

// Update 세션 메모, 방해 횟수, 평점, 실제 시간 수정
func (uc *FocusSessionUseCase) Update(ctx context.Context, actor *entity.User, id string, params dto.UpdateFocusSessionParams) (*entity.FocusSession, error) {
	session, err := uc.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if params.ActualDurationMinutes != nil {
		if err := validateMinutes(*params.ActualDurationMinutes); err != nil {
			return nil, err
		}
		session.ActualDurationMinutes = params.ActualDurationMinutes
	}
	if params.Notes != nil {
		session.Notes = *params.Notes
	}
	if params.Interruptions != nil {
		if *params.Interruptions < 0 {
			return nil, apperrors.InvalidArgument("방해 횟수는 음수일 수 없습니다")
		}
		session.Interruptions = *params.Interruptions
	}
	if params.ProductivityRating != nil {
		if err := validateRating(*params.ProductivityRating); err != nil {
			return nil, err
		}
		session.ProductivityRating = params.ProductivityRating
	}

	if err := uc.sessionRepository.Update(ctx, session); err != nil {
		return nil, apperrors.Internal("세션 수정 실패", err)
	}
	return session, nil
}

// End 세션 종료. 이미 종료된 세션은 Conflict입니다.
func (uc *FocusSessionUseCase) End(ctx context.Context, actor *entity.User, id string, params dto.EndFocusSessionParams) (*entity.FocusSession, error) {
	// 1. 입력 검증
	if params.ActualDurationMinutes != nil {
		if err := validateMinutes(*params.ActualDurationMinutes); err != nil {
			return nil, err
		}
	}
	if params.ProductivityRating != nil {
		if err := validateRating(*params.ProductivityRating); err != nil {
			return nil, err
		}
	}

	// 2. 진행 중인 세션만 종료
	session, err := uc.sessionRepository.End(ctx, actor.ID, id, time.Now(), params.ActualDurationMinutes, params.ProductivityRating)
	if err != nil {
		return nil, apperrors.Internal("세션 종료 실패", err)
	}
	if session == nil {
		if _, err := uc.Get(ctx, actor, id); err != nil {
			return nil, err
		}
		return nil, apperrors.Conflict("이미 종료된 세션입니다")
	}

	// 3. 통계 반영
	recordDailyStats(ctx, uc.statsRepository, uc.logger, actor, entity.StatsDelta{
		FocusSessions: 1,
		FocusMinutes:  session.FocusMinutes(),
		Rating:        session.ProductivityRating,
	})

	return session, nil
}

// Active 진행 중인 세션 조회
func (uc *FocusSessionUseCase) Active(ctx context.Context, actor *entity.User) (*entity.FocusSession, error) {
	session, err := uc.sessionRepository.FindActive(ctx, actor.ID)
	if err != nil {
		return nil, apperrors.Internal("진행 중인 세션 조회 실패", err)
	}
	return session, nil
}

func validateMinutes(minutes int) error {
	if minutes <= 0 || minutes > constants.MaxFocusMinutes {
		return apperrors.InvalidArgument("세션 시간은 1분 이상 480분 이하여야 합니다")
	}
	return nil
}

func validateRating(rating int) error {
	if !entity.ValidProductivityRating(rating) {
		return apperrors.InvalidArgument("생산성 평점은 1~5 사이여야 합니다")
	}
	return nil
}
