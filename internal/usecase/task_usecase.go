package usecase

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/wekeepgrowing/irlquest-backend/internal/domain/entity"
	"github.com/wekeepgrowing/irlquest-backend/internal/domain/questgen"
	"github.com/wekeepgrowing/irlquest-backend/internal/domain/repository"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/constants"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/dto"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/interfaces"
	apperrors "github.com/wekeepgrowing/irlquest-backend/pkg/errors"
)

// TaskUseCase 작업 유스케이스 구현체
type TaskUseCase struct {
	logger          *zap.Logger
	taskRepository  repository.TaskRepository
	questRepository repository.QuestRepository
	userRepository  repository.UserRepository
	statsRepository repository.DailyStatsRepository
}

// NewTaskUseCase 새 작업 유스케이스 생성
func NewTaskUseCase(
	logger *zap.Logger,
	taskRepo repository.TaskRepository,
	questRepo repository.QuestRepository,
	userRepo repository.UserRepository,
	statsRepo repository.DailyStatsRepository,
) interfaces.TaskUseCase {
	return &TaskUseCase{
		logger:          logger,
		taskRepository:  taskRepo,
		questRepository: questRepo,
		userRepository:  userRepo,
		statsRepository: statsRepo,
	}
}

// List 작업 목록 조회
func (uc *TaskUseCase) List(ctx context.Context, actor *entity.User, params dto.ListParams) ([]*entity.Task, error) {
	filter := repository.TaskFilter{
		OwnerID: actor.ID,
		Limit:   params.Limit,
		Offset:  params.Offset,
	}

	if params.Status != "" {
		status := entity.TaskStatus(params.Status)
		if !status.Valid() {
			return nil, apperrors.InvalidArgument("알 수 없는 작업 상태: " + params.Status)
		}
		filter.Status = &status
	}

	tasks, err := uc.taskRepository.List(ctx, filter)
	if err != nil {
		return nil, apperrors.Internal("작업 목록 조회 실패", err)
	}
	return tasks, nil
}

// Create 작업 생성
func (uc *TaskUseCase) Create(ctx context.Context, actor *entity.User, params dto.CreateTaskParams) (*entity.Task, error) {
	// 1. 입력 검증
	title := strings.TrimSpace(params.Title)
	if title == "" {
		return nil, apperrors.InvalidArgument("제목은 필수입니다")
	}

	priority := params.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	if !priority.Valid() {
		return nil, apperrors.InvalidArgument("알 수 없는 우선순위: " + string(priority))
	}

	// 빈 quest_id는 미연결로 취급
	questID := params.QuestID
	if questID != nil && strings.TrimSpace(*questID) == "" {
		questID = nil
	}
	if err := uc.ensureQuest(ctx, actor.ID, questID); err != nil {
		return nil, err
	}

	// 2. 난이도와 보상 결정
	difficulty := questgen.ClampDifficulty(derefInt(params.Difficulty, questgen.MinDifficulty))
	reward := derefInt(params.ExperienceReward, questgen.BaseExperience(difficulty, actor.Level))
	if reward < 0 {
		return nil, apperrors.InvalidArgument("보상 경험치는 음수일 수 없습니다")
	}

	id, err := GenerateID(constants.TaskIDPrefix)
	if err != nil {
		return nil, apperrors.Internal("작업 ID 생성 실패", err)
	}

	// 3. 저장
	now := time.Now()
	task := &entity.Task{
		ID:                id,
		OwnerID:           actor.ID,
		QuestID:           questID,
		Title:             title,
		Description:       params.Description,
		Status:            entity.TaskStatusPending,
		Priority:          priority,
		Deadline:          params.Deadline,
		EstimatedDuration: params.EstimatedDuration,
		Difficulty:        difficulty,
		ExperienceReward:  reward,
		Tags:              normalizeTags(params.Tags),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := uc.taskRepository.Create(ctx, task); err != nil {
		return nil, apperrors.Internal("작업 생성 실패", err)
	}

	// 4. 소속 퀘스트 진행률 갱신
	uc.refreshProgress(ctx, actor.ID, task.QuestID)

	return task, nil
}

// Get 작업 조회
func (uc *TaskUseCase) Get(ctx context.Context, actor *entity.User, id string) (*entity.Task, error) {
	task, err := uc.taskRepository.FindByID(ctx, actor.ID, id)
	if err != nil {
		return nil, apperrors.Internal("작업 조회 실패", err)
	}
	if task == nil {
		return nil, apperrors.NotFound("작업을 찾을 수 없습니다")
	}
	return task, nil
}

// Update 작업 수정. 보상 기록이 없는 작업이 완료될 때만 보상 경험치를 지급합니다.
// 완료를 해제했다가 다시 완료해도 보상은 다시 지급되지 않습니다.
func (uc *TaskUseCase) Update(ctx context.Context, actor *entity.User, id string, params dto.UpdateTaskParams) (*entity.Task, error) {
	// 1. 작업 조회
	task, err := uc.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	previousQuestID := task.QuestID

	// 2. 필드 반영
	if params.Title != nil {
		title := strings.TrimSpace(*params.Title)
		if title == "" {
			return nil, apperrors.InvalidArgument("제목은 비어 있을 수 없습니다")
		}
		task.Title = title
	}
	if params.Description != nil {
		task.Description = *params.Description
	}
	if params.Priority != nil {
		if !params.Priority.Valid() {
			return nil, apperrors.InvalidArgument("알 수 없는 우선순위: " + string(*params.Priority))
		}
		task.Priority = *params.Priority
	}
	if params.Deadline != nil {
		task.Deadline = params.Deadline
	}
	if params.EstimatedDuration != nil {
		task.EstimatedDuration = params.EstimatedDuration
	}
	if params.Difficulty != nil {
		task.Difficulty = questgen.ClampDifficulty(*params.Difficulty)
	}
	if params.ExperienceReward != nil {
		if *params.ExperienceReward < 0 {
			return nil, apperrors.InvalidArgument("보상 경험치는 음수일 수 없습니다")
		}
		task.ExperienceReward = *params.ExperienceReward
	}
	if params.Tags != nil {
		task.Tags = normalizeTags(params.Tags)
	}
	if params.QuestID != nil {
		// 빈 문자열은 퀘스트 연결 해제
		if strings.TrimSpace(*params.QuestID) == "" {
			task.QuestID = nil
		} else {
			if err := uc.ensureQuest(ctx, actor.ID, params.QuestID); err != nil {
				return nil, err
			}
			task.QuestID = params.QuestID
		}
	}

	// 3. 상태 전이
	now := time.Now()
	task.UpdatedAt = now
	awarded := false
	if params.Status != nil {
		if !params.Status.Valid() {
			return nil, apperrors.InvalidArgument("알 수 없는 작업 상태: " + string(*params.Status))
		}
		awarded = task.TransitionTo(*params.Status, now)
	}

	if err := uc.taskRepository.Update(ctx, task); err != nil {
		return nil, apperrors.Internal("작업 수정 실패", err)
	}

	// 4. 보상 기록을 선점한 경우에만 지급 (동시 완료 요청 중 하나만 성공)
	if awarded {
		claimed, err := uc.taskRepository.MarkRewarded(ctx, actor.ID, task.ID, now)
		if err != nil {
			return nil, apperrors.Internal("작업 보상 기록 실패", err)
		}
		if claimed {
			delta := entity.StatsDelta{TasksCompleted: 1, ExperienceGained: task.ExperienceReward}
			if err := grantReward(ctx, uc.userRepository, uc.statsRepository, uc.logger, actor, delta); err != nil {
				return nil, err
			}
		}
	}

	// 5. 이전/현재 퀘스트 진행률 갱신
	uc.refreshProgress(ctx, actor.ID, previousQuestID)
	if !sameQuest(previousQuestID, task.QuestID) {
		uc.refreshProgress(ctx, actor.ID, task.QuestID)
	}

	return task, nil
}

// Complete 작업을 완료 상태로 바꿉니다
func (uc *TaskUseCase) Complete(ctx context.Context, actor *entity.User, id string) (*entity.Task, error) {
	completed := entity.TaskStatusCompleted
	return uc.Update(ctx, actor, id, dto.UpdateTaskParams{Status: &completed})
}

// Delete 작업 삭제
func (uc *TaskUseCase) Delete(ctx context.Context, actor *entity.User, id string) error {
	task, err := uc.Get(ctx, actor, id)
	if err != nil {
		return err
	}

	deleted, err := uc.taskRepository.Delete(ctx, actor.ID, id)
	if err != nil {
		return apperrors.Internal("작업 삭제 실패", err)
	}
	if !deleted {
		return apperrors.NotFound("작업을 찾을 수 없습니다")
	}

	uc.refreshProgress(ctx, actor.ID, task.QuestID)
	return nil
}

// ensureQuest 연결하려는 퀘스트가 actor 소유인지 확인합니다
func (uc *TaskUseCase) ensureQuest(ctx context.Context, ownerID string, questID *string) error {
	if questID == nil || *questID == "" {
		return nil
	}
	quest, err := uc.questRepository.FindByID(ctx, ownerID, *questID)
	if err != nil {
		return apperrors.Internal("퀘스트 조회 실패", err)
	}
	if quest == nil {
		return apperrors.NotFound("퀘스트를 찾을 수 없습니다")
	}
	return nil
}

// refreshProgress 진행률 갱신 실패는 작업 연산을 실패시키지 않습니다
func (uc *TaskUseCase) refreshProgress(ctx context.Context, ownerID string, questID *string) {
	if questID == nil || *questID == "" {
		return
	}
	if err := refreshQuestProgress(ctx, uc.questRepository, uc.taskRepository, ownerID, *questID); err != nil {
		apperrors.LogError(uc.logger, err, "퀘스트 진행률 갱신 실패", zap.String("quest_id", *questID))
	}
}

func sameQuest(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
