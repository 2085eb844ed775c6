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

// QuestUseCase 퀘스트 유스케이스 구현체
type QuestUseCase struct {
	logger          *zap.Logger
	questRepository repository.QuestRepository
	taskRepository  repository.TaskRepository
	userRepository  repository.UserRepository
	statsRepository repository.DailyStatsRepository
}

// NewQuestUseCase 새 퀘스트 유스케이스 생성
func NewQuestUseCase(
	logger *zap.Logger,
	questRepo repository.QuestRepository,
	taskRepo repository.TaskRepository,
	userRepo repository.UserRepository,
	statsRepo repository.DailyStatsRepository,
) interfaces.QuestUseCase {
	return &QuestUseCase{
		logger:          logger,
		questRepository: questRepo,
		taskRepository:  taskRepo,
		userRepository:  userRepo,
		statsRepository: statsRepo,
	}
}

// List 퀘스트 목록 조회
func (uc *QuestUseCase) List(ctx context.Context, actor *entity.User, params dto.ListParams) ([]*entity.Quest, error) {
	filter := repository.QuestFilter{
		OwnerID: actor.ID,
		Limit:   params.Limit,
		Offset:  params.Offset,
	}

	if params.Status != "" {
		status := entity.QuestStatus(params.Status)
		if !status.Valid() {
			return nil, apperrors.InvalidArgument("알 수 없는 퀘스트 상태: " + params.Status)
		}
		filter.Status = &status
	}

	quests, err := uc.questRepository.List(ctx, filter)
	if err != nil {
		return nil, apperrors.Internal("퀘스트 목록 조회 실패", err)
	}
	return quests, nil
}

// Create 퀘스트 생성
func (uc *QuestUseCase) Create(ctx context.Context, actor *entity.User, params dto.CreateQuestParams) (*entity.Quest, error) {
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

	questType := params.QuestType
	if questType == "" {
		questType = entity.QuestTypeManual
	}

	// 2. 난이도와 보상 결정 (보상 미지정 시 생성 엔진과 같은 공식)
	difficulty := questgen.ClampDifficulty(derefInt(params.Difficulty, questgen.MinDifficulty))
	reward := derefInt(params.RewardExperience, questgen.BaseExperience(difficulty, actor.Level)*3)
	if reward < 0 {
		return nil, apperrors.InvalidArgument("보상 경험치는 음수일 수 없습니다")
	}

	id, err := GenerateID(constants.QuestIDPrefix)
	if err != nil {
		return nil, apperrors.Internal("퀘스트 ID 생성 실패", err)
	}

	// 3. 저장
	now := time.Now()
	quest := &entity.Quest{
		ID:                id,
		OwnerID:           actor.ID,
		Title:             title,
		Description:       params.Description,
		Difficulty:        difficulty,
		Status:            entity.QuestStatusActive,
		Priority:          priority,
		Deadline:          params.Deadline,
		RewardExperience:  reward,
		RewardDescription: params.RewardDescription,
		Tags:              normalizeTags(params.Tags),
		IsPublic:          params.IsPublic,
		QuestType:         questType,
		Metadata:          params.Metadata,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := uc.questRepository.Create(ctx, quest); err != nil {
		return nil, apperrors.Internal("퀘스트 생성 실패", err)
	}

	return quest, nil
}

// Get 퀘스트 조회
func (uc *QuestUseCase) Get(ctx context.Context, actor *entity.User, id string) (*entity.Quest, error) {
	quest, err := uc.questRepository.FindByID(ctx, actor.ID, id)
	if err != nil {
		return nil, apperrors.Internal("퀘스트 조회 실패", err)
	}
	if quest == nil {
		return nil, apperrors.NotFound("퀘스트를 찾을 수 없습니다")
	}
	return quest, nil
}

// Update 퀘스트 수정. 보상 기록이 없는 퀘스트가 완료될 때만 보상 경험치를 지급합니다.
func (uc *QuestUseCase) Update(ctx context.Context, actor *entity.User, id string, params dto.UpdateQuestParams) (*entity.Quest, error) {
	// 1. 퀘스트 조회
	quest, err := uc.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	// 2. 필드 반영
	if params.Title != nil {
		title := strings.TrimSpace(*params.Title)
		if title == "" {
			return nil, apperrors.InvalidArgument("제목은 비어 있을 수 없습니다")
		}
		quest.Title = title
	}
	if params.Description != nil {
		quest.Description = *params.Description
	}
	if params.Difficulty != nil {
		quest.Difficulty = questgen.ClampDifficulty(*params.Difficulty)
	}
	if params.Priority != nil {
		if !params.Priority.Valid() {
			return nil, apperrors.InvalidArgument("알 수 없는 우선순위: " + string(*params.Priority))
		}
		quest.Priority = *params.Priority
	}
	if params.Deadline != nil {
		quest.Deadline = params.Deadline
	}
	if params.RewardExperience != nil {
		if *params.RewardExperience < 0 {
			return nil, apperrors.InvalidArgument("보상 경험치는 음수일 수 없습니다")
		}
		quest.RewardExperience = *params.RewardExperience
	}
	if params.RewardDescription != nil {
		quest.RewardDescription = *params.RewardDescription
	}
	if params.Tags != nil {
		quest.Tags = normalizeTags(params.Tags)
	}
	if params.IsPublic != nil {
		quest.IsPublic = *params.IsPublic
	}

	// 3. 상태 전이
	now := time.Now()
	quest.UpdatedAt = now
	awarded := false
	if params.Status != nil {
		if !params.Status.Valid() {
			return nil, apperrors.InvalidArgument("알 수 없는 퀘스트 상태: " + string(*params.Status))
		}
		awarded = quest.TransitionTo(*params.Status, now)
		if *params.Status != entity.QuestStatusCompleted {
			// 완료 해제 시 진행률을 작업 기준으로 되돌림
			counts, err := uc.taskRepository.CountByQuest(ctx, quest.ID)
			if err != nil {
				return nil, apperrors.Internal("퀘스트 진행률 계산 실패", err)
			}
			quest.UpdateProgress(counts.Total, counts.Completed)
		}
	}

	if err := uc.questRepository.Update(ctx, quest); err != nil {
		return nil, apperrors.Internal("퀘스트 수정 실패", err)
	}

	// 4. 보상 기록을 선점한 경우에만 지급
	if awarded {
		claimed, err := uc.questRepository.MarkRewarded(ctx, actor.ID, quest.ID, now)
		if err != nil {
			return nil, apperrors.Internal("퀘스트 보상 기록 실패", err)
		}
		if claimed {
			delta := entity.StatsDelta{QuestsCompleted: 1, ExperienceGained: quest.RewardExperience}
			if err := grantReward(ctx, uc.userRepository, uc.statsRepository, uc.logger, actor, delta); err != nil {
				return nil, err
			}
		}
	}

	return quest, nil
}

// Complete 퀘스트를 완료 상태로 바꿉니다
func (uc *QuestUseCase) Complete(ctx context.Context, actor *entity.User, id string) (*entity.Quest, error) {
	completed := entity.QuestStatusCompleted
	return uc.Update(ctx, actor, id, dto.UpdateQuestParams{Status: &completed})
}

// Delete 퀘스트 삭제. 소속 작업은 퀘스트 연결만 해제됩니다.
func (uc *QuestUseCase) Delete(ctx context.Context, actor *entity.User, id string) error {
	deleted, err := uc.questRepository.Delete(ctx, actor.ID, id)
	if err != nil {
		return apperrors.Internal("퀘스트 삭제 실패", err)
	}
	if !deleted {
		return apperrors.NotFound("퀘스트를 찾을 수 없습니다")
	}
	return nil
}

// RefreshProgress 소속 작업 상태로 진행률을 다시 계산합니다
func (uc *QuestUseCase) RefreshProgress(ctx context.Context, ownerID, questID string) error {
	return refreshQuestProgress(ctx, uc.questRepository, uc.taskRepository, ownerID, questID)
}

func refreshQuestProgress(
	ctx context.Context,
	questRepo repository.QuestRepository,
	taskRepo repository.TaskRepository,
	ownerID, questID string,
) error {
	quest, err := questRepo.FindByID(ctx, ownerID, questID)
	if err != nil {
		return apperrors.Internal("퀘스트 조회 실패", err)
	}
	if quest == nil {
		return nil
	}

	counts, err := taskRepo.CountByQuest(ctx, questID)
	if err != nil {
		return apperrors.Internal("퀘스트 진행률 계산 실패", err)
	}

	before := quest.CompletionPercentage
	quest.UpdateProgress(counts.Total, counts.Completed)
	if quest.CompletionPercentage == before {
		return nil
	}

	quest.UpdatedAt = time.Now()
	if err := questRepo.Update(ctx, quest); err != nil {
		return apperrors.Internal("퀘스트 진행률 저장 실패", err)
	}
	return nil
}

// normalizeTags 공백 제거, 빈 값과 중복 제거 (순서 유지)
func normalizeTags(tags []string) []string {
	result := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		result = append(result, tag)
	}
	return result
}
