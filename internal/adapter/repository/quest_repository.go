package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wekeepgrowing/irlquest-backend/internal/adapter/mapper"
	"github.com/wekeepgrowing/irlquest-backend/internal/domain/entity"
	"github.com/wekeepgrowing/irlquest-backend/internal/domain/repository"
	"github.com/wekeepgrowing/irlquest-backend/internal/infrastructure/db/model"
)

type QuestRepositoryImpl struct {
	db *gorm.DB
}

// NewQuestRepository 퀘스트 레포지토리 구현체 생성
func NewQuestRepository(db *gorm.DB) repository.QuestRepository {
	return &QuestRepositoryImpl{db: db}
}

func toQuestModel(quest *entity.Quest) *model.QuestModel {
	return &model.QuestModel{
		ID:                   quest.ID,
		OwnerID:              quest.OwnerID,
		Title:                quest.Title,
		Description:          quest.Description,
		Difficulty:           quest.Difficulty,
		Status:               string(quest.Status),
		Priority:             string(quest.Priority),
		Deadline:             quest.Deadline,
		RewardExperience:     quest.RewardExperience,
		RewardDescription:    quest.RewardDescription,
		Tags:                 mapper.TagsToJSON(quest.Tags),
		IsPublic:             quest.IsPublic,
		QuestType:            quest.QuestType,
		Metadata:             mapper.MapToJSON(quest.Metadata),
		CompletionPercentage: quest.CompletionPercentage,
		CompletedAt:          quest.CompletedAt,
		RewardedAt:           quest.RewardedAt,
		CreatedAt:            quest.CreatedAt,
		UpdatedAt:            quest.UpdatedAt,
	}
}

func toQuestEntity(m *model.QuestModel) *entity.Quest {
	return &entity.Quest{
		ID:                   m.ID,
		OwnerID:              m.OwnerID,
		Title:                m.Title,
		Description:          m.Description,
		Difficulty:           m.Difficulty,
		Status:               entity.QuestStatus(m.Status),
		Priority:             entity.Priority(m.Priority),
		Deadline:             m.Deadline,
		RewardExperience:     m.RewardExperience,
		RewardDescription:    m.RewardDescription,
		Tags:                 mapper.TagsFromJSON(m.Tags),
		IsPublic:             m.IsPublic,
		QuestType:            m.QuestType,
		Metadata:             mapper.MapFromJSON(m.Metadata),
		CompletionPercentage: m.CompletionPercentage,
		CompletedAt:          m.CompletedAt,
		RewardedAt:           m.RewardedAt,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

// FindByID 소유자의 퀘스트 조회
func (r *QuestRepositoryImpl) FindByID(ctx context.Context, ownerID, id string) (*entity.Quest, error) {
	var questModel model.QuestModel

	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&questModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toQuestEntity(&questModel), nil
}

// List 조건에 맞는 퀘스트 목록 (최신순)
func (r *QuestRepositoryImpl) List(ctx context.Context, filter repository.QuestFilter) ([]*entity.Quest, error) {
	query := r.db.WithContext(ctx).Where("owner_id = ?", filter.OwnerID)
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	var models []model.QuestModel
	if err := query.Order("created_at DESC").
		Limit(clampLimit(filter.Limit)).
		Offset(max(filter.Offset, 0)).
		Find(&models).Error; err != nil {
		return nil, err
	}

	quests := make([]*entity.Quest, len(models))
	for i := range models {
		quests[i] = toQuestEntity(&models[i])
	}
	return quests, nil
}

// Create 퀘스트 생성
func (r *QuestRepositoryImpl) Create(ctx context.Context, quest *entity.Quest) error {
	questModel := toQuestModel(quest)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(questModel).Error; err != nil {
		return err
	}
	quest.CreatedAt = questModel.CreatedAt
	quest.UpdatedAt = questModel.UpdatedAt
	return nil
}

// Update 퀘스트 수정 (rewarded_at 제외)
func (r *QuestRepositoryImpl) Update(ctx context.Context, quest *entity.Quest) error {
	return r.db.WithContext(ctx).Omit(clause.Associations, rewardedAtColumn).Save(toQuestModel(quest)).Error
}

// MarkRewarded 퀘스트 완료 보상을 한 번만 기록합니다
func (r *QuestRepositoryImpl) MarkRewarded(ctx context.Context, ownerID, id string, at time.Time) (bool, error) {
	return markRewarded(r.db.WithContext(ctx).Model(&model.QuestModel{}), ownerID, id, at)
}

// Delete 퀘스트 삭제. 소속 작업의 quest_id는 비웁니다.
func (r *QuestRepositoryImpl) Delete(ctx context.Context, ownerID, id string) (bool, error) {
	var deleted bool

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&model.QuestModel{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		if !deleted {
			return nil
		}
		return tx.Model(&model.TaskModel{}).
			Where("quest_id = ? AND owner_id = ?", id, ownerID).
			Update("quest_id", nil).Error
	})

	return deleted, err
}

// CountByOwner 소유자의 전체/완료 퀘스트 수
func (r *QuestRepositoryImpl) CountByOwner(ctx context.Context, ownerID string) (entity.Counts, error) {
	return countWithStatus(r.db.WithContext(ctx).Model(&model.QuestModel{}).
		Where("owner_id = ?", ownerID), string(entity.QuestStatusCompleted))
}
