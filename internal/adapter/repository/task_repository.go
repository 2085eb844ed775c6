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

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type TaskRepositoryImpl struct {
	db *gorm.DB
}

// NewTaskRepository 작업 레포지토리 구현체 생성
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func toTaskModel(task *entity.Task) *model.TaskModel {
	return &model.TaskModel{
		ID:                task.ID,
		OwnerID:           task.OwnerID,
		QuestID:           task.QuestID,
		Title:             task.Title,
		Description:       task.Description,
		Status:            string(task.Status),
		Priority:          string(task.Priority),
		Deadline:          task.Deadline,
		EstimatedDuration: task.EstimatedDuration,
		Difficulty:        task.Difficulty,
		ExperienceReward:  task.ExperienceReward,
		Tags:              mapper.TagsToJSON(task.Tags),
		CompletedAt:       task.CompletedAt,
		RewardedAt:        task.RewardedAt,
		CreatedAt:         task.CreatedAt,
		UpdatedAt:         task.UpdatedAt,
	}
}

func toTaskEntity(m *model.TaskModel) *entity.Task {
	return &entity.Task{
		ID:                m.ID,
		OwnerID:           m.OwnerID,
		QuestID:           m.QuestID,
		Title:             m.Title,
		Description:       m.Description,
		Status:            entity.TaskStatus(m.Status),
		Priority:          entity.Priority(m.Priority),
		Deadline:          m.Deadline,
		EstimatedDuration: m.EstimatedDuration,
		Difficulty:        m.Difficulty,
		ExperienceReward:  m.ExperienceReward,
		Tags:              mapper.TagsFromJSON(m.Tags),
		CompletedAt:       m.CompletedAt,
		RewardedAt:        m.RewardedAt,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// FindByID 소유자의 작업 조회
func (r *TaskRepositoryImpl) FindByID(ctx context.Context, ownerID, id string) (*entity.Task, error) {
	var taskModel model.TaskModel

	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&taskModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toTaskEntity(&taskModel), nil
}

// List 조건에 맞는 작업 목록 (최신순)
func (r *TaskRepositoryImpl) List(ctx context.Context, filter repository.TaskFilter) ([]*entity.Task, error) {
	query := r.db.WithContext(ctx).Where("owner_id = ?", filter.OwnerID)
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.QuestID != nil {
		query = query.Where("quest_id = ?", *filter.QuestID)
	}

	var models []model.TaskModel
	if err := query.Order("created_at DESC").
		Limit(clampLimit(filter.Limit)).
		Offset(max(filter.Offset, 0)).
		Find(&models).Error; err != nil {
		return nil, err
	}

	tasks := make([]*entity.Task, len(models))
	for i := range models {
		tasks[i] = toTaskEntity(&models[i])
	}
	return tasks, nil
}

// Create 작업 생성
func (r *TaskRepositoryImpl) Create(ctx context.Context, task *entity.Task) error {
	taskModel := toTaskModel(task)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(taskModel).Error; err != nil {
		return err
	}
	task.CreatedAt = taskModel.CreatedAt
	task.UpdatedAt = taskModel.UpdatedAt
	return nil
}

// Update 작업 수정. rewarded_at은 MarkRewarded로만 기록됩니다.
func (r *TaskRepositoryImpl) Update(ctx context.Context, task *entity.Task) error {
	return r.db.WithContext(ctx).Omit(clause.Associations, rewardedAtColumn).Save(toTaskModel(task)).Error
}

// MarkRewarded 보상 기록이 없을 때만 rewarded_at을 기록합니다. 기록했으면 true.
func (r *TaskRepositoryImpl) MarkRewarded(ctx context.Context, ownerID, id string, at time.Time) (bool, error) {
	return markRewarded(r.db.WithContext(ctx).Model(&model.TaskModel{}), ownerID, id, at)
}

// Delete 작업 삭제. 삭제된 행이 있으면 true.
func (r *TaskRepositoryImpl) Delete(ctx context.Context, ownerID, id string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.TaskModel{})
	return result.RowsAffected > 0, result.Error
}

// CountByOwner 소유자의 전체/완료 작업 수
func (r *TaskRepositoryImpl) CountByOwner(ctx context.Context, ownerID string) (entity.Counts, error) {
	return countWithStatus(r.db.WithContext(ctx).Model(&model.TaskModel{}).
		Where("owner_id = ?", ownerID), string(entity.TaskStatusCompleted))
}

// CountByQuest 퀘스트에 속한 전체/완료 작업 수
func (r *TaskRepositoryImpl) CountByQuest(ctx context.Context, questID string) (entity.Counts, error) {
	return countWithStatus(r.db.WithContext(ctx).Model(&model.TaskModel{}).
		Where("quest_id = ?", questID), string(entity.TaskStatusCompleted))
}

// countWithStatus 전체 개수와 특정 상태 개수를 한 번에 셉니다
func countWithStatus(query *gorm.DB, completedStatus string) (entity.Counts, error) {
	var row struct {
		Total     int
		Completed int
	}
	err := query.
		Select("COUNT(*) AS total, COUNT(*) FILTER (WHERE status = ?) AS completed", completedStatus).
		Scan(&row).Error
	if err != nil {
		return entity.Counts{}, err
	}
	return entity.Counts{Total: row.Total, Completed: row.Completed}, nil
}

const rewardedAtColumn = "rewarded_at"

// markRewarded 동시에 여러 요청이 완료 처리해도 한 요청만 행을 갱신합니다
func markRewarded(query *gorm.DB, ownerID, id string, at time.Time) (bool, error) {
	result := query.
		Where("id = ? AND owner_id = ? AND rewarded_at IS NULL", id, ownerID).
		UpdateColumn(rewardedAtColumn, at)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultListLimit
	case limit > maxListLimit:
		return maxListLimit
	}
	return limit
}
