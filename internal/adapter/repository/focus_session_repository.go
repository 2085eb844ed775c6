package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wekeepgrowing/irlquest-backend/internal/domain/entity"
	"github.com/wekeepgrowing/irlquest-backend/internal/domain/repository"
	"github.com/wekeepgrowing/irlquest-backend/internal/infrastructure/db/model"
)

type FocusSessionRepositoryImpl struct {
	db *gorm.DB
}

// NewFocusSessionRepository 집중 세션 레포지토리 구현체 생성
func NewFocusSessionRepository(db *gorm.DB) repository.FocusSessionRepository {
	return &FocusSessionRepositoryImpl{db: db}
}

func toFocusSessionModel(s *entity.FocusSession) *model.FocusSessionModel {
	return &model.FocusSessionModel{
		ID:                    s.ID,
		OwnerID:               s.OwnerID,
		TaskID:                s.TaskID,
		DurationMinutes:       s.DurationMinutes,
		ActualDurationMinutes: s.ActualDurationMinutes,
		StartedAt:             s.StartedAt,
		EndedAt:               s.EndedAt,
		SessionType:           s.SessionType,
		Notes:                 s.Notes,
		Interruptions:         s.Interruptions,
		ProductivityRating:    s.ProductivityRating,
	}
}

func toFocusSessionEntity(m *model.FocusSessionModel) *entity.FocusSession {
	return &entity.FocusSession{
		ID:                    m.ID,
		OwnerID:               m.OwnerID,
		TaskID:                m.TaskID,
		DurationMinutes:       m.DurationMinutes,
		ActualDurationMinutes: m.ActualDurationMinutes,
		StartedAt:             m.StartedAt,
		EndedAt:               m.EndedAt,
		SessionType:           m.SessionType,
		Notes:                 m.Notes,
		Interruptions:         m.Interruptions,
		ProductivityRating:    m.ProductivityRating,
	}
}

// Create 세션 생성
func (r *FocusSessionRepositoryImpl) Create(ctx context.Context, session *entity.FocusSession) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(toFocusSessionModel(session)).Error
}

// FindByID 소유자의 세션 조회
func (r *FocusSessionRepositoryImpl) FindByID(ctx context.Context, ownerID, id string) (*entity.FocusSession, error) {
	return r.findOne(r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID))
}

// List 최근 시작한 세션 순
func (r *FocusSessionRepositoryImpl) List(ctx context.Context, ownerID string, limit int) ([]*entity.FocusSession, error) {
	var models []model.FocusSessionModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("started_at DESC").
		Limit(clampLimit(limit)).
		Find(&models).Error; err != nil {
		return nil, err
	}

	sessions := make([]*entity.FocusSession, len(models))
	for i := range models {
		sessions[i] = toFocusSessionEntity(&models[i])
	}
	return sessions, nil
}

// Update 세션 수정
func (r *FocusSessionRepositoryImpl) Update(ctx context.Context, session *entity.FocusSession) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(toFocusSessionModel(session)).Error
}

// End 진행 중인 세션을 종료합니다. ended_at 조건으로 중복 종료를 막습니다.
func (r *FocusSessionRepositoryImpl) End(
	ctx context.Context,
	ownerID, id string,
	endedAt time.Time,
	actualMinutes, rating *int,
) (*entity.FocusSession, error) {
	updates := map[string]interface{}{"ended_at": endedAt}
	if actualMinutes != nil {
		updates["actual_duration_minutes"] = *actualMinutes
	}
	if rating != nil {
		updates["productivity_rating"] = *rating
	}

	var ended model.FocusSessionModel
	result := r.db.WithContext(ctx).
		Model(&ended).
		Clauses(clause.Returning{}).
		Where("id = ? AND owner_id = ? AND ended_at IS NULL", id, ownerID).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return toFocusSessionEntity(&ended), nil
}

// FindActive 가장 최근에 시작한 진행 중 세션
func (r *FocusSessionRepositoryImpl) FindActive(ctx context.Context, ownerID string) (*entity.FocusSession, error) {
	return r.findOne(r.db.WithContext(ctx).
		Where("owner_id = ? AND ended_at IS NULL", ownerID).
		Order("started_at DESC"))
}

func (r *FocusSessionRepositoryImpl) findOne(query *gorm.DB) (*entity.FocusSession, error) {
	var sessionModel model.FocusSessionModel
	if err := query.First(&sessionModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toFocusSessionEntity(&sessionModel), nil
}
