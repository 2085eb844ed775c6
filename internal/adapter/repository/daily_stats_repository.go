package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wekeepgrowing/irlquest-backend/internal/domain/entity"
	"github.com/wekeepgrowing/irlquest-backend/internal/domain/repository"
	"github.com/wekeepgrowing/irlquest-backend/internal/infrastructure/db/model"
)

type DailyStatsRepositoryImpl struct {
	db *gorm.DB
}

// NewDailyStatsRepository 일일 통계 레포지토리 구현체 생성
func NewDailyStatsRepository(db *gorm.DB) repository.DailyStatsRepository {
	return &DailyStatsRepositoryImpl{db: db}
}

var statsConflictColumns = []clause.Column{{Name: "owner_id"}, {Name: "date"}}

func toDailyStatsEntity(m *model.DailyStatsModel) *entity.DailyStats {
	return &entity.DailyStats{
		OwnerID:          m.OwnerID,
		Date:             m.Date,
		TasksCompleted:   m.TasksCompleted,
		QuestsCompleted:  m.QuestsCompleted,
		FocusSessions:    m.FocusSessions,
		TotalFocusTime:   m.TotalFocusTime,
		ExperienceGained: m.ExperienceGained,
		RatedSessions:    m.RatedSessions,
		RatingTotal:      m.RatingTotal,
	}
}

// FindOrCreate 날짜별 통계 조회, 없으면 빈 행 생성
func (r *DailyStatsRepositoryImpl) FindOrCreate(ctx context.Context, ownerID string, date time.Time) (*entity.DailyStats, error) {
	statsModel := model.DailyStatsModel{OwnerID: ownerID, Date: date}

	// 동시 생성 경쟁은 ON CONFLICT DO NOTHING으로 흡수하고 다시 읽습니다
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).
			Clauses(clause.OnConflict{Columns: statsConflictColumns, DoNothing: true}).
			Create(&statsModel).Error; err != nil {
			return err
		}
		return tx.Where("owner_id = ? AND date = ?", ownerID, date).Take(&statsModel).Error
	})
	if err != nil {
		return nil, err
	}
	return toDailyStatsEntity(&statsModel), nil
}

// ListRange 기간 내 통계 (날짜 오름차순)
func (r *DailyStatsRepositoryImpl) ListRange(ctx context.Context, ownerID string, from, to time.Time) ([]*entity.DailyStats, error) {
	var models []model.DailyStatsModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND date >= ? AND date <= ?", ownerID, from, to).
		Order("date").
		Find(&models).Error; err != nil {
		return nil, err
	}

	days := make([]*entity.DailyStats, len(models))
	for i := range models {
		days[i] = toDailyStatsEntity(&models[i])
	}
	return days, nil
}

// Increment 증분 upsert. 기존 행이 있으면 컬럼별로 더합니다.
func (r *DailyStatsRepositoryImpl) Increment(ctx context.Context, ownerID string, date time.Time, delta entity.StatsDelta) error {
	row := model.DailyStatsModel{
		OwnerID:          ownerID,
		Date:             date,
		TasksCompleted:   delta.TasksCompleted,
		QuestsCompleted:  delta.QuestsCompleted,
		FocusSessions:    delta.FocusSessions,
		TotalFocusTime:   delta.FocusMinutes,
		ExperienceGained: delta.ExperienceGained,
	}
	if delta.Rating != nil {
		row.RatedSessions = 1
		row.RatingTotal = *delta.Rating
	}

	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns: statsConflictColumns,
			DoUpdates: clause.Assignments(map[string]interface{}{
				"tasks_completed":   gorm.Expr("daily_stats.tasks_completed + ?", row.TasksCompleted),
				"quests_completed":  gorm.Expr("daily_stats.quests_completed + ?", row.QuestsCompleted),
				"focus_sessions":    gorm.Expr("daily_stats.focus_sessions + ?", row.FocusSessions),
				"total_focus_time":  gorm.Expr("daily_stats.total_focus_time + ?", row.TotalFocusTime),
				"experience_gained": gorm.Expr("daily_stats.experience_gained + ?", row.ExperienceGained),
				"rated_sessions":    gorm.Expr("daily_stats.rated_sessions + ?", row.RatedSessions),
				"rating_total":      gorm.Expr("daily_stats.rating_total + ?", row.RatingTotal),
			}),
		}).
		Create(&row).Error
}

// Summary 전체 기간 합계
func (r *DailyStatsRepositoryImpl) Summary(ctx context.Context, ownerID string) (entity.StatsSummary, error) {
	var summary entity.StatsSummary
	err := r.db.WithContext(ctx).Model(&model.DailyStatsModel{}).
		Select(`COALESCE(SUM(tasks_completed), 0) AS total_tasks_completed,
			COALESCE(SUM(focus_sessions), 0) AS total_focus_sessions,
			COALESCE(SUM(total_focus_time), 0) AS total_focus_time,
			COALESCE(SUM(experience_gained), 0) AS total_experience_gained,
			COALESCE(SUM(quests_completed), 0) AS total_quests_completed`).
		Where("owner_id = ?", ownerID).
		Scan(&summary).Error
	return summary, err
}
