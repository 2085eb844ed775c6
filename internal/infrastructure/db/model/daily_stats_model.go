package model

import "time"

// DailyStatsModel 사용자별 일일 통계 ORM 모델. (owner_id, date)가 기본 키입니다.
type DailyStatsModel struct {
	OwnerID          string    `gorm:"type:varchar(16);primaryKey" json:"owner_id"`
	Date             time.Time `gorm:"type:date;primaryKey" json:"date"`
	TasksCompleted   int       `gorm:"not null;default:0" json:"tasks_completed"`
	QuestsCompleted  int       `gorm:"not null;default:0" json:"quests_completed"`
	FocusSessions    int       `gorm:"not null;default:0" json:"focus_sessions"`
	TotalFocusTime   int       `gorm:"not null;default:0" json:"total_focus_time"`
	ExperienceGained int       `gorm:"not null;default:0" json:"experience_gained"`
	RatedSessions    int       `gorm:"not null;default:0" json:"rated_sessions"`
	RatingTotal      int       `gorm:"not null;default:0" json:"rating_total"`

	Owner UserModel `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName 테이블 이름 지정
func (DailyStatsModel) TableName() string {
	return "daily_stats"
}
