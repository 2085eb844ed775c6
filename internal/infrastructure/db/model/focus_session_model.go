package model

import "time"

// FocusSessionModel 집중 세션 ORM 모델
type FocusSessionModel struct {
	ID                    string     `gorm:"type:varchar(16);primaryKey" json:"id"`
	OwnerID               string     `gorm:"type:varchar(16);not null;index:idx_focus_sessions_owner_started,priority:1" json:"owner_id"`
	TaskID                *string    `gorm:"type:varchar(16);index" json:"task_id,omitempty"`
	DurationMinutes       int        `gorm:"not null" json:"duration_minutes"`
	ActualDurationMinutes *int       `json:"actual_duration_minutes,omitempty"`
	StartedAt             time.Time  `gorm:"not null;index:idx_focus_sessions_owner_started,priority:2,sort:desc" json:"started_at"`
	EndedAt               *time.Time `json:"ended_at,omitempty"`
	SessionType           string     `gorm:"size:20;not null;default:'work'" json:"session_type"`
	Notes                 string     `gorm:"type:text" json:"notes"`
	Interruptions         int        `gorm:"not null;default:0" json:"interruptions"`
	ProductivityRating    *int       `json:"productivity_rating,omitempty"`

	Owner UserModel  `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	Task  *TaskModel `gorm:"foreignKey:TaskID;constraint:OnDelete:SET NULL" json:"-"`
}

// TableName 테이블 이름 지정
func (FocusSessionModel) TableName() string {
	return "focus_sessions"
}
