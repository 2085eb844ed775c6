package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TaskModel 작업 ORM 모델
type TaskModel struct {
	ID                string         `gorm:"type:varchar(16);primaryKey" json:"id"`
	OwnerID           string         `gorm:"type:varchar(16);not null;index" json:"owner_id"`
	QuestID           *string        `gorm:"type:varchar(16);index" json:"quest_id,omitempty"`
	Title             string         `gorm:"size:200;not null" json:"title"`
	Description       string         `gorm:"type:text" json:"description"`
	Status            string         `gorm:"size:20;not null;default:'pending'" json:"status"`
	Priority          string         `gorm:"size:10;not null;default:'medium'" json:"priority"`
	Deadline          *time.Time     `json:"deadline,omitempty"`
	EstimatedDuration *int           `json:"estimated_duration,omitempty"`
	Difficulty        int            `gorm:"not null;default:1" json:"difficulty"`
	ExperienceReward  int            `gorm:"not null;default:0" json:"experience_reward"`
	Tags              datatypes.JSON `gorm:"type:jsonb" json:"tags"`
	CompletedAt       *time.Time     `json:"completed_at,omitempty"`
	RewardedAt        *time.Time     `json:"rewarded_at,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Owner UserModel   `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	Quest *QuestModel `gorm:"foreignKey:QuestID;constraint:OnDelete:SET NULL" json:"-"`
}

// TableName 테이블 이름 지정
func (TaskModel) TableName() string {
	return "tasks"
}
