package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuestModel 퀘스트 ORM 모델
type QuestModel struct {
	ID                   string         `gorm:"type:varchar(16);primaryKey" json:"id"`
	OwnerID              string         `gorm:"type:varchar(16);not null;index" json:"owner_id"`
	Title                string         `gorm:"size:200;not null" json:"title"`
	Description          string         `gorm:"type:text" json:"description"`
	Difficulty           int            `gorm:"not null;default:1" json:"difficulty"`
	Status               string         `gorm:"size:20;not null;default:'active'" json:"status"`
	Priority             string         `gorm:"size:10;not null;default:'medium'" json:"priority"`
	Deadline             *time.Time     `json:"deadline,omitempty"`
	RewardExperience     int            `gorm:"not null;default:0" json:"reward_experience"`
	RewardDescription    string         `gorm:"type:text" json:"reward_description"`
	Tags                 datatypes.JSON `gorm:"type:jsonb" json:"tags"`
	IsPublic             bool           `gorm:"not null;default:false" json:"is_public"`
	QuestType            string         `gorm:"size:20;not null;default:'manual'" json:"quest_type"`
	Metadata             datatypes.JSON `gorm:"type:jsonb" json:"metadata"`
	CompletionPercentage int            `gorm:"not null;default:0" json:"completion_percentage"`
	CompletedAt          *time.Time     `json:"completed_at,omitempty"`
	RewardedAt           *time.Time     `json:"rewarded_at,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Owner UserModel `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName 테이블 이름 지정
func (QuestModel) TableName() string {
	return "quests"
}
