package dto

import (
	"time"

	"github.com/wekeepgrowing/irlquest-backend/internal/domain/entity"
)

// CreateQuestParams 퀘스트 생성 매개변수
type CreateQuestParams struct {
	Title             string
	Description       string
	Difficulty        *int
	Priority          entity.Priority
	Deadline          *time.Time
	RewardExperience  *int
	RewardDescription string
	Tags              []string
	IsPublic          bool
	QuestType         string
	Metadata          map[string]interface{}
}

// UpdateQuestParams 퀘스트 수정 매개변수. nil 필드는 변경하지 않습니다.
type UpdateQuestParams struct {
	Title             *string
	Description       *string
	Difficulty        *int
	Status            *entity.QuestStatus
	Priority          *entity.Priority
	Deadline          *time.Time
	RewardExperience  *int
	RewardDescription *string
	Tags              []string
	IsPublic          *bool
}
