package dto

import (
	"time"

	"github.com/wekeepgrowing/irlquest-backend/internal/domain/entity"
)

// CreateTaskParams 작업 생성 매개변수
type CreateTaskParams struct {
	Title             string
	Description       string
	Priority          entity.Priority
	Deadline          *time.Time
	EstimatedDuration *int
	Difficulty        *int
	ExperienceReward  *int
	Tags              []string
	QuestID           *string
}

// UpdateTaskParams 작업 수정 매개변수. nil 필드는 변경하지 않습니다.
type UpdateTaskParams struct {
	Title             *string
	Description       *string
	Status            *entity.TaskStatus
	Priority          *entity.Priority
	Deadline          *time.Time
	EstimatedDuration *int
	Difficulty        *int
	ExperienceReward  *int
	Tags              []string
	QuestID           *string
}

// ListParams 목록 조회 공통 매개변수
type ListParams struct {
	Status string
	Limit  int
	Offset int
}
