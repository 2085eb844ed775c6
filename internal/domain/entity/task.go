package entity

import (
	"time"
)

// TaskStatus 작업 상태
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// Valid 정의된 상태인지 확인
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// Priority 우선순위
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid 정의된 우선순위인지 확인
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task 도메인 엔티티
type Task struct {
	ID                string
	OwnerID           string
	QuestID           *string
	Title             string
	Description       string
	Status            TaskStatus
	Priority          Priority
	Deadline          *time.Time
	EstimatedDuration *int
	Difficulty        int
	ExperienceReward  int
	Tags              []string
	CompletedAt       *time.Time
	RewardedAt        *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Completed 완료 여부
func (t *Task) Completed() bool {
	return t.Status == TaskStatusCompleted
}

// TransitionTo 상태를 변경합니다.
// 보상을 받은 적 없는 작업이 완료될 때만 true를 반환하고 RewardedAt을 기록합니다.
// 완료를 해제해도 RewardedAt은 지워지지 않으므로 보상은 작업당 한 번뿐입니다.
func (t *Task) TransitionTo(status TaskStatus, at time.Time) bool {
	wasCompleted := t.Completed()
	t.Status = status
	t.UpdatedAt = at

	if status != TaskStatusCompleted {
		t.CompletedAt = nil
		return false
	}
	if !wasCompleted {
		t.CompletedAt = &at
	}
	if t.RewardedAt != nil {
		return false
	}
	t.RewardedAt = &at
	return true
}
