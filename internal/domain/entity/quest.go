package entity

import (
	"time"
)

// QuestStatus 퀘스트 상태
type QuestStatus string

const (
	QuestStatusActive    QuestStatus = "active"
	QuestStatusCompleted QuestStatus = "completed"
	QuestStatusAbandoned QuestStatus = "abandoned"
)

// Valid 정의된 상태인지 확인
func (s QuestStatus) Valid() bool {
	switch s {
	case QuestStatusActive, QuestStatusCompleted, QuestStatusAbandoned:
		return true
	}
	return false
}

const (
	QuestTypeManual    = "manual"
	QuestTypeGenerated = "generated"
)

// Quest 도메인 엔티티
type Quest struct {
	ID                   string
	OwnerID              string
	Title                string
	Description          string
	Difficulty           int
	Status               QuestStatus
	Priority             Priority
	Deadline             *time.Time
	RewardExperience     int
	RewardDescription    string
	Tags                 []string
	IsPublic             bool
	QuestType            string
	Metadata             map[string]interface{}
	CompletionPercentage int
	CompletedAt          *time.Time
	RewardedAt           *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TransitionTo 상태를 변경합니다. 보상 기록이 없을 때 완료되는 경우에만 true.
func (q *Quest) TransitionTo(status QuestStatus, at time.Time) bool {
	wasCompleted := q.Status == QuestStatusCompleted
	q.Status = status
	q.UpdatedAt = at

	if status != QuestStatusCompleted {
		q.CompletedAt = nil
		return false
	}
	if !wasCompleted {
		q.CompletedAt = &at
	}
	q.CompletionPercentage = 100
	if q.RewardedAt != nil {
		return false
	}
	q.RewardedAt = &at
	return true
}

// UpdateProgress 소속 작업 수로 진행률을 계산합니다
func (q *Quest) UpdateProgress(total, completed int) {
	if q.Status == QuestStatusCompleted {
		q.CompletionPercentage = 100
		return
	}
	if total <= 0 {
		q.CompletionPercentage = 0
		return
	}
	q.CompletionPercentage = completed * 100 / total
}
