package entity

import "time"

// 집중 세션 유형
const (
	SessionTypeWork  = "work"
	SessionTypeBreak = "break"
)

// 생산성 평점 범위
const (
	MinProductivityRating = 1
	MaxProductivityRating = 5
)

// FocusSession 집중(뽀모도로) 세션
type FocusSession struct {
	ID                    string
	OwnerID               string
	TaskID                *string
	DurationMinutes       int
	ActualDurationMinutes *int
	StartedAt             time.Time
	EndedAt               *time.Time
	SessionType           string
	Notes                 string
	Interruptions         int
	ProductivityRating    *int
}

// Active 아직 종료되지 않은 세션인지
func (s *FocusSession) Active() bool {
	return s.EndedAt == nil
}

// FocusMinutes 통계에 반영할 집중 시간. 실제 시간이 없으면 계획 시간.
func (s *FocusSession) FocusMinutes() int {
	if s.ActualDurationMinutes != nil {
		return *s.ActualDurationMinutes
	}
	return s.DurationMinutes
}

// ValidSessionType 정의된 세션 유형인지 확인
func ValidSessionType(sessionType string) bool {
	switch sessionType {
	case SessionTypeWork, SessionTypeBreak:
		return true
	}
	return false
}

// ValidProductivityRating 1~5 범위인지 확인
func ValidProductivityRating(rating int) bool {
	return rating >= MinProductivityRating && rating <= MaxProductivityRating
}
