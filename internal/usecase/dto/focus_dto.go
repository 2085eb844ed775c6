package dto

// StartFocusSessionParams 집중 세션 시작 매개변수
type StartFocusSessionParams struct {
	TaskID          *string
	DurationMinutes int
	SessionType     string
	Notes           string
}

// UpdateFocusSessionParams 세션 수정 매개변수. nil 필드는 변경하지 않습니다.
// 종료는 EndFocusSessionParams로만 합니다.
type UpdateFocusSessionParams struct {
	ActualDurationMinutes *int
	Notes                 *string
	Interruptions         *int
	ProductivityRating    *int
}

// EndFocusSessionParams 세션 종료 매개변수
type EndFocusSessionParams struct {
	ActualDurationMinutes *int
	ProductivityRating    *int
}
