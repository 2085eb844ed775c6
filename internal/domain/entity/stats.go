package entity

import "time"

// UserStats 사용자 통계
type UserStats struct {
	Level           int `json:"level"`
	Experience      int `json:"experience"`
	TotalQuests     int `json:"total_quests"`
	CompletedQuests int `json:"completed_quests"`
	TotalTasks      int `json:"total_tasks"`
	CompletedTasks  int `json:"completed_tasks"`
}

// Counts 전체/완료 개수
type Counts struct {
	Total     int
	Completed int
}

// DailyStats 사용자의 하루 활동 집계. Date는 사용자 시간대 기준 날짜의 UTC 자정입니다.
type DailyStats struct {
	OwnerID          string
	Date             time.Time
	TasksCompleted   int
	QuestsCompleted  int
	FocusSessions    int
	TotalFocusTime   int // 분
	ExperienceGained int
	RatedSessions    int
	RatingTotal      int
}

// ProductivityScore 평점이 매겨진 세션의 평균. 평점이 없으면 nil.
func (d *DailyStats) ProductivityScore() *float64 {
	if d.RatedSessions == 0 {
		return nil
	}
	score := float64(d.RatingTotal) / float64(d.RatedSessions)
	return &score
}

// StatsDelta 일일 통계 증분
type StatsDelta struct {
	TasksCompleted   int
	QuestsCompleted  int
	FocusSessions    int
	FocusMinutes     int
	ExperienceGained int
	Rating           *int
}

// WeeklyStats 월요일부터 7일간의 집계
type WeeklyStats struct {
	WeekStart                time.Time
	TotalTasksCompleted      int
	TotalQuestsCompleted     int
	TotalFocusSessions       int
	TotalFocusTime           int
	TotalExperienceGained    int
	AverageProductivityScore *float64
	Days                     []*DailyStats
}

// NewWeeklyStats 일일 통계를 합산합니다. 평균 생산성은 점수가 있는 날만 반영합니다.
func NewWeeklyStats(weekStart time.Time, days []*DailyStats) *WeeklyStats {
	weekly := &WeeklyStats{WeekStart: weekStart, Days: days}

	var scoreSum float64
	var scored int
	for _, day := range days {
		weekly.TotalTasksCompleted += day.TasksCompleted
		weekly.TotalQuestsCompleted += day.QuestsCompleted
		weekly.TotalFocusSessions += day.FocusSessions
		weekly.TotalFocusTime += day.TotalFocusTime
		weekly.TotalExperienceGained += day.ExperienceGained
		if score := day.ProductivityScore(); score != nil {
			scoreSum += *score
			scored++
		}
	}
	if scored > 0 {
		avg := scoreSum / float64(scored)
		weekly.AverageProductivityScore = &avg
	}
	return weekly
}

// StatsSummary 전체 기간 누적 통계
type StatsSummary struct {
	TotalTasksCompleted   int `json:"total_tasks_completed"`
	TotalFocusSessions    int `json:"total_focus_sessions"`
	TotalFocusTime        int `json:"total_focus_time_minutes"`
	TotalExperienceGained int `json:"total_experience_gained"`
	TotalQuestsCompleted  int `json:"total_quests_completed"`
}

// LocalDay 시각 t를 시간대 tz의 날짜로 바꿔 UTC 자정으로 반환합니다.
// 알 수 없는 시간대는 UTC로 취급합니다.
func LocalDay(t time.Time, tz string) time.Time {
	loc, err := time.LoadLocation(tz)
	if err != nil || tz == "" {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WeekStart day가 속한 주의 월요일
func WeekStart(day time.Time) time.Time {
	offset := (int(day.Weekday()) + 6) % 7
	y, m, d := day.AddDate(0, 0, -offset).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
