package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUserAddExperience(t *testing.T) {
	user := NewUser("U1", "hero@example.com", "hero", "hash")

	assert.False(t, user.AddExperience(45))
	assert.Equal(t, 1, user.Level)

	assert.True(t, user.AddExperience(60))
	assert.Equal(t, 105, user.Experience)
	assert.Equal(t, 2, user.Level)

	assert.False(t, user.AddExperience(0))
	assert.False(t, user.AddExperience(-10))
	assert.Equal(t, 105, user.Experience)
}

func TestTaskTransition(t *testing.T) {
	now := time.Now()
	task := &Task{Status: TaskStatusPending}

	assert.True(t, task.TransitionTo(TaskStatusCompleted, now))
	assert.NotNil(t, task.CompletedAt)
	assert.False(t, task.TransitionTo(TaskStatusCompleted, now), "완료 보상은 한 번만")

	assert.False(t, task.TransitionTo(TaskStatusInProgress, now))
	assert.Nil(t, task.CompletedAt)
	assert.NotNil(t, task.RewardedAt, "완료 해제 후에도 보상 기록 유지")

	// 완료 → 해제 → 재완료를 반복해도 보상은 다시 지급되지 않음
	later := now.Add(time.Minute)
	assert.False(t, task.TransitionTo(TaskStatusCompleted, later))
	assert.Equal(t, later, *task.CompletedAt)
	assert.Equal(t, now, *task.RewardedAt)
	assert.False(t, task.TransitionTo(TaskStatusPending, later))
	assert.False(t, task.TransitionTo(TaskStatusCompleted, later))
}

func TestQuestProgress(t *testing.T) {
	quest := &Quest{Status: QuestStatusActive}

	quest.UpdateProgress(3, 1)
	assert.Equal(t, 33, quest.CompletionPercentage)
	quest.UpdateProgress(0, 0)
	assert.Equal(t, 0, quest.CompletionPercentage)

	assert.True(t, quest.TransitionTo(QuestStatusCompleted, time.Now()))
	quest.UpdateProgress(3, 1)
	assert.Equal(t, 100, quest.CompletionPercentage)
}

func TestQuestRewardOnce(t *testing.T) {
	now := time.Now()
	quest := &Quest{Status: QuestStatusActive}

	assert.True(t, quest.TransitionTo(QuestStatusCompleted, now))
	assert.False(t, quest.TransitionTo(QuestStatusActive, now))
	assert.Nil(t, quest.CompletedAt)
	assert.NotNil(t, quest.RewardedAt)

	assert.False(t, quest.TransitionTo(QuestStatusCompleted, now))
	assert.NotNil(t, quest.CompletedAt)
	assert.Equal(t, 100, quest.CompletionPercentage)

	assert.False(t, quest.TransitionTo(QuestStatusAbandoned, now))
	assert.False(t, quest.TransitionTo(QuestStatusCompleted, now))
}

func TestEnumsValid(t *testing.T) {
	assert.True(t, TaskStatusInProgress.Valid())
	assert.False(t, TaskStatus("done").Valid())
	assert.True(t, PriorityHigh.Valid())
	assert.False(t, Priority("urgent").Valid())
	assert.True(t, QuestStatusAbandoned.Valid())
	assert.False(t, QuestStatus("paused").Valid())
}

func TestLocalDayAndWeekStart(t *testing.T) {
	// 2025-03-02 23:30 UTC는 서울 기준 3월 3일(월요일)
	at := time.Date(2025, 3, 2, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), LocalDay(at, "UTC"))
	assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), LocalDay(at, "Asia/Seoul"))
	assert.Equal(t, LocalDay(at, "UTC"), LocalDay(at, "Not/AZone"))

	// 일요일은 앞선 월요일 주에 속함
	assert.Equal(t, time.Date(2025, 2, 24, 0, 0, 0, 0, time.UTC), WeekStart(LocalDay(at, "UTC")))
	assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), WeekStart(LocalDay(at, "Asia/Seoul")))
}

func TestWeeklyStats(t *testing.T) {
	monday := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	days := []*DailyStats{
		{Date: monday, TasksCompleted: 2, ExperienceGained: 30, FocusSessions: 1, TotalFocusTime: 25, RatedSessions: 1, RatingTotal: 4},
		{Date: monday.AddDate(0, 0, 1), QuestsCompleted: 1, ExperienceGained: 90},
		{Date: monday.AddDate(0, 0, 2), FocusSessions: 2, TotalFocusTime: 50, RatedSessions: 2, RatingTotal: 4},
	}

	weekly := NewWeeklyStats(monday, days)
	assert.Equal(t, 2, weekly.TotalTasksCompleted)
	assert.Equal(t, 1, weekly.TotalQuestsCompleted)
	assert.Equal(t, 3, weekly.TotalFocusSessions)
	assert.Equal(t, 75, weekly.TotalFocusTime)
	assert.Equal(t, 120, weekly.TotalExperienceGained)
	if assert.NotNil(t, weekly.AverageProductivityScore) {
		assert.InDelta(t, 3.0, *weekly.AverageProductivityScore, 0.001)
	}

	assert.Nil(t, NewWeeklyStats(monday, nil).AverageProductivityScore)
}

func TestFocusSession(t *testing.T) {
	session := &FocusSession{DurationMinutes: 25}
	assert.True(t, session.Active())
	assert.Equal(t, 25, session.FocusMinutes())

	actual := 18
	now := time.Now()
	session.ActualDurationMinutes = &actual
	session.EndedAt = &now
	assert.False(t, session.Active())
	assert.Equal(t, 18, session.FocusMinutes())

	assert.True(t, ValidSessionType(SessionTypeBreak))
	assert.False(t, ValidSessionType("nap"))
	assert.True(t, ValidProductivityRating(5))
	assert.False(t, ValidProductivityRating(0))
}
