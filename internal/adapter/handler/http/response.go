package http

import (
	"time"

	"github.com/wekeepgrowing/irlquest-backend/internal/domain/entity"
)

// UserResponse 사용자 응답 (비밀번호 해시 제외)
type UserResponse struct {
	ID         string     `json:"id"`
	Email      string     `json:"email"`
	Username   string     `json:"username"`
	IsActive   bool       `json:"is_active"`
	Level      int        `json:"level"`
	Experience int        `json:"experience"`
	AvatarURL  string     `json:"avatar_url,omitempty"`
	Bio        string     `json:"bio,omitempty"`
	Timezone   string     `json:"timezone"`
	LastLogin  *time.Time `json:"last_login"`
	CreatedAt  time.Time  `json:"created_at"`
}

// TokenResponse 로그인 응답
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

// AchievementResponse 업적 응답
type AchievementResponse struct {
	ID              string                 `json:"id"`
	AchievementType string                 `json:"achievement_type"`
	AchievementData map[string]interface{} `json:"achievement_data"`
	EarnedAt        time.Time              `json:"earned_at"`
}

// TaskResponse 작업 응답
type TaskResponse struct {
	ID                string     `json:"id"`
	QuestID           *string    `json:"quest_id"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	Completed         bool       `json:"completed"`
	Status            string     `json:"status"`
	Priority          string     `json:"priority"`
	Deadline          *time.Time `json:"deadline"`
	EstimatedDuration *int       `json:"estimated_duration"`
	Difficulty        int        `json:"difficulty"`
	ExperienceReward  int        `json:"experience_reward"`
	Tags              []string   `json:"tags"`
	CompletedAt       *time.Time `json:"completed_at"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// QuestResponse 퀘스트 응답
type QuestResponse struct {
	ID                   string                 `json:"id"`
	Title                string                 `json:"title"`
	Description          string                 `json:"description"`
	Difficulty           int                    `json:"difficulty"`
	Status               string                 `json:"status"`
	Priority             string                 `json:"priority"`
	Deadline             *time.Time             `json:"deadline"`
	CompletionPercentage int                    `json:"completion_percentage"`
	RewardExperience     int                    `json:"reward_experience"`
	RewardDescription    string                 `json:"reward_description"`
	Tags                 []string               `json:"tags"`
	IsPublic             bool                   `json:"is_public"`
	QuestType            string                 `json:"quest_type"`
	Metadata             map[string]interface{} `json:"metadata"`
	CompletedAt          *time.Time             `json:"completed_at"`
	CreatedAt            time.Time              `json:"created_at"`
	UpdatedAt            time.Time              `json:"updated_at"`
}

// KnowledgeResponse 지식 레코드 응답
type KnowledgeResponse struct {
	ID          string                 `json:"id"`
	Content     string                 `json:"content"`
	ContentType string                 `json:"content_type"`
	Tags        []string               `json:"tags"`
	Metadata    map[string]interface{} `json:"metadata"`
	CreatedAt   time.Time              `json:"created_at"`
}

func toUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Username:   u.Username,
		IsActive:   u.IsActive,
		Level:      u.Level,
		Experience: u.Experience,
		AvatarURL:  u.AvatarURL,
		Bio:        u.Bio,
		Timezone:   u.Timezone,
		LastLogin:  u.LastLoginAt,
		CreatedAt:  u.CreatedAt,
	}
}

func toTaskResponse(t *entity.Task) TaskResponse {
	return TaskResponse{
		ID:                t.ID,
		QuestID:           t.QuestID,
		Title:             t.Title,
		Description:       t.Description,
		Completed:         t.Completed(),
		Status:            string(t.Status),
		Priority:          string(t.Priority),
		Deadline:          t.Deadline,
		EstimatedDuration: t.EstimatedDuration,
		Difficulty:        t.Difficulty,
		ExperienceReward:  t.ExperienceReward,
		Tags:              nonNilTags(t.Tags),
		CompletedAt:       t.CompletedAt,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

func toTaskResponses(tasks []*entity.Task) []TaskResponse {
	out := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = toTaskResponse(t)
	}
	return out
}

func toQuestResponse(q *entity.Quest) QuestResponse {
	metadata := q.Metadata
	if metadata == nil {
		metadata = map[string]interface{}{}
	}
	return QuestResponse{
		ID:                   q.ID,
		Title:                q.Title,
		Description:          q.Description,
		Difficulty:           q.Difficulty,
		Status:               string(q.Status),
		Priority:             string(q.Priority),
		Deadline:             q.Deadline,
		CompletionPercentage: q.CompletionPercentage,
		RewardExperience:     q.RewardExperience,
		RewardDescription:    q.RewardDescription,
		Tags:                 nonNilTags(q.Tags),
		IsPublic:             q.IsPublic,
		QuestType:            q.QuestType,
		Metadata:             metadata,
		CompletedAt:          q.CompletedAt,
		CreatedAt:            q.CreatedAt,
		UpdatedAt:            q.UpdatedAt,
	}
}

func toQuestResponses(quests []*entity.Quest) []QuestResponse {
	out := make([]QuestResponse, len(quests))
	for i, q := range quests {
		out[i] = toQuestResponse(q)
	}
	return out
}

func toKnowledgeResponse(k *entity.Knowledge) KnowledgeResponse {
	metadata := k.Metadata
	if metadata == nil {
		metadata = map[string]interface{}{}
	}
	return KnowledgeResponse{
		ID:          k.ID,
		Content:     k.Content,
		ContentType: k.ContentType,
		Tags:        nonNilTags(k.Tags),
		Metadata:    metadata,
		CreatedAt:   k.CreatedAt,
	}
}

func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

// FocusSessionResponse 집중 세션 응답
type FocusSessionResponse struct {
	ID                    string     `json:"id"`
	TaskID                *string    `json:"task_id"`
	DurationMinutes       int        `json:"duration_minutes"`
	ActualDurationMinutes *int       `json:"actual_duration_minutes"`
	StartedAt             time.Time  `json:"started_at"`
	EndedAt               *time.Time `json:"ended_at"`
	SessionType           string     `json:"session_type"`
	Notes                 string     `json:"notes"`
	Interruptions         int        `json:"interruptions"`
	ProductivityRating    *int       `json:"productivity_rating"`
}

// DailyStatsResponse 일일 통계 응답. date는 YYYY-MM-DD.
type DailyStatsResponse struct {
	Date              string   `json:"date"`
	TasksCompleted    int      `json:"tasks_completed"`
	FocusSessions     int      `json:"focus_sessions"`
	TotalFocusTime    int      `json:"total_focus_time"`
	ExperienceGained  int      `json:"experience_gained"`
	QuestsCompleted   int      `json:"quests_completed"`
	ProductivityScore *float64 `json:"productivity_score"`
}

// WeeklyStatsResponse 주간 통계 응답
type WeeklyStatsResponse struct {
	WeekStart                string               `json:"week_start"`
	TotalTasksCompleted      int                  `json:"total_tasks_completed"`
	TotalFocusSessions       int                  `json:"total_focus_sessions"`
	TotalFocusTime           int                  `json:"total_focus_time"`
	TotalExperienceGained    int                  `json:"total_experience_gained"`
	TotalQuestsCompleted     int                  `json:"total_quests_completed"`
	AverageProductivityScore *float64             `json:"average_productivity_score"`
	DailyStats               []DailyStatsResponse `json:"daily_stats"`
}

func toFocusSessionResponse(s *entity.FocusSession) FocusSessionResponse {
	return FocusSessionResponse{
		ID:                    s.ID,
		TaskID:                s.TaskID,
		DurationMinutes:       s.DurationMinutes,
		ActualDurationMinutes: s.ActualDurationMinutes,
		StartedAt:             s.StartedAt,
		EndedAt:               s.EndedAt,
		SessionType:           s.SessionType,
		Notes:                 s.Notes,
		Interruptions:         s.Interruptions,
		ProductivityRating:    s.ProductivityRating,
	}
}

func toFocusSessionResponses(sessions []*entity.FocusSession) []FocusSessionResponse {
	out := make([]FocusSessionResponse, len(sessions))
	for i, s := range sessions {
		out[i] = toFocusSessionResponse(s)
	}
	return out
}

func toDailyStatsResponse(d *entity.DailyStats) DailyStatsResponse {
	return DailyStatsResponse{
		Date:              d.Date.Format(dateLayout),
		TasksCompleted:    d.TasksCompleted,
		FocusSessions:     d.FocusSessions,
		TotalFocusTime:    d.TotalFocusTime,
		ExperienceGained:  d.ExperienceGained,
		QuestsCompleted:   d.QuestsCompleted,
		ProductivityScore: d.ProductivityScore(),
	}
}

func toWeeklyStatsResponse(w *entity.WeeklyStats) WeeklyStatsResponse {
	days := make([]DailyStatsResponse, len(w.Days))
	for i, d := range w.Days {
		days[i] = toDailyStatsResponse(d)
	}
	return WeeklyStatsResponse{
		WeekStart:                w.WeekStart.Format(dateLayout),
		TotalTasksCompleted:      w.TotalTasksCompleted,
		TotalFocusSessions:       w.TotalFocusSessions,
		TotalFocusTime:           w.TotalFocusTime,
		TotalExperienceGained:    w.TotalExperienceGained,
		TotalQuestsCompleted:     w.TotalQuestsCompleted,
		AverageProductivityScore: w.AverageProductivityScore,
		DailyStats:               days,
	}
}
