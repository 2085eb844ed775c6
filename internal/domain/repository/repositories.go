package repository

// Repositories 모든 레포지토리 인터페이스의 컬렉션
type Repositories struct {
	User         UserRepository
	Task         TaskRepository
	Quest        QuestRepository
	Knowledge    KnowledgeRepository
	QuestCache   QuestCacheRepository
	FocusSession FocusSessionRepository
	DailyStats   DailyStatsRepository
}

// NewRepositories 모든 레포지토리를 포함하는 컬렉션 생성
func NewRepositories(
	userRepo UserRepository,
	taskRepo TaskRepository,
	questRepo QuestRepository,
	knowledgeRepo KnowledgeRepository,
	questCacheRepo QuestCacheRepository,
	focusSessionRepo FocusSessionRepository,
	dailyStatsRepo DailyStatsRepository,
) *Repositories {
	return &Repositories{
		User:         userRepo,
		Task:         taskRepo,
		Quest:        questRepo,
		Knowledge:    knowledgeRepo,
		QuestCache:   questCacheRepo,
		FocusSession: focusSessionRepo,
		DailyStats:   dailyStatsRepo,
	}
}
