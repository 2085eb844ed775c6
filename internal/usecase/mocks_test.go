package usecase_test

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/wekeepgrowing/irlquest-backend/internal/domain/entity"
	"github.com/wekeepgrowing/irlquest-backend/internal/domain/questgen"
	"github.com/wekeepgrowing/irlquest-backend/internal/domain/repository"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) AddExperience(ctx context.Context, id string, xp int) (*entity.User, error) {
	args := m.Called(ctx, id, xp)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

// MockTaskRepository is a mock implementation of TaskRepository
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) FindByID(ctx context.Context, ownerID, id string) (*entity.Task, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Task), args.Error(1)
}

func (m *MockTaskRepository) List(ctx context.Context, filter repository.TaskFilter) ([]*entity.Task, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*entity.Task), args.Error(1)
}

func (m *MockTaskRepository) Create(ctx context.Context, task *entity.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *MockTaskRepository) Update(ctx context.Context, task *entity.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *MockTaskRepository) MarkRewarded(ctx context.Context, ownerID, id string, at time.Time) (bool, error) {
	args := m.Called(ctx, ownerID, id, at)
	return args.Bool(0), args.Error(1)
}

func (m *MockTaskRepository) Delete(ctx context.Context, ownerID, id string) (bool, error) {
	args := m.Called(ctx, ownerID, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockTaskRepository) CountByOwner(ctx context.Context, ownerID string) (entity.Counts, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(entity.Counts), args.Error(1)
}

func (m *MockTaskRepository) CountByQuest(ctx context.Context, questID string) (entity.Counts, error) {
	args := m.Called(ctx, questID)
	return args.Get(0).(entity.Counts), args.Error(1)
}

// MockQuestRepository is a mock implementation of QuestRepository
type MockQuestRepository struct {
	mock.Mock
}

func (m *MockQuestRepository) FindByID(ctx context.Context, ownerID, id string) (*entity.Quest, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Quest), args.Error(1)
}

func (m *MockQuestRepository) List(ctx context.Context, filter repository.QuestFilter) ([]*entity.Quest, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*entity.Quest), args.Error(1)
}

func (m *MockQuestRepository) Create(ctx context.Context, quest *entity.Quest) error {
	return m.Called(ctx, quest).Error(0)
}

func (m *MockQuestRepository) Update(ctx context.Context, quest *entity.Quest) error {
	return m.Called(ctx, quest).Error(0)
}

func (m *MockQuestRepository) MarkRewarded(ctx context.Context, ownerID, id string, at time.Time) (bool, error) {
	args := m.Called(ctx, ownerID, id, at)
	return args.Bool(0), args.Error(1)
}

func (m *MockQuestRepository) Delete(ctx context.Context, ownerID, id string) (bool, error) {
	args := m.Called(ctx, ownerID, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockQuestRepository) CountByOwner(ctx context.Context, ownerID string) (entity.Counts, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(entity.Counts), args.Error(1)
}

// MockKnowledgeRepository is a mock implementation of KnowledgeRepository
type MockKnowledgeRepository struct {
	mock.Mock
}

func (m *MockKnowledgeRepository) Create(ctx context.Context, knowledge *entity.Knowledge) error {
	return m.Called(ctx, knowledge).Error(0)
}

func (m *MockKnowledgeRepository) Search(ctx context.Context, query string, limit int) ([]*entity.Knowledge, error) {
	args := m.Called(ctx, query, limit)
	return args.Get(0).([]*entity.Knowledge), args.Error(1)
}

func (m *MockKnowledgeRepository) ExistsByContent(ctx context.Context, content string) (bool, error) {
	args := m.Called(ctx, content)
	return args.Bool(0), args.Error(1)
}

// MockFocusSessionRepository is a mock implementation of FocusSessionRepository
type MockFocusSessionRepository struct {
	mock.Mock
}

func (m *MockFocusSessionRepository) Create(ctx context.Context, session *entity.FocusSession) error {
	return m.Called(ctx, session).Error(0)
}

func (m *MockFocusSessionRepository) FindByID(ctx context.Context, ownerID, id string) (*entity.FocusSession, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FocusSession), args.Error(1)
}

func (m *MockFocusSessionRepository) List(ctx context.Context, ownerID string, limit int) ([]*entity.FocusSession, error) {
	args := m.Called(ctx, ownerID, limit)
	return args.Get(0).([]*entity.FocusSession), args.Error(1)
}

func (m *MockFocusSessionRepository) Update(ctx context.Context, session *entity.FocusSession) error {
	return m.Called(ctx, session).Error(0)
}

func (m *MockFocusSessionRepository) End(ctx context.Context, ownerID, id string, endedAt time.Time, actualMinutes, rating *int) (*entity.FocusSession, error) {
	args := m.Called(ctx, ownerID, id, endedAt, actualMinutes, rating)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FocusSession), args.Error(1)
}

func (m *MockFocusSessionRepository) FindActive(ctx context.Context, ownerID string) (*entity.FocusSession, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FocusSession), args.Error(1)
}

// MockDailyStatsRepository is a mock implementation of DailyStatsRepository
type MockDailyStatsRepository struct {
	mock.Mock
}

func (m *MockDailyStatsRepository) FindOrCreate(ctx context.Context, ownerID string, date time.Time) (*entity.DailyStats, error) {
	args := m.Called(ctx, ownerID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DailyStats), args.Error(1)
}

func (m *MockDailyStatsRepository) ListRange(ctx context.Context, ownerID string, from, to time.Time) ([]*entity.DailyStats, error) {
	args := m.Called(ctx, ownerID, from, to)
	return args.Get(0).([]*entity.DailyStats), args.Error(1)
}

func (m *MockDailyStatsRepository) Increment(ctx context.Context, ownerID string, date time.Time, delta entity.StatsDelta) error {
	return m.Called(ctx, ownerID, date, delta).Error(0)
}

func (m *MockDailyStatsRepository) Summary(ctx context.Context, ownerID string) (entity.StatsSummary, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(entity.StatsSummary), args.Error(1)
}

// memoryQuestCache 맵 기반 퀘스트 캐시
type memoryQuestCache struct {
	mu    sync.Mutex
	items map[string]questgen.Quest
	gets  int
	hits  int
}

func newMemoryQuestCache() *memoryQuestCache {
	return &memoryQuestCache{items: map[string]questgen.Quest{}}
}

func (c *memoryQuestCache) Get(_ context.Context, key string) (*questgen.Quest, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	quest, ok := c.items[key]
	if !ok {
		return nil, false
	}
	c.hits++
	clone := quest.Clone()
	return &clone, true
}

func (c *memoryQuestCache) Set(_ context.Context, key string, quest *questgen.Quest) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = quest.Clone()
}

// captureRecorder 기록 요청을 메모리에 모읍니다
type captureRecorder struct {
	mu      sync.Mutex
	records []*entity.Knowledge
}

func (r *captureRecorder) Record(knowledge *entity.Knowledge) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, knowledge)
	return true
}

func (r *captureRecorder) Close(context.Context) error { return nil }

func (r *captureRecorder) all() []*entity.Knowledge {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*entity.Knowledge(nil), r.records...)
}

var (
	_ repository.UserRepository         = (*MockUserRepository)(nil)
	_ repository.TaskRepository         = (*MockTaskRepository)(nil)
	_ repository.QuestRepository        = (*MockQuestRepository)(nil)
	_ repository.KnowledgeRepository    = (*MockKnowledgeRepository)(nil)
	_ repository.QuestCacheRepository   = (*memoryQuestCache)(nil)
	_ repository.FocusSessionRepository = (*MockFocusSessionRepository)(nil)
	_ repository.DailyStatsRepository   = (*MockDailyStatsRepository)(nil)
)
