package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	handler "github.com/wekeepgrowing/irlquest-backend/internal/adapter/handler/http"
	"github.com/wekeepgrowing/irlquest-backend/internal/domain/entity"
	"github.com/wekeepgrowing/irlquest-backend/internal/domain/questgen"
	"github.com/wekeepgrowing/irlquest-backend/internal/infrastructure/http/middleware"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/dto"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/interfaces"
	"github.com/wekeepgrowing/irlquest-backend/pkg/logger"
)

type MockAuthUseCase struct{ mock.Mock }

func (m *MockAuthUseCase) Register(ctx context.Context, params dto.RegisterParams) (*entity.User, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) Login(ctx context.Context, params dto.LoginParams) (*dto.AuthResult, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResult), args.Error(1)
}

type MockUserUseCase struct{ mock.Mock }

func (m *MockUserUseCase) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUseCase) UpdateProfile(ctx context.Context, userID string, params dto.UpdateProfileParams) (*entity.User, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUseCase) GetStats(ctx context.Context, userID string) (*entity.UserStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserStats), args.Error(1)
}

type MockTaskUseCase struct{ mock.Mock }

func (m *MockTaskUseCase) List(ctx context.Context, actor *entity.User, params dto.ListParams) ([]*entity.Task, error) {
	args := m.Called(ctx, actor, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Task), args.Error(1)
}

func (m *MockTaskUseCase) Create(ctx context.Context, actor *entity.User, params dto.CreateTaskParams) (*entity.Task, error) {
	args := m.Called(ctx, actor, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Task), args.Error(1)
}

func (m *MockTaskUseCase) Get(ctx context.Context, actor *entity.User, id string) (*entity.Task, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Task), args.Error(1)
}

func (m *MockTaskUseCase) Update(ctx context.Context, actor *entity.User, id string, params dto.UpdateTaskParams) (*entity.Task, error) {
	args := m.Called(ctx, actor, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Task), args.Error(1)
}

func (m *MockTaskUseCase) Complete(ctx context.Context, actor *entity.User, id string) (*entity.Task, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Task), args.Error(1)
}

func (m *MockTaskUseCase) Delete(ctx context.Context, actor *entity.User, id string) error {
	return m.Called(ctx, actor, id).Error(0)
}

type MockQuestUseCase struct{ mock.Mock }

func (m *MockQuestUseCase) List(ctx context.Context, actor *entity.User, params dto.ListParams) ([]*entity.Quest, error) {
	args := m.Called(ctx, actor, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Quest), args.Error(1)
}

func (m *MockQuestUseCase) Create(ctx context.Context, actor *entity.User, params dto.CreateQuestParams) (*entity.Quest, error) {
	args := m.Called(ctx, actor, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Quest), args.Error(1)
}

func (m *MockQuestUseCase) Get(ctx context.Context, actor *entity.User, id string) (*entity.Quest, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Quest), args.Error(1)
}

func (m *MockQuestUseCase) Update(ctx context.Context, actor *entity.User, id string, params dto.UpdateQuestParams) (*entity.Quest, error) {
	args := m.Called(ctx, actor, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Quest), args.Error(1)
}

func (m *MockQuestUseCase) Complete(ctx context.Context, actor *entity.User, id string) (*entity.Quest, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Quest), args.Error(1)
}

func (m *MockQuestUseCase) Delete(ctx context.Context, actor *entity.User, id string) error {
	return m.Called(ctx, actor, id).Error(0)
}

func (m *MockQuestUseCase) RefreshProgress(ctx context.Context, ownerID, questID string) error {
	return m.Called(ctx, ownerID, questID).Error(0)
}

type MockGenerationUseCase struct{ mock.Mock }

func (m *MockGenerationUseCase) GenerateQuest(ctx context.Context, actor *entity.User, params dto.GenerateQuestParams) (*questgen.Quest, error) {
	args := m.Called(ctx, actor, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*questgen.Quest), args.Error(1)
}

func (m *MockGenerationUseCase) EnhanceTask(ctx context.Context, actor *entity.User, params dto.EnhanceTaskParams) (*questgen.EnhancedTask, error) {
	args := m.Called(ctx, actor, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*questgen.EnhancedTask), args.Error(1)
}

func (m *MockGenerationUseCase) TagTasks(ctx context.Context, texts []string) ([]questgen.TagRecord, error) {
	args := m.Called(ctx, texts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]questgen.TagRecord), args.Error(1)
}

func (m *MockGenerationUseCase) GenerateQuests(ctx context.Context, params dto.BulkGenerateParams) ([]questgen.TodoQuestPair, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]questgen.TodoQuestPair), args.Error(1)
}

type MockKnowledgeUseCase struct{ mock.Mock }

func (m *MockKnowledgeUseCase) Add(ctx context.Context, params dto.AddKnowledgeParams) (*entity.Knowledge, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Knowledge), args.Error(1)
}

func (m *MockKnowledgeUseCase) Search(ctx context.Context, query string, limit int) ([]*entity.Knowledge, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Knowledge), args.Error(1)
}

func (m *MockKnowledgeUseCase) SeedDefaults(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockFocusSessionUseCase struct{ mock.Mock }

func (m *MockFocusSessionUseCase) Start(ctx context.Context, actor *entity.User, params dto.StartFocusSessionParams) (*entity.FocusSession, error) {
	args := m.Called(ctx, actor, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FocusSession), args.Error(1)
}

func (m *MockFocusSessionUseCase) List(ctx context.Context, actor *entity.User, limit int) ([]*entity.FocusSession, error) {
	args := m.Called(ctx, actor, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.FocusSession), args.Error(1)
}

func (m *MockFocusSessionUseCase) Get(ctx context.Context, actor *entity.User, id string) (*entity.FocusSession, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FocusSession), args.Error(1)
}

func (m *MockFocusSessionUseCase) Update(ctx context.Context, actor *entity.User, id string, params dto.UpdateFocusSessionParams) (*entity.FocusSession, error) {
	args := m.Called(ctx, actor, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FocusSession), args.Error(1)
}

func (m *MockFocusSessionUseCase) End(ctx context.Context, actor *entity.User, id string, params dto.EndFocusSessionParams) (*entity.FocusSession, error) {
	args := m.Called(ctx, actor, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FocusSession), args.Error(1)
}

func (m *MockFocusSessionUseCase) Active(ctx context.Context, actor *entity.User) (*entity.FocusSession, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FocusSession), args.Error(1)
}

type MockStatsUseCase struct{ mock.Mock }

func (m *MockStatsUseCase) Today(ctx context.Context, actor *entity.User) (*entity.DailyStats, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DailyStats), args.Error(1)
}

func (m *MockStatsUseCase) Daily(ctx context.Context, actor *entity.User, date time.Time) (*entity.DailyStats, error) {
	args := m.Called(ctx, actor, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DailyStats), args.Error(1)
}

func (m *MockStatsUseCase) CurrentWeek(ctx context.Context, actor *entity.User) (*entity.WeeklyStats, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.WeeklyStats), args.Error(1)
}

func (m *MockStatsUseCase) Weekly(ctx context.Context, actor *entity.User, weekStart time.Time) (*entity.WeeklyStats, error) {
	args := m.Called(ctx, actor, weekStart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.WeeklyStats), args.Error(1)
}

func (m *MockStatsUseCase) Summary(ctx context.Context, actor *entity.User) (*entity.StatsSummary, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.StatsSummary), args.Error(1)
}

var (
	_ interfaces.AuthUseCase         = (*MockAuthUseCase)(nil)
	_ interfaces.UserUseCase         = (*MockUserUseCase)(nil)
	_ interfaces.TaskUseCase         = (*MockTaskUseCase)(nil)
	_ interfaces.QuestUseCase        = (*MockQuestUseCase)(nil)
	_ interfaces.GenerationUseCase   = (*MockGenerationUseCase)(nil)
	_ interfaces.KnowledgeUseCase    = (*MockKnowledgeUseCase)(nil)
	_ interfaces.FocusSessionUseCase = (*MockFocusSessionUseCase)(nil)
	_ interfaces.StatsUseCase        = (*MockStatsUseCase)(nil)
)

// newTestEcho 서버와 같은 검증기 및 에러 핸들러를 사용하는 echo 인스턴스
func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Validator = handler.NewRequestValidator()
	logger.WithEchoLogger(e, zap.NewNop())
	return e
}

// withActor 인증 미들웨어 대신 사용자를 컨텍스트에 넣습니다
func withActor(user *entity.User) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(middleware.UserIDKey, user.ID)
			c.Set(middleware.UserKey, user)
			return next(c)
		}
	}
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func testActor() *entity.User {
	u := entity.NewUser("U01ABCDEFGHI", "hero@example.com", "hero", "hash")
	u.Level = 3
	u.Experience = 250
	return u
}
