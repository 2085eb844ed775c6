package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	handler "github.com/wekeepgrowing/irlquest-backend/internal/adapter/handler/http"
	server "github.com/wekeepgrowing/irlquest-backend/internal/infrastructure/http"
	"github.com/wekeepgrowing/irlquest-backend/internal/infrastructure/http/middleware"
)

func newRoutedServer(t *testing.T) *server.Server {
	t.Helper()
	logger := zap.NewNop()
	s := server.NewServer(server.Config{Port: "0"}, logger)
	s.RegisterRoutes(server.Handlers{
		Health:     handler.NewHealthHandler(logger, nil, "test"),
		Auth:       handler.NewAuthHandler(logger, nil),
		User:       handler.NewUserHandler(logger, nil),
		Task:       handler.NewTaskHandler(logger, nil),
		Quest:      handler.NewQuestHandler(logger, nil),
		Generation: handler.NewGenerationHandler(logger, nil),
		Knowledge:  handler.NewKnowledgeHandler(logger, nil),
		Focus:      handler.NewFocusHandler(logger, nil),
		Stats:      handler.NewStatsHandler(logger, nil),
	}, middleware.NewJWTAuthMiddleware(nil, logger))
	return s
}

func TestRegisterRoutes(t *testing.T) {
	s := newRoutedServer(t)

	registered := make(map[string]bool)
	for _, r := range s.Router().Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, route := range []string{
		"POST /api/v1/auth/token",
		"POST /api/v1/auth/login",
		"POST /api/v1/ml/dataset/todo-to-quest",
		"POST /api/v1/ml/dataset/todo_to_quest",
		"POST /api/v1/ml/dataset/task-tags",
		"POST /api/v1/ml/dataset/task_tags",
		"GET /api/v1/users/me/achievements",
		"POST /api/v1/tasks/:id/complete",
		"POST /api/v1/quests/:id/complete",
		"POST /api/v1/quests/generate",
		"GET /api/v1/focus-sessions",
		"POST /api/v1/focus-sessions",
		"GET /api/v1/focus-sessions/active",
		"PUT /api/v1/focus-sessions/:id",
		"POST /api/v1/focus-sessions/:id/end",
		"GET /api/v1/stats/today",
		"GET /api/v1/stats/daily/:date",
		"GET /api/v1/stats/weekly",
		"GET /api/v1/stats/weekly/:week_start",
		"GET /api/v1/stats/summary",
	} {
		assert.True(t, registered[route], route)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	s := newRoutedServer(t)

	for _, target := range []string{
		"/api/v1/tasks/T01/complete",
		"/api/v1/quests/Q01/complete",
		"/api/v1/focus-sessions/F01/end",
	} {
		req := httptest.NewRequest(http.MethodPost, target, nil)
		rec := httptest.NewRecorder()
		s.Router().ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code, target)
	}
}
