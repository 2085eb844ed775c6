package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	handler "github.com/wekeepgrowing/irlquest-backend/internal/adapter/handler/http"
	"github.com/wekeepgrowing/irlquest-backend/internal/infrastructure/http/middleware"
	"github.com/wekeepgrowing/irlquest-backend/pkg/logger"
)

const defaultShutdownTimeout = 10 * time.Second

// Server HTTP 서버 구조체
type Server struct {
	router          *echo.Echo
	server          *http.Server
	logger          *zap.Logger
	address         string
	shutdownTimeout time.Duration
}

// Config HTTP 서버 설정
type Config struct {
	Port            string
	Timeout         int
	Debug           bool
	AllowedOrigins  []string
	ShutdownTimeout int
}

// Handlers 라우트에 연결할 핸들러 묶음
type Handlers struct {
	Health     *handler.HealthHandler
	Auth       *handler.AuthHandler
	User       *handler.UserHandler
	Task       *handler.TaskHandler
	Quest      *handler.QuestHandler
	Generation *handler.GenerationHandler
	Knowledge  *handler.KnowledgeHandler
	Focus      *handler.FocusHandler
	Stats      *handler.StatsHandler
}

// NewServer HTTP 서버 생성
func NewServer(cfg Config, zapLogger *zap.Logger) *Server {
	// Echo 인스턴스 생성
	e := echo.New()
	e.Debug = cfg.Debug
	e.Validator = handler.NewRequestValidator()

	// 기본 미들웨어 설정
	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// 로그 미들웨어 설정
	e.Use(logger.NewEchoRequestLogger(zapLogger))

	// Echo 로거 및 에러 핸들러 설정
	logger.WithEchoLogger(e, zapLogger)

	address := fmt.Sprintf(":%s", cfg.Port)

	server := &http.Server{
		Addr:         address,
		ReadTimeout:  time.Duration(cfg.Timeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Timeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Timeout) * time.Second,
	}

	shutdownTimeout := time.Duration(cfg.ShutdownTimeout) * time.Second
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	return &Server{
		router:          e,
		server:          server,
		logger:          zapLogger,
		address:         address,
		shutdownTimeout: shutdownTimeout,
	}
}

// Router Echo 인스턴스 반환
func (s *Server) Router() *echo.Echo {
	return s.router
}

// RegisterRoutes HTTP 라우트 등록
func (s *Server) RegisterRoutes(h Handlers, authMW *middleware.JWTAuthMiddleware) {
	// 헬스 체크
	s.router.GET("/", h.Health.Root)
	s.router.GET("/health", h.Health.Health)
	s.router.GET("/ready", h.Health.Ready)

	// API 버전 그룹
	v1 := s.router.Group("/api/v1")

	// 인증 (공개)
	auth := v1.Group("/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/token", h.Auth.Token)
	auth.POST("/login", h.Auth.Token)

	// 데이터셋 생성은 인증 없이 사용 가능. 밑줄 경로는 기존 클라이언트 호환용.
	dataset := v1.Group("/ml/dataset")
	dataset.POST("/todo-to-quest", h.Generation.TodoToQuest)
	dataset.POST("/todo_to_quest", h.Generation.TodoToQuest)
	dataset.POST("/task-tags", h.Generation.TaskTags)
	dataset.POST("/task_tags", h.Generation.TaskTags)

	// 이하 Bearer 토큰 필요
	protected := v1.Group("", authMW.Handle())

	protected.GET("/auth/me", h.Auth.Me)

	users := protected.Group("/users/me")
	users.GET("", h.User.GetMe)
	users.PUT("", h.User.UpdateMe)
	users.GET("/stats", h.User.GetStats)
	users.GET("/achievements", h.User.GetAchievements)

	tasks := protected.Group("/tasks")
	tasks.GET("", h.Task.List)
	tasks.POST("", h.Task.Create)
	tasks.GET("/:id", h.Task.Get)
	tasks.PUT("/:id", h.Task.Update)
	tasks.DELETE("/:id", h.Task.Delete)
	tasks.POST("/:id/complete", h.Task.Complete)

	quests := protected.Group("/quests")
	quests.GET("", h.Quest.List)
	quests.POST("", h.Quest.Create)
	quests.GET("/:id", h.Quest.Get)
	quests.PUT("/:id", h.Quest.Update)
	quests.DELETE("/:id", h.Quest.Delete)
	quests.POST("/:id/complete", h.Quest.Complete)
	quests.POST("/generate", h.Generation.GenerateQuest)

	focus := protected.Group("/focus-sessions")
	focus.GET("", h.Focus.List)
	focus.POST("", h.Focus.Start)
	focus.GET("/active", h.Focus.Active)
	focus.GET("/:id", h.Focus.Get)
	focus.PUT("/:id", h.Focus.Update)
	focus.POST("/:id/end", h.Focus.End)

	stats := protected.Group("/stats")
	stats.GET("/today", h.Stats.Today)
	stats.GET("/daily/:date", h.Stats.Daily)
	stats.GET("/weekly", h.Stats.CurrentWeek)
	stats.GET("/weekly/:week_start", h.Stats.Weekly)
	stats.GET("/summary", h.Stats.Summary)

	rag := protected.Group("/rag")
	rag.POST("/generate-quest", h.Generation.GenerateQuest)
	rag.POST("/enhance-task", h.Generation.EnhanceTask)
	rag.POST("/knowledge", h.Knowledge.Add)
	rag.GET("/knowledge", h.Knowledge.Search)
}

// Start HTTP 서버 시작. 정상 종료 시 nil을 반환합니다.
func (s *Server) Start() error {
	s.logger.Info("HTTP 서버 시작",
		zap.String("address", s.address),
	)

	s.server.Handler = s.router
	if err := s.router.StartServer(s.server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop HTTP 서버 종료
func (s *Server) Stop() error {
	s.logger.Info("HTTP 서버 종료 중...")

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	// StartServer로 띄운 서버는 echo.Server가 아니므로 직접 종료합니다
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP 서버 종료 실패: %w", err)
	}

	s.logger.Info("HTTP 서버 종료 완료")
	return nil
}
