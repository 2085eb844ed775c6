package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	handler "github.com/wekeepgrowing/irlquest-backend/internal/adapter/handler/http"
	"github.com/wekeepgrowing/irlquest-backend/internal/adapter/repository"
	"github.com/wekeepgrowing/irlquest-backend/internal/infrastructure/db"
	"github.com/wekeepgrowing/irlquest-backend/internal/infrastructure/http"
	"github.com/wekeepgrowing/irlquest-backend/internal/infrastructure/http/middleware"
	appinit "github.com/wekeepgrowing/irlquest-backend/internal/init"
	"github.com/wekeepgrowing/irlquest-backend/pkg/messaging"
)

const recorderDrainTimeout = 5 * time.Second

var serveMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&serveMigrate, "migrate", false, "시작 전에 마이그레이션 실행 (database.auto_migrate 설정보다 우선)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// 1. 설정 로드
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// 2. 로거 가져오기
	logger := cfg.Logger
	defer logger.Sync()

	logger.Info("IRL Quest 서비스를 시작합니다...",
		zap.String("service", cfg.Service.Name),
		zap.String("version", cfg.Service.Version),
	)

	// 3. 인프라스트럭처 초기화
	infrastructure, err := db.NewInfrastructure(cfg)
	if err != nil {
		logger.Error("인프라스트럭처 초기화 실패", zap.Error(err))
		return err
	}
	defer infrastructure.Close()

	if serveMigrate || cfg.Database.AutoMigrate {
		if err := db.Migrate(infrastructure.DB, logger); err != nil {
			logger.Error("마이그레이션 실패", zap.Error(err))
			return err
		}
	}

	// 4. 레포지토리 초기화
	repositories := repository.InitRepositories(
		infrastructure.DB,
		infrastructure.RedisClient,
		repository.QuestCacheConfig{
			Size:   cfg.Cache.Size,
			TTL:    cfg.Cache.TTL,
			Prefix: cfg.Cache.Prefix,
		},
		logger,
	)

	// 5. 유스케이스 초기화 (Redis가 있으면 지식 이벤트 발행)
	var publisher messaging.Publisher
	if infrastructure.RedisClient != nil {
		publisher = messaging.NewRedisClientFrom(infrastructure.RedisClient)
	}
	useCases := appinit.NewUseCases(cfg, repositories, publisher, logger)

	// 6. HTTP 서버 생성 및 라우트 등록
	httpServer := http.NewServer(http.Config{
		Port:            cfg.Server.HTTP.Port,
		Timeout:         cfg.Server.HTTP.Timeout,
		Debug:           cfg.Server.HTTP.Debug,
		AllowedOrigins:  cfg.Server.HTTP.AllowedOrigins,
		ShutdownTimeout: cfg.Server.HTTP.ShutdownTimeout,
	}, logger)

	httpServer.RegisterRoutes(http.Handlers{
		Health:     handler.NewHealthHandler(logger, infrastructure, cfg.Service.Version),
		Auth:       handler.NewAuthHandler(logger, useCases.AuthUseCase),
		User:       handler.NewUserHandler(logger, useCases.UserUseCase),
		Task:       handler.NewTaskHandler(logger, useCases.TaskUseCase),
		Quest:      handler.NewQuestHandler(logger, useCases.QuestUseCase),
		Generation: handler.NewGenerationHandler(logger, useCases.GenerationUseCase),
		Knowledge:  handler.NewKnowledgeHandler(logger, useCases.KnowledgeUseCase),
		Focus:      handler.NewFocusHandler(logger, useCases.FocusUseCase),
		Stats:      handler.NewStatsHandler(logger, useCases.StatsUseCase),
	}, middleware.NewJWTAuthMiddleware(useCases.TokenUseCase, logger))

	// 7. 서버 시작
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- httpServer.Start()
	}()

	// 8. 그레이스풀 종료를 위한 시그널 처리
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
		logger.Info("서버를 종료합니다...")
	case err := <-serverErr:
		if err != nil {
			logger.Error("HTTP 서버 종료", zap.Error(err))
		}
	}

	if err := httpServer.Stop(); err != nil {
		logger.Error("HTTP 서버 종료 오류", zap.Error(err))
	}

	// 9. 남은 생성 요청 기록 처리
	ctx, cancel := context.WithTimeout(context.Background(), recorderDrainTimeout)
	defer cancel()
	if err := useCases.Close(ctx); err != nil {
		logger.Warn("지식 기록 대기열을 모두 비우지 못했습니다", zap.Error(err))
	}

	logger.Info("서버가 정상적으로 종료되었습니다")
	return nil
}
