package init

import (
	"context"

	"go.uber.org/zap"

	"github.com/wekeepgrowing/irlquest-backend/internal/config"
	"github.com/wekeepgrowing/irlquest-backend/internal/domain/repository"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/interfaces"
	"github.com/wekeepgrowing/irlquest-backend/pkg/messaging"
)

// UseCases 애플리케이션의 모든 유스케이스 컨테이너
type UseCases struct {
	TokenUseCase      interfaces.TokenUseCase
	AuthUseCase       interfaces.AuthUseCase
	UserUseCase       interfaces.UserUseCase
	TaskUseCase       interfaces.TaskUseCase
	QuestUseCase      interfaces.QuestUseCase
	GenerationUseCase interfaces.GenerationUseCase
	KnowledgeUseCase  interfaces.KnowledgeUseCase
	FocusUseCase      interfaces.FocusSessionUseCase
	StatsUseCase      interfaces.StatsUseCase

	// Recorder 생성 요청 기록 워커. 종료 시 Close로 대기열을 비웁니다.
	Recorder interfaces.KnowledgeRecorder
}

// NewUseCases 모든 유스케이스 인스턴스 생성 및 초기화.
// publisher가 nil이면 지식 이벤트를 발행하지 않습니다.
func NewUseCases(
	cfg *config.Config,
	repos *repository.Repositories,
	publisher messaging.Publisher,
	logger *zap.Logger,
) *UseCases {
	useCases := &UseCases{}

	authConfig := usecase.AuthConfig{
		PasswordMinLength: cfg.Auth.PasswordMinLength,
		HashCost:          cfg.Auth.HashCost,
	}

	// 1. 토큰 유스케이스 초기화
	useCases.TokenUseCase = usecase.NewTokenUseCase(
		logger,
		usecase.TokenConfig{
			Issuer:            cfg.JWT.Issuer,
			Secret:            cfg.JWT.Secret,
			AccessTokenExpiry: cfg.JWT.AccessTokenExpiry,
		},
		repos.User,
	)

	// 2. 인증 및 사용자 유스케이스 초기화
	useCases.AuthUseCase = usecase.NewAuthUseCase(
		logger,
		authConfig,
		repos.User,
		useCases.TokenUseCase,
	)
	useCases.UserUseCase = usecase.NewUserUseCase(
		logger,
		authConfig,
		repos.User,
		repos.Task,
		repos.Quest,
	)

	// 3. 작업/퀘스트 유스케이스 초기화
	useCases.TaskUseCase = usecase.NewTaskUseCase(
		logger,
		repos.Task,
		repos.Quest,
		repos.User,
		repos.DailyStats,
	)
	useCases.QuestUseCase = usecase.NewQuestUseCase(
		logger,
		repos.Quest,
		repos.Task,
		repos.User,
		repos.DailyStats,
	)

	// 4. 집중 세션과 활동 통계 유스케이스 초기화
	useCases.FocusUseCase = usecase.NewFocusSessionUseCase(
		logger,
		repos.FocusSession,
		repos.Task,
		repos.DailyStats,
	)
	useCases.StatsUseCase = usecase.NewStatsUseCase(logger, repos.DailyStats)

	// 5. 생성 요청 기록기와 생성 유스케이스 초기화
	useCases.Recorder = usecase.NewKnowledgeRecorder(
		logger,
		usecase.RecorderConfig{
			Workers: cfg.Generation.RecorderWorkers,
			Buffer:  cfg.Generation.RecorderBuffer,
			Channel: cfg.Generation.EventChannel,
		},
		repos.Knowledge,
		publisher,
	)
	useCases.GenerationUseCase = usecase.NewGenerationUseCase(
		logger,
		usecase.GenerationConfig{
			BulkMaxItems:    cfg.Generation.BulkMaxItems,
			BulkParallelism: cfg.Generation.BulkParallelism,
		},
		repos.QuestCache,
		useCases.Recorder,
	)

	useCases.KnowledgeUseCase = usecase.NewKnowledgeUseCase(logger, repos.Knowledge)

	return useCases
}

// Close 백그라운드 워커를 종료합니다
func (u *UseCases) Close(ctx context.Context) error {
	if u.Recorder == nil {
		return nil
	}
	return u.Recorder.Close(ctx)
}
