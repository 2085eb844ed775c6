package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/wekeepgrowing/irlquest-backend/internal/domain/entity"
	"github.com/wekeepgrowing/irlquest-backend/internal/domain/repository"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/interfaces"
	apperrors "github.com/wekeepgrowing/irlquest-backend/pkg/errors"
)

// StatsUseCase 활동 통계 유스케이스 구현체
type StatsUseCase struct {
	logger          *zap.Logger
	statsRepository repository.DailyStatsRepository
}

// NewStatsUseCase 새 통계 유스케이스 생성
func NewStatsUseCase(logger *zap.Logger, statsRepo repository.DailyStatsRepository) interfaces.StatsUseCase {
	return &StatsUseCase{
		logger:          logger,
		statsRepository: statsRepo,
	}
}

// Today 사용자 시간대 기준 오늘의 통계
func (uc *StatsUseCase) Today(ctx context.Context, actor *entity.User) (*entity.DailyStats, error) {
	return uc.Daily(ctx, actor, entity.LocalDay(time.Now(), actor.Timezone))
}

// Daily 특정 날짜의 통계. 기록이 없으면 0으로 채운 행을 만듭니다.
func (uc *StatsUseCase) Daily(ctx context.Context, actor *entity.User, date time.Time) (*entity.DailyStats, error) {
	stats, err := uc.statsRepository.FindOrCreate(ctx, actor.ID, truncateDay(date))
	if err != nil {
		return nil, apperrors.Internal("일일 통계 조회 실패", err)
	}
	return stats, nil
}

// CurrentWeek 이번 주(월요일 시작) 통계
func (uc *StatsUseCase) CurrentWeek(ctx context.Context, actor *entity.User) (*entity.WeeklyStats, error) {
	today := entity.LocalDay(time.Now(), actor.Timezone)
	return uc.Weekly(ctx, actor, entity.WeekStart(today))
}

// Weekly weekStart부터 7일간의 통계
func (uc *StatsUseCase) Weekly(ctx context.Context, actor *entity.User, weekStart time.Time) (*entity.WeeklyStats, error) {
	from := truncateDay(weekStart)
	to := from.AddDate(0, 0, 6)

	days, err := uc.statsRepository.ListRange(ctx, actor.ID, from, to)
	if err != nil {
		return nil, apperrors.Internal("주간 통계 조회 실패", err)
	}
	return entity.NewWeeklyStats(from, days), nil
}

// Summary 전체 기간 누적 통계
func (uc *StatsUseCase) Summary(ctx context.Context, actor *entity.User) (*entity.StatsSummary, error) {
	summary, err := uc.statsRepository.Summary(ctx, actor.ID)
	if err != nil {
		return nil, apperrors.Internal("누적 통계 조회 실패", err)
	}
	return &summary, nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
