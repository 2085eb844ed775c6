package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/wekeepgrowing/irlquest-backend/internal/domain/entity"
	"github.com/wekeepgrowing/irlquest-backend/internal/domain/repository"
	apperrors "github.com/wekeepgrowing/irlquest-backend/pkg/errors"
)

// grantReward 경험치를 지급하고 오늘의 통계에 반영합니다
func grantReward(
	ctx context.Context,
	userRepo repository.UserRepository,
	statsRepo repository.DailyStatsRepository,
	logger *zap.Logger,
	actor *entity.User,
	delta entity.StatsDelta,
) error {
	if err := awardExperience(ctx, userRepo, logger, actor, delta.ExperienceGained); err != nil {
		return err
	}
	recordDailyStats(ctx, statsRepo, logger, actor, delta)
	return nil
}

// awardExperience 경험치를 원자적으로 지급하고 actor의 레벨/경험치를 갱신합니다
func awardExperience(
	ctx context.Context,
	userRepo repository.UserRepository,
	logger *zap.Logger,
	actor *entity.User,
	xp int,
) error {
	if xp <= 0 {
		return nil
	}

	updated, err := userRepo.AddExperience(ctx, actor.ID, xp)
	if err != nil {
		return apperrors.Internal("경험치 지급 실패", err)
	}
	if updated == nil {
		return apperrors.NotFound("사용자를 찾을 수 없습니다")
	}

	if updated.Level > actor.Level {
		logger.Info("레벨 업",
			zap.String("user_id", actor.ID),
			zap.Int("from", actor.Level),
			zap.Int("to", updated.Level),
		)
	}
	actor.Experience = updated.Experience
	actor.Level = updated.Level
	return nil
}

// recordDailyStats 통계 반영 실패는 원래 연산을 실패시키지 않습니다
func recordDailyStats(
	ctx context.Context,
	statsRepo repository.DailyStatsRepository,
	logger *zap.Logger,
	actor *entity.User,
	delta entity.StatsDelta,
) {
	if statsRepo == nil {
		return
	}
	day := entity.LocalDay(time.Now(), actor.Timezone)
	if err := statsRepo.Increment(ctx, actor.ID, day, delta); err != nil {
		logger.Warn("일일 통계 반영 실패",
			zap.String("user_id", actor.ID),
			zap.Time("date", day),
			zap.Error(err),
		)
	}
}
