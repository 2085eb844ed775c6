package repository

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	domainrepo "github.com/wekeepgrowing/irlquest-backend/internal/domain/repository"
)

// InitRepositories 모든 레포지토리를 초기화하고 컬렉션을 반환합니다
func InitRepositories(
	database *gorm.DB,
	redisClient *redis.Client,
	cacheConfig QuestCacheConfig,
	logger *zap.Logger,
) *domainrepo.Repositories {
	return domainrepo.NewRepositories(
		NewUserRepository(database),
		NewTaskRepository(database),
		NewQuestRepository(database),
		NewKnowledgeRepository(database),
		NewQuestCacheRepository(cacheConfig, redisClient, logger),
		NewFocusSessionRepository(database),
		NewDailyStatsRepository(database),
	)
}
