package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/irlquest-backend/internal/domain/questgen"
	"github.com/wekeepgrowing/irlquest-backend/internal/domain/repository"
)

// QuestCacheConfig 퀘스트 캐시 설정
type QuestCacheConfig struct {
	Size   int
	TTL    time.Duration
	Prefix string
}

// QuestCacheRepositoryImpl 프로세스 내 LRU(L1) + Redis(L2) 2단 캐시
type QuestCacheRepositoryImpl struct {
	local  *expirable.LRU[string, questgen.Quest]
	redis  *redis.Client // nil이면 L1만 사용
	ttl    time.Duration
	prefix string
	logger *zap.Logger
}

// NewQuestCacheRepository 퀘스트 캐시 생성. redisClient가 nil이면 LRU만 사용합니다.
func NewQuestCacheRepository(cfg QuestCacheConfig, redisClient *redis.Client, logger *zap.Logger) repository.QuestCacheRepository {
	size := cfg.Size
	if size <= 0 {
		size = 1024
	}
	return &QuestCacheRepositoryImpl{
		local:  expirable.NewLRU[string, questgen.Quest](size, nil, cfg.TTL),
		redis:  redisClient,
		ttl:    cfg.TTL,
		prefix: cfg.Prefix,
		logger: logger,
	}
}

func (r *QuestCacheRepositoryImpl) redisKey(key string) string {
	if r.prefix == "" {
		return key
	}
	return r.prefix + ":" + key
}

// Get L1 → L2 순으로 조회합니다. L2 적중 시 L1을 채웁니다.
func (r *QuestCacheRepositoryImpl) Get(ctx context.Context, key string) (*questgen.Quest, bool) {
	if quest, ok := r.local.Get(key); ok {
		clone := quest.Clone()
		return &clone, true
	}

	if r.redis == nil {
		return nil, false
	}

	data, err := r.redis.Get(ctx, r.redisKey(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Warn("퀘스트 캐시 조회 실패", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var quest questgen.Quest
	if err := json.Unmarshal(data, &quest); err != nil {
		r.logger.Warn("퀘스트 캐시 역직렬화 실패", zap.String("key", key), zap.Error(err))
		return nil, false
	}

	r.local.Add(key, quest.Clone())
	return &quest, true
}

// Set L1과 L2에 저장합니다. 실패는 기록만 합니다.
func (r *QuestCacheRepositoryImpl) Set(ctx context.Context, key string, quest *questgen.Quest) {
	if quest == nil {
		return
	}
	r.local.Add(key, quest.Clone())

	if r.redis == nil {
		return
	}

	data, err := json.Marshal(quest)
	if err != nil {
		r.logger.Warn("퀘스트 캐시 직렬화 실패", zap.String("key", key), zap.Error(err))
		return
	}
	if err := r.redis.Set(ctx, r.redisKey(key), data, r.ttl).Err(); err != nil {
		r.logger.Warn("퀘스트 캐시 저장 실패", zap.String("key", key), zap.Error(err))
	}
}
