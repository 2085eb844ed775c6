package repository

import (
	"context"

	"github.com/wekeepgrowing/irlquest-backend/internal/domain/questgen"
)

// QuestCacheRepository 생성된 퀘스트 캐시.
// 캐시 실패는 생성 실패가 아니므로 구현체는 에러를 내부에서 기록하고 삼킵니다.
type QuestCacheRepository interface {
	Get(ctx context.Context, key string) (*questgen.Quest, bool)
	Set(ctx context.Context, key string, quest *questgen.Quest)
}
