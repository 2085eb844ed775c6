package repository

import (
	"context"
	"time"

	"github.com/wekeepgrowing/irlquest-backend/internal/domain/entity"
)

// QuestFilter 퀘스트 목록 조회 조건
type QuestFilter struct {
	OwnerID string
	Status  *entity.QuestStatus
	Limit   int
	Offset  int
}

// QuestRepository 퀘스트 저장소 인터페이스
type QuestRepository interface {
	FindByID(ctx context.Context, ownerID, id string) (*entity.Quest, error)
	List(ctx context.Context, filter QuestFilter) ([]*entity.Quest, error)
	Create(ctx context.Context, quest *entity.Quest) error
	Update(ctx context.Context, quest *entity.Quest) error
	MarkRewarded(ctx context.Context, ownerID, id string, at time.Time) (bool, error)
	Delete(ctx context.Context, ownerID, id string) (bool, error)
	CountByOwner(ctx context.Context, ownerID string) (entity.Counts, error)
}
