package repository

import (
	"context"
	"time"

	"github.com/wekeepgrowing/irlquest-backend/internal/domain/entity"
)

// TaskFilter 작업 목록 조회 조건
type TaskFilter struct {
	OwnerID string
	Status  *entity.TaskStatus
	QuestID *string
	Limit   int
	Offset  int
}

// TaskRepository 작업 저장소 인터페이스. 모든 조회는 소유자 범위로 제한됩니다.
type TaskRepository interface {
	FindByID(ctx context.Context, ownerID, id string) (*entity.Task, error)
	List(ctx context.Context, filter TaskFilter) ([]*entity.Task, error)
	Create(ctx context.Context, task *entity.Task) error
	Update(ctx context.Context, task *entity.Task) error
	// MarkRewarded 완료 보상 기록을 원자적으로 선점합니다. 이미 기록돼 있으면 false.
	MarkRewarded(ctx context.Context, ownerID, id string, at time.Time) (bool, error)
	Delete(ctx context.Context, ownerID, id string) (bool, error)
	CountByOwner(ctx context.Context, ownerID string) (entity.Counts, error)
	CountByQuest(ctx context.Context, questID string) (entity.Counts, error)
}
