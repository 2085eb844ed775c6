package interfaces

import (
	"context"

	"github.com/wekeepgrowing/irlquest-backend/internal/domain/entity"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/dto"
)

// QuestUseCase 퀘스트 유스케이스 인터페이스. 모든 연산은 actor 소유 범위로 제한됩니다.
type QuestUseCase interface {
	List(ctx context.Context, actor *entity.User, params dto.ListParams) ([]*entity.Quest, error)
	Create(ctx context.Context, actor *entity.User, params dto.CreateQuestParams) (*entity.Quest, error)
	Get(ctx context.Context, actor *entity.User, id string) (*entity.Quest, error)
	Update(ctx context.Context, actor *entity.User, id string, params dto.UpdateQuestParams) (*entity.Quest, error)
	Complete(ctx context.Context, actor *entity.User, id string) (*entity.Quest, error)
	Delete(ctx context.Context, actor *entity.User, id string) error
	// RefreshProgress 소속 작업 상태로 진행률을 다시 계산합니다
	RefreshProgress(ctx context.Context, ownerID, questID string) error
}
