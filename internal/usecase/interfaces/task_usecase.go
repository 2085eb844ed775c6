package interfaces

import (
	"context"

	"github.com/wekeepgrowing/irlquest-backend/internal/domain/entity"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/dto"
)

// TaskUseCase 작업 유스케이스 인터페이스. 모든 연산은 actor 소유 범위로 제한됩니다.
type TaskUseCase interface {
	List(ctx context.Context, actor *entity.User, params dto.ListParams) ([]*entity.Task, error)
	Create(ctx context.Context, actor *entity.User, params dto.CreateTaskParams) (*entity.Task, error)
	Get(ctx context.Context, actor *entity.User, id string) (*entity.Task, error)
	Update(ctx context.Context, actor *entity.User, id string, params dto.UpdateTaskParams) (*entity.Task, error)
	// Complete 상태를 completed로 바꿉니다. 보상 규칙은 Update와 같습니다.
	Complete(ctx context.Context, actor *entity.User, id string) (*entity.Task, error)
	Delete(ctx context.Context, actor *entity.User, id string) error
}
