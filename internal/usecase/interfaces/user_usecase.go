package interfaces

import (
	"context"

	"github.com/wekeepgrowing/irlquest-backend/internal/domain/entity"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/dto"
)

// UserUseCase 사용자 프로필 유스케이스 인터페이스
type UserUseCase interface {
	GetProfile(ctx context.Context, userID string) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID string, params dto.UpdateProfileParams) (*entity.User, error)
	GetStats(ctx context.Context, userID string) (*entity.UserStats, error)
}
