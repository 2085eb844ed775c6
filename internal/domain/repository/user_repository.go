package repository

import (
	"context"

	"github.com/wekeepgrowing/irlquest-backend/internal/domain/entity"
)

// UserRepository 사용자 저장소 인터페이스.
// 조회 결과가 없으면 (nil, nil)을 반환합니다.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	// AddExperience 경험치와 레벨을 원자적으로 갱신하고 갱신된 사용자를 반환합니다
	AddExperience(ctx context.Context, id string, xp int) (*entity.User, error)
}
