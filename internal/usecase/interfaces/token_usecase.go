package interfaces

import (
	"context"

	"github.com/wekeepgrowing/irlquest-backend/internal/domain/entity"
)

// TokenUseCase 토큰 관련 유스케이스 인터페이스
type TokenUseCase interface {
	// GenerateAccessToken 사용자 정보로부터 액세스 토큰 생성
	GenerateAccessToken(ctx context.Context, user *entity.User) (string, error)

	// ValidateAccessToken 액세스 토큰 검증 후 활성 사용자 반환
	ValidateAccessToken(ctx context.Context, accessToken string) (*entity.User, error)
}
