package interfaces

import (
	"context"

	"github.com/wekeepgrowing/irlquest-backend/internal/domain/entity"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/dto"
)

// AuthUseCase 인증 관련 유스케이스 인터페이스
type AuthUseCase interface {
	// Register 사용자 회원가입
	Register(ctx context.Context, params dto.RegisterParams) (*entity.User, error)

	// Login 사용자 이름 또는 이메일과 비밀번호로 로그인
	Login(ctx context.Context, params dto.LoginParams) (*dto.AuthResult, error)
}
