package dto

import (
	"github.com/wekeepgrowing/irlquest-backend/internal/domain/entity"
)

// RegisterParams 사용자 회원가입 매개변수
type RegisterParams struct {
	Email    string
	Username string
	Password string

	AvatarURL string
	Bio       string
	Timezone  string
}

// LoginParams 로그인 매개변수. Identifier는 사용자 이름 또는 이메일입니다.
type LoginParams struct {
	Identifier string
	Password   string
}

// AuthResult 로그인 결과
type AuthResult struct {
	AccessToken string
	TokenType   string
	User        *entity.User
}
