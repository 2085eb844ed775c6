package usecase

import (
	"fmt"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/crypto/bcrypt"
)

const (
	idDigits = "0123456789"
	idAlnum  = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// GenerateID 접두사 + 숫자 2자리 + 영숫자 9자리 형태의 공개 ID를 생성합니다.
// 예: 접두사 'T' → T12ABC345XY
func GenerateID(prefix string) (string, error) {
	twoDigits, err := gonanoid.Generate(idDigits, 2)
	if err != nil {
		return "", fmt.Errorf("ID 숫자부 생성 실패: %w", err)
	}

	nineAlnum, err := gonanoid.Generate(idAlnum, 9)
	if err != nil {
		return "", fmt.Errorf("ID 영숫자부 생성 실패: %w", err)
	}

	return strings.ToUpper(prefix + twoDigits + nineAlnum), nil
}

// HashPassword는 비밀번호를 bcrypt로 해싱합니다. cost가 유효 범위를 벗어나면 기본값을 사용합니다.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword는 제공된 비밀번호가 저장된 해시와 일치하는지 확인합니다.
func VerifyPassword(hashedPassword, inputPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(inputPassword))
}

// ExtractUsernameFromEmail은 이메일에서 사용자 이름 부분을 추출합니다.
func ExtractUsernameFromEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) > 0 {
		return parts[0]
	}
	return ""
}

func derefInt(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}
