package questgen

import (
	"fmt"
	"strings"
)

// Theme 퀘스트 서사 장르
type Theme int

const (
	Fantasy Theme = iota
	SciFi
	Modern
	Medieval
)

// Themes 모든 테마 (정의 순서)
var Themes = [...]Theme{Fantasy, SciFi, Modern, Medieval}

// String 테마 라벨 ("fantasy", "sci-fi", "modern", "medieval")
func (t Theme) String() string {
	switch t {
	case Fantasy:
		return "fantasy"
	case SciFi:
		return "sci-fi"
	case Modern:
		return "modern"
	case Medieval:
		return "medieval"
	}
	panic(fmt.Sprintf("questgen: unknown theme %d", int(t)))
}

// Valid 정의된 테마인지 확인합니다
func (t Theme) Valid() bool {
	return t >= Fantasy && t <= Medieval
}

// ParseTheme 라벨을 테마로 변환합니다. 대소문자를 구분하지 않습니다.
func ParseTheme(label string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "fantasy":
		return Fantasy, nil
	case "sci-fi", "scifi", "sci_fi":
		return SciFi, nil
	case "modern":
		return Modern, nil
	case "medieval":
		return Medieval, nil
	}
	return Fantasy, fmt.Errorf("unknown theme %q", label)
}

func (t Theme) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("unknown theme %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *Theme) UnmarshalText(text []byte) error {
	parsed, err := ParseTheme(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
