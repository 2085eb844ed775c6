package config

import "fmt"

func errMissing(key string) error {
	return fmt.Errorf("필수 설정 누락: %s (환경 변수 IRLQUEST_%s)", key, envKey(key))
}

func errInvalid(key, reason string) error {
	return fmt.Errorf("잘못된 설정 %s: %s", key, reason)
}

func envKey(key string) string {
	out := make([]byte, len(key))
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c == '.':
			c = '_'
		case c >= 'a' && c <= 'z':
			c -= 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}
