// Package config는 애플리케이션 설정을 관리하는 패키지입니다.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 인터페이스는 설정 값에 액세스하기 위한 메서드를 정의합니다.
type Config interface {
	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool
	GetFloat64(key string) float64
	GetDuration(key string) time.Duration
	GetStringSlice(key string) []string
	GetStringMap(key string) map[string]interface{}
	IsSet(key string) bool
	GetAll() map[string]interface{}
	// ConfigFileUsed 실제로 읽은 설정 파일 경로 (없으면 빈 문자열)
	ConfigFileUsed() string
}

// viperConfig는 viper를 사용하여 Config 인터페이스를 구현합니다.
type viperConfig struct {
	v *viper.Viper
}

func (c *viperConfig) GetString(key string) string                   { return c.v.GetString(key) }
func (c *viperConfig) GetInt(key string) int                         { return c.v.GetInt(key) }
func (c *viperConfig) GetBool(key string) bool                       { return c.v.GetBool(key) }
func (c *viperConfig) GetFloat64(key string) float64                 { return c.v.GetFloat64(key) }
func (c *viperConfig) GetDuration(key string) time.Duration          { return c.v.GetDuration(key) }
func (c *viperConfig) GetStringSlice(key string) []string            { return c.v.GetStringSlice(key) }
func (c *viperConfig) GetStringMap(key string) map[string]interface{} { return c.v.GetStringMap(key) }
func (c *viperConfig) IsSet(key string) bool                         { return c.v.IsSet(key) }
func (c *viperConfig) GetAll() map[string]interface{}                { return c.v.AllSettings() }
func (c *viperConfig) ConfigFileUsed() string                        { return c.v.ConfigFileUsed() }

// 설정 디렉토리 경로
const configDir = "configs"

// Options 설정 로드 옵션
type Options struct {
	// Defaults 설정 파일과 환경 변수가 모두 없을 때 사용할 기본값
	Defaults map[string]interface{}
	// File 명시적으로 지정한 설정 파일 경로 (CLI 플래그 등)
	File string
	// AllowMissingFile 설정 파일이 없어도 기본값과 환경 변수로 진행할지 여부
	AllowMissingFile bool
}

// Load는 지정된 서비스 이름에 해당하는 설정 파일을 로드합니다.
func Load(serviceName string) (Config, error) {
	return LoadWithOptions(serviceName, Options{})
}

// LoadWithOptions는 기본값과 파일 경로 옵션을 적용하여 설정을 로드합니다.
// 우선순위: 환경 변수 > 설정 파일 > 기본값
func LoadWithOptions(serviceName string, opts Options) (Config, error) {
	v := viper.New()

	for key, value := range opts.Defaults {
		v.SetDefault(key, value)
	}

	// 환경 변수 설정
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev" // 기본 환경은 dev
	}

	v.SetConfigType("yaml")

	// 환경 변수 바인딩 설정 (예: IRLQUEST_SERVER_PORT)
	v.SetEnvPrefix(strings.ToUpper(serviceName))
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 명시적 파일이 주어진 경우 해당 파일만 사용
	if opts.File != "" {
		v.SetConfigFile(opts.File)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("설정 파일 로드 실패 (%s): %w", opts.File, err)
		}
		return &viperConfig{v: v}, nil
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		// 기본 경로는 현재 디렉토리의 configs/{env}/{service}.yaml
		configPath = filepath.Join(configDir, env)
	}

	v.SetConfigName(serviceName)
	v.AddConfigPath(configPath)

	if err := v.ReadInConfig(); err != nil {
		// configs/example 디렉토리에서 예제 설정 파일 시도
		v.AddConfigPath(filepath.Join(configDir, "example"))
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if opts.AllowMissingFile && errors.As(err, &notFound) {
				return &viperConfig{v: v}, nil
			}
			return nil, fmt.Errorf("설정 파일 로드 실패: %w", err)
		}
	}

	return &viperConfig{v: v}, nil
}
