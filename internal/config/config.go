package config

import (
	"time"

	"go.uber.org/zap"

	"github.com/wekeepgrowing/irlquest-backend/pkg/config"
	"github.com/wekeepgrowing/irlquest-backend/pkg/logger"
)

// ServiceName 설정 파일 이름 및 환경 변수 접두사 (IRLQUEST_)
const ServiceName = "irlquest"

// Config IRL Quest 서비스 설정 구조체
type Config struct {
	// 서비스 기본 정보
	Service struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"service"`

	// 서버 설정
	Server struct {
		HTTP struct {
			Port            string   `yaml:"port"`
			Timeout         int      `yaml:"timeout"`
			Debug           bool     `yaml:"debug"`
			AllowedOrigins  []string `yaml:"allowed_origins"`
			ShutdownTimeout int      `yaml:"shutdown_timeout"`
		} `yaml:"http"`
	} `yaml:"server"`

	// 데이터베이스 설정
	Database struct {
		Driver          string `yaml:"driver"`
		Host            string `yaml:"host"`
		Port            int    `yaml:"port"`
		Name            string `yaml:"name"`
		User            string `yaml:"user"`
		Password        string `yaml:"password"`
		SSLMode         string `yaml:"ssl_mode"`
		MaxOpenConns    int    `yaml:"max_open_conns"`
		MaxIdleConns    int    `yaml:"max_idle_conns"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime"`
		LogLevel        string `yaml:"log_level"`
		SlowThreshold   int    `yaml:"slow_threshold_ms"`
		AutoMigrate     bool   `yaml:"auto_migrate"`
	} `yaml:"database"`

	// Redis 설정
	Redis struct {
		Enabled  bool   `yaml:"enabled"`
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	// JWT 설정
	JWT struct {
		Secret            string `yaml:"secret"`
		Issuer            string `yaml:"issuer"`
		AccessTokenExpiry int    `yaml:"access_token_expiry"` // 분
	} `yaml:"jwt"`

	// 로그 설정
	Log struct {
		Level    string `yaml:"level"`
		Format   string `yaml:"format"`
		Output   string `yaml:"output"`
		FilePath string `yaml:"file_path"`
	} `yaml:"log"`

	// 인증 설정
	Auth struct {
		PasswordMinLength int `yaml:"password_min_length"`
		HashCost          int `yaml:"hash_cost"`
	} `yaml:"auth"`

	// 생성 엔진 설정
	Generation struct {
		BulkMaxItems    int    `yaml:"bulk_max_items"`
		BulkParallelism int    `yaml:"bulk_parallelism"`
		RecorderWorkers int    `yaml:"recorder_workers"`
		RecorderBuffer  int    `yaml:"recorder_buffer"`
		EventChannel    string `yaml:"event_channel"`
	} `yaml:"generation"`

	// 퀘스트 캐시 설정
	Cache struct {
		Size   int           `yaml:"size"`
		TTL    time.Duration `yaml:"ttl"`
		Prefix string        `yaml:"prefix"`
	} `yaml:"cache"`

	// 로거 인스턴스
	Logger *zap.Logger
}

var (
	// AppConfig는 어플리케이션 전체에서 사용하는 설정 인스턴스입니다.
	AppConfig *Config
)

// Defaults 설정 파일이 없을 때 사용하는 기본값
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"service.name":                    ServiceName,
		"service.version":                 "dev",
		"server.http.port":                "8003",
		"server.http.timeout":             30,
		"server.http.allowed_origins":     []string{"*"},
		"server.http.shutdown_timeout":    10,
		"database.driver":                 "postgres",
		"database.host":                   "localhost",
		"database.port":                   5432,
		"database.name":                   "irlquest",
		"database.user":                   "postgres",
		"database.ssl_mode":               "disable",
		"database.max_open_conns":         20,
		"database.max_idle_conns":         5,
		"database.conn_max_lifetime":      300,
		"database.log_level":              "warn",
		"database.slow_threshold_ms":      500,
		"database.auto_migrate":           true,
		"redis.enabled":                   false,
		"redis.host":                      "localhost",
		"redis.port":                      6379,
		"jwt.issuer":                      ServiceName,
		"jwt.access_token_expiry":         60,
		"log.level":                       "info",
		"log.format":                      "json",
		"log.output":                      "stdout",
		"auth.password_min_length":        8,
		"auth.hash_cost":                  10,
		"generation.bulk_max_items":       500,
		"generation.bulk_parallelism":     8,
		"generation.recorder_workers":     2,
		"generation.recorder_buffer":      256,
		"generation.event_channel":        "irlquest.knowledge",
		"cache.size":                      1024,
		"cache.ttl":                       "1h",
		"cache.prefix":                    "irlquest:quest",
	}
}

// Load 설정 파일 로드. file이 비어 있으면 configs/{APP_ENV}/irlquest.yaml을 찾습니다.
func Load(file string) (*Config, error) {
	cfg, err := config.LoadWithOptions(ServiceName, config.Options{
		Defaults:         Defaults(),
		File:             file,
		AllowMissingFile: true,
	})
	if err != nil {
		return nil, err
	}

	appConfig := FromSource(cfg)

	// 로거 설정
	loggerConfig := logger.Config{
		Level:       appConfig.Log.Level,
		Format:      appConfig.Log.Format,
		Output:      appConfig.Log.Output,
		FilePath:    appConfig.Log.FilePath,
		Development: appConfig.Server.HTTP.Debug,
		Service:     appConfig.Service.Name,
		Version:     appConfig.Service.Version,
	}

	appConfig.Logger, err = logger.NewZapLogger(loggerConfig)
	if err != nil {
		return nil, err
	}

	if cfg.ConfigFileUsed() == "" {
		appConfig.Logger.Warn("설정 파일 없이 기본값과 환경 변수로 실행합니다")
	}

	// 전역 변수에 설정
	AppConfig = appConfig

	return appConfig, nil
}

// FromSource 키-값 설정 소스를 구조체로 매핑합니다
func FromSource(cfg config.Config) *Config {
	appConfig := &Config{}

	// 서비스 정보
	appConfig.Service.Name = cfg.GetString("service.name")
	appConfig.Service.Version = cfg.GetString("service.version")

	// HTTP 서버 설정
	appConfig.Server.HTTP.Port = cfg.GetString("server.http.port")
	appConfig.Server.HTTP.Timeout = cfg.GetInt("server.http.timeout")
	appConfig.Server.HTTP.Debug = cfg.GetBool("server.http.debug")
	appConfig.Server.HTTP.AllowedOrigins = cfg.GetStringSlice("server.http.allowed_origins")
	appConfig.Server.HTTP.ShutdownTimeout = cfg.GetInt("server.http.shutdown_timeout")

	// 데이터베이스 설정
	appConfig.Database.Driver = cfg.GetString("database.driver")
	appConfig.Database.Host = cfg.GetString("database.host")
	appConfig.Database.Port = cfg.GetInt("database.port")
	appConfig.Database.Name = cfg.GetString("database.name")
	appConfig.Database.User = cfg.GetString("database.user")
	appConfig.Database.Password = cfg.GetString("database.password")
	appConfig.Database.SSLMode = cfg.GetString("database.ssl_mode")
	appConfig.Database.MaxOpenConns = cfg.GetInt("database.max_open_conns")
	appConfig.Database.MaxIdleConns = cfg.GetInt("database.max_idle_conns")
	appConfig.Database.ConnMaxLifetime = cfg.GetInt("database.conn_max_lifetime")
	appConfig.Database.LogLevel = cfg.GetString("database.log_level")
	appConfig.Database.SlowThreshold = cfg.GetInt("database.slow_threshold_ms")
	appConfig.Database.AutoMigrate = cfg.GetBool("database.auto_migrate")

	// Redis 설정
	appConfig.Redis.Enabled = cfg.GetBool("redis.enabled")
	appConfig.Redis.Host = cfg.GetString("redis.host")
	appConfig.Redis.Port = cfg.GetInt("redis.port")
	appConfig.Redis.Password = cfg.GetString("redis.password")
	appConfig.Redis.DB = cfg.GetInt("redis.db")

	// JWT 설정
	appConfig.JWT.Secret = cfg.GetString("jwt.secret")
	appConfig.JWT.Issuer = cfg.GetString("jwt.issuer")
	appConfig.JWT.AccessTokenExpiry = cfg.GetInt("jwt.access_token_expiry")

	// 로그 설정
	appConfig.Log.Level = cfg.GetString("log.level")
	appConfig.Log.Format = cfg.GetString("log.format")
	appConfig.Log.Output = cfg.GetString("log.output")
	appConfig.Log.FilePath = cfg.GetString("log.file_path")

	// 인증 설정
	appConfig.Auth.PasswordMinLength = cfg.GetInt("auth.password_min_length")
	appConfig.Auth.HashCost = cfg.GetInt("auth.hash_cost")

	// 생성 엔진 설정
	appConfig.Generation.BulkMaxItems = cfg.GetInt("generation.bulk_max_items")
	appConfig.Generation.BulkParallelism = cfg.GetInt("generation.bulk_parallelism")
	appConfig.Generation.RecorderWorkers = cfg.GetInt("generation.recorder_workers")
	appConfig.Generation.RecorderBuffer = cfg.GetInt("generation.recorder_buffer")
	appConfig.Generation.EventChannel = cfg.GetString("generation.event_channel")

	// 캐시 설정
	appConfig.Cache.Size = cfg.GetInt("cache.size")
	appConfig.Cache.TTL = cfg.GetDuration("cache.ttl")
	appConfig.Cache.Prefix = cfg.GetString("cache.prefix")

	return appConfig
}

// Validate 실행에 필요한 값 확인
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errMissing("jwt.secret")
	}
	if len(c.JWT.Secret) < 16 {
		return errInvalid("jwt.secret", "16자 이상이어야 합니다")
	}
	return nil
}
