package db

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wekeepgrowing/irlquest-backend/internal/config"
)

// Infrastructure 인프라스트럭처 구조체
type Infrastructure struct {
	DB          *gorm.DB
	RedisClient *redis.Client // redis.enabled=false 이면 nil
	logger      *zap.Logger
}

// NewInfrastructure 인프라스트럭처 초기화
func NewInfrastructure(cfg *config.Config) (*Infrastructure, error) {
	logger := cfg.Logger
	infrastructure := &Infrastructure{logger: logger}

	// 데이터베이스 연결 설정
	dbConfig := Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Name:            cfg.Database.Name,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
		SSLMode:         cfg.Database.SSLMode,
		LogLevel:        cfg.Database.LogLevel,
		SlowThreshold:   time.Duration(cfg.Database.SlowThreshold) * time.Millisecond,
	}

	var err error
	infrastructure.DB, err = NewPostgresDB(dbConfig, logger)
	if err != nil {
		return nil, err
	}

	// Redis는 선택 사항
	if cfg.Redis.Enabled {
		redisConfig := RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}

		infrastructure.RedisClient, err = NewRedisClient(redisConfig, logger)
		if err != nil {
			_ = infrastructure.Close()
			return nil, err
		}
	}

	logger.Info("인프라스트럭처 초기화 완료",
		zap.String("database", "PostgreSQL"),
		zap.Bool("redis", infrastructure.RedisClient != nil),
	)

	return infrastructure, nil
}

// Ping 준비 상태 확인 (DB 필수, Redis는 활성화된 경우에만)
func (i *Infrastructure) Ping(ctx context.Context) error {
	sqlDB, err := i.DB.DB()
	if err != nil {
		return fmt.Errorf("DB 인스턴스 획득 실패: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("데이터베이스 핑 실패: %w", err)
	}
	if i.RedisClient != nil {
		if err := i.RedisClient.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis 핑 실패: %w", err)
		}
	}
	return nil
}

// Close 모든 연결 종료
func (i *Infrastructure) Close() error {
	if i.DB != nil {
		sqlDB, err := i.DB.DB()
		if err != nil {
			return fmt.Errorf("DB 인스턴스 획득 실패: %w", err)
		}
		if err := sqlDB.Close(); err != nil {
			return fmt.Errorf("데이터베이스 연결 종료 실패: %w", err)
		}
	}

	if i.RedisClient != nil {
		if err := i.RedisClient.Close(); err != nil {
			return fmt.Errorf("Redis 연결 종료 실패: %w", err)
		}
	}

	i.logger.Info("모든 인프라스트럭처 연결 종료됨")
	return nil
}
