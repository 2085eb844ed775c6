package repository

import (
	"context"
	"time"

	"github.com/wekeepgrowing/irlquest-backend/internal/domain/entity"
)

// DailyStatsRepository 일일 통계 저장소 인터페이스
type DailyStatsRepository interface {
	// FindOrCreate 해당 날짜의 통계를 조회하고 없으면 0으로 생성합니다
	FindOrCreate(ctx context.Context, ownerID string, date time.Time) (*entity.DailyStats, error)
	// ListRange from~to (양끝 포함) 날짜 순
	ListRange(ctx context.Context, ownerID string, from, to time.Time) ([]*entity.DailyStats, error)
	// Increment 증분을 원자적으로 더합니다 (upsert)
	Increment(ctx context.Context, ownerID string, date time.Time, delta entity.StatsDelta) error
	Summary(ctx context.Context, ownerID string) (entity.StatsSummary, error)
}
