package repository

import (
	"context"
	"time"

	"github.com/wekeepgrowing/irlquest-backend/internal/domain/entity"
)

// FocusSessionRepository 집중 세션 저장소 인터페이스.
// 조회 결과가 없으면 (nil, nil)을 반환합니다.
type FocusSessionRepository interface {
	Create(ctx context.Context, session *entity.FocusSession) error
	FindByID(ctx context.Context, ownerID, id string) (*entity.FocusSession, error)
	// List 최근 시작 순
	List(ctx context.Context, ownerID string, limit int) ([]*entity.FocusSession, error)
	Update(ctx context.Context, session *entity.FocusSession) error
	// End 진행 중인 세션만 종료합니다. 이미 종료됐거나 없으면 (nil, nil).
	End(ctx context.Context, ownerID, id string, endedAt time.Time, actualMinutes, rating *int) (*entity.FocusSession, error)
	FindActive(ctx context.Context, ownerID string) (*entity.FocusSession, error)
}
