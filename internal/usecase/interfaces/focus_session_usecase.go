package interfaces

import (
	"context"
	"time"

	"github.com/wekeepgrowing/irlquest-backend/internal/domain/entity"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/dto"
)

// FocusSessionUseCase 집중 세션 유스케이스 인터페이스
type FocusSessionUseCase interface {
	Start(ctx context.Context, actor *entity.User, params dto.StartFocusSessionParams) (*entity.FocusSession, error)
	List(ctx context.Context, actor *entity.User, limit int) ([]*entity.FocusSession, error)
	Get(ctx context.Context, actor *entity.User, id string) (*entity.FocusSession, error)
	Update(ctx context.Context, actor *entity.User, id string, params dto.UpdateFocusSessionParams) (*entity.FocusSession, error)
	// End 진행 중인 세션을 종료하고 오늘의 통계에 반영합니다
	End(ctx context.Context, actor *entity.User, id string, params dto.EndFocusSessionParams) (*entity.FocusSession, error)
	// Active 진행 중인 세션. 없으면 (nil, nil).
	Active(ctx context.Context, actor *entity.User) (*entity.FocusSession, error)
}

// StatsUseCase 일일/주간 활동 통계 유스케이스 인터페이스.
// 날짜는 사용자 시간대 기준입니다.
type StatsUseCase interface {
	Today(ctx context.Context, actor *entity.User) (*entity.DailyStats, error)
	Daily(ctx context.Context, actor *entity.User, date time.Time) (*entity.DailyStats, error)
	CurrentWeek(ctx context.Context, actor *entity.User) (*entity.WeeklyStats, error)
	Weekly(ctx context.Context, actor *entity.User, weekStart time.Time) (*entity.WeeklyStats, error)
	Summary(ctx context.Context, actor *entity.User) (*entity.StatsSummary, error)
}
