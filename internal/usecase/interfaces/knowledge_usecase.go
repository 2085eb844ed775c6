package interfaces

import (
	"context"

	"github.com/wekeepgrowing/irlquest-backend/internal/domain/entity"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/dto"
)

// KnowledgeUseCase 지식 레코드 유스케이스 인터페이스
type KnowledgeUseCase interface {
	Add(ctx context.Context, params dto.AddKnowledgeParams) (*entity.Knowledge, error)
	Search(ctx context.Context, query string, limit int) ([]*entity.Knowledge, error)
	// SeedDefaults 기본 템플릿 레코드를 추가하고 새로 추가된 개수를 반환합니다
	SeedDefaults(ctx context.Context) (int, error)
}

// KnowledgeRecorder 생성 요청을 비동기로 기록합니다
type KnowledgeRecorder interface {
	// Record 절대 블록하지 않습니다. 버퍼가 가득 차면 버리고 false를 반환합니다.
	Record(knowledge *entity.Knowledge) bool
	// Close 남은 레코드를 처리하고 워커를 종료합니다
	Close(ctx context.Context) error
}
