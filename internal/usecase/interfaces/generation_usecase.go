package interfaces

import (
	"context"

	"github.com/wekeepgrowing/irlquest-backend/internal/domain/entity"
	"github.com/wekeepgrowing/irlquest-backend/internal/domain/questgen"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/dto"
)

// GenerationUseCase 퀘스트 생성 엔진 유스케이스 인터페이스
type GenerationUseCase interface {
	// GenerateQuest 인증된 사용자의 레벨로 퀘스트를 생성합니다
	GenerateQuest(ctx context.Context, actor *entity.User, params dto.GenerateQuestParams) (*questgen.Quest, error)

	// EnhanceTask 작업 하나에 서사를 입힙니다
	EnhanceTask(ctx context.Context, actor *entity.User, params dto.EnhanceTaskParams) (*questgen.EnhancedTask, error)

	// TagTasks 데이터셋용 태그 레코드 생성
	TagTasks(ctx context.Context, texts []string) ([]questgen.TagRecord, error)

	// GenerateQuests 데이터셋용 일괄 퀘스트 생성 (입력 순서 유지)
	GenerateQuests(ctx context.Context, params dto.BulkGenerateParams) ([]questgen.TodoQuestPair, error)
}
