package repository

import (
	"context"

	"github.com/wekeepgrowing/irlquest-backend/internal/domain/entity"
)

// KnowledgeRepository 지식 레코드 저장소 인터페이스
type KnowledgeRepository interface {
	Create(ctx context.Context, knowledge *entity.Knowledge) error
	// Search 내용 부분 일치(대소문자 무시) 또는 태그 일치, 최신순
	Search(ctx context.Context, query string, limit int) ([]*entity.Knowledge, error)
	ExistsByContent(ctx context.Context, content string) (bool, error)
}
