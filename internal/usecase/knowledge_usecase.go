package usecase

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/wekeepgrowing/irlquest-backend/internal/domain/entity"
	"github.com/wekeepgrowing/irlquest-backend/internal/domain/repository"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/constants"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/dto"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/interfaces"
	apperrors "github.com/wekeepgrowing/irlquest-backend/pkg/errors"
)

// defaultKnowledge 초기 템플릿 지식
var defaultKnowledge = []dto.AddKnowledgeParams{
	{
		Content:     "Fantasy quest templates for turning everyday tasks into epic adventures",
		ContentType: entity.ContentTypeTemplate,
		Tags:        []string{"fantasy", "template", "quest"},
		Metadata:    map[string]interface{}{"category": "quest_template", "theme": "fantasy"},
	},
	{
		Content:     "Sci-fi themed quest generation for futuristic task enhancement",
		ContentType: entity.ContentTypeTemplate,
		Tags:        []string{"sci-fi", "template", "quest"},
		Metadata:    map[string]interface{}{"category": "quest_template", "theme": "sci-fi"},
	},
	{
		Content:     "Modern productivity themes for realistic task gamification",
		ContentType: entity.ContentTypeTemplate,
		Tags:        []string{"modern", "template", "productivity"},
		Metadata:    map[string]interface{}{"category": "quest_template", "theme": "modern"},
	},
}

// KnowledgeUseCase 지식 레코드 유스케이스 구현체
type KnowledgeUseCase struct {
	logger              *zap.Logger
	knowledgeRepository repository.KnowledgeRepository
}

// NewKnowledgeUseCase 새 지식 유스케이스 생성
func NewKnowledgeUseCase(
	logger *zap.Logger,
	knowledgeRepo repository.KnowledgeRepository,
) interfaces.KnowledgeUseCase {
	return &KnowledgeUseCase{
		logger:              logger,
		knowledgeRepository: knowledgeRepo,
	}
}

// Add 지식 레코드 추가
func (uc *KnowledgeUseCase) Add(ctx context.Context, params dto.AddKnowledgeParams) (*entity.Knowledge, error) {
	// 1. 입력 검증
	content := strings.TrimSpace(params.Content)
	if content == "" {
		return nil, apperrors.InvalidArgument("내용은 필수입니다")
	}
	contentType := strings.TrimSpace(params.ContentType)
	if contentType == "" {
		return nil, apperrors.InvalidArgument("콘텐츠 유형은 필수입니다")
	}

	id, err := GenerateID(constants.KnowledgeIDPrefix)
	if err != nil {
		return nil, apperrors.Internal("지식 ID 생성 실패", err)
	}

	metadata := params.Metadata
	if metadata == nil {
		metadata = map[string]interface{}{}
	}

	// 2. 저장
	knowledge := &entity.Knowledge{
		ID:          id,
		Content:     content,
		ContentType: contentType,
		Tags:        normalizeTags(params.Tags),
		Metadata:    metadata,
		CreatedAt:   time.Now(),
	}

	if err := uc.knowledgeRepository.Create(ctx, knowledge); err != nil {
		return nil, apperrors.Internal("지식 레코드 저장 실패", err)
	}

	return knowledge, nil
}

// Search 내용 부분 일치 또는 태그 일치로 검색합니다 (최신순)
func (uc *KnowledgeUseCase) Search(ctx context.Context, query string, limit int) ([]*entity.Knowledge, error) {
	switch {
	case limit <= 0:
		limit = constants.KnowledgeSearchLimit
	case limit > constants.KnowledgeSearchMaxLimit:
		limit = constants.KnowledgeSearchMaxLimit
	}

	results, err := uc.knowledgeRepository.Search(ctx, strings.TrimSpace(query), limit)
	if err != nil {
		return nil, apperrors.Internal("지식 검색 실패", err)
	}
	return results, nil
}

// SeedDefaults 기본 템플릿 지식을 추가합니다. 같은 내용이 이미 있으면 건너뜁니다.
func (uc *KnowledgeUseCase) SeedDefaults(ctx context.Context) (int, error) {
	added := 0
	for _, params := range defaultKnowledge {
		exists, err := uc.knowledgeRepository.ExistsByContent(ctx, params.Content)
		if err != nil {
			return added, apperrors.Internal("기본 지식 확인 실패", err)
		}
		if exists {
			continue
		}

		if _, err := uc.Add(ctx, params); err != nil {
			return added, err
		}
		added++
	}

	uc.logger.Info("기본 지식 초기화 완료", zap.Int("added", added))
	return added, nil
}
