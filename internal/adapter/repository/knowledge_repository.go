package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/wekeepgrowing/irlquest-backend/internal/adapter/mapper"
	"github.com/wekeepgrowing/irlquest-backend/internal/domain/entity"
	"github.com/wekeepgrowing/irlquest-backend/internal/domain/repository"
	"github.com/wekeepgrowing/irlquest-backend/internal/infrastructure/db/model"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 100
)

type KnowledgeRepositoryImpl struct {
	db *gorm.DB
}

// NewKnowledgeRepository 지식 레포지토리 구현체 생성
func NewKnowledgeRepository(db *gorm.DB) repository.KnowledgeRepository {
	return &KnowledgeRepositoryImpl{db: db}
}

func toKnowledgeModel(k *entity.Knowledge) *model.KnowledgeModel {
	return &model.KnowledgeModel{
		ID:          k.ID,
		Content:     k.Content,
		ContentType: k.ContentType,
		Tags:        mapper.TagsToJSON(k.Tags),
		Metadata:    mapper.MapToJSON(k.Metadata),
		CreatedAt:   k.CreatedAt,
	}
}

func toKnowledgeEntity(m *model.KnowledgeModel) *entity.Knowledge {
	return &entity.Knowledge{
		ID:          m.ID,
		Content:     m.Content,
		ContentType: m.ContentType,
		Tags:        mapper.TagsFromJSON(m.Tags),
		Metadata:    mapper.MapFromJSON(m.Metadata),
		CreatedAt:   m.CreatedAt,
	}
}

// Create 지식 레코드 저장
func (r *KnowledgeRepositoryImpl) Create(ctx context.Context, knowledge *entity.Knowledge) error {
	knowledgeModel := toKnowledgeModel(knowledge)
	if err := r.db.WithContext(ctx).Create(knowledgeModel).Error; err != nil {
		return err
	}
	knowledge.CreatedAt = knowledgeModel.CreatedAt
	return nil
}

// Search 내용 ILIKE 또는 태그 포함 검색 (최신순). 빈 검색어는 최신 레코드를 반환합니다.
func (r *KnowledgeRepositoryImpl) Search(ctx context.Context, query string, limit int) ([]*entity.Knowledge, error) {
	return r.searchQuery(r.db.WithContext(ctx), query, limit)
}

func (r *KnowledgeRepositoryImpl) searchQuery(tx *gorm.DB, query string, limit int) ([]*entity.Knowledge, error) {
	query = strings.TrimSpace(query)

	tx = tx.Model(&model.KnowledgeModel{})
	if query != "" {
		tx = tx.Where("content ILIKE ? OR tags @> ?",
			"%"+escapeLike(query)+"%",
			mapper.TagsToJSON([]string{query}),
		)
	}

	var models []model.KnowledgeModel
	if err := tx.Order("created_at DESC").Limit(searchLimit(limit)).Find(&models).Error; err != nil {
		return nil, err
	}

	results := make([]*entity.Knowledge, len(models))
	for i := range models {
		results[i] = toKnowledgeEntity(&models[i])
	}
	return results, nil
}

// ExistsByContent 동일한 내용의 레코드 존재 여부
func (r *KnowledgeRepositoryImpl) ExistsByContent(ctx context.Context, content string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.KnowledgeModel{}).
		Where("content = ?", content).
		Count(&count).Error
	return count > 0, err
}

func searchLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultSearchLimit
	case limit > maxSearchLimit:
		return maxSearchLimit
	}
	return limit
}

// escapeLike LIKE 패턴의 와일드카드 문자를 이스케이프합니다
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
