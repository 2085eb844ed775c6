package db

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wekeepgrowing/irlquest-backend/internal/infrastructure/db/model"
)

// AllModels 마이그레이션 대상 모델
func AllModels() []interface{} {
	return []interface{}{
		&model.UserModel{},
		&model.QuestModel{},
		&model.TaskModel{},
		&model.KnowledgeModel{},
		&model.FocusSessionModel{},
		&model.DailyStatsModel{},
	}
}

// 태그 배열 검색용 GIN 인덱스와 부분 인덱스
var customIndexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_rag_knowledge_tags ON rag_knowledge USING GIN (tags jsonb_path_ops)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_owner_status ON tasks (owner_id, status) WHERE deleted_at IS NULL`,
	`CREATE INDEX IF NOT EXISTS idx_focus_sessions_active ON focus_sessions (owner_id) WHERE ended_at IS NULL`,
}

// Migrate 데이터베이스 스키마 마이그레이션
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("데이터베이스 마이그레이션 시작")

	if err := db.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("자동 마이그레이션 실패: %w", err)
	}

	for _, stmt := range customIndexes {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("인덱스 생성 실패: %w", err)
		}
	}

	logger.Info("데이터베이스 마이그레이션 완료", zap.Int("models", len(AllModels())))
	return nil
}
