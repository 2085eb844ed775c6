package dto

import (
	"github.com/wekeepgrowing/irlquest-backend/internal/domain/questgen"
)

// GenerateQuestParams 퀘스트 생성 매개변수
type GenerateQuestParams struct {
	TodoText             string
	Context              string
	DifficultyPreference *int
	ThemePreference      *questgen.Theme
	TagsOverride         []string
}

// EnhanceTaskParams 작업 강화 매개변수
type EnhanceTaskParams struct {
	TaskText             string
	Context              string
	DifficultyPreference *int
}

// BulkGenerateParams 일괄 퀘스트 생성 매개변수
type BulkGenerateParams struct {
	Todos                []string
	Context              string
	DifficultyPreference *int
}
