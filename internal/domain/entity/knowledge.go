package entity

import "time"

// 지식 레코드 콘텐츠 유형
const (
	ContentTypeQuestGenerationRequest = "quest_generation_request"
	ContentTypeTaskEnhancementRequest = "task_enhancement_request"
	ContentTypeTemplate               = "template"
)

// Knowledge 생성 요청 로그 및 템플릿 지식 레코드
type Knowledge struct {
	ID          string
	Content     string
	ContentType string
	Tags        []string
	Metadata    map[string]interface{}
	CreatedAt   time.Time
}
