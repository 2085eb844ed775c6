package dto

// AddKnowledgeParams 지식 레코드 추가 매개변수
type AddKnowledgeParams struct {
	Content     string
	ContentType string
	Tags        []string
	Metadata    map[string]interface{}
}
