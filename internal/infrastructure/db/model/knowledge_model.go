package model

import (
	"time"

	"gorm.io/datatypes"
)

// KnowledgeModel 생성 요청 로그/템플릿 지식 ORM 모델
type KnowledgeModel struct {
	ID          string         `gorm:"type:varchar(16);primaryKey" json:"id"`
	Content     string         `gorm:"type:text;not null" json:"content"`
	ContentType string         `gorm:"size:50;not null;index" json:"content_type"`
	Tags        datatypes.JSON `gorm:"type:jsonb" json:"tags"`
	Metadata    datatypes.JSON `gorm:"type:jsonb" json:"metadata"`
	CreatedAt   time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
}

// TableName 테이블 이름 지정
func (KnowledgeModel) TableName() string {
	return "rag_knowledge"
}
