package constants

import "time"

// 공개 ID 접두사
const (
	UserIDPrefix      = "U"
	TaskIDPrefix      = "T"
	QuestIDPrefix     = "Q"
	KnowledgeIDPrefix = "K"
	FocusIDPrefix     = "F"
)

// 토큰 관련 상수
const (
	// AccessTokenExpiry 액세스 토큰 기본 만료 시간 (분)
	AccessTokenExpiry = 60

	// TokenType 응답에 실리는 토큰 유형
	TokenType = "bearer"

	// PasswordMinLength 최소 비밀번호 길이 기본값
	PasswordMinLength = 8
)

// 생성 관련 상수
const (
	// BulkMaxItems 일괄 생성 요청 최대 항목 수 기본값
	BulkMaxItems = 500

	// BulkParallelism 일괄 생성 동시 실행 수 기본값
	BulkParallelism = 8

	// RecordTimeout 지식 레코드 하나를 저장하고 발행하는 데 허용하는 시간
	RecordTimeout = 5 * time.Second
)

// 집중 세션 제한
const (
	// MaxFocusMinutes 세션 하나의 최대 계획/실제 시간 (분)
	MaxFocusMinutes = 480

	// FocusSessionListLimit 세션 목록 기본 개수
	FocusSessionListLimit = 50
)

// 지식 검색 기본값
const (
	KnowledgeSearchLimit    = 10
	KnowledgeSearchMaxLimit = 100
)

// 지식 레코드 메타데이터의 type 값
const (
	KnowledgeTypeQuestGeneration = "quest_generation"
	KnowledgeTypeTaskEnhancement = "task_enhancement"
)

var (
	// QuestGenerationTags 퀘스트 생성 요청 레코드 태그
	QuestGenerationTags = []string{"request", "todo", "generation"}

	// TaskEnhancementTags 작업 강화 요청 레코드 태그
	TaskEnhancementTags = []string{"request", "task", "enhancement"}
)
