package questgen

import (
	"strconv"
	"strings"
)

const (
	generatedTag = "generated"
	bossTag      = "boss"
	// EnhancedLabel 작업 강화 시 테마 대신 사용하는 라벨
	EnhancedLabel = "enhanced"
)

// Tags 텍스트에서 태그 목록을 만듭니다.
// 순서: 테마 라벨, "generated", 카테고리(work, learning, health, home), "boss", "difficulty:N"
func Tags(text, themeLabel string) []string {
	lower := strings.ToLower(text)

	tags := make([]string, 0, 2+len(categoryGroups)+2)
	tags = append(tags, themeLabel, generatedTag)

	for _, group := range categoryGroups {
		if containsAny(lower, group.keywords) {
			tags = append(tags, group.tag)
		}
	}

	if containsAny(lower, bossMarkers) {
		tags = append(tags, bossTag)
	}

	tags = append(tags, DifficultyTag(EstimateDifficulty(text, 1)))
	return tags
}

// DifficultyTag "difficulty:N" 형태의 태그
func DifficultyTag(difficulty int) string {
	return "difficulty:" + strconv.Itoa(difficulty)
}
