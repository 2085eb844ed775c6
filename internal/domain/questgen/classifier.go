package questgen

import "strings"

// Classify 텍스트에서 퀘스트 테마를 추론합니다.
// 학습 > 기술 > 가사 순으로 검사하며 아무것도 맞지 않으면 Fantasy입니다.
func Classify(text string) Theme {
	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, studyKeywords):
		return Modern
	case containsAny(lower, technicalKeywords):
		return SciFi
	case containsAny(lower, householdKeywords):
		return Modern
	default:
		return Fantasy
	}
}

// IsBoss 마감/시험처럼 중요도가 높은 작업인지 판단합니다
func IsBoss(text string) bool {
	return containsAny(strings.ToLower(text), bossMarkers)
}

// containsAny lower는 이미 소문자여야 합니다
func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
