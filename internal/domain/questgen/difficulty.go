package questgen

import "strings"

const (
	MinDifficulty = 1
	MaxDifficulty = 5

	baselineDifficulty = 2
	// 레벨 보정 기준
	veteranLevel = 10
	// 레벨당 추가 경험치
	experiencePerLevel = 5
)

// 난이도별 기본 경험치 (인덱스 = 난이도)
var baseExperienceTable = [MaxDifficulty + 1]int{0, 10, 25, 50, 100, 200}

// ClampDifficulty 난이도를 [1,5] 범위로 보정합니다
func ClampDifficulty(d int) int {
	if d < MinDifficulty {
		return MinDifficulty
	}
	if d > MaxDifficulty {
		return MaxDifficulty
	}
	return d
}

// EstimateDifficulty 단어 수와 키워드로 난이도를 추정합니다.
//
//   - 기본값 2, 3단어 미만이면 1, 10단어 초과면 3
//   - 복잡도 키워드가 있으면 +1, 단순 키워드가 있으면 -1 (0 미만으로 내려가지 않음)
//   - actorLevel > 10 이면 +1
//   - 마지막에 [1,5]로 보정
func EstimateDifficulty(text string, actorLevel int) int {
	difficulty := baselineDifficulty

	words := len(strings.Fields(text))
	switch {
	case words < 3:
		difficulty = 1
	case words > 10:
		difficulty = baselineDifficulty + 1
	}

	lower := strings.ToLower(text)
	if containsAny(lower, complexityKeywords) {
		difficulty++
	}
	if containsAny(lower, simplicityKeywords) && difficulty > 0 {
		difficulty--
	}

	if actorLevel > veteranLevel {
		difficulty++
	}

	return ClampDifficulty(difficulty)
}

// BaseExperience 보정된 난이도와 레벨로 기본 경험치를 계산합니다
func BaseExperience(difficulty, actorLevel int) int {
	return baseExperienceTable[ClampDifficulty(difficulty)] + normalizeLevel(actorLevel)*experiencePerLevel
}

func normalizeLevel(level int) int {
	if level < 1 {
		return 1
	}
	return level
}
