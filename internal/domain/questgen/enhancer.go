package questgen

import "fmt"

const enhanceStory = "In the grand adventure of life, every task completed brings you one step closer to mastering your destiny. " +
	"This particular challenge has been crafted by the gods of productivity to help you grow stronger."

// EnhancedTask 단일 작업에 서사를 입힌 결과
type EnhancedTask struct {
	EnhancedTitle       string   `json:"enhanced_title" yaml:"enhanced_title"`
	EnhancedDescription string   `json:"enhanced_description" yaml:"enhanced_description"`
	SuggestedDifficulty int      `json:"suggested_difficulty" yaml:"suggested_difficulty"`
	SuggestedExperience int      `json:"suggested_experience" yaml:"suggested_experience"`
	StoryContext        string   `json:"story_context,omitempty" yaml:"story_context,omitempty"`
	SuggestedTags       []string `json:"suggested_tags" yaml:"suggested_tags"`
}

// Enhance 하위 작업 분해 없이 작업 하나를 꾸밉니다.
// 테마 분류를 하지 않으며 경험치는 퀘스트와 달리 3배가 아닙니다.
func Enhance(req Request) EnhancedTask {
	difficulty := req.difficulty()
	level := req.level()

	return EnhancedTask{
		EnhancedTitle: fmt.Sprintf("Epic %s: %s", ladder(taskKinds, difficulty), Essence(req.Text)),
		EnhancedDescription: fmt.Sprintf(
			"Behold, Level %d adventurer! Your mission: %s. "+
				"This %s challenge will test your skills and grant you valuable experience upon completion. "+
				"Prepare yourself for an epic journey of productivity!",
			level, req.Text, ladder(enhanceLadder, difficulty),
		),
		SuggestedDifficulty: difficulty,
		SuggestedExperience: BaseExperience(difficulty, level),
		StoryContext:        enhanceStory,
		SuggestedTags:       req.tags(EnhancedLabel),
	}
}
