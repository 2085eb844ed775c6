package questgen

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Rendering 템플릿으로 만든 퀘스트 문구
type Rendering struct {
	Title        string
	Description  string
	StoryContext string
}

// themeTemplates 테마별 템플릿 묶음
type themeTemplates struct {
	// titles 각 항목에 "%s" 자리표시자가 하나씩 있습니다
	titles      [5]string
	description func(text string, difficulty, level int) string
	story       string
}

var fantasyTemplates = themeTemplates{
	titles: [5]string{
		"The Sacred Mission of %s",
		"Quest for the %s Artifact",
		"The %s Chronicle",
		"Legend of the %s Hero",
		"The %s Prophecy",
	},
	description: func(text string, difficulty, level int) string {
		return fmt.Sprintf(
			"In the mystical realm of productivity, a great challenge awaits. The ancient scrolls speak of %s. "+
				"Only a hero of your caliber (Level %d) can undertake this %s difficulty quest. "+
				"The kingdom depends on your success, brave adventurer!",
			strings.ToLower(text), level, ladder(fantasyLadder, difficulty),
		)
	},
	story: "The Council of Elders has bestowed upon you this sacred mission. Your actions will echo through the halls of history. " +
		"Complete this quest to gain favor with the magical forces and unlock new powers in your journey of self-improvement.",
}

var sciFiTemplates = themeTemplates{
	titles: [5]string{
		"Mission: %s",
		"Protocol %s",
		"Operation %s",
		"The %s Directive",
		"Project: %s",
	},
	description: func(text string, difficulty, level int) string {
		return fmt.Sprintf(
			"Stardate 2024.%d: Commander, your mission parameters are clear. The task '%s' is classified as Priority Level %d. "+
				"Your current rank (Level %d) qualifies you for this operation. The future of the galaxy may depend on its completion.",
			stringHash(text)%365+1, text, difficulty, level,
		)
	},
	story: "The Galactic Council has transmitted this critical mission to your personal datapad. " +
		"Success will advance your standing in the Space Fleet and unlock advanced technologies for future missions.",
}

var modernTemplates = themeTemplates{
	titles: [5]string{
		"The %s Challenge",
		"Project: %s",
		"%s Goals",
		"The %s Initiative",
		"Mission: %s",
	},
	description: func(text string, difficulty, level int) string {
		return fmt.Sprintf(
			"Welcome to your personal development journey! Today's challenge: '%s'. "+
				"This is a Level %d difficulty task, perfect for someone at your current stage (Level %d). "+
				"Complete this to boost your productivity score and unlock new achievements!",
			text, difficulty, level,
		)
	},
	story: "You're part of an elite group of productivity ninjas. Each completed task brings you closer to " +
		"mastering the art of getting things done and achieving your life goals.",
}

var medievalTemplates = themeTemplates{
	titles: [5]string{
		"The %s Crusade",
		"Quest of the %s Knight",
		"The %s Tournament",
		"The Royal %s Decree",
		"The %s Pilgrimage",
	},
	description: func(text string, difficulty, level int) string {
		return fmt.Sprintf(
			"Hark! Noble knight of Level %d, the King hath decreed that ye must undertake the sacred duty: '%s'. "+
				"This quest of %s difficulty shall test thy mettle and bring great honor to thy name. "+
				"May the blessing of the realm be upon thee!",
			level, text, ladder(medievalLadder, difficulty),
		)
	},
	story: "In the grand halls of the castle, bards sing tales of heroes who complete such quests. " +
		"Your success shall be recorded in the annals of history for future generations to admire.",
}

// 난이도 형용사 (인덱스 = 난이도 - 1)
var (
	fantasyLadder  = [MaxDifficulty]string{"trivial", "easy", "moderate", "hard", "legendary"}
	medievalLadder = [MaxDifficulty]string{"simple", "modest", "worthy", "perilous", "legendary"}
	enhanceLadder  = [MaxDifficulty]string{"simple", "moderate", "challenging", "formidable", "legendary"}
	taskKinds      = [MaxDifficulty]string{"Errand", "Task", "Mission", "Quest", "Legendary Feat"}
)

func ladder(words [MaxDifficulty]string, difficulty int) string {
	return words[ClampDifficulty(difficulty)-1]
}

func templatesFor(theme Theme) *themeTemplates {
	switch theme {
	case Fantasy:
		return &fantasyTemplates
	case SciFi:
		return &sciFiTemplates
	case Modern:
		return &modernTemplates
	case Medieval:
		return &medievalTemplates
	}
	panic(fmt.Sprintf("questgen: no templates for theme %d", int(theme)))
}

// Render 테마 템플릿으로 제목, 설명, 배경 이야기를 만듭니다.
// 제목 변형은 stringHash(text) % 5 로 고릅니다.
func Render(theme Theme, text string, difficulty, level int) Rendering {
	tpl := templatesFor(theme)
	title := tpl.titles[stringHash(text)%uint64(len(tpl.titles))]

	return Rendering{
		Title:        fmt.Sprintf(title, Essence(text)),
		Description:  tpl.description(text, difficulty, level),
		StoryContext: tpl.story,
	}
}

// stringHash 다항식 롤링 해시 (h = h*31 + byte, uint64 오버플로 허용)
func stringHash(s string) uint64 {
	var h uint64
	for i := 0; i < len(s); i++ {
		h = h*31 + uint64(s[i])
	}
	return h
}

// Essence 앞 세 단어를 타이틀 케이스로 만듭니다
func Essence(text string) string {
	words := strings.Fields(text)
	if len(words) > 3 {
		words = words[:3]
	}
	for i, w := range words {
		words[i] = titleWord(w)
	}
	return strings.Join(words, " ")
}

// titleWord 첫 글자는 대문자, 나머지는 소문자
func titleWord(word string) string {
	first, size := utf8.DecodeRuneInString(word)
	if first == utf8.RuneError && size <= 1 {
		return strings.ToLower(word)
	}
	return string(unicode.ToUpper(first)) + strings.ToLower(word[size:])
}
