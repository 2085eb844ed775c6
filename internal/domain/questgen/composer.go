// Package questgen은 할 일 텍스트를 테마형 퀘스트로 바꾸는 규칙 기반 생성 엔진입니다.
//
// 모든 함수는 입력에만 의존하는 순수 함수이며 공유 상태가 없으므로
// 여러 고루틴에서 동시에 호출해도 안전합니다.
package questgen

import "fmt"

const (
	// QuestTypeGenerated 생성된 퀘스트의 quest_type
	QuestTypeGenerated = "generated"

	// 퀘스트 보상 배수
	questRewardMultiplier = 3

	preparationMinutes = 15
	completionMinutes  = 10
	executionMinutes   = 20
	singleTaskMinutes  = 30

	preparationDifficulty = 1
	completionDifficulty  = 2
)

// Request 생성 요청
type Request struct {
	// Text 원본 할 일 텍스트 (필수)
	Text string
	// Context 추가 힌트. 현재 규칙에서는 사용하지 않습니다.
	Context string
	// DifficultyOverride 지정 시 추정 대신 보정된 값을 사용
	DifficultyOverride *int
	// ActorLevel 1 미만이면 1로 취급
	ActorLevel int
	// TagOverride 지정 시 태그 생성기를 건너뜁니다
	TagOverride []string
	// ThemeOverride 지정 시 분류기를 건너뜁니다
	ThemeOverride *Theme
}

func (r Request) level() int {
	return normalizeLevel(r.ActorLevel)
}

func (r Request) difficulty() int {
	if r.DifficultyOverride != nil {
		return ClampDifficulty(*r.DifficultyOverride)
	}
	return EstimateDifficulty(r.Text, r.level())
}

func (r Request) tags(label string) []string {
	if r.TagOverride != nil {
		return append([]string(nil), r.TagOverride...)
	}
	return Tags(r.Text, label)
}

// Quest 생성된 퀘스트
type Quest struct {
	Title             string    `json:"title" yaml:"title"`
	Description       string    `json:"description" yaml:"description"`
	StoryContext      string    `json:"story_context,omitempty" yaml:"story_context,omitempty"`
	Theme             Theme     `json:"theme" yaml:"theme"`
	Difficulty        int       `json:"difficulty" yaml:"difficulty"`
	RewardExperience  int       `json:"reward_experience" yaml:"reward_experience"`
	RewardDescription string    `json:"reward_description" yaml:"reward_description"`
	Tags              []string  `json:"tags" yaml:"tags"`
	QuestType         string    `json:"quest_type" yaml:"quest_type"`
	Subtasks          []Subtask `json:"tasks" yaml:"tasks"`
}

// Subtask 퀘스트를 구성하는 하위 작업
type Subtask struct {
	Title             string `json:"title" yaml:"title"`
	Description       string `json:"description" yaml:"description"`
	Difficulty        int    `json:"difficulty" yaml:"difficulty"`
	ExperienceReward  int    `json:"experience_reward" yaml:"experience_reward"`
	EstimatedDuration *int   `json:"estimated_duration,omitempty" yaml:"estimated_duration,omitempty"`
	IsBoss            bool   `json:"is_boss" yaml:"is_boss"`
}

// BaseExperience 하위 작업에 분배되는 기본 경험치 (보상 총합 / 3)
func (q *Quest) BaseExperience() int {
	return q.RewardExperience / questRewardMultiplier
}

// Generate 요청으로부터 퀘스트를 생성합니다. 실패하지 않습니다.
func Generate(req Request) Quest {
	// 1. 난이도와 테마 결정
	difficulty := req.difficulty()
	theme := Classify(req.Text)
	if req.ThemeOverride != nil && req.ThemeOverride.Valid() {
		theme = *req.ThemeOverride
	}
	level := req.level()

	// 2. 템플릿 렌더링
	rendering := Render(theme, req.Text, difficulty, level)

	// 3. 보상 계산
	base := BaseExperience(difficulty, level)
	reward := base * questRewardMultiplier

	return Quest{
		Title:             rendering.Title,
		Description:       rendering.Description,
		StoryContext:      rendering.StoryContext,
		Theme:             theme,
		Difficulty:        difficulty,
		RewardExperience:  reward,
		RewardDescription: fmt.Sprintf("Complete this %s adventure to earn %d experience points and unlock new abilities!", theme, reward),
		Tags:              req.tags(theme.String()),
		QuestType:         QuestTypeGenerated,
		Subtasks:          Breakdown(req.Text, difficulty, base),
	}
}

// Breakdown 난이도 d만큼의 하위 작업으로 나눕니다.
// 각 보상은 base / d (정수 나눗셈)이므로 합계가 base보다 최대 d-1 작을 수 있습니다.
// 보스 판정은 첫 번째와 마지막 작업에만 원본 텍스트로 합니다.
func Breakdown(text string, difficulty, base int) []Subtask {
	d := ClampDifficulty(difficulty)
	boss := IsBoss(text)

	if d == 1 {
		return []Subtask{{
			Title:             "Complete: " + text,
			Description:       "Execute the main objective: " + text,
			Difficulty:        d,
			ExperienceReward:  base,
			EstimatedDuration: minutes(singleTaskMinutes * d),
			IsBoss:            boss,
		}}
	}

	share := base / d
	subtasks := make([]Subtask, 0, d)
	subtasks = append(subtasks, Subtask{
		Title:             "Preparation Phase",
		Description:       "Gather resources and prepare for: " + text,
		Difficulty:        preparationDifficulty,
		ExperienceReward:  share,
		EstimatedDuration: minutes(preparationMinutes),
		IsBoss:            boss,
	})

	for k := 1; k <= d-2; k++ {
		subtasks = append(subtasks, Subtask{
			Title:             fmt.Sprintf("Execution Phase %d", k),
			Description:       "Progress on objective: " + text,
			Difficulty:        d - 1,
			ExperienceReward:  share,
			EstimatedDuration: minutes(executionMinutes * d),
		})
	}

	subtasks = append(subtasks, Subtask{
		Title:             "Completion & Review",
		Description:       "Finalize and verify: " + text,
		Difficulty:        completionDifficulty,
		ExperienceReward:  share,
		EstimatedDuration: minutes(completionMinutes),
		IsBoss:            boss,
	})

	return subtasks
}

func minutes(m int) *int {
	return &m
}

// Clone 슬라이스까지 복사한 사본
func (q Quest) Clone() Quest {
	out := q
	if q.Tags != nil {
		out.Tags = append([]string(nil), q.Tags...)
	}
	if q.Subtasks != nil {
		out.Subtasks = make([]Subtask, len(q.Subtasks))
		for i, s := range q.Subtasks {
			out.Subtasks[i] = s
			if s.EstimatedDuration != nil {
				out.Subtasks[i].EstimatedDuration = minutes(*s.EstimatedDuration)
			}
		}
	}
	return out
}
