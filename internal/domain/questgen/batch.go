package questgen

// TagRecord 데이터셋용 태그 결과
type TagRecord struct {
	TaskText            string   `json:"task_text" yaml:"task_text"`
	Tags                []string `json:"tags" yaml:"tags"`
	EstimatedDifficulty int      `json:"estimated_difficulty" yaml:"estimated_difficulty"`
	IsBoss              bool     `json:"is_boss" yaml:"is_boss"`
}

// TodoQuestPair 할 일과 생성된 퀘스트 쌍
type TodoQuestPair struct {
	TodoText string `json:"todo_text" yaml:"todo_text"`
	Quest    Quest  `json:"quest" yaml:"quest"`
}

// Tag 텍스트 하나에 대한 데이터셋 레코드
func Tag(text string) TagRecord {
	return TagRecord{
		TaskText:            text,
		Tags:                Tags(text, EnhancedLabel),
		EstimatedDifficulty: EstimateDifficulty(text, 1),
		IsBoss:              IsBoss(text),
	}
}

// TagTasks 입력 순서를 유지하며 각 텍스트에 태그를 붙입니다
func TagTasks(texts []string) []TagRecord {
	records := make([]TagRecord, len(texts))
	for i, text := range texts {
		records[i] = Tag(text)
	}
	return records
}

// BatchRequest 일괄 생성의 i번째 요청. 레벨은 항상 1입니다.
func BatchRequest(todo, context string, difficultyPreference *int) Request {
	req := Request{Text: todo, Context: context, ActorLevel: 1}
	if difficultyPreference != nil {
		d := ClampDifficulty(*difficultyPreference)
		req.DifficultyOverride = &d
	}
	return req
}

// GenerateQuests 입력 순서를 유지하며 할 일마다 퀘스트를 생성합니다
func GenerateQuests(todos []string, context string, difficultyPreference *int) []TodoQuestPair {
	pairs := make([]TodoQuestPair, len(todos))
	for i, todo := range todos {
		pairs[i] = TodoQuestPair{
			TodoText: todo,
			Quest:    Generate(BatchRequest(todo, context, difficultyPreference)),
		}
	}
	return pairs
}
