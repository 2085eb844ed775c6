package questgen

// 키워드 테이블. 모두 소문자이며 부분 문자열로 비교합니다.
// 영어 키워드와 러시아어 어간을 함께 둡니다.
var (
	studyKeywords = []string{
		"exam", "lecture", "course", "study", "homework", "thesis",
		"экзамен", "зачет", "лекция", "курс",
	}

	technicalKeywords = []string{
		"api", "deploy", "cloud", "project", "data",
		"данные",
	}

	householdKeywords = []string{
		"clean", "home", "shopping", "groceries", "laundry",
		"уборк", "дом", "покупк", "домашн",
	}

	bossMarkers = []string{
		"deadline", "exam", "presentation", "release", "interview", "defense",
		"дедлайн", "экзамен", "зачет", "защита", "презентация", "релиз", "собеседование",
	}

	// 난이도 키워드는 어떤 할 일에도 붙는 동사(complete, finish, read)를 뺍니다.
	// read는 ready, already 같은 단어에도 부분 일치합니다.
	complexityKeywords = []string{
		"complex", "difficult", "challenging", "hard", "advanced", "expert",
		"project", "develop", "build", "create",
	}

	simplicityKeywords = []string{
		"simple", "easy", "quick", "basic", "straightforward",
		"check", "call", "email", "buy",
	}
)

// categoryGroup 도메인 카테고리 태그와 그 키워드
type categoryGroup struct {
	tag      string
	keywords []string
}

// 태그 출력 순서를 고정하기 위해 슬라이스로 둡니다
var categoryGroups = []categoryGroup{
	{tag: "work", keywords: []string{"work", "job", "office"}},
	{tag: "learning", keywords: []string{"study", "learn", "read"}},
	{tag: "health", keywords: []string{"exercise", "gym", "health"}},
	{tag: "home", keywords: []string{"clean", "organize", "tidy"}},
}
