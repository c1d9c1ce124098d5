package domain

// Bundle is one self-contained unit of content: a topic (possibly shared
// with other bundles), its lessons, and per-lesson examples and quiz
// questions. The seeder applies a bundle atomically and uses ID as the
// ingestion-tracking key.
type Bundle struct {
	ID              string
	Topic           TopicSeed
	Lessons         []LessonSeed
	ExamplesBySlug  map[string][]CodeExampleSeed
	QuestionsBySlug map[string][]QuizQuestionSeed
}

// TopicSeed carries the topic attributes a bundle declares. When the topic
// already exists these must match the stored row exactly.
type TopicSeed struct {
	Slug          string
	Name          string
	Description   string
	EstimatedTime int
	OrderIndex    int
}

// LessonSeed is the authored form of a lesson.
type LessonSeed struct {
	Slug            string
	Title           string
	Summary         string
	DifficultyLevel string
	EstimatedTime   int
	OrderIndex      int
	KeyPoints       []string
	Content         string
}

// CodeExampleSeed is the authored form of a code example.
type CodeExampleSeed struct {
	Title       string
	Language    string
	Code        string
	Explanation string
	OrderIndex  int
}

// QuizQuestionSeed is the authored form of a quiz question. Options may be
// given either as a slice or as a JSON-encoded array in OptionsJSON; the
// seeder normalizes both through NormalizeOptions before persisting.
type QuizQuestionSeed struct {
	QuestionText  string
	QuestionType  string
	Options       []string
	OptionsJSON   string
	CorrectAnswer string
	Explanation   string
	Difficulty    string
	OrderIndex    int
}
