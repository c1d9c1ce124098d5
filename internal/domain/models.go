package domain

import (
	"time"

	"github.com/uptrace/bun"
)

// Lesson difficulty levels accepted by the schema CHECK constraint.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Quiz question difficulty levels.
const (
	QuizEasy   = "easy"
	QuizMedium = "medium"
	QuizHard   = "hard"
)

// QuestionTypeMultipleChoice is the only question type the dataset carries today.
const QuestionTypeMultipleChoice = "multiple_choice"

// Topic is a named curriculum area. Topics are created once on first
// ingestion and never updated by the seeder.
type Topic struct {
	bun.BaseModel `bun:"table:topics,alias:t"`

	ID            int64     `bun:"id,pk,autoincrement"`
	Slug          string    `bun:"slug,notnull,unique"`
	Name          string    `bun:"name,notnull"`
	Description   string    `bun:"description"`
	EstimatedTime int       `bun:"estimated_time,notnull"`
	OrderIndex    int       `bun:"order_index,notnull"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// Lesson is one readable unit of instruction within a topic. The markdown
// body in Content is opaque to the seeder.
type Lesson struct {
	bun.BaseModel `bun:"table:lessons,alias:l"`

	ID              int64      `bun:"id,pk,autoincrement"`
	TopicID         int64      `bun:"topic_id,notnull,unique:lessons_topic_slug"`
	Slug            string     `bun:"slug,notnull,unique:lessons_topic_slug"`
	Title           string     `bun:"title,notnull"`
	Summary         string     `bun:"summary"`
	DifficultyLevel string     `bun:"difficulty_level,notnull"`
	EstimatedTime   int        `bun:"estimated_time,notnull"`
	OrderIndex      int        `bun:"order_index,notnull"`
	KeyPoints       StringList `bun:"key_points,type:jsonb"`
	Content         string     `bun:"content,notnull"`
	CreatedAt       time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt       time.Time  `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// CodeExample is a labelled snippet attached to a lesson.
type CodeExample struct {
	bun.BaseModel `bun:"table:code_examples,alias:ce"`

	ID          int64     `bun:"id,pk,autoincrement"`
	LessonID    int64     `bun:"lesson_id,notnull"`
	Title       string    `bun:"title,notnull"`
	Language    string    `bun:"language,notnull"`
	Code        string    `bun:"code,notnull"`
	Explanation string    `bun:"explanation"`
	OrderIndex  int       `bun:"order_index,notnull"`
	CreatedAt   time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt   time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// QuizQuestion is a multiple-choice prompt. Options preserve authoring
// order; CorrectAnswer must equal one of them byte for byte.
type QuizQuestion struct {
	bun.BaseModel `bun:"table:quiz_questions,alias:qq"`

	ID            int64      `bun:"id,pk,autoincrement"`
	LessonID      int64      `bun:"lesson_id,notnull"`
	QuestionText  string     `bun:"question_text,notnull"`
	QuestionType  string     `bun:"question_type,notnull"`
	Options       StringList `bun:"options,type:jsonb"`
	CorrectAnswer string     `bun:"correct_answer,notnull"`
	Explanation   string     `bun:"explanation"`
	Difficulty    string     `bun:"difficulty,notnull"`
	OrderIndex    int        `bun:"order_index,notnull"`
	CreatedAt     time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt     time.Time  `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// MigrationRecord marks a bundle as ingested. The seeder appends one row per
// committed bundle and uses the table as its dedupe check.
type MigrationRecord struct {
	bun.BaseModel `bun:"table:migrations,alias:m"`

	ID        int64     `bun:"id,pk,autoincrement"`
	Name      string    `bun:"name,notnull,unique"`
	AppliedAt time.Time `bun:"applied_at,nullzero,notnull,default:current_timestamp"`
}
