package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

const (
	minOptions = 2
	maxOptions = 6
)

// StringList is an ordered sequence of strings stored as a JSON array so
// that insertion order survives the round trip through the database.
type StringList []string

// Value implements driver.Valuer, encoding the list as a JSON array.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	data, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("marshal string list: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner for text and byte JSON representations.
func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, (*[]string)(l))
	case string:
		return json.Unmarshal([]byte(v), (*[]string)(l))
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
}

// NormalizeOptions resolves the two authored shapes of quiz options (a plain
// slice or a JSON-encoded array) into a single ordered list.
func NormalizeOptions(q QuizQuestionSeed) (StringList, error) {
	if len(q.Options) > 0 {
		out := make(StringList, len(q.Options))
		copy(out, q.Options)
		return out, nil
	}
	if q.OptionsJSON == "" {
		return nil, fmt.Errorf("%w: question has no options", ErrQuizIntegrity)
	}
	var out StringList
	if err := json.Unmarshal([]byte(q.OptionsJSON), (*[]string)(&out)); err != nil {
		return nil, fmt.Errorf("%w: options JSON: %v", ErrQuizIntegrity, err)
	}
	return out, nil
}

// ValidateQuestion normalizes the question's options and checks the
// integrity rules: 2-6 options, correct answer present by exact comparison,
// and a known difficulty. It returns the normalized options on success.
func ValidateQuestion(q QuizQuestionSeed) (StringList, error) {
	opts, err := NormalizeOptions(q)
	if err != nil {
		return nil, err
	}
	if len(opts) < minOptions || len(opts) > maxOptions {
		return nil, fmt.Errorf("%w: expected %d-%d options, got %d", ErrQuizIntegrity, minOptions, maxOptions, len(opts))
	}
	found := false
	for _, o := range opts {
		if o == q.CorrectAnswer {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: correct answer %q not among options", ErrQuizIntegrity, q.CorrectAnswer)
	}
	if !ValidQuizDifficulty(q.Difficulty) {
		return nil, fmt.Errorf("%w: unknown difficulty %q", ErrQuizIntegrity, q.Difficulty)
	}
	return opts, nil
}

// ValidLessonDifficulty reports whether d is one of the lesson difficulty levels.
func ValidLessonDifficulty(d string) bool {
	return d == DifficultyBeginner || d == DifficultyIntermediate || d == DifficultyAdvanced
}

// ValidQuizDifficulty reports whether d is one of the quiz difficulty levels.
func ValidQuizDifficulty(d string) bool {
	return d == QuizEasy || d == QuizMedium || d == QuizHard
}

// QuestionType returns the declared type or the multiple-choice default.
func (q QuizQuestionSeed) Type() string {
	if q.QuestionType != "" {
		return q.QuestionType
	}
	return QuestionTypeMultipleChoice
}
