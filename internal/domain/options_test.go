package domain

import (
	"errors"
	"testing"
)

func TestNormalizeOptionsFromSlice(t *testing.T) {
	opts, err := NormalizeOptions(QuizQuestionSeed{Options: []string{"a", "b", "c"}})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if len(opts) != 3 || opts[0] != "a" || opts[2] != "c" {
		t.Fatalf("unexpected options: %v", opts)
	}
}

func TestNormalizeOptionsFromJSON(t *testing.T) {
	opts, err := NormalizeOptions(QuizQuestionSeed{OptionsJSON: `["first","second"]`})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if len(opts) != 2 || opts[0] != "first" || opts[1] != "second" {
		t.Fatalf("unexpected options: %v", opts)
	}
}

func TestNormalizeOptionsRejectsBadInput(t *testing.T) {
	cases := []QuizQuestionSeed{
		{},                               // no options at all
		{OptionsJSON: `not json`},        // malformed payload
		{OptionsJSON: `{"a": "object"}`}, // wrong JSON shape
	}
	for i, seed := range cases {
		if _, err := NormalizeOptions(seed); !errors.Is(err, ErrQuizIntegrity) {
			t.Fatalf("case %d: expected quiz integrity error, got %v", i, err)
		}
	}
}

func TestValidateQuestion(t *testing.T) {
	valid := QuizQuestionSeed{
		QuestionText:  "q",
		Options:       []string{"a", "b"},
		CorrectAnswer: "b",
		Difficulty:    QuizEasy,
	}
	if _, err := ValidateQuestion(valid); err != nil {
		t.Fatalf("valid question rejected: %v", err)
	}

	cases := map[string]QuizQuestionSeed{
		"answer not among options": {
			Options: []string{"a", "b"}, CorrectAnswer: "c", Difficulty: QuizEasy,
		},
		"too few options": {
			Options: []string{"only"}, CorrectAnswer: "only", Difficulty: QuizEasy,
		},
		"too many options": {
			Options:       []string{"1", "2", "3", "4", "5", "6", "7"},
			CorrectAnswer: "1", Difficulty: QuizEasy,
		},
		"unknown difficulty": {
			Options: []string{"a", "b"}, CorrectAnswer: "a", Difficulty: "brutal",
		},
		"case-sensitive comparison": {
			Options: []string{"Yes", "No"}, CorrectAnswer: "yes", Difficulty: QuizEasy,
		},
	}
	for name, seed := range cases {
		if _, err := ValidateQuestion(seed); !errors.Is(err, ErrQuizIntegrity) {
			t.Fatalf("%s: expected quiz integrity error, got %v", name, err)
		}
	}
}

func TestStringListRoundTrip(t *testing.T) {
	in := StringList{"α", "two", ""}
	v, err := in.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}

	var outFromString StringList
	if err := outFromString.Scan(v); err != nil {
		t.Fatalf("scan string: %v", err)
	}
	var outFromBytes StringList
	if err := outFromBytes.Scan([]byte(v.(string))); err != nil {
		t.Fatalf("scan bytes: %v", err)
	}

	for _, out := range []StringList{outFromString, outFromBytes} {
		if len(out) != 3 || out[0] != "α" || out[1] != "two" || out[2] != "" {
			t.Fatalf("round trip lost data: %v", out)
		}
	}

	var fromNil StringList
	if err := fromNil.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if fromNil != nil {
		t.Fatalf("expected nil list, got %v", fromNil)
	}

	if err := fromNil.Scan(42); err == nil {
		t.Fatal("expected error scanning unsupported type")
	}
}

func TestQuestionTypeDefault(t *testing.T) {
	if got := (QuizQuestionSeed{}).Type(); got != QuestionTypeMultipleChoice {
		t.Fatalf("expected default type, got %q", got)
	}
	if got := (QuizQuestionSeed{QuestionType: "true_false"}).Type(); got != "true_false" {
		t.Fatalf("expected declared type, got %q", got)
	}
}
