package app_test

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"learnhub-content/internal/app"
	"learnhub-content/internal/content"
	"learnhub-content/internal/domain"
)

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()
	sqldb, err := sql.Open("sqlite3", "file::memory:?_fk=1")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqldb.SetMaxOpenConns(1)
	db := bun.NewDB(sqldb, sqlitedialect.New())

	ctx := context.Background()
	models := []interface{}{
		(*domain.Topic)(nil),
		(*domain.Lesson)(nil),
		(*domain.CodeExample)(nil),
		(*domain.QuizQuestion)(nil),
		(*domain.MigrationRecord)(nil),
	}
	for _, m := range models {
		if _, err := db.NewCreateTable().Model(m).Exec(ctx); err != nil {
			t.Fatalf("create table for %T: %v", m, err)
		}
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func newTestRunner(db *bun.DB, opts app.Options) *app.SeedRunner {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return app.NewSeedRunner(db, logger, opts)
}

func countRows(t *testing.T, db *bun.DB, model interface{}) int {
	t.Helper()
	n, err := db.NewSelect().Model(model).Count(context.Background())
	if err != nil {
		t.Fatalf("count %T: %v", model, err)
	}
	return n
}

func architectureBundle() domain.Bundle {
	return domain.Bundle{
		ID: "0001_basic_architecture",
		Topic: domain.TopicSeed{
			Slug:          "basic-architecture",
			Name:          "Architecture Fundamentals",
			Description:   "High-level structure of software systems.",
			EstimatedTime: 180,
			OrderIndex:    1,
		},
		Lessons: []domain.LessonSeed{
			{
				Slug:            "what-is-software-architecture",
				Title:           "What is Software Architecture?",
				Summary:         "An introduction.",
				DifficultyLevel: domain.DifficultyBeginner,
				EstimatedTime:   30,
				OrderIndex:      1,
				KeyPoints: []string{
					"Architecture is the high-level structure of a system",
					"Good architecture enables change, scalability, and maintainability",
				},
				Content: "# What is Software Architecture?\n\nArchitecture is structure.",
			},
		},
	}
}

func adrBundle() domain.Bundle {
	b := architectureBundle()
	return domain.Bundle{
		ID:    "0002_architecture_decision_records",
		Topic: b.Topic,
		Lessons: []domain.LessonSeed{
			{
				Slug:            "architecture-decision-records",
				Title:           "Architecture Decision Records",
				DifficultyLevel: domain.DifficultyIntermediate,
				EstimatedTime:   25,
				OrderIndex:      2,
				Content:         "# ADRs\n\nWrite decisions down.",
			},
		},
	}
}

func TestIngestFreshBundle(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	runner := newTestRunner(db, app.Options{})

	report, err := runner.Ingest(ctx, []domain.Bundle{architectureBundle()})
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if report.Applied() != 1 || report.Failed() != 0 {
		t.Fatalf("expected 1 applied, got %+v", report)
	}
	if err := report.Err(); err != nil {
		t.Fatalf("unexpected report error: %v", err)
	}

	if n := countRows(t, db, (*domain.Topic)(nil)); n != 1 {
		t.Fatalf("expected 1 topic, got %d", n)
	}
	if n := countRows(t, db, (*domain.Lesson)(nil)); n != 1 {
		t.Fatalf("expected 1 lesson, got %d", n)
	}
	if n := countRows(t, db, (*domain.CodeExample)(nil)); n != 0 {
		t.Fatalf("expected 0 examples, got %d", n)
	}
	if n := countRows(t, db, (*domain.QuizQuestion)(nil)); n != 0 {
		t.Fatalf("expected 0 questions, got %d", n)
	}
	if n := countRows(t, db, (*domain.MigrationRecord)(nil)); n != 1 {
		t.Fatalf("expected 1 migration record, got %d", n)
	}
}

func TestSharedTopicAppendsLessons(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	runner := newTestRunner(db, app.Options{})

	report, err := runner.Ingest(ctx, []domain.Bundle{architectureBundle(), adrBundle()})
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if report.Applied() != 2 {
		t.Fatalf("expected 2 applied, got %d", report.Applied())
	}
	if n := countRows(t, db, (*domain.Topic)(nil)); n != 1 {
		t.Fatalf("expected shared topic to be created once, got %d rows", n)
	}
	if n := countRows(t, db, (*domain.Lesson)(nil)); n != 2 {
		t.Fatalf("expected 2 lessons, got %d", n)
	}
	if n := countRows(t, db, (*domain.MigrationRecord)(nil)); n != 2 {
		t.Fatalf("expected 2 migration records, got %d", n)
	}
}

func TestTopicConflictRollsBackBundle(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	runner := newTestRunner(db, app.Options{})

	conflicting := adrBundle()
	conflicting.Topic.EstimatedTime = 160

	report, err := runner.Ingest(ctx, []domain.Bundle{architectureBundle(), conflicting})
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if report.Applied() != 1 || report.Failed() != 1 {
		t.Fatalf("expected 1 applied and 1 failed, got %+v", report)
	}
	failed := report.Results[1]
	if !errors.Is(failed.Err, domain.ErrTopicConflict) {
		t.Fatalf("expected topic conflict, got %v", failed.Err)
	}
	if failed.Stage != app.StageTopic {
		t.Fatalf("expected failure at topic stage, got %s", failed.Stage)
	}
	if n := countRows(t, db, (*domain.Lesson)(nil)); n != 1 {
		t.Fatalf("conflicting bundle leaked lessons: got %d", n)
	}
	if report.Err() == nil || !errors.Is(report.Err(), app.ErrSeedFailed) {
		t.Fatalf("expected ErrSeedFailed, got %v", report.Err())
	}

	// Correcting the attributes makes the rerun succeed.
	rerun, err := runner.Ingest(ctx, []domain.Bundle{adrBundle()})
	if err != nil {
		t.Fatalf("rerun: %v", err)
	}
	if rerun.Applied() != 1 {
		t.Fatalf("expected corrected bundle to apply, got %+v", rerun)
	}
	if n := countRows(t, db, (*domain.Lesson)(nil)); n != 2 {
		t.Fatalf("expected 2 lessons after rerun, got %d", n)
	}
}

func TestLessonCollisionRollsBackBundle(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	runner := newTestRunner(db, app.Options{})

	duplicate := architectureBundle()
	duplicate.ID = "0003_duplicate_lesson"

	report, err := runner.Ingest(ctx, []domain.Bundle{architectureBundle(), duplicate})
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if report.Failed() != 1 {
		t.Fatalf("expected 1 failed, got %+v", report)
	}
	if !errors.Is(report.Results[1].Err, domain.ErrLessonCollision) {
		t.Fatalf("expected lesson collision, got %v", report.Results[1].Err)
	}
	if n := countRows(t, db, (*domain.Lesson)(nil)); n != 1 {
		t.Fatalf("expected 1 lesson, got %d", n)
	}
}

func TestQuizIntegrityFailureIsAtomic(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	runner := newTestRunner(db, app.Options{})

	b := architectureBundle()
	b.ExamplesBySlug = map[string][]domain.CodeExampleSeed{
		"what-is-software-architecture": {
			{Title: "Example", Language: "go", Code: "package main", OrderIndex: 1},
		},
	}
	b.QuestionsBySlug = map[string][]domain.QuizQuestionSeed{
		"what-is-software-architecture": {
			{
				QuestionText:  "Valid question?",
				Options:       []string{"Yes", "No"},
				CorrectAnswer: "Yes",
				Difficulty:    domain.QuizEasy,
				OrderIndex:    1,
			},
			{
				// The last question's correct answer is not among its options.
				QuestionText:  "When should you use microservices?",
				Options:       []string{"When team and scale demand it", "Only on Fridays"},
				CorrectAnswer: "Always use microservices",
				Difficulty:    domain.QuizMedium,
				OrderIndex:    2,
			},
		},
	}

	report, err := runner.Ingest(ctx, []domain.Bundle{b})
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if report.Failed() != 1 {
		t.Fatalf("expected bundle failure, got %+v", report)
	}
	if !errors.Is(report.Results[0].Err, domain.ErrQuizIntegrity) {
		t.Fatalf("expected quiz integrity error, got %v", report.Results[0].Err)
	}

	// The whole bundle rolls back, including rows inserted before the bad question.
	for _, m := range []interface{}{
		(*domain.Topic)(nil),
		(*domain.Lesson)(nil),
		(*domain.CodeExample)(nil),
		(*domain.QuizQuestion)(nil),
		(*domain.MigrationRecord)(nil),
	} {
		if n := countRows(t, db, m); n != 0 {
			t.Fatalf("expected zero %T rows after rollback, got %d", m, n)
		}
	}
}

func TestIdempotentRerun(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	runner := newTestRunner(db, app.Options{})
	bundles := content.Bundles()

	first, err := runner.Ingest(ctx, bundles)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if first.Applied() != len(bundles) || first.Failed() != 0 {
		t.Fatalf("expected all %d bundles applied, got %+v", len(bundles), first)
	}

	lessons := countRows(t, db, (*domain.Lesson)(nil))
	examples := countRows(t, db, (*domain.CodeExample)(nil))
	questions := countRows(t, db, (*domain.QuizQuestion)(nil))

	second, err := runner.Ingest(ctx, bundles)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if second.Skipped() != len(bundles) || second.Applied() != 0 {
		t.Fatalf("expected all bundles skipped on rerun, got %+v", second)
	}
	if n := countRows(t, db, (*domain.Lesson)(nil)); n != lessons {
		t.Fatalf("rerun inserted lessons: %d -> %d", lessons, n)
	}
	if n := countRows(t, db, (*domain.CodeExample)(nil)); n != examples {
		t.Fatalf("rerun inserted examples: %d -> %d", examples, n)
	}
	if n := countRows(t, db, (*domain.QuizQuestion)(nil)); n != questions {
		t.Fatalf("rerun inserted questions: %d -> %d", questions, n)
	}
}

func TestDryRunCommitsNothing(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	runner := newTestRunner(db, app.Options{DryRun: true})

	report, err := runner.Ingest(ctx, content.Bundles())
	if err != nil {
		t.Fatalf("dry run: %v", err)
	}
	if report.Validated() != len(content.Bundles()) || report.Failed() != 0 {
		t.Fatalf("expected every bundle validated, got %+v", report)
	}
	for _, m := range []interface{}{
		(*domain.Topic)(nil),
		(*domain.Lesson)(nil),
		(*domain.MigrationRecord)(nil),
	} {
		if n := countRows(t, db, m); n != 0 {
			t.Fatalf("dry run persisted %T rows: %d", m, n)
		}
	}
}

func TestFailFastStopsProcessing(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	bad := architectureBundle()
	bad.ID = "0000_conflicting"
	bad.Lessons[0].DifficultyLevel = "impossible"

	good := adrBundle()

	runner := newTestRunner(db, app.Options{FailFast: true})
	report, err := runner.Ingest(ctx, []domain.Bundle{good, bad})
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	// Lexicographic order puts the bad bundle first; fail-fast stops there.
	if len(report.Results) != 1 {
		t.Fatalf("expected processing to stop after first failure, got %d results", len(report.Results))
	}
	if report.Results[0].BundleID != "0000_conflicting" || report.Results[0].State != app.StateFailed {
		t.Fatalf("unexpected first result: %+v", report.Results[0])
	}

	// Without fail-fast the good bundle still applies.
	db2 := newTestDB(t)
	runner2 := newTestRunner(db2, app.Options{})
	report2, err := runner2.Ingest(ctx, []domain.Bundle{good, bad})
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if len(report2.Results) != 2 || report2.Applied() != 1 || report2.Failed() != 1 {
		t.Fatalf("expected 1 applied and 1 failed, got %+v", report2)
	}
}

func TestIngestOne(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	runner := newTestRunner(db, app.Options{})
	bundles := []domain.Bundle{architectureBundle(), adrBundle()}

	report, err := runner.IngestOne(ctx, bundles, "0001_basic_architecture")
	if err != nil {
		t.Fatalf("ingest one: %v", err)
	}
	if len(report.Results) != 1 || report.Applied() != 1 {
		t.Fatalf("expected exactly one applied bundle, got %+v", report)
	}

	if _, err := runner.IngestOne(ctx, bundles, "9999_missing"); !errors.Is(err, domain.ErrBundleNotFound) {
		t.Fatalf("expected bundle not found, got %v", err)
	}
}

func TestChildrenReadBackInDeclaredOrder(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	runner := newTestRunner(db, app.Options{})

	b := architectureBundle()
	b.QuestionsBySlug = map[string][]domain.QuizQuestionSeed{
		"what-is-software-architecture": {
			{QuestionText: "first", Options: []string{"a", "b"}, CorrectAnswer: "a", Difficulty: domain.QuizEasy, OrderIndex: 1},
			{QuestionText: "second", Options: []string{"a", "b"}, CorrectAnswer: "b", Difficulty: domain.QuizEasy, OrderIndex: 2},
			{QuestionText: "third", Options: []string{"a", "b"}, CorrectAnswer: "a", Difficulty: domain.QuizEasy, OrderIndex: 3},
		},
	}

	if _, err := runner.Ingest(ctx, []domain.Bundle{b}); err != nil {
		t.Fatalf("ingest: %v", err)
	}

	var questions []domain.QuizQuestion
	err := db.NewSelect().Model(&questions).Order("order_index ASC").Scan(ctx)
	if err != nil {
		t.Fatalf("read back questions: %v", err)
	}
	want := []string{"first", "second", "third"}
	if len(questions) != len(want) {
		t.Fatalf("expected %d questions, got %d", len(want), len(questions))
	}
	for i, q := range questions {
		if q.QuestionText != want[i] {
			t.Fatalf("position %d: expected %q, got %q", i, want[i], q.QuestionText)
		}
	}
}

func TestLessonContentRoundTripsExactly(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	runner := newTestRunner(db, app.Options{})

	const body = "# Überblick\n\n学习平台 — ёлка, naïve, emoji: 🎓\n\n    code block line\n"
	b := architectureBundle()
	b.Lessons[0].Content = body
	b.Lessons[0].KeyPoints = []string{"点一", "点二"}

	if _, err := runner.Ingest(ctx, []domain.Bundle{b}); err != nil {
		t.Fatalf("ingest: %v", err)
	}

	var lesson domain.Lesson
	if err := db.NewSelect().Model(&lesson).Where("slug = ?", "what-is-software-architecture").Scan(ctx); err != nil {
		t.Fatalf("read back lesson: %v", err)
	}
	if lesson.Content != body {
		t.Fatalf("content did not round-trip exactly:\nwant %q\ngot  %q", body, lesson.Content)
	}
	if len(lesson.KeyPoints) != 2 || lesson.KeyPoints[0] != "点一" || lesson.KeyPoints[1] != "点二" {
		t.Fatalf("key points did not round-trip: %v", lesson.KeyPoints)
	}
}

func TestNormalizedJSONOptionsPersist(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	runner := newTestRunner(db, app.Options{})

	b := architectureBundle()
	b.QuestionsBySlug = map[string][]domain.QuizQuestionSeed{
		"what-is-software-architecture": {
			{
				QuestionText:  "Serialized options survive?",
				OptionsJSON:   `["yes","no","maybe"]`,
				CorrectAnswer: "yes",
				Difficulty:    domain.QuizEasy,
				OrderIndex:    1,
			},
		},
	}

	if _, err := runner.Ingest(ctx, []domain.Bundle{b}); err != nil {
		t.Fatalf("ingest: %v", err)
	}

	var q domain.QuizQuestion
	if err := db.NewSelect().Model(&q).Scan(ctx); err != nil {
		t.Fatalf("read back question: %v", err)
	}
	if len(q.Options) != 3 || q.Options[0] != "yes" || q.Options[2] != "maybe" {
		t.Fatalf("options lost order or content: %v", q.Options)
	}
	if q.QuestionType != domain.QuestionTypeMultipleChoice {
		t.Fatalf("expected default question type, got %q", q.QuestionType)
	}
}
