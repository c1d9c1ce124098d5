package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/uptrace/bun"

	"learnhub-content/internal/domain"
)

// errDryRun forces the surrounding transaction to roll back after all
// validation inside it has passed.
var errDryRun = errors.New("dry run rollback")

// Options tune a seed run.
type Options struct {
	// DryRun performs every check but rolls every transaction back and
	// records nothing.
	DryRun bool
	// FailFast stops processing after the first failed bundle.
	FailFast bool
	// TxTimeout bounds each bundle's transaction; zero means indefinite.
	TxTimeout time.Duration
}

// SeedRunner applies content bundles to the database idempotently. Each
// bundle runs in its own transaction: either all of its rows land or none.
type SeedRunner struct {
	db   *bun.DB
	log  *slog.Logger
	opts Options
	now  func() time.Time
}

func NewSeedRunner(db *bun.DB, log *slog.Logger, opts Options) *SeedRunner {
	return &SeedRunner{db: db, log: log, opts: opts, now: time.Now}
}

// Ingest processes bundles sequentially in lexicographic bundle-id order, so
// bundles sharing a topic slug always apply in the same order. Per-bundle
// failures land in the report; the returned error is reserved for
// cancellation of the run itself.
func (r *SeedRunner) Ingest(ctx context.Context, bundles []domain.Bundle) (Report, error) {
	ordered := make([]domain.Bundle, len(bundles))
	copy(ordered, bundles)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	report := Report{DryRun: r.opts.DryRun}
	for _, b := range ordered {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		res := r.applyBundle(ctx, b)
		report.Results = append(report.Results, res)

		switch res.State {
		case StateFailed:
			r.log.Error("bundle failed", "bundle", res.BundleID, "stage", res.Stage, "error", res.Err)
			if r.opts.FailFast {
				return report, nil
			}
		case StateSkipped:
			r.log.Info("bundle skipped", "bundle", res.BundleID)
		case StateValidated:
			r.log.Info("bundle validated", "bundle", res.BundleID)
		default:
			r.log.Info("bundle applied", "bundle", res.BundleID,
				"lessons", res.Lessons, "examples", res.Examples, "questions", res.Questions)
		}
	}
	return report, nil
}

// IngestOne runs exactly one bundle by id.
func (r *SeedRunner) IngestOne(ctx context.Context, bundles []domain.Bundle, id string) (Report, error) {
	for _, b := range bundles {
		if b.ID == id {
			return r.Ingest(ctx, []domain.Bundle{b})
		}
	}
	return Report{}, fmt.Errorf("%w: %q", domain.ErrBundleNotFound, id)
}

func (r *SeedRunner) applyBundle(ctx context.Context, b domain.Bundle) BundleResult {
	res := BundleResult{BundleID: b.ID, State: StateFailed, Stage: StageChecking}

	applied, err := r.db.NewSelect().
		Model((*domain.MigrationRecord)(nil)).
		Where("name = ?", b.ID).
		Exists(ctx)
	if err != nil {
		res.Err = fmt.Errorf("check bundle %s: %w", b.ID, err)
		return res
	}
	if applied {
		res.State = StateSkipped
		return res
	}

	if r.opts.TxTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.opts.TxTimeout)
		defer cancel()
	}

	err = r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		res.Stage = StageTopic
		topicID, err := r.resolveTopic(ctx, tx, b.Topic)
		if err != nil {
			return err
		}

		res.Stage = StageLessons
		for _, ls := range b.Lessons {
			lessonID, err := r.insertLesson(ctx, tx, topicID, ls)
			if err != nil {
				return err
			}
			res.Lessons++

			for _, ex := range b.ExamplesBySlug[ls.Slug] {
				if err := r.insertExample(ctx, tx, lessonID, ls.Slug, ex); err != nil {
					return err
				}
				res.Examples++
			}
			for _, q := range b.QuestionsBySlug[ls.Slug] {
				if err := r.insertQuestion(ctx, tx, lessonID, ls.Slug, q); err != nil {
					return err
				}
				res.Questions++
			}
		}

		res.Stage = StageBookkeeping
		rec := domain.MigrationRecord{Name: b.ID, AppliedAt: r.now().UTC()}
		if _, err := tx.NewInsert().Model(&rec).Exec(ctx); err != nil {
			return fmt.Errorf("record bundle %s: %w", b.ID, err)
		}

		if r.opts.DryRun {
			return errDryRun
		}
		return nil
	})

	switch {
	case errors.Is(err, errDryRun):
		res.State = StateValidated
	case err != nil:
		res.Err = err
	default:
		res.State = StateApplied
	}
	return res
}

// resolveTopic looks the topic up by slug, inserting it if absent. An
// existing topic must match the bundle's attributes exactly; topics are
// never updated by the seeder.
func (r *SeedRunner) resolveTopic(ctx context.Context, tx bun.Tx, seed domain.TopicSeed) (int64, error) {
	stored := domain.Topic{}
	err := tx.NewSelect().Model(&stored).Where("slug = ?", seed.Slug).Scan(ctx)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		topic := domain.Topic{
			Slug:          seed.Slug,
			Name:          seed.Name,
			Description:   seed.Description,
			EstimatedTime: seed.EstimatedTime,
			OrderIndex:    seed.OrderIndex,
		}
		if _, err := tx.NewInsert().Model(&topic).Exec(ctx); err != nil {
			return 0, fmt.Errorf("insert topic %s: %w", seed.Slug, err)
		}
		r.log.Debug("topic created", "slug", seed.Slug, "id", topic.ID)
		return topic.ID, nil
	case err != nil:
		return 0, fmt.Errorf("lookup topic %s: %w", seed.Slug, err)
	}

	if stored.Name != seed.Name ||
		stored.Description != seed.Description ||
		stored.EstimatedTime != seed.EstimatedTime ||
		stored.OrderIndex != seed.OrderIndex {
		return 0, fmt.Errorf("%w: slug %s", domain.ErrTopicConflict, seed.Slug)
	}
	r.log.Debug("topic matched", "slug", seed.Slug, "id", stored.ID)
	return stored.ID, nil
}

func (r *SeedRunner) insertLesson(ctx context.Context, tx bun.Tx, topicID int64, seed domain.LessonSeed) (int64, error) {
	if !domain.ValidLessonDifficulty(seed.DifficultyLevel) {
		return 0, fmt.Errorf("lesson %s: unknown difficulty_level %q", seed.Slug, seed.DifficultyLevel)
	}

	taken, err := tx.NewSelect().
		Model((*domain.Lesson)(nil)).
		Where("topic_id = ? AND slug = ?", topicID, seed.Slug).
		Exists(ctx)
	if err != nil {
		return 0, fmt.Errorf("lookup lesson %s: %w", seed.Slug, err)
	}
	if taken {
		return 0, fmt.Errorf("%w: slug %s", domain.ErrLessonCollision, seed.Slug)
	}

	lesson := domain.Lesson{
		TopicID:         topicID,
		Slug:            seed.Slug,
		Title:           seed.Title,
		Summary:         seed.Summary,
		DifficultyLevel: seed.DifficultyLevel,
		EstimatedTime:   seed.EstimatedTime,
		OrderIndex:      seed.OrderIndex,
		KeyPoints:       domain.StringList(seed.KeyPoints),
		Content:         seed.Content,
	}
	if _, err := tx.NewInsert().Model(&lesson).Exec(ctx); err != nil {
		return 0, fmt.Errorf("insert lesson %s: %w", seed.Slug, err)
	}
	r.log.Debug("lesson inserted", "slug", seed.Slug, "id", lesson.ID)
	return lesson.ID, nil
}

func (r *SeedRunner) insertExample(ctx context.Context, tx bun.Tx, lessonID int64, lessonSlug string, seed domain.CodeExampleSeed) error {
	example := domain.CodeExample{
		LessonID:    lessonID,
		Title:       seed.Title,
		Language:    seed.Language,
		Code:        seed.Code,
		Explanation: seed.Explanation,
		OrderIndex:  seed.OrderIndex,
	}
	if _, err := tx.NewInsert().Model(&example).Exec(ctx); err != nil {
		return fmt.Errorf("insert example %q for lesson %s: %w", seed.Title, lessonSlug, err)
	}
	return nil
}

func (r *SeedRunner) insertQuestion(ctx context.Context, tx bun.Tx, lessonID int64, lessonSlug string, seed domain.QuizQuestionSeed) error {
	opts, err := domain.ValidateQuestion(seed)
	if err != nil {
		return fmt.Errorf("lesson %s: %w", lessonSlug, err)
	}
	question := domain.QuizQuestion{
		LessonID:      lessonID,
		QuestionText:  seed.QuestionText,
		QuestionType:  seed.Type(),
		Options:       opts,
		CorrectAnswer: seed.CorrectAnswer,
		Explanation:   seed.Explanation,
		Difficulty:    seed.Difficulty,
		OrderIndex:    seed.OrderIndex,
	}
	if _, err := tx.NewInsert().Model(&question).Exec(ctx); err != nil {
		return fmt.Errorf("insert question for lesson %s: %w", lessonSlug, err)
	}
	return nil
}
