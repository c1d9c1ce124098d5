package app

import (
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"learnhub-content/internal/domain"
)

// Finding is one problem discovered by the offline dataset lint.
type Finding struct {
	BundleID string
	Problem  string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s", f.BundleID, f.Problem)
}

// ValidateBundles lints the dataset without touching a database: per-bundle
// shape checks run concurrently, then cross-bundle consistency (duplicate
// ids, topic attribute agreement, lesson slug collisions) runs over the
// whole set. An empty result means the dataset would seed cleanly into an
// empty database.
func ValidateBundles(bundles []domain.Bundle) []Finding {
	var (
		mu       sync.Mutex
		findings []Finding
	)
	add := func(id, format string, args ...interface{}) {
		mu.Lock()
		findings = append(findings, Finding{BundleID: id, Problem: fmt.Sprintf(format, args...)})
		mu.Unlock()
	}

	var g errgroup.Group
	for _, b := range bundles {
		b := b
		g.Go(func() error {
			lintBundle(b, add)
			return nil
		})
	}
	_ = g.Wait()

	lintAcrossBundles(bundles, add)
	return findings
}

func lintBundle(b domain.Bundle, add func(id, format string, args ...interface{})) {
	if b.ID == "" {
		add("(unnamed)", "bundle has an empty id")
		return
	}
	if b.Topic.Slug == "" {
		add(b.ID, "topic slug is empty")
	}
	if b.Topic.Name == "" {
		add(b.ID, "topic %s has an empty name", b.Topic.Slug)
	}

	slugs := make(map[string]bool, len(b.Lessons))
	for _, ls := range b.Lessons {
		switch {
		case ls.Slug == "":
			add(b.ID, "lesson with empty slug")
			continue
		case slugs[ls.Slug]:
			add(b.ID, "duplicate lesson slug %s within bundle", ls.Slug)
		}
		slugs[ls.Slug] = true

		if ls.Title == "" {
			add(b.ID, "lesson %s has an empty title", ls.Slug)
		}
		if ls.Content == "" {
			add(b.ID, "lesson %s has empty content", ls.Slug)
		}
		if !domain.ValidLessonDifficulty(ls.DifficultyLevel) {
			add(b.ID, "lesson %s has unknown difficulty_level %q", ls.Slug, ls.DifficultyLevel)
		}
		if ls.OrderIndex < 0 {
			add(b.ID, "lesson %s has negative order_index", ls.Slug)
		}

		for _, ex := range b.ExamplesBySlug[ls.Slug] {
			if ex.Title == "" || ex.Code == "" {
				add(b.ID, "lesson %s has a code example with empty title or code", ls.Slug)
			}
		}
		for i, q := range b.QuestionsBySlug[ls.Slug] {
			if q.QuestionText == "" {
				add(b.ID, "lesson %s question %d has empty text", ls.Slug, i)
			}
			if _, err := domain.ValidateQuestion(q); err != nil {
				add(b.ID, "lesson %s question %d: %v", ls.Slug, i, err)
			}
		}
	}

	// Orphaned map entries point at lesson slugs the bundle never declares.
	for slug := range b.ExamplesBySlug {
		if !slugs[slug] {
			add(b.ID, "code examples reference unknown lesson slug %s", slug)
		}
	}
	for slug := range b.QuestionsBySlug {
		if !slugs[slug] {
			add(b.ID, "quiz questions reference unknown lesson slug %s", slug)
		}
	}
}

func lintAcrossBundles(bundles []domain.Bundle, add func(id, format string, args ...interface{})) {
	seenIDs := make(map[string]bool, len(bundles))
	topics := make(map[string]domain.TopicSeed)
	lessonOwner := make(map[string]string) // topic slug + lesson slug -> bundle id

	for _, b := range bundles {
		if seenIDs[b.ID] {
			add(b.ID, "duplicate bundle id")
		}
		seenIDs[b.ID] = true

		if first, ok := topics[b.Topic.Slug]; ok {
			if first != b.Topic {
				add(b.ID, "topic %s attributes disagree with an earlier bundle", b.Topic.Slug)
			}
		} else {
			topics[b.Topic.Slug] = b.Topic
		}

		for _, ls := range b.Lessons {
			key := b.Topic.Slug + "/" + ls.Slug
			if owner, ok := lessonOwner[key]; ok {
				add(b.ID, "lesson %s collides with bundle %s", key, owner)
			} else {
				lessonOwner[key] = b.ID
			}
		}
	}
}
