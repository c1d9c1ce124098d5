package domain

import "errors"

var (
	// ErrTopicConflict is returned when a bundle's topic attributes disagree
	// with an already-stored topic of the same slug.
	ErrTopicConflict = errors.New("topic attributes conflict with stored topic")
	// ErrLessonCollision is returned when a bundle supplies a lesson whose
	// (topic, slug) pair already exists.
	ErrLessonCollision = errors.New("lesson already exists for topic")
	// ErrQuizIntegrity is returned when a quiz question's correct answer is
	// not one of its options, or the options are malformed.
	ErrQuizIntegrity = errors.New("quiz question failed integrity check")
	// ErrBundleNotFound is returned when a requested bundle id is unknown.
	ErrBundleNotFound = errors.New("bundle not found")
)
