package app

import (
	"errors"
	"fmt"
)

var (
	// ErrSeedFailed aggregates one or more per-bundle failures; the CLI maps
	// it to exit code 1.
	ErrSeedFailed = errors.New("seed run failed")
	// ErrValidationFailed is returned when the offline dataset lint finds
	// problems.
	ErrValidationFailed = errors.New("dataset validation failed")
)

// State is the terminal state of a bundle after a run.
type State string

const (
	StateApplied   State = "applied"
	StateSkipped   State = "skipped"
	StateFailed    State = "failed"
	StateValidated State = "validated" // dry run: all checks passed, nothing committed
)

// Stage names the step a bundle was in when it finished or failed.
type Stage string

const (
	StageChecking    Stage = "checking"
	StageTopic       Stage = "topic"
	StageLessons     Stage = "lessons"
	StageBookkeeping Stage = "bookkeeping"
)

// BundleResult reports the outcome of one bundle.
type BundleResult struct {
	BundleID  string
	State     State
	Stage     Stage
	Err       error
	Lessons   int
	Examples  int
	Questions int
}

// Summary renders a single progress line for the result.
func (r BundleResult) Summary() string {
	switch r.State {
	case StateApplied:
		return fmt.Sprintf("%s: applied (%d lessons, %d examples, %d questions)", r.BundleID, r.Lessons, r.Examples, r.Questions)
	case StateSkipped:
		return fmt.Sprintf("%s: already applied (skipped)", r.BundleID)
	case StateValidated:
		return fmt.Sprintf("%s: validated (dry run, nothing committed)", r.BundleID)
	default:
		return fmt.Sprintf("%s: failed at stage %s: %v", r.BundleID, r.Stage, r.Err)
	}
}

// Report collects the results of a run in processing order.
type Report struct {
	Results []BundleResult
	DryRun  bool
}

func (r Report) count(s State) int {
	n := 0
	for _, res := range r.Results {
		if res.State == s {
			n++
		}
	}
	return n
}

func (r Report) Applied() int   { return r.count(StateApplied) }
func (r Report) Skipped() int   { return r.count(StateSkipped) }
func (r Report) Failed() int    { return r.count(StateFailed) }
func (r Report) Validated() int { return r.count(StateValidated) }

// Err returns ErrSeedFailed when at least one bundle failed, nil otherwise.
func (r Report) Err() error {
	if n := r.Failed(); n > 0 {
		return fmt.Errorf("%w: %d bundle(s)", ErrSeedFailed, n)
	}
	return nil
}
