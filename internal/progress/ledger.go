package progress

import (
	"context"
	"time"

	"github.com/avani/mathflow/internal/quiz"
)

// NoAnswer marks a question the learner never answered.
const NoAnswer = -1

// Attempt is one complete pass through a question set, immutable once
// finalized. Appended to the ledger exactly once, after finalization.
type Attempt struct {
	ID       string
	UserID   string
	LessonID string
	CourseID string

	// AttemptNumber is 1-based and strictly increasing per (user, lesson).
	AttemptNumber int

	// Questions is the exact set served, embedded so history survives
	// regeneration on retakes.
	Questions []quiz.Question

	// Answers holds the selected option index per question, or NoAnswer.
	// Always the same length as Questions at finalization.
	Answers []int

	Score    int
	MaxScore int
	Passed   bool

	StartedAt   time.Time
	CompletedAt time.Time

	// TimeSpentSecs is CompletedAt - StartedAt in whole seconds.
	TimeSpentSecs int
}

// Percent is the attempt's score as a percentage, rounded to 2 decimals.
func (a Attempt) Percent() float64 {
	if a.MaxScore == 0 {
		return 0
	}
	return round2(float64(a.Score) / float64(a.MaxScore) * 100)
}

// Ledger is the append-only attempt history. Implementations must return
// attempts in insertion order from the By* queries; no read ever observes
// a partially written record.
type Ledger interface {
	// Append records a finalized attempt. A failed append means the
	// attempt is not part of analytics; it never blocks the learner flow.
	Append(ctx context.Context, attempt Attempt) error

	// ByUser returns every attempt for a user, in insertion order.
	ByUser(ctx context.Context, userID string) ([]Attempt, error)

	// ByUserAndLesson returns a user's attempts for one lesson, in
	// insertion order.
	ByUserAndLesson(ctx context.Context, userID, lessonID string) ([]Attempt, error)

	// Recent returns the n most recent attempts by completion time,
	// ties broken by insertion order.
	Recent(ctx context.Context, userID string, n int) ([]Attempt, error)
}

// NextAttemptNumber returns the attempt number for a new attempt given the
// prior attempts for the same (user, lesson) pair.
func NextAttemptNumber(prior []Attempt) int {
	return len(prior) + 1
}
