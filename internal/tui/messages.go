package tui

import (
	"time"

	"github.com/avani/mathflow/internal/quiz"
)

// quizReadyMsg is sent when synthesis for a new attempt has finished.
type quizReadyMsg struct {
	Questions     []quiz.Question
	AttemptNumber int
	Difficulty    quiz.Difficulty
	Err           error
}

// explanationMsg carries the remediation text for an incorrect answer.
type explanationMsg struct {
	QuestionID string
	Text       string
}

// advanceTickMsg fires after the auto-advance delay on a correct answer.
type advanceTickMsg time.Time

// appendDoneMsg is sent when the finalized attempt has been written to the
// ledger (or the write failed).
type appendDoneMsg struct {
	Err error
}
