package attempt

import (
	"time"

	"github.com/google/uuid"

	"github.com/avani/mathflow/internal/content"
	"github.com/avani/mathflow/internal/progress"
	"github.com/avani/mathflow/internal/quiz"
)

// Phase is the attempt lifecycle state.
type Phase int

const (
	// PhaseLoading covers question synthesis. The machine always leaves
	// Loading: synthesis cannot fail, by the fallback bank's contract.
	PhaseLoading Phase = iota

	// PhaseInProgress is the question loop.
	PhaseInProgress

	// PhaseExplanation follows an incorrect selection. Further selection
	// is blocked until the host calls Advance.
	PhaseExplanation

	// PhaseCompleted means the attempt is finalized.
	PhaseCompleted
)

// Config tunes host-visible pacing.
type Config struct {
	// AutoAdvanceDelay is how long the host should wait after a correct
	// answer before advancing. A pacing choice, kept configurable.
	AutoAdvanceDelay time.Duration
}

// DefaultConfig returns the attempt defaults.
func DefaultConfig() Config {
	return Config{AutoAdvanceDelay: time.Second}
}

// Selection reports the outcome of answering the current question.
type Selection struct {
	Correct bool

	// Last is true when this was the final question: the next Advance
	// finalizes instead of moving on.
	Last bool
}

// Machine drives one quiz attempt from loading through scoring. It is
// synchronous and UI-agnostic: the host calls Select and Advance from its
// event loop and owns the auto-advance timing.
type Machine struct {
	lesson        content.Lesson
	userID        string
	attemptNumber int

	questions []quiz.Question
	answers   []int
	index     int
	phase     Phase

	startedAt time.Time
	result    *progress.Attempt
}

// New creates a Machine in PhaseLoading.
func New(lesson content.Lesson, userID string, attemptNumber int) *Machine {
	return &Machine{
		lesson:        lesson,
		userID:        userID,
		attemptNumber: attemptNumber,
		index:         0,
		phase:         PhaseLoading,
	}
}

// Begin installs the synthesized question set and enters PhaseInProgress
// at question 0 with every answer unset.
func (m *Machine) Begin(questions []quiz.Question, now time.Time) {
	if m.phase != PhaseLoading {
		return
	}
	m.questions = questions
	m.answers = make([]int, len(questions))
	for i := range m.answers {
		m.answers[i] = progress.NoAnswer
	}
	m.startedAt = now
	m.phase = PhaseInProgress
}

// Phase returns the current lifecycle phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Index returns the current question index.
func (m *Machine) Index() int {
	return m.index
}

// Current returns the active question. Only valid outside PhaseLoading.
func (m *Machine) Current() quiz.Question {
	return m.questions[m.index]
}

// Questions returns the question set in use.
func (m *Machine) Questions() []quiz.Question {
	return m.questions
}

// AttemptNumber returns this attempt's 1-based number.
func (m *Machine) AttemptNumber() int {
	return m.attemptNumber
}

// Lesson returns the lesson under attempt.
func (m *Machine) Lesson() content.Lesson {
	return m.lesson
}

// Select records option k for the current question. Answers are recorded
// strictly in question order, once each; a second selection for the same
// question is ignored. An incorrect answer moves to PhaseExplanation;
// a correct one stays in PhaseInProgress for the host to Advance after
// its auto-advance delay.
func (m *Machine) Select(k int) (Selection, bool) {
	if m.phase != PhaseInProgress || m.answers[m.index] != progress.NoAnswer {
		return Selection{}, false
	}
	if k < 0 || k >= len(m.Current().Options) {
		return Selection{}, false
	}

	m.answers[m.index] = k

	sel := Selection{
		Correct: k == m.Current().Correct,
		Last:    m.index == len(m.questions)-1,
	}
	if !sel.Correct {
		m.phase = PhaseExplanation
	}
	return sel, true
}

// Advance moves to the next question, or finalizes after the last one.
// Valid after the current question has been answered, from either
// PhaseInProgress (correct answer) or PhaseExplanation.
func (m *Machine) Advance(now time.Time) {
	if m.phase != PhaseInProgress && m.phase != PhaseExplanation {
		return
	}
	if m.answers[m.index] == progress.NoAnswer {
		return
	}

	if m.index < len(m.questions)-1 {
		m.index++
		m.phase = PhaseInProgress
		return
	}
	m.finalize(now)
}

// finalize scores the attempt and produces the immutable record.
func (m *Machine) finalize(now time.Time) {
	score := 0
	for i, q := range m.questions {
		if m.answers[i] == q.Correct {
			score++
		}
	}

	answers := make([]int, len(m.answers))
	copy(answers, m.answers)

	m.result = &progress.Attempt{
		ID:            uuid.NewString(),
		UserID:        m.userID,
		LessonID:      m.lesson.ID,
		CourseID:      m.lesson.CourseID,
		AttemptNumber: m.attemptNumber,
		Questions:     m.questions,
		Answers:       answers,
		Score:         score,
		MaxScore:      len(m.questions),
		Passed:        score >= m.lesson.PassScore,
		StartedAt:     m.startedAt,
		CompletedAt:   now,
		TimeSpentSecs: int(now.Sub(m.startedAt).Seconds()),
	}
	m.phase = PhaseCompleted
}

// Result returns the finalized attempt record. The second return is false
// until the machine reaches PhaseCompleted. The host appends the record to
// the ledger exactly once.
func (m *Machine) Result() (progress.Attempt, bool) {
	if m.result == nil {
		return progress.Attempt{}, false
	}
	return *m.result, true
}

// Retake discards this machine's state and returns a fresh machine for the
// next attempt. The failed question set is not reused: the caller re-runs
// difficulty resolution and synthesis.
func (m *Machine) Retake() *Machine {
	return New(m.lesson, m.userID, m.attemptNumber+1)
}
