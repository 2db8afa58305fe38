package tui

import (
	"context"
	"testing"

	"github.com/avani/mathflow/internal/content"
	"github.com/avani/mathflow/internal/progress"
	"github.com/avani/mathflow/internal/quiz"
)

// fakeLedger serves canned history and records appends.
type fakeLedger struct {
	attempts []progress.Attempt
	appended []progress.Attempt
}

func (f *fakeLedger) Append(_ context.Context, a progress.Attempt) error {
	f.appended = append(f.appended, a)
	return nil
}

func (f *fakeLedger) ByUser(_ context.Context, userID string) ([]progress.Attempt, error) {
	var out []progress.Attempt
	for _, a := range f.attempts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeLedger) ByUserAndLesson(_ context.Context, userID, lessonID string) ([]progress.Attempt, error) {
	var out []progress.Attempt
	for _, a := range f.attempts {
		if a.UserID == userID && a.LessonID == lessonID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeLedger) Recent(_ context.Context, userID string, n int) ([]progress.Attempt, error) {
	all, _ := f.ByUser(context.Background(), userID)
	if n > len(all) {
		n = len(all)
	}
	return all[len(all)-n:], nil
}

func testDeps(ledger progress.Ledger) Deps {
	return Deps{
		Ledger:      ledger,
		Synthesizer: quiz.NewSynthesizer(nil, quiz.DefaultConfig()),
		UserID:      "avani",
		StyleHint:   quiz.StyleVisual,
	}
}

func TestLoadQuizNumbersFromLedger(t *testing.T) {
	lesson, err := content.GetLesson("addition-basics")
	if err != nil {
		t.Fatalf("get lesson: %v", err)
	}

	ledger := &fakeLedger{attempts: []progress.Attempt{
		{UserID: "avani", LessonID: lesson.ID, AttemptNumber: 1, Score: 2, MaxScore: 5},
		{UserID: "avani", LessonID: lesson.ID, AttemptNumber: 2, Score: 3, MaxScore: 5, Passed: true},
	}}

	msg := loadQuiz(testDeps(ledger), lesson, 0)()
	ready, ok := msg.(quizReadyMsg)
	if !ok {
		t.Fatalf("msg = %T, want quizReadyMsg", msg)
	}
	if ready.Err != nil {
		t.Fatalf("unexpected error: %v", ready.Err)
	}
	if ready.AttemptNumber != 3 {
		t.Errorf("attempt number = %d, want 3 (two recorded attempts)", ready.AttemptNumber)
	}
	if len(ready.Questions) != 5 {
		t.Errorf("questions = %d, want 5", len(ready.Questions))
	}
}

func TestLoadQuizIgnoresUnrecordedAttempts(t *testing.T) {
	lesson, err := content.GetLesson("addition-basics")
	if err != nil {
		t.Fatalf("get lesson: %v", err)
	}

	// One recorded attempt: a retake after a failed append must number
	// from the ledger, not from the in-memory count.
	ledger := &fakeLedger{attempts: []progress.Attempt{
		{UserID: "avani", LessonID: lesson.ID, AttemptNumber: 1, Score: 1, MaxScore: 5},
	}}

	msg := loadQuiz(testDeps(ledger), lesson, 0)()
	ready := msg.(quizReadyMsg)
	if ready.AttemptNumber != 2 {
		t.Errorf("attempt number = %d, want 2 (one recorded attempt)", ready.AttemptNumber)
	}
}

func TestLoadQuizEmptyHistoryStartsAtOne(t *testing.T) {
	lesson, err := content.GetLesson("counting-groups")
	if err != nil {
		t.Fatalf("get lesson: %v", err)
	}

	msg := loadQuiz(testDeps(&fakeLedger{}), lesson, 0)()
	ready := msg.(quizReadyMsg)
	if ready.AttemptNumber != 1 {
		t.Errorf("attempt number = %d, want 1", ready.AttemptNumber)
	}
}
