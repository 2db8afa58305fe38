package attempt

import (
	"testing"
	"time"

	"github.com/avani/mathflow/internal/content"
	"github.com/avani/mathflow/internal/quiz"
)

func testLesson() content.Lesson {
	return content.Lesson{
		ID:        "addition-basics",
		CourseID:  "number-foundations",
		Title:     "Addition Basics",
		PassScore: 3,
	}
}

func testQuestions(n int) []quiz.Question {
	qs := make([]quiz.Question, n)
	for i := range qs {
		qs[i] = quiz.Question{
			ID:          string(rune('a' + i)),
			Text:        "question",
			Options:     []string{"w", "x", "y", "z"},
			Correct:     0,
			Explanation: "because",
			Difficulty:  quiz.Medium,
		}
	}
	return qs
}

func TestNewStartsLoading(t *testing.T) {
	m := New(testLesson(), "avani", 1)
	if m.Phase() != PhaseLoading {
		t.Fatalf("phase = %v, want PhaseLoading", m.Phase())
	}
}

func TestBeginEntersInProgress(t *testing.T) {
	m := New(testLesson(), "avani", 1)
	m.Begin(testQuestions(5), time.Now())

	if m.Phase() != PhaseInProgress {
		t.Fatalf("phase = %v, want PhaseInProgress", m.Phase())
	}
	if m.Index() != 0 {
		t.Errorf("index = %d, want 0", m.Index())
	}
	if len(m.Questions()) != 5 {
		t.Errorf("questions = %d, want 5", len(m.Questions()))
	}
}

func TestSelectCorrectStaysInProgress(t *testing.T) {
	m := New(testLesson(), "avani", 1)
	m.Begin(testQuestions(5), time.Now())

	sel, ok := m.Select(0)
	if !ok {
		t.Fatal("select rejected")
	}
	if !sel.Correct {
		t.Error("expected correct")
	}
	if sel.Last {
		t.Error("first question reported as last")
	}
	if m.Phase() != PhaseInProgress {
		t.Errorf("phase = %v, want PhaseInProgress", m.Phase())
	}
}

func TestSelectIncorrectEntersExplanation(t *testing.T) {
	m := New(testLesson(), "avani", 1)
	m.Begin(testQuestions(5), time.Now())

	sel, ok := m.Select(2)
	if !ok {
		t.Fatal("select rejected")
	}
	if sel.Correct {
		t.Error("expected incorrect")
	}
	if m.Phase() != PhaseExplanation {
		t.Errorf("phase = %v, want PhaseExplanation", m.Phase())
	}

	// Further selection is blocked until Advance.
	if _, ok := m.Select(0); ok {
		t.Error("select accepted during explanation phase")
	}

	m.Advance(time.Now())
	if m.Phase() != PhaseInProgress {
		t.Errorf("phase after advance = %v, want PhaseInProgress", m.Phase())
	}
	if m.Index() != 1 {
		t.Errorf("index = %d, want 1", m.Index())
	}
}

func TestSelectIgnoresReAnswerAndOutOfRange(t *testing.T) {
	m := New(testLesson(), "avani", 1)
	m.Begin(testQuestions(5), time.Now())

	if _, ok := m.Select(-1); ok {
		t.Error("accepted negative option")
	}
	if _, ok := m.Select(4); ok {
		t.Error("accepted out-of-range option")
	}

	if _, ok := m.Select(0); !ok {
		t.Fatal("first select rejected")
	}
	if _, ok := m.Select(1); ok {
		t.Error("accepted second answer for same question")
	}
}

func TestAdvanceRequiresAnswer(t *testing.T) {
	m := New(testLesson(), "avani", 1)
	m.Begin(testQuestions(5), time.Now())

	m.Advance(time.Now())
	if m.Index() != 0 {
		t.Errorf("advance without answer moved to index %d", m.Index())
	}
}

func TestFullRunPasses(t *testing.T) {
	start := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Second)

	m := New(testLesson(), "avani", 2)
	m.Begin(testQuestions(5), start)

	// 3 correct, 2 wrong: meets pass score 3.
	answers := []int{0, 0, 1, 0, 2}
	for i, k := range answers {
		sel, ok := m.Select(k)
		if !ok {
			t.Fatalf("select %d rejected", i)
		}
		if i == len(answers)-1 && !sel.Last {
			t.Error("final question not reported as last")
		}
		m.Advance(end)
	}

	if m.Phase() != PhaseCompleted {
		t.Fatalf("phase = %v, want PhaseCompleted", m.Phase())
	}

	r, ok := m.Result()
	if !ok {
		t.Fatal("no result after completion")
	}
	if r.ID == "" {
		t.Error("result missing ID")
	}
	if r.Score != 3 {
		t.Errorf("score = %d, want 3", r.Score)
	}
	if r.MaxScore != 5 {
		t.Errorf("max score = %d, want 5", r.MaxScore)
	}
	if !r.Passed {
		t.Error("expected pass at score 3 with pass score 3")
	}
	if r.AttemptNumber != 2 {
		t.Errorf("attempt number = %d, want 2", r.AttemptNumber)
	}
	if len(r.Answers) != 5 {
		t.Fatalf("answers = %d, want 5", len(r.Answers))
	}
	for i, k := range answers {
		if r.Answers[i] != k {
			t.Errorf("answers[%d] = %d, want %d", i, r.Answers[i], k)
		}
	}
	if r.TimeSpentSecs != 90 {
		t.Errorf("time spent = %d, want 90", r.TimeSpentSecs)
	}
	if r.LessonID != "addition-basics" || r.CourseID != "number-foundations" {
		t.Errorf("lesson/course = %s/%s", r.LessonID, r.CourseID)
	}
}

func TestFullRunFails(t *testing.T) {
	m := New(testLesson(), "avani", 1)
	m.Begin(testQuestions(5), time.Now())

	// Only 2 correct: below pass score 3.
	for _, k := range []int{0, 0, 1, 1, 1} {
		m.Select(k)
		m.Advance(time.Now())
	}

	r, ok := m.Result()
	if !ok {
		t.Fatal("no result")
	}
	if r.Score != 2 {
		t.Errorf("score = %d, want 2", r.Score)
	}
	if r.Passed {
		t.Error("expected fail at score 2 with pass score 3")
	}
}

func TestResultBeforeCompletion(t *testing.T) {
	m := New(testLesson(), "avani", 1)
	m.Begin(testQuestions(5), time.Now())

	if _, ok := m.Result(); ok {
		t.Error("result available before completion")
	}
}

func TestRetake(t *testing.T) {
	m := New(testLesson(), "avani", 1)
	m.Begin(testQuestions(5), time.Now())
	for i := 0; i < 5; i++ {
		m.Select(1)
		m.Advance(time.Now())
	}

	next := m.Retake()
	if next.Phase() != PhaseLoading {
		t.Errorf("retake phase = %v, want PhaseLoading", next.Phase())
	}
	if next.AttemptNumber() != 2 {
		t.Errorf("retake attempt number = %d, want 2", next.AttemptNumber())
	}
	if next.Lesson().ID != "addition-basics" {
		t.Errorf("retake lesson = %s", next.Lesson().ID)
	}
	if len(next.Questions()) != 0 {
		t.Error("retake reused the failed question set")
	}
}
