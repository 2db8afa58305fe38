package quiz

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/avani/mathflow/internal/content"
	"github.com/avani/mathflow/internal/llm"
)

func fiveValidBlocks() string {
	var b strings.Builder
	questions := []string{"2 + 2", "3 + 1", "5 + 0", "1 + 4", "2 + 3"}
	for _, q := range questions {
		b.WriteString("QUESTION: What is " + q + "?\n")
		b.WriteString("A) 3\nB) 4\nC) 5\nD) 6\n")
		b.WriteString("CORRECT: C\n")
		b.WriteString("EXPLANATION: Add them up.\n\n")
	}
	return b.String()
}

func testLesson() content.Lesson {
	return content.Lesson{
		ID:         "addition-basics",
		CourseID:   "number-foundations",
		Title:      "Addition Basics",
		Topics:     []string{"addition"},
		Difficulty: content.Beginner,
		PassScore:  content.DefaultPassScore,
	}
}

func TestSynthesizeFromProvider(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(fiveValidBlocks()),
	})
	s := NewSynthesizer(mock, DefaultConfig())

	qs := s.Synthesize(context.Background(), testLesson(), Medium, StyleVisual)
	if len(qs) != QuestionCount {
		t.Fatalf("questions = %d, want %d", len(qs), QuestionCount)
	}
	for i, q := range qs {
		if q.ID == "" {
			t.Errorf("question %d missing ID", i)
		}
		if q.Difficulty != Medium {
			t.Errorf("question %d difficulty = %s, want medium", i, q.Difficulty)
		}
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider calls = %d, want 1", mock.CallCount())
	}
}

func TestSynthesizeNilProvider(t *testing.T) {
	s := NewSynthesizer(nil, DefaultConfig())

	qs := s.Synthesize(context.Background(), testLesson(), Easy, StyleVisual)
	if len(qs) != QuestionCount {
		t.Fatalf("questions = %d, want %d", len(qs), QuestionCount)
	}
	for i, q := range qs {
		if q.Difficulty != Easy {
			t.Errorf("question %d difficulty = %s, want easy", i, q.Difficulty)
		}
	}
}

func TestSynthesizeProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	s := NewSynthesizer(mock, DefaultConfig())

	qs := s.Synthesize(context.Background(), testLesson(), Medium, StyleVisual)
	if len(qs) != QuestionCount {
		t.Fatalf("questions = %d, want %d (fallback)", len(qs), QuestionCount)
	}
}

func TestSynthesizePadsShortfall(t *testing.T) {
	// Provider returns 2 valid blocks and one malformed one.
	raw := `QUESTION: What is 1 + 1?
A) 1
B) 2
C) 3
D) 4
CORRECT: B
EXPLANATION: One and one more.

QUESTION: Broken block
A) only one option
CORRECT: A
EXPLANATION: Too few options.

QUESTION: What is 2 + 1?
A) 2
B) 4
C) 3
D) 5
CORRECT: C
EXPLANATION: Count one more from 2.`

	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(raw)})
	s := NewSynthesizer(mock, DefaultConfig())

	qs := s.Synthesize(context.Background(), testLesson(), Medium, StyleVisual)
	if len(qs) != QuestionCount {
		t.Fatalf("questions = %d, want %d", len(qs), QuestionCount)
	}
	// Generated questions come first, fallback fills the rest.
	if qs[0].Text != "What is 1 + 1?" {
		t.Errorf("first question = %q", qs[0].Text)
	}
	if qs[1].Text != "What is 2 + 1?" {
		t.Errorf("second question = %q", qs[1].Text)
	}
	for i, q := range qs {
		if q.Difficulty != Medium {
			t.Errorf("question %d difficulty = %s, want medium", i, q.Difficulty)
		}
	}
}

func TestSynthesizeTruncatesExcess(t *testing.T) {
	raw := fiveValidBlocks() + fiveValidBlocks()
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(raw)})
	s := NewSynthesizer(mock, DefaultConfig())

	qs := s.Synthesize(context.Background(), testLesson(), Hard, StyleVisual)
	if len(qs) != QuestionCount {
		t.Fatalf("questions = %d, want %d", len(qs), QuestionCount)
	}
}

func TestSynthesizeRequestShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(fiveValidBlocks()),
	})
	s := NewSynthesizer(mock, DefaultConfig())

	s.Synthesize(context.Background(), testLesson(), Medium, StyleAuditory)

	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema != nil {
		t.Error("quiz generation must not send a JSON schema")
	}
	if req.System == "" {
		t.Error("missing system prompt")
	}
	if len(req.Messages) != 1 {
		t.Fatalf("messages = %d, want 1", len(req.Messages))
	}
	msg := req.Messages[0].Content
	if !strings.Contains(msg, "Addition Basics") {
		t.Errorf("message does not name the lesson: %q", msg)
	}
	if !strings.Contains(strings.ToLower(msg), "medium") {
		t.Errorf("message does not name the difficulty: %q", msg)
	}
}
