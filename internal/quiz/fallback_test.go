package quiz

import (
	"testing"

	"github.com/avani/mathflow/internal/content"
)

func TestBankFor(t *testing.T) {
	tests := []struct {
		name   string
		topics []string
		wantQ  string // text of the bank's first question
	}{
		{
			name:   "addition topics",
			topics: []string{"single-digit addition", "number bonds"},
			wantQ:  "What is 7 + 5?",
		},
		{
			name:   "counting topics",
			topics: []string{"counting objects", "skip counting by 5"},
			wantQ:  "What is 7 + 5?",
		},
		{
			name:   "fraction topics",
			topics: []string{"unit fractions", "fair sharing"},
			wantQ:  "A pizza is cut into 4 equal slices. You eat 1. What fraction did you eat?",
		},
		{
			name:   "unknown topics fall to default",
			topics: []string{"geometry", "shapes"},
			wantQ:  "What number makes this true? 3 + ? = 10",
		},
		{
			name:   "no topics fall to default",
			topics: nil,
			wantQ:  "What number makes this true? 3 + ? = 10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := bankFor(content.Lesson{ID: "x", Topics: tt.topics})
			if b.questions[0].text != tt.wantQ {
				t.Errorf("bank first question = %q, want %q", b.questions[0].text, tt.wantQ)
			}
		})
	}
}

func TestFallbackQuestions(t *testing.T) {
	lesson := content.Lesson{ID: "addition-basics", Topics: []string{"addition"}}

	qs := fallbackQuestions(lesson, Hard, 3)
	if len(qs) != 3 {
		t.Fatalf("questions = %d, want 3", len(qs))
	}

	seen := map[string]bool{}
	for i, q := range qs {
		if q.ID == "" {
			t.Errorf("question %d has empty ID", i)
		}
		if seen[q.ID] {
			t.Errorf("duplicate ID %q", q.ID)
		}
		seen[q.ID] = true
		if q.Difficulty != Hard {
			t.Errorf("question %d difficulty = %s, want hard", i, q.Difficulty)
		}
		if len(q.Options) != OptionCount {
			t.Errorf("question %d options = %d, want %d", i, len(q.Options), OptionCount)
		}
		if q.Correct < 0 || q.Correct >= OptionCount {
			t.Errorf("question %d correct = %d out of range", i, q.Correct)
		}
		if q.Explanation == "" {
			t.Errorf("question %d missing explanation", i)
		}
	}
}

func TestFallbackQuestionsCycles(t *testing.T) {
	lesson := content.Lesson{ID: "x"}

	qs := fallbackQuestions(lesson, Easy, 7)
	if len(qs) != 7 {
		t.Fatalf("questions = %d, want 7", len(qs))
	}
	// Bank holds 5; entries 5 and 6 repeat 0 and 1 but with fresh IDs.
	if qs[5].Text != qs[0].Text {
		t.Errorf("cycled text = %q, want %q", qs[5].Text, qs[0].Text)
	}
	if qs[5].ID == qs[0].ID {
		t.Error("cycled question reused ID")
	}
}
