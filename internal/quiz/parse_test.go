package quiz

import "testing"

const validBlock = `QUESTION: What is 2 + 2?
A) 3
B) 4
C) 5
D) 6
CORRECT: B
EXPLANATION: 2 and 2 more make 4.`

func TestParseBlocksValid(t *testing.T) {
	questions := accepted(parseBlocks(validBlock))
	if len(questions) != 1 {
		t.Fatalf("accepted = %d, want 1", len(questions))
	}

	q := questions[0]
	if q.Text != "What is 2 + 2?" {
		t.Errorf("text = %q", q.Text)
	}
	if len(q.Options) != 4 {
		t.Fatalf("options = %d, want 4", len(q.Options))
	}
	if q.Options[1] != "4" {
		t.Errorf("options[1] = %q, want 4", q.Options[1])
	}
	if q.Correct != 1 {
		t.Errorf("correct = %d, want 1", q.Correct)
	}
	if q.Explanation != "2 and 2 more make 4." {
		t.Errorf("explanation = %q", q.Explanation)
	}
}

func TestParseBlocksMultiple(t *testing.T) {
	raw := validBlock + "\n\n" + `QUESTION: What is 3 + 3?
A) 5
B) 7
C) 6
D) 9
CORRECT: C
EXPLANATION: Doubles: 3 + 3 = 6.`

	questions := accepted(parseBlocks(raw))
	if len(questions) != 2 {
		t.Fatalf("accepted = %d, want 2", len(questions))
	}
	if questions[1].Correct != 2 {
		t.Errorf("second correct = %d, want 2", questions[1].Correct)
	}
}

func TestParseBlocksAlternateOptionPunctuation(t *testing.T) {
	raw := `QUESTION: Pick one.
A. first
B: second
C) third
D. fourth
CORRECT: A
EXPLANATION: Any of the three separators is fine.`

	questions := accepted(parseBlocks(raw))
	if len(questions) != 1 {
		t.Fatalf("accepted = %d, want 1", len(questions))
	}
	if questions[0].Options[3] != "fourth" {
		t.Errorf("options[3] = %q", questions[0].Options[3])
	}
}

func TestParseBlocksRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "missing option",
			raw: `QUESTION: Incomplete?
A) one
B) two
C) three
CORRECT: A
EXPLANATION: Only three options.`,
		},
		{
			name: "missing correct line",
			raw: `QUESTION: No answer?
A) one
B) two
C) three
D) four
EXPLANATION: No CORRECT line.`,
		},
		{
			name: "missing explanation",
			raw: `QUESTION: No explanation?
A) one
B) two
C) three
D) four
CORRECT: D`,
		},
		{
			name: "duplicate option letter",
			raw: `QUESTION: Dup?
A) one
A) one again
B) two
C) three
CORRECT: A
EXPLANATION: A appears twice.`,
		},
		{
			name: "empty question text",
			raw: `QUESTION:
A) one
B) two
C) three
D) four
CORRECT: A
EXPLANATION: Text is blank.`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := parseBlocks(tt.raw)
			if len(results) != 1 {
				t.Fatalf("blocks = %d, want 1", len(results))
			}
			if results[0].err == nil {
				t.Error("expected parse error, got accepted question")
			}
		})
	}
}

func TestParseBlocksPartialAcceptance(t *testing.T) {
	// One good block between two bad ones: keep the good one.
	raw := `QUESTION: Bad one
A) only option
CORRECT: A
EXPLANATION: Too few options.

` + validBlock + `

QUESTION: Another bad one
A) one
B) two
C) three
D) four
CORRECT: E
EXPLANATION: Correct letter out of range.`

	results := parseBlocks(raw)
	if len(results) != 3 {
		t.Fatalf("blocks = %d, want 3", len(results))
	}
	questions := accepted(results)
	if len(questions) != 1 {
		t.Fatalf("accepted = %d, want 1", len(questions))
	}
	if questions[0].Text != "What is 2 + 2?" {
		t.Errorf("kept question = %q", questions[0].Text)
	}
}

func TestParseBlocksNoMarkers(t *testing.T) {
	if got := accepted(parseBlocks("free-form text with no markers")); len(got) != 0 {
		t.Errorf("accepted = %d, want 0", len(got))
	}
	if got := accepted(parseBlocks("")); len(got) != 0 {
		t.Errorf("accepted on empty = %d, want 0", len(got))
	}
}
