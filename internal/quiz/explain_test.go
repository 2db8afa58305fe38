package quiz

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/avani/mathflow/internal/llm"
)

func testQuestion() Question {
	return Question{
		ID:          "q1",
		Text:        "What is 2 + 3?",
		Options:     []string{"4", "5", "6", "7"},
		Correct:     1,
		Explanation: "Count up from 2: 3, 4, 5.",
		Difficulty:  Easy,
	}
}

func TestExplainFromProvider(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"explanation":"The answer is 5. Count up from 2 three times. You will get it next time!"}`),
	})
	e := NewExplainer(mock, DefaultExplainConfig())

	got := e.Explain(context.Background(), testQuestion(), 0, testLesson())
	if !strings.Contains(got, "The answer is 5.") {
		t.Errorf("explanation = %q", got)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema == nil {
		t.Fatal("remediation must request a JSON schema")
	}
	if req.Schema.Name != "remediation" {
		t.Errorf("schema name = %q", req.Schema.Name)
	}
	msg := req.Messages[0].Content
	if !strings.Contains(msg, "The child chose: 4") {
		t.Errorf("message missing chosen option: %q", msg)
	}
}

func TestExplainNilProvider(t *testing.T) {
	e := NewExplainer(nil, DefaultExplainConfig())

	got := e.Explain(context.Background(), testQuestion(), 0, testLesson())
	if !strings.Contains(got, "The correct answer is 5.") {
		t.Errorf("fallback = %q", got)
	}
	if !strings.Contains(got, "Count up from 2: 3, 4, 5.") {
		t.Errorf("fallback missing question explanation: %q", got)
	}
}

func TestExplainFallsBack(t *testing.T) {
	tests := []struct {
		name string
		resp llm.MockResponse
	}{
		{
			name: "provider error",
			resp: llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
		},
		{
			name: "invalid JSON",
			resp: llm.MockResponse{Content: json.RawMessage(`not json at all`)},
		},
		{
			name: "empty explanation",
			resp: llm.MockResponse{Content: json.RawMessage(`{"explanation":""}`)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(tt.resp)
			e := NewExplainer(mock, DefaultExplainConfig())

			got := e.Explain(context.Background(), testQuestion(), 2, testLesson())
			if !strings.Contains(got, "The correct answer is 5.") {
				t.Errorf("expected template fallback, got %q", got)
			}
		})
	}
}
