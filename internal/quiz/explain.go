package quiz

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/avani/mathflow/internal/content"
	"github.com/avani/mathflow/internal/llm"
)

// remediationSchema constrains the remediation reply to a single field.
var remediationSchema = &llm.Schema{
	Name:        "remediation",
	Description: "An encouraging explanation for a child who answered incorrectly",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"explanation": map[string]any{
				"type":        "string",
				"description": "Short, simple, encouraging explanation in plain ASCII",
			},
		},
		"required": []any{"explanation"},
	},
}

// Explainer produces remediation explanations for incorrect answers.
type Explainer struct {
	provider llm.Provider
	cfg      ExplainConfig
}

// NewExplainer creates an Explainer. A nil provider is valid; every
// explanation then comes from the deterministic template.
func NewExplainer(provider llm.Provider, cfg ExplainConfig) *Explainer {
	return &Explainer{provider: provider, cfg: cfg}
}

// Explain returns a remediation explanation for choosing option chosen on
// question q. Never fails: any generation problem yields the template.
func (e *Explainer) Explain(ctx context.Context, q Question, chosen int, lesson content.Lesson) string {
	if e.provider == nil {
		return fallbackExplanation(q)
	}

	ctx = llm.WithPurpose(ctx, "remediation")

	resp, err := e.provider.Generate(ctx, llm.Request{
		System: explainSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildExplainMessage(q, chosen, lesson)},
		},
		Schema:      remediationSchema,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	})
	if err != nil {
		return fallbackExplanation(q)
	}

	var out struct {
		Explanation string `json:"explanation"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil || out.Explanation == "" {
		return fallbackExplanation(q)
	}
	return out.Explanation
}

// fallbackExplanation is the deterministic remediation template: name the
// correct option, restate the question's own explanation, and encourage.
func fallbackExplanation(q Question) string {
	return fmt.Sprintf(
		"Not quite, but that's okay. The correct answer is %s. %s Keep going, you are learning!",
		q.Options[q.Correct],
		q.Explanation,
	)
}
