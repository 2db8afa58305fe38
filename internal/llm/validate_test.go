package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func remediationSchema() *Schema {
	return &Schema{
		Name:        "remediation-test",
		Description: "A remediation explanation",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"explanation": map[string]any{"type": "string", "minLength": 1},
				"encouragement": map[string]any{
					"type": "string",
					"enum": []any{"gentle", "upbeat", "neutral"},
				},
				"steps": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"explanation"},
		},
	}
}

func TestValidateResponseValid(t *testing.T) {
	raw := json.RawMessage(`{"explanation":"4 plus 4 is 8, like two pairs of socks.","encouragement":"gentle"}`)
	if err := validateResponse(remediationSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponseValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"explanation":"Count up from 5."}`)
	if err := validateResponse(remediationSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponseMissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"encouragement":"upbeat"}`)
	err := validateResponse(remediationSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponseWrongType(t *testing.T) {
	raw := json.RawMessage(`{"explanation":42}`)
	err := validateResponse(remediationSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponseInvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"explanation":"ok","encouragement":"stern"}`)
	if err := validateResponse(remediationSchema(), raw); err == nil {
		t.Fatal("expected error for invalid enum value")
	}
}

func TestValidateResponseMalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(remediationSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponseEmpty(t *testing.T) {
	if err := validateResponse(remediationSchema(), json.RawMessage(``)); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	raw := json.RawMessage(`QUESTION: free text is fine without a schema`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponseArrayItems(t *testing.T) {
	schema := remediationSchema()

	valid := json.RawMessage(`{"explanation":"ok","steps":["draw 3 dots","draw 4 more","count them all"]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"explanation":"ok","steps":[1,2,3]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
