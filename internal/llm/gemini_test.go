package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"explanation": map[string]any{"type": "string"},
			"difficulty":  map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
			"attempts":    map[string]any{"type": "integer"},
			"steps": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"explanation", "attempts"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("type = %s, want OBJECT", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("properties = %d, want 4", len(schema.Properties))
	}
	if schema.Properties["explanation"].Type != "STRING" {
		t.Fatalf("explanation type = %s, want STRING", schema.Properties["explanation"].Type)
	}
	if schema.Properties["attempts"].Type != "INTEGER" {
		t.Fatalf("attempts type = %s, want INTEGER", schema.Properties["attempts"].Type)
	}
	if len(schema.Properties["difficulty"].Enum) != 3 {
		t.Fatalf("enum values = %d, want 3", len(schema.Properties["difficulty"].Enum))
	}
	if schema.Properties["steps"].Type != "ARRAY" {
		t.Fatalf("steps type = %s, want ARRAY", schema.Properties["steps"].Type)
	}
	if schema.Properties["steps"].Items.Type != "STRING" {
		t.Fatalf("steps items type = %s, want STRING", schema.Properties["steps"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("required fields = %d, want 2", len(schema.Required))
	}
}
