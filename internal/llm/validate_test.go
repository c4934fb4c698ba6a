package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func turnSchema() *Schema {
	return &Schema{
		Name:        "turn-test",
		Description: "A single interview turn",
		Definition: map[string]any{
			"type":     "object",
			"required": []any{"message"},
			"properties": map[string]any{
				"message": map[string]any{"type": "string"},
				"is_complete": map[string]any{
					"type": "boolean",
				},
			},
		},
	}
}

func TestValidateResponseAccepts(t *testing.T) {
	raw := json.RawMessage(`{"message":"Tell me about hash maps","is_complete":false}`)
	if err := validateResponse(turnSchema(), raw); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
}

func TestValidateResponseMissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"is_complete":false}`)
	err := validateResponse(turnSchema(), raw)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponseMalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{"message": unterminated`)
	err := validateResponse(turnSchema(), raw)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema should skip validation, got %v", err)
	}
}

func TestSchemaCompileCached(t *testing.T) {
	s := turnSchema()
	first, err := getCompiledSchema(s)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	second, err := getCompiledSchema(s)
	if err != nil {
		t.Fatalf("recompile: %v", err)
	}
	if first != second {
		t.Error("expected cached schema instance on second lookup")
	}
}
