package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-object",
		Description: "A test object",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title":       map[string]any{"type": "string"},
				"slide_count": map[string]any{"type": "integer", "minimum": 2, "maximum": 8},
				"level":       map[string]any{"type": "string", "enum": []any{"beginner", "intermediate", "advanced"}},
			},
			"required": []any{"title", "slide_count"},
		},
	}
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"title":"Context Setting","slide_count":4,"level":"beginner"}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"title":"Mastery","slide_count":2}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"title":"Mastery"}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_OutOfRange(t *testing.T) {
	raw := json.RawMessage(`{"title":"Mastery","slide_count":12}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for out-of-range slide_count")
	}
}

func TestValidateResponse_NotJSON(t *testing.T) {
	raw := json.RawMessage(`here is your plan:`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for non-JSON content")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything`)); err != nil {
		t.Fatalf("nil schema must validate, got: %v", err)
	}
}
