package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func summarySchema() *Schema {
	return &Schema{
		Name:        "learning-summary",
		Description: "What the student learned about one question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"summary": map[string]any{"type": "string", "minLength": 1},
			},
			"required":             []any{"summary"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"summary":"Bar charts compare categories, not trends."}`)
	if err := validateResponse(summarySchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"notes":"irrelevant"}`)
	err := validateResponse(summarySchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"summary":42}`)
	err := validateResponse(summarySchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(summarySchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`Sure! I think the answer is B because...`)
	// Free-form replies skip validation entirely.
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_AnswerSheetShape(t *testing.T) {
	schema := &Schema{
		Name:        "answer-sheet",
		Description: "MCQ answers",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"answers": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"question_number": map[string]any{"type": "integer", "minimum": 1},
							"selected_answer": map[string]any{"type": "string", "enum": []any{"A", "B", "C", "D"}},
							"reasoning":       map[string]any{"type": "string"},
						},
						"required": []any{"question_number", "selected_answer"},
					},
				},
			},
			"required": []any{"answers"},
		},
	}

	valid := json.RawMessage(`{"answers":[{"question_number":1,"selected_answer":"C","reasoning":"it's an ID"}]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"answers":[{"question_number":1,"selected_answer":"E"}]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for out-of-range answer label")
	}
}
