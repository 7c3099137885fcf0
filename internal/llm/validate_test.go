package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-intervention",
		Description: "Test schema",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"student_label": map[string]any{"type": "string"},
				"recommendations": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": 2,
					"maxItems": 3,
				},
			},
			"required":             []any{"student_label", "recommendations"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse_NilSchemaPasses(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Errorf("validateResponse(nil schema) = %v, want nil", err)
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"student_label":"Student A","recommendations":["check in weekly","assign peer tutor"]}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Errorf("validateResponse = %v, want nil", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	err := validateResponse(testSchema(), json.RawMessage(`{"student_label":`))
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("err = %v, want *ErrInvalidResponse", err)
	}
}

func TestValidateResponse_MissingRequiredField(t *testing.T) {
	raw := json.RawMessage(`{"student_label":"Student A"}`)
	err := validateResponse(testSchema(), raw)
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("err = %v, want *ErrInvalidResponse", err)
	}
}

func TestValidateResponse_TooFewRecommendations(t *testing.T) {
	raw := json.RawMessage(`{"student_label":"Student A","recommendations":["just one"]}`)
	err := validateResponse(testSchema(), raw)
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("err = %v, want *ErrInvalidResponse for minItems violation", err)
	}
}
