package interventions

import "github.com/classpulse/classpulse/internal/llm"

// InterventionSchema is the single shared contract for intervention
// generation. Every call site uses this schema; the collaborator must echo
// each student_label exactly so results can be rejoined.
var InterventionSchema = &llm.Schema{
	Name:        "intervention-batch",
	Description: "Intervention recommendations for a batch of anonymized students",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"interventions": map[string]any{
				"type":        "array",
				"description": "One entry per student in the batch",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"student_label": map[string]any{
							"type":        "string",
							"description": "The anonymized label exactly as given in the input",
						},
						"recommendations": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"minItems":    2,
							"maxItems":    3,
							"description": "2-3 concrete, teacher-actionable intervention steps",
						},
					},
					"required":             []any{"student_label", "recommendations"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"interventions"},
		"additionalProperties": false,
	},
}
