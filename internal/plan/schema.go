package plan

import "github.com/deathnote2501/fia-v3.0-sub000/internal/llm"

// PlanSchema defines the JSON schema for training plan generation.
// The structural business rules (canonical titles, stage set {1..5}) are
// enforced separately by Validate; the schema covers shape and bounds.
var PlanSchema = &llm.Schema{
	Name:        "training-plan",
	Description: "A five-stage personalized training plan",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"stages": map[string]any{
				"type":        "array",
				"description": "Exactly 5 stages, numbered 1 to 5 in order",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"stage_number": map[string]any{
							"type":    "integer",
							"minimum": 1,
							"maximum": 5,
						},
						"title": map[string]any{
							"type":        "string",
							"description": "The canonical stage title for this number",
						},
						"modules": map[string]any{
							"type":        "array",
							"description": "1-3 modules for this stage",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"name": map[string]any{
										"type":        "string",
										"description": "Module name tied to the document content",
									},
									"submodules": map[string]any{
										"type":        "array",
										"description": "1-4 submodules for this module",
										"items": map[string]any{
											"type": "object",
											"properties": map[string]any{
												"name": map[string]any{
													"type": "string",
												},
												"slide_count": map[string]any{
													"type":        "integer",
													"description": "Number of slides for this submodule, 2-8",
													"minimum":     2,
													"maximum":     8,
												},
											},
											"required":             []any{"name", "slide_count"},
											"additionalProperties": false,
										},
									},
								},
								"required":             []any{"name", "submodules"},
								"additionalProperties": false,
							},
						},
					},
					"required":             []any{"stage_number", "title", "modules"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"stages"},
		"additionalProperties": false,
	},
}
