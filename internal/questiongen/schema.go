package questiongen

import "github.com/Rupesh023/Question-gen/internal/llm"

// VariationSchema defines the JSON schema for question variation responses.
var VariationSchema = &llm.Schema{
	Name:        "question-variation",
	Description: "A new multiple-choice math question derived from a base question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question_text": map[string]any{
				"type":        "string",
				"description": "The new question shown to the student, in plain ASCII text",
			},
			"instruction": map[string]any{
				"type":        "string",
				"description": "One-line direction for the student, e.g. 'Calculate the total number of combinations.'",
			},
			"options": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    5,
				"maxItems":    5,
				"description": "Exactly 5 answer options, displayed as A-E in order",
			},
			"correct_answer_index": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     4,
				"description": "Zero-based index of the correct option",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Step-by-step worked solution",
			},
			"difficulty": map[string]any{
				"type":        "string",
				"enum":        []any{"easy", "medium", "hard"},
				"description": "The difficulty of the new question; must match the base question",
			},
		},
		"required":             []any{"question_text", "instruction", "options", "correct_answer_index", "explanation", "difficulty"},
		"additionalProperties": false,
	},
}
