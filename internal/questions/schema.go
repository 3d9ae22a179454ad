package questions

import "github.com/jortega/prepdeck/internal/llm"

// QuestionSchema defines the JSON schema for LLM question generation responses.
var QuestionSchema = &llm.Schema{
	Name:        "interview-question",
	Description: "A single technical interview question with options and answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The question prompt shown to the candidate",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Exactly 4 answer options, one of which is correct",
			},
			"answer": map[string]any{
				"type":        "string",
				"description": "The correct answer, repeated verbatim from options",
			},
		},
		"required":             []any{"question", "options", "answer"},
		"additionalProperties": false,
	},
}
