package evaluate

import "github.com/jortega/prepdeck/internal/llm"

// FeedbackSchema defines the JSON schema for LLM evaluation responses.
var FeedbackSchema = &llm.Schema{
	Name:        "answer-feedback",
	Description: "Structured feedback for a candidate's interview answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"evaluation": map[string]any{
				"type":        "string",
				"description": "Brief summary of the answer quality, 2 sentences max",
			},
			"strengths": map[string]any{
				"type":        "string",
				"description": "What the candidate did well",
			},
			"areasForImprovement": map[string]any{
				"type":        "string",
				"description": "What the candidate should work on",
			},
			"estimatedLevel": map[string]any{
				"type":        "string",
				"enum":        []any{"Junior", "Mid", "Senior"},
				"description": "Per-answer skill assessment",
			},
			"nextQuestion": map[string]any{
				"type":        "string",
				"description": "Short transition line toward the next question",
			},
			"points": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     10,
				"description": "Points awarded for this answer",
			},
		},
		"required":             []any{"evaluation", "strengths", "areasForImprovement", "estimatedLevel", "nextQuestion", "points"},
		"additionalProperties": false,
	},
}
