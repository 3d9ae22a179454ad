package recommend

import "github.com/jortega/prepdeck/internal/llm"

// RecommendationSchema defines the JSON schema for LLM recommendation responses.
var RecommendationSchema = &llm.Schema{
	Name:        "study-recommendations",
	Description: "Personalized study recommendations after a mock interview",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"studyRecommendations": map[string]any{
				"type":        "string",
				"description": "Multi-section study recommendations text",
			},
		},
		"required":             []any{"studyRecommendations"},
		"additionalProperties": false,
	},
}
