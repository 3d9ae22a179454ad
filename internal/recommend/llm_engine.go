package recommend

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jortega/prepdeck/internal/llm"
)

// LLMEngine implements Engine using the LLM provider.
type LLMEngine struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMEngine with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMEngine {
	return &LLMEngine{provider: provider, config: cfg}
}

// recommendOutput is the raw LLM response.
type recommendOutput struct {
	StudyRecommendations string `json:"studyRecommendations"`
}

// Recommend produces the study-recommendation block for one interview.
func (e *LLMEngine) Recommend(ctx context.Context, input RecommendInput) (string, error) {
	ctx = llm.WithPurpose(ctx, "recommendations")

	req := llm.Request{
		System: coachPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      RecommendationSchema,
		MaxTokens:   e.config.MaxTokens,
		Temperature: e.config.Temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("LLM recommendation failed: %w", err)
	}

	var raw recommendOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return "", fmt.Errorf("failed to parse LLM response: %w", err)
	}

	if raw.StudyRecommendations == "" {
		return "", fmt.Errorf("LLM returned empty recommendations")
	}

	return raw.StudyRecommendations, nil
}
