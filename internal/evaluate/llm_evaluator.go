package evaluate

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jortega/prepdeck/internal/llm"
	"github.com/jortega/prepdeck/internal/topics"
)

// LLMEvaluator implements Evaluator using the LLM provider.
type LLMEvaluator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMEvaluator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMEvaluator {
	return &LLMEvaluator{provider: provider, config: cfg}
}

// feedbackOutput is the raw LLM response before conversion.
type feedbackOutput struct {
	Evaluation          string `json:"evaluation"`
	Strengths           string `json:"strengths"`
	AreasForImprovement string `json:"areasForImprovement"`
	EstimatedLevel      string `json:"estimatedLevel"`
	NextQuestion        string `json:"nextQuestion"`
	Points              int    `json:"points"`
}

// Evaluate critiques a single answer.
func (e *LLMEvaluator) Evaluate(ctx context.Context, input EvaluateInput) (*Feedback, error) {
	ctx = llm.WithPurpose(ctx, "answer-eval")

	req := llm.Request{
		System: mentorPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      FeedbackSchema,
		MaxTokens:   e.config.MaxTokens,
		Temperature: e.config.Temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM evaluation failed: %w", err)
	}

	var raw feedbackOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	level, err := topics.ParseDifficulty(raw.EstimatedLevel)
	if err != nil {
		// Schema enum should prevent this; fall back to the target level.
		level = input.Difficulty
	}

	if raw.Points < 0 {
		raw.Points = 0
	}

	return &Feedback{
		Evaluation:          raw.Evaluation,
		Strengths:           raw.Strengths,
		AreasForImprovement: raw.AreasForImprovement,
		EstimatedLevel:      level,
		NextQuestion:        raw.NextQuestion,
		Points:              raw.Points,
	}, nil
}
