package evaluate

import (
	"context"

	"github.com/jortega/prepdeck/internal/topics"
)

// Feedback is the structured critique of a single answer.
type Feedback struct {
	// Evaluation is a brief summary of the answer quality.
	Evaluation string

	// Strengths describes what the candidate did well.
	Strengths string

	// AreasForImprovement describes what to work on.
	AreasForImprovement string

	// EstimatedLevel is the per-answer skill assessment. Independent of
	// the session's configured difficulty; it never mutates it.
	EstimatedLevel topics.Difficulty

	// NextQuestion is a transition line proposed by the evaluator.
	// A hint only: the question source is authoritative for what is
	// actually asked next.
	NextQuestion string

	// Points awarded for this answer. For multiple-choice answers the
	// session overrides this with the locally computed value.
	Points int
}

// EvaluateInput holds everything the evaluator needs for one answer.
type EvaluateInput struct {
	Topic      topics.Topic
	Difficulty topics.Difficulty
	Question   string
	Answer     string
}

// Evaluator scores and critiques a submitted answer.
type Evaluator interface {
	Evaluate(ctx context.Context, input EvaluateInput) (*Feedback, error)
}
