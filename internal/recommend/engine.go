package recommend

import (
	"context"

	"github.com/jortega/prepdeck/internal/topics"
)

// RecommendInput carries the finished interview's transcript and outcome.
type RecommendInput struct {
	// Transcript is the concatenated Q/A text of the whole interview.
	Transcript string

	// FeedbackSummary is the concatenated per-question feedback summary.
	FeedbackSummary string

	// Topic is the interview's subject-matter scope.
	Topic topics.Topic

	// FinalLevel is the last estimated level from the interview.
	FinalLevel topics.Difficulty
}

// Engine produces a free-text study-recommendation block from a finished
// interview. Invoked once per completed session.
type Engine interface {
	Recommend(ctx context.Context, input RecommendInput) (string, error)
}
