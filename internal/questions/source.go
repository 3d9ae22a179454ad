package questions

import (
	"context"
	"errors"

	"github.com/jortega/prepdeck/internal/topics"
)

// ErrNoQuestions is returned when no catalogued question exists for the
// requested topic and difficulty.
var ErrNoQuestions = errors.New("no questions available for this tech stack and difficulty level")

// Question represents an interview question ready for display.
type Question struct {
	// Text is the question prompt displayed to the candidate.
	Text string

	// Options holds exactly 4 choices for the multiple-choice variant.
	// Empty for the free-text variant.
	Options []string

	// CorrectAnswer is the text of the correct option. Present only for
	// the multiple-choice variant, and always equal to one of Options.
	CorrectAnswer string
}

// IsMultipleChoice reports whether the question carries answer options.
func (q *Question) IsMultipleChoice() bool {
	return len(q.Options) > 0
}

// NextInput holds all context needed to produce the next question.
type NextInput struct {
	// Topic is the subject-matter scope of the interview.
	Topic topics.Topic

	// Difficulty is the configured target level.
	Difficulty topics.Difficulty

	// PreviousQuestions contains the Text of questions already asked in
	// this session. Used for deduplication in the prompt.
	PreviousQuestions []string
}

// Source produces interview questions.
type Source interface {
	// NextQuestion produces a single question for the given input.
	// All configured validators are run before returning.
	NextQuestion(ctx context.Context, input NextInput) (*Question, error)
}
