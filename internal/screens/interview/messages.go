package interview

import (
	"github.com/jortega/prepdeck/internal/evaluate"
	"github.com/jortega/prepdeck/internal/questions"
)

// questionReadyMsg is sent when a question fetch returns.
type questionReadyMsg struct {
	Question *questions.Question
	First    bool
	Err      error
}

// feedbackMsg is sent when an answer evaluation returns.
type feedbackMsg struct {
	Answer   string
	Feedback *evaluate.Feedback
	Err      error
}
