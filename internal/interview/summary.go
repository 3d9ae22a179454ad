package interview

import "github.com/jortega/prepdeck/internal/topics"

// Summary is the session-to-results handoff built at Finish.
type Summary struct {
	// SessionID identifies the finished session, and keys its transcript.
	SessionID string

	// Topic and Difficulty echo the session's start parameters.
	Topic      topics.Topic
	Difficulty topics.Difficulty

	// Score is the final accumulated score.
	Score int

	// MaxScore is Answered * PointsPerCorrect.
	MaxScore int

	// Answered is the number of history entries.
	Answered int

	// FinalLevel is the last answer's estimated level.
	FinalLevel topics.Difficulty
}
