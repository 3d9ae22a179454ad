package interview

import (
	"time"

	"github.com/google/uuid"

	"github.com/jortega/prepdeck/internal/evaluate"
	"github.com/jortega/prepdeck/internal/questions"
	"github.com/jortega/prepdeck/internal/topics"
)

// InterviewLength is the fixed maximum number of questions per interview.
const InterviewLength = 10

// PointsPerCorrect is the fixed score for a locally graded correct answer.
const PointsPerCorrect = 10

// MinAnswerLength is the minimum character count for a free-text answer.
const MinAnswerLength = 10

// Phase represents the current phase of the interview session.
type Phase int

const (
	PhaseInitializing    Phase = iota // Fetching the first question
	PhaseAwaitingAnswer               // Question displayed, waiting for the candidate
	PhaseEvaluating                   // Answer submitted, evaluation in flight
	PhaseShowingFeedback              // Feedback displayed, Next/Finish available
	PhaseFinishing                    // Terminal: transcript persisted, handoff built
)

// HistoryEntry records one answered question. Append-only; ordering is
// chronological and equals display order.
type HistoryEntry struct {
	Question questions.Question
	Answer   string
	Feedback evaluate.Feedback
}

// State is the single mutable aggregate for one interview session.
// Topic and Difficulty are set once at start and never altered.
type State struct {
	// SessionID is the UUID for this session.
	SessionID string

	// Topic is the subject-matter scope, fixed at session start.
	Topic topics.Topic

	// Difficulty is the configured target level, fixed at session start.
	Difficulty topics.Difficulty

	// CurrentQuestion is the active question. Nil only during
	// Initializing, Finishing, or while the next question is in flight.
	CurrentQuestion *questions.Question

	// History holds one entry per answered question.
	History []HistoryEntry

	// Score is the running total. Always equals the sum of points across
	// History.
	Score int

	// Phase is the current session phase.
	Phase Phase

	// Busy is true while an async fetch (question or evaluation) is in
	// flight. Actions that would start a second fetch are rejected.
	Busy bool

	// StartTime is when the session began.
	StartTime time.Time
}

// NewState creates a session state for the given start parameters.
func NewState(topic topics.Topic, difficulty topics.Difficulty) *State {
	return &State{
		SessionID:  uuid.NewString(),
		Topic:      topic,
		Difficulty: difficulty,
		Phase:      PhaseInitializing,
		Busy:       true,
		StartTime:  time.Now(),
	}
}
