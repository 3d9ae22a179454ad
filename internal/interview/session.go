package interview

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jortega/prepdeck/internal/evaluate"
	"github.com/jortega/prepdeck/internal/questions"
	"github.com/jortega/prepdeck/internal/topics"
)

// ErrBusy is returned when an action would start a second concurrent fetch.
var ErrBusy = errors.New("an operation is already in flight")

// ErrAnswerTooShort is returned for free-text answers below MinAnswerLength.
var ErrAnswerTooShort = fmt.Errorf("answer must be at least %d characters", MinAnswerLength)

// SetQuestion installs a freshly fetched question and opens it for answering.
func SetQuestion(state *State, q *questions.Question) {
	state.CurrentQuestion = q
	state.Phase = PhaseAwaitingAnswer
	state.Busy = false
}

// ValidateAnswer checks a candidate answer before any service call.
// Multiple-choice answers need no validation since options are preselected.
func ValidateAnswer(q *questions.Question, answer string) error {
	if q.IsMultipleChoice() {
		return nil
	}
	if len(strings.TrimSpace(answer)) < MinAnswerLength {
		return ErrAnswerTooShort
	}
	return nil
}

// GradeLocally computes the points for a multiple-choice answer by exact
// string equality against the designated correct answer. Free-text answers
// are not graded locally; graded is false and the evaluator's points stand.
func GradeLocally(q *questions.Question, answer string) (points int, graded bool) {
	if !q.IsMultipleChoice() {
		return 0, false
	}
	if answer == q.CorrectAnswer {
		return PointsPerCorrect, true
	}
	return 0, true
}

// BeginEvaluation marks the submitted answer as in flight.
// Returns ErrBusy if another fetch is outstanding, or a validation error
// for a too-short free-text answer.
func BeginEvaluation(state *State, answer string) error {
	if state.Busy {
		return ErrBusy
	}
	if state.Phase != PhaseAwaitingAnswer || state.CurrentQuestion == nil {
		return fmt.Errorf("no question awaiting an answer")
	}
	if err := ValidateAnswer(state.CurrentQuestion, answer); err != nil {
		return err
	}
	state.Phase = PhaseEvaluating
	state.Busy = true
	return nil
}

// ApplyFeedback finishes one question/answer cycle. On evaluator failure a
// fallback Feedback is synthesized so score and history stay consistent.
// For multiple-choice answers the locally computed points override whatever
// the evaluator returned. Appends the HistoryEntry and shows the feedback.
func ApplyFeedback(state *State, answer string, fb *evaluate.Feedback, evalErr error) {
	q := state.CurrentQuestion
	if q == nil {
		return
	}

	localPoints, graded := GradeLocally(q, answer)

	if evalErr != nil || fb == nil {
		fb = fallbackFeedback(state, localPoints)
	} else if graded {
		fb.Points = localPoints
	}

	state.History = append(state.History, HistoryEntry{
		Question: *q,
		Answer:   answer,
		Feedback: *fb,
	})
	state.Score += fb.Points
	state.Phase = PhaseShowingFeedback
	state.Busy = false
}

// fallbackFeedback builds the clearly labeled substitute used when the
// evaluator fails mid-session.
func fallbackFeedback(state *State, localPoints int) *evaluate.Feedback {
	return &evaluate.Feedback{
		Evaluation:          "Automatic evaluation was unavailable for this answer; your score was computed locally.",
		Strengths:           "Not assessed.",
		AreasForImprovement: "Not assessed.",
		EstimatedLevel:      state.Difficulty,
		NextQuestion:        "Let's continue with the next question.",
		Points:              localPoints,
	}
}

// CanAskNext reports whether another question may be requested.
func CanAskNext(state *State) bool {
	return len(state.History) < InterviewLength
}

// BeginQuestionFetch marks the next-question request as in flight and
// clears the current question and feedback. Returns ErrBusy if another
// fetch is outstanding, or an error once the interview length is reached.
func BeginQuestionFetch(state *State) error {
	if state.Busy {
		return ErrBusy
	}
	if !CanAskNext(state) {
		return fmt.Errorf("interview length reached")
	}
	state.CurrentQuestion = nil
	state.Busy = true
	return nil
}

// FailQuestionFetch records a failed next-question request. The existing
// history is untouched; the caller surfaces the error and the candidate
// may retry or finish.
func FailQuestionFetch(state *State) {
	state.Busy = false
	state.Phase = PhaseShowingFeedback
}

// AskedQuestions returns the texts of all questions asked so far, including
// the current unanswered one, for repetition avoidance.
func AskedQuestions(state *State) []string {
	texts := make([]string, 0, len(state.History)+1)
	for _, e := range state.History {
		texts = append(texts, e.Question.Text)
	}
	if state.CurrentQuestion != nil {
		texts = append(texts, state.CurrentQuestion.Text)
	}
	return texts
}

// Finish moves the session to its terminal phase and builds the results
// handoff. With an empty history there is nothing to persist: ok is false
// and the caller returns to the start screen.
func Finish(state *State) (summary *Summary, ok bool) {
	state.Phase = PhaseFinishing
	state.CurrentQuestion = nil
	state.Busy = false

	if len(state.History) == 0 {
		return nil, false
	}

	return &Summary{
		SessionID:  state.SessionID,
		Topic:      state.Topic,
		Difficulty: state.Difficulty,
		Score:      state.Score,
		MaxScore:   len(state.History) * PointsPerCorrect,
		Answered:   len(state.History),
		FinalLevel: FinalLevel(state),
	}, true
}

// FinalLevel is the last answer's estimated level, or the configured
// difficulty when nothing was answered.
func FinalLevel(state *State) topics.Difficulty {
	if len(state.History) == 0 {
		return state.Difficulty
	}
	return state.History[len(state.History)-1].Feedback.EstimatedLevel
}

// TranscriptText concatenates the Q/A pairs for the recommendation call.
func TranscriptText(history []HistoryEntry) string {
	parts := make([]string, 0, len(history))
	for _, e := range history {
		parts = append(parts, fmt.Sprintf("Q: %s\nA: %s", e.Question.Text, e.Answer))
	}
	return strings.Join(parts, "\n\n")
}

// FeedbackSummaryText concatenates the per-question evaluation summaries.
func FeedbackSummaryText(history []HistoryEntry) string {
	parts := make([]string, 0, len(history))
	for i, e := range history {
		parts = append(parts, fmt.Sprintf("Question %d: %s", i+1, e.Feedback.Evaluation))
	}
	return strings.Join(parts, "\n")
}
