package interview

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/jortega/prepdeck/internal/evaluate"
	"github.com/jortega/prepdeck/internal/questions"
	"github.com/jortega/prepdeck/internal/topics"
)

func newTestState(t *testing.T) *State {
	t.Helper()
	return NewState(topics.TopicReact, topics.DifficultyJunior)
}

func mcQuestion() *questions.Question {
	return &questions.Question{
		Text: "What is JSX in React?",
		Options: []string{
			"A JavaScript extension that allows HTML-like syntax",
			"A CSS preprocessor",
			"A state management library",
			"A testing framework",
		},
		CorrectAnswer: "A JavaScript extension that allows HTML-like syntax",
	}
}

func freeTextQuestion() *questions.Question {
	return &questions.Question{Text: "Explain how React reconciliation works."}
}

func goodFeedback(points int) *evaluate.Feedback {
	return &evaluate.Feedback{
		Evaluation:          "Well reasoned.",
		Strengths:           "Clear explanation.",
		AreasForImprovement: "Add examples.",
		EstimatedLevel:      topics.DifficultyJunior,
		NextQuestion:        "Next up.",
		Points:              points,
	}
}

// answerOne runs a full answer cycle against the state.
func answerOne(t *testing.T, state *State, q *questions.Question, answer string, fb *evaluate.Feedback, evalErr error) {
	t.Helper()
	SetQuestion(state, q)
	if err := BeginEvaluation(state, answer); err != nil {
		t.Fatalf("BeginEvaluation: %v", err)
	}
	ApplyFeedback(state, answer, fb, evalErr)
}

func TestNewState(t *testing.T) {
	state := newTestState(t)
	if state.Phase != PhaseInitializing {
		t.Errorf("phase = %d, want PhaseInitializing", state.Phase)
	}
	if !state.Busy {
		t.Error("expected Busy during initialization")
	}
	if state.SessionID == "" {
		t.Error("expected a session ID")
	}
}

func TestScoreInvariant(t *testing.T) {
	state := newTestState(t)

	q := mcQuestion()
	answers := []string{
		q.CorrectAnswer, "A CSS preprocessor", q.CorrectAnswer,
		"A testing framework", q.CorrectAnswer,
	}
	for _, a := range answers {
		answerOne(t, state, mcQuestion(), a, goodFeedback(7), nil)
	}

	sum := 0
	for _, e := range state.History {
		sum += e.Feedback.Points
	}
	if state.Score != sum {
		t.Errorf("score = %d, sum of history points = %d", state.Score, sum)
	}
	if state.Score != 3*PointsPerCorrect {
		t.Errorf("score = %d, want %d", state.Score, 3*PointsPerCorrect)
	}
}

func TestLocalGradingOverridesEvaluatorPoints(t *testing.T) {
	state := newTestState(t)

	// Evaluator awards 7 points; local grading of a correct MC answer
	// overrides with 10.
	answerOne(t, state, mcQuestion(), mcQuestion().CorrectAnswer, goodFeedback(7), nil)
	if got := state.History[0].Feedback.Points; got != PointsPerCorrect {
		t.Errorf("points = %d, want %d", got, PointsPerCorrect)
	}

	// Evaluator awards 7 points; local grading of a wrong MC answer
	// overrides with 0.
	answerOne(t, state, mcQuestion(), "A CSS preprocessor", goodFeedback(7), nil)
	if got := state.History[1].Feedback.Points; got != 0 {
		t.Errorf("points = %d, want 0", got)
	}
}

func TestFreeTextKeepsEvaluatorPoints(t *testing.T) {
	state := newTestState(t)
	answerOne(t, state, freeTextQuestion(), "React compares virtual DOM trees and patches differences.", goodFeedback(7), nil)
	if got := state.History[0].Feedback.Points; got != 7 {
		t.Errorf("points = %d, want evaluator's 7", got)
	}
}

func TestEvaluatorFailureSynthesizesFallback(t *testing.T) {
	state := newTestState(t)

	answerOne(t, state, mcQuestion(), mcQuestion().CorrectAnswer, nil, errors.New("provider down"))

	if len(state.History) != 1 {
		t.Fatalf("history length = %d, want 1", len(state.History))
	}
	fb := state.History[0].Feedback
	if fb.Points != PointsPerCorrect {
		t.Errorf("fallback points = %d, want locally computed %d", fb.Points, PointsPerCorrect)
	}
	if !strings.Contains(fb.Evaluation, "unavailable") {
		t.Errorf("expected clearly labeled fallback, got %q", fb.Evaluation)
	}
	if state.Score != PointsPerCorrect {
		t.Errorf("score = %d, want %d", state.Score, PointsPerCorrect)
	}
	if state.Phase != PhaseShowingFeedback {
		t.Error("expected feedback phase after fallback")
	}
}

func TestValidateAnswer_FreeTextTooShort(t *testing.T) {
	q := freeTextQuestion()
	if err := ValidateAnswer(q, "short"); !errors.Is(err, ErrAnswerTooShort) {
		t.Errorf("expected ErrAnswerTooShort, got %v", err)
	}
	if err := ValidateAnswer(q, "   padded   "); !errors.Is(err, ErrAnswerTooShort) {
		t.Errorf("expected whitespace to be trimmed, got %v", err)
	}
	if err := ValidateAnswer(q, "a perfectly fine answer"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	// Multiple-choice answers are preselected; no validation applies.
	if err := ValidateAnswer(mcQuestion(), "x"); err != nil {
		t.Errorf("unexpected error for MC answer: %v", err)
	}
}

func TestPendingGuard(t *testing.T) {
	state := newTestState(t)
	SetQuestion(state, mcQuestion())

	if err := BeginEvaluation(state, "A CSS preprocessor"); err != nil {
		t.Fatalf("BeginEvaluation: %v", err)
	}
	// A second submission while evaluating is rejected.
	if err := BeginEvaluation(state, "A CSS preprocessor"); !errors.Is(err, ErrBusy) {
		t.Errorf("expected ErrBusy, got %v", err)
	}
	// So is a concurrent question fetch.
	if err := BeginQuestionFetch(state); !errors.Is(err, ErrBusy) {
		t.Errorf("expected ErrBusy, got %v", err)
	}
}

func TestLengthBound(t *testing.T) {
	state := newTestState(t)

	for i := 0; i < InterviewLength; i++ {
		if !CanAskNext(state) {
			t.Fatalf("CanAskNext false after %d answers", i)
		}
		answerOne(t, state, mcQuestion(), mcQuestion().CorrectAnswer, goodFeedback(0), nil)
	}

	if len(state.History) != InterviewLength {
		t.Fatalf("history length = %d, want %d", len(state.History), InterviewLength)
	}
	if CanAskNext(state) {
		t.Error("CanAskNext true at the interview length bound")
	}
	if err := BeginQuestionFetch(state); err == nil {
		t.Error("expected BeginQuestionFetch to fail at the bound")
	}
}

func TestFailQuestionFetchKeepsHistory(t *testing.T) {
	state := newTestState(t)
	answerOne(t, state, mcQuestion(), mcQuestion().CorrectAnswer, goodFeedback(0), nil)

	if err := BeginQuestionFetch(state); err != nil {
		t.Fatalf("BeginQuestionFetch: %v", err)
	}
	FailQuestionFetch(state)

	if len(state.History) != 1 {
		t.Errorf("history length = %d, want 1", len(state.History))
	}
	if state.Busy {
		t.Error("expected Busy cleared after failed fetch")
	}
	if state.Phase != PhaseShowingFeedback {
		t.Error("expected to return to feedback phase")
	}
}

func TestFinishEmptyHistory(t *testing.T) {
	state := newTestState(t)

	summary, ok := Finish(state)
	if ok {
		t.Error("expected ok=false for empty history")
	}
	if summary != nil {
		t.Error("expected nil summary for empty history")
	}
	if state.Phase != PhaseFinishing {
		t.Error("expected terminal phase")
	}
}

func TestFinishSummary(t *testing.T) {
	state := newTestState(t)
	answerOne(t, state, mcQuestion(), mcQuestion().CorrectAnswer, goodFeedback(0), nil)
	answerOne(t, state, mcQuestion(), "A CSS preprocessor", goodFeedback(0), nil)

	summary, ok := Finish(state)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if summary.Score != PointsPerCorrect {
		t.Errorf("score = %d, want %d", summary.Score, PointsPerCorrect)
	}
	if summary.MaxScore != 2*PointsPerCorrect {
		t.Errorf("maxScore = %d, want %d", summary.MaxScore, 2*PointsPerCorrect)
	}
	if summary.Topic != topics.TopicReact || summary.Difficulty != topics.DifficultyJunior {
		t.Error("summary must echo the start parameters")
	}
	if summary.Answered != 2 {
		t.Errorf("answered = %d, want 2", summary.Answered)
	}
}

func TestFinalLevel(t *testing.T) {
	state := newTestState(t)
	if FinalLevel(state) != topics.DifficultyJunior {
		t.Error("empty history should fall back to the configured difficulty")
	}

	fb := goodFeedback(0)
	fb.EstimatedLevel = topics.DifficultyMid
	answerOne(t, state, mcQuestion(), mcQuestion().CorrectAnswer, fb, nil)
	if FinalLevel(state) != topics.DifficultyMid {
		t.Errorf("final level = %q, want the last entry's level", FinalLevel(state))
	}
}

func TestAskedQuestions(t *testing.T) {
	state := newTestState(t)
	answerOne(t, state, mcQuestion(), mcQuestion().CorrectAnswer, goodFeedback(0), nil)
	SetQuestion(state, freeTextQuestion())

	asked := AskedQuestions(state)
	if len(asked) != 2 {
		t.Fatalf("asked length = %d, want 2", len(asked))
	}
	if asked[0] != "What is JSX in React?" {
		t.Errorf("asked[0] = %q", asked[0])
	}
	if asked[1] != "Explain how React reconciliation works." {
		t.Errorf("asked[1] = %q", asked[1])
	}
}

func TestTranscriptFormats(t *testing.T) {
	state := newTestState(t)
	answerOne(t, state, mcQuestion(), mcQuestion().CorrectAnswer, goodFeedback(0), nil)
	answerOne(t, state, freeTextQuestion(), "Diffing the virtual DOM against the previous tree.", goodFeedback(5), nil)

	transcript := TranscriptText(state.History)
	if !strings.Contains(transcript, "Q: What is JSX in React?") {
		t.Errorf("transcript missing question: %q", transcript)
	}
	if !strings.Contains(transcript, "A: Diffing the virtual DOM") {
		t.Errorf("transcript missing answer: %q", transcript)
	}
	if strings.Count(transcript, "\n\n") != 1 {
		t.Errorf("expected entries joined by a blank line, got %q", transcript)
	}

	summary := FeedbackSummaryText(state.History)
	if !strings.Contains(summary, "Question 1: Well reasoned.") {
		t.Errorf("feedback summary = %q", summary)
	}
	if !strings.Contains(summary, "Question 2:") {
		t.Errorf("feedback summary = %q", summary)
	}
}

// TestEndToEnd drives a complete mock interview through the state machine
// using the real mock source and evaluator.
func TestEndToEnd(t *testing.T) {
	src := questions.NewMockSource(rand.New(rand.NewPCG(3, 3)))
	ev := evaluate.NewMockEvaluator(rand.New(rand.NewPCG(4, 4)))
	ctx := context.Background()

	state := NewState(topics.TopicReact, topics.DifficultyJunior)

	// Initializing: fetch the first question.
	q, err := src.NextQuestion(ctx, questions.NextInput{
		Topic: state.Topic, Difficulty: state.Difficulty,
	})
	if err != nil {
		t.Fatalf("first question: %v", err)
	}
	SetQuestion(state, q)

	// First answer: the exact correct string.
	answer := q.CorrectAnswer
	if err := BeginEvaluation(state, answer); err != nil {
		t.Fatalf("BeginEvaluation: %v", err)
	}
	fb, evalErr := ev.Evaluate(ctx, evaluate.EvaluateInput{
		Topic: state.Topic, Difficulty: state.Difficulty,
		Question: q.Text, Answer: answer,
	})
	ApplyFeedback(state, answer, fb, evalErr)

	if got := state.History[0].Feedback.Points; got != PointsPerCorrect {
		t.Errorf("first answer points = %d, want %d", got, PointsPerCorrect)
	}
	if state.Score != PointsPerCorrect {
		t.Errorf("score = %d, want %d", state.Score, PointsPerCorrect)
	}
	if len(state.History) != 1 {
		t.Errorf("history length = %d, want 1", len(state.History))
	}

	// Nine more answers.
	for i := 1; i < InterviewLength; i++ {
		if err := BeginQuestionFetch(state); err != nil {
			t.Fatalf("BeginQuestionFetch %d: %v", i, err)
		}
		q, err = src.NextQuestion(ctx, questions.NextInput{
			Topic: state.Topic, Difficulty: state.Difficulty,
			PreviousQuestions: AskedQuestions(state),
		})
		if err != nil {
			t.Fatalf("question %d: %v", i, err)
		}
		SetQuestion(state, q)

		answer = q.Options[0]
		if err := BeginEvaluation(state, answer); err != nil {
			t.Fatalf("BeginEvaluation %d: %v", i, err)
		}
		fb, evalErr = ev.Evaluate(ctx, evaluate.EvaluateInput{
			Topic: state.Topic, Difficulty: state.Difficulty,
			Question: q.Text, Answer: answer,
		})
		ApplyFeedback(state, answer, fb, evalErr)
	}

	// At the bound only Finish remains.
	if CanAskNext(state) {
		t.Error("next question available past the interview length")
	}

	summary, ok := Finish(state)
	if !ok {
		t.Fatal("expected a summary")
	}
	if summary.MaxScore != InterviewLength*PointsPerCorrect {
		t.Errorf("maxScore = %d, want %d", summary.MaxScore, InterviewLength*PointsPerCorrect)
	}
	if summary.Score < 0 || summary.Score > summary.MaxScore || summary.Score%PointsPerCorrect != 0 {
		t.Errorf("score = %d, want a multiple of %d within [0, %d]",
			summary.Score, PointsPerCorrect, summary.MaxScore)
	}
}
