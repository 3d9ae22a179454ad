package interview

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/jortega/prepdeck/internal/evaluate"
	sess "github.com/jortega/prepdeck/internal/interview"
	"github.com/jortega/prepdeck/internal/questions"
	"github.com/jortega/prepdeck/internal/recommend"
	"github.com/jortega/prepdeck/internal/router"
	"github.com/jortega/prepdeck/internal/screen"
	"github.com/jortega/prepdeck/internal/screens/results"
	"github.com/jortega/prepdeck/internal/store"
	"github.com/jortega/prepdeck/internal/topics"
	"github.com/jortega/prepdeck/internal/ui/components"
	"github.com/jortega/prepdeck/internal/ui/layout"
)

// InterviewScreen runs one interview session from first question to finish.
type InterviewScreen struct {
	state       *sess.State
	source      questions.Source
	evaluator   evaluate.Evaluator
	recommender recommend.Engine
	eventRepo   store.EventRepo
	transcripts store.TranscriptRepo

	input      components.TextInput
	mcSelected int
	errMsg     string // fatal, any key pops back home
	notice     string // transient, shown inline
}

var _ screen.Screen = (*InterviewScreen)(nil)
var _ screen.KeyHintProvider = (*InterviewScreen)(nil)
var _ screen.StatusProvider = (*InterviewScreen)(nil)

// New creates an interview screen. A Random topic is resolved to a concrete
// one before the session starts; everything downstream sees the resolved
// topic only.
func New(
	source questions.Source,
	evaluator evaluate.Evaluator,
	recommender recommend.Engine,
	eventRepo store.EventRepo,
	transcripts store.TranscriptRepo,
	topic topics.Topic,
	difficulty topics.Difficulty,
) *InterviewScreen {
	resolved := topic.Resolve(nil)
	return &InterviewScreen{
		state:       sess.NewState(resolved, difficulty),
		source:      source,
		evaluator:   evaluator,
		recommender: recommender,
		eventRepo:   eventRepo,
		transcripts: transcripts,
		input:       newAnswerInput(),
	}
}

func newAnswerInput() components.TextInput {
	return components.NewTextInput("Type your answer...", false, 400)
}

func (s *InterviewScreen) Init() tea.Cmd {
	if s.eventRepo != nil {
		_ = s.eventRepo.AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID:  s.state.SessionID,
			Topic:      string(s.state.Topic),
			Difficulty: string(s.state.Difficulty),
			Action:     store.ActionStart,
		})
	}
	return tea.Batch(s.fetchQuestion(true), s.input.Init())
}

func (s *InterviewScreen) Title() string {
	return "Interview"
}

func (s *InterviewScreen) HeaderStatus() string {
	return fmt.Sprintf("%s / %s   Score %d", s.state.Topic, s.state.Difficulty, s.state.Score)
}

func (s *InterviewScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}
	switch s.state.Phase {
	case sess.PhaseShowingFeedback:
		hints := []layout.KeyHint{}
		if sess.CanAskNext(s.state) {
			hints = append(hints, layout.KeyHint{Key: "N", Description: "Next question"})
		}
		return append(hints,
			layout.KeyHint{Key: "F", Description: "Finish interview"},
			layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
		)
	case sess.PhaseAwaitingAnswer:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Abandon"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
}

func (s *InterviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionReadyMsg:
		return s.handleQuestionReady(msg)

	case feedbackMsg:
		return s.handleFeedback(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward everything else to the text input while typing.
	if s.isTypingFreeText() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *InterviewScreen) isTypingFreeText() bool {
	return s.state.Phase == sess.PhaseAwaitingAnswer &&
		s.state.CurrentQuestion != nil &&
		!s.state.CurrentQuestion.IsMultipleChoice()
}

// fetchQuestion requests the next question asynchronously. The first fetch
// is fatal on failure; later ones leave the session intact.
func (s *InterviewScreen) fetchQuestion(first bool) tea.Cmd {
	state := s.state
	source := s.source
	return func() tea.Msg {
		q, err := source.NextQuestion(context.Background(), questions.NextInput{
			Topic:             state.Topic,
			Difficulty:        state.Difficulty,
			PreviousQuestions: sess.AskedQuestions(state),
		})
		if err != nil {
			return questionReadyMsg{First: first, Err: err}
		}
		return questionReadyMsg{Question: q, First: first}
	}
}

func (s *InterviewScreen) handleQuestionReady(msg questionReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		if msg.First {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		sess.FailQuestionFetch(s.state)
		s.notice = "Could not fetch the next question. Press N to retry or F to finish."
		return s, nil
	}

	s.notice = ""
	sess.SetQuestion(s.state, msg.Question)
	s.mcSelected = 0
	if !msg.Question.IsMultipleChoice() {
		s.input = newAnswerInput()
		return s, s.input.Init()
	}
	return s, nil
}

// evaluateAnswer submits the current answer for evaluation asynchronously.
func (s *InterviewScreen) evaluateAnswer(answer string) tea.Cmd {
	state := s.state
	evaluator := s.evaluator
	question := state.CurrentQuestion.Text
	return func() tea.Msg {
		fb, err := evaluator.Evaluate(context.Background(), evaluate.EvaluateInput{
			Topic:      state.Topic,
			Difficulty: state.Difficulty,
			Question:   question,
			Answer:     answer,
		})
		return feedbackMsg{Answer: answer, Feedback: fb, Err: err}
	}
}

func (s *InterviewScreen) handleFeedback(msg feedbackMsg) (screen.Screen, tea.Cmd) {
	q := s.state.CurrentQuestion
	sess.ApplyFeedback(s.state, msg.Answer, msg.Feedback, msg.Err)

	if s.eventRepo != nil && q != nil && len(s.state.History) > 0 {
		entry := s.state.History[len(s.state.History)-1]
		_ = s.eventRepo.AppendAnswerEvent(context.Background(), store.AnswerEventData{
			SessionID:       s.state.SessionID,
			QuestionText:    q.Text,
			Options:         q.Options,
			CorrectAnswer:   q.CorrectAnswer,
			SubmittedAnswer: msg.Answer,
			Correct:         entry.Feedback.Points == sess.PointsPerCorrect,
			Points:          entry.Feedback.Points,
			EstimatedLevel:  string(entry.Feedback.EstimatedLevel),
		})
	}

	return s, nil
}

func (s *InterviewScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch s.state.Phase {
	case sess.PhaseAwaitingAnswer:
		return s.handleAnswerKey(msg)

	case sess.PhaseShowingFeedback:
		switch key {
		case "n", "N":
			// Inert once the question limit is reached.
			if !sess.CanAskNext(s.state) {
				return s, nil
			}
			return s.nextQuestion()
		case "enter":
			if !sess.CanAskNext(s.state) {
				return s.finish()
			}
			return s.nextQuestion()
		case "f", "F":
			return s.finish()
		}
	}

	return s, nil
}

func (s *InterviewScreen) nextQuestion() (screen.Screen, tea.Cmd) {
	if err := sess.BeginQuestionFetch(s.state); err != nil {
		if errors.Is(err, sess.ErrBusy) {
			return s, nil
		}
		return s.finish()
	}
	return s, s.fetchQuestion(false)
}

func (s *InterviewScreen) handleAnswerKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	q := s.state.CurrentQuestion
	if q == nil {
		return s, nil
	}

	if key == "enter" {
		return s.submitAnswer()
	}

	if q.IsMultipleChoice() {
		switch key {
		case "up", "k":
			if s.mcSelected > 0 {
				s.mcSelected--
			}
		case "down", "j":
			if s.mcSelected < len(q.Options)-1 {
				s.mcSelected++
			}
		case "1", "2", "3", "4":
			idx := int(key[0] - '1')
			if idx < len(q.Options) {
				s.mcSelected = idx
				return s.submitAnswer()
			}
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submitAnswer validates and submits the current answer.
func (s *InterviewScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	q := s.state.CurrentQuestion
	if q == nil {
		return s, nil
	}

	var answer string
	if q.IsMultipleChoice() {
		if s.mcSelected < 0 || s.mcSelected >= len(q.Options) {
			return s, nil
		}
		answer = q.Options[s.mcSelected]
	} else {
		answer = s.input.Value()
	}

	if err := sess.BeginEvaluation(s.state, answer); err != nil {
		if errors.Is(err, sess.ErrAnswerTooShort) {
			s.notice = fmt.Sprintf("Please write at least %d characters.", sess.MinAnswerLength)
		}
		return s, nil
	}

	s.notice = ""
	return s, s.evaluateAnswer(answer)
}

// finish ends the session, persists the transcript, and hands off to the
// results screen. An empty history means nothing to show or persist.
func (s *InterviewScreen) finish() (screen.Screen, tea.Cmd) {
	startTime := s.state.StartTime
	history := s.state.History

	summary, ok := sess.Finish(s.state)
	if !ok {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	ctx := context.Background()
	if s.transcripts != nil {
		rec := transcriptRecord(summary, history)
		rec.Key = store.SessionKey(summary.SessionID)
		_ = s.transcripts.Save(ctx, rec)

		latest := *rec
		latest.Key = store.DefaultTranscriptKey
		_ = s.transcripts.Save(ctx, &latest)
	}

	if s.eventRepo != nil {
		_ = s.eventRepo.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:         summary.SessionID,
			Topic:             string(summary.Topic),
			Difficulty:        string(summary.Difficulty),
			Action:            store.ActionFinish,
			QuestionsAnswered: summary.Answered,
			Score:             summary.Score,
			MaxScore:          summary.MaxScore,
			DurationSecs:      int(time.Since(startTime).Seconds()),
		})
	}

	data := results.FromSession(summary, history)
	recommender := s.recommender
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: results.New(data, recommender)}
	}
}

// transcriptRecord converts a finished session into its persisted form.
func transcriptRecord(summary *sess.Summary, history []sess.HistoryEntry) *store.TranscriptRecord {
	entries := make([]store.TranscriptEntry, 0, len(history))
	for _, e := range history {
		entries = append(entries, store.TranscriptEntry{
			Question:            e.Question.Text,
			Options:             e.Question.Options,
			CorrectAnswer:       e.Question.CorrectAnswer,
			Answer:              e.Answer,
			Evaluation:          e.Feedback.Evaluation,
			Strengths:           e.Feedback.Strengths,
			AreasForImprovement: e.Feedback.AreasForImprovement,
			EstimatedLevel:      string(e.Feedback.EstimatedLevel),
			Points:              e.Feedback.Points,
		})
	}
	return &store.TranscriptRecord{
		SessionID:  summary.SessionID,
		Topic:      string(summary.Topic),
		Difficulty: string(summary.Difficulty),
		History:    entries,
		Score:      summary.Score,
		MaxScore:   summary.MaxScore,
	}
}
