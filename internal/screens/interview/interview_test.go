package interview

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/jortega/prepdeck/internal/evaluate"
	sess "github.com/jortega/prepdeck/internal/interview"
	"github.com/jortega/prepdeck/internal/questions"
	"github.com/jortega/prepdeck/internal/recommend"
	"github.com/jortega/prepdeck/internal/router"
	"github.com/jortega/prepdeck/internal/screen"
	"github.com/jortega/prepdeck/internal/store"
	"github.com/jortega/prepdeck/internal/topics"
)

// mockSource implements questions.Source for testing.
type mockSource struct {
	question *questions.Question
	err      error
}

func (m *mockSource) NextQuestion(_ context.Context, _ questions.NextInput) (*questions.Question, error) {
	if m.err != nil {
		return nil, m.err
	}
	q := *m.question
	return &q, nil
}

// mockEvaluator implements evaluate.Evaluator for testing.
type mockEvaluator struct {
	feedback *evaluate.Feedback
	err      error
}

func (m *mockEvaluator) Evaluate(_ context.Context, _ evaluate.EvaluateInput) (*evaluate.Feedback, error) {
	if m.err != nil {
		return nil, m.err
	}
	fb := *m.feedback
	return &fb, nil
}

// mockEngine implements recommend.Engine for testing.
type mockEngine struct{}

func (m *mockEngine) Recommend(_ context.Context, _ recommend.RecommendInput) (string, error) {
	return "Practice more.", nil
}

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	sessionEvents []store.SessionEventData
	answerEvents  []store.AnswerEventData
}

func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}
func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	m.answerEvents = append(m.answerEvents, data)
	return nil
}
func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.PurposeUsage, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByModel(_ context.Context) ([]store.ModelUsage, error) {
	return nil, nil
}
func (m *mockEventRepo) QuerySessionSummaries(_ context.Context, _ store.QueryOpts) ([]store.SessionSummary, error) {
	return nil, nil
}
func (m *mockEventRepo) SessionAccuracy(_ context.Context, _ string) (float64, error) {
	return 0, nil
}

// mockTranscriptRepo implements store.TranscriptRepo for testing.
type mockTranscriptRepo struct {
	saved map[string]*store.TranscriptRecord
}

func newMockTranscriptRepo() *mockTranscriptRepo {
	return &mockTranscriptRepo{saved: make(map[string]*store.TranscriptRecord)}
}

func (m *mockTranscriptRepo) Save(_ context.Context, rec *store.TranscriptRecord) error {
	cp := *rec
	m.saved[rec.Key] = &cp
	return nil
}
func (m *mockTranscriptRepo) Load(_ context.Context, key string) (*store.TranscriptRecord, error) {
	return m.saved[key], nil
}
func (m *mockTranscriptRepo) Delete(_ context.Context, key string) error {
	delete(m.saved, key)
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func freeTextQuestion() *questions.Question {
	return &questions.Question{Text: "Explain how closures work in JavaScript."}
}

func multipleChoiceQuestion() *questions.Question {
	return &questions.Question{
		Text:          "Which hook memoizes a computed value?",
		Options:       []string{"useEffect", "useMemo", "useRef", "useState"},
		CorrectAnswer: "useMemo",
	}
}

func goodFeedback() *evaluate.Feedback {
	return &evaluate.Feedback{
		Evaluation:          "Solid answer.",
		Strengths:           "Clear explanation.",
		AreasForImprovement: "Mention scope chains.",
		EstimatedLevel:      topics.DifficultyMid,
		Points:              10,
	}
}

func testInterviewScreen(q *questions.Question) (*InterviewScreen, *mockEventRepo, *mockTranscriptRepo) {
	eventRepo := &mockEventRepo{}
	transcripts := newMockTranscriptRepo()
	s := New(
		&mockSource{question: q},
		&mockEvaluator{feedback: goodFeedback()},
		&mockEngine{},
		eventRepo,
		transcripts,
		topics.TopicJavaScript,
		topics.DifficultyMid,
	)
	return s, eventRepo, transcripts
}

func TestInterviewScreen_Title(t *testing.T) {
	s, _, _ := testInterviewScreen(freeTextQuestion())
	if s.Title() != "Interview" {
		t.Errorf("Title = %q, want %q", s.Title(), "Interview")
	}
}

func TestInterviewScreen_RandomTopicResolved(t *testing.T) {
	r := New(&mockSource{question: freeTextQuestion()}, &mockEvaluator{feedback: goodFeedback()},
		&mockEngine{}, nil, nil, topics.TopicRandom, topics.DifficultyJunior)
	if r.state.Topic == topics.TopicRandom {
		t.Error("expected Random topic to resolve to a concrete topic")
	}
}

func TestInterviewScreen_InitRecordsStartEvent(t *testing.T) {
	s, eventRepo, _ := testInterviewScreen(freeTextQuestion())

	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected an init command")
	}
	if len(eventRepo.sessionEvents) != 1 {
		t.Fatalf("session events = %d, want 1", len(eventRepo.sessionEvents))
	}
	if eventRepo.sessionEvents[0].Action != store.ActionStart {
		t.Errorf("action = %q, want %q", eventRepo.sessionEvents[0].Action, store.ActionStart)
	}
}

func TestInterviewScreen_FirstQuestionArrives(t *testing.T) {
	s, _, _ := testInterviewScreen(freeTextQuestion())

	var scr screen.Screen = s
	scr, _ = scr.Update(questionReadyMsg{Question: freeTextQuestion(), First: true})
	ss := scr.(*InterviewScreen)

	if ss.state.Phase != sess.PhaseAwaitingAnswer {
		t.Errorf("phase = %v, want PhaseAwaitingAnswer", ss.state.Phase)
	}
	if ss.state.CurrentQuestion == nil {
		t.Error("expected a current question")
	}
}

func TestInterviewScreen_FirstQuestionError(t *testing.T) {
	s, _, _ := testInterviewScreen(freeTextQuestion())

	var scr screen.Screen = s
	scr, _ = scr.Update(questionReadyMsg{First: true, Err: errors.New("provider down")})
	ss := scr.(*InterviewScreen)

	if ss.errMsg == "" {
		t.Fatal("expected a fatal error message")
	}

	// Any key pops back home.
	_, cmd := ss.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected a command after key press in error state")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg after fatal error")
	}
}

func TestInterviewScreen_LaterQuestionErrorKeepsHistory(t *testing.T) {
	s, _, _ := testInterviewScreen(freeTextQuestion())
	sess.SetQuestion(s.state, freeTextQuestion())
	sess.ApplyFeedback(s.state, "a reasonably long answer", goodFeedback(), nil)

	var scr screen.Screen = s
	scr, _ = scr.Update(questionReadyMsg{Err: errors.New("timeout")})
	ss := scr.(*InterviewScreen)

	if ss.errMsg != "" {
		t.Error("mid-session fetch failure should not be fatal")
	}
	if ss.notice == "" {
		t.Error("expected a retry notice")
	}
	if len(ss.state.History) != 1 {
		t.Errorf("history = %d, want 1", len(ss.state.History))
	}
	if ss.state.Phase != sess.PhaseShowingFeedback {
		t.Errorf("phase = %v, want PhaseShowingFeedback", ss.state.Phase)
	}
}

func TestInterviewScreen_ShortAnswerRejected(t *testing.T) {
	s, _, _ := testInterviewScreen(freeTextQuestion())
	sess.SetQuestion(s.state, freeTextQuestion())
	s.input.Model.SetValue("short")

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*InterviewScreen)

	if cmd != nil {
		t.Error("expected no evaluation command for a short answer")
	}
	if ss.notice == "" {
		t.Error("expected a minimum-length notice")
	}
	if ss.state.Phase != sess.PhaseAwaitingAnswer {
		t.Errorf("phase = %v, want PhaseAwaitingAnswer", ss.state.Phase)
	}
}

func TestInterviewScreen_FreeTextSubmit(t *testing.T) {
	s, eventRepo, _ := testInterviewScreen(freeTextQuestion())
	sess.SetQuestion(s.state, freeTextQuestion())
	s.input.Model.SetValue("Closures capture their lexical environment.")

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*InterviewScreen)

	if cmd == nil {
		t.Fatal("expected an evaluation command")
	}
	if ss.state.Phase != sess.PhaseEvaluating {
		t.Errorf("phase = %v, want PhaseEvaluating", ss.state.Phase)
	}

	// Evaluation completes.
	msg := cmd()
	fb, ok := msg.(feedbackMsg)
	if !ok {
		t.Fatalf("command returned %T, want feedbackMsg", msg)
	}
	scr, _ = ss.Update(fb)
	ss = scr.(*InterviewScreen)

	if ss.state.Phase != sess.PhaseShowingFeedback {
		t.Errorf("phase = %v, want PhaseShowingFeedback", ss.state.Phase)
	}
	if ss.state.Score != 10 {
		t.Errorf("score = %d, want 10", ss.state.Score)
	}
	if len(eventRepo.answerEvents) != 1 {
		t.Fatalf("answer events = %d, want 1", len(eventRepo.answerEvents))
	}
	if !eventRepo.answerEvents[0].Correct {
		t.Error("expected answer event marked correct")
	}
}

func TestInterviewScreen_MultipleChoiceLocalGrading(t *testing.T) {
	s, _, _ := testInterviewScreen(multipleChoiceQuestion())
	sess.SetQuestion(s.state, multipleChoiceQuestion())

	// Press 2 to pick "useMemo".
	var scr screen.Screen = s
	scr, cmd := scr.Update(keyPress('2'))
	ss := scr.(*InterviewScreen)
	if cmd == nil {
		t.Fatal("expected an evaluation command after choice")
	}

	// The evaluator scores it zero; local grading overrides.
	scr, _ = ss.Update(feedbackMsg{
		Answer:   "useMemo",
		Feedback: &evaluate.Feedback{Evaluation: "ok", EstimatedLevel: topics.DifficultyMid, Points: 0},
	})
	ss = scr.(*InterviewScreen)

	if ss.state.Score != sess.PointsPerCorrect {
		t.Errorf("score = %d, want %d", ss.state.Score, sess.PointsPerCorrect)
	}
}

func TestInterviewScreen_MultipleChoiceWrongAnswer(t *testing.T) {
	s, eventRepo, _ := testInterviewScreen(multipleChoiceQuestion())
	sess.SetQuestion(s.state, multipleChoiceQuestion())

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('1'))
	ss := scr.(*InterviewScreen)

	// The evaluator awards points anyway; local grading overrides to zero.
	scr, _ = ss.Update(feedbackMsg{
		Answer:   "useEffect",
		Feedback: &evaluate.Feedback{Evaluation: "ok", EstimatedLevel: topics.DifficultyMid, Points: 10},
	})
	ss = scr.(*InterviewScreen)

	if ss.state.Score != 0 {
		t.Errorf("score = %d, want 0", ss.state.Score)
	}
	if len(eventRepo.answerEvents) != 1 {
		t.Fatalf("answer events = %d, want 1", len(eventRepo.answerEvents))
	}
	if eventRepo.answerEvents[0].Correct {
		t.Error("expected answer event marked incorrect")
	}
}

func TestInterviewScreen_EvaluatorFailureFallsBack(t *testing.T) {
	s, _, _ := testInterviewScreen(freeTextQuestion())
	sess.SetQuestion(s.state, freeTextQuestion())

	var scr screen.Screen = s
	scr, _ = scr.Update(feedbackMsg{Answer: "a long enough answer here", Err: errors.New("api error")})
	ss := scr.(*InterviewScreen)

	if ss.state.Phase != sess.PhaseShowingFeedback {
		t.Errorf("phase = %v, want PhaseShowingFeedback", ss.state.Phase)
	}
	if len(ss.state.History) != 1 {
		t.Fatalf("history = %d, want 1", len(ss.state.History))
	}
	if ss.state.History[0].Feedback.Evaluation == "" {
		t.Error("expected fallback feedback text")
	}
}

func TestInterviewScreen_NextQuestionFromFeedback(t *testing.T) {
	s, _, _ := testInterviewScreen(freeTextQuestion())
	sess.SetQuestion(s.state, freeTextQuestion())
	sess.ApplyFeedback(s.state, "a reasonably long answer", goodFeedback(), nil)

	var scr screen.Screen = s
	scr, cmd := scr.Update(keyPress('n'))
	ss := scr.(*InterviewScreen)

	if cmd == nil {
		t.Fatal("expected a fetch command")
	}
	if !ss.state.Busy {
		t.Error("expected the session to be busy while fetching")
	}

	// A second press while busy is ignored.
	_, cmd = ss.Update(keyPress('n'))
	if cmd != nil {
		t.Error("expected no command while a fetch is in flight")
	}
}

func TestInterviewScreen_NextUnavailableAtQuestionLimit(t *testing.T) {
	s, _, _ := testInterviewScreen(freeTextQuestion())
	for range sess.InterviewLength {
		sess.SetQuestion(s.state, freeTextQuestion())
		sess.ApplyFeedback(s.state, "a reasonably long answer", goodFeedback(), nil)
	}

	// N does nothing once the limit is reached.
	var scr screen.Screen = s
	scr, cmd := scr.Update(keyPress('n'))
	ss := scr.(*InterviewScreen)
	if cmd != nil {
		t.Error("expected no command for N at the question limit")
	}
	if ss.state.Phase != sess.PhaseShowingFeedback {
		t.Errorf("phase = %v, want PhaseShowingFeedback", ss.state.Phase)
	}
	if len(ss.state.History) != sess.InterviewLength {
		t.Errorf("history = %d, want %d", len(ss.state.History), sess.InterviewLength)
	}

	// Enter still finishes.
	_, cmd = ss.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a finish command on Enter")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg handing off to results")
	}
}

func TestInterviewScreen_FinishPersistsTranscript(t *testing.T) {
	s, eventRepo, transcripts := testInterviewScreen(freeTextQuestion())
	sess.SetQuestion(s.state, freeTextQuestion())
	sess.ApplyFeedback(s.state, "a reasonably long answer", goodFeedback(), nil)

	var scr screen.Screen = s
	scr, cmd := scr.Update(keyPress('f'))
	if cmd == nil {
		t.Fatal("expected a command after finish")
	}
	_ = scr

	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg handing off to results")
	}

	if transcripts.saved[store.DefaultTranscriptKey] == nil {
		t.Error("expected transcript under the default key")
	}
	sessionKey := store.SessionKey(s.state.SessionID)
	if transcripts.saved[sessionKey] == nil {
		t.Error("expected transcript under the per-session key")
	}

	var finish *store.SessionEventData
	for i := range eventRepo.sessionEvents {
		if eventRepo.sessionEvents[i].Action == store.ActionFinish {
			finish = &eventRepo.sessionEvents[i]
		}
	}
	if finish == nil {
		t.Fatal("expected a finish event")
	}
	if finish.Score != 10 || finish.MaxScore != 10 {
		t.Errorf("finish score = %d/%d, want 10/10", finish.Score, finish.MaxScore)
	}
}

func TestInterviewScreen_FinishEmptyHistoryPops(t *testing.T) {
	s, _, transcripts := testInterviewScreen(freeTextQuestion())

	_, cmd := s.finish()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg for an empty interview")
	}
	if len(transcripts.saved) != 0 {
		t.Errorf("transcripts saved = %d, want 0", len(transcripts.saved))
	}
}

func TestInterviewScreen_View(t *testing.T) {
	s, _, _ := testInterviewScreen(freeTextQuestion())

	if s.View(80, 24) == "" {
		t.Error("expected non-empty view while initializing")
	}

	sess.SetQuestion(s.state, freeTextQuestion())
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view with a question")
	}

	sess.ApplyFeedback(s.state, "a reasonably long answer", goodFeedback(), nil)
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view with feedback")
	}
}

func TestInterviewScreen_KeyHints(t *testing.T) {
	s, _, _ := testInterviewScreen(freeTextQuestion())
	sess.SetQuestion(s.state, freeTextQuestion())

	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints while awaiting an answer")
	}

	sess.ApplyFeedback(s.state, "a reasonably long answer", goodFeedback(), nil)
	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints while showing feedback")
	}
}
