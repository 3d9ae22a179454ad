package results

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/jortega/prepdeck/internal/recommend"
	"github.com/jortega/prepdeck/internal/store"
	"github.com/jortega/prepdeck/internal/topics"
)

// mockEngine implements recommend.Engine for testing.
type mockEngine struct {
	text string
	err  error

	calls int
	input recommend.RecommendInput
}

func (m *mockEngine) Recommend(_ context.Context, input recommend.RecommendInput) (string, error) {
	m.calls++
	m.input = input
	return m.text, m.err
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testData() Data {
	return Data{
		SessionID:  "test-session",
		Topic:      topics.TopicReact,
		Difficulty: topics.DifficultyMid,
		FinalLevel: topics.DifficultyJunior,
		Score:      10,
		MaxScore:   20,
		Entries: []Entry{
			{
				Question:   "What does useEffect do?",
				Answer:     "Runs side effects after render.",
				Evaluation: "Accurate.",
				Points:     10,
			},
			{
				Question:      "Which hook memoizes a value?",
				Options:       []string{"useEffect", "useMemo", "useRef", "useState"},
				CorrectAnswer: "useMemo",
				Answer:        "useRef",
				Evaluation:    "Mixed up the hooks.",
				Points:        0,
			},
		},
	}
}

func TestResultsScreen_Title(t *testing.T) {
	r := New(testData(), &mockEngine{text: "Study hooks."})
	if r.Title() != "Results" {
		t.Errorf("Title = %q, want %q", r.Title(), "Results")
	}
}

func TestResultsScreen_RecommendationsFetchedOnce(t *testing.T) {
	engine := &mockEngine{text: "Review the rules of hooks."}
	r := New(testData(), engine)

	cmd := r.Init()
	if cmd == nil {
		t.Fatal("expected a recommendation command")
	}
	if !r.recPending {
		t.Error("expected recommendations to be pending")
	}

	msg := cmd()
	rec, ok := msg.(recommendationMsg)
	if !ok {
		t.Fatalf("command returned %T, want recommendationMsg", msg)
	}
	r.Update(rec)

	if engine.calls != 1 {
		t.Errorf("engine calls = %d, want 1", engine.calls)
	}
	if r.recommendations != "Review the rules of hooks." {
		t.Errorf("recommendations = %q, want engine text", r.recommendations)
	}
	if engine.input.Topic != topics.TopicReact {
		t.Errorf("input topic = %q, want %q", engine.input.Topic, topics.TopicReact)
	}
	if engine.input.Transcript == "" {
		t.Error("expected a non-empty transcript")
	}
}

func TestResultsScreen_RecommendationFailure(t *testing.T) {
	r := New(testData(), &mockEngine{err: errors.New("api error")})

	cmd := r.Init()
	if cmd == nil {
		t.Fatal("expected a recommendation command")
	}
	r.Update(cmd())

	if !r.recFailed {
		t.Error("expected recommendation failure to be recorded")
	}
	if r.View(80, 24) == "" {
		t.Error("expected non-empty view after failure")
	}
}

func TestResultsScreen_NilEngine(t *testing.T) {
	r := New(testData(), nil)
	if cmd := r.Init(); cmd != nil {
		t.Error("expected no command without an engine")
	}
	if !r.recFailed {
		t.Error("expected recommendations marked unavailable")
	}
}

func TestResultsScreen_Navigation(t *testing.T) {
	r := New(testData(), nil)
	r.Init()

	if r.selected != 0 {
		t.Fatalf("selected = %d, want 0", r.selected)
	}
	r.Update(keyPress('j'))
	if r.selected != 1 {
		t.Errorf("selected after down = %d, want 1", r.selected)
	}
	r.Update(keyPress('j'))
	if r.selected != 1 {
		t.Errorf("selected past end = %d, want 1", r.selected)
	}
	r.Update(keyPress('k'))
	if r.selected != 0 {
		t.Errorf("selected after up = %d, want 0", r.selected)
	}
}

func TestResultsScreen_View(t *testing.T) {
	r := New(testData(), nil)
	r.Init()
	view := r.View(80, 24)
	if view == "" {
		t.Error("expected non-empty results view")
	}
}

func TestFromTranscript(t *testing.T) {
	rec := &store.TranscriptRecord{
		Key:        store.DefaultTranscriptKey,
		SessionID:  "stored-session",
		Topic:      "JavaScript",
		Difficulty: "Senior",
		Score:      20,
		MaxScore:   30,
		History: []store.TranscriptEntry{
			{Question: "q1", Answer: "a1", EstimatedLevel: "Senior", Points: 10},
			{Question: "q2", Answer: "a2", EstimatedLevel: "Mid", Points: 10},
		},
	}

	data := FromTranscript(rec)
	if data.Topic != topics.TopicJavaScript {
		t.Errorf("topic = %q, want %q", data.Topic, topics.TopicJavaScript)
	}
	if data.Difficulty != topics.DifficultySenior {
		t.Errorf("difficulty = %q, want %q", data.Difficulty, topics.DifficultySenior)
	}
	if data.FinalLevel != topics.DifficultyMid {
		t.Errorf("final level = %q, want %q", data.FinalLevel, topics.DifficultyMid)
	}
	if len(data.Entries) != 2 {
		t.Errorf("entries = %d, want 2", len(data.Entries))
	}
}

func TestFromTranscript_UnknownTopicFallsBack(t *testing.T) {
	rec := &store.TranscriptRecord{
		Topic:      "COBOL",
		Difficulty: "Wizard",
	}

	data := FromTranscript(rec)
	if data.Topic != topics.DefaultTopic {
		t.Errorf("topic = %q, want %q", data.Topic, topics.DefaultTopic)
	}
	if data.Difficulty != topics.DefaultDifficulty {
		t.Errorf("difficulty = %q, want %q", data.Difficulty, topics.DefaultDifficulty)
	}
}

func TestResultsScreen_KeyHints(t *testing.T) {
	r := New(testData(), nil)
	if len(r.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}
}
