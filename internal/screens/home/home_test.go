package home

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/jortega/prepdeck/internal/router"
	"github.com/jortega/prepdeck/internal/screen"
	interviewscreen "github.com/jortega/prepdeck/internal/screens/interview"
	"github.com/jortega/prepdeck/internal/screens/results"
	"github.com/jortega/prepdeck/internal/store"
)

// mockTranscriptRepo implements store.TranscriptRepo for testing.
type mockTranscriptRepo struct {
	records map[string]*store.TranscriptRecord
	loadErr error
}

func (m *mockTranscriptRepo) Save(_ context.Context, rec *store.TranscriptRecord) error {
	m.records[rec.Key] = rec
	return nil
}
func (m *mockTranscriptRepo) Load(_ context.Context, key string) (*store.TranscriptRecord, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.records[key], nil
}
func (m *mockTranscriptRepo) Delete(_ context.Context, key string) error {
	delete(m.records, key)
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func enterKey() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func TestHomeScreen_Title(t *testing.T) {
	h := New(nil, nil, nil, nil, nil)
	if h.Title() != "Home" {
		t.Errorf("Title = %q, want %q", h.Title(), "Home")
	}
}

func TestHomeScreen_View(t *testing.T) {
	h := New(nil, nil, nil, nil, nil)
	if h.View(80, 24) == "" {
		t.Error("expected non-empty home view")
	}
}

func TestHomeScreen_StartInterviewFlow(t *testing.T) {
	h := New(nil, nil, nil, nil, nil)

	// Start Interview opens the topic menu.
	var scr screen.Screen = h
	scr, _ = scr.Update(enterKey())
	hs := scr.(*HomeScreen)
	if hs.step != stepTopic {
		t.Fatalf("step = %v, want stepTopic", hs.step)
	}

	// Pick the first topic, which opens the difficulty menu.
	scr, _ = hs.Update(enterKey())
	hs = scr.(*HomeScreen)
	if hs.step != stepDifficulty {
		t.Fatalf("step = %v, want stepDifficulty", hs.step)
	}

	// Pick the first difficulty, which starts the interview.
	_, cmd := hs.Update(enterKey())
	if cmd == nil {
		t.Fatal("expected a command after difficulty selection")
	}
	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("command returned %T, want PushScreenMsg", msg)
	}
	if _, ok := push.Screen.(*interviewscreen.InterviewScreen); !ok {
		t.Errorf("pushed screen is %T, want *interviewscreen.InterviewScreen", push.Screen)
	}
}

func TestHomeScreen_BackReturnsToMain(t *testing.T) {
	h := New(nil, nil, nil, nil, nil)

	var scr screen.Screen = h
	scr, _ = scr.Update(enterKey())
	hs := scr.(*HomeScreen)

	// The topic menu ends with a Back item.
	for range hs.menu.Items {
		scr, _ = hs.Update(keyPress('j'))
		hs = scr.(*HomeScreen)
	}
	scr, _ = hs.Update(enterKey())
	hs = scr.(*HomeScreen)

	if hs.step != stepMain {
		t.Errorf("step = %v, want stepMain", hs.step)
	}
}

func TestHomeScreen_LastResultsDisabledWithoutHistory(t *testing.T) {
	h := New(nil, nil, nil, nil, &mockTranscriptRepo{records: map[string]*store.TranscriptRecord{}})

	// Moving down from Start Interview skips the disabled item.
	var scr screen.Screen = h
	scr, _ = scr.Update(keyPress('j'))
	hs := scr.(*HomeScreen)
	if hs.menu.Items[hs.menu.Selected].Label != "Exit" {
		t.Errorf("selected = %q, want Exit", hs.menu.Items[hs.menu.Selected].Label)
	}
}

func TestHomeScreen_CorruptTranscriptShowsWarning(t *testing.T) {
	transcripts := &mockTranscriptRepo{loadErr: errors.New("invalid character 'x'")}
	h := New(nil, nil, nil, nil, transcripts)

	if h.notice == "" {
		t.Error("expected a warning when the last transcript cannot be loaded")
	}
	if h.lastRecord != nil {
		t.Error("expected no last record on load failure")
	}
	if !strings.Contains(h.View(80, 24), "Could not load") {
		t.Error("expected the warning to be rendered")
	}
}

func TestHomeScreen_LastResultsOpensStoredTranscript(t *testing.T) {
	transcripts := &mockTranscriptRepo{records: map[string]*store.TranscriptRecord{
		store.DefaultTranscriptKey: {
			Key:        store.DefaultTranscriptKey,
			SessionID:  "stored",
			Topic:      "React",
			Difficulty: "Junior",
			Score:      10,
			MaxScore:   10,
			History:    []store.TranscriptEntry{{Question: "q", Answer: "a", Points: 10}},
		},
	}}
	h := New(nil, nil, nil, nil, transcripts)

	if h.lastRecord == nil {
		t.Fatal("expected the stored transcript to be loaded")
	}

	// Move down to Last Results and open it.
	var scr screen.Screen = h
	scr, _ = scr.Update(keyPress('j'))
	hs := scr.(*HomeScreen)
	_, cmd := hs.Update(enterKey())
	if cmd == nil {
		t.Fatal("expected a command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := push.Screen.(*results.ResultsScreen); !ok {
		t.Errorf("pushed screen is %T, want *results.ResultsScreen", push.Screen)
	}
}
