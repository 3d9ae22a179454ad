package questions

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/jortega/prepdeck/internal/topics"
)

func fixedRand(t *testing.T) *rand.Rand {
	t.Helper()
	return rand.New(rand.NewPCG(7, 13))
}

func TestMockSource_ReactJunior(t *testing.T) {
	src := NewMockSource(fixedRand(t))

	want := map[string]bool{
		"What is JSX in React?":                      true,
		"What is the purpose of the useEffect hook?": true,
	}

	for i := 0; i < 100; i++ {
		q, err := src.NextQuestion(context.Background(), NextInput{
			Topic:      topics.TopicReact,
			Difficulty: topics.DifficultyJunior,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !want[q.Text] {
			t.Fatalf("unexpected question %q", q.Text)
		}
		if len(q.Options) != 4 {
			t.Errorf("expected 4 options, got %d", len(q.Options))
		}
	}
}

func TestMockSource_JavaScriptSenior(t *testing.T) {
	src := NewMockSource(fixedRand(t))

	for i := 0; i < 20; i++ {
		q, err := src.NextQuestion(context.Background(), NextInput{
			Topic:      topics.TopicJavaScript,
			Difficulty: topics.DifficultySenior,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Text != "What is the event loop in JavaScript?" {
			t.Fatalf("expected the event loop question, got %q", q.Text)
		}
	}
}

func TestMockSource_UnknownTopicFallsBack(t *testing.T) {
	src := NewMockSource(fixedRand(t))

	// Testing is not catalogued; it falls back to the default topic's
	// table at the requested difficulty.
	q, err := src.NextQuestion(context.Background(), NextInput{
		Topic:      topics.TopicTesting,
		Difficulty: topics.DifficultyJunior,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reactJunior := map[string]bool{
		"What is JSX in React?":                      true,
		"What is the purpose of the useEffect hook?": true,
	}
	if !reactJunior[q.Text] {
		t.Errorf("expected a default-topic Junior question, got %q", q.Text)
	}
}

func TestMockSource_AnswerAmongOptions(t *testing.T) {
	src := NewMockSource(fixedRand(t))

	for _, topic := range []topics.Topic{topics.TopicReact, topics.TopicJavaScript} {
		for _, diff := range topics.AllDifficulties() {
			q, err := src.NextQuestion(context.Background(), NextInput{Topic: topic, Difficulty: diff})
			if err != nil {
				t.Fatalf("(%s, %s): unexpected error: %v", topic, diff, err)
			}
			found := false
			for _, opt := range q.Options {
				if opt == q.CorrectAnswer {
					found = true
				}
			}
			if !found {
				t.Errorf("(%s, %s): answer %q not among options", topic, diff, q.CorrectAnswer)
			}
		}
	}
}

func TestMockSource_EmptyCell(t *testing.T) {
	// The bank has no entries for an invented difficulty, so the lookup
	// must surface ErrNoQuestions rather than panic.
	src := NewMockSource(fixedRand(t))

	_, err := src.NextQuestion(context.Background(), NextInput{
		Topic:      topics.TopicReact,
		Difficulty: topics.Difficulty("Principal"),
	})
	if !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("expected ErrNoQuestions, got %v", err)
	}
}

func TestMockSource_NoDedup(t *testing.T) {
	// The mock ignores PreviousQuestions: even with the full Junior bank
	// listed as already asked, it still returns one of those questions.
	src := NewMockSource(fixedRand(t))

	q, err := src.NextQuestion(context.Background(), NextInput{
		Topic:      topics.TopicReact,
		Difficulty: topics.DifficultyJunior,
		PreviousQuestions: []string{
			"What is JSX in React?",
			"What is the purpose of the useEffect hook?",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Text == "" {
		t.Error("expected a question despite exhausted bank")
	}
}
