package questions

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/jortega/prepdeck/internal/llm"
	"github.com/jortega/prepdeck/internal/topics"
)

func validQuestionJSON() json.RawMessage {
	return json.RawMessage(`{
		"question": "What is the virtual DOM?",
		"options": [
			"An in-memory representation of the real DOM",
			"A browser debugging tool",
			"A CSS rendering engine",
			"A server-side template"
		],
		"answer": "An in-memory representation of the real DOM"
	}`)
}

func testInput() NextInput {
	return NextInput{
		Topic:      topics.TopicReact,
		Difficulty: topics.DifficultyMid,
	}
}

func TestNextQuestion(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	src := New(mock, DefaultConfig())

	q, err := src.NextQuestion(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Text != "What is the virtual DOM?" {
		t.Errorf("unexpected text: %q", q.Text)
	}
	if len(q.Options) != 4 {
		t.Errorf("expected 4 options, got %d", len(q.Options))
	}
	if q.CorrectAnswer != "An in-memory representation of the real DOM" {
		t.Errorf("unexpected answer: %q", q.CorrectAnswer)
	}
	if !q.IsMultipleChoice() {
		t.Error("expected multiple-choice question")
	}
}

func TestNextQuestion_ValidationFailure(t *testing.T) {
	raw := json.RawMessage(`{
		"question": "What is the virtual DOM?",
		"options": ["a", "b", "c", "d"],
		"answer": "not among the options"
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	src := New(mock, DefaultConfig())

	_, err := src.NextQuestion(context.Background(), testInput())
	if err == nil {
		t.Fatal("expected validation error")
	}
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if valErr.Validator != "structural" {
		t.Errorf("expected structural validator, got %q", valErr.Validator)
	}
}

func TestNextQuestion_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("API error")})
	src := New(mock, DefaultConfig())

	_, err := src.NextQuestion(context.Background(), testInput())
	if err == nil {
		t.Fatal("expected error from provider")
	}
	if !strings.Contains(err.Error(), "LLM generation failed") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestNextQuestion_PreviousQuestionsInPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	src := New(mock, DefaultConfig())

	previous := []string{"What is JSX in React?", "What is the purpose of the useEffect hook?"}
	input := testInput()
	input.PreviousQuestions = previous

	_, err := src.NextQuestion(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	userMsg := mock.Calls[0].Messages[0].Content
	for _, p := range previous {
		if !strings.Contains(userMsg, p) {
			t.Errorf("expected user message to contain %q", p)
		}
	}
}

func TestNextQuestion_TopicAndDifficultyInPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	src := New(mock, DefaultConfig())

	_, err := src.NextQuestion(context.Background(), NextInput{
		Topic:      topics.TopicJavaScript,
		Difficulty: topics.DifficultySenior,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	userMsg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(userMsg, "JavaScript") {
		t.Errorf("expected user message to contain the topic, got %q", userMsg)
	}
	if !strings.Contains(userMsg, "Senior") {
		t.Errorf("expected user message to contain the difficulty, got %q", userMsg)
	}
}

func TestNextQuestion_ConfigOverrides(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	cfg := DefaultConfig()
	cfg.MaxTokens = 256
	cfg.Temperature = 0.5
	src := New(mock, cfg)

	_, err := src.NextQuestion(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.Calls[0].MaxTokens != 256 {
		t.Errorf("expected MaxTokens 256, got %d", mock.Calls[0].MaxTokens)
	}
	if mock.Calls[0].Temperature != 0.5 {
		t.Errorf("expected Temperature 0.5, got %f", mock.Calls[0].Temperature)
	}
}

func TestBuildDedup_Limit(t *testing.T) {
	previous := []string{"q1", "q2", "q3", "q4", "q5"}
	out := buildDedup(previous, 3)

	if strings.Contains(out, "q1") || strings.Contains(out, "q2") {
		t.Errorf("expected oldest questions to be dropped, got %q", out)
	}
	for _, q := range []string{"q3", "q4", "q5"} {
		if !strings.Contains(out, q) {
			t.Errorf("expected %q in output, got %q", q, out)
		}
	}
}

func TestBuildDedup_Empty(t *testing.T) {
	if out := buildDedup(nil, 10); out != "None" {
		t.Errorf("buildDedup(nil) = %q, want %q", out, "None")
	}
}
