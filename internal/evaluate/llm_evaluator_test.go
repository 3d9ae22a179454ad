package evaluate

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/jortega/prepdeck/internal/llm"
	"github.com/jortega/prepdeck/internal/topics"
)

func validFeedbackJSON() json.RawMessage {
	return json.RawMessage(`{
		"evaluation": "Solid answer with a clear explanation.",
		"strengths": "You explained the mechanism precisely.",
		"areasForImprovement": "Mention trade-offs next time.",
		"estimatedLevel": "Mid",
		"nextQuestion": "Let's look at state management next.",
		"points": 8
	}`)
}

func TestEvaluate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validFeedbackJSON()})
	ev := New(mock, DefaultConfig())

	fb, err := ev.Evaluate(context.Background(), EvaluateInput{
		Topic:      topics.TopicReact,
		Difficulty: topics.DifficultyMid,
		Question:   "What is the virtual DOM?",
		Answer:     "An in-memory representation of the real DOM",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fb.Evaluation != "Solid answer with a clear explanation." {
		t.Errorf("unexpected evaluation: %q", fb.Evaluation)
	}
	if fb.EstimatedLevel != topics.DifficultyMid {
		t.Errorf("estimated level = %q, want Mid", fb.EstimatedLevel)
	}
	if fb.Points != 8 {
		t.Errorf("points = %d, want 8", fb.Points)
	}
}

func TestEvaluate_PromptContents(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validFeedbackJSON()})
	ev := New(mock, DefaultConfig())

	_, err := ev.Evaluate(context.Background(), EvaluateInput{
		Topic:      topics.TopicJavaScript,
		Difficulty: topics.DifficultySenior,
		Question:   "What is the event loop in JavaScript?",
		Answer:     "A mechanism that handles asynchronous operations",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.System == "" {
		t.Error("expected a system prompt")
	}
	userMsg := req.Messages[0].Content
	for _, want := range []string{"JavaScript", "Senior", "event loop", "asynchronous"} {
		if !strings.Contains(userMsg, want) {
			t.Errorf("expected user message to contain %q", want)
		}
	}
	if req.Schema == nil || req.Schema.Name != "answer-feedback" {
		t.Error("expected the answer-feedback schema on the request")
	}
}

func TestEvaluate_InvalidLevelFallsBack(t *testing.T) {
	raw := json.RawMessage(`{
		"evaluation": "ok",
		"strengths": "ok",
		"areasForImprovement": "ok",
		"estimatedLevel": "Wizard",
		"nextQuestion": "next",
		"points": 5
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	ev := New(mock, Config{MaxTokens: 512})

	fb, err := ev.Evaluate(context.Background(), EvaluateInput{
		Topic:      topics.TopicReact,
		Difficulty: topics.DifficultySenior,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fb.EstimatedLevel != topics.DifficultySenior {
		t.Errorf("estimated level = %q, want the target level Senior", fb.EstimatedLevel)
	}
}

func TestEvaluate_NegativePointsClamped(t *testing.T) {
	raw := json.RawMessage(`{
		"evaluation": "ok",
		"strengths": "ok",
		"areasForImprovement": "ok",
		"estimatedLevel": "Junior",
		"nextQuestion": "next",
		"points": -3
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	ev := New(mock, DefaultConfig())

	fb, err := ev.Evaluate(context.Background(), EvaluateInput{Topic: topics.TopicReact})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fb.Points != 0 {
		t.Errorf("points = %d, want 0", fb.Points)
	}
}

func TestEvaluate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("API error")})
	ev := New(mock, DefaultConfig())

	_, err := ev.Evaluate(context.Background(), EvaluateInput{Topic: topics.TopicReact})
	if err == nil {
		t.Fatal("expected error from provider")
	}
	if !strings.Contains(err.Error(), "LLM evaluation failed") {
		t.Errorf("unexpected error message: %v", err)
	}
}
