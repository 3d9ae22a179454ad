package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/jortega/prepdeck/internal/llm"
	"github.com/jortega/prepdeck/internal/topics"
)

func testRecommendInput() RecommendInput {
	return RecommendInput{
		Transcript:      "Q: What is JSX in React?\nA: A JavaScript extension that allows HTML-like syntax",
		FeedbackSummary: "Question 1: Great job! You demonstrated a solid understanding of React fundamentals.",
		Topic:           topics.TopicReact,
		FinalLevel:      topics.DifficultyJunior,
	}
}

func TestMockEngine_Deterministic(t *testing.T) {
	eng := NewMockEngine()

	first, err := eng.Recommend(context.Background(), testRecommendInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Same topic and level, different transcript: identical output.
	other := testRecommendInput()
	other.Transcript = "completely different transcript"
	other.FeedbackSummary = "completely different feedback"
	second, err := eng.Recommend(context.Background(), other)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != second {
		t.Error("mock recommendations varied with transcript content")
	}
}

func TestMockEngine_Interpolation(t *testing.T) {
	eng := NewMockEngine()

	input := testRecommendInput()
	input.Topic = topics.TopicJavaScript
	input.FinalLevel = topics.DifficultySenior

	out, err := eng.Recommend(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Senior level performance in JavaScript") {
		t.Errorf("expected level and topic interpolated, got %q", out[:80])
	}
	for _, section := range []string{"Study Resources:", "Practice Exercises:", "Next Steps:", "Specific Focus Areas:"} {
		if !strings.Contains(out, section) {
			t.Errorf("expected section %q in output", section)
		}
	}
}

func TestLLMEngine(t *testing.T) {
	raw := json.RawMessage(`{"studyRecommendations": "Review closures and the event loop."}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	eng := New(mock, DefaultConfig())

	out, err := eng.Recommend(context.Background(), testRecommendInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Review closures and the event loop." {
		t.Errorf("unexpected output: %q", out)
	}

	req := mock.Calls[0]
	userMsg := req.Messages[0].Content
	if !strings.Contains(userMsg, "What is JSX in React?") {
		t.Error("expected transcript in the user message")
	}
	if !strings.Contains(userMsg, "solid understanding") {
		t.Error("expected feedback summary in the user message")
	}
	if req.Schema == nil || req.Schema.Name != "study-recommendations" {
		t.Error("expected the study-recommendations schema on the request")
	}
}

func TestLLMEngine_EmptyOutput(t *testing.T) {
	raw := json.RawMessage(`{"studyRecommendations": ""}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	eng := New(mock, DefaultConfig())

	_, err := eng.Recommend(context.Background(), testRecommendInput())
	if err == nil {
		t.Fatal("expected error for empty recommendations")
	}
}

func TestLLMEngine_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("API error")})
	eng := New(mock, DefaultConfig())

	_, err := eng.Recommend(context.Background(), testRecommendInput())
	if err == nil {
		t.Fatal("expected error from provider")
	}
	if !strings.Contains(err.Error(), "LLM recommendation failed") {
		t.Errorf("unexpected error message: %v", err)
	}
}
