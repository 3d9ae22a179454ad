package evaluate

import (
	"context"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/jortega/prepdeck/internal/topics"
)

func mockInput() EvaluateInput {
	return EvaluateInput{
		Topic:      topics.TopicReact,
		Difficulty: topics.DifficultyJunior,
		Question:   "What is JSX in React?",
		Answer:     "A JavaScript extension that allows HTML-like syntax",
	}
}

func TestMockEvaluator_Bias(t *testing.T) {
	ev := NewMockEvaluator(rand.New(rand.NewPCG(42, 0)))

	const n = 10000
	correct := 0
	for i := 0; i < n; i++ {
		fb, err := ev.Evaluate(context.Background(), mockInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fb.Points == 10 {
			correct++
		} else if fb.Points != 0 {
			t.Fatalf("unexpected points %d", fb.Points)
		}
	}

	frac := float64(correct) / float64(n)
	if math.Abs(frac-0.7) > 0.02 {
		t.Errorf("correct fraction = %.4f, want 0.70 +/- 0.02", frac)
	}
}

func TestMockEvaluator_IgnoresAnswerContent(t *testing.T) {
	// Two evaluators with the same seed must produce identical verdicts
	// for completely different answers.
	a := NewMockEvaluator(rand.New(rand.NewPCG(5, 5)))
	b := NewMockEvaluator(rand.New(rand.NewPCG(5, 5)))

	inputA := mockInput()
	inputB := mockInput()
	inputB.Answer = "complete nonsense"

	for i := 0; i < 50; i++ {
		fbA, err := a.Evaluate(context.Background(), inputA)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		fbB, err := b.Evaluate(context.Background(), inputB)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fbA.Points != fbB.Points {
			t.Fatalf("draw %d: verdicts diverged for different answers", i)
		}
	}
}

func TestMockEvaluator_TopicFallback(t *testing.T) {
	ev := NewMockEvaluator(rand.New(rand.NewPCG(1, 1)))

	input := mockInput()
	input.Topic = topics.TopicHTMLCSS
	input.Difficulty = topics.DifficultyMid

	fb, err := ev.Evaluate(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// HTML/CSS is uncatalogued, so the React Mid cell serves the answer.
	reactMid := feedbackBank[topics.TopicReact][topics.DifficultyMid]
	if fb.Evaluation != reactMid.correct.Evaluation && fb.Evaluation != reactMid.incorrect.Evaluation {
		t.Errorf("expected a React Mid template, got %q", fb.Evaluation)
	}
}

func TestMockEvaluator_DifficultyFallback(t *testing.T) {
	ev := NewMockEvaluator(rand.New(rand.NewPCG(2, 2)))

	input := mockInput()
	input.Difficulty = topics.Difficulty("Principal")

	fb, err := ev.Evaluate(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reactJunior := feedbackBank[topics.TopicReact][topics.DifficultyJunior]
	if fb.Evaluation != reactJunior.correct.Evaluation && fb.Evaluation != reactJunior.incorrect.Evaluation {
		t.Errorf("expected a React Junior template, got %q", fb.Evaluation)
	}
}

func TestMockEvaluator_IncorrectDemotesLevel(t *testing.T) {
	for _, tt := range []struct {
		difficulty topics.Difficulty
		wantLevel  topics.Difficulty
	}{
		{topics.DifficultyJunior, topics.DifficultyJunior},
		{topics.DifficultyMid, topics.DifficultyJunior},
		{topics.DifficultySenior, topics.DifficultyMid},
	} {
		cell := feedbackBank[topics.TopicReact][tt.difficulty]
		if cell.incorrect.EstimatedLevel != tt.wantLevel {
			t.Errorf("%s incorrect level = %s, want %s",
				tt.difficulty, cell.incorrect.EstimatedLevel, tt.wantLevel)
		}
		if cell.correct.EstimatedLevel != tt.difficulty {
			t.Errorf("%s correct level = %s, want %s",
				tt.difficulty, cell.correct.EstimatedLevel, tt.difficulty)
		}
	}
}
