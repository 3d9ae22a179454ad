package evaluate

import (
	"context"
	"math/rand/v2"
	"sync"

	"github.com/jortega/prepdeck/internal/topics"
)

// correctProbability is the chance the mock treats an answer as correct.
const correctProbability = 0.7

// MockEvaluator implements Evaluator from canned feedback tables, for
// running interviews without API access.
//
// It applies a single selection rule: a biased draw treats the answer as
// correct with probability 0.7, independent of the answer's content, and
// returns the matching canned template for the topic and difficulty. An
// unknown topic falls back to the default topic's table, then an unknown
// difficulty falls back to the default difficulty's cell.
type MockEvaluator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewMockEvaluator creates a MockEvaluator. A nil rng uses a time-seeded
// source; tests pass a fixed seed for determinism.
func NewMockEvaluator(rng *rand.Rand) *MockEvaluator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &MockEvaluator{rng: rng}
}

// Evaluate returns a canned Feedback for the input's topic and difficulty.
func (m *MockEvaluator) Evaluate(_ context.Context, input EvaluateInput) (*Feedback, error) {
	byDifficulty, ok := feedbackBank[input.Topic]
	if !ok {
		byDifficulty = feedbackBank[topics.DefaultTopic]
	}

	cell, ok := byDifficulty[input.Difficulty]
	if !ok {
		cell = byDifficulty[topics.DefaultDifficulty]
	}

	m.mu.Lock()
	correct := m.rng.Float64() < correctProbability
	m.mu.Unlock()

	fb := cell.incorrect
	if correct {
		fb = cell.correct
	}
	return &fb, nil
}

// feedbackCell pairs the canned templates for one topic and difficulty.
type feedbackCell struct {
	correct   Feedback
	incorrect Feedback
}

// feedbackBank is the static catalogue keyed by topic, then difficulty.
// Incorrect answers at Mid and Senior demote the estimated level one step.
var feedbackBank = map[topics.Topic]map[topics.Difficulty]feedbackCell{
	topics.TopicReact: {
		topics.DifficultyJunior: {
			correct: Feedback{
				Evaluation:          "Great job! You demonstrated a solid understanding of React fundamentals.",
				Strengths:           "You showed good knowledge of React concepts and hooks.",
				AreasForImprovement: "Continue practicing with more complex React patterns and state management.",
				EstimatedLevel:      topics.DifficultyJunior,
				NextQuestion:        "Let's move on to the next question about React components.",
				Points:              10,
			},
			incorrect: Feedback{
				Evaluation:          "Not quite right, but that's okay! This is a learning opportunity.",
				Strengths:           "You're thinking about React concepts, which shows engagement.",
				AreasForImprovement: "Review React fundamentals, especially hooks and component lifecycle.",
				EstimatedLevel:      topics.DifficultyJunior,
				NextQuestion:        "Let's try another question to build your understanding.",
				Points:              0,
			},
		},
		topics.DifficultyMid: {
			correct: Feedback{
				Evaluation:          "Excellent! You showed strong intermediate React knowledge.",
				Strengths:           "You understand React patterns and can apply them effectively.",
				AreasForImprovement: "Focus on advanced patterns like custom hooks and performance optimization.",
				EstimatedLevel:      topics.DifficultyMid,
				NextQuestion:        "Great work! Let's continue with more advanced concepts.",
				Points:              10,
			},
			incorrect: Feedback{
				Evaluation:          "This was a challenging question. Let's break it down.",
				Strengths:           "You're working through complex React concepts.",
				AreasForImprovement: "Review React patterns, state management, and component architecture.",
				EstimatedLevel:      topics.DifficultyJunior,
				NextQuestion:        "Let's try another question to strengthen your understanding.",
				Points:              0,
			},
		},
		topics.DifficultySenior: {
			correct: Feedback{
				Evaluation:          "Outstanding! You demonstrated expert-level React knowledge.",
				Strengths:           "You have deep understanding of React internals and best practices.",
				AreasForImprovement: "Consider exploring React ecosystem tools and advanced optimization techniques.",
				EstimatedLevel:      topics.DifficultySenior,
				NextQuestion:        "Excellent! Let's continue with more senior-level challenges.",
				Points:              10,
			},
			incorrect: Feedback{
				Evaluation:          "This was a complex senior-level question. Let's analyze it together.",
				Strengths:           "You're tackling advanced React concepts.",
				AreasForImprovement: "Review React internals, performance optimization, and advanced patterns.",
				EstimatedLevel:      topics.DifficultyMid,
				NextQuestion:        "Let's try another question to build your senior-level skills.",
				Points:              0,
			},
		},
	},
	topics.TopicJavaScript: {
		topics.DifficultyJunior: {
			correct: Feedback{
				Evaluation:          "Perfect! You have a good grasp of JavaScript basics.",
				Strengths:           "You understand fundamental JavaScript concepts well.",
				AreasForImprovement: "Continue practicing with arrays, objects, and functions.",
				EstimatedLevel:      topics.DifficultyJunior,
				NextQuestion:        "Well done! Let's move to the next JavaScript question.",
				Points:              10,
			},
			incorrect: Feedback{
				Evaluation:          "JavaScript can be tricky! Let's learn from this.",
				Strengths:           "You're engaging with JavaScript concepts.",
				AreasForImprovement: "Review JavaScript fundamentals, especially variables, functions, and scope.",
				EstimatedLevel:      topics.DifficultyJunior,
				NextQuestion:        "Let's try another question to strengthen your JavaScript skills.",
				Points:              0,
			},
		},
		topics.DifficultyMid: {
			correct: Feedback{
				Evaluation:          "Excellent! You showed strong intermediate JavaScript skills.",
				Strengths:           "You understand JavaScript patterns and can apply them effectively.",
				AreasForImprovement: "Focus on advanced concepts like closures, prototypes, and async programming.",
				EstimatedLevel:      topics.DifficultyMid,
				NextQuestion:        "Great work! Let's continue with more advanced JavaScript.",
				Points:              10,
			},
			incorrect: Feedback{
				Evaluation:          "This was a challenging intermediate question. Let's work through it.",
				Strengths:           "You're tackling complex JavaScript concepts.",
				AreasForImprovement: "Review JavaScript patterns, closures, and asynchronous programming.",
				EstimatedLevel:      topics.DifficultyJunior,
				NextQuestion:        "Let's try another question to build your intermediate skills.",
				Points:              0,
			},
		},
		topics.DifficultySenior: {
			correct: Feedback{
				Evaluation:          "Outstanding! You demonstrated expert-level JavaScript knowledge.",
				Strengths:           "You have deep understanding of JavaScript internals and advanced patterns.",
				AreasForImprovement: "Consider exploring JavaScript engines and performance optimization.",
				EstimatedLevel:      topics.DifficultySenior,
				NextQuestion:        "Excellent! Let's continue with more senior-level challenges.",
				Points:              10,
			},
			incorrect: Feedback{
				Evaluation:          "This was a complex senior-level question. Let's analyze it together.",
				Strengths:           "You're working through advanced JavaScript concepts.",
				AreasForImprovement: "Review JavaScript internals, performance optimization, and advanced patterns.",
				EstimatedLevel:      topics.DifficultyMid,
				NextQuestion:        "Let's try another question to build your senior-level skills.",
				Points:              0,
			},
		},
	},
}
