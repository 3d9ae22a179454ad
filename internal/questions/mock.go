package questions

import (
	"context"
	"math/rand/v2"
	"sync"

	"github.com/jortega/prepdeck/internal/topics"
)

// MockSource implements Source from a static question bank, for running
// interviews without API access.
//
// Selection is uniform among the catalogued questions for the requested
// topic and difficulty. An unknown topic falls back to the default topic's
// table at the requested difficulty; a difficulty with no entries yields
// ErrNoQuestions. The mock performs no deduplication against
// PreviousQuestions: a short bank means repeats are expected, and callers
// that need variety should use the LLM source.
type MockSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewMockSource creates a MockSource. A nil rng uses a time-seeded source;
// tests pass a fixed seed for determinism.
func NewMockSource(rng *rand.Rand) *MockSource {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &MockSource{rng: rng}
}

// NextQuestion selects a catalogued question for the input's topic and
// difficulty.
func (m *MockSource) NextQuestion(_ context.Context, input NextInput) (*Question, error) {
	bank, ok := questionBank[input.Topic]
	if !ok {
		bank = questionBank[topics.DefaultTopic]
	}

	candidates := bank[input.Difficulty]
	if len(candidates) == 0 {
		return nil, ErrNoQuestions
	}

	m.mu.Lock()
	pick := m.rng.IntN(len(candidates))
	m.mu.Unlock()

	q := candidates[pick]
	return &q, nil
}

// questionBank is the static catalogue keyed by topic, then difficulty.
var questionBank = map[topics.Topic]map[topics.Difficulty][]Question{
	topics.TopicReact: {
		topics.DifficultyJunior: {
			{
				Text: "What is JSX in React?",
				Options: []string{
					"A JavaScript extension that allows HTML-like syntax",
					"A CSS preprocessor",
					"A state management library",
					"A testing framework",
				},
				CorrectAnswer: "A JavaScript extension that allows HTML-like syntax",
			},
			{
				Text: "What is the purpose of the useEffect hook?",
				Options: []string{
					"To manage component state",
					"To perform side effects in functional components",
					"To create custom hooks",
					"To handle form submissions",
				},
				CorrectAnswer: "To perform side effects in functional components",
			},
		},
		topics.DifficultyMid: {
			{
				Text: "What is the difference between controlled and uncontrolled components?",
				Options: []string{
					"Controlled components use refs, uncontrolled use state",
					"Controlled components have their state managed by React, uncontrolled manage their own state",
					"Controlled components are class components, uncontrolled are functional",
					"There is no difference between them",
				},
				CorrectAnswer: "Controlled components have their state managed by React, uncontrolled manage their own state",
			},
		},
		topics.DifficultySenior: {
			{
				Text: "How would you optimize a React application with performance issues?",
				Options: []string{
					"Use React.memo, useMemo, and useCallback",
					"Convert all components to class components",
					"Remove all state management",
					"Use only functional components",
				},
				CorrectAnswer: "Use React.memo, useMemo, and useCallback",
			},
		},
	},
	topics.TopicJavaScript: {
		topics.DifficultyJunior: {
			{
				Text: "What is the difference between let and var?",
				Options: []string{
					"let has block scope, var has function scope",
					"var has block scope, let has function scope",
					"There is no difference",
					"let is only for arrays, var is for objects",
				},
				CorrectAnswer: "let has block scope, var has function scope",
			},
		},
		topics.DifficultyMid: {
			{
				Text: "What is closure in JavaScript?",
				Options: []string{
					"A function that has access to variables in its outer scope",
					"A way to close a function",
					"A method to stop execution",
					"A type of loop",
				},
				CorrectAnswer: "A function that has access to variables in its outer scope",
			},
		},
		topics.DifficultySenior: {
			{
				Text: "What is the event loop in JavaScript?",
				Options: []string{
					"A mechanism that handles asynchronous operations",
					"A type of loop in JavaScript",
					"A way to handle events",
					"A debugging tool",
				},
				CorrectAnswer: "A mechanism that handles asynchronous operations",
			},
		},
	},
}
