package recommend

import (
	"context"
	"fmt"
)

// MockEngine implements Engine with a deterministic template, for running
// interviews without API access. The output interpolates only the topic
// and final estimated level; it does not vary with transcript content.
type MockEngine struct{}

// NewMockEngine creates a MockEngine.
func NewMockEngine() *MockEngine {
	return &MockEngine{}
}

// Recommend returns the templated recommendation block.
func (m *MockEngine) Recommend(_ context.Context, input RecommendInput) (string, error) {
	return fmt.Sprintf(mockTemplate, input.FinalLevel, input.Topic, input.Topic, input.Topic, input.Topic), nil
}

const mockTemplate = `Based on your %s level performance in %s, here are personalized study recommendations:

Study Resources:
- MDN Web Docs - Comprehensive %s documentation
- %s Official Documentation - Learn core concepts
- JavaScript.info - Modern JavaScript tutorial
- Frontend Masters - Advanced frontend courses

Practice Exercises:
- Build a todo app with %s
- Create a weather app using APIs
- Implement a calculator with vanilla JavaScript
- Build a responsive portfolio website

Next Steps:
- Focus on understanding core concepts
- Practice coding daily
- Build projects to apply knowledge
- Join coding communities for support

Specific Focus Areas:
Based on your interview performance, pay special attention to:
- Understanding fundamental concepts
- Practicing problem-solving
- Building real-world projects
- Staying updated with latest trends

Keep practicing and you'll improve your skills!`
