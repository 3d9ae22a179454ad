package questions

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an expert technical interviewer for frontend developer positions.

Rules:
- Generate a single interview question for the given tech stack and difficulty level.
- The question must be a multiple-choice question with exactly 4 options.
- Exactly one option is correct; the "answer" field must repeat that option verbatim.
- Distractors should reflect plausible misconceptions, not random filler.
- Junior questions cover fundamentals, Mid questions cover practical application, Senior questions cover architecture, performance, and edge cases.
- The question must be self-contained: no references to code the candidate cannot see.
- Do not duplicate or closely resemble any question from the "already asked" list.`

// buildUserMessage constructs the user message from NextInput and Config limits.
func buildUserMessage(input NextInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Tech stack: %s\n", input.Topic)
	fmt.Fprintf(&b, "Difficulty level: %s\n", input.Difficulty)

	b.WriteString("\nAlready asked in this interview:\n")
	b.WriteString(buildDedup(input.PreviousQuestions, cfg.MaxPreviousQuestions))

	return b.String()
}

// buildDedup formats previously asked questions for the prompt, respecting
// the max limit. Returns "None" if there are no previous questions.
func buildDedup(previous []string, max int) string {
	if len(previous) == 0 {
		return "None"
	}

	// Keep only the most recent N questions.
	if max > 0 && len(previous) > max {
		previous = previous[len(previous)-max:]
	}

	var b strings.Builder
	for i, q := range previous {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
