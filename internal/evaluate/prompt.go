package evaluate

import (
	"fmt"
	"strings"
)

const mentorPrompt = `You are an expert mentor for frontend developer technical interviews.

Your task:
1. Evaluate the candidate's answer with a constructive, clear tone.
2. Produce structured feedback:
   - Evaluation: a brief summary (2 sentences max)
   - Strengths
   - Areas for improvement
   - Estimated level: Junior / Mid / Senior
3. Do not reveal the correct answer inside the feedback itself.
4. Propose a short transition line toward the next question.
5. Award points from 0 to 10 reflecting answer quality.
6. Keep a professional but approachable tone, like a technical coach.`

// buildUserMessage constructs the user message for one evaluation.
func buildUserMessage(input EvaluateInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Target level: %s\n", input.Difficulty)
	fmt.Fprintf(&b, "\nQuestion:\n%s\n", input.Question)
	fmt.Fprintf(&b, "\nCandidate's answer:\n%s\n", input.Answer)

	return b.String()
}
