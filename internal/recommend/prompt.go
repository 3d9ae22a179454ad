package recommend

import (
	"fmt"
	"strings"
)

const coachPrompt = `You are a career coach for frontend developers.

Given a candidate's mock-interview transcript and the feedback they received,
produce personalized study recommendations. Structure the output with short
sections: study resources, practice exercises, next steps, and specific focus
areas. Be concrete and encouraging; never repeat the transcript back.`

// buildUserMessage constructs the user message for one recommendation call.
func buildUserMessage(input RecommendInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Estimated level: %s\n", input.FinalLevel)
	fmt.Fprintf(&b, "\nInterview transcript:\n%s\n", input.Transcript)
	fmt.Fprintf(&b, "\nFeedback received:\n%s\n", input.FeedbackSummary)

	return b.String()
}
