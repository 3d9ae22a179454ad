package interview

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/jortega/prepdeck/internal/interview"
	"github.com/jortega/prepdeck/internal/ui/components"
	"github.com/jortega/prepdeck/internal/ui/theme"
)

func (s *InterviewScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}

	switch s.state.Phase {
	case sess.PhaseInitializing:
		return renderCentered(width, theme.TextDim, "\n\n\n  Preparing your first question...")
	case sess.PhaseEvaluating:
		return s.renderQuestion(width) + "\n" +
			renderCentered(width, theme.TextDim, "Evaluating your answer...")
	case sess.PhaseShowingFeedback:
		return s.renderFeedback(width)
	case sess.PhaseAwaitingAnswer:
		return s.renderQuestion(width)
	}
	return ""
}

// renderQuestion shows the current question with its answer affordance.
func (s *InterviewScreen) renderQuestion(width int) string {
	q := s.state.CurrentQuestion
	if q == nil {
		return renderCentered(width, theme.TextDim, "\n\n  Fetching the next question...")
	}

	var b strings.Builder

	counter := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d of %d", len(s.state.History)+1, sess.InterviewLength))
	bar := components.NewProgressBar("", float64(len(s.state.History))/float64(sess.InterviewLength), false, min(width-lipgloss.Width(counter)-6, 30))
	b.WriteString(counter + "  " + bar.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	questionStyle := lipgloss.NewStyle().
		Width(min(width-8, 76)).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, questionStyle.Render(q.Text)))
	b.WriteString("\n\n")

	if s.state.Phase == sess.PhaseAwaitingAnswer {
		if q.IsMultipleChoice() {
			b.WriteString(s.renderOptions(width))
		} else {
			answerLine := lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Render("Answer: " + s.input.View())
			b.WriteString(answerLine)
		}
	}

	if s.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(renderCentered(width, theme.Error, s.notice))
	}

	return b.String()
}

// renderOptions shows the multiple-choice selector.
func (s *InterviewScreen) renderOptions(width int) string {
	q := s.state.CurrentQuestion

	var b strings.Builder
	for i, opt := range q.Options {
		prefix := "  "
		if i == s.mcSelected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, opt)

		if i == s.mcSelected {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\nSelect (1-4) or use arrows + Enter"))

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

// renderFeedback shows the evaluation of the last answer.
func (s *InterviewScreen) renderFeedback(width int) string {
	if len(s.state.History) == 0 {
		return ""
	}
	entry := s.state.History[len(s.state.History)-1]
	fb := entry.Feedback

	var b strings.Builder
	b.WriteString("\n")

	if fb.Points >= sess.PointsPerCorrect {
		b.WriteString(renderCenteredBold(width, theme.Success, "Correct!"))
	} else if entry.Question.IsMultipleChoice() {
		b.WriteString(renderCenteredBold(width, theme.Error, "Not quite"))
		b.WriteString("\n")
		b.WriteString(renderCentered(width, theme.TextDim,
			fmt.Sprintf("Correct answer: %s", entry.Question.CorrectAnswer)))
	} else {
		b.WriteString(renderCenteredBold(width, theme.Accent, fmt.Sprintf("%d points", fb.Points)))
	}
	b.WriteString("\n\n")

	wrap := lipgloss.NewStyle().Width(min(width-8, 76))

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		wrap.Foreground(theme.Text).Render(fb.Evaluation)))
	b.WriteString("\n\n")

	if fb.Strengths != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			wrap.Foreground(theme.TextDim).Render("Strengths: "+fb.Strengths)))
		b.WriteString("\n")
	}
	if fb.AreasForImprovement != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			wrap.Foreground(theme.TextDim).Render("Improve: "+fb.AreasForImprovement)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderCentered(width, theme.TextDim,
		fmt.Sprintf("Estimated level: %s   Score: %d", fb.EstimatedLevel, s.state.Score)))
	b.WriteString("\n\n")

	if s.notice != "" {
		b.WriteString(renderCentered(width, theme.Error, s.notice))
		b.WriteString("\n")
	} else if sess.CanAskNext(s.state) {
		b.WriteString(renderCentered(width, theme.TextDim, "Press N for the next question, F to finish."))
	} else {
		b.WriteString(renderCentered(width, theme.TextDim, "That was the last question. Press F to see your results."))
	}

	return b.String()
}

func renderCentered(width int, c color.Color, text string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(c).
		Render(text)
}

func renderCenteredBold(width int, c color.Color, text string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(c).
		Bold(true).
		Render(text)
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
