package results

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/jortega/prepdeck/internal/ui/components"
	"github.com/jortega/prepdeck/internal/ui/theme"
)

func (r *ResultsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(r.renderScoreboard(width))
	b.WriteString("\n")
	b.WriteString(r.renderRecommendations(width))
	b.WriteString("\n")
	b.WriteString(r.renderTranscript(width))

	return b.String()
}

// renderScoreboard shows the headline numbers for the session.
func (r *ResultsScreen) renderScoreboard(width int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Interview Complete"))
	b.WriteString("\n\n")

	scoreStyle := theme.Success
	if r.data.MaxScore > 0 && r.data.Score*2 < r.data.MaxScore {
		scoreStyle = theme.Error
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(scoreStyle).
		Bold(true).
		Render(fmt.Sprintf("Score: %d / %d", r.data.Score, r.data.MaxScore)))
	b.WriteString("\n")

	if r.data.MaxScore > 0 {
		bar := components.NewProgressBar("", float64(r.data.Score)/float64(r.data.MaxScore), true, min(width-8, 44))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("Estimated level: %s", r.data.FinalLevel)))
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d questions answered · %s · %s target",
			len(r.data.Entries), r.data.Topic, r.data.Difficulty)))
	b.WriteString("\n")

	return b.String()
}

// renderRecommendations shows the study recommendations section.
func (r *ResultsScreen) renderRecommendations(width int) string {
	var body string
	switch {
	case r.recPending:
		body = lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Generating study recommendations...")
	case r.recFailed:
		body = lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Study recommendations could not be generated for this session.")
	default:
		body = lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(min(width-8, 76)).
			Render(r.recommendations)
	}

	header := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  Study Recommendations")

	return header + "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, body) + "\n"
}

// renderTranscript shows the selected transcript entry with navigation.
func (r *ResultsScreen) renderTranscript(width int) string {
	if len(r.data.Entries) == 0 {
		return ""
	}

	e := r.data.Entries[r.selected]

	header := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Transcript  (%d/%d)", r.selected+1, len(r.data.Entries)))

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")

	wrap := lipgloss.NewStyle().Width(min(width-8, 76))

	b.WriteString(wrap.Foreground(theme.Text).Bold(true).Render("Q: " + e.Question))
	b.WriteString("\n")
	b.WriteString(wrap.Foreground(theme.Text).Render("A: " + e.Answer))
	b.WriteString("\n\n")

	pointsStyle := theme.Success
	if e.Points == 0 {
		pointsStyle = theme.Error
	}
	b.WriteString(lipgloss.NewStyle().
		Foreground(pointsStyle).
		Bold(true).
		Render(fmt.Sprintf("%d points", e.Points)))
	if e.CorrectAnswer != "" && e.Answer != e.CorrectAnswer {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("   correct: " + e.CorrectAnswer))
	}
	b.WriteString("\n\n")

	if e.Evaluation != "" {
		b.WriteString(wrap.Foreground(theme.Text).Render(e.Evaluation))
		b.WriteString("\n")
	}
	if e.Strengths != "" {
		b.WriteString(wrap.Foreground(theme.TextDim).Render("Strengths: " + e.Strengths))
		b.WriteString("\n")
	}
	if e.AreasForImprovement != "" {
		b.WriteString(wrap.Foreground(theme.TextDim).Render("Improve: " + e.AreasForImprovement))
		b.WriteString("\n")
	}

	block := b.String()
	return lipgloss.PlaceHorizontal(width, lipgloss.Left, block)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
