package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jortega/prepdeck/internal/evaluate"
	"github.com/jortega/prepdeck/internal/questions"
	"github.com/jortega/prepdeck/internal/recommend"
	"github.com/jortega/prepdeck/internal/router"
	"github.com/jortega/prepdeck/internal/screen"
	"github.com/jortega/prepdeck/internal/screens/home"
	interviewscreen "github.com/jortega/prepdeck/internal/screens/interview"
	"github.com/jortega/prepdeck/internal/store"
	"github.com/jortega/prepdeck/internal/topics"
	"github.com/jortega/prepdeck/internal/ui/layout"
)

// Options carries the services the TUI depends on. QuestionSource,
// Evaluator, and Recommender must be non-nil; the repos may be nil, in
// which case nothing is persisted. When both StartTopic and StartDifficulty
// are set, the app skips the pickers and opens an interview directly.
type Options struct {
	QuestionSource questions.Source
	Evaluator      evaluate.Evaluator
	Recommender    recommend.Engine
	EventRepo      store.EventRepo
	TranscriptRepo store.TranscriptRepo

	StartTopic      topics.Topic
	StartDifficulty topics.Difficulty
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(
		opts.QuestionSource,
		opts.Evaluator,
		opts.Recommender,
		opts.EventRepo,
		opts.TranscriptRepo,
	)
	return AppModel{
		router: router.New(homeScreen),
		opts:   opts,
	}
}

func (m AppModel) Init() tea.Cmd {
	if m.opts.StartTopic != "" && m.opts.StartDifficulty != "" {
		opts := m.opts
		return func() tea.Msg {
			return router.PushScreenMsg{
				Screen: interviewscreen.New(
					opts.QuestionSource, opts.Evaluator, opts.Recommender,
					opts.EventRepo, opts.TranscriptRepo,
					opts.StartTopic, opts.StartDifficulty,
				),
			}
		}
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	status := ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.HeaderStatus()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
