package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jortega/prepdeck/internal/evaluate"
	"github.com/jortega/prepdeck/internal/questions"
	"github.com/jortega/prepdeck/internal/recommend"
	"github.com/jortega/prepdeck/internal/router"
	"github.com/jortega/prepdeck/internal/screen"
	interviewscreen "github.com/jortega/prepdeck/internal/screens/interview"
	"github.com/jortega/prepdeck/internal/screens/results"
	"github.com/jortega/prepdeck/internal/store"
	"github.com/jortega/prepdeck/internal/topics"
	"github.com/jortega/prepdeck/internal/ui/components"
	"github.com/jortega/prepdeck/internal/ui/theme"
)

// step tracks which selection stage the home screen is showing.
type step int

const (
	stepMain step = iota
	stepTopic
	stepDifficulty
)

// HomeScreen is the entry screen: pick a topic and difficulty, then start.
type HomeScreen struct {
	source      questions.Source
	evaluator   evaluate.Evaluator
	recommender recommend.Engine
	eventRepo   store.EventRepo
	transcripts store.TranscriptRepo

	step   step
	topic  topics.Topic
	menu   components.Menu
	notice string

	lastRecord *store.TranscriptRecord
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen with injected services.
func New(
	source questions.Source,
	evaluator evaluate.Evaluator,
	recommender recommend.Engine,
	eventRepo store.EventRepo,
	transcripts store.TranscriptRepo,
) *HomeScreen {
	h := &HomeScreen{
		source:      source,
		evaluator:   evaluator,
		recommender: recommender,
		eventRepo:   eventRepo,
		transcripts: transcripts,
	}

	if transcripts != nil {
		rec, err := transcripts.Load(context.Background(), store.DefaultTranscriptKey)
		if err != nil {
			h.notice = "Could not load your last interview results."
		}
		h.lastRecord = rec
	}

	h.menu = h.mainMenu()
	return h
}

func (h *HomeScreen) mainMenu() components.Menu {
	items := []components.MenuItem{
		{Label: "Start Interview", Action: func() tea.Cmd {
			h.step = stepTopic
			h.menu = h.topicMenu()
			h.notice = ""
			return nil
		}},
		{Label: "Last Results", Disabled: h.lastRecord == nil, Action: func() tea.Cmd {
			rec := h.lastRecord
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: results.New(results.FromTranscript(rec), h.recommender),
				}
			}
		}},
		{Label: "Exit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	return components.NewMenu(items)
}

func (h *HomeScreen) topicMenu() components.Menu {
	items := make([]components.MenuItem, 0, len(topics.AllTopics())+1)
	for _, t := range topics.AllTopics() {
		topic := t
		items = append(items, components.MenuItem{Label: string(topic), Action: func() tea.Cmd {
			h.topic = topic
			h.step = stepDifficulty
			h.menu = h.difficultyMenu()
			return nil
		}})
	}
	items = append(items, components.MenuItem{Label: "Back", Action: func() tea.Cmd {
		h.step = stepMain
		h.menu = h.mainMenu()
		return nil
	}})
	return components.NewMenu(items)
}

func (h *HomeScreen) difficultyMenu() components.Menu {
	items := make([]components.MenuItem, 0, len(topics.AllDifficulties())+1)
	for _, d := range topics.AllDifficulties() {
		difficulty := d
		items = append(items, components.MenuItem{Label: string(difficulty), Action: func() tea.Cmd {
			topic := h.topic
			h.step = stepMain
			h.menu = h.mainMenu()
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: interviewscreen.New(
						h.source, h.evaluator, h.recommender,
						h.eventRepo, h.transcripts,
						topic, difficulty,
					),
				}
			}
		}})
	}
	items = append(items, components.MenuItem{Label: "Back", Action: func() tea.Cmd {
		h.step = stepTopic
		h.menu = h.topicMenu()
		return nil
	}})
	return components.NewMenu(items)
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Align(lipgloss.Center).
		Width(width).
		Render("P R E P D E C K")
	subtitle := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Align(lipgloss.Center).
		Width(width).
		Render("Mock interview practice for frontend developers")
	sections = append(sections, title+"\n"+subtitle)

	if h.lastRecord != nil && h.step == stepMain {
		last := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Align(lipgloss.Center).
			Width(width).
			Render(fmt.Sprintf("Last interview: %s (%s) · %d/%d",
				h.lastRecord.Topic, h.lastRecord.Difficulty,
				h.lastRecord.Score, h.lastRecord.MaxScore))
		sections = append(sections, last)
	}

	var prompt string
	switch h.step {
	case stepTopic:
		prompt = "Choose a tech stack"
	case stepDifficulty:
		prompt = fmt.Sprintf("Choose a difficulty for %s", h.topic)
	}
	if prompt != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Align(lipgloss.Center).
			Width(width).
			Render(prompt))
	}

	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	if h.notice != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Error).
			Align(lipgloss.Center).
			Width(width).
			Render(h.notice))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
