package results

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/jortega/prepdeck/internal/interview"
	"github.com/jortega/prepdeck/internal/recommend"
	"github.com/jortega/prepdeck/internal/screen"
	"github.com/jortega/prepdeck/internal/store"
	"github.com/jortega/prepdeck/internal/topics"
	"github.com/jortega/prepdeck/internal/ui/layout"
)

// Entry is one answered question shown in the transcript review.
type Entry struct {
	Question            string
	Options             []string
	CorrectAnswer       string
	Answer              string
	Evaluation          string
	Strengths           string
	AreasForImprovement string
	EstimatedLevel      string
	Points              int
}

// Data is everything the results screen needs, whether it comes from a
// just-finished session or a transcript loaded from the store.
type Data struct {
	SessionID  string
	Topic      topics.Topic
	Difficulty topics.Difficulty
	FinalLevel topics.Difficulty
	Score      int
	MaxScore   int
	Entries    []Entry
}

// FromSession builds Data from a finished session's handoff and history.
func FromSession(summary *interview.Summary, history []interview.HistoryEntry) Data {
	entries := make([]Entry, 0, len(history))
	for _, e := range history {
		entries = append(entries, Entry{
			Question:            e.Question.Text,
			Options:             e.Question.Options,
			CorrectAnswer:       e.Question.CorrectAnswer,
			Answer:              e.Answer,
			Evaluation:          e.Feedback.Evaluation,
			Strengths:           e.Feedback.Strengths,
			AreasForImprovement: e.Feedback.AreasForImprovement,
			EstimatedLevel:      string(e.Feedback.EstimatedLevel),
			Points:              e.Feedback.Points,
		})
	}
	return Data{
		SessionID:  summary.SessionID,
		Topic:      summary.Topic,
		Difficulty: summary.Difficulty,
		FinalLevel: summary.FinalLevel,
		Score:      summary.Score,
		MaxScore:   summary.MaxScore,
		Entries:    entries,
	}
}

// FromTranscript builds Data from a stored transcript record.
func FromTranscript(rec *store.TranscriptRecord) Data {
	entries := make([]Entry, 0, len(rec.History))
	finalLevel := rec.Difficulty
	for _, e := range rec.History {
		entries = append(entries, Entry{
			Question:            e.Question,
			Options:             e.Options,
			CorrectAnswer:       e.CorrectAnswer,
			Answer:              e.Answer,
			Evaluation:          e.Evaluation,
			Strengths:           e.Strengths,
			AreasForImprovement: e.AreasForImprovement,
			EstimatedLevel:      e.EstimatedLevel,
			Points:              e.Points,
		})
		if e.EstimatedLevel != "" {
			finalLevel = e.EstimatedLevel
		}
	}

	topic, err := topics.ParseTopic(rec.Topic)
	if err != nil {
		topic = topics.DefaultTopic
	}
	difficulty, err := topics.ParseDifficulty(rec.Difficulty)
	if err != nil {
		difficulty = topics.DefaultDifficulty
	}
	level, err := topics.ParseDifficulty(finalLevel)
	if err != nil {
		level = difficulty
	}

	return Data{
		SessionID:  rec.SessionID,
		Topic:      topic,
		Difficulty: difficulty,
		FinalLevel: level,
		Score:      rec.Score,
		MaxScore:   rec.MaxScore,
		Entries:    entries,
	}
}

// recommendationMsg is sent when the async recommendation call returns.
type recommendationMsg struct {
	Text string
	Err  error
}

// ResultsScreen shows the final score, study recommendations, and a
// reviewable transcript of the finished interview.
type ResultsScreen struct {
	data     Data
	engine   recommend.Engine
	selected int

	recommendations string
	recPending      bool
	recFailed       bool
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)
var _ screen.StatusProvider = (*ResultsScreen)(nil)

// New creates a results screen. engine may be nil, in which case the
// recommendations section reports that none are available.
func New(data Data, engine recommend.Engine) *ResultsScreen {
	return &ResultsScreen{
		data:   data,
		engine: engine,
	}
}

func (r *ResultsScreen) Init() tea.Cmd {
	if r.engine == nil || len(r.data.Entries) == 0 {
		r.recFailed = true
		return nil
	}
	r.recPending = true
	return r.fetchRecommendations()
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) HeaderStatus() string {
	return fmt.Sprintf("%s / %s", r.data.Topic, r.data.Difficulty)
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Review answers"},
		{Key: "Esc", Description: "Home"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case recommendationMsg:
		r.recPending = false
		if msg.Err != nil || msg.Text == "" {
			r.recFailed = true
			return r, nil
		}
		r.recommendations = msg.Text
		return r, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if r.selected > 0 {
				r.selected--
			}
		case "down", "j":
			if r.selected < len(r.data.Entries)-1 {
				r.selected++
			}
		}
	}
	return r, nil
}

// fetchRecommendations runs the recommendation engine once for the session.
func (r *ResultsScreen) fetchRecommendations() tea.Cmd {
	data := r.data
	engine := r.engine
	return func() tea.Msg {
		input := recommend.RecommendInput{
			Transcript:      transcriptText(data.Entries),
			FeedbackSummary: feedbackSummary(data.Entries),
			Topic:           data.Topic,
			FinalLevel:      data.FinalLevel,
		}
		text, err := engine.Recommend(context.Background(), input)
		return recommendationMsg{Text: text, Err: err}
	}
}

func transcriptText(entries []Entry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, fmt.Sprintf("Q: %s\nA: %s", e.Question, e.Answer))
	}
	return strings.Join(parts, "\n\n")
}

func feedbackSummary(entries []Entry) string {
	parts := make([]string, 0, len(entries))
	for i, e := range entries {
		parts = append(parts, fmt.Sprintf("Question %d: %s", i+1, e.Evaluation))
	}
	return strings.Join(parts, "\n")
}
