package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event as returned by queries.
type LLMEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates LLM usage per consumer-provided purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM token usage per model for cost estimation.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// SessionEventData captures an interview lifecycle event. The counters are
// meaningful on the finish action only.
type SessionEventData struct {
	SessionID         string
	Topic             string
	Difficulty        string
	Action            string
	QuestionsAnswered int
	Score             int
	MaxScore          int
	DurationSecs      int
}

// SessionSummary is a finished interview as reported by QuerySessionSummaries.
type SessionSummary struct {
	SessionID         string
	Timestamp         time.Time
	Topic             string
	Difficulty        string
	QuestionsAnswered int
	Score             int
	MaxScore          int
	DurationSecs      int
}

// AnswerEventData captures one answered question within a session.
type AnswerEventData struct {
	SessionID       string
	QuestionText    string
	Options         []string
	CorrectAnswer   string
	SubmittedAnswer string
	Correct         bool
	Points          int
	EstimatedLevel  string
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendSessionEvent records an interview start or finish.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendAnswerEvent records one answered question.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns a single LLM event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates token usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)

	// QuerySessionSummaries returns finished interviews, newest first.
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummary, error)

	// SessionAccuracy returns the fraction of correct answers in a session.
	SessionAccuracy(ctx context.Context, sessionID string) (float64, error)
}

// TranscriptEntry mirrors one answered question for persistence.
type TranscriptEntry struct {
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

// TranscriptRecord is a persisted interview history keyed for retrieval.
type TranscriptRecord struct {
	Key        string
	SessionID  string
	Topic      string
	Difficulty string
	History    []TranscriptEntry
	Score      int
	MaxScore   int
	SavedAt    time.Time
}

// TranscriptRepo stores and retrieves interview transcripts.
type TranscriptRepo interface {
	// Save upserts a transcript under its key.
	Save(ctx context.Context, rec *TranscriptRecord) error

	// Load returns the transcript stored under key, or nil if none exists.
	Load(ctx context.Context, key string) (*TranscriptRecord, error)

	// Delete removes the transcript stored under key. Missing keys are not
	// an error.
	Delete(ctx context.Context, key string) error
}

// DefaultTranscriptKey always holds the most recently finished interview.
const DefaultTranscriptKey = "interview_history"

// SessionKey returns the per-session transcript key.
func SessionKey(sessionID string) string {
	return "interview_history:" + sessionID
}
