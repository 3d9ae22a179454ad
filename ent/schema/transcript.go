package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Transcript stores the full interview history of a completed session under
// a stable key. Besides per-session keys, a fixed default key always holds
// the most recently finished interview.
type Transcript struct {
	ent.Schema
}

// TranscriptEntry is the serialized form of one answered question.
type TranscriptEntry struct {
	Question            string   `json:"question"`
	Options             []string `json:"options,omitempty"`
	CorrectAnswer       string   `json:"correct_answer,omitempty"`
	Answer              string   `json:"answer"`
	Evaluation          string   `json:"evaluation"`
	Strengths           string   `json:"strengths"`
	AreasForImprovement string   `json:"areas_for_improvement"`
	EstimatedLevel      string   `json:"estimated_level"`
	Points              int      `json:"points"`
}

func (Transcript) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			NotEmpty().
			Unique().
			Comment("Lookup key; a session key or the default key"),
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the session this transcript came from"),
		field.String("topic").
			NotEmpty().
			Comment("Tech stack of the session"),
		field.String("difficulty").
			NotEmpty().
			Comment("Target level of the session"),
		field.JSON("history", []TranscriptEntry{}).
			Comment("Ordered question/answer/feedback entries"),
		field.Int("score").
			Comment("Final accumulated score"),
		field.Int("max_score").
			Comment("Answered questions times points per correct answer"),
		field.Time("saved_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the transcript was last written"),
	}
}

func (Transcript) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
