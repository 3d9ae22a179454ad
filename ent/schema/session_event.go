package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records interview lifecycle events (start/finish).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("topic").
			NotEmpty().
			Comment("Tech stack chosen at session start"),
		field.String("difficulty").
			NotEmpty().
			Comment("Target level chosen at session start"),
		field.String("action").
			NotEmpty().
			Comment("start or finish"),
		field.Int("questions_answered").
			Default(0).
			Comment("Total questions answered (on finish only)"),
		field.Int("score").
			Default(0).
			Comment("Final score (on finish only)"),
		field.Int("max_score").
			Default(0).
			Comment("Maximum attainable score (on finish only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on finish only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
