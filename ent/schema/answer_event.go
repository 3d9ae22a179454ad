package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answered question within a session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("question_text").
			NotEmpty().
			Comment("The question shown"),
		field.JSON("options", []string{}).
			Optional().
			Comment("Answer options (multiple choice only)"),
		field.String("correct_answer").
			Default("").
			Comment("Designated correct option (multiple choice only)"),
		field.String("submitted_answer").
			NotEmpty().
			Comment("What the candidate submitted"),
		field.Bool("correct").
			Comment("Whether the answer earned full points"),
		field.Int("points").
			Comment("Points awarded for this answer"),
		field.String("estimated_level").
			NotEmpty().
			Comment("Level estimated by the evaluator"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("correct"),
	}
}
