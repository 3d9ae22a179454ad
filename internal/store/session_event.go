package store

import (
	"context"
	"fmt"

	"github.com/jortega/prepdeck/ent"
	"github.com/jortega/prepdeck/ent/answerevent"
	"github.com/jortega/prepdeck/ent/sessionevent"
)

// ActionStart and ActionFinish label the two session lifecycle events.
const (
	ActionStart  = "start"
	ActionFinish = "finish"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetTopic(data.Topic).
		SetDifficulty(data.Difficulty).
		SetAction(data.Action).
		SetQuestionsAnswered(data.QuestionsAnswered).
		SetScore(data.Score).
		SetMaxScore(data.MaxScore).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuestionText(data.QuestionText).
		SetCorrectAnswer(data.CorrectAnswer).
		SetSubmittedAnswer(data.SubmittedAnswer).
		SetCorrect(data.Correct).
		SetPoints(data.Points).
		SetEstimatedLevel(data.EstimatedLevel)

	if len(data.Options) > 0 {
		builder = builder.SetOptions(data.Options)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummary, error) {
	q := r.client.SessionEvent.Query().
		Where(sessionevent.Action(ActionFinish)).
		Order(ent.Desc(sessionevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(sessionevent.SequenceGT(opts.After))
	}
	if !opts.From.IsZero() {
		q = q.Where(sessionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(sessionevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}

	summaries := make([]SessionSummary, 0, len(events))
	for _, e := range events {
		summaries = append(summaries, SessionSummary{
			SessionID:         e.SessionID,
			Timestamp:         e.Timestamp,
			Topic:             e.Topic,
			Difficulty:        e.Difficulty,
			QuestionsAnswered: e.QuestionsAnswered,
			Score:             e.Score,
			MaxScore:          e.MaxScore,
			DurationSecs:      e.DurationSecs,
		})
	}
	return summaries, nil
}

func (r *eventRepo) SessionAccuracy(ctx context.Context, sessionID string) (float64, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.SessionID(sessionID)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query session accuracy: %w", err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(events)), nil
}
