package store

import (
	"context"
	"fmt"

	"github.com/jortega/prepdeck/ent"
	entschema "github.com/jortega/prepdeck/ent/schema"
	"github.com/jortega/prepdeck/ent/transcript"
)

// transcriptRepo implements TranscriptRepo using the ent client.
type transcriptRepo struct {
	client *ent.Client
}

func (r *transcriptRepo) Save(ctx context.Context, rec *TranscriptRecord) error {
	history := make([]entschema.TranscriptEntry, 0, len(rec.History))
	for _, e := range rec.History {
		history = append(history, entschema.TranscriptEntry{
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
	}

	err := r.client.Transcript.Create().
		SetKey(rec.Key).
		SetSessionID(rec.SessionID).
		SetTopic(rec.Topic).
		SetDifficulty(rec.Difficulty).
		SetHistory(history).
		SetScore(rec.Score).
		SetMaxScore(rec.MaxScore).
		OnConflictColumns(transcript.FieldKey).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save transcript: %w", err)
	}
	return nil
}

func (r *transcriptRepo) Load(ctx context.Context, key string) (*TranscriptRecord, error) {
	t, err := r.client.Transcript.Query().
		Where(transcript.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load transcript: %w", err)
	}

	history := make([]TranscriptEntry, 0, len(t.History))
	for _, e := range t.History {
		history = append(history, TranscriptEntry{
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
	}

	return &TranscriptRecord{
		Key:        t.Key,
		SessionID:  t.SessionID,
		Topic:      t.Topic,
		Difficulty: t.Difficulty,
		History:    history,
		Score:      t.Score,
		MaxScore:   t.MaxScore,
		SavedAt:    t.SavedAt,
	}, nil
}

func (r *transcriptRepo) Delete(ctx context.Context, key string) error {
	_, err := r.client.Transcript.Delete().
		Where(transcript.Key(key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete transcript: %w", err)
	}
	return nil
}
