package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "question-gen", InputTokens: 100, OutputTokens: 50, LatencyMs: 800, Success: true, RequestBody: "[user]\nask me something"},
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "answer-eval", InputTokens: 200, OutputTokens: 80, LatencyMs: 1200, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "answer-eval", InputTokens: 150, OutputTokens: 0, LatencyMs: 400, Success: false, ErrorMessage: "rate limited"},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len(events) = %d, want 3", len(got))
	}

	// Newest first.
	if got[0].Purpose != "answer-eval" || got[0].Success {
		t.Errorf("first event = %+v, want the failed answer-eval", got[0].LLMRequestEventData)
	}
	if got[2].RequestBody != "[user]\nask me something" {
		t.Errorf("request body = %q, want the serialized prompt", got[2].RequestBody)
	}

	// Limit applies after ordering.
	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 1 || limited[0].ErrorMessage != "rate limited" {
		t.Errorf("limited query returned %+v", limited)
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "openai", Model: "gpt-5", Purpose: "recommendations",
		Success: true, ResponseBody: `{"studyRecommendations":"practice"}`,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	e, err := repo.GetLLMEvent(ctx, all[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil || e.ResponseBody != `{"studyRecommendations":"practice"}` {
		t.Errorf("got %+v, want the stored response body", e)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for a missing event ID")
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "question-gen", InputTokens: 100, OutputTokens: 40, LatencyMs: 600, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "question-gen", InputTokens: 120, OutputTokens: 60, LatencyMs: 1000, Success: true},
		{Provider: "openai", Model: "gpt-5", Purpose: "answer-eval", InputTokens: 300, OutputTokens: 100, LatencyMs: 900, Success: true},
	}
	for i, e := range data {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("len(byPurpose) = %d, want 2", len(byPurpose))
	}
	// Sorted by purpose: answer-eval, question-gen.
	qg := byPurpose[1]
	if qg.Purpose != "question-gen" || qg.Calls != 2 || qg.InputTokens != 220 || qg.OutputTokens != 100 {
		t.Errorf("question-gen usage = %+v", qg)
	}
	if qg.AvgLatencyMs != 800 {
		t.Errorf("avg latency = %d, want 800", qg.AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("len(byModel) = %d, want 2", len(byModel))
	}
	if byModel[0].Model != "claude-sonnet-4-5" || byModel[0].InputTokens != 220 {
		t.Errorf("model usage[0] = %+v", byModel[0])
	}
}

func TestSessionAndAnswerEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	sessionID := "b9f6d7a2-0000-4000-8000-000000000001"
	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: sessionID, Topic: "React", Difficulty: "Junior", Action: ActionStart,
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}

	answers := []AnswerEventData{
		{SessionID: sessionID, QuestionText: "What is JSX?", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: "a", SubmittedAnswer: "a", Correct: true, Points: 10, EstimatedLevel: "Junior"},
		{SessionID: sessionID, QuestionText: "Explain useEffect", SubmittedAnswer: "it runs side effects", Correct: false, Points: 0, EstimatedLevel: "Junior"},
	}
	for i, a := range answers {
		if err := repo.AppendAnswerEvent(ctx, a); err != nil {
			t.Fatalf("append answer %d: %v", i, err)
		}
	}

	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: sessionID, Topic: "React", Difficulty: "Junior", Action: ActionFinish,
		QuestionsAnswered: 2, Score: 10, MaxScore: 20, DurationSecs: 300,
	})
	if err != nil {
		t.Fatalf("append finish: %v", err)
	}

	summaries, err := repo.QuerySessionSummaries(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query summaries: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("len(summaries) = %d, want 1 (start events excluded)", len(summaries))
	}
	sum := summaries[0]
	if sum.SessionID != sessionID || sum.Score != 10 || sum.MaxScore != 20 || sum.QuestionsAnswered != 2 {
		t.Errorf("summary = %+v", sum)
	}

	acc, err := repo.SessionAccuracy(ctx, sessionID)
	if err != nil {
		t.Fatalf("accuracy: %v", err)
	}
	if acc != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", acc)
	}

	// Unknown session has no answers.
	acc, err = repo.SessionAccuracy(ctx, "no-such-session")
	if err != nil {
		t.Fatalf("accuracy (empty): %v", err)
	}
	if acc != 0 {
		t.Errorf("accuracy = %v, want 0", acc)
	}
}

func TestTranscriptRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.TranscriptRepo()
	ctx := context.Background()

	// Nothing stored yet.
	rec, err := repo.Load(ctx, DefaultTranscriptKey)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil transcript when none exist")
	}

	saved := &TranscriptRecord{
		Key:        DefaultTranscriptKey,
		SessionID:  "b9f6d7a2-0000-4000-8000-000000000002",
		Topic:      "JavaScript",
		Difficulty: "Mid",
		History: []TranscriptEntry{
			{
				Question:            "What is a closure in JavaScript?",
				Answer:              "A function bundled with its lexical scope",
				Evaluation:          "Solid explanation.",
				Strengths:           "Clear definition.",
				AreasForImprovement: "Add an example.",
				EstimatedLevel:      "Mid",
				Points:              8,
			},
			{
				Question:      "What is the difference between let and var?",
				Options:       []string{"No difference", "let is block-scoped, var is function-scoped", "var is block-scoped, let is function-scoped", "let cannot be reassigned"},
				CorrectAnswer: "let is block-scoped, var is function-scoped",
				Answer:        "let is block-scoped, var is function-scoped",
				Evaluation:     "Correct.",
				Points:         10,
				EstimatedLevel: "Mid",
			},
		},
		Score:    18,
		MaxScore: 20,
	}
	if err := repo.Save(ctx, saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx, DefaultTranscriptKey)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil {
		t.Fatal("expected non-nil transcript")
	}
	if got.Topic != "JavaScript" || got.Difficulty != "Mid" || got.Score != 18 || got.MaxScore != 20 {
		t.Errorf("loaded header = %+v", got)
	}
	if len(got.History) != 2 {
		t.Fatalf("len(history) = %d, want 2", len(got.History))
	}
	if got.History[0].Question != saved.History[0].Question {
		t.Errorf("history[0].Question = %q", got.History[0].Question)
	}
	if got.History[1].CorrectAnswer != saved.History[1].CorrectAnswer {
		t.Errorf("history[1].CorrectAnswer = %q", got.History[1].CorrectAnswer)
	}
	if len(got.History[1].Options) != 4 {
		t.Errorf("history[1] options = %v", got.History[1].Options)
	}
	if got.SavedAt.IsZero() {
		t.Error("expected SavedAt to be set")
	}
}

func TestTranscriptUpsertReplacesExisting(t *testing.T) {
	s := openTestStore(t)
	repo := s.TranscriptRepo()
	ctx := context.Background()

	first := &TranscriptRecord{
		Key: DefaultTranscriptKey, SessionID: "s1", Topic: "React", Difficulty: "Junior",
		History: []TranscriptEntry{{Question: "q1", Answer: "a1", Points: 10}},
		Score:   10, MaxScore: 10,
	}
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("save first: %v", err)
	}

	second := &TranscriptRecord{
		Key: DefaultTranscriptKey, SessionID: "s2", Topic: "Testing", Difficulty: "Senior",
		History: []TranscriptEntry{{Question: "q2", Answer: "a2", Points: 0}},
		Score:   0, MaxScore: 10,
	}
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	got, err := repo.Load(ctx, DefaultTranscriptKey)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.SessionID != "s2" || got.Topic != "Testing" {
		t.Errorf("expected second save to replace first, got %+v", got)
	}

	count, err := s.Client().Transcript.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("transcript count = %d, want 1", count)
	}
}

func TestTranscriptPerSessionKeys(t *testing.T) {
	s := openTestStore(t)
	repo := s.TranscriptRepo()
	ctx := context.Background()

	for _, id := range []string{"s1", "s2"} {
		rec := &TranscriptRecord{
			Key: SessionKey(id), SessionID: id, Topic: "React", Difficulty: "Junior",
			History: []TranscriptEntry{{Question: "q", Answer: "a"}},
		}
		if err := repo.Save(ctx, rec); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}

	got, err := repo.Load(ctx, SessionKey("s1"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil || got.SessionID != "s1" {
		t.Errorf("loaded %+v, want session s1", got)
	}
}

func TestTranscriptDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.TranscriptRepo()
	ctx := context.Background()

	rec := &TranscriptRecord{
		Key: DefaultTranscriptKey, SessionID: "s1", Topic: "React", Difficulty: "Junior",
		History: []TranscriptEntry{{Question: "q", Answer: "a"}},
	}
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := repo.Delete(ctx, DefaultTranscriptKey); err != nil {
		t.Fatalf("delete: %v", err)
	}

	got, err := repo.Load(ctx, DefaultTranscriptKey)
	if err != nil {
		t.Fatalf("load after delete: %v", err)
	}
	if got != nil {
		t.Error("expected nil transcript after delete")
	}

	// Deleting a missing key is not an error.
	if err := repo.Delete(ctx, "no-such-key"); err != nil {
		t.Errorf("delete missing key: %v", err)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"session_events", "answer_events", "llm_request_events", "transcripts"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}
