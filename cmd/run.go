package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jortega/prepdeck/internal/app"
	"github.com/jortega/prepdeck/internal/evaluate"
	"github.com/jortega/prepdeck/internal/llm"
	"github.com/jortega/prepdeck/internal/questions"
	"github.com/jortega/prepdeck/internal/recommend"
	"github.com/jortega/prepdeck/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	opts, err := buildServices(cmd, st)
	if err != nil {
		return err
	}
	return app.Run(opts)
}

// buildServices wires the question source, evaluator, and recommendation
// engine. With --mock, PREPDECK_MOCK, or no configured LLM provider the
// built-in mock services are used so the app works fully offline.
func buildServices(cmd *cobra.Command, st *store.Store) (app.Options, error) {
	opts := app.Options{
		EventRepo:      st.EventRepo(),
		TranscriptRepo: st.TranscriptRepo(),
	}

	if !mockRequested(cmd) {
		provider, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo())
		if err == nil {
			opts.QuestionSource = questions.New(provider, questions.DefaultConfig())
			opts.Evaluator = evaluate.New(provider, evaluate.DefaultConfig())
			opts.Recommender = recommend.New(provider, recommend.DefaultConfig())
			return opts, nil
		}
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Running with built-in mock interview content.")
	}

	opts.QuestionSource = questions.NewMockSource(nil)
	opts.Evaluator = evaluate.NewMockEvaluator(nil)
	opts.Recommender = recommend.NewMockEngine()
	return opts, nil
}

func mockRequested(cmd *cobra.Command) bool {
	if mock, _ := cmd.Flags().GetBool("mock"); mock {
		return true
	}
	if v := os.Getenv("PREPDECK_MOCK"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return false
}
