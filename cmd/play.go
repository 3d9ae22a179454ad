package cmd

import (
	"context"
	"fmt"

	"github.com/jortega/prepdeck/internal/app"
	"github.com/jortega/prepdeck/internal/store"
	"github.com/jortega/prepdeck/internal/topics"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a mock interview",
	RunE: func(cmd *cobra.Command, args []string) error {
		startTopic, startDifficulty, err := parseStartFlags(cmd)
		if err != nil {
			return err
		}

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
		opts.StartTopic = startTopic
		opts.StartDifficulty = startDifficulty
		return app.Run(opts)
	},
}

// parseStartFlags validates the optional direct-start parameters. Both must
// be given together so the interview never starts half-configured.
func parseStartFlags(cmd *cobra.Command) (topics.Topic, topics.Difficulty, error) {
	topicFlag, _ := cmd.Flags().GetString("topic")
	difficultyFlag, _ := cmd.Flags().GetString("difficulty")

	if topicFlag == "" && difficultyFlag == "" {
		return "", "", nil
	}
	if topicFlag == "" || difficultyFlag == "" {
		return "", "", fmt.Errorf("--topic and --difficulty must be used together")
	}

	topic, err := topics.ParseTopic(topicFlag)
	if err != nil {
		return "", "", err
	}
	difficulty, err := topics.ParseDifficulty(difficultyFlag)
	if err != nil {
		return "", "", err
	}
	return topic, difficulty, nil
}

func init() {
	playCmd.Flags().String("topic", "", "Skip the picker and interview on this tech stack (React, JavaScript, HTML/CSS, Testing, Random)")
	playCmd.Flags().String("difficulty", "", "Skip the picker and interview at this level (Junior, Mid, Senior)")

	// Context for provider initialization.
	playCmd.SetContext(context.Background())
}
