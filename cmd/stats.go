package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/jortega/prepdeck/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show past interview results",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		summaries, err := s.EventRepo().QuerySessionSummaries(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}

		if len(summaries) == 0 {
			fmt.Println("No finished interviews yet.")
			return nil
		}

		fmt.Printf("%-19s  %-12s  %-8s  %-9s  %-9s  %s\n",
			"Date", "Topic", "Level", "Questions", "Score", "Duration")
		fmt.Println(strings.Repeat("─", 76))

		var totalScore, totalMax int
		for _, sum := range summaries {
			fmt.Printf("%-19s  %-12s  %-8s  %-9d  %4d/%-4d  %dm%02ds\n",
				sum.Timestamp.Local().Format("2006-01-02 15:04:05"),
				sum.Topic,
				sum.Difficulty,
				sum.QuestionsAnswered,
				sum.Score,
				sum.MaxScore,
				sum.DurationSecs/60,
				sum.DurationSecs%60,
			)
			totalScore += sum.Score
			totalMax += sum.MaxScore
		}

		fmt.Println(strings.Repeat("─", 76))
		if totalMax > 0 {
			fmt.Printf("%d interviews, overall %d/%d (%.0f%%)\n",
				len(summaries), totalScore, totalMax,
				100*float64(totalScore)/float64(totalMax))
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 20, "Number of interviews to show")
}
