package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/avani/mathflow/internal/progress"
	"github.com/avani/mathflow/internal/store"
	"github.com/spf13/cobra"
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show the most recent quiz attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
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
		attempts, err := s.Ledger().ByUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("query attempts: %w", err)
		}

		recent := progress.RecentAttempts(attempts, limit)
		if len(recent) == 0 {
			fmt.Printf("No attempts recorded for %q yet.\n", userID)
			return nil
		}

		fmt.Printf("%-19s  %-24s  %3s  %7s  %6s  %6s\n",
			"Completed", "Lesson", "#", "Score", "Result", "Time")
		fmt.Println(strings.Repeat("─", 76))

		for _, ra := range recent {
			title := ra.LessonTitle
			if title == "" {
				title = ra.LessonID
			}
			result := "fail"
			if ra.Passed {
				result = "pass"
			}
			fmt.Printf("%-19s  %-24s  %3d  %2d/%-4d  %6s  %5ds\n",
				ra.CompletedAt.Local().Format("2006-01-02 15:04:05"),
				truncate(title, 24),
				ra.AttemptNumber,
				ra.Score, ra.MaxScore,
				result,
				ra.TimeSpentSecs,
			)
		}
		return nil
	},
}

func init() {
	recentCmd.Flags().IntP("limit", "n", 10, "Number of attempts to show")
}
