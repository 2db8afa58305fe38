package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/avani/mathflow/internal/content"
	"github.com/avani/mathflow/internal/progress"
	"github.com/avani/mathflow/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")

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

		if len(attempts) == 0 {
			fmt.Printf("No attempts recorded for %q yet. Run `mathflow` to start practicing.\n", userID)
			return nil
		}

		overall := progress.Overall(attempts)
		fmt.Printf("Overall — %s\n", userID)
		fmt.Println(strings.Repeat("─", 64))
		fmt.Printf("Attempts:  %d (%d passed, %d failed)\n", overall.Attempts, overall.Passed, overall.Failed)
		fmt.Printf("Average:   %.2f%%\n", overall.AveragePercent)
		fmt.Printf("Time:      %dm %ds\n", overall.TimeSpentSecs/60, overall.TimeSpentSecs%60)

		if trend := progress.Trend(attempts, 3); trend != 0 {
			arrow := "improving"
			if trend < 0 {
				arrow = "declining"
			}
			fmt.Printf("Trend:     %+.2f%% (%s over the last 3 attempts)\n", trend, arrow)
		}

		fmt.Println()
		fmt.Println("By Lesson")
		fmt.Println(strings.Repeat("─", 64))
		fmt.Printf("%-24s  %8s  %7s  %7s  %6s\n", "Lesson", "Attempts", "Avg", "Best", "Passed")
		for _, ls := range progress.ByLesson(attempts) {
			title := ls.LessonID
			if l, err := content.GetLesson(ls.LessonID); err == nil {
				title = l.Title
			}
			fmt.Printf("%-24s  %8d  %6.1f%%  %6.1f%%  %6d\n",
				truncate(title, 24), ls.Attempts, ls.AveragePercent, ls.BestPercent, ls.Passed)
		}

		fmt.Println()
		fmt.Println("By Course")
		fmt.Println(strings.Repeat("─", 64))
		fmt.Printf("%-24s  %8s  %7s  %7s  %6s\n", "Course", "Attempts", "Lessons", "Avg", "Passed")
		for _, cs := range progress.ByCourse(attempts) {
			title := cs.Title
			if title == "" {
				title = cs.CourseID
			}
			fmt.Printf("%-24s  %8d  %7d  %6.1f%%  %6d\n",
				truncate(title, 24), cs.Attempts, cs.Lessons, cs.AveragePercent, cs.Passed)
		}

		return nil
	},
}
