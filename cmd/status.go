package cmd

import (
	"fmt"

	"github.com/abelldev/huntlog/internal/stats"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show hunter standing and mission statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		j, st, err := openJournal(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		state := j.State()
		summary := stats.Compute(state)
		progress := state.Level()

		fmt.Printf("Rank      %s\n", summary.Rank)
		fmt.Printf("Level     %d (%d / %d XP)\n", progress.Level, progress.CurrentXP, progress.RequiredXP)
		fmt.Printf("Total XP  %d\n", summary.TotalXP)
		fmt.Printf("Missions  %d completed, %d failed, %d pending\n",
			summary.Completed, summary.Failed, summary.Pending)
		if summary.Completed+summary.Failed > 0 {
			fmt.Printf("Rate      %.0f%%\n", summary.CompletionRate()*100)
		}
		fmt.Printf("Severity  %s\n", state.Severity.DisplayName())
		if state.ConsecutiveFailures > 0 {
			fmt.Printf("Streak    %d consecutive failures\n", state.ConsecutiveFailures)
		}
		if summary.BlockedDays > 0 {
			fmt.Printf("Blocked   %d days\n", summary.BlockedDays)
		}
		return nil
	},
}
