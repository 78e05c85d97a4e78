package cmd

import (
	"fmt"

	"github.com/abelldev/huntlog/internal/engine"
	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <mission-id>",
	Short: "Mark a mission completed or failed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		j, st, err := openJournal(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		var outcome engine.Status
		switch mustString(cmd, "outcome") {
		case "completed", "complete":
			outcome = engine.StatusCompleted
		case "failed", "fail":
			outcome = engine.StatusFailed
		default:
			return fmt.Errorf("invalid --outcome %q: want completed or failed", mustString(cmd, "outcome"))
		}

		date := engine.Date(mustString(cmd, "date"))
		if date == "" {
			date = j.Today()
		} else if _, err := engine.ParseDate(string(date)); err != nil {
			return fmt.Errorf("invalid --date: %w", err)
		}

		res, err := j.ResolveMission(cmd.Context(), date, args[0], outcome)
		if err != nil {
			return err
		}
		if !res.Applied {
			fmt.Printf("No pending mission %s on %s; nothing changed\n", args[0], date)
			return nil
		}

		fmt.Printf("Mission %q %s", res.Mission.Title, res.Mission.Status.DisplayName())
		if res.XPDelta > 0 {
			fmt.Printf(", +%d XP", res.XPDelta)
		}
		if res.PenaltyApplied {
			fmt.Printf(" (failure-streak penalty applied)")
		}
		fmt.Println()
		if res.DaysBlocked > 0 {
			fmt.Printf("Failure %d in a row: %d days blocked until year's end\n",
				res.Streak, res.DaysBlocked)
		}
		return nil
	},
}

func init() {
	resolveCmd.Flags().String("date", "", "Mission date as YYYY-MM-DD (default today)")
	resolveCmd.Flags().String("outcome", "completed", "Resolution outcome: completed or failed")
}
