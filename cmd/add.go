package cmd

import (
	"fmt"

	"github.com/abelldev/huntlog/internal/engine"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a mission without opening the TUI",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		j, st, err := openJournal(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		date := engine.Date(mustString(cmd, "date"))
		if date == "" {
			date = j.Today()
		} else if _, err := engine.ParseDate(string(date)); err != nil {
			return fmt.Errorf("invalid --date: %w", err)
		}

		mission, err := j.AddMission(cmd.Context(), engine.AddMissionInput{
			Date:               date,
			Title:              args[0],
			Description:        mustString(cmd, "desc"),
			Tier:               engine.Tier(mustString(cmd, "tier")),
			CompletionCriteria: mustString(cmd, "criteria"),
			RewardText:         mustString(cmd, "reward"),
			PunishmentText:     mustString(cmd, "punishment"),
			Time:               mustString(cmd, "time"),
		})
		if err != nil {
			return err
		}

		fmt.Printf("Added %s mission %q on %s (id %s)\n",
			mission.Tier.DisplayName(), mission.Title, mission.Date, mission.ID)
		return nil
	},
}

func mustString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func init() {
	addCmd.Flags().String("date", "", "Mission date as YYYY-MM-DD (default today)")
	addCmd.Flags().String("tier", string(engine.TierSuits), "Mission tier: winchester, salvatores, waynes, or suits")
	addCmd.Flags().String("desc", "", "Mission description")
	addCmd.Flags().String("criteria", "", "Completion criteria")
	addCmd.Flags().String("reward", "", "Reward on completion")
	addCmd.Flags().String("punishment", "", "Punishment on failure")
	addCmd.Flags().String("time", "", "Optional time of day as HH:MM")
}
