package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe all missions and XP for the year",
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return fmt.Errorf("refusing to wipe the year without --yes")
		}

		j, st, err := openJournal(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := j.ResetYear(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Year reset; severity and view preferences kept")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}
