package cmd

import (
	"fmt"
	"os"

	"github.com/abelldev/huntlog/internal/snapshotio"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the journal with a previously exported JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
		state, err := snapshotio.Import(raw)
		if err != nil {
			return fmt.Errorf("import %s: %w", args[0], err)
		}

		j, st, err := openJournal(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := j.ReplaceState(cmd.Context(), state); err != nil {
			return fmt.Errorf("replace journal: %w", err)
		}
		fmt.Printf("Imported journal from %s (total XP %d)\n", args[0], state.TotalXP)
		return nil
	},
}
