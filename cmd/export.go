package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/abelldev/huntlog/internal/snapshotio"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the journal as JSON to a file or stdout",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		j, st, err := openJournal(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		data, err := snapshotio.Export(j.State(), time.Now())
		if err != nil {
			return fmt.Errorf("export journal: %w", err)
		}

		if len(args) == 0 {
			_, err := os.Stdout.Write(data)
			return err
		}
		if err := os.WriteFile(args[0], data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", args[0], err)
		}
		fmt.Printf("Exported journal to %s\n", args[0])
		return nil
	},
}
