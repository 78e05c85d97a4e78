package cmd

import (
	"fmt"

	"github.com/abelldev/huntlog/internal/app"
	"github.com/abelldev/huntlog/internal/journal"
	"github.com/abelldev/huntlog/internal/store"
	"github.com/spf13/cobra"
)

// openJournal opens the store and restores the journal from it. The caller
// owns the returned store and must Close it.
func openJournal(cmd *cobra.Command) (*journal.Journal, *store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	j, err := journal.Open(cmd.Context(), journal.Options{
		Snapshots: st.Snapshots(),
		Events:    st.Events(),
	})
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("open journal: %w", err)
	}
	return j, st, nil
}

// runApp opens the store, restores the journal, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	j, st, err := openJournal(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	return app.Run(j)
}
