package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/spendwise/internal/ledger"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the expense journal back to the sample month",
	RunE:  runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

func runReset(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if s.journal == nil {
		return errors.New("no journal configured; in-memory expenses already reset on every run")
	}

	if err := s.journal.Clear(); err != nil {
		return err
	}
	for _, e := range ledger.SampleExpenses() {
		if err := s.journal.SaveExpense(e); err != nil {
			return fmt.Errorf("seeding journal: %w", err)
		}
	}

	fmt.Printf("  Journal %s reset to %d sample expenses.\n", s.cfg.Storage.Path, len(ledger.SampleExpenses()))
	return nil
}
