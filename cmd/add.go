package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/spendwise/internal/categorize"
	"github.com/theirongolddev/spendwise/internal/cli"

	"github.com/spf13/cobra"
)

var (
	flagAmount      string
	flagDescription string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record an expense, categorized from its description",
	Example: `  spendwise add --amount 12.99 --description "Coffee at campus cafe"
  spendwise add -a 850 -d "Monthly rent" --db ~/spendwise.db`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&flagAmount, "amount", "a", "", "Amount spent")
	addCmd.Flags().StringVarP(&flagDescription, "description", "d", "", "What it was for")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	e, err := s.state.AddExpense(flagAmount, flagDescription)
	if err != nil {
		return fmt.Errorf("adding expense: %w", err)
	}

	fmt.Printf("\n  Added %s %s  %s %s\n", cli.FormatMoney(e.Amount), e.Description,
		categorize.Icon(e.Category), e.Category)

	snap := s.state.Snapshot()
	for _, al := range snap.Alerts {
		if al.Category == e.Category {
			fmt.Printf("  %s\n", al.Message)
		}
	}

	if s.journal == nil && !quiet() {
		fmt.Fprintln(os.Stderr, "  Not persisted: pass --db or set [storage] path to keep expenses.")
	}
	fmt.Println()
	return nil
}
