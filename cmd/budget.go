package cmd

import (
	"fmt"

	"github.com/theirongolddev/spendwise/internal/cli"

	"github.com/spf13/cobra"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Per-category spending against ceilings",
	RunE:  runBudget,
}

func init() {
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	snap := s.state.Snapshot()

	spending := snap.Spending
	rows := make([][]string, 0, len(spending.ByCategory)+2)
	for _, cs := range spending.ByCategory {
		rows = append(rows, []string{
			string(cs.Category),
			cli.FormatMoney(cs.Ceiling),
			cli.FormatMoney(cs.Spent),
			cli.FormatMoney(cs.Ceiling - cs.Spent),
			cli.FormatPercent(cs.Percent),
			cli.RenderProgressBar(cs.Percent, 20, true),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		"Total",
		cli.FormatMoney(snap.Budget.Monthly),
		cli.FormatMoney(spending.Total),
		cli.FormatMoney(snap.Budget.Monthly - spending.Total),
		cli.FormatPercent(spending.Total / snap.Budget.Monthly * 100),
		"",
	})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Budget  (all recorded expenses)",
		Headers: []string{"Category", "Budget", "Spent", "Left", "Used", ""},
		Rows:    rows,
	}))
	return nil
}
