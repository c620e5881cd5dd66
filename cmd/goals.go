package cmd

import (
	"fmt"

	"github.com/theirongolddev/spendwise/internal/cli"
	"github.com/theirongolddev/spendwise/internal/config"

	"github.com/spf13/cobra"
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Savings goal progress and plans",
	RunE:  runGoals,
}

func init() {
	rootCmd.AddCommand(goalsCmd)
}

func runGoals(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	goals := s.state.Snapshot().Goals
	if len(goals) == 0 {
		fmt.Println("\n  No savings goals configured.")
		fmt.Printf("  Add [[goals]] entries to %s.\n", config.ConfigPath())
		return nil
	}

	rows := make([][]string, 0, len(goals))
	for _, gp := range goals {
		plan := fmt.Sprintf("%s/mo  %s/wk", cli.FormatMoney(gp.MonthlyNeeded), cli.FormatMoney(gp.WeeklyNeeded))
		switch {
		case gp.Remaining == 0:
			plan = "reached"
		case gp.Overdue:
			plan = "overdue"
		}
		rows = append(rows, []string{
			gp.Goal.Title,
			fmt.Sprintf("%s / %s", cli.FormatMoney(gp.Goal.Current), cli.FormatMoney(gp.Goal.Target)),
			cli.RenderProgressBar(gp.Percent, 15, false) + " " + cli.FormatPercent(gp.Percent),
			cli.FormatMoney(gp.Remaining),
			gp.Goal.Deadline.Format("2006-01-02"),
			plan,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Savings Goals",
		Headers: []string{"Goal", "Saved", "Progress", "Remaining", "Deadline", "Plan"},
		Rows:    rows,
	}))
	return nil
}
