package cmd

import (
	"fmt"

	"github.com/theirongolddev/spendwise/internal/categorize"
	"github.com/theirongolddev/spendwise/internal/cli"
	"github.com/theirongolddev/spendwise/internal/pipeline"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Monthly spending summary against the budget",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	snap := s.state.Snapshot()
	summary := snap.Summary
	proj := snap.Projection

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("SPENDWISE  %s", cli.FormatMonth(summary.Month))))
	fmt.Println()

	if summary.Count == 0 {
		fmt.Println("  No expenses recorded this month.")
		fmt.Println("  Add one with `spendwise add --amount 12.50 --description \"lunch\"`.")
		fmt.Println()
	}

	rows := [][]string{
		{"Monthly Budget", cli.FormatMoney(snap.Budget.Monthly)},
		{"Spent", fmt.Sprintf("%s  (%s)", cli.FormatMoney(summary.Total),
			cli.FormatPercent(summary.Total/snap.Budget.Monthly*100))},
		{"Remaining", cli.FormatMoney(snap.Remaining)},
		{"Expenses", cli.FormatNumber(int64(summary.Count))},
		{"---"},
		{"Elapsed", fmt.Sprintf("%d of %d days", proj.ElapsedDays, proj.PeriodDays)},
		{"Projected", cli.FormatMoney(proj.Projected)},
		{"vs Budget", signedMoney(proj.Variance)},
		{"---"},
		{"Alerts", fmt.Sprintf("%d", len(snap.Alerts))},
	}
	if n := len(snap.Trend); n > 1 {
		rows = append(rows, []string{"Trend", fmt.Sprintf("%s  %s vs %s",
			cli.RenderSparkline(trendValues(snap.Trend)),
			cli.FormatDelta(snap.Trend[n-1].Amount, snap.Trend[n-2].Amount),
			snap.Trend[n-2].Label)})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	// Category breakdown over every recorded expense
	spending := snap.Spending
	var peak float64
	for _, cs := range spending.ByCategory {
		peak = max(peak, cs.Spent)
	}
	fmt.Println()
	for _, cs := range spending.ByCategory {
		if cs.Count == 0 {
			continue
		}
		label := fmt.Sprintf("%s %s", categorize.Icon(cs.Category), cs.Category)
		fmt.Printf("%s  %s\n",
			cli.RenderHorizontalBar(label, cs.Spent, peak, 18, 30),
			cli.FormatPercent(pipeline.Share(cs, spending.Total)*100))
	}
	fmt.Println()

	return nil
}
