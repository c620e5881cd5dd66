package cmd

import (
	"fmt"

	"github.com/theirongolddev/spendwise/internal/cli"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Month-end projection and budget alerts",
	RunE:  runInsights,
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}

func runInsights(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	snap := s.state.Snapshot()
	proj := snap.Projection

	fmt.Println()
	fmt.Println(cli.RenderTitle("INSIGHTS  " + cli.FormatMonth(snap.Summary.Month)))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Projection",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Spent so far", cli.FormatMoney(proj.Current)},
			{"Days elapsed", fmt.Sprintf("%d of %d", proj.ElapsedDays, proj.PeriodDays)},
			{"Daily average", cli.FormatMoney(proj.Current / float64(proj.ElapsedDays))},
			{"Projected month-end", cli.FormatMoney(proj.Projected)},
			{"vs Budget", signedMoney(proj.Variance)},
		},
	}))
	fmt.Println()

	if len(snap.Alerts) == 0 {
		fmt.Println("  No alerts. Everything is within budget.")
		fmt.Println()
		return nil
	}

	fmt.Printf("  %s\n", lipgloss.NewStyle().Bold(true).Foreground(cli.ColorAccent).Render("Alerts"))
	for _, al := range snap.Alerts {
		style := lipgloss.NewStyle().Foreground(cli.SeverityColor(al.Severity))
		fmt.Printf("  %s %s  %s\n", al.Icon, style.Render(fmt.Sprintf("%-6s", al.Severity)), al.Message)
	}
	fmt.Println()
	return nil
}
