package cmd

import (
	"fmt"

	"github.com/theirongolddev/spendwise/internal/categorize"
	"github.com/theirongolddev/spendwise/internal/cli"
	"github.com/theirongolddev/spendwise/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	flagCategory string
	flagSearch   string
	flagLimit    int
)

var expensesCmd = &cobra.Command{
	Use:   "expenses",
	Short: "List expenses, newest first",
	RunE:  runExpenses,
}

func init() {
	expensesCmd.Flags().StringVarP(&flagCategory, "category", "c", "", "Filter to category")
	expensesCmd.Flags().StringVarP(&flagSearch, "search", "s", "", "Fuzzy search descriptions (ranked by match)")
	expensesCmd.Flags().IntVarP(&flagLimit, "limit", "l", 0, "Show at most this many (0 = all)")
	rootCmd.AddCommand(expensesCmd)
}

func runExpenses(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	all := s.state.Expenses()
	expenses := pipeline.FilterByCategory(all, flagCategory)
	if flagSearch != "" {
		expenses = pipeline.Search(expenses, flagSearch)
	} else {
		expenses = pipeline.Recent(expenses, len(expenses))
	}
	if flagLimit > 0 && len(expenses) > flagLimit {
		expenses = expenses[:flagLimit]
	}

	if len(expenses) == 0 {
		fmt.Println("\n  No matching expenses.")
		return nil
	}

	rows := make([][]string, 0, len(expenses)+2)
	var total float64
	for _, e := range expenses {
		auto := ""
		if e.Automated {
			auto = "auto"
		}
		rows = append(rows, []string{
			e.DateString(),
			cli.Truncate(e.Description, 40),
			categorize.Icon(e.Category) + " " + string(e.Category),
			auto,
			cli.FormatMoney(e.Amount),
		})
		total += e.Amount
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Total", fmt.Sprintf("%d expenses", len(expenses)), "", "", cli.FormatMoney(total)})

	title := "Expenses"
	if flagSearch != "" {
		title = fmt.Sprintf("Expenses matching %q", flagSearch)
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:    title,
		Headers:  []string{"Date", "Description", "Category", "", "Amount"},
		Rows:     rows,
		LeftCols: 4,
	}))
	return nil
}
