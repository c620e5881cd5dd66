package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/spendwise/internal/categorize"
	"github.com/theirongolddev/spendwise/internal/cli"
	"github.com/theirongolddev/spendwise/internal/model"

	"github.com/spf13/cobra"
)

var categorizeCmd = &cobra.Command{
	Use:   "categorize <description>",
	Short: "Show which category a description maps to",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCategorize,
}

func init() {
	rootCmd.AddCommand(categorizeCmd)
}

func runCategorize(_ *cobra.Command, args []string) error {
	desc := strings.Join(args, " ")
	c := categorize.Categorize(desc)

	fmt.Printf("  %s %s\n", categorize.Icon(c), c)
	if c == model.Other {
		fmt.Println("  No keyword matched.")
		return nil
	}

	lower := strings.ToLower(desc)
	for _, kw := range categorize.Keywords(c) {
		if strings.Contains(lower, kw) {
			fmt.Printf("  matched keyword %q\n", kw)
			break
		}
	}
	return nil
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories, their ceilings, and matching keywords",
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	budget := cfg.BudgetModel()

	cats := append(append([]model.Category(nil), model.Categories...), model.Other)
	rows := make([][]string, 0, len(cats))
	for _, c := range cats {
		ceiling := "-"
		if budget.HasCeiling(c) {
			ceiling = cli.FormatMoney(budget.Ceiling(c))
		}
		rows = append(rows, []string{
			categorize.Icon(c) + " " + string(c),
			ceiling,
			strings.Join(categorize.Keywords(c), ", "),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:    "Categories (first keyword match wins, top to bottom)",
		Headers:  []string{"Category", "Ceiling", "Keywords"},
		Rows:     rows,
		LeftCols: 1,
	}))
	return nil
}
