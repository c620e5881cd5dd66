package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/spendwise/internal/categorize"
	"github.com/theirongolddev/spendwise/internal/cli"
	"github.com/theirongolddev/spendwise/internal/tui/components"
	"github.com/theirongolddev/spendwise/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderBudgetTab(cw int) string {
	t := theme.Active
	snap := a.snap
	var b strings.Builder

	inner := components.CardInnerWidth(cw)
	const labelW = 18
	const tailW = 30 // percentage + amounts
	barW := max(inner-labelW-tailW, 10)

	var rows strings.Builder
	for i, cs := range snap.Spending.ByCategory {
		if i > 0 {
			rows.WriteString("\n")
		}
		label := padVisual(categorize.Icon(cs.Category), 3) + string(cs.Category)
		amounts := fmt.Sprintf("%s / %s", cli.FormatMoney(cs.Spent), cli.FormatMoney(cs.Ceiling))
		rows.WriteString(components.CategoryBar(label, cs.Percent, amounts, labelW, barW))
	}
	b.WriteString(components.ContentCard("Category Budgets", rows.String(), cw))
	b.WriteString("\n")

	// Budget vs actual
	headStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	cellStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	const catW, numW = 16, 12
	var tbl strings.Builder
	tbl.WriteString(headStyle.Render(fmt.Sprintf("%-*s%*s%*s%*s  %s", catW, "Category", numW, "Budget", numW, "Spent", numW, "Left", "Status")))
	for _, cs := range snap.Spending.ByCategory {
		status := "on track"
		switch {
		case cs.Percent > 100:
			status = "over"
		case cs.Percent > 80:
			status = "near limit"
		}
		statusStyle := lipgloss.NewStyle().Foreground(components.BudgetColor(cs.Percent)).Background(t.Surface)

		tbl.WriteString("\n")
		tbl.WriteString(cellStyle.Render(fmt.Sprintf("%-*s%*s%*s%*s  ", catW, cs.Category,
			numW, cli.FormatMoney(cs.Ceiling),
			numW, cli.FormatMoney(cs.Spent),
			numW, cli.FormatMoney(cs.Ceiling-cs.Spent))))
		tbl.WriteString(statusStyle.Render(status))
	}
	tbl.WriteString("\n")
	tbl.WriteString(mutedStyle.Render(fmt.Sprintf("%-*s%*s%*s%*s", catW, "Total",
		numW, cli.FormatMoney(snap.Budget.Monthly),
		numW, cli.FormatMoney(snap.Spending.Total),
		numW, cli.FormatMoney(snap.Budget.Monthly-snap.Spending.Total))))

	b.WriteString(components.ContentCard("Budget vs Actual", tbl.String(), cw))

	return b.String()
}
