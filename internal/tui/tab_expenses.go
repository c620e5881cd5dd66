package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/spendwise/internal/categorize"
	"github.com/theirongolddev/spendwise/internal/cli"
	"github.com/theirongolddev/spendwise/internal/model"
	"github.com/theirongolddev/spendwise/internal/pipeline"
	"github.com/theirongolddev/spendwise/internal/tui/components"
	"github.com/theirongolddev/spendwise/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// visibleExpenses returns the expenses the list shows: search matches when
// a query is set, otherwise the most recent entries, newest first.
func (a App) visibleExpenses() []model.Expense {
	all := a.state.Expenses()
	if a.exp.searchQuery != "" {
		return pipeline.Search(all, a.exp.searchQuery)
	}
	return pipeline.Recent(all, recentLimit)
}

func (a App) renderExpensesTab(cw int) string {
	widths := []int{cw, cw}
	if !a.isCompactLayout() {
		widths = components.LayoutRow(cw, 5)
		widths = []int{widths[0] + widths[1] + widths[2], widths[3] + widths[4]}
	}

	list := a.renderExpenseList(widths[0])
	breakdown := a.renderCategoryBreakdown(widths[1])

	if a.isCompactLayout() {
		return list + "\n" + breakdown
	}
	return components.CardRow([]string{list, breakdown})
}

func (a App) renderExpenseList(w int) string {
	t := theme.Active
	expenses := a.visibleExpenses()

	title := "Recent Expenses"
	if a.exp.searchQuery != "" {
		title = fmt.Sprintf("Search \"%s\" (%d)", a.exp.searchQuery, len(expenses))
	}

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	if len(expenses) == 0 {
		return components.ContentCard(title, mutedStyle.Render("No expenses found"), w)
	}

	inner := components.CardInnerWidth(w)
	const (
		iconW   = 3
		catW    = 15
		dateW   = 7
		amountW = 11
		autoW   = 5
	)
	descW := max(inner-iconW-catW-dateW-amountW-autoW, 10)

	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	amountStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	autoStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for i, e := range expenses {
		if i > 0 {
			b.WriteString("\n")
		}
		auto := ""
		if e.Automated {
			auto = "auto"
		}
		b.WriteString(textStyle.Render(padVisual(categorize.Icon(e.Category), iconW)))
		b.WriteString(textStyle.Render(fmt.Sprintf("%-*s", descW, cli.Truncate(e.Description, descW-1))))
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%-*s", catW, e.Category)))
		b.WriteString(dimStyle.Render(fmt.Sprintf("%-*s", dateW, cli.FormatDate(e.Date))))
		b.WriteString(amountStyle.Render(fmt.Sprintf("%*s", amountW, cli.FormatMoney(e.Amount))))
		b.WriteString(spaceStyle.Render(" "))
		b.WriteString(autoStyle.Render(fmt.Sprintf("%-*s", autoW-1, auto)))
	}

	return components.ContentCard(title, b.String(), w)
}

func (a App) renderCategoryBreakdown(w int) string {
	t := theme.Active
	summary := a.snap.Spending

	var spent []model.CategorySpend
	peak := 0.0
	for _, cs := range summary.ByCategory {
		if cs.Count == 0 {
			continue
		}
		spent = append(spent, cs)
		peak = max(peak, cs.Spent)
	}

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	if len(spent) == 0 {
		return components.ContentCard("By Category", mutedStyle.Render("Nothing spent this month"), w)
	}

	inner := components.CardInnerWidth(w)
	const labelW = 17
	const valueW = 16
	barW := max(inner-labelW-valueW, 4)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	barStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for i, cs := range spent {
		if i > 0 {
			b.WriteString("\n")
		}
		n := 0
		if peak > 0 && cs.Spent > 0 {
			n = min(int(cs.Spent/peak*float64(barW)), barW)
		}
		label := padVisual(categorize.Icon(cs.Category), 3) + string(cs.Category)
		b.WriteString(labelStyle.Render(padVisual(label, labelW)))
		b.WriteString(barStyle.Render(strings.Repeat("█", n)))
		b.WriteString(spaceStyle.Render(strings.Repeat(" ", barW-n)))
		value := fmt.Sprintf(" %s %s", cli.FormatCost(cs.Spent),
			cli.FormatPercent(pipeline.Share(cs, summary.Total)*100))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%*s", valueW, value)))
	}

	return components.ContentCard("By Category", b.String(), w)
}

// padVisual pads s with spaces to visual width w, measuring wide glyphs.
func padVisual(s string, w int) string {
	if gap := w - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
