package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/spendwise/internal/cli"
	"github.com/theirongolddev/spendwise/internal/tui/components"
	"github.com/theirongolddev/spendwise/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderDashboardTab(cw int) string {
	t := theme.Active
	snap := a.snap
	proj := snap.Projection
	var b strings.Builder

	// Row 1: Metric cards
	spentPct := snap.Summary.Total / snap.Budget.Monthly * 100

	remainingDelta := "over budget"
	remainingColor := t.Red
	if snap.Remaining >= 0 {
		remainingColor = t.Green
		remainingDelta = "left this month"
		if daysLeft := proj.PeriodDays - proj.ElapsedDays; daysLeft > 0 {
			remainingDelta = cli.FormatMoney(snap.Remaining/float64(daysLeft)) + "/day left"
		}
	}

	projColor := t.Green
	projDelta := cli.FormatMoney(-proj.Variance) + " under"
	if proj.Overspend() {
		projColor = t.Red
		projDelta = cli.FormatMoney(proj.Variance) + " over"
	}

	cards := []components.Metric{
		{Label: "Monthly Budget", Value: cli.FormatMoney(snap.Budget.Monthly), Delta: fmt.Sprintf("%d categories", len(snap.Budget.Categories))},
		{Label: "Spent This Month", Value: cli.FormatMoney(snap.Summary.Total), Delta: cli.FormatPercent(spentPct) + " of budget", Color: components.BudgetColor(spentPct)},
		{Label: "Remaining", Value: cli.FormatMoney(snap.Remaining), Delta: remainingDelta, Color: remainingColor},
		{Label: "Projected", Value: cli.FormatMoney(proj.Projected), Delta: projDelta, Color: projColor},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Trend chart + alerts
	halves := components.LayoutRow(cw, 2)
	if a.isCompactLayout() {
		halves = []int{cw, cw}
	}

	vals := make([]float64, len(snap.Trend))
	labels := make([]string, len(snap.Trend))
	for i, p := range snap.Trend {
		vals[i] = p.Amount
		labels[i] = p.Label
	}
	trendCard := components.ContentCard(
		"Monthly Spending",
		components.BarChart(vals, labels, t.Blue, snap.Budget.Monthly, components.CardInnerWidth(halves[0]), 8),
		halves[0],
	)
	alertsCard := components.ContentCard(
		fmt.Sprintf("Alerts (%d)", len(snap.Alerts)),
		renderAlertList(snap.Alerts, components.CardInnerWidth(halves[1]), 6),
		halves[1],
	)

	if a.isCompactLayout() {
		b.WriteString(trendCard)
		b.WriteString("\n")
		b.WriteString(alertsCard)
	} else {
		b.WriteString(components.CardRow([]string{trendCard, alertsCard}))
	}
	b.WriteString("\n")

	// Row 3: Goals at a glance
	if len(snap.Goals) > 0 {
		inner := components.CardInnerWidth(cw)
		labelW := 0
		for _, gp := range snap.Goals {
			labelW = max(labelW, lipgloss.Width(gp.Goal.Title))
		}
		barW := max(inner-labelW-8, 10)

		labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
		spaceStyle := lipgloss.NewStyle().Background(t.Surface)

		var gb strings.Builder
		for i, gp := range snap.Goals {
			if i > 0 {
				gb.WriteString("\n")
			}
			gb.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", labelW, gp.Goal.Title)))
			gb.WriteString(spaceStyle.Render(" "))
			gb.WriteString(components.ProgressBar(gp.Percent/100, barW))
		}
		b.WriteString(components.ContentCard("Savings Goals", gb.String(), cw))
	}

	return b.String()
}
