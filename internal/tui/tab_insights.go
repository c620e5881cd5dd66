package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/spendwise/internal/cli"
	"github.com/theirongolddev/spendwise/internal/model"
	"github.com/theirongolddev/spendwise/internal/tui/components"
	"github.com/theirongolddev/spendwise/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderInsightsTab(cw int) string {
	t := theme.Active
	snap := a.snap
	proj := snap.Projection
	var b strings.Builder

	dailyAvg := proj.Current / float64(proj.ElapsedDays)
	varianceColor := t.Green
	if proj.Overspend() {
		varianceColor = t.Red
	}

	cards := []components.Metric{
		{Label: "Spent So Far", Value: cli.FormatMoney(proj.Current), Delta: fmt.Sprintf("%d of %d days", proj.ElapsedDays, proj.PeriodDays)},
		{Label: "Daily Average", Value: cli.FormatMoney(dailyAvg)},
		{Label: "Projected Month-End", Value: cli.FormatMoney(proj.Projected), Color: varianceColor},
		{Label: "vs Budget", Value: signedMoney(proj.Variance), Delta: "of " + cli.FormatMoney(snap.Budget.Monthly), Color: varianceColor},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	inner := components.CardInnerWidth(cw)
	b.WriteString(components.ContentCard(
		fmt.Sprintf("Alerts (%d)", len(snap.Alerts)),
		renderAlertList(snap.Alerts, inner, 0),
		cw,
	))
	b.WriteString("\n")

	// Month-over-month trend
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	vals := make([]float64, len(snap.Trend))
	var tb strings.Builder
	for i, p := range snap.Trend {
		vals[i] = p.Amount
		tb.WriteString("\n")
		tb.WriteString(mutedStyle.Render(fmt.Sprintf("%-6s", p.Label)))
		tb.WriteString(valueStyle.Render(fmt.Sprintf("%12s", cli.FormatMoney(p.Amount))))
		if i > 0 {
			tb.WriteString(mutedStyle.Render("  " + cli.FormatDelta(p.Amount, snap.Trend[i-1].Amount)))
		}
	}
	trend := components.Sparkline(vals, t.Blue) + tb.String()
	b.WriteString(components.ContentCard("Spending Trend", trend, cw))

	return b.String()
}

// renderAlertList renders alerts one per line in generation order.
// limit <= 0 shows all.
func renderAlertList(alerts []model.Alert, w, limit int) string {
	t := theme.Active

	if len(alerts) == 0 {
		ok := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
		return ok.Render("✓ Everything is within budget")
	}

	shown := alerts
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}

	var b strings.Builder
	for i, al := range shown {
		if i > 0 {
			b.WriteString("\n")
		}
		style := severityStyle(al.Severity)
		tag := "MED "
		if al.Severity == model.SeverityHigh {
			tag = "HIGH"
		}
		line := fmt.Sprintf("%s %s %s", tag, padVisual(al.Icon, 2), al.Message)
		b.WriteString(style.Render(cli.Truncate(line, w)))
	}
	if len(shown) < len(alerts) {
		more := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
		b.WriteString("\n")
		b.WriteString(more.Render(fmt.Sprintf("+%d more on the Insights tab", len(alerts)-len(shown))))
	}
	return b.String()
}

func signedMoney(v float64) string {
	if v > 0 {
		return "+" + cli.FormatMoney(v)
	}
	return cli.FormatMoney(v)
}
