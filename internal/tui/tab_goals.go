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

func (a App) renderGoalsTab(cw int) string {
	t := theme.Active
	goals := a.snap.Goals

	if len(goals) == 0 {
		muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
		return components.ContentCard("Savings Goals", muted.Render("No goals configured. Add [[goals]] to your config."), cw)
	}

	var b strings.Builder
	for i, gp := range goals {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(components.ContentCard(gp.Goal.Title, renderGoalBody(gp, components.CardInnerWidth(cw)), cw))
	}
	return b.String()
}

func renderGoalBody(gp model.GoalProgress, w int) string {
	t := theme.Active

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)

	var b strings.Builder
	b.WriteString(valueStyle.Render(fmt.Sprintf("%s of %s", cli.FormatMoney(gp.Goal.Current), cli.FormatMoney(gp.Goal.Target))))
	b.WriteString("\n")
	b.WriteString(components.ProgressBar(gp.Percent/100, max(w-6, 10)))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%.0f%% complete • %s remaining", gp.Percent, cli.FormatMoney(gp.Remaining))))
	b.WriteString("\n")

	deadline := gp.Goal.Deadline.Format("Jan 2, 2006")
	switch {
	case gp.Remaining == 0:
		b.WriteString(mutedStyle.Render("Reached. Deadline " + deadline))
	case gp.Overdue:
		b.WriteString(warnStyle.Render(fmt.Sprintf("Deadline %s has passed, %s still to save", deadline, cli.FormatMoney(gp.Remaining))))
	default:
		b.WriteString(mutedStyle.Render(fmt.Sprintf("Deadline %s • save %s/month or %s/week",
			deadline, cli.FormatMoney(gp.MonthlyNeeded), cli.FormatMoney(gp.WeeklyNeeded))))
	}
	return b.String()
}
