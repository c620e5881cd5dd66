package pipeline

import (
	"math"
	"time"

	"github.com/theirongolddev/spendwise/internal/model"
)

const daysPerMonth = 30

// PlanGoal computes progress toward a goal and the savings rate needed to
// reach it by its deadline. Months are counted as 30 days.
func PlanGoal(goal model.Goal, now time.Time) model.GoalProgress {
	gp := model.GoalProgress{Goal: goal}

	if goal.Target > 0 {
		gp.Percent = math.Min(goal.Current/goal.Target*100, 100)
	} else {
		gp.Percent = 100
	}
	gp.Remaining = math.Max(goal.Target-goal.Current, 0)

	days := goal.Deadline.Sub(now).Hours() / 24
	if days <= 0 {
		gp.Overdue = gp.Remaining > 0
		gp.MonthlyNeeded = gp.Remaining
		gp.WeeklyNeeded = gp.Remaining
		return gp
	}

	gp.MonthsLeft = days / daysPerMonth
	gp.MonthlyNeeded = gp.Remaining / math.Max(gp.MonthsLeft, 1.0/daysPerMonth)
	gp.WeeklyNeeded = gp.Remaining / math.Max(days/7, 1.0/7)
	return gp
}

// PlanGoals plans every goal in order.
func PlanGoals(goals []model.Goal, now time.Time) []model.GoalProgress {
	out := make([]model.GoalProgress, 0, len(goals))
	for _, g := range goals {
		out = append(out, PlanGoal(g, now))
	}
	return out
}
