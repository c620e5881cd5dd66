package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/spendwise/internal/model"
)

func TestPlanGoal(t *testing.T) {
	now := day("2025-09-13")
	gp := PlanGoal(model.Goal{ID: 1, Title: "Emergency Fund", Target: 1000, Current: 350, Deadline: day("2025-12-31")}, now)

	assert.InDelta(t, 35.0, gp.Percent, 1e-9)
	assert.InDelta(t, 650.0, gp.Remaining, 1e-9)
	assert.InDelta(t, 109.0/30, gp.MonthsLeft, 1e-9)
	assert.InDelta(t, 650/(109.0/30), gp.MonthlyNeeded, 1e-9)
	assert.InDelta(t, 650/(109.0/7), gp.WeeklyNeeded, 1e-9)
	assert.False(t, gp.Overdue)
}

func TestPlanGoal_CapsAtHundred(t *testing.T) {
	gp := PlanGoal(model.Goal{Target: 100, Current: 250, Deadline: day("2026-01-01")}, day("2025-09-13"))
	assert.Equal(t, 100.0, gp.Percent)
	assert.Equal(t, 0.0, gp.Remaining)
	assert.Equal(t, 0.0, gp.MonthlyNeeded)
}

func TestPlanGoal_PastDeadline(t *testing.T) {
	gp := PlanGoal(model.Goal{Title: "Spring Break Trip", Target: 800, Current: 120, Deadline: day("2025-03-15")}, day("2025-09-13"))
	assert.True(t, gp.Overdue)
	assert.InDelta(t, 680.0, gp.MonthlyNeeded, 1e-9)
	assert.Equal(t, 0.0, gp.MonthsLeft)
}

func TestPlanGoal_ZeroTarget(t *testing.T) {
	gp := PlanGoal(model.Goal{Target: 0, Current: 0, Deadline: day("2026-01-01")}, day("2025-09-13"))
	assert.Equal(t, 100.0, gp.Percent)
	assert.False(t, gp.Overdue)
}

func TestPlanGoals_KeepsOrder(t *testing.T) {
	goals := []model.Goal{{ID: 3, Target: 1}, {ID: 1, Target: 1}}
	out := PlanGoals(goals, day("2025-09-13"))
	require.Len(t, out, 2)
	assert.Equal(t, 3, out[0].Goal.ID)
	assert.Equal(t, 1, out[1].Goal.ID)
}
