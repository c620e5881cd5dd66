package pipeline

import (
	"time"

	"github.com/theirongolddev/spendwise/internal/model"
)

const (
	// DefaultElapsedDays is the elapsed-day count of the sample month.
	DefaultElapsedDays = 13
	// PeriodDays is the fixed month length used for projection.
	PeriodDays = 30
)

// Project linearly extrapolates month-to-date spend to a periodDays month:
// projected = totalToDate / elapsedDays * periodDays. No smoothing or
// seasonality is applied, and elapsedDays is not guarded.
func Project(totalToDate float64, elapsedDays, periodDays int, monthlyCeiling float64) model.SpendingProjection {
	projected := totalToDate / float64(elapsedDays) * float64(periodDays)
	return model.SpendingProjection{
		Current:     totalToDate,
		Projected:   projected,
		Variance:    projected - monthlyCeiling,
		ElapsedDays: elapsedDays,
		PeriodDays:  periodDays,
	}
}

// ProjectMonth aggregates the month and projects its total.
func ProjectMonth(expenses []model.Expense, month time.Time, elapsedDays int, budget model.Budget) model.SpendingProjection {
	summary := Aggregate(expenses, month, budget)
	return Project(summary.Total, elapsedDays, PeriodDays, budget.Monthly)
}
