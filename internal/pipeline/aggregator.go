// Package pipeline holds the pure, memoryless computations over expenses:
// monthly aggregation, projection, alerts, and goal planning.
package pipeline

import (
	"sort"
	"time"

	"github.com/theirongolddev/spendwise/internal/model"
)

// Aggregate computes per-category and total spend for the calendar month
// containing month. Every budgeted category gets a row, spent or not; spent
// categories without a ceiling (e.g. Other) are appended after them.
// Total is the sum of the category rows, so the two always agree.
func Aggregate(expenses []model.Expense, month time.Time, budget model.Budget) model.MonthSummary {
	summary := summarize(FilterByMonth(expenses, month), budget)
	summary.Month = MonthOf(month)
	return summary
}

// AggregateAll is Aggregate over every expense regardless of date. The
// result's Month is zero. Category ceilings and alerts are measured against it.
func AggregateAll(expenses []model.Expense, budget model.Budget) model.MonthSummary {
	return summarize(expenses, budget)
}

func summarize(expenses []model.Expense, budget model.Budget) model.MonthSummary {
	var summary model.MonthSummary
	rows := make(map[model.Category]*model.CategorySpend)
	var order []model.Category

	for _, c := range budgetOrder(budget) {
		rows[c] = &model.CategorySpend{Category: c, Ceiling: budget.Ceiling(c)}
		order = append(order, c)
	}

	var extra []model.Category
	for _, e := range expenses {
		cs, ok := rows[e.Category]
		if !ok {
			cs = &model.CategorySpend{Category: e.Category, Ceiling: budget.Ceiling(e.Category)}
			rows[e.Category] = cs
			extra = append(extra, e.Category)
		}
		cs.Spent += e.Amount
		cs.Count++
		summary.Count++
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	order = append(order, extra...)

	summary.ByCategory = make([]model.CategorySpend, 0, len(order))
	for _, c := range order {
		cs := rows[c]
		cs.Percent = cs.Spent / cs.Ceiling * 100
		summary.Total += cs.Spent
		summary.ByCategory = append(summary.ByCategory, *cs)
	}

	return summary
}

// budgetOrder returns the budget's categories: the fixed categories first in
// declaration order, then any other configured keys by name.
func budgetOrder(budget model.Budget) []model.Category {
	var out []model.Category
	seen := make(map[model.Category]struct{}, len(budget.Categories))
	for _, c := range model.Categories {
		if budget.HasCeiling(c) {
			out = append(out, c)
			seen[c] = struct{}{}
		}
	}
	var rest []model.Category
	for c := range budget.Categories {
		if _, ok := seen[c]; !ok {
			rest = append(rest, c)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	return append(out, rest...)
}

// Share returns a category's fraction of the month total, 0 for an empty month.
func Share(cs model.CategorySpend, total float64) float64 {
	if total == 0 {
		return 0
	}
	return cs.Spent / total
}

// Remaining returns the monthly ceiling minus the month's spend.
func Remaining(budget model.Budget, summary model.MonthSummary) float64 {
	return budget.Monthly - summary.Total
}

// SpendingTrend appends the current month to the historical trend points.
func SpendingTrend(history []model.TrendPoint, label string, current float64) []model.TrendPoint {
	out := make([]model.TrendPoint, 0, len(history)+1)
	out = append(out, history...)
	return append(out, model.TrendPoint{Label: label, Amount: current})
}
