package pipeline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/spendwise/internal/model"
)

func TestAggregate_SampleMonth(t *testing.T) {
	s := Aggregate(sampleExpenses(), september, sampleBudget())

	assert.InDelta(t, 1023.48, s.Total, 1e-9)
	assert.Equal(t, 5, s.Count)
	assert.Equal(t, september, s.Month)

	require.Len(t, s.ByCategory, 6)
	assert.Equal(t, model.Education, s.ByCategory[0].Category)
	assert.Equal(t, model.Health, s.ByCategory[5].Category)

	assert.InDelta(t, 850.0, s.Spent(model.Housing), 1e-9)
	assert.InDelta(t, 0.0, s.Spent(model.Health), 1e-9)
	assert.Equal(t, 0, s.ByCategory[5].Count)
}

func TestAggregate_CategoriesSumToTotal(t *testing.T) {
	expenses := append(sampleExpenses(),
		model.Expense{ID: 6, Amount: 3.10, Description: "Snack", Date: day("2025-09-03"), Category: model.Food},
		model.Expense{ID: 7, Amount: 17.25, Description: "Mystery", Date: day("2025-09-04"), Category: model.Other},
	)
	s := Aggregate(expenses, september, sampleBudget())

	var sum float64
	for _, cs := range s.ByCategory {
		sum += cs.Spent
	}
	assert.InDelta(t, s.Total, sum, 1e-9)
}

func TestAggregate_OtherCategoryAppended(t *testing.T) {
	expenses := []model.Expense{
		{ID: 1, Amount: 10, Date: day("2025-09-02"), Category: model.Other},
	}
	s := Aggregate(expenses, september, sampleBudget())

	require.Len(t, s.ByCategory, 7)
	last := s.ByCategory[6]
	assert.Equal(t, model.Other, last.Category)
	assert.Equal(t, 0.0, last.Ceiling)
	assert.True(t, math.IsInf(last.Percent, 1))
}

func TestAggregate_ExcludesOtherMonths(t *testing.T) {
	expenses := append(sampleExpenses(),
		model.Expense{ID: 9, Amount: 500, Date: day("2025-08-31"), Category: model.Food},
		model.Expense{ID: 10, Amount: 500, Date: day("2025-10-01"), Category: model.Food},
	)
	s := Aggregate(expenses, september, sampleBudget())
	assert.InDelta(t, 1023.48, s.Total, 1e-9)
	assert.Equal(t, 5, s.Count)
}

func TestAggregateAll_IncludesEveryMonth(t *testing.T) {
	expenses := append(sampleExpenses(),
		model.Expense{ID: 9, Amount: 500, Date: day("2025-08-31"), Category: model.Food},
		model.Expense{ID: 10, Amount: 500, Date: day("2026-10-18"), Category: model.Food},
	)
	s := AggregateAll(expenses, sampleBudget())

	assert.True(t, s.Month.IsZero())
	assert.Equal(t, 7, s.Count)
	assert.InDelta(t, 2023.48, s.Total, 1e-9)
	assert.InDelta(t, 1012.99, s.Spent(model.Food), 1e-9)

	alerts := GenerateAlerts(s, model.SpendingProjection{})
	var foodAlert bool
	for _, a := range alerts {
		if a.Category == model.Food {
			foodAlert = true
			assert.Equal(t, model.SeverityHigh, a.Severity)
		}
	}
	assert.True(t, foodAlert, "spend outside the measured month still alerts")
}

func TestAggregate_NaNAmountPropagates(t *testing.T) {
	expenses := append(sampleExpenses(),
		model.Expense{ID: 6, Amount: math.NaN(), Date: day("2025-09-05"), Category: model.Food},
	)
	s := Aggregate(expenses, september, sampleBudget())
	assert.True(t, math.IsNaN(s.Total))
	assert.True(t, math.IsNaN(s.Spent(model.Food)))
	assert.InDelta(t, 850.0, s.Spent(model.Housing), 1e-9)
}

func TestAggregate_Empty(t *testing.T) {
	s := Aggregate(nil, september, model.Budget{Monthly: 1200})
	assert.Equal(t, 0.0, s.Total)
	assert.Empty(t, s.ByCategory)
}

func TestRemaining(t *testing.T) {
	s := Aggregate(sampleExpenses(), september, sampleBudget())
	assert.InDelta(t, 176.52, Remaining(sampleBudget(), s), 1e-9)
}

func TestShare(t *testing.T) {
	assert.Equal(t, 0.0, Share(model.CategorySpend{Spent: 10}, 0))
	assert.InDelta(t, 0.25, Share(model.CategorySpend{Spent: 25}, 100), 1e-12)
}

func TestSpendingTrend(t *testing.T) {
	history := []model.TrendPoint{{Label: "Jun", Amount: 1150}, {Label: "Jul", Amount: 1280}, {Label: "Aug", Amount: 1090}}
	trend := SpendingTrend(history, "Sep", 1023.48)

	require.Len(t, trend, 4)
	assert.Equal(t, "Sep", trend[3].Label)
	assert.Len(t, history, 3, "input must not grow")
}
