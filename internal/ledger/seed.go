package ledger

import (
	"time"

	"github.com/theirongolddev/spendwise/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SampleExpenses returns the expenses a fresh ledger starts with.
func SampleExpenses() []model.Expense {
	return []model.Expense{
		{ID: 1, Amount: 45.50, Description: "Textbooks for calculus class", Date: date(2025, time.September, 10), Category: model.Education, Automated: true},
		{ID: 2, Amount: 12.99, Description: "Coffee at campus cafe", Date: date(2025, time.September, 11), Category: model.Food, Automated: true},
		{ID: 3, Amount: 850.00, Description: "Monthly rent payment", Date: date(2025, time.September, 1), Category: model.Housing, Automated: true},
		{ID: 4, Amount: 25.00, Description: "Uber to downtown", Date: date(2025, time.September, 12), Category: model.Transportation, Automated: true},
		{ID: 5, Amount: 89.99, Description: "New gaming headset", Date: date(2025, time.September, 9), Category: model.Entertainment, Automated: true},
	}
}

// SampleBudget returns the default monthly budget.
func SampleBudget() model.Budget {
	return model.Budget{
		Monthly: 1200,
		Categories: map[model.Category]float64{
			model.Housing:        850,
			model.Food:           200,
			model.Education:      100,
			model.Transportation: 50,
			model.Entertainment:  100,
			model.Health:         50,
		},
	}
}

// SampleGoals returns the default savings goals.
func SampleGoals() []model.Goal {
	return []model.Goal{
		{ID: 1, Title: "Emergency Fund", Target: 1000, Current: 350, Deadline: date(2025, time.December, 31)},
		{ID: 2, Title: "Spring Break Trip", Target: 800, Current: 120, Deadline: date(2025, time.March, 15)},
		{ID: 3, Title: "New Laptop", Target: 1200, Current: 480, Deadline: date(2025, time.November, 30)},
	}
}

// SampleHistory returns the monthly totals preceding the sample month.
func SampleHistory() []model.TrendPoint {
	return []model.TrendPoint{
		{Label: "Jun", Amount: 1150},
		{Label: "Jul", Amount: 1280},
		{Label: "Aug", Amount: 1090},
	}
}

// SampleMonth is the month the sample expenses fall in.
var SampleMonth = date(2025, time.September, 1)
