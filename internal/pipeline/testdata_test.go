package pipeline

import (
	"time"

	"github.com/theirongolddev/spendwise/internal/model"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

var september = day("2025-09-01")

func sampleBudget() model.Budget {
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

func sampleExpenses() []model.Expense {
	return []model.Expense{
		{ID: 1, Amount: 45.50, Description: "Textbooks for calculus class", Date: day("2025-09-10"), Category: model.Education, Automated: true},
		{ID: 2, Amount: 12.99, Description: "Coffee at campus cafe", Date: day("2025-09-11"), Category: model.Food, Automated: true},
		{ID: 3, Amount: 850.00, Description: "Monthly rent payment", Date: day("2025-09-01"), Category: model.Housing, Automated: true},
		{ID: 4, Amount: 25.00, Description: "Uber to downtown", Date: day("2025-09-12"), Category: model.Transportation, Automated: true},
		{ID: 5, Amount: 89.99, Description: "New gaming headset", Date: day("2025-09-09"), Category: model.Entertainment, Automated: true},
	}
}
