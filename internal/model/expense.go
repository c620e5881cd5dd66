// Package model defines domain types for spendwise expenses, budgets, and goals.
package model

import "time"

// Category is one of the fixed expense categories, or Other.
type Category string

const (
	Education      Category = "Education"
	Food           Category = "Food"
	Housing        Category = "Housing"
	Transportation Category = "Transportation"
	Entertainment  Category = "Entertainment"
	Health         Category = "Health"
	Other          Category = "Other"
)

// Categories lists the budgeted categories in keyword-table order.
var Categories = []Category{Education, Food, Housing, Transportation, Entertainment, Health}

// Expense is one recorded expense. It is never mutated after creation.
type Expense struct {
	ID          int64     `json:"id" yaml:"id"`
	Amount      float64   `json:"amount" yaml:"amount"`
	Description string    `json:"description" yaml:"description"`
	Date        time.Time `json:"date" yaml:"date"`
	Category    Category  `json:"category" yaml:"category"`
	Automated   bool      `json:"automated" yaml:"automated"` // categorized by keyword match
}

// DateString returns the expense date as YYYY-MM-DD.
func (e Expense) DateString() string {
	return e.Date.Format("2006-01-02")
}
