package model

import "time"

// CategorySpend holds the month's spend for one category.
type CategorySpend struct {
	Category Category `json:"category" yaml:"category"`
	Spent    float64  `json:"spent" yaml:"spent"`
	Ceiling  float64  `json:"ceiling" yaml:"ceiling"`
	Percent  float64  `json:"percent" yaml:"percent"` // spent/ceiling*100, unguarded
	Count    int      `json:"count" yaml:"count"`
}

// MonthSummary is the aggregate of one calendar month of expenses, or of all
// expenses when Month is zero.
type MonthSummary struct {
	Month      time.Time       `json:"month" yaml:"month"`
	Total      float64         `json:"total" yaml:"total"`
	Count      int             `json:"count" yaml:"count"`
	ByCategory []CategorySpend `json:"by_category" yaml:"by_category"`
}

// Spent returns the month's spend for a category.
func (s MonthSummary) Spent(c Category) float64 {
	for _, cs := range s.ByCategory {
		if cs.Category == c {
			return cs.Spent
		}
	}
	return 0
}

// SpendingProjection is a linear month-end forecast.
type SpendingProjection struct {
	Current     float64 `json:"current" yaml:"current"`
	Projected   float64 `json:"projected" yaml:"projected"`
	Variance    float64 `json:"variance" yaml:"variance"` // projected minus monthly ceiling
	ElapsedDays int     `json:"elapsed_days" yaml:"elapsed_days"`
	PeriodDays  int     `json:"period_days" yaml:"period_days"`
}

// Overspend reports whether the projection exceeds the monthly ceiling.
func (p SpendingProjection) Overspend() bool {
	return p.Variance > 0
}

// TrendPoint is one bar of the monthly spending trend.
type TrendPoint struct {
	Label  string  `json:"label" yaml:"label" toml:"label"`
	Amount float64 `json:"amount" yaml:"amount" toml:"amount"`
}
