package model

import "time"

// Budget holds the monthly ceiling and per-category sub-ceilings.
// It is read-only once the application state is built.
type Budget struct {
	Monthly    float64              `json:"monthly" yaml:"monthly"`
	Categories map[Category]float64 `json:"categories" yaml:"categories"`
}

// Ceiling returns the ceiling for a category, or 0 if none is configured.
func (b Budget) Ceiling(c Category) float64 {
	return b.Categories[c]
}

// HasCeiling reports whether the category has a configured ceiling.
func (b Budget) HasCeiling(c Category) bool {
	_, ok := b.Categories[c]
	return ok
}

// Goal is a savings target.
type Goal struct {
	ID       int       `json:"id" yaml:"id"`
	Title    string    `json:"title" yaml:"title"`
	Target   float64   `json:"target" yaml:"target"`
	Current  float64   `json:"current" yaml:"current"`
	Deadline time.Time `json:"deadline" yaml:"deadline"`
}

// GoalProgress holds derived progress and savings-plan figures for a goal.
type GoalProgress struct {
	Goal          Goal    `json:"goal" yaml:"goal"`
	Percent       float64 `json:"percent" yaml:"percent"` // 0-100, capped
	Remaining     float64 `json:"remaining" yaml:"remaining"`
	MonthsLeft    float64 `json:"months_left" yaml:"months_left"`
	MonthlyNeeded float64 `json:"monthly_needed" yaml:"monthly_needed"`
	WeeklyNeeded  float64 `json:"weekly_needed" yaml:"weekly_needed"`
	Overdue       bool    `json:"overdue" yaml:"overdue"`
}
