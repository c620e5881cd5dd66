package pipeline

import (
	"sort"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/theirongolddev/spendwise/internal/model"
)

// MonthOf returns the first instant of t's calendar month, in UTC.
func MonthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// FilterByMonth returns expenses dated in the same calendar month as month.
func FilterByMonth(expenses []model.Expense, month time.Time) []model.Expense {
	var result []model.Expense
	for _, e := range expenses {
		if e.Date.Year() == month.Year() && e.Date.Month() == month.Month() {
			result = append(result, e)
		}
	}
	return result
}

// FilterByCategory returns expenses in the named category (case-insensitive).
func FilterByCategory(expenses []model.Expense, category string) []model.Expense {
	if category == "" {
		return expenses
	}
	var result []model.Expense
	for _, e := range expenses {
		if strings.EqualFold(string(e.Category), category) {
			result = append(result, e)
		}
	}
	return result
}

// Search returns expenses whose description fuzzy-matches query, best match
// first. Ties keep the input order.
func Search(expenses []model.Expense, query string) []model.Expense {
	query = strings.TrimSpace(query)
	if query == "" {
		return expenses
	}

	descs := make([]string, len(expenses))
	for i, e := range expenses {
		descs[i] = e.Description
	}

	ranks := fuzzy.RankFindNormalizedFold(query, descs)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})

	result := make([]model.Expense, 0, len(ranks))
	for _, r := range ranks {
		result = append(result, expenses[r.OriginalIndex])
	}
	return result
}

// Recent returns the last n expenses, newest-added first.
func Recent(expenses []model.Expense, n int) []model.Expense {
	start := len(expenses) - n
	if start < 0 {
		start = 0
	}
	result := make([]model.Expense, 0, len(expenses)-start)
	for i := len(expenses) - 1; i >= start; i-- {
		result = append(result, expenses[i])
	}
	return result
}
