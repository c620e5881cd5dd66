package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/spendwise/internal/model"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	b := cfg.BudgetModel()
	assert.Equal(t, 1200.0, b.Monthly)
	assert.Equal(t, 850.0, b.Ceiling(model.Housing))
	assert.Equal(t, 50.0, b.Ceiling(model.Health))
	assert.False(t, b.HasCeiling(model.Other))

	goals, err := cfg.GoalModels()
	require.NoError(t, err)
	require.Len(t, goals, 3)
	assert.Equal(t, "Emergency Fund", goals[0].Title)
	assert.Equal(t, 1, goals[0].ID)

	assert.Equal(t, "2025-09", cfg.Period.Month)
	assert.Equal(t, 13, cfg.Period.ElapsedDays)
	assert.Len(t, cfg.History, 3)
}

func TestLoadFrom_Missing(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFrom_OverridesAndKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
[budget]
monthly = 900.0

[budget.categories]
Food = 150.0
Housing = 600.0

[period]
month = "2025-10"
elapsed_days = 5
period_days = 31
`)
	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	b := cfg.BudgetModel()
	assert.Equal(t, 900.0, b.Monthly)
	assert.Len(t, b.Categories, 2)
	assert.Equal(t, 150.0, b.Ceiling(model.Food))

	month, err := cfg.Period.MonthTime(time.Now())
	require.NoError(t, err)
	assert.Equal(t, time.October, month.Month())
	assert.Equal(t, 31, cfg.Period.PeriodDays)

	// Untouched sections keep their defaults.
	assert.Len(t, cfg.Goals, 3)
	assert.Len(t, cfg.History, 3)
	assert.Equal(t, "flexoki-dark", cfg.Appearance.Theme)
}

func TestLoadFrom_ZeroCeilingAllowed(t *testing.T) {
	path := writeConfig(t, `
[budget.categories]
Health = 0.0
`)
	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.True(t, cfg.BudgetModel().HasCeiling(model.Health))
}

func TestLoadFrom_NegativeCeiling(t *testing.T) {
	path := writeConfig(t, `
[budget.categories]
Food = -10.0
`)
	_, err := LoadFrom(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNegativeCeiling))
}

func TestLoadFrom_UnknownCategory(t *testing.T) {
	path := writeConfig(t, `
[budget.categories]
Pets = 10.0
`)
	_, err := LoadFrom(path)
	assert.True(t, errors.Is(err, ErrUnknownCategory))
}

func TestLoadFrom_BadMonth(t *testing.T) {
	path := writeConfig(t, `
[period]
month = "September"
`)
	_, err := LoadFrom(path)
	assert.True(t, errors.Is(err, ErrInvalidPeriod))
}

func TestLoadFrom_Malformed(t *testing.T) {
	path := writeConfig(t, "[budget\nmonthly = ")
	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestSaveTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	cfg := DefaultConfig()
	cfg.Appearance.Theme = "terminal"
	cfg.Storage.Path = "/tmp/journal.db"
	cfg.Goals = cfg.Goals[:1]

	require.NoError(t, SaveTo(path, cfg))
	got, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestMonthTime_Empty(t *testing.T) {
	now := time.Date(2026, 2, 17, 10, 0, 0, 0, time.UTC)
	got, err := PeriodConfig{}.MonthTime(now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestGoalModels_BadDeadline(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Goals[0].Deadline = "soon"
	_, err := cfg.GoalModels()
	assert.Error(t, err)
}
