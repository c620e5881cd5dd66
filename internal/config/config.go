// Package config loads and saves the spendwise TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"

	"github.com/theirongolddev/spendwise/internal/ledger"
	"github.com/theirongolddev/spendwise/internal/model"
)

const (
	appName     = "spendwise"
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

var (
	ErrNegativeCeiling = errors.New("ceiling must not be negative")
	ErrUnknownCategory = errors.New("unknown category")
	ErrInvalidPeriod   = errors.New("invalid period")
)

// Config holds all spendwise configuration.
type Config struct {
	Budget     BudgetConfig       `toml:"budget"`
	Goals      []GoalConfig       `toml:"goals"`
	Period     PeriodConfig       `toml:"period"`
	History    []model.TrendPoint `toml:"history"`
	Appearance AppearanceConfig   `toml:"appearance"`
	Storage    StorageConfig      `toml:"storage"`
	Logging    LoggingConfig      `toml:"logging"`
}

// BudgetConfig holds the monthly ceiling and per-category sub-ceilings.
type BudgetConfig struct {
	Monthly    float64            `toml:"monthly"`
	Categories map[string]float64 `toml:"categories"`
}

// GoalConfig is a savings goal as written in the config file.
type GoalConfig struct {
	Title    string  `toml:"title"`
	Target   float64 `toml:"target"`
	Current  float64 `toml:"current"`
	Deadline string  `toml:"deadline"` // YYYY-MM-DD
}

// PeriodConfig selects the month being measured.
type PeriodConfig struct {
	Month       string `toml:"month"`        // YYYY-MM, empty = current month
	ElapsedDays int    `toml:"elapsed_days"` // 0 = today's day of month
	PeriodDays  int    `toml:"period_days"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// StorageConfig enables the optional expense journal.
type StorageConfig struct {
	Path string `toml:"path,omitempty"` // empty = in-memory only
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // text or json
}

// DefaultConfig returns the default configuration: the sample September
// budget, goals, and spending history.
func DefaultConfig() Config {
	budget := ledger.SampleBudget()
	cats := make(map[string]float64, len(budget.Categories))
	for c, v := range budget.Categories {
		cats[string(c)] = v
	}

	var goals []GoalConfig
	for _, g := range ledger.SampleGoals() {
		goals = append(goals, GoalConfig{
			Title:    g.Title,
			Target:   g.Target,
			Current:  g.Current,
			Deadline: g.Deadline.Format(dateLayout),
		})
	}

	return Config{
		Budget: BudgetConfig{Monthly: budget.Monthly, Categories: cats},
		Goals:  goals,
		Period: PeriodConfig{
			Month:       ledger.SampleMonth.Format(monthLayout),
			ElapsedDays: 13,
			PeriodDays:  30,
		},
		History:    ledger.SampleHistory(),
		Appearance: AppearanceConfig{Theme: "flexoki-dark"},
		Logging:    LoggingConfig{Level: "info", Format: "text"},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, appName)
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DefaultJournalPath returns where the expense journal lives when enabled
// without an explicit path.
func DefaultJournalPath() string {
	return filepath.Join(xdg.DataHome, appName, "journal.db")
}

// LogPath returns the log file used while the TUI owns the terminal.
func LogPath() string {
	return filepath.Join(xdg.StateHome, appName, "spendwise.log")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads the config at path, returning defaults if it doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is user-supplied config location
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	// Lists and tables present in the file replace the defaults wholesale.
	defaults := cfg
	cfg.Budget.Categories = nil
	cfg.Goals = nil
	cfg.History = nil

	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return defaults, fmt.Errorf("parsing config: %w", err)
	}
	if !meta.IsDefined("budget", "categories") {
		cfg.Budget.Categories = defaults.Budget.Categories
	}
	if !meta.IsDefined("goals") {
		cfg.Goals = defaults.Goals
	}
	if !meta.IsDefined("history") {
		cfg.History = defaults.History
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the default location.
func Save(cfg Config) error {
	return SaveTo(ConfigPath(), cfg)
}

// SaveTo writes the config to path.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // path is user-supplied config location
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// Validate checks the config for values the pipeline cannot use. Zero
// ceilings are allowed.
func (c Config) Validate() error {
	if c.Budget.Monthly < 0 {
		return fmt.Errorf("monthly budget %.2f: %w", c.Budget.Monthly, ErrNegativeCeiling)
	}
	for name, v := range c.Budget.Categories {
		if !knownCategory(name) {
			return fmt.Errorf("budget category %q: %w", name, ErrUnknownCategory)
		}
		if v < 0 {
			return fmt.Errorf("%s ceiling %.2f: %w", name, v, ErrNegativeCeiling)
		}
	}
	if _, err := c.Period.MonthTime(time.Now()); err != nil {
		return err
	}
	if c.Period.ElapsedDays < 0 || c.Period.PeriodDays < 0 {
		return fmt.Errorf("elapsed_days %d, period_days %d: %w", c.Period.ElapsedDays, c.Period.PeriodDays, ErrInvalidPeriod)
	}
	if _, err := c.GoalModels(); err != nil {
		return err
	}
	return nil
}

func knownCategory(name string) bool {
	for _, c := range model.Categories {
		if string(c) == name {
			return true
		}
	}
	return false
}

// BudgetModel converts the budget section to the domain type.
func (c Config) BudgetModel() model.Budget {
	cats := make(map[model.Category]float64, len(c.Budget.Categories))
	for name, v := range c.Budget.Categories {
		cats[model.Category(name)] = v
	}
	return model.Budget{Monthly: c.Budget.Monthly, Categories: cats}
}

// GoalModels converts the goals section to domain goals, numbered from 1.
func (c Config) GoalModels() ([]model.Goal, error) {
	goals := make([]model.Goal, 0, len(c.Goals))
	for i, g := range c.Goals {
		deadline, err := time.Parse(dateLayout, g.Deadline)
		if err != nil {
			return nil, fmt.Errorf("parsing deadline for goal %q: %w", g.Title, err)
		}
		goals = append(goals, model.Goal{
			ID:       i + 1,
			Title:    g.Title,
			Target:   g.Target,
			Current:  g.Current,
			Deadline: deadline,
		})
	}
	return goals, nil
}

// MonthTime resolves the configured month, falling back to now's month.
func (p PeriodConfig) MonthTime(now time.Time) (time.Time, error) {
	if p.Month == "" {
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(monthLayout, p.Month)
	if err != nil {
		return time.Time{}, fmt.Errorf("period month %q: %w", p.Month, ErrInvalidPeriod)
	}
	return t, nil
}
