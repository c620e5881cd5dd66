// Package cmd implements the spendwise CLI commands.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/theirongolddev/spendwise/internal/config"
	"github.com/theirongolddev/spendwise/internal/ledger"
	"github.com/theirongolddev/spendwise/internal/logging"
	"github.com/theirongolddev/spendwise/internal/model"
	"github.com/theirongolddev/spendwise/internal/store"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// settings layers SPENDWISE_* environment variables over the persistent flags.
var settings = viper.New()

var rootCmd = &cobra.Command{
	Use:          "spendwise",
	Short:        "Student budget tracker",
	Long:         "Track expenses against a monthly budget: categories, projections, alerts, and savings goals.",
	SilenceUsage: true,
	RunE:         runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Config file (default "+config.ConfigPath()+")")
	pf.String("db", "", "Expense journal database; empty keeps expenses in memory")
	pf.String("month", "", "Month to measure, YYYY-MM")
	pf.Int("elapsed-days", 0, "Days of the month counted as elapsed (0 = today)")
	pf.BoolP("quiet", "q", false, "Suppress progress output")
	pf.String("log-level", "", "Log level: debug, info, warn, error")

	settings.SetEnvPrefix("SPENDWISE")
	settings.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	settings.AutomaticEnv()
	if err := settings.BindPFlags(pf); err != nil {
		panic(fmt.Sprintf("binding flags: %v", err))
	}
}

func quiet() bool {
	return settings.GetBool("quiet")
}

// loadConfig reads the config file and applies flag and environment overrides.
func loadConfig() (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if path := settings.GetString("config"); path != "" {
		cfg, err = config.LoadFrom(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return cfg, err
	}

	if month := settings.GetString("month"); month != "" {
		cfg.Period.Month = month
	}
	if days := settings.GetInt("elapsed-days"); days > 0 {
		cfg.Period.ElapsedDays = days
	}
	if db := settings.GetString("db"); db != "" {
		cfg.Storage.Path = db
	}
	if level := settings.GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg config.Config) *slog.Logger {
	return logging.New(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)
}

// session is the shared data loading result used by all commands.
type session struct {
	cfg     config.Config
	state   *ledger.State
	journal *store.Journal
	logger  *slog.Logger
}

func (s *session) Close() {
	if s.journal != nil {
		_ = s.journal.Close()
	}
}

// openSession loads config, builds the logger, and assembles the ledger
// state. Journal failures fall back to the in-memory sample expenses.
func openSession() (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return openSessionWith(cfg, newLogger(cfg))
}

func openSessionWith(cfg config.Config, logger *slog.Logger) (*session, error) {
	goals, err := cfg.GoalModels()
	if err != nil {
		return nil, err
	}
	month, err := cfg.Period.MonthTime(time.Now())
	if err != nil {
		return nil, err
	}

	s := &session{cfg: cfg, logger: logger}
	expenses := ledger.SampleExpenses()

	if cfg.Storage.Path != "" {
		j, loaded, err := openJournal(cfg.Storage.Path, expenses)
		if err != nil {
			logger.Warn("journal unavailable, using in-memory expenses", "path", cfg.Storage.Path, "error", err)
		} else {
			s.journal = j
			expenses = loaded
			if !quiet() {
				fmt.Fprintf(os.Stderr, "  Loaded %d expenses from %s\n", len(loaded), cfg.Storage.Path)
			}
		}
	}

	opts := ledger.Options{
		Budget:      cfg.BudgetModel(),
		Goals:       goals,
		History:     cfg.History,
		Expenses:    expenses,
		Month:       month,
		ElapsedDays: cfg.Period.ElapsedDays,
		PeriodDays:  cfg.Period.PeriodDays,
		Logger:      logger,
	}
	if s.journal != nil {
		opts.Journal = s.journal
	}
	s.state = ledger.New(opts)
	return s, nil
}

// openJournal opens the journal at path, seeding an empty journal with seed.
func openJournal(path string, seed []model.Expense) (*store.Journal, []model.Expense, error) {
	j, err := store.Open(path)
	if err != nil {
		return nil, nil, err
	}

	n, err := j.Count()
	if err != nil {
		_ = j.Close()
		return nil, nil, err
	}
	if n == 0 {
		for _, e := range seed {
			if err := j.SaveExpense(e); err != nil {
				_ = j.Close()
				return nil, nil, fmt.Errorf("seeding journal: %w", err)
			}
		}
	}

	expenses, err := j.LoadExpenses()
	if err != nil {
		_ = j.Close()
		return nil, nil, err
	}
	return j, expenses, nil
}
