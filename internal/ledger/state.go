// Package ledger owns the application state: the expense list, the budget and
// goals it is measured against, and the derived snapshot rebuilt after every
// change.
package ledger

import (
	"errors"
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/theirongolddev/spendwise/internal/categorize"
	"github.com/theirongolddev/spendwise/internal/model"
	"github.com/theirongolddev/spendwise/internal/pipeline"
)

var (
	ErrEmptyAmount      = errors.New("amount is required")
	ErrEmptyDescription = errors.New("description is required")
)

// Journal persists appended expenses.
type Journal interface {
	SaveExpense(model.Expense) error
}

// Options configures a new State. Zero values fall back to sensible defaults.
type Options struct {
	Budget   model.Budget
	Goals    []model.Goal
	History  []model.TrendPoint
	Expenses []model.Expense

	Month       time.Time // zero = current month
	ElapsedDays int       // <= 0 = today's day of month
	PeriodDays  int       // <= 0 = pipeline.PeriodDays

	Clock   func() time.Time
	Journal Journal
	Logger  *slog.Logger
}

// Snapshot is the derived view of the state, rebuilt on every recompute.
// Summary and Projection cover the measured month; Spending covers every
// recorded expense and drives the category alerts.
type Snapshot struct {
	Budget     model.Budget
	Summary    model.MonthSummary
	Spending   model.MonthSummary
	Projection model.SpendingProjection
	Alerts     []model.Alert
	Goals      []model.GoalProgress
	Trend      []model.TrendPoint
	Remaining  float64
}

// State holds expenses and their derived snapshot. It is not safe for
// concurrent use; callers drive it from a single event loop.
type State struct {
	budget      model.Budget
	goals       []model.Goal
	history     []model.TrendPoint
	expenses    []model.Expense
	month       time.Time
	elapsedDays int
	periodDays  int
	lastID      int64

	clock   func() time.Time
	journal Journal
	logger  *slog.Logger

	snap Snapshot
}

// New builds a State from opts and computes its first snapshot.
func New(opts Options) *State {
	s := &State{
		budget:      opts.Budget,
		goals:       append([]model.Goal(nil), opts.Goals...),
		history:     append([]model.TrendPoint(nil), opts.History...),
		expenses:    append([]model.Expense(nil), opts.Expenses...),
		elapsedDays: opts.ElapsedDays,
		periodDays:  opts.PeriodDays,
		clock:       opts.Clock,
		journal:     opts.Journal,
		logger:      opts.Logger,
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	now := s.clock()
	s.month = opts.Month
	if s.month.IsZero() {
		s.month = now
	}
	s.month = pipeline.MonthOf(s.month)
	if s.elapsedDays <= 0 {
		s.elapsedDays = now.Day()
	}
	if s.periodDays <= 0 {
		s.periodDays = pipeline.PeriodDays
	}

	for _, e := range s.expenses {
		if e.ID > s.lastID {
			s.lastID = e.ID
		}
	}

	s.Recompute()
	return s
}

// Expenses returns a copy of the expense list in insertion order.
func (s *State) Expenses() []model.Expense {
	return append([]model.Expense(nil), s.expenses...)
}

// Goals returns a copy of the configured goals.
func (s *State) Goals() []model.Goal {
	return append([]model.Goal(nil), s.goals...)
}

// Month returns the first day of the month being measured.
func (s *State) Month() time.Time { return s.month }

// ElapsedDays returns the number of days of the month counted as elapsed.
func (s *State) ElapsedDays() int { return s.elapsedDays }

// Snapshot returns the most recently computed derived view.
func (s *State) Snapshot() Snapshot { return s.snap }

// AddExpense records a new expense from raw form input. Both fields must be
// non-empty; whitespace counts as input. An amount with no leading number is kept as NaN. The expense is
// dated today, categorized by keyword, and marked automated.
func (s *State) AddExpense(amountText, description string) (model.Expense, error) {
	if amountText == "" {
		return model.Expense{}, ErrEmptyAmount
	}
	if description == "" {
		return model.Expense{}, ErrEmptyDescription
	}

	now := s.clock()
	amount := ParseAmount(amountText)
	if math.IsNaN(amount) {
		s.logger.Warn("amount is not a number, recording NaN", "input", amountText)
	}

	e := model.Expense{
		ID:          s.nextID(now),
		Amount:      amount,
		Description: description,
		Date:        time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		Category:    categorize.Categorize(description),
		Automated:   true,
	}
	s.expenses = append(s.expenses, e)

	if s.journal != nil {
		if err := s.journal.SaveExpense(e); err != nil {
			s.logger.Warn("journal write failed, expense kept in memory only", "id", e.ID, "error", err)
		}
	}

	s.logger.Info("expense added", "id", e.ID, "amount", e.Amount, "category", e.Category)
	s.Recompute()
	return e, nil
}

func (s *State) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// Recompute rebuilds the snapshot from the current expenses.
func (s *State) Recompute() {
	summary := pipeline.Aggregate(s.expenses, s.month, s.budget)
	spending := pipeline.AggregateAll(s.expenses, s.budget)
	projection := pipeline.Project(summary.Total, s.elapsedDays, s.periodDays, s.budget.Monthly)
	alerts := pipeline.GenerateAlerts(spending, projection)

	s.snap = Snapshot{
		Budget:     s.budget,
		Summary:    summary,
		Spending:   spending,
		Projection: projection,
		Alerts:     alerts,
		Goals:      pipeline.PlanGoals(s.goals, s.clock()),
		Trend:      pipeline.SpendingTrend(s.history, s.month.Format("Jan"), summary.Total),
		Remaining:  pipeline.Remaining(s.budget, summary),
	}

	s.logger.Debug("alerts recomputed", "month", s.month.Format("2006-01"), "total", summary.Total, "alerts", len(alerts))
}
