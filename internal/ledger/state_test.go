package ledger

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/spendwise/internal/model"
)

var fixedNow = time.Date(2025, 9, 13, 15, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func sampleState(t *testing.T, extra func(*Options)) *State {
	t.Helper()
	opts := Options{
		Budget:      SampleBudget(),
		Goals:       SampleGoals(),
		History:     SampleHistory(),
		Expenses:    SampleExpenses(),
		Month:       SampleMonth,
		ElapsedDays: 13,
		Clock:       fixedClock,
	}
	if extra != nil {
		extra(&opts)
	}
	return New(opts)
}

type fakeJournal struct {
	saved []model.Expense
	err   error
}

func (f *fakeJournal) SaveExpense(e model.Expense) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, e)
	return nil
}

func TestNew_InitialSnapshot(t *testing.T) {
	s := sampleState(t, nil)
	snap := s.Snapshot()

	assert.InDelta(t, 1023.48, snap.Summary.Total, 1e-9)
	assert.InDelta(t, 1161.88, snap.Projection.Variance, 0.01)
	assert.InDelta(t, 176.52, snap.Remaining, 1e-9)
	require.Len(t, snap.Alerts, 3)
	require.Len(t, snap.Goals, 3)
	require.Len(t, snap.Trend, 4)
	assert.Equal(t, "Sep", snap.Trend[3].Label)
}

func TestNew_Defaults(t *testing.T) {
	s := New(Options{Clock: fixedClock})
	assert.Equal(t, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), s.Month())
	assert.Equal(t, 13, s.ElapsedDays())
	assert.Equal(t, 30, s.Snapshot().Projection.PeriodDays)
	assert.Empty(t, s.Expenses())
}

func TestAddExpense(t *testing.T) {
	s := sampleState(t, nil)

	e, err := s.AddExpense("9.50", "Lunch with friends")
	require.NoError(t, err)

	assert.Equal(t, fixedNow.UnixMilli(), e.ID)
	assert.Equal(t, 9.5, e.Amount)
	assert.Equal(t, model.Food, e.Category)
	assert.True(t, e.Automated)
	assert.Equal(t, "2025-09-13", e.DateString())

	expenses := s.Expenses()
	require.Len(t, expenses, 6)
	assert.Equal(t, e, expenses[5])
	assert.InDelta(t, 1032.98, s.Snapshot().Summary.Total, 1e-9)
}

func TestAddExpense_RejectsEmpty(t *testing.T) {
	s := sampleState(t, nil)

	_, err := s.AddExpense("", "Lunch")
	assert.True(t, errors.Is(err, ErrEmptyAmount))

	_, err = s.AddExpense("5", "")
	assert.True(t, errors.Is(err, ErrEmptyDescription))

	assert.Len(t, s.Expenses(), 5)
}

func TestAddExpense_WhitespaceIsInput(t *testing.T) {
	s := sampleState(t, nil)

	e, err := s.AddExpense("  ", "Lunch")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(e.Amount))

	e, err = s.AddExpense("5", "   ")
	require.NoError(t, err)
	assert.Equal(t, model.Other, e.Category)

	assert.Len(t, s.Expenses(), 7)
}

func TestAddExpense_OutsideMeasuredMonthCountsTowardCategories(t *testing.T) {
	today := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	s := sampleState(t, func(o *Options) { o.Clock = func() time.Time { return today } })
	require.Len(t, s.Snapshot().Alerts, 3)

	e, err := s.AddExpense("500", "Grocery run")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-18", e.DateString())

	snap := s.Snapshot()
	assert.InDelta(t, 1023.48, snap.Summary.Total, 1e-9, "month total and projection stay on the measured month")
	assert.InDelta(t, 512.99, snap.Spending.Spent(model.Food), 1e-9)
	assert.InDelta(t, 1523.48, snap.Spending.Total, 1e-9)

	require.Len(t, snap.Alerts, 4)
	var food *model.Alert
	for i := range snap.Alerts {
		if snap.Alerts[i].Category == model.Food {
			food = &snap.Alerts[i]
		}
	}
	require.NotNil(t, food)
	assert.Equal(t, model.SeverityHigh, food.Severity)
	assert.Equal(t, "You are at 256% of your Food budget", food.Message)
}

func TestAddExpense_NaNAccepted(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	s := sampleState(t, func(o *Options) { o.Logger = logger })

	e, err := s.AddExpense("lots", "Concert tickets")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(e.Amount))
	assert.Equal(t, model.Entertainment, e.Category)
	assert.True(t, math.IsNaN(s.Snapshot().Summary.Total))
	assert.Contains(t, buf.String(), "amount is not a number")
}

func TestAddExpense_IDsStrictlyIncrease(t *testing.T) {
	s := sampleState(t, nil)

	a, err := s.AddExpense("1", "bus")
	require.NoError(t, err)
	b, err := s.AddExpense("1", "bus")
	require.NoError(t, err)

	assert.Greater(t, b.ID, a.ID)
}

func TestAddExpense_IDAboveSeed(t *testing.T) {
	seed := []model.Expense{{ID: fixedNow.UnixMilli() + 100, Amount: 1, Date: SampleMonth, Category: model.Food}}
	s := sampleState(t, func(o *Options) { o.Expenses = seed })

	e, err := s.AddExpense("1", "bus")
	require.NoError(t, err)
	assert.Equal(t, seed[0].ID+1, e.ID)
}

func TestAddExpense_Journal(t *testing.T) {
	j := &fakeJournal{}
	s := sampleState(t, func(o *Options) { o.Journal = j })

	e, err := s.AddExpense("20", "Gym membership")
	require.NoError(t, err)
	require.Len(t, j.saved, 1)
	assert.Equal(t, e, j.saved[0])
	assert.Equal(t, model.Health, e.Category)
}

func TestAddExpense_JournalFailureKeepsExpense(t *testing.T) {
	j := &fakeJournal{err: errors.New("disk full")}
	s := sampleState(t, func(o *Options) { o.Journal = j })

	_, err := s.AddExpense("20", "Gym membership")
	require.NoError(t, err)
	assert.Len(t, s.Expenses(), 6)
}

func TestAddExpense_RecomputesAlerts(t *testing.T) {
	s := sampleState(t, func(o *Options) { o.ElapsedDays = 30 })
	// 1023.48 over the full month is under the 1200 ceiling.
	for _, a := range s.Snapshot().Alerts {
		assert.NotEqual(t, model.Category(""), a.Category)
	}

	_, err := s.AddExpense("300", "Parking permit")
	require.NoError(t, err)

	alerts := s.Snapshot().Alerts
	var sawOverspend, sawTransport bool
	for _, a := range alerts {
		if a.Category == "" {
			sawOverspend = true
		}
		if a.Category == model.Transportation {
			sawTransport = true
			assert.Equal(t, model.SeverityHigh, a.Severity)
		}
	}
	assert.True(t, sawOverspend)
	assert.True(t, sawTransport)
}

func TestExpenses_ReturnsCopy(t *testing.T) {
	s := sampleState(t, nil)
	got := s.Expenses()
	got[0].Amount = 9999
	assert.Equal(t, 45.5, s.Expenses()[0].Amount)
}
