package cmd

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/spendwise/internal/config"
	"github.com/theirongolddev/spendwise/internal/model"
)

func discardLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestOpenSessionInMemory(t *testing.T) {
	s, err := openSessionWith(config.DefaultConfig(), discardLogger())
	require.NoError(t, err)
	defer s.Close()

	assert.Nil(t, s.journal)
	assert.Len(t, s.state.Expenses(), 5)
	assert.InDelta(t, 1023.48, s.state.Snapshot().Summary.Total, 1e-9)
	assert.Equal(t, 13, s.state.ElapsedDays())
}

func TestOpenSessionJournalSeedsAndPersists(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Storage.Path = filepath.Join(t.TempDir(), "journal.db")

	s, err := openSessionWith(cfg, discardLogger())
	require.NoError(t, err)
	require.NotNil(t, s.journal)
	assert.Len(t, s.state.Expenses(), 5, "empty journal is seeded with the sample month")

	_, err = s.state.AddExpense("9.50", "Lunch with study group")
	require.NoError(t, err)
	s.Close()

	s, err = openSessionWith(cfg, discardLogger())
	require.NoError(t, err)
	defer s.Close()

	expenses := s.state.Expenses()
	require.Len(t, expenses, 6)
	assert.Equal(t, "Lunch with study group", expenses[5].Description)
	assert.Equal(t, model.Food, expenses[5].Category)
}

func TestOpenSessionJournalFailureFallsBack(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	cfg := config.DefaultConfig()
	cfg.Storage.Path = filepath.Join(blocker, "journal.db")

	s, err := openSessionWith(cfg, discardLogger())
	require.NoError(t, err)
	defer s.Close()

	assert.Nil(t, s.journal)
	assert.Len(t, s.state.Expenses(), 5)
}

func TestOpenSessionRejectsBadGoal(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Goals[0].Deadline = "someday"

	_, err := openSessionWith(cfg, discardLogger())
	assert.Error(t, err)
}
