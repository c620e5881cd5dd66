// Package store provides a SQLite-backed journal of recorded expenses.
package store

import (
	"database/sql"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/spendwise/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

const dateLayout = "2006-01-02"

// Journal appends expenses to a SQLite database so they survive restarts.
type Journal struct {
	db *sql.DB
}

// Open opens or creates the journal database at the given path.
func Open(dbPath string) (*Journal, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating journal dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening journal db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Journal{db: db}, nil
}

// Close closes the journal database.
func (j *Journal) Close() error {
	return j.db.Close()
}

// SaveExpense stores one expense. Saving an existing ID replaces it.
// SQLite has no NaN, so a NaN amount is stored as NULL.
func (j *Journal) SaveExpense(e model.Expense) error {
	var amount sql.NullFloat64
	if !math.IsNaN(e.Amount) {
		amount = sql.NullFloat64{Float64: e.Amount, Valid: true}
	}

	automated := 0
	if e.Automated {
		automated = 1
	}

	_, err := j.db.Exec(`INSERT OR REPLACE INTO expenses
		(id, amount, description, expense_date, category, automated, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, amount, e.Description, e.Date.Format(dateLayout), string(e.Category),
		automated, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving expense %d: %w", e.ID, err)
	}
	return nil
}

// LoadExpenses reads every journaled expense in insertion order.
func (j *Journal) LoadExpenses() ([]model.Expense, error) {
	rows, err := j.db.Query(`SELECT id, amount, description, expense_date, category, automated
		FROM expenses ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []model.Expense
	for rows.Next() {
		var (
			e         model.Expense
			amount    sql.NullFloat64
			date      string
			category  string
			automated int
		)
		if err := rows.Scan(&e.ID, &amount, &e.Description, &date, &category, &automated); err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}

		e.Amount = math.NaN()
		if amount.Valid {
			e.Amount = amount.Float64
		}
		t, err := time.Parse(dateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("parsing date of expense %d: %w", e.ID, err)
		}
		e.Date = t
		e.Category = model.Category(category)
		e.Automated = automated != 0

		result = append(result, e)
	}
	return result, rows.Err()
}

// Count returns the number of journaled expenses.
func (j *Journal) Count() (int, error) {
	var n int
	if err := j.db.QueryRow("SELECT COUNT(*) FROM expenses").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting expenses: %w", err)
	}
	return n, nil
}

// Clear removes every journaled expense.
func (j *Journal) Clear() error {
	if _, err := j.db.Exec("DELETE FROM expenses"); err != nil {
		return fmt.Errorf("clearing journal: %w", err)
	}
	return nil
}
