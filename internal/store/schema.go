package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS expenses (
    id                   INTEGER PRIMARY KEY,
    amount               REAL,
    description          TEXT NOT NULL,
    expense_date         TEXT NOT NULL,
    category             TEXT NOT NULL,
    automated            INTEGER NOT NULL DEFAULT 0,
    recorded_at          TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(expense_date);
CREATE INDEX IF NOT EXISTS idx_expenses_category ON expenses(category);
`
