package sqlite

import (
	"context"
	"database/sql"
)

// schema sets up the people table. It runs on startup to ensure tables exist.
// Birthdays are stored as YYYY-MM-DD text so the file stays readable with
// the sqlite3 shell.
const schema = `
CREATE TABLE IF NOT EXISTS people (
    id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    birthday TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_people_position ON people(position);
`

// runMigrations executes the schema setup.
func runMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
