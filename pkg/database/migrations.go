package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent/Atlas cannot express. The running-session index is the enforcement
// point for the at-most-one-running-session-per-stream invariant: concurrent
// inserts race on the index, and the loser gets a constraint error that the
// lifecycle manager downgrades to a skip.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS agent_sessions_one_running_per_stream
		ON agent_sessions (stream_id)
		WHERE status = 'running'`)
	if err != nil {
		return fmt.Errorf("failed to create running-session index: %w", err)
	}

	return nil
}
