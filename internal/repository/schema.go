package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema is the full DDL for the service. Statements are idempotent so the
// migrate subcommand can be re-run safely.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id                 UUID PRIMARY KEY,
	name               TEXT NOT NULL,
	creation_timestamp TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS events (
	id                 UUID PRIMARY KEY,
	user_id            UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	event_type         TEXT NOT NULL,
	event_timestamp    TIMESTAMPTZ,
	severity           SMALLINT CHECK (severity BETWEEN 1 AND 5),
	numerical_value    INTEGER,
	numerical_unit     TEXT,
	description        VARCHAR(200),
	system             TEXT NOT NULL DEFAULT '',
	code               TEXT NOT NULL DEFAULT '',
	creation_timestamp TIMESTAMPTZ NOT NULL DEFAULT now(),
	update_timestamp   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_events_user_id ON events (user_id);
CREATE INDEX IF NOT EXISTS idx_events_user_type ON events (user_id, event_type);
CREATE INDEX IF NOT EXISTS idx_events_user_time ON events (user_id, event_timestamp);
`

// Migrate applies the schema to the connected database.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
