package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/dev-connect/internal/logger"
)

// schema creates the tables and indexes. The expression index on the
// canonical pair guarantees a single request per unordered pair of users.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY,
		first_name VARCHAR(50) NOT NULL,
		last_name VARCHAR(50),
		email VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		age INT CHECK (age BETWEEN 7 AND 100),
		gender VARCHAR(10) CHECK (gender IN ('male', 'female', 'other')),
		photo_url TEXT NOT NULL DEFAULT 'default-profile.jpg',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_email_idx ON users (LOWER(email))`,
	`CREATE INDEX IF NOT EXISTS users_created_at_idx ON users (created_at, user_id)`,
	`CREATE TABLE IF NOT EXISTS connection_requests (
		request_id UUID PRIMARY KEY,
		from_user_id UUID NOT NULL REFERENCES users (user_id),
		to_user_id UUID NOT NULL REFERENCES users (user_id),
		status VARCHAR(16) NOT NULL CHECK (status IN ('ignored', 'interested', 'accepted', 'rejected')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CHECK (from_user_id <> to_user_id)
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS connection_requests_pair_idx
		ON connection_requests (LEAST(from_user_id, to_user_id), GREATEST(from_user_id, to_user_id))`,
	`CREATE INDEX IF NOT EXISTS connection_requests_to_status_idx ON connection_requests (to_user_id, status)`,
	`CREATE INDEX IF NOT EXISTS connection_requests_from_idx ON connection_requests (from_user_id)`,
}

// Migrate applies the PostgreSQL schema. Statements are idempotent.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		_, err := db.ExecContext(ctx, stmt)

		logger.Log.Infow(
			"query", strings.Join(strings.Fields(stmt), " "),
			"error", err,
		)

		if err != nil {
			return err
		}
	}
	return nil
}
