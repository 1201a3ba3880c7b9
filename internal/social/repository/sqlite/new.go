package sqlite

import (
	"database/sql"
	"fmt"

	"campus-connect/internal/social/repository"
	"campus-connect/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed Repository for the social domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("social/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("social/repository/sqlite.%s", method)
}

// Migrate creates the social tables if they do not exist.
func Migrate(db *sql.DB) error {
	const query = `
	CREATE TABLE IF NOT EXISTS profiles (
		id TEXT PRIMARY KEY,
		full_name TEXT NOT NULL,
		career TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		active INTEGER NOT NULL DEFAULT 1
	);
	CREATE INDEX IF NOT EXISTS idx_profiles_full_name ON profiles(full_name);

	CREATE TABLE IF NOT EXISTS posts (
		id TEXT PRIMARY KEY,
		author_id TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_posts_created ON posts(created_at);

	CREATE TABLE IF NOT EXISTS interest_groups (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS group_members (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		group_id TEXT NOT NULL,
		joined_at INTEGER NOT NULL,
		UNIQUE(user_id, group_id)
	);

	CREATE TABLE IF NOT EXISTS events (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		starts_at INTEGER NOT NULL,
		ends_at INTEGER NOT NULL,
		max_attendees INTEGER NOT NULL DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS idx_events_starts ON events(starts_at);

	CREATE TABLE IF NOT EXISTS event_attendees (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		event_id TEXT NOT NULL,
		registered_at INTEGER NOT NULL,
		UNIQUE(user_id, event_id)
	);

	CREATE TABLE IF NOT EXISTS direct_messages (
		id TEXT PRIMARY KEY,
		sender_id TEXT NOT NULL,
		receiver_id TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_dm_receiver ON direct_messages(receiver_id, created_at);
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("create social schema: %w", err)
	}
	return nil
}
