package sqlite

import (
	"database/sql"
	"fmt"

	"campus-connect/internal/assistant/repository"
	"campus-connect/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed Repository for the assistant domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("assistant/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("assistant/repository/sqlite.%s", method)
}

// Migrate creates the assistant tables if they do not exist.
func Migrate(db *sql.DB) error {
	const query = `
	CREATE TABLE IF NOT EXISTS conversations (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		title TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_conversations_user ON conversations(user_id, updated_at);

	CREATE TABLE IF NOT EXISTS chat_messages (
		id TEXT PRIMARY KEY,
		conversation_id TEXT NOT NULL,
		role TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_messages_conversation ON chat_messages(conversation_id, created_at);

	CREATE TABLE IF NOT EXISTS action_logs (
		id TEXT PRIMARY KEY,
		conversation_id TEXT NOT NULL,
		tool_name TEXT NOT NULL,
		arguments TEXT NOT NULL,
		result TEXT NOT NULL,
		success INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_action_logs_conversation ON action_logs(conversation_id, created_at);
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("create assistant schema: %w", err)
	}
	return nil
}
