package sqlite

import (
	"context"

	repo "campus-connect/internal/assistant/repository"
	"campus-connect/internal/model"
)

// CreateActionLog appends an audit entry. Entries are never updated or
// read back by the orchestrator.
func (r *implRepository) CreateActionLog(ctx context.Context, entry model.ActionLogEntry) error {
	const query = `INSERT INTO action_logs (id, conversation_id, tool_name, arguments, result, success, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`

	success := 0
	if entry.Success {
		success = 1
	}
	_, err := r.db.ExecContext(ctx, query,
		entry.ID, entry.ConversationID, entry.ToolName, entry.Arguments, entry.Result, success, entry.CreatedAt.Unix(),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateActionLog"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}
