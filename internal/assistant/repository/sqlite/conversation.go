package sqlite

import (
	"context"
	"database/sql"
	"time"

	repo "campus-connect/internal/assistant/repository"
	"campus-connect/internal/model"

	"github.com/google/uuid"
)

// CreateConversation inserts a new conversation row.
func (r *implRepository) CreateConversation(ctx context.Context, opt repo.CreateConversationOptions) (model.Conversation, error) {
	const query = `INSERT INTO conversations (id, user_id, title, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`

	now := time.Now()
	id := uuid.NewString()
	if _, err := r.db.ExecContext(ctx, query, id, opt.UserID, opt.Title, now.Unix(), now.Unix()); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateConversation"), err)
		return model.Conversation{}, repo.ErrFailedToInsert
	}

	return model.Conversation{
		ID:        id,
		UserID:    opt.UserID,
		Title:     opt.Title,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// GetConversation retrieves a conversation owned by userID.
// Returns zero-value Conversation (ID == "") when not found or owned
// by someone else.
func (r *implRepository) GetConversation(ctx context.Context, userID, id string) (model.Conversation, error) {
	const query = `SELECT id, user_id, title, created_at, updated_at FROM conversations WHERE id = ? AND user_id = ?`

	var c model.Conversation
	var createdAt, updatedAt int64
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(&c.ID, &c.UserID, &c.Title, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return model.Conversation{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetConversation"), err)
		return model.Conversation{}, repo.ErrFailedToGet
	}
	c.CreatedAt = time.Unix(createdAt, 0)
	c.UpdatedAt = time.Unix(updatedAt, 0)
	return c, nil
}

// ListConversations returns the user's conversations, most recently
// active first.
func (r *implRepository) ListConversations(ctx context.Context, userID string) ([]model.Conversation, error) {
	const query = `SELECT id, user_id, title, created_at, updated_at FROM conversations WHERE user_id = ? ORDER BY updated_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListConversations"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var conversations []model.Conversation
	for rows.Next() {
		var c model.Conversation
		var createdAt, updatedAt int64
		if err := rows.Scan(&c.ID, &c.UserID, &c.Title, &createdAt, &updatedAt); err != nil {
			return nil, repo.ErrFailedToList
		}
		c.CreatedAt = time.Unix(createdAt, 0)
		c.UpdatedAt = time.Unix(updatedAt, 0)
		conversations = append(conversations, c)
	}
	return conversations, rows.Err()
}

// TouchConversation bumps the conversation's last-activity timestamp.
func (r *implRepository) TouchConversation(ctx context.Context, id string) error {
	const query = `UPDATE conversations SET updated_at = ? WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, time.Now().Unix(), id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("TouchConversation"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// DeleteConversation removes the conversation, its messages and its
// action logs in one transaction.
func (r *implRepository) DeleteConversation(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("DeleteConversation"), err)
		return repo.ErrFailedToDelete
	}
	defer tx.Rollback()

	for _, query := range []string{
		`DELETE FROM chat_messages WHERE conversation_id = ?`,
		`DELETE FROM action_logs WHERE conversation_id = ?`,
		`DELETE FROM conversations WHERE id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, query, id); err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteConversation"), err)
			return repo.ErrFailedToDelete
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("DeleteConversation"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
