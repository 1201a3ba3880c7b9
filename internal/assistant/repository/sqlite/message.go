package sqlite

import (
	"context"
	"database/sql"
	"time"

	repo "campus-connect/internal/assistant/repository"
	"campus-connect/internal/model"

	"github.com/google/uuid"
)

// CreateMessage appends a message to a conversation.
func (r *implRepository) CreateMessage(ctx context.Context, opt repo.CreateMessageOptions) (model.ChatMessage, error) {
	const query = `INSERT INTO chat_messages (id, conversation_id, role, content, created_at) VALUES (?, ?, ?, ?, ?)`

	now := time.Now()
	id := uuid.NewString()
	if _, err := r.db.ExecContext(ctx, query, id, opt.ConversationID, string(opt.Role), opt.Content, now.Unix()); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateMessage"), err)
		return model.ChatMessage{}, repo.ErrFailedToInsert
	}

	return model.ChatMessage{
		ID:             id,
		ConversationID: opt.ConversationID,
		Role:           opt.Role,
		Content:        opt.Content,
		CreatedAt:      now,
	}, nil
}

// ListMessages returns all messages of a conversation in chronological
// order. Insertion order breaks same-second ties.
func (r *implRepository) ListMessages(ctx context.Context, conversationID string) ([]model.ChatMessage, error) {
	const query = `SELECT id, conversation_id, role, content, created_at FROM chat_messages WHERE conversation_id = ? ORDER BY created_at, rowid`

	return r.queryMessages(ctx, "ListMessages", query, conversationID)
}

// GetRecentMessages returns at most limit of the newest messages, in
// chronological order.
func (r *implRepository) GetRecentMessages(ctx context.Context, conversationID string, limit int) ([]model.ChatMessage, error) {
	const query = `SELECT id, conversation_id, role, content, created_at FROM chat_messages WHERE conversation_id = ? ORDER BY created_at DESC, rowid DESC LIMIT ?`

	messages, err := r.queryMessages(ctx, "GetRecentMessages", query, conversationID, limit)
	if err != nil {
		return nil, err
	}

	// Newest-first from the query, flip back to chronological.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// GetLastMessage returns the newest message of a conversation.
// Returns zero-value ChatMessage (ID == "") for an empty conversation.
func (r *implRepository) GetLastMessage(ctx context.Context, conversationID string) (model.ChatMessage, error) {
	const query = `SELECT id, conversation_id, role, content, created_at FROM chat_messages WHERE conversation_id = ? ORDER BY created_at DESC, rowid DESC LIMIT 1`

	var m model.ChatMessage
	var role string
	var createdAt int64
	err := r.db.QueryRowContext(ctx, query, conversationID).Scan(&m.ID, &m.ConversationID, &role, &m.Content, &createdAt)
	if err == sql.ErrNoRows {
		return model.ChatMessage{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetLastMessage"), err)
		return model.ChatMessage{}, repo.ErrFailedToGet
	}
	m.Role = model.MessageRole(role)
	m.CreatedAt = time.Unix(createdAt, 0)
	return m, nil
}

// CountUserMessagesSince counts user-authored messages across all of
// the user's conversations since the given instant. The rate limiter
// derives its window from this, so there is no separate counter to
// keep in sync.
func (r *implRepository) CountUserMessagesSince(ctx context.Context, userID string, since time.Time) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM chat_messages m
		JOIN conversations c ON c.id = m.conversation_id
		WHERE c.user_id = ? AND m.role = ? AND m.created_at >= ?`

	var count int
	err := r.db.QueryRowContext(ctx, query, userID, string(model.RoleUser), since.Unix()).Scan(&count)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountUserMessagesSince"), err)
		return 0, repo.ErrFailedToGet
	}
	return count, nil
}

func (r *implRepository) queryMessages(ctx context.Context, method, query string, args ...interface{}) ([]model.ChatMessage, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var messages []model.ChatMessage
	for rows.Next() {
		var m model.ChatMessage
		var role string
		var createdAt int64
		if err := rows.Scan(&m.ID, &m.ConversationID, &role, &m.Content, &createdAt); err != nil {
			return nil, repo.ErrFailedToList
		}
		m.Role = model.MessageRole(role)
		m.CreatedAt = time.Unix(createdAt, 0)
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
