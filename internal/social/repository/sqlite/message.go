package sqlite

import (
	"context"
	"time"

	"campus-connect/internal/model"
	repo "campus-connect/internal/social/repository"

	"github.com/google/uuid"
)

// CreateDirectMessage inserts a new direct message row.
func (r *implRepository) CreateDirectMessage(ctx context.Context, opt repo.CreateDirectMessageOptions) (model.DirectMessage, error) {
	const query = `INSERT INTO direct_messages (id, sender_id, receiver_id, content, created_at) VALUES (?, ?, ?, ?, ?)`

	now := time.Now()
	id := uuid.NewString()
	if _, err := r.db.ExecContext(ctx, query, id, opt.SenderID, opt.ReceiverID, opt.Content, now.Unix()); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateDirectMessage"), err)
		return model.DirectMessage{}, repo.ErrFailedToInsert
	}

	return model.DirectMessage{
		ID:         id,
		SenderID:   opt.SenderID,
		ReceiverID: opt.ReceiverID,
		Content:    opt.Content,
		CreatedAt:  now,
	}, nil
}
