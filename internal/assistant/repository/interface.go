package repository

import (
	"context"
	"time"

	"campus-connect/internal/model"
)

// Repository is the composed interface for the assistant data store.
type Repository interface {
	ConversationRepository
	MessageRepository
	ActionLogRepository
}

// ConversationRepository defines data access for conversations.
// Lookups are ownership-scoped: a conversation belonging to another
// user behaves exactly like a missing one.
type ConversationRepository interface {
	CreateConversation(ctx context.Context, opt CreateConversationOptions) (model.Conversation, error)
	GetConversation(ctx context.Context, userID, id string) (model.Conversation, error)
	ListConversations(ctx context.Context, userID string) ([]model.Conversation, error)
	TouchConversation(ctx context.Context, id string) error
	DeleteConversation(ctx context.Context, id string) error
}

// MessageRepository defines data access for chat messages.
type MessageRepository interface {
	CreateMessage(ctx context.Context, opt CreateMessageOptions) (model.ChatMessage, error)
	ListMessages(ctx context.Context, conversationID string) ([]model.ChatMessage, error)
	GetRecentMessages(ctx context.Context, conversationID string, limit int) ([]model.ChatMessage, error)
	GetLastMessage(ctx context.Context, conversationID string) (model.ChatMessage, error)
	CountUserMessagesSince(ctx context.Context, userID string, since time.Time) (int, error)
}

// ActionLogRepository is the append-only audit log of tool invocations.
type ActionLogRepository interface {
	CreateActionLog(ctx context.Context, entry model.ActionLogEntry) error
}
