package assistant

import (
	"time"

	"campus-connect/internal/model"
)

type SendMessageInput struct {
	Content        string
	ConversationID string // empty starts a new conversation
}

type SendMessageOutput struct {
	ConversationID  string
	Message         model.ChatMessage // the persisted assistant reply
	ActionsExecuted int
}

// ConversationSummary is a list row with a preview of the latest message.
type ConversationSummary struct {
	Conversation       model.Conversation
	LastMessagePreview string
}

type ListConversationsOutput struct {
	Conversations []ConversationSummary
}

type GetConversationOutput struct {
	Conversation model.Conversation
	Messages     []model.ChatMessage
}

// RateWindow is the sliding window the turn limiter counts over.
const RateWindow = time.Minute
