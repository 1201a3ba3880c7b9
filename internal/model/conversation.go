package model

import "time"

// MessageRole distinguishes who authored a chat message.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Conversation is one assistant chat thread owned by a single user.
// The title is derived from the first user message and fixed at creation.
type Conversation struct {
	ID        string
	UserID    string
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ChatMessage is one immutable message inside a conversation,
// ordered by creation time.
type ChatMessage struct {
	ID             string
	ConversationID string
	Role           MessageRole
	Content        string
	CreatedAt      time.Time
}

// ActionLogEntry records one tool invocation attempt, successful or not.
// Entries are append-only and never read back by the orchestrator.
type ActionLogEntry struct {
	ID             string
	ConversationID string
	ToolName       string
	Arguments      string
	Result         string
	Success        bool
	CreatedAt      time.Time
}
