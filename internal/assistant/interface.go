package assistant

import (
	"context"

	"campus-connect/internal/model"
	"campus-connect/pkg/llmprovider"
)

// UseCase defines the business logic interface for the assistant domain.
type UseCase interface {
	// SendMessage processes one user turn: rate check, conversation
	// resolution, the bounded tool-use loop, and persistence of the
	// final assistant reply.
	SendMessage(ctx context.Context, sc model.Scope, input SendMessageInput) (SendMessageOutput, error)

	// ListConversations returns the caller's conversations, most
	// recently active first, each with a last-message preview.
	ListConversations(ctx context.Context, sc model.Scope) (ListConversationsOutput, error)

	// GetConversation returns one owned conversation with its full
	// ordered message history.
	GetConversation(ctx context.Context, sc model.Scope, id string) (GetConversationOutput, error)

	// DeleteConversation removes an owned conversation and its messages.
	DeleteConversation(ctx context.Context, sc model.Scope, id string) error
}

// ModelTurn is the discriminated result of one model round: either
// final free text or a non-empty list of requested tool calls.
type ModelTurn struct {
	Text      string
	ToolCalls []llmprovider.FunctionCall
}

// ToolResult pairs an executed call with its outcome so the model can
// be re-invoked with everything that happened this turn.
type ToolResult struct {
	Name   string
	Args   map[string]interface{}
	Result interface{}
}

// ModelClient is the vendor-neutral capability the orchestrator talks
// to. No provider-specific type leaks past it.
type ModelClient interface {
	// Converse runs the first round of a turn.
	Converse(ctx context.Context, systemPrompt string, history []model.ChatMessage, userText string) (ModelTurn, error)

	// ContinueWithToolResults re-invokes the model with the accumulated
	// tool results of the turn so far.
	ContinueWithToolResults(ctx context.Context, systemPrompt string, history []model.ChatMessage, userText string, results []ToolResult) (ModelTurn, error)

	// IsAvailable reports whether a model backend is configured.
	IsAvailable() bool
}
