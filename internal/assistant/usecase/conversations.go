package usecase

import (
	"context"

	"campus-connect/internal/assistant"
	"campus-connect/internal/model"
)

const previewLimit = 80

// ListConversations returns the caller's conversations, most recently
// active first, each with a preview of its latest message.
func (uc *implUseCase) ListConversations(ctx context.Context, sc model.Scope) (assistant.ListConversationsOutput, error) {
	conversations, err := uc.repo.ListConversations(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListConversations ListConversations: %v", err)
		return assistant.ListConversationsOutput{}, err
	}

	summaries := make([]assistant.ConversationSummary, 0, len(conversations))
	for _, conv := range conversations {
		last, err := uc.repo.GetLastMessage(ctx, conv.ID)
		if err != nil {
			uc.l.Errorf(ctx, "uc.ListConversations GetLastMessage: %v", err)
			return assistant.ListConversationsOutput{}, err
		}
		summaries = append(summaries, assistant.ConversationSummary{
			Conversation:       conv,
			LastMessagePreview: makePreview(last.Content),
		})
	}

	return assistant.ListConversationsOutput{Conversations: summaries}, nil
}

// GetConversation returns one owned conversation with its full ordered
// message history.
func (uc *implUseCase) GetConversation(ctx context.Context, sc model.Scope, id string) (assistant.GetConversationOutput, error) {
	conv, err := uc.repo.GetConversation(ctx, sc.UserID, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetConversation GetConversation: %v", err)
		return assistant.GetConversationOutput{}, err
	}
	if conv.ID == "" {
		return assistant.GetConversationOutput{}, assistant.ErrConversationNotFound
	}

	messages, err := uc.repo.ListMessages(ctx, conv.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetConversation ListMessages: %v", err)
		return assistant.GetConversationOutput{}, err
	}

	return assistant.GetConversationOutput{Conversation: conv, Messages: messages}, nil
}

// DeleteConversation removes an owned conversation. A missing or
// non-owned id is a not-found error, never a silent no-op.
func (uc *implUseCase) DeleteConversation(ctx context.Context, sc model.Scope, id string) error {
	conv, err := uc.repo.GetConversation(ctx, sc.UserID, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteConversation GetConversation: %v", err)
		return err
	}
	if conv.ID == "" {
		return assistant.ErrConversationNotFound
	}

	if err := uc.repo.DeleteConversation(ctx, conv.ID); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteConversation DeleteConversation: %v", err)
		return err
	}
	return nil
}

func makePreview(content string) string {
	runes := []rune(content)
	if len(runes) <= previewLimit {
		return content
	}
	return string(runes[:previewLimit]) + "..."
}
