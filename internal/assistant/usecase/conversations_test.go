package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"campus-connect/internal/assistant"
	repo "campus-connect/internal/assistant/repository"
	"campus-connect/internal/model"
)

func seedConversation(t *testing.T, r *mockRepo, userID string, contents ...string) model.Conversation {
	t.Helper()
	conv, err := r.CreateConversation(context.Background(), repo.CreateConversationOptions{UserID: userID, Title: "t"})
	if err != nil {
		t.Fatalf("seed conversation: %v", err)
	}
	for _, c := range contents {
		if _, err := r.CreateMessage(context.Background(), repo.CreateMessageOptions{ConversationID: conv.ID, Role: model.RoleUser, Content: c}); err != nil {
			t.Fatalf("seed message: %v", err)
		}
	}
	return conv
}

func TestListConversations(t *testing.T) {
	r := newMockRepo()
	seedConversation(t, r, "u1", "primer mensaje", "ultimo mensaje")
	seedConversation(t, r, "u1", strings.Repeat("x", 100))
	seedConversation(t, r, "u2", "ajeno")
	uc := newTestUseCase(r, &scriptedModel{available: true}, newMockDispatcher())

	out, err := uc.ListConversations(context.Background(), model.Scope{UserID: "u1"})
	if err != nil {
		t.Fatalf("ListConversations: %v", err)
	}
	if len(out.Conversations) != 2 {
		t.Fatalf("expected 2 conversations, got %d", len(out.Conversations))
	}

	previews := make(map[string]bool)
	for _, s := range out.Conversations {
		previews[s.LastMessagePreview] = true
	}
	if !previews["ultimo mensaje"] {
		t.Errorf("expected the latest message as preview, got %v", previews)
	}
	if !previews[strings.Repeat("x", 80)+"..."] {
		t.Errorf("expected a truncated preview, got %v", previews)
	}
}

func TestGetConversation(t *testing.T) {
	r := newMockRepo()
	conv := seedConversation(t, r, "u1", "hola", "que tal")
	uc := newTestUseCase(r, &scriptedModel{available: true}, newMockDispatcher())

	t.Run("owned conversation with full history", func(t *testing.T) {
		out, err := uc.GetConversation(context.Background(), model.Scope{UserID: "u1"}, conv.ID)
		if err != nil {
			t.Fatalf("GetConversation: %v", err)
		}
		if out.Conversation.ID != conv.ID {
			t.Errorf("wrong conversation %q", out.Conversation.ID)
		}
		if len(out.Messages) != 2 || out.Messages[0].Content != "hola" {
			t.Errorf("unexpected history: %+v", out.Messages)
		}
	})

	t.Run("another user's conversation is not found", func(t *testing.T) {
		_, err := uc.GetConversation(context.Background(), model.Scope{UserID: "u2"}, conv.ID)
		if !errors.Is(err, assistant.ErrConversationNotFound) {
			t.Fatalf("expected ErrConversationNotFound, got %v", err)
		}
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := uc.GetConversation(context.Background(), model.Scope{UserID: "u1"}, "missing")
		if !errors.Is(err, assistant.ErrConversationNotFound) {
			t.Fatalf("expected ErrConversationNotFound, got %v", err)
		}
	})
}

func TestDeleteConversation(t *testing.T) {
	r := newMockRepo()
	conv := seedConversation(t, r, "u1", "hola")
	uc := newTestUseCase(r, &scriptedModel{available: true}, newMockDispatcher())

	t.Run("non-owner cannot delete", func(t *testing.T) {
		err := uc.DeleteConversation(context.Background(), model.Scope{UserID: "u2"}, conv.ID)
		if !errors.Is(err, assistant.ErrConversationNotFound) {
			t.Fatalf("expected ErrConversationNotFound, got %v", err)
		}
		if len(r.deleted) != 0 {
			t.Errorf("nothing should be deleted")
		}
	})

	t.Run("owner delete removes the conversation", func(t *testing.T) {
		if err := uc.DeleteConversation(context.Background(), model.Scope{UserID: "u1"}, conv.ID); err != nil {
			t.Fatalf("DeleteConversation: %v", err)
		}
		if len(r.deleted) != 1 || r.deleted[0] != conv.ID {
			t.Errorf("expected %s deleted, got %v", conv.ID, r.deleted)
		}
	})

	t.Run("deleting again is not found", func(t *testing.T) {
		err := uc.DeleteConversation(context.Background(), model.Scope{UserID: "u1"}, conv.ID)
		if !errors.Is(err, assistant.ErrConversationNotFound) {
			t.Fatalf("expected ErrConversationNotFound, got %v", err)
		}
	})
}
