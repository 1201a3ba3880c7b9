package http

import (
	"time"

	"campus-connect/internal/assistant"
	"campus-connect/internal/model"
)

// --- Request DTOs ---

type sendMessageReq struct {
	Message        string `json:"message"        binding:"required,min=1,max=4000"`
	ConversationID string `json:"conversationId" binding:"omitempty"`
}

func (r sendMessageReq) validate() error { return nil }

func (r sendMessageReq) toInput() assistant.SendMessageInput {
	return assistant.SendMessageInput{
		Content:        r.Message,
		ConversationID: r.ConversationID,
	}
}

// --- Response DTOs ---

type messageResp struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func newMessageResp(msg model.ChatMessage) messageResp {
	return messageResp{
		ID:        msg.ID,
		Role:      string(msg.Role),
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}
}

type sendMessageResp struct {
	ConversationID  string      `json:"conversationId"`
	Reply           messageResp `json:"reply"`
	ActionsExecuted int         `json:"actionsExecuted"`
}

func (h *handler) newSendMessageResp(out assistant.SendMessageOutput) sendMessageResp {
	return sendMessageResp{
		ConversationID:  out.ConversationID,
		Reply:           newMessageResp(out.Message),
		ActionsExecuted: out.ActionsExecuted,
	}
}

type conversationResp struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	LastMessagePreview string    `json:"last_message_preview,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type listConversationsResp struct {
	Conversations []conversationResp `json:"conversations"`
}

func (h *handler) newListConversationsResp(out assistant.ListConversationsOutput) listConversationsResp {
	conversations := make([]conversationResp, len(out.Conversations))
	for i, s := range out.Conversations {
		conversations[i] = conversationResp{
			ID:                 s.Conversation.ID,
			Title:              s.Conversation.Title,
			LastMessagePreview: s.LastMessagePreview,
			CreatedAt:          s.Conversation.CreatedAt,
			UpdatedAt:          s.Conversation.UpdatedAt,
		}
	}
	return listConversationsResp{Conversations: conversations}
}

type detailConversationResp struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
	Messages  []messageResp `json:"messages"`
}

func (h *handler) newDetailConversationResp(out assistant.GetConversationOutput) detailConversationResp {
	messages := make([]messageResp, len(out.Messages))
	for i, msg := range out.Messages {
		messages[i] = newMessageResp(msg)
	}
	return detailConversationResp{
		ID:        out.Conversation.ID,
		Title:     out.Conversation.Title,
		CreatedAt: out.Conversation.CreatedAt,
		UpdatedAt: out.Conversation.UpdatedAt,
		Messages:  messages,
	}
}
