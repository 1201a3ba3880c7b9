package tools

import (
	"context"
	"errors"
	"fmt"

	"campus-connect/internal/agent"
	"campus-connect/internal/model"
	"campus-connect/internal/social"
)

// SendMessageTool sends a direct message on the caller's behalf.
type SendMessageTool struct {
	uc social.UseCase
}

// NewSendMessageTool creates a new send message tool.
func NewSendMessageTool(uc social.UseCase) agent.Tool {
	return &SendMessageTool{uc: uc}
}

func (t *SendMessageTool) Name() string {
	return "sendMessage"
}

func (t *SendMessageTool) Description() string {
	return "Send a direct message to another user. The message is sent from the current user."
}

func (t *SendMessageTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"userId": map[string]interface{}{
				"type":        "string",
				"description": "ID of the user to message (from searchUsers)",
			},
			"content": map[string]interface{}{
				"type":        "string",
				"description": "Message text",
			},
		},
		"required": []string{"userId", "content"},
	}
}

func (t *SendMessageTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	receiverID := stringParam(params, "userId")
	content := stringParam(params, "content")
	if receiverID == "" {
		return nil, fmt.Errorf("userId parameter is required")
	}
	if content == "" {
		return nil, fmt.Errorf("content parameter is required")
	}

	sc := model.ScopeFromContext(ctx)
	out, err := t.uc.CreateDirectMessage(ctx, sc, social.CreateDirectMessageInput{
		ReceiverID: receiverID,
		Content:    content,
	})
	if err != nil {
		if errors.Is(err, social.ErrReceiverNotFound) || errors.Is(err, social.ErrReceiverInactive) {
			return nil, err
		}
		return nil, fmt.Errorf("send message failed: %w", err)
	}

	return map[string]interface{}{
		"sent":      true,
		"messageId": out.Message.ID,
	}, nil
}
