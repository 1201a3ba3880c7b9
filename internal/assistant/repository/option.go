package repository

import "campus-connect/internal/model"

type CreateConversationOptions struct {
	UserID string
	Title  string
}

type CreateMessageOptions struct {
	ConversationID string
	Role           model.MessageRole
	Content        string
}
