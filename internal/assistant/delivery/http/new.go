package http

import (
	"campus-connect/internal/assistant"
	"campus-connect/pkg/log"
)

// Handler is the public interface for the assistant HTTP delivery layer.
type Handler interface {
	SendMessage(c interface{})
	ListConversations(c interface{})
	GetConversation(c interface{})
	DeleteConversation(c interface{})
}

type handler struct {
	l  log.Logger
	uc assistant.UseCase
}

// New creates a new HTTP handler for the assistant domain.
func New(l log.Logger, uc assistant.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
