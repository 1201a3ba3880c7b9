package assistant

import "errors"

// Domain-specific errors for the assistant package.
var (
	ErrEmptyMessage         = errors.New("message content is empty")
	ErrModelUnavailable     = errors.New("no language model is configured")
	ErrRateLimited          = errors.New("too many messages, try again in a minute")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrModelFailure         = errors.New("could not process your message")
)
