package social

import "errors"

// Domain-specific errors for the social package.
var (
	ErrEmptyFilter      = errors.New("at least one search filter is required")
	ErrEmptyContent     = errors.New("content is empty")
	ErrReceiverNotFound = errors.New("receiver not found")
	ErrReceiverInactive = errors.New("receiver is inactive")
	ErrGroupNotFound    = errors.New("group not found")
	ErrEventNotFound    = errors.New("event not found")
	ErrEventFull        = errors.New("event is at capacity")
)
