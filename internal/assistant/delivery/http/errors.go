package http

import (
	"campus-connect/internal/assistant"
	pkgErrors "campus-connect/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case assistant.ErrEmptyMessage:
		return pkgErrors.NewHTTPError(400, "message must not be empty")
	case assistant.ErrConversationNotFound:
		return pkgErrors.NewHTTPError(404, "conversation not found")
	case assistant.ErrRateLimited:
		return pkgErrors.NewHTTPError(429, "too many messages, slow down")
	case assistant.ErrModelUnavailable:
		return pkgErrors.NewHTTPError(503, "assistant is not available right now")
	case assistant.ErrModelFailure:
		return pkgErrors.NewHTTPError(502, "assistant failed to produce a reply")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
