package tools

import (
	"context"
	"errors"
	"fmt"

	"campus-connect/internal/agent"
	"campus-connect/internal/model"
	"campus-connect/internal/social"
)

// RegisterToEventTool registers the caller for an event. Not-found,
// at-capacity and already-registered come back as distinguished
// informational results.
type RegisterToEventTool struct {
	uc social.UseCase
}

// NewRegisterToEventTool creates a new register to event tool.
func NewRegisterToEventTool(uc social.UseCase) agent.Tool {
	return &RegisterToEventTool{uc: uc}
}

func (t *RegisterToEventTool) Name() string {
	return "registerToEvent"
}

func (t *RegisterToEventTool) Description() string {
	return "Register the current user as an attendee of an event by event ID (from searchEvents)."
}

func (t *RegisterToEventTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"eventId": map[string]interface{}{
				"type":        "string",
				"description": "ID of the event to register for",
			},
		},
		"required": []string{"eventId"},
	}
}

func (t *RegisterToEventTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	eventID := stringParam(params, "eventId")
	if eventID == "" {
		return nil, fmt.Errorf("eventId parameter is required")
	}

	sc := model.ScopeFromContext(ctx)
	out, err := t.uc.RegisterAttendance(ctx, sc, social.RegisterAttendanceInput{EventID: eventID})
	switch {
	case errors.Is(err, social.ErrEventNotFound):
		return map[string]interface{}{
			"success": false,
			"status":  "not_found",
			"error":   "no event exists with that ID",
		}, nil
	case errors.Is(err, social.ErrEventFull):
		return map[string]interface{}{
			"success": false,
			"status":  "at_capacity",
			"error":   "the event has no spots left",
		}, nil
	case err != nil:
		return nil, fmt.Errorf("event registration failed: %w", err)
	}

	if out.AlreadyRegistered {
		return map[string]interface{}{
			"success": true,
			"status":  "already_registered",
			"event":   out.Event.Title,
		}, nil
	}

	result := map[string]interface{}{
		"success": true,
		"status":  "registered",
		"event":   out.Event.Title,
	}
	if out.CalendarLink != "" {
		result["calendarLink"] = out.CalendarLink
	}
	return result, nil
}
