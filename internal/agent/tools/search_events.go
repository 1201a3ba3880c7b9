package tools

import (
	"context"
	"fmt"

	"campus-connect/internal/agent"
	"campus-connect/internal/model"
	"campus-connect/internal/social"
)

// SearchEventsTool searches upcoming events.
type SearchEventsTool struct {
	uc social.UseCase
}

// NewSearchEventsTool creates a new search events tool.
func NewSearchEventsTool(uc social.UseCase) agent.Tool {
	return &SearchEventsTool{uc: uc}
}

func (t *SearchEventsTool) Name() string {
	return "searchEvents"
}

func (t *SearchEventsTool) Description() string {
	return "Search upcoming events by title or topic. Returns up to 5 events, soonest first."
}

func (t *SearchEventsTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "Text to search for in event titles and descriptions",
			},
		},
	}
}

func (t *SearchEventsTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	sc := model.ScopeFromContext(ctx)
	out, err := t.uc.FindUpcomingEvents(ctx, sc, social.FindEventsInput{Query: stringParam(params, "query")})
	if err != nil {
		return nil, fmt.Errorf("event search failed: %w", err)
	}

	events := make([]map[string]interface{}, 0, len(out.Events))
	for _, e := range out.Events {
		spots := "unlimited"
		if e.MaxAttendees > 0 {
			spots = fmt.Sprintf("%d", e.MaxAttendees-e.AttendeeCount)
		}
		events = append(events, map[string]interface{}{
			"id":        e.ID,
			"title":     e.Title,
			"location":  e.Location,
			"startsAt":  e.StartsAt.Format(displayTimeFormat),
			"spotsLeft": spots,
		})
	}

	return map[string]interface{}{
		"count":  out.Count,
		"events": events,
	}, nil
}
