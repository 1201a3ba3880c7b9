package tools

import (
	"context"
	"fmt"

	"campus-connect/internal/agent"
	"campus-connect/internal/model"
	"campus-connect/internal/social"
)

// SearchGroupsTool searches interest groups.
type SearchGroupsTool struct {
	uc social.UseCase
}

// NewSearchGroupsTool creates a new search groups tool.
func NewSearchGroupsTool(uc social.UseCase) agent.Tool {
	return &SearchGroupsTool{uc: uc}
}

func (t *SearchGroupsTool) Name() string {
	return "searchGroups"
}

func (t *SearchGroupsTool) Description() string {
	return "Search interest groups by name or topic. Returns up to 5 matches with member counts."
}

func (t *SearchGroupsTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "Text to search for in group names and descriptions",
			},
		},
	}
}

func (t *SearchGroupsTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	sc := model.ScopeFromContext(ctx)
	out, err := t.uc.FindGroups(ctx, sc, social.FindGroupsInput{Query: stringParam(params, "query")})
	if err != nil {
		return nil, fmt.Errorf("group search failed: %w", err)
	}

	groups := make([]map[string]interface{}, 0, len(out.Groups))
	for _, g := range out.Groups {
		groups = append(groups, map[string]interface{}{
			"id":          g.ID,
			"name":        g.Name,
			"description": g.Description,
			"members":     g.MemberCount,
		})
	}

	return map[string]interface{}{
		"count":  out.Count,
		"groups": groups,
	}, nil
}
