package tools

import (
	"context"
	"fmt"

	"campus-connect/internal/agent"
	"campus-connect/internal/model"
	"campus-connect/internal/social"
)

// SearchUsersTool implements the user directory search tool.
type SearchUsersTool struct {
	uc social.UseCase
}

// NewSearchUsersTool creates a new search users tool.
func NewSearchUsersTool(uc social.UseCase) agent.Tool {
	return &SearchUsersTool{uc: uc}
}

func (t *SearchUsersTool) Name() string {
	return "searchUsers"
}

func (t *SearchUsersTool) Description() string {
	return "Search platform users by name and/or career. Returns up to 10 matching profiles."
}

func (t *SearchUsersTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"name": map[string]interface{}{
				"type":        "string",
				"description": "Full or partial name to search for",
			},
			"career": map[string]interface{}{
				"type":        "string",
				"description": "Full or partial career/field of study to search for",
			},
		},
	}
}

func (t *SearchUsersTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	name := stringParam(params, "name")
	career := stringParam(params, "career")
	if name == "" && career == "" {
		return nil, fmt.Errorf("either name or career is required")
	}

	sc := model.ScopeFromContext(ctx)
	out, err := t.uc.FindUsers(ctx, sc, social.FindUsersInput{NamePart: name, CareerPart: career})
	if err != nil {
		return nil, fmt.Errorf("user search failed: %w", err)
	}

	users := make([]map[string]interface{}, 0, len(out.Users))
	for _, u := range out.Users {
		users = append(users, map[string]interface{}{
			"id":     u.ID,
			"name":   u.FullName,
			"career": u.Career,
		})
	}

	return map[string]interface{}{
		"count": out.Count,
		"users": users,
	}, nil
}
