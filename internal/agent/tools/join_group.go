package tools

import (
	"context"
	"errors"
	"fmt"

	"campus-connect/internal/agent"
	"campus-connect/internal/model"
	"campus-connect/internal/social"
)

// JoinGroupTool joins the caller to a group. A missing group or an
// existing membership is reported as an informational result, not a
// failure, so the model can relay it naturally.
type JoinGroupTool struct {
	uc social.UseCase
}

// NewJoinGroupTool creates a new join group tool.
func NewJoinGroupTool(uc social.UseCase) agent.Tool {
	return &JoinGroupTool{uc: uc}
}

func (t *JoinGroupTool) Name() string {
	return "joinGroup"
}

func (t *JoinGroupTool) Description() string {
	return "Join the current user to an interest group by group ID (from searchGroups)."
}

func (t *JoinGroupTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"groupId": map[string]interface{}{
				"type":        "string",
				"description": "ID of the group to join",
			},
		},
		"required": []string{"groupId"},
	}
}

func (t *JoinGroupTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	groupID := stringParam(params, "groupId")
	if groupID == "" {
		return nil, fmt.Errorf("groupId parameter is required")
	}

	sc := model.ScopeFromContext(ctx)
	out, err := t.uc.JoinGroup(ctx, sc, social.JoinGroupInput{GroupID: groupID})
	if errors.Is(err, social.ErrGroupNotFound) {
		return map[string]interface{}{
			"success": true,
			"joined":  false,
			"message": "no group exists with that ID",
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("join group failed: %w", err)
	}

	if out.AlreadyMember {
		return map[string]interface{}{
			"success": true,
			"joined":  false,
			"message": fmt.Sprintf("already a member of %s", out.Group.Name),
		}, nil
	}

	return map[string]interface{}{
		"success": true,
		"joined":  true,
		"group":   out.Group.Name,
	}, nil
}
