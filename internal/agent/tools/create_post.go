package tools

import (
	"context"
	"fmt"

	"campus-connect/internal/agent"
	"campus-connect/internal/model"
	"campus-connect/internal/social"
)

// CreatePostTool publishes a discussion post authored by the caller.
type CreatePostTool struct {
	uc social.UseCase
}

// NewCreatePostTool creates a new create post tool.
func NewCreatePostTool(uc social.UseCase) agent.Tool {
	return &CreatePostTool{uc: uc}
}

func (t *CreatePostTool) Name() string {
	return "createPost"
}

func (t *CreatePostTool) Description() string {
	return "Publish a discussion post on the feed, authored by the current user."
}

func (t *CreatePostTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"content": map[string]interface{}{
				"type":        "string",
				"description": "Post text",
			},
		},
		"required": []string{"content"},
	}
}

func (t *CreatePostTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	content := stringParam(params, "content")
	if content == "" {
		return nil, fmt.Errorf("content parameter is required")
	}

	sc := model.ScopeFromContext(ctx)
	out, err := t.uc.CreatePost(ctx, sc, social.CreatePostInput{Content: content})
	if err != nil {
		return nil, fmt.Errorf("create post failed: %w", err)
	}

	return map[string]interface{}{
		"created": true,
		"postId":  out.Post.ID,
	}, nil
}
