package tools

import (
	"context"
	"fmt"

	"campus-connect/internal/agent"
	"campus-connect/internal/model"
	"campus-connect/internal/social"
)

const displayTimeFormat = "2006-01-02 15:04"

// SearchPostsTool searches the discussion feed.
type SearchPostsTool struct {
	uc social.UseCase
}

// NewSearchPostsTool creates a new search posts tool.
func NewSearchPostsTool(uc social.UseCase) agent.Tool {
	return &SearchPostsTool{uc: uc}
}

func (t *SearchPostsTool) Name() string {
	return "searchPosts"
}

func (t *SearchPostsTool) Description() string {
	return "Search discussion posts by content or author name. Returns up to 5 recent matches."
}

func (t *SearchPostsTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "Text to search for in post content",
			},
			"authorName": map[string]interface{}{
				"type":        "string",
				"description": "Full or partial author name",
			},
		},
	}
}

func (t *SearchPostsTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	sc := model.ScopeFromContext(ctx)
	out, err := t.uc.FindPosts(ctx, sc, social.FindPostsInput{
		Query:      stringParam(params, "query"),
		AuthorName: stringParam(params, "authorName"),
	})
	if err != nil {
		return nil, fmt.Errorf("post search failed: %w", err)
	}

	posts := make([]map[string]interface{}, 0, len(out.Posts))
	for _, p := range out.Posts {
		posts = append(posts, map[string]interface{}{
			"id":        p.ID,
			"author":    p.AuthorName,
			"content":   p.Content,
			"createdAt": p.CreatedAt.Format(displayTimeFormat),
		})
	}

	return map[string]interface{}{
		"count": out.Count,
		"posts": posts,
	}, nil
}
