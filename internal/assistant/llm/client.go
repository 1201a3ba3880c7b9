package llm

import (
	"context"

	"campus-connect/internal/assistant"
	"campus-connect/internal/model"
	"campus-connect/pkg/llmprovider"
	"campus-connect/pkg/log"
)

// Client adapts the provider manager to the assistant.ModelClient
// contract. Callers never see a provider-specific type.
type Client struct {
	manager *llmprovider.Manager
	tools   []llmprovider.Tool
	l       log.Logger
}

// New creates a model client that advertises the given tool set.
// manager may be nil when no provider is configured.
func New(manager *llmprovider.Manager, tools []llmprovider.Tool, l log.Logger) *Client {
	return &Client{
		manager: manager,
		tools:   tools,
		l:       l,
	}
}

// IsAvailable reports whether a model backend is configured.
func (c *Client) IsAvailable() bool {
	return c.manager != nil && c.manager.HasProviders()
}

// Converse runs the first round of a turn.
func (c *Client) Converse(ctx context.Context, systemPrompt string, history []model.ChatMessage, userText string) (assistant.ModelTurn, error) {
	req := c.buildRequest(systemPrompt, history, userText, nil)
	return c.generate(ctx, req)
}

// ContinueWithToolResults re-invokes the model with the accumulated
// tool results of the turn so far.
func (c *Client) ContinueWithToolResults(ctx context.Context, systemPrompt string, history []model.ChatMessage, userText string, results []assistant.ToolResult) (assistant.ModelTurn, error) {
	req := c.buildRequest(systemPrompt, history, userText, results)
	return c.generate(ctx, req)
}

func (c *Client) buildRequest(systemPrompt string, history []model.ChatMessage, userText string, results []assistant.ToolResult) *llmprovider.Request {
	messages := make([]llmprovider.Message, 0, len(history)+1+2*len(results))

	for _, m := range history {
		role := "user"
		if m.Role == model.RoleAssistant {
			role = "assistant"
		}
		messages = append(messages, llmprovider.Message{
			Role:  role,
			Parts: []llmprovider.Part{{Text: m.Content}},
		})
	}

	messages = append(messages, llmprovider.Message{
		Role:  "user",
		Parts: []llmprovider.Part{{Text: userText}},
	})

	// Each executed call is replayed as the model's own request followed
	// by its result, so every provider sees a well-formed exchange.
	for _, r := range results {
		messages = append(messages,
			llmprovider.Message{
				Role:  "assistant",
				Parts: []llmprovider.Part{{FunctionCall: &llmprovider.FunctionCall{Name: r.Name, Args: r.Args}}},
			},
			llmprovider.Message{
				Role:  "tool",
				Parts: []llmprovider.Part{{FunctionResponse: &llmprovider.FunctionResponse{Name: r.Name, Response: r.Result}}},
			},
		)
	}

	return &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: systemPrompt}},
		},
		Messages: messages,
		Tools:    c.tools,
	}
}

func (c *Client) generate(ctx context.Context, req *llmprovider.Request) (assistant.ModelTurn, error) {
	resp, err := c.manager.GenerateContent(ctx, req)
	if err != nil {
		return assistant.ModelTurn{}, err
	}

	var turn assistant.ModelTurn
	for _, part := range resp.Content.Parts {
		switch {
		case part.FunctionCall != nil:
			turn.ToolCalls = append(turn.ToolCalls, *part.FunctionCall)
		case part.Text != "":
			if turn.Text != "" {
				turn.Text += "\n"
			}
			turn.Text += part.Text
		}
	}
	return turn, nil
}
