package llmprovider

import (
	"context"
	"encoding/json"
	"fmt"

	"campus-connect/pkg/deepseek"
	"campus-connect/pkg/gemini"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: convertToGeminiContent(req.SystemInstruction),
		Messages:          convertToGeminiContents(req.Messages),
		Tools:             convertToGeminiTools(req.Tools),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      convertFromGeminiContent(resp.Content),
		ProviderName: "gemini",
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// Conversion helpers for Gemini
func convertToGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &gemini.FunctionCall{
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
		if p.FunctionResponse != nil {
			parts[i].FunctionResponse = &gemini.FunctionResponse{
				Name:     p.FunctionResponse.Name,
				Response: p.FunctionResponse.Response,
			}
		}
	}
	return &gemini.Content{Role: msg.Role, Parts: parts}
}

func convertToGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, len(msgs))
	for i, msg := range msgs {
		// Gemini expects "model" for assistant turns and "function" for tool results
		content := convertToGeminiContent(&msg)
		switch msg.Role {
		case "assistant":
			content.Role = "model"
		case "tool":
			content.Role = "function"
		}
		contents[i] = *content
	}
	return contents
}

func convertToGeminiTools(tools []Tool) []gemini.Tool {
	geminiTools := make([]gemini.Tool, len(tools))
	for i, t := range tools {
		geminiTools[i] = gemini.Tool{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.Parameters,
		}
	}
	return geminiTools
}

func convertFromGeminiContent(content gemini.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &FunctionCall{
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
		if p.FunctionResponse != nil {
			parts[i].FunctionResponse = &FunctionResponse{
				Name:     p.FunctionResponse.Name,
				Response: p.FunctionResponse.Response,
			}
		}
	}
	role := content.Role
	if role == "model" {
		role = "assistant"
	}
	return Message{Role: role, Parts: parts}
}

// DeepSeekAdapter adapts pkg/deepseek to llmprovider.Provider interface
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

// NewDeepSeekAdapter creates a new DeepSeek adapter
func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	deepseekReq := &deepseek.Request{
		Messages:    convertToDeepSeekMessages(req.SystemInstruction, req.Messages),
		Tools:       convertToDeepSeekTools(req.Tools),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	resp, err := a.client.GenerateContent(ctx, deepseekReq)
	if err != nil {
		return nil, err
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("deepseek: empty choices in response")
	}

	return &Response{
		Content:      convertFromDeepSeekMessage(resp.Choices[0].Message),
		ProviderName: "deepseek",
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *DeepSeekAdapter) Name() string {
	return "deepseek"
}

// Model returns model name
func (a *DeepSeekAdapter) Model() string {
	return a.client.Model()
}

// Conversion helpers for DeepSeek (OpenAI-compatible chat format).
// Function calls become assistant tool_calls; function responses become
// "tool" role messages referencing a synthetic call id derived from the name.
func convertToDeepSeekMessages(system *Message, msgs []Message) []deepseek.Message {
	out := make([]deepseek.Message, 0, len(msgs)+1)

	if system != nil {
		out = append(out, deepseek.Message{Role: "system", Content: partsText(system.Parts)})
	}

	for _, msg := range msgs {
		var toolCalls []deepseek.ToolCall
		var toolResponses []deepseek.Message
		text := ""

		for _, p := range msg.Parts {
			if p.Text != "" {
				text += p.Text
			}
			if p.FunctionCall != nil {
				args, _ := json.Marshal(p.FunctionCall.Args)
				toolCalls = append(toolCalls, deepseek.ToolCall{
					ID:   "call_" + p.FunctionCall.Name,
					Type: "function",
					Function: deepseek.FunctionCall{
						Name:      p.FunctionCall.Name,
						Arguments: string(args),
					},
				})
			}
			if p.FunctionResponse != nil {
				payload, _ := json.Marshal(p.FunctionResponse.Response)
				toolResponses = append(toolResponses, deepseek.Message{
					Role:       "tool",
					ToolCallID: "call_" + p.FunctionResponse.Name,
					Content:    string(payload),
				})
			}
		}

		if len(toolResponses) > 0 {
			out = append(out, toolResponses...)
			continue
		}

		role := msg.Role
		if role == "" {
			role = "user"
		}
		out = append(out, deepseek.Message{
			Role:      role,
			Content:   text,
			ToolCalls: toolCalls,
		})
	}

	return out
}

func convertToDeepSeekTools(tools []Tool) []deepseek.Tool {
	if len(tools) == 0 {
		return nil
	}
	out := make([]deepseek.Tool, len(tools))
	for i, t := range tools {
		out[i] = deepseek.Tool{
			Type: "function",
			Function: deepseek.FunctionDef{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		}
	}
	return out
}

func convertFromDeepSeekMessage(msg deepseek.Message) Message {
	parts := make([]Part, 0, 1+len(msg.ToolCalls))
	if msg.Content != "" {
		parts = append(parts, Part{Text: msg.Content})
	}
	for _, tc := range msg.ToolCalls {
		args := map[string]interface{}{}
		if tc.Function.Arguments != "" {
			// Malformed args from the model degrade to an empty map;
			// the tool handler validates and reports missing fields.
			_ = json.Unmarshal([]byte(tc.Function.Arguments), &args)
		}
		parts = append(parts, Part{
			FunctionCall: &FunctionCall{Name: tc.Function.Name, Args: args},
		})
	}
	return Message{Role: "assistant", Parts: parts}
}

func partsText(parts []Part) string {
	text := ""
	for _, p := range parts {
		text += p.Text
	}
	return text
}
