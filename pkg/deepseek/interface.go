package deepseek

import "context"

// IDeepSeek defines the interface for DeepSeek LLM client
type IDeepSeek interface {
	// GenerateContent sends a chat completion request to DeepSeek API
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string
}
