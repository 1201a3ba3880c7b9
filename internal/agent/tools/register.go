package tools

import (
	"campus-connect/internal/agent"
	"campus-connect/internal/social"
)

// RegisterAll registers the full platform tool set on the registry.
func RegisterAll(registry *agent.ToolRegistry, uc social.UseCase) {
	registry.Register(NewSearchUsersTool(uc))
	registry.Register(NewSendMessageTool(uc))
	registry.Register(NewSearchPostsTool(uc))
	registry.Register(NewCreatePostTool(uc))
	registry.Register(NewSearchGroupsTool(uc))
	registry.Register(NewJoinGroupTool(uc))
	registry.Register(NewSearchEventsTool(uc))
	registry.Register(NewRegisterToEventTool(uc))
}
