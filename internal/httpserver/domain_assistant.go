package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"campus-connect/internal/agent"
	"campus-connect/internal/agent/tools"
	assistantHTTP "campus-connect/internal/assistant/delivery/http"
	"campus-connect/internal/assistant/llm"
	assistantRepo "campus-connect/internal/assistant/repository/sqlite"
	assistantUC "campus-connect/internal/assistant/usecase"
	"campus-connect/internal/middleware"
	socialRepo "campus-connect/internal/social/repository/sqlite"
	socialUC "campus-connect/internal/social/usecase"
)

// setupAssistantDomain initializes the assistant domain and registers
// its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.db, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(rg.Group("/myresource"), h, mw)
func (srv *HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// Social platform: repository and use case the tools act through.
	social := socialRepo.New(srv.db, srv.l)

	var calendar socialUC.CalendarClient
	if srv.calendar != nil {
		calendar = srv.calendar
	}
	socialUseCase := socialUC.New(social, calendar, socialUC.CalendarConfig{
		CalendarID: srv.appConfig.GoogleCalendar.CalendarID,
		Timezone:   srv.appConfig.GoogleCalendar.Timezone,
	}, srv.l)

	// Conversation store doubles as the audit log sink.
	conversations := assistantRepo.New(srv.db, srv.l)

	// Tool registry and dispatcher.
	registry := agent.NewToolRegistry()
	tools.RegisterAll(registry, socialUseCase)
	dispatcher := agent.NewDispatcher(registry, conversations, srv.l)

	// Model client over the configured providers.
	modelClient := llm.New(srv.llmManager, registry.ToFunctionDefinitions(), srv.l)

	var turnTimeout time.Duration
	if raw := srv.appConfig.Assistant.TurnTimeout; raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			srv.l.Warnf(ctx, "Invalid turn timeout %q, running unbounded: %v", raw, err)
		} else {
			turnTimeout = parsed
		}
	}

	uc := assistantUC.New(conversations, modelClient, dispatcher, social, assistantUC.Config{
		MaxToolRounds:   srv.appConfig.Assistant.MaxToolRounds,
		HistoryLimit:    srv.appConfig.Assistant.HistoryLimit,
		RateLimitPerMin: srv.appConfig.Assistant.RateLimitPerMin,
		TurnTimeout:     turnTimeout,
	}, srv.l)

	h := assistantHTTP.New(srv.l, uc)

	// Routes: registers /api/v1/assistant
	assistantHTTP.RegisterRoutes(api.Group("/assistant"), h, mw)

	srv.l.Infof(ctx, "Assistant domain registered with %d tools", len(registry.List()))
	return nil
}
