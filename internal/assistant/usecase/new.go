package usecase

import (
	"context"
	"time"

	"campus-connect/internal/assistant"
	"campus-connect/internal/assistant/repository"
	"campus-connect/internal/model"
	"campus-connect/pkg/llmprovider"
	"campus-connect/pkg/log"
)

// Dispatcher executes one tool call and always returns a structured
// result. Implemented by internal/agent.Dispatcher.
type Dispatcher interface {
	Dispatch(ctx context.Context, conversationID string, call llmprovider.FunctionCall) interface{}
}

// ProfileReader supplies the caller's directory profile so the system
// prompt can be specialized to their career.
type ProfileReader interface {
	GetProfile(ctx context.Context, id string) (model.Profile, error)
}

// Config bounds one user turn.
type Config struct {
	MaxToolRounds   int           // tool-call rounds before forced finalize
	HistoryLimit    int           // messages of context per model call
	RateLimitPerMin int           // user-authored turns per sliding minute
	TurnTimeout     time.Duration // wall-clock bound for the whole turn
}

// implUseCase is the private implementation of assistant.UseCase.
type implUseCase struct {
	repo        repository.Repository
	modelClient assistant.ModelClient
	dispatcher  Dispatcher
	profiles    ProfileReader
	cfg         Config
	l           log.Logger
	now         func() time.Time
}

// New creates a new assistant UseCase implementation. profiles may be
// nil; the system prompt then carries no specialization.
func New(repo repository.Repository, modelClient assistant.ModelClient, dispatcher Dispatcher, profiles ProfileReader, cfg Config, l log.Logger) *implUseCase {
	if cfg.MaxToolRounds <= 0 {
		cfg.MaxToolRounds = 5
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = 20
	}
	if cfg.RateLimitPerMin <= 0 {
		cfg.RateLimitPerMin = 20
	}
	return &implUseCase{
		repo:        repo,
		modelClient: modelClient,
		dispatcher:  dispatcher,
		profiles:    profiles,
		cfg:         cfg,
		l:           l,
		now:         time.Now,
	}
}
