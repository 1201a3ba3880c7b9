package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campus-connect/config"
	_ "campus-connect/docs" // Swagger docs
	assistantRepo "campus-connect/internal/assistant/repository/sqlite"
	"campus-connect/internal/httpserver"
	socialRepo "campus-connect/internal/social/repository/sqlite"
	"campus-connect/pkg/gcalendar"
	"campus-connect/pkg/llmprovider"
	"campus-connect/pkg/log"
	"campus-connect/pkg/sqlitedb"
)

// @title       Campus Connect Assistant API
// @description Conversational assistant for the Campus Connect platform. Chats with students and acts on the platform through tools.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Campus Connect Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	db, err := sqlitedb.Open(cfg.Database.Path)
	if err != nil {
		logger.Errorf(ctx, "Failed to open database: %v", err)
		return
	}
	defer db.Close()

	if err := socialRepo.Migrate(db); err != nil {
		logger.Errorf(ctx, "Failed to migrate social schema: %v", err)
		return
	}
	if err := assistantRepo.Migrate(db); err != nil {
		logger.Errorf(ctx, "Failed to migrate assistant schema: %v", err)
		return
	}

	// 4. LLM providers. A missing provider config is not fatal: the
	// server still serves conversations and reports the assistant as
	// unavailable.
	var manager *llmprovider.Manager
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Warnf(ctx, "No LLM providers available: %v", err)
	} else {
		manager = llmprovider.NewManager(providers, &llmprovider.Config{
			FallbackEnabled: cfg.LLM.FallbackEnabled,
			RetryAttempts:   cfg.LLM.RetryAttempts,
			RetryDelay:      parseDuration(cfg.LLM.RetryDelay, time.Second),
			MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 60*time.Second),
		}, logger)
		logger.Infof(ctx, "LLM manager initialized with %d provider(s)", len(providers))
	}

	// 5. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		AppConfig:  cfg,
		DB:         db,
		LLMManager: manager,
		Calendar:   calendarClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
