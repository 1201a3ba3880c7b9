package httpserver

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"campus-connect/config"
	"campus-connect/pkg/gcalendar"
	"campus-connect/pkg/llmprovider"
	"campus-connect/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared dependencies for domain wiring
	appConfig  *config.Config
	db         *sql.DB
	llmManager *llmprovider.Manager
	calendar   *gcalendar.Client
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	AppConfig  *config.Config
	DB         *sql.DB
	LLMManager *llmprovider.Manager
	Calendar   *gcalendar.Client
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		appConfig:   cfg.AppConfig,
		db:          cfg.DB,
		llmManager:  cfg.LLMManager,
		calendar:    cfg.Calendar,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.appConfig == nil {
		return errors.New("app config is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	return nil
}

// Run wires all handlers and serves until the listener fails.
func (srv *HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}
	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}
