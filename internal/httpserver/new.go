package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"assistente-gestao/internal/middleware"
	"assistente-gestao/internal/task"
	tgDelivery "assistente-gestao/internal/task/delivery/telegram"
	"assistente-gestao/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Task domain
	taskUC          task.UseCase
	middleware      middleware.Middleware
	telegramHandler tgDelivery.Handler

	// Observability
	metricsHandler http.Handler
	readiness      func() error
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Task domain
	TaskUseCase     task.UseCase
	Middleware      middleware.Middleware
	TelegramHandler tgDelivery.Handler

	// MetricsHandler serves /metrics when set.
	MetricsHandler http.Handler
	// Readiness reports storage health for /ready. Nil means always ready.
	Readiness func() error
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		taskUC:          cfg.TaskUseCase,
		middleware:      cfg.Middleware,
		telegramHandler: cfg.TelegramHandler,
		metricsHandler:  cfg.MetricsHandler,
		readiness:       cfg.Readiness,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskUC == nil {
		return errors.New("task use case is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}
