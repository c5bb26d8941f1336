package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"todolist/internal/middleware"
	"todolist/internal/todo/repository"
	"todolist/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	shutdownTimeout time.Duration

	// Todo domain
	todoRepo repository.Repository
	mwConfig middleware.Config

	// closers run in order after the server has stopped.
	closers []func()
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// Todo domain
	TodoRepository repository.Repository
	Middleware     middleware.Config

	// Closers release backing resources (pools, clients) on shutdown.
	Closers []func()
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		readTimeout:     cfg.ReadTimeout,
		writeTimeout:    cfg.WriteTimeout,
		shutdownTimeout: cfg.ShutdownTimeout,
		todoRepo:        cfg.TodoRepository,
		mwConfig:        cfg.Middleware,
		closers:         cfg.Closers,
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
	if srv.todoRepo == nil {
		return errors.New("todo repository is required")
	}
	return nil
}

// Handler exposes the routed engine, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
