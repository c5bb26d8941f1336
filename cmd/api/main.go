package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"todolist/config"
	_ "todolist/docs" // Swagger docs
	"todolist/internal/httpserver"
	"todolist/internal/middleware"
	"todolist/internal/model"
	"todolist/internal/todo/repository"
	"todolist/internal/todo/repository/cache"
	"todolist/internal/todo/repository/memory"
	"todolist/internal/todo/repository/postgre"
	"todolist/pkg/log"
)

// @title       Todolist API
// @description Todo items with create, read, update, delete and a filtered, windowed list.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting Todolist...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Store driver: %s", cfg.Store.Driver)

	// 3. Todo store
	repo, closers, err := newTodoRepository(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize todo store: ", err)
		os.Exit(1)
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ReadTimeout:     cfg.HTTPServer.ReadTimeout,
		WriteTimeout:    cfg.HTTPServer.WriteTimeout,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		TodoRepository:  repo,
		Middleware: middleware.Config{
			AllowedOrigins:   cfg.CORS.AllowedOrigins,
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RequestsPerMin:   cfg.RateLimit.RequestsPerMin,
			Burst:            cfg.RateLimit.Burst,
		},
		Closers: closers,
	})
	if err != nil {
		for _, closeFn := range closers {
			closeFn()
		}
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// newTodoRepository builds the configured store, optionally fronted by the Redis
// snapshot cache, and returns the closers that release it.
func newTodoRepository(ctx context.Context, cfg *config.Config, logger log.Logger) (repository.Repository, []func(), error) {
	var (
		repo    repository.Repository
		closers []func()
	)

	switch cfg.Store.Driver {
	case model.StoreDriverPostgres:
		if cfg.Postgres.Migrate {
			if err := postgre.Migrate(ctx, cfg.Postgres.DSN, logger); err != nil {
				return nil, nil, err
			}
			logger.Info(ctx, "Postgres migrations applied")
		}

		pool, err := postgre.Connect(ctx, postgre.PoolConfig{
			DSN:      cfg.Postgres.DSN,
			MaxConns: cfg.Postgres.MaxConns,
			MinConns: cfg.Postgres.MinConns,
		})
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, pool.Close)
		repo = postgre.New(pool, logger)
	default:
		repo = memory.New(logger)
	}

	// The snapshot key is shared by every replica, so only a shared store can sit behind it.
	if cfg.Redis.Enabled() && cfg.Store.Driver == model.StoreDriverPostgres {
		rdb, err := cache.Connect(ctx, cache.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			logger.Warnf(ctx, "Redis cache not available (optional): %v", err)
		} else {
			closers = append(closers, func() { _ = rdb.Close() })
			repo = cache.New(repo, rdb, cfg.Redis.TTL, logger)
			logger.Infof(ctx, "Redis snapshot cache enabled at %s", cfg.Redis.Addr)
		}
	}

	return repo, closers, nil
}
