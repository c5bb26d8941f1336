package postgre

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"todolist/internal/todo/repository"
	"todolist/pkg/log"
)

type implRepository struct {
	db *pgxpool.Pool
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the todo domain.
func New(db *pgxpool.Pool, l log.Logger) repository.Repository {
	if db == nil {
		panic("todo/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// PoolConfig tunes the connection pool opened by Connect.
type PoolConfig struct {
	DSN      string
	MaxConns int32
	MinConns int32
}

// Connect opens a pgx pool and verifies it with a ping.
func Connect(ctx context.Context, cfg PoolConfig) (*pgxpool.Pool, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("pg parse config: %w", err)
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		pcfg.MinConns = cfg.MinConns
	}
	pcfg.MaxConnIdleTime = 5 * time.Minute
	pcfg.MaxConnLifetime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("pg connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pg ping: %w", err)
	}
	return pool, nil
}

// Ping checks that the database is reachable.
func (r *implRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("todo/repository/postgre.%s", method)
}
