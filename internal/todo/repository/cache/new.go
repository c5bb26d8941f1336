package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"todolist/internal/todo/repository"
	"todolist/pkg/log"
)

const (
	keyGeneration     = "todolist:todos:gen"
	keySnapshotPrefix = "todolist:todos:snapshot:"
	defaultTTL        = 30 * time.Second
)

// snapshotKey names the snapshot cached for generation gen.
func snapshotKey(gen int64) string {
	return keySnapshotPrefix + strconv.FormatInt(gen, 10)
}

type implRepository struct {
	next repository.Repository
	rdb  *redis.Client
	ttl  time.Duration
	sf   singleflight.Group
	l    log.Logger
}

// New wraps next with a Redis cache of the ordered snapshot.
// Snapshots are keyed by a generation counter. Writes go to next and then bump
// the counter, so a snapshot loaded before a write is never served after it.
// Superseded snapshots are left to expire with the TTL.
func New(next repository.Repository, rdb *redis.Client, ttl time.Duration, l log.Logger) repository.Repository {
	if next == nil || rdb == nil {
		panic("todo/repository/cache: next and rdb are required")
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &implRepository{next: next, rdb: rdb, ttl: ttl, l: l}
}

// RedisConfig holds the connection settings used by Connect.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Connect opens a Redis client and verifies it with a ping.
func Connect(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// Ping checks the wrapped store. Redis is optional and does not affect readiness.
func (r *implRepository) Ping(ctx context.Context) error {
	if p, ok := r.next.(repository.Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("todo/repository/cache.%s", method)
}
