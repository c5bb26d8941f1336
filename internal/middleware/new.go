package middleware

import (
	"todolist/pkg/log"
)

// Config carries the settings the middlewares read.
type Config struct {
	AllowedOrigins []string

	RateLimitEnabled bool
	RequestsPerMin   int
	Burst            int
}

type Middleware struct {
	l       log.Logger
	cfg     Config
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:   l,
		cfg: cfg,
	}
	if cfg.RateLimitEnabled {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin, cfg.Burst)
	}
	return mw
}
