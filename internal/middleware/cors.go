package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the configured origins, or any origin when none are configured.
func (m Middleware) CORS() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", HeaderRequestID},
		ExposeHeaders: []string{"Content-Length", "Content-Type", HeaderRequestID, "X-Has-More", "X-Total-Returned"},
		MaxAge:        12 * time.Hour,
	}
	if len(m.cfg.AllowedOrigins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = m.cfg.AllowedOrigins
	}
	return cors.New(cfg)
}
