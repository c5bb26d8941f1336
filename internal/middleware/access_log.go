package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

var skipAccessLog = map[string]bool{
	"/health": true,
	"/live":   true,
}

// AccessLog writes one line per request once the handler chain has finished.
func (m Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if skipAccessLog[path] {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		latency := time.Since(start)

		switch {
		case status >= 500:
			m.l.Errorf(ctx, "%s %s %d %s ip=%s", c.Request.Method, path, status, latency, c.ClientIP())
		case status >= 400:
			m.l.Warnf(ctx, "%s %s %d %s ip=%s", c.Request.Method, path, status, latency, c.ClientIP())
		default:
			m.l.Infof(ctx, "%s %s %d %s ip=%s", c.Request.Method, path, status, latency, c.ClientIP())
		}
	}
}
