package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"todolist/internal/todo/repository"
	pkgErrors "todolist/pkg/errors"
	"todolist/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "todolist"
)

const readyTimeout = 2 * time.Second

var errNotReady = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "store unavailable")

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck pings the store when it has a backend to ping.
// @Summary Readiness Check
// @Description Check if the API and its store are ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "Store unavailable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if p, ok := srv.todoRepo.(repository.Pinger); ok {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
		defer cancel()
		if err := p.Ping(ctx); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck: %v", err)
			response.Error(c, errNotReady)
			return
		}
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
