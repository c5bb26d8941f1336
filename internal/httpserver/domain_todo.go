package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"todolist/internal/middleware"
	todoHTTP "todolist/internal/todo/delivery/http"
	todoUC "todolist/internal/todo/usecase"
)

// setupTodoDomain wires the todo use case onto the configured store and registers its routes.
func (srv HTTPServer) setupTodoDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	uc := todoUC.New(srv.todoRepo, srv.l)
	h := todoHTTP.New(srv.l, uc)

	// Routes: registers /api/v1/todos
	todoHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Todo domain registered")
	return nil
}
