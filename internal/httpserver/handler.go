package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"todolist/internal/middleware"
	"todolist/internal/model"
	pkgErrors "todolist/pkg/errors"
	"todolist/pkg/response"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.mwConfig)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.AccessLog())
	srv.gin.Use(mw.CORS())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production, origins=%v", srv.mwConfig.AllowedOrigins)
	} else {
		srv.l.Infof(ctx, "CORS mode: %s, origins=%v", srv.environment, srv.mwConfig.AllowedOrigins)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.NoRoute(func(c *gin.Context) {
		response.Error(c, pkgErrors.ErrNotFound)
	})

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	api := srv.gin.Group("/api/v1")

	if err := srv.setupTodoDomain(context.Background(), api, mw); err != nil {
		return err
	}

	return nil
}
