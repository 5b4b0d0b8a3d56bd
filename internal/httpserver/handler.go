package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	chatHTTP "todo-chat-api/internal/chat/delivery/http"
	"todo-chat-api/internal/middleware"
	"todo-chat-api/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	mw := middleware.New(srv.l, srv.rateLimitPerMin)
	api := srv.gin.Group("/api")

	h := chatHTTP.New(srv.l, srv.chatUC, srv.convStore)
	chatHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Chat routes registered under /api/chat")
}
