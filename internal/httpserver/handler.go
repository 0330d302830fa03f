package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"telegram-info-bot/internal/model"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.requestID())

	ctx := context.Background()
	if model.Environment(srv.environment) == model.EnvironmentProduction {
		srv.l.Infof(ctx, "Running in production environment")
	} else {
		srv.l.Infof(ctx, "Running in %s environment", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/", srv.index)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers the webhook route behind the security
// middleware when both are configured.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	if srv.telegramHandler == nil {
		srv.l.Infof(ctx, "Telegram handler not configured, skipping webhook route")
		return
	}

	handlers := []gin.HandlerFunc{}
	if srv.security != nil {
		handlers = append(handlers, srv.security.Middleware(srv.l))
	}
	handlers = append(handlers, srv.telegramHandler.HandleWebhook)

	srv.gin.POST("/webhook/telegram", handlers...)
	srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
}
