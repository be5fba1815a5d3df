package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/falconboard/boardflow/internal/config"
	"github.com/falconboard/boardflow/internal/server/http/handlers"
	"github.com/falconboard/boardflow/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.RoutingFacade, health handlers.HealthChecker, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	webhookHandler := handlers.NewWebhookHandler(facade)
	importHandler := handlers.NewImportHandler(facade)
	healthHandler := handlers.NewHealthHandler(health)

	api := engine.Group("/api")
	api.GET("/health", healthHandler.Check)

	shopifyAPI := api.Group("/shopify")
	shopifyAPI.Use(middleware.ActorContext())
	shopifyAPI.POST("/import", importHandler.Run)

	webhooks := shopifyAPI.Group("/webhooks")
	webhooks.Use(middleware.VerifySignature(cfg.WebhookSecret, logger))
	webhooks.POST("/orders/created", webhookHandler.OrderCreated)
	webhooks.POST("/orders/updated", webhookHandler.OrderUpdated)

	return engine
}
