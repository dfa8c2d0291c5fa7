package router

import (
	"github.com/gin-gonic/gin"
	"github.com/kondaas/quotation-backend/internal/infrastructure/config"
	"github.com/kondaas/quotation-backend/internal/infrastructure/logger"
	"github.com/kondaas/quotation-backend/internal/interfaces/http/handler"
	"github.com/kondaas/quotation-backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// Handlers bundles the handlers mounted by the router
type Handlers struct {
	State  *handler.StateHandler
	Health *handler.HealthHandler
}

// New builds the gin engine with all middleware and routes registered
func New(cfg *config.Config, log *zap.Logger, h Handlers) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		_ = engine.SetTrustedProxies(cfg.HTTP.TrustedProxies)
	} else {
		_ = engine.SetTrustedProxies(nil)
	}

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}

	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.CORSWithConfig(corsConfig),
		middleware.Secure(),
	)

	engine.GET("/healthz", h.Health.Healthz)

	v1 := engine.Group("/api/v1")
	{
		v1.GET("/state", h.State.GetState)
		v1.PUT("/settings", h.State.UpdateSettings)
		v1.PUT("/quotations/:id", h.State.SaveQuotation)
		v1.DELETE("/quotations/:id", h.State.DeleteQuotation)
	}

	return engine
}
