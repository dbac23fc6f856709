package routes

import (
	"github.com/gin-gonic/gin"

	"jannivaran/internal/interfaces/http/handlers"
	"jannivaran/internal/interfaces/http/middleware"
)

// EscalationRouteConfig holds dependencies for escalation routes.
type EscalationRouteConfig struct {
	EscalationHandler *handlers.EscalationHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Permission        *middleware.PermissionMiddleware
}

// SetupEscalationRoutes configures staff-facing escalation routes.
func SetupEscalationRoutes(engine *gin.Engine, cfg *EscalationRouteConfig) {
	escalations := engine.Group("/escalations")
	escalations.Use(cfg.AuthMiddleware.RequireAuth())
	{
		escalations.GET("",
			cfg.Permission.RequirePermission("escalation", "read"),
			cfg.EscalationHandler.ListEscalations)
		escalations.POST("/sweep",
			cfg.Permission.RequirePermission("sweep", "run"),
			cfg.EscalationHandler.RunSweep)
		escalations.POST("/:id/resolve",
			cfg.Permission.RequirePermission("escalation", "resolve"),
			cfg.EscalationHandler.ResolveEscalation)
	}
}
