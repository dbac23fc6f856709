package routes

import (
	"github.com/gin-gonic/gin"

	"jannivaran/internal/interfaces/http/handlers"
	"jannivaran/internal/interfaces/http/middleware"
)

// ComplaintRouteConfig holds dependencies for complaint routes.
type ComplaintRouteConfig struct {
	ComplaintHandler  *handlers.ComplaintHandler
	EscalationHandler *handlers.EscalationHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Permission        *middleware.PermissionMiddleware
}

// SetupComplaintRoutes configures complaint routes. The tracking endpoint is
// public; everything else requires authentication.
func SetupComplaintRoutes(engine *gin.Engine, cfg *ComplaintRouteConfig) {
	engine.GET("/track/:tracking_id", cfg.ComplaintHandler.TrackComplaint)

	complaints := engine.Group("/complaints")
	complaints.Use(cfg.AuthMiddleware.RequireAuth())
	{
		complaints.POST("",
			cfg.Permission.RequirePermission("complaint", "create"),
			cfg.ComplaintHandler.FileComplaint)
		complaints.GET("",
			cfg.Permission.RequirePermission("complaint", "read"),
			cfg.ComplaintHandler.ListComplaints)

		// Action endpoints must come before the generic /:id routes.
		complaints.PATCH("/:id/status",
			cfg.Permission.RequirePermission("complaint", "update"),
			cfg.ComplaintHandler.ChangeStatus)
		complaints.PATCH("/:id/priority",
			cfg.Permission.RequirePermission("complaint", "update"),
			cfg.ComplaintHandler.ChangePriority)
		complaints.POST("/:id/assign",
			cfg.Permission.RequirePermission("complaint", "assign"),
			cfg.ComplaintHandler.AssignComplaint)
		complaints.POST("/:id/intervene",
			cfg.Permission.RequirePermission("complaint", "intervene"),
			cfg.ComplaintHandler.Intervene)
		complaints.POST("/:id/escalate",
			cfg.Permission.RequirePermission("escalation", "create"),
			cfg.EscalationHandler.EscalateComplaint)
		complaints.GET("/:id/escalations",
			cfg.Permission.RequirePermission("escalation", "read"),
			cfg.EscalationHandler.ListComplaintEscalations)
		complaints.GET("/:id/audit",
			cfg.Permission.RequirePermission("audit", "read"),
			cfg.ComplaintHandler.GetAuditTrail)

		complaints.GET("/:id",
			cfg.Permission.RequirePermission("complaint", "read"),
			cfg.ComplaintHandler.GetComplaint)
		complaints.DELETE("/:id",
			cfg.Permission.RequirePermission("complaint", "delete"),
			cfg.ComplaintHandler.DeleteComplaint)
	}
}
