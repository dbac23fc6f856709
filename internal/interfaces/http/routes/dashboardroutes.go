package routes

import (
	"github.com/gin-gonic/gin"

	"jannivaran/internal/interfaces/http/handlers"
	"jannivaran/internal/interfaces/http/middleware"
)

// DashboardRouteConfig holds dependencies for dashboard and category routes.
type DashboardRouteConfig struct {
	DashboardHandler *handlers.DashboardHandler
	CategoryHandler  *handlers.CategoryHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Permission       *middleware.PermissionMiddleware
}

// SetupDashboardRoutes configures dashboard and public category routes.
func SetupDashboardRoutes(engine *gin.Engine, cfg *DashboardRouteConfig) {
	categories := engine.Group("/categories")
	{
		categories.GET("", cfg.CategoryHandler.ListCategories)
		categories.GET("/suggest", cfg.CategoryHandler.SuggestCategory)
	}

	dashboard := engine.Group("/dashboard")
	dashboard.Use(cfg.AuthMiddleware.RequireAuth())
	{
		dashboard.GET("/stats",
			cfg.Permission.RequirePermission("dashboard", "read"),
			cfg.DashboardHandler.GetStats)
	}
}
