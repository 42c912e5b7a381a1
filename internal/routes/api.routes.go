package routes

import (
	"github.com/gin-gonic/gin"

	"routerdash/internal/controllers"
	"routerdash/internal/middleware"
)

// RegisterAPIRoutes registers the authenticated stats and history API.
func RegisterAPIRoutes(r *gin.Engine) {
	api := r.Group("/api", middleware.AuthMiddleware())
	{
		api.GET("/devices", controllers.GetDevices)

		api.GET("/devices/:id/connections", controllers.GetConnectionStats)
		api.GET("/devices/:id/dhcp", controllers.GetDHCPStats)
		api.GET("/devices/:id/bandwidth", controllers.GetBandwidthStats)
		api.GET("/devices/:id/traffic", controllers.GetTrafficStats)
		api.GET("/devices/:id/system", controllers.GetSystemStats)
		api.DELETE("/devices/:id/cache", controllers.ClearDeviceCache)
		api.DELETE("/cache", controllers.ClearAllCaches)

		api.GET("/history/traffic", controllers.GetTrafficHistory)
		api.GET("/history/connections", controllers.GetConnectionHistory)
		api.GET("/history/bandwidth", controllers.GetBandwidthHistory)

		api.GET("/health", controllers.GetHealth)
	}
}
