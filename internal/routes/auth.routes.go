package routes

import (
	"github.com/gin-gonic/gin"

	"routerdash/internal/controllers"
	"routerdash/internal/middleware"
)

// RegisterAuthRoutes registers token issuance and the live stats channel.
// The websocket endpoint authenticates itself via a token query parameter.
func RegisterAuthRoutes(r *gin.Engine) {
	r.POST("/auth/token", middleware.TokenRateLimitMiddleware(), controllers.IssueToken)
	r.GET("/ws", controllers.HandleWebSocket)
}
