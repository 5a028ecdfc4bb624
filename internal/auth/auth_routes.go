package auth

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts login and refresh on the public group and the
// session endpoints on the authenticated one.
func RegisterRoutes(public, protected *gin.RouterGroup, handler *Handler) {
	auth := public.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(0.2, 5), handler.Login)
		auth.POST("/refresh", middleware.RateLimitByIP(0.5, 5), handler.RefreshToken)
	}

	session := protected.Group("/auth")
	{
		session.GET("/me", middleware.RateLimitByUser(2, 5), handler.Me)
		session.POST("/logout", middleware.RateLimitByUser(2, 5), handler.Logout)
	}
}
