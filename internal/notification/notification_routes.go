package notification

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Notifications are always scoped to the caller, so no RBAC check applies.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	n := r.Group("/notifications")
	n.Use(middleware.RateLimitByUser(5, 20))
	{
		n.GET("", handler.GetAll)
		n.GET("/unread-count", handler.UnreadCount)
		n.POST("/read-all", handler.MarkAllRead)
		n.POST("/:id/read", handler.MarkRead)
		n.DELETE("/:id", handler.Delete)
	}
}
