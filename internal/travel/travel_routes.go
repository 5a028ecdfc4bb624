package travel

import (
	"go-hrms/internal/domain"
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	read := middleware.RBACAuthorize(rbacService, "travel", domain.ActionRead)
	create := middleware.RBACAuthorize(rbacService, "travel", domain.ActionCreate)
	update := middleware.RBACAuthorize(rbacService, "travel", domain.ActionUpdate)
	approve := middleware.RBACAuthorize(rbacService, "travel", domain.ActionApprove)

	travel := r.Group("/travel-requests")
	{
		travel.GET("", middleware.RateLimitByUser(3, 10), read, handler.GetAll)
		travel.GET("/:id", middleware.RateLimitByUser(3, 10), read, handler.GetById)
		travel.POST("", middleware.RateLimitByUser(0.5, 3), create, handler.Create)
		travel.PUT("/:id", middleware.RateLimitByUser(0.5, 3), update, handler.Update)
		travel.POST("/:id/approve", middleware.RateLimitByUser(0.5, 5), approve, handler.Approve)
		travel.POST("/:id/decline", middleware.RateLimitByUser(0.5, 5), approve, handler.Decline)
		travel.POST("/:id/acknowledge", middleware.RateLimitByUser(0.5, 5), approve, handler.Acknowledge)
		travel.POST("/:id/cancel", middleware.RateLimitByUser(0.5, 5), update, handler.Cancel)
		travel.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "travel", domain.ActionDelete),
			handler.Delete,
		)
	}
}
