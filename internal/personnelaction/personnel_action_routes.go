package personnelaction

import (
	"go-hrms/internal/domain"
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	read := middleware.RBACAuthorize(rbacService, "personnel_action", domain.ActionRead)

	actions := r.Group("/personnel-actions")
	{
		actions.GET("", middleware.RateLimitByUser(3, 10), read, handler.GetAll)
		actions.GET("/:id", middleware.RateLimitByUser(3, 10), read, handler.GetById)
		actions.POST("",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "personnel_action", domain.ActionCreate),
			handler.Create,
		)
		actions.PUT("/:id",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "personnel_action", domain.ActionUpdate),
			handler.Update,
		)
		actions.POST("/:id/approve",
			middleware.RateLimitByUser(0.5, 5),
			middleware.RBACAuthorize(rbacService, "personnel_action", domain.ActionApprove),
			handler.Approve,
		)
		actions.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "personnel_action", domain.ActionDelete),
			handler.Delete,
		)
	}
}
