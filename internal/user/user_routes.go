package user

import (
	"go-hrms/internal/domain"
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	r.PUT("/profile/password",
		middleware.RateLimitByUser(0.5, 2),
		handler.ChangePassword,
	)

	users := r.Group("/users")
	{
		users.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "user", domain.ActionRead),
			handler.GetAll,
		)
		users.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "user", domain.ActionRead),
			handler.GetById,
		)
		users.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "user", domain.ActionCreate),
			handler.Create,
		)
		users.PUT("/:id",
			middleware.RBACAuthorize(rbacService, "user", domain.ActionUpdate),
			handler.Update,
		)
		users.PUT("/:id/roles",
			middleware.RBACAuthorize(rbacService, "user", domain.ActionUpdate),
			handler.AssignRoles,
		)
		users.PATCH("/:id/status",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "user", domain.ActionUpdate),
			handler.ToggleStatus,
		)
		users.POST("/:id/reset-password",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "user", domain.ActionUpdate),
			handler.ResetPassword,
		)
		users.DELETE("/:id",
			middleware.RBACAuthorize(rbacService, "user", domain.ActionDelete),
			handler.Delete,
		)
	}
}
