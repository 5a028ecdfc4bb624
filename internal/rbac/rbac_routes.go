package rbac

import (
	"go-hrms/internal/domain"
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, service Service) {
	r.POST("/rbac/enforce", handler.Enforce)

	roles := r.Group("/roles")
	{
		roles.GET("", middleware.RBACAuthorize(service, "role", domain.ActionRead), handler.ListRoles)
		roles.GET("/:id", middleware.RBACAuthorize(service, "role", domain.ActionRead), handler.GetRole)
		roles.POST("", middleware.RBACAuthorize(service, "role", domain.ActionCreate), handler.CreateRole)
		roles.PUT("/:id", middleware.RBACAuthorize(service, "role", domain.ActionUpdate), handler.UpdateRole)
		roles.DELETE("/:id", middleware.RBACAuthorize(service, "role", domain.ActionDelete), handler.DeleteRole)
	}

	r.GET("/permissions", middleware.RBACAuthorize(service, "role", domain.ActionRead), handler.ListPermissions)
}
