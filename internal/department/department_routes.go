package department

import (
	"go-hrms/internal/domain"
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	departments := r.Group("/departments")
	departments.Use(middleware.RateLimitByUser(5, 20))
	{
		departments.GET("", middleware.RBACAuthorize(rbacService, "department", domain.ActionRead), h.GetAll)
		departments.GET("/options", h.GetOptions)
		departments.POST("", middleware.RBACAuthorize(rbacService, "department", domain.ActionCreate), h.Create)
		departments.GET("/:id", middleware.RBACAuthorize(rbacService, "department", domain.ActionRead), h.GetById)
		departments.PUT("/:id", middleware.RBACAuthorize(rbacService, "department", domain.ActionUpdate), h.Update)
		departments.DELETE("/:id", middleware.RBACAuthorize(rbacService, "department", domain.ActionDelete), h.Delete)
	}
}
