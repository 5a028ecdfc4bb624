package position

import (
	"go-hrms/internal/domain"
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	positions := r.Group("/positions")
	positions.Use(middleware.RateLimitByUser(5, 20))
	{
		positions.GET("", middleware.RBACAuthorize(rbacService, "position", domain.ActionRead), h.GetAll)
		positions.GET("/options", h.GetOptions)
		positions.POST("", middleware.RBACAuthorize(rbacService, "position", domain.ActionCreate), h.Create)
		positions.GET("/:id", middleware.RBACAuthorize(rbacService, "position", domain.ActionRead), h.GetById)
		positions.PUT("/:id", middleware.RBACAuthorize(rbacService, "position", domain.ActionUpdate), h.Update)
		positions.DELETE("/:id", middleware.RBACAuthorize(rbacService, "position", domain.ActionDelete), h.Delete)
	}
}
