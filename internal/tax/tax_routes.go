package tax

import (
	"go-hrms/internal/domain"
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	read := middleware.RBACAuthorize(rbacService, "tax", domain.ActionRead)
	create := middleware.RBACAuthorize(rbacService, "tax", domain.ActionCreate)
	update := middleware.RBACAuthorize(rbacService, "tax", domain.ActionUpdate)
	del := middleware.RBACAuthorize(rbacService, "tax", domain.ActionDelete)

	tax := r.Group("/tax")
	{
		tax.POST("/calculate", middleware.RateLimitByUser(2, 10), read, handler.Calculate)

		tax.GET("/brackets", middleware.RateLimitByUser(3, 10), read, handler.GetBrackets)
		tax.GET("/brackets/:id", middleware.RateLimitByUser(3, 10), read, handler.GetBracket)
		tax.POST("/brackets", middleware.RateLimitByUser(0.5, 3), create, handler.CreateBracket)
		tax.PUT("/brackets/:id", middleware.RateLimitByUser(0.5, 3), update, handler.UpdateBracket)
		tax.DELETE("/brackets/:id", middleware.RateLimitByUser(0.2, 2), del, handler.DeleteBracket)

		tax.GET("/settings", middleware.RateLimitByUser(3, 10), read, handler.GetSettings)
		tax.GET("/settings/:id", middleware.RateLimitByUser(3, 10), read, handler.GetSetting)
		tax.POST("/settings", middleware.RateLimitByUser(0.5, 3), create, handler.CreateSetting)
		tax.PUT("/settings/:id", middleware.RateLimitByUser(0.5, 3), update, handler.UpdateSetting)
		tax.DELETE("/settings/:id", middleware.RateLimitByUser(0.2, 2), del, handler.DeleteSetting)
	}
}
