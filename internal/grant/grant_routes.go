package grant

import (
	"go-hrms/internal/domain"
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	read := middleware.RBACAuthorize(rbacService, "grant", domain.ActionRead)

	grants := r.Group("/grants")
	{
		grants.GET("", middleware.RateLimitByUser(3, 10), read, handler.GetAll)
		grants.GET("/options", middleware.RateLimitByUser(5, 20), read, handler.GetOptions)
		grants.GET("/:id", middleware.RateLimitByUser(3, 10), read, handler.GetById)
		grants.GET("/:id/items", middleware.RateLimitByUser(3, 10), read, handler.GetItems)

		grants.POST("",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "grant", domain.ActionCreate),
			handler.Create,
		)
		grants.POST("/:id/items",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "grant", domain.ActionCreate),
			handler.CreateItem,
		)
		grants.PUT("/:id",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "grant", domain.ActionUpdate),
			handler.Update,
		)
		grants.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "grant", domain.ActionDelete),
			handler.Delete,
		)
	}

	items := r.Group("/grant-items")
	{
		items.GET("/:id", middleware.RateLimitByUser(3, 10), read, handler.GetItem)
		items.GET("/:id/slots", middleware.RateLimitByUser(3, 10), read, handler.GetSlots)

		items.PUT("/:id",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "grant", domain.ActionUpdate),
			handler.UpdateItem,
		)
		items.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "grant", domain.ActionDelete),
			handler.DeleteItem,
		)
	}
}
