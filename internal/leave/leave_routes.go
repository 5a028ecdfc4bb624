package leave

import (
	"go-hrms/internal/domain"
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	read := middleware.RBACAuthorize(rbacService, "leave", domain.ActionRead)
	create := middleware.RBACAuthorize(rbacService, "leave", domain.ActionCreate)
	update := middleware.RBACAuthorize(rbacService, "leave", domain.ActionUpdate)
	approve := middleware.RBACAuthorize(rbacService, "leave", domain.ActionApprove)
	del := middleware.RBACAuthorize(rbacService, "leave", domain.ActionDelete)

	types := r.Group("/leave-types")
	{
		types.GET("", middleware.RateLimitByUser(3, 10), read, handler.GetTypes)
		types.GET("/:id", middleware.RateLimitByUser(3, 10), read, handler.GetType)
		types.POST("", middleware.RateLimitByUser(0.5, 3), create, handler.CreateType)
		types.PUT("/:id", middleware.RateLimitByUser(0.5, 3), update, handler.UpdateType)
		types.DELETE("/:id", middleware.RateLimitByUser(0.2, 2), del, handler.DeleteType)
	}

	balances := r.Group("/leave-balances")
	{
		balances.GET("", middleware.RateLimitByUser(3, 10), read, handler.GetBalances)
		balances.PUT("/:id", middleware.RateLimitByUser(0.5, 3), update, handler.AdjustBalance)
	}

	requests := r.Group("/leave-requests")
	{
		requests.GET("", middleware.RateLimitByUser(3, 10), read, handler.GetAll)
		requests.GET("/:id", middleware.RateLimitByUser(3, 10), read, handler.GetById)
		requests.POST("", middleware.RateLimitByUser(0.5, 3), create, handler.Create)
		requests.PUT("/:id", middleware.RateLimitByUser(0.5, 3), update, handler.Update)
		requests.POST("/:id/approve", middleware.RateLimitByUser(0.5, 5), approve, handler.Approve)
		requests.POST("/:id/decline", middleware.RateLimitByUser(0.5, 5), approve, handler.Decline)
		requests.POST("/:id/cancel", middleware.RateLimitByUser(0.5, 5), update, handler.Cancel)
		requests.DELETE("/:id", middleware.RateLimitByUser(0.2, 2), del, handler.Delete)
	}
}
