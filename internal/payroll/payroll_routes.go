package payroll

import (
	"go-hrms/internal/domain"
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, rdb *redis.Client) {
	read := middleware.RBACAuthorize(rbacService, "payroll", domain.ActionRead)
	create := middleware.RBACAuthorize(rbacService, "payroll", domain.ActionCreate)
	update := middleware.RBACAuthorize(rbacService, "payroll", domain.ActionUpdate)
	approve := middleware.RBACAuthorize(rbacService, "payroll", domain.ActionApprove)

	payrolls := r.Group("/payrolls")
	{
		payrolls.GET("", middleware.RateLimitByUser(3, 10), read, handler.GetAll)
		payrolls.GET("/:id", middleware.RateLimitByUser(3, 10), read, handler.GetById)
		payrolls.GET("/:id/payslip", middleware.RateLimitByUser(1, 5), read, handler.Payslip)
		payrolls.GET("/bulk/:id", middleware.RateLimitByUser(5, 20), read, handler.GetBatch)

		payrolls.POST("/calculate", middleware.RateLimitByUser(2, 10), read, handler.Calculate)
		payrolls.POST("", middleware.RateLimitByUser(0.5, 3), create, handler.Create)
		payrolls.POST("/bulk",
			middleware.RateLimitByUser(0.1, 1),
			middleware.Idempotency(rdb),
			create,
			handler.BulkCreate,
		)
		payrolls.PUT("/:id", middleware.RateLimitByUser(0.5, 3), update, handler.Update)
		payrolls.POST("/:id/approve", middleware.RateLimitByUser(0.5, 5), approve, handler.Approve)
		payrolls.POST("/:id/mark-paid", middleware.RateLimitByUser(0.5, 5), approve, handler.MarkPaid)
		payrolls.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "payroll", domain.ActionDelete),
			handler.Delete,
		)
	}
}
