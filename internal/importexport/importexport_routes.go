package importexport

import (
	"go-hrms/internal/domain"
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, rdb *redis.Client) {
	imports := r.Group("/imports")
	{
		imports.POST("/employees",
			middleware.RateLimitByUser(0.1, 2),
			middleware.Idempotency(rdb),
			middleware.RBACAuthorize(rbacService, "employee", domain.ActionImport),
			handler.ImportEmployees,
		)
		imports.GET("/templates/employees",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "employee", domain.ActionImport),
			handler.EmployeeTemplate,
		)
		imports.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "employee", domain.ActionImport),
			handler.GetJob,
		)
	}

	exports := r.Group("/exports")
	{
		exports.GET("/employees",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "employee", domain.ActionExport),
			handler.ExportEmployees,
		)
		exports.GET("/grants",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "grant", domain.ActionExport),
			handler.ExportGrants,
		)
		exports.GET("/payrolls",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "payroll", domain.ActionExport),
			handler.ExportPayrolls,
		)
	}
}
