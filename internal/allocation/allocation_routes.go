package allocation

import (
	"go-hrms/internal/domain"
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	allocations := r.Group("/allocations")
	{
		allocations.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "allocation", domain.ActionRead),
			handler.GetAll,
		)

		allocations.POST("/calculate",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "allocation", domain.ActionRead),
			handler.Calculate,
		)
	}

	r.GET("/employments/:id/allocations",
		middleware.RateLimitByUser(3, 10),
		middleware.RBACAuthorize(rbacService, "allocation", domain.ActionRead),
		handler.GetByEmployment,
	)

	r.PUT("/employments/:id/allocations",
		middleware.RateLimitByUser(0.5, 3),
		middleware.RBACAuthorize(rbacService, "allocation", domain.ActionUpdate),
		handler.Replace,
	)
}
