package employment

import (
	"go-hrms/internal/domain"
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	employments := r.Group("/employments")
	{
		employments.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "employment", domain.ActionRead),
			handler.GetAll,
		)

		employments.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "employment", domain.ActionRead),
			handler.GetById,
		)

		employments.GET("/:id/probation",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "employment", domain.ActionRead),
			handler.ProbationHistory,
		)

		employments.POST("",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "employment", domain.ActionCreate),
			handler.Create,
		)

		employments.PUT("/:id",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "employment", domain.ActionUpdate),
			handler.Update,
		)

		employments.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "employment", domain.ActionDelete),
			handler.Delete,
		)

		probation := employments.Group("/:id/probation",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "employment", domain.ActionApprove),
		)
		probation.POST("/complete", handler.CompleteProbation)
		probation.POST("/extend", handler.ExtendProbation)
		probation.POST("/fail", handler.FailProbation)
	}
}
