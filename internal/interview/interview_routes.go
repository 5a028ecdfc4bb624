package interview

import (
	"go-hrms/internal/domain"
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	read := middleware.RBACAuthorize(rbacService, "interview", domain.ActionRead)

	interviews := r.Group("/interviews")
	{
		interviews.GET("", middleware.RateLimitByUser(3, 10), read, handler.GetAll)
		interviews.GET("/by-candidate", middleware.RateLimitByUser(3, 10), read, handler.GetByCandidate)
		interviews.GET("/:id", middleware.RateLimitByUser(3, 10), read, handler.GetById)
		interviews.POST("",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "interview", domain.ActionCreate),
			handler.Create,
		)
		interviews.PUT("/:id",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "interview", domain.ActionUpdate),
			handler.Update,
		)
		interviews.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "interview", domain.ActionDelete),
			handler.Delete,
		)
	}
}
