package rider

import (
	"go-waterbook/internal/middleware"
	"go-waterbook/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
) {
	riders := r.Group("/riders")
	riders.Use(middleware.AuthMiddleware())
	{
		riders.GET("",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "rider", "read"),
			handler.GetAll,
		)
		riders.GET("/options",
			middleware.RateLimitByUser(5, 10),
			handler.GetOptions,
		)
		riders.GET("/:id",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "rider", "read"),
			handler.GetById,
		)
		riders.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "rider", "update"),
			handler.Create,
		)
		riders.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "rider", "update"),
			handler.Update,
		)
	}
}
