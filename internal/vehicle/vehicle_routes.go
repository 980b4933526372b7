package vehicle

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
	vehicles := r.Group("/vehicles")
	vehicles.Use(middleware.AuthMiddleware())
	{
		vehicles.GET("",
			middleware.RateLimitByUser(2, 5),
			handler.GetAll,
		)
		vehicles.GET("/:id",
			middleware.RateLimitByUser(2, 5),
			handler.GetById,
		)
		vehicles.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "vehicle", "update"),
			handler.Create,
		)
		vehicles.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "vehicle", "update"),
			handler.Update,
		)
	}
}
