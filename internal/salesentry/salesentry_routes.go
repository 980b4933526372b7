package salesentry

import (
	"go-waterbook/internal/middleware"
	"go-waterbook/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
) {
	entries := r.Group("/sales-entries")
	entries.Use(middleware.AuthMiddleware())
	{
		entries.POST("",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "salesentry", "create"),
			middleware.ExtractUserID(),
			middleware.Idempotency(rdb),
			handler.Create,
		)
		entries.GET("",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "salesentry", "read"),
			handler.GetAll,
		)
		entries.GET("/:id",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "salesentry", "read"),
			handler.GetById,
		)
	}
}
