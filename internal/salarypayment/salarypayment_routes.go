package salarypayment

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
	payments := r.Group("/salary-payments")
	payments.Use(middleware.AuthMiddleware())
	{
		payments.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "salarypayment", "create"),
			middleware.ExtractUserID(),
			middleware.Idempotency(rdb),
			handler.Create,
		)
		payments.GET("",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "salarypayment", "read"),
			handler.GetAll,
		)
		payments.GET("/:id",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "salarypayment", "read"),
			handler.GetById,
		)
	}
}
