package rbac

import (
	"go-waterbook/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	group := r.Group("/rbac")
	group.Use(middleware.AuthMiddleware())
	{
		group.POST("/enforce", handler.Enforce)
		group.POST("/assign-role",
			middleware.RoleMiddleware("ADMIN"),
			handler.AssignRole,
		)
	}
}
