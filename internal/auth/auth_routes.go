package auth

import (
	"go-waterbook/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", middleware.RateLimitByIP(1, 5), handler.Login)
		authGroup.POST("/refresh", handler.RefreshToken)
		authGroup.POST("/logout", handler.Logout)

		// Pembuatan akun hanya oleh admin
		authGroup.POST("/register",
			middleware.AuthMiddleware(),
			middleware.RoleMiddleware(RoleAdmin),
			handler.Register,
		)

		authGroup.GET("/me", middleware.AuthMiddleware(), handler.Me)
	}
}
