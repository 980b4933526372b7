package report

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
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware())
	reports.Use(middleware.RBACAuthorize(rbacService, "report", "read"))
	{
		reports.GET("/monthly-summary",
			middleware.RateLimitByUser(1, 3),
			handler.MonthlySummary,
		)
		reports.GET("/vehicles",
			middleware.RateLimitByUser(1, 3),
			handler.VehicleReport,
		)
		reports.GET("/collector-cash",
			middleware.RateLimitByUser(1, 3),
			handler.CollectorCashReport,
		)
		reports.GET("/rider-monthly",
			middleware.RateLimitByUser(1, 3),
			handler.RiderMonthlyReport,
		)
	}
}
