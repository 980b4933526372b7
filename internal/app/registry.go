package app

import (
	"go-waterbook/internal/adjustment"
	"go-waterbook/internal/auth"
	"go-waterbook/internal/payroll"
	"go-waterbook/internal/rbac"
	"go-waterbook/internal/rbac/infra"
	"go-waterbook/internal/report"
	"go-waterbook/internal/rider"
	"go-waterbook/internal/salarypayment"
	"go-waterbook/internal/salesentry"
	"go-waterbook/internal/shared/counter"
	"go-waterbook/internal/vehicle"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	collaborator adjustment.Collaborator,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	riderRepo := rider.NewRepository(gormDB)
	vehicleRepo := vehicle.NewRepository(gormDB)
	salesEntryRepo := salesentry.NewRepository(gormDB)
	salaryPaymentRepo := salarypayment.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)
	if err := rbacService.LoadPolicy(); err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(authRepo, rbacService)
	riderService := rider.NewService(riderRepo, rdb)
	vehicleService := vehicle.NewService(vehicleRepo)
	salesEntryService := salesentry.NewService(gormDB, salesEntryRepo, collaborator)
	payrollService := payroll.NewService(riderRepo, salesEntryRepo, rdb)
	salaryPaymentService := salarypayment.NewService(gormDB, salaryPaymentRepo, riderRepo, counterRepo)
	reportService := report.NewService(salesEntryRepo, payrollService)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	riderHandler := rider.NewHandler(riderService)
	vehicleHandler := vehicle.NewHandler(vehicleService)
	salesEntryHandler := salesentry.NewHandler(salesEntryService, rdb)
	payrollHandler := payroll.NewHandler(payrollService)
	salaryPaymentHandler := salarypayment.NewHandler(salaryPaymentService, rdb)
	reportHandler := report.NewHandler(reportService)
	rbacHandler := rbac.NewHandler(rbacService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		rider.RegisterRoutes(api, riderHandler, rbacService)
		vehicle.RegisterRoutes(api, vehicleHandler, rbacService)
		salesentry.RegisterRoutes(api, salesEntryHandler, rbacService, rdb)
		payroll.RegisterRoutes(api, payrollHandler, rbacService)
		salarypayment.RegisterRoutes(api, salaryPaymentHandler, rbacService, rdb)
		report.RegisterRoutes(api, reportHandler, rbacService)
		rbac.RegisterRoutes(api, rbacHandler)
	}

	return nil
}
