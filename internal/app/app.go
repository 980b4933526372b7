package app

import (
	"net/http"
	"os"

	"go-waterbook/internal/adjustment"
	"go-waterbook/internal/middleware"
	"go-waterbook/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp menyiapkan infrastruktur lalu mendaftarkan semua modul.
func BuildApp(router *gin.Engine) error {
	db, err := connection.GetGORM(connection.PostgresConfig{
		Host:     os.Getenv("DB_HOST"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		DBName:   os.Getenv("DB_NAME"),
		Port:     os.Getenv("DB_PORT"),
		SSLMode:  os.Getenv("DB_SSLMODE"),
	}, 5)
	if err != nil {
		return err
	}
	zap.L().Info("database connection established")

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	zap.L().Info("redis connection established")

	collaborator := adjustment.NewHTTPCollaborator(
		os.Getenv("ADJUSTER_URL"),
		os.Getenv("ADJUSTER_API_KEY"),
	)

	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return registerModules(router, db, redisClient, collaborator)
}
