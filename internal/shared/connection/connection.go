package connection

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Satu handle database dipakai bersama oleh seluruh proses. Pemanggil
// pertama yang datang bersamaan tidak boleh balapan membuka koneksi
// ganda; singleflight memastikan hanya ada satu dial yang in-flight,
// dan handle-nya dipublikasikan lewat atomic.Pointer supaya pembaca
// fast-path tidak pernah melihat tulisan setengah jadi.
var (
	sharedDB atomic.Pointer[gorm.DB]
	sf       singleflight.Group
)

type PostgresConfig struct {
	Host     string
	User     string
	Password string
	DBName   string
	Port     string
	SSLMode  string
}

// GetGORM mengembalikan handle bersama, membukanya secara lazy pada
// pemanggilan pertama. Aman dipanggil dari banyak goroutine.
func GetGORM(cfg PostgresConfig, maxRetries int) (*gorm.DB, error) {
	return getSharedDB(func() (*gorm.DB, error) {
		return connectGORMWithRetry(cfg, maxRetries)
	})
}

func getSharedDB(dial func() (*gorm.DB, error)) (*gorm.DB, error) {
	if db := sharedDB.Load(); db != nil {
		return db, nil
	}

	v, err, _ := sf.Do("postgres", func() (interface{}, error) {
		// Flight sebelumnya bisa saja sudah sempat menyimpan handle
		if db := sharedDB.Load(); db != nil {
			return db, nil
		}
		db, err := dial()
		if err != nil {
			return nil, err
		}
		sharedDB.Store(db)
		return db, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*gorm.DB), nil
}

func connectGORMWithRetry(cfg PostgresConfig, maxRetries int) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.DBName, cfg.Port, cfg.SSLMode,
	)

	var lastErr error

	for i := 1; i <= maxRetries; i++ {

		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			lastErr = err
			zap.L().Warn("gorm open failed", zap.Int("attempt", i), zap.Int("max", maxRetries), zap.Error(err))
			time.Sleep(5 * time.Second)
			continue
		}

		sqlDB, err := db.DB()
		if err != nil {
			lastErr = err
			zap.L().Warn("get sql.DB failed", zap.Int("attempt", i), zap.Error(err))
			time.Sleep(5 * time.Second)
			continue
		}

		if err := sqlDB.Ping(); err != nil {
			lastErr = err
			zap.L().Warn("db ping failed", zap.Int("attempt", i), zap.Error(err))
			time.Sleep(5 * time.Second)
			continue
		}

		// Pool config
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(time.Hour)

		zap.L().Info("connected to postgres")
		return db, nil
	}

	return nil, fmt.Errorf("database connection failed after %d retries: %w", maxRetries, lastErr)
}

func ConnectRedisWithRetry(addr string, maxRetries int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	for i := 1; i <= maxRetries; i++ {
		ctx := context.Background()
		if err := rdb.Ping(ctx).Err(); err == nil {
			zap.L().Info("connected to redis")
			return rdb, nil
		}

		zap.L().Warn("redis retry failed", zap.Int("attempt", i), zap.Int("max", maxRetries))
		time.Sleep(5 * time.Second)
	}

	return nil, fmt.Errorf("failed to connect redis")
}
