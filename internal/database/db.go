package database

import (
	"fmt"
	"time"

	"training-portal/internal/logger"
	"training-portal/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DB stays nil when no DSN is configured; the audit trail is then off.
var DB *gorm.DB

const (
	maxAttempts  = 10
	retryBackoff = 2 * time.Second
)

func Init(dsn string) error {
	if dsn == "" {
		logger.Logger.Info("DB_DSN is empty, audit trail disabled")
		return nil
	}

	var (
		db  *gorm.DB
		err error
	)
	for i := 1; i <= maxAttempts; i++ {
		logger.Logger.Info("trying to connect to DB", zap.Int("attempt", i), zap.Int("max", maxAttempts))

		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		})
		if err == nil {
			logger.Logger.Info("connected to DB successfully")
			break
		}

		logger.Logger.Warn("failed to connect to DB", zap.Error(err))
		time.Sleep(retryBackoff)
	}
	if err != nil {
		return fmt.Errorf("connect to db after %d attempts: %w", maxAttempts, err)
	}

	// migrations
	if err := db.AutoMigrate(&models.AuditLog{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	DB = db
	return nil
}
