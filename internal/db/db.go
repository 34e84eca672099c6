package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/config"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

const defaultDelayBetweenTry = 2 * time.Second

// Dialector picks the gorm driver for cfg.DBDriver.
func Dialector(cfg *config.Config) gorm.Dialector {
	if cfg.DBDriver == config.DriverSQLite {
		return sqlite.Open(cfg.DSN())
	}
	return postgres.Open(cfg.DSN())
}

// NewLogger builds the SQL logger used by every connection.
func NewLogger(cfg *config.Config) gormLogger.Interface {
	return gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             cfg.DBSlowQuery,
			LogLevel:                  logLevel(cfg.DBLogLevel),
			IgnoreRecordNotFoundError: true,
			Colorful:                  cfg.GinMode != "release",
		},
	)
}

func logLevel(level string) gormLogger.LogLevel {
	switch level {
	case "silent":
		return gormLogger.Silent
	case "error":
		return gormLogger.Error
	case "info":
		return gormLogger.Info
	default:
		return gormLogger.Warn
	}
}

// Open connects to the configured store, pinging until it answers or
// cfg.DBConnectAttempts is exhausted.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	for attempt := 1; attempt <= cfg.DBConnectAttempts; attempt++ {
		db, err = gorm.Open(Dialector(cfg), &gorm.Config{
			Logger:         NewLogger(cfg),
			TranslateError: true,
		})
		if err == nil {
			sqlDB, err2 := db.DB()
			if err2 == nil {
				pingErr := sqlDB.Ping()
				if pingErr == nil {
					if cfg.DBDriver == config.DriverSQLite {
						// sqlite allows one writer; a single connection makes
						// transactions queue instead of failing with SQLITE_BUSY.
						sqlDB.SetMaxOpenConns(1)
					}
					return db, nil
				}
				err = pingErr
			} else {
				err = err2
			}
		}

		log.Printf("db not ready (attempt %d/%d): %v", attempt, cfg.DBConnectAttempts, err)
		if attempt < cfg.DBConnectAttempts {
			time.Sleep(defaultDelayBetweenTry)
		}
	}

	return nil, fmt.Errorf("could not connect to db after %d attempts: %w", cfg.DBConnectAttempts, err)
}

// ConnectWithRetry is Open for process entrypoints: it exits on failure.
func ConnectWithRetry(cfg *config.Config) *gorm.DB {
	db, err := Open(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	return db
}

// Migrate creates or updates the books, members and loans tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.Book{}, &model.Member{}, &model.Loan{})
}
