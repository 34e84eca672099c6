package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	DefaultBorrowLimit = 10
)

type Config struct {
	GinMode  string
	HTTPAddr string
	TZ       string

	DBDriver          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPass            string
	DBName            string
	DBSSLMode         string
	SQLitePath        string
	DBConnectAttempts int
	DBSlowQuery       time.Duration
	DBLogLevel        string

	BorrowLimit int

	RateLimitRPS   float64
	RateLimitBurst int
}

// findEnvFile walks up from the working directory looking for name and
// returns "" when it is not found.
func findEnvFile(name string) string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func Load() (*Config, error) {
	if getenv("GIN_MODE", "debug") == "debug" {
		filename := ".env.dev"
		if envPath := findEnvFile(filename); envPath != "" {
			if err := godotenv.Load(envPath); err != nil {
				log.Printf("warning: could not load %s: %v", envPath, err)
			} else {
				log.Printf("loaded %s from %s", filename, envPath)
			}
		}
	}

	cfg := &Config{
		GinMode:    getenv("GIN_MODE", "debug"),
		HTTPAddr:   getenv("HTTP_ADDR", ":8080"),
		TZ:         getenv("TZ", "UTC"),
		DBDriver:   getenv("DB_DRIVER", DriverPostgres),
		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPass:     getenv("DB_PASS", ""),
		DBName:     getenv("DB_NAME", "postgres"),
		DBSSLMode:  os.Getenv("DB_SSLMODE"),
		SQLitePath: getenv("SQLITE_PATH", "shelfshare.db"),
		DBLogLevel: getenv("DB_LOG_LEVEL", "warn"),
	}

	if cfg.DBSSLMode == "" {
		if cfg.GinMode == "release" {
			cfg.DBSSLMode = "require"
		} else {
			cfg.DBSSLMode = "disable"
		}
	}

	var err error
	if cfg.DBConnectAttempts, err = getenvInt("DB_CONNECT_ATTEMPTS", 10); err != nil {
		return nil, err
	}
	slowMS, err := getenvInt("DB_SLOW_QUERY_MS", 200)
	if err != nil {
		return nil, err
	}
	cfg.DBSlowQuery = time.Duration(slowMS) * time.Millisecond

	if cfg.BorrowLimit, err = getenvInt("BORROW_LIMIT", DefaultBorrowLimit); err != nil {
		return nil, err
	}
	if cfg.RateLimitRPS, err = getenvFloat("RATE_LIMIT_RPS", 20); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = getenvInt("RATE_LIMIT_BURST", 40); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	if c.BorrowLimit <= 0 {
		errs = append(errs, fmt.Errorf("BORROW_LIMIT must be positive, got %d", c.BorrowLimit))
	}
	if c.DBDriver != DriverPostgres && c.DBDriver != DriverSQLite {
		errs = append(errs, fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverPostgres, DriverSQLite, c.DBDriver))
	}
	if c.DBConnectAttempts <= 0 {
		errs = append(errs, fmt.Errorf("DB_CONNECT_ATTEMPTS must be positive, got %d", c.DBConnectAttempts))
	}
	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		errs = append(errs, errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must not be negative"))
	}
	switch c.DBLogLevel {
	case "silent", "error", "warn", "info":
	default:
		errs = append(errs, fmt.Errorf("DB_LOG_LEVEL must be one of silent, error, warn, info, got %q", c.DBLogLevel))
	}

	return errors.Join(errs...)
}

func (c *Config) DSN() string {
	if c.DBDriver == DriverSQLite {
		return fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", c.SQLitePath)
	}

	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DBHost,
		c.DBUser,
		c.DBPass,
		c.DBName,
		c.DBPort,
		c.DBSSLMode,
		c.TZ,
	)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getenvFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return f, nil
}
