package main

// @title           Shelfshare Lending API
// @version         1.0
// @description     Book inventory and member lending for Shelfshare.

// @contact.name   Sina Niyavarzi
// @contact.email  sinaniya@gmail.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/config"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/db"
	docs "github.com/snnyvrz/shelfshare/apps/lending-api/internal/docs"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/handler"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/library"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/middleware"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/repository"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/validation"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	appVersion      = "0.2.0"
	shutdownTimeout = 10 * time.Second
)

func main() {
	startTime := time.Now()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	gin.SetMode(cfg.GinMode)

	if err := validation.RegisterGinRules(); err != nil {
		log.Fatalf("register validation rules: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database := db.ConnectWithRetry(cfg)
	if err := db.Migrate(database); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		log.Fatalf("db handle: %v", err)
	}
	defer sqlDB.Close()

	store := repository.NewGormStore(database)
	catalog := library.NewCatalog(store)
	lending := library.NewLending(store, cfg.BorrowLimit)

	e := gin.Default()

	e.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
	})

	e.Use(middleware.RequestID())

	docs.SwaggerInfo.BasePath = "/api"

	healthHandler := handler.NewHealthHandler(sqlDB, cfg.DBDriver, cfg.BorrowLimit, startTime, appVersion)
	healthHandler.RegisterRoutes(e)

	api := e.Group("/api")
	if cfg.RateLimitRPS > 0 {
		api.Use(middleware.NewRateLimiter(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst).Middleware())
	}
	handler.RegisterAPI(api, catalog, lending)

	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("listening on %s (driver=%s, borrow limit=%d)", cfg.HTTPAddr, cfg.DBDriver, cfg.BorrowLimit)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
