package main

import (
	"context"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"invoicedash/docs"

	"github.com/labstack/echo/v4"

	"invoicedash/internal/auth"
	"invoicedash/internal/cache"
	"invoicedash/internal/config"
	"invoicedash/internal/db"
	"invoicedash/internal/handler"
	"invoicedash/internal/logging"
	"invoicedash/internal/model"
	"invoicedash/internal/repository"
	"invoicedash/internal/router"
	"invoicedash/internal/service"
)

// @title Invoice Dashboard API
// @version 1.0
// @description Invoices, customers and revenue behind a session-gated dashboard.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey SessionToken
// @in header
// @name Authorization
// @description The session cookie, or "Bearer" followed by the session token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New("info", "json").WithError(err).Fatal("load config")
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		logger.WithError(err).Fatal("database init")
	}

	if cfg.AutoMigrate {
		if err := gormDB.AutoMigrate(
			&model.User{},
			&model.Customer{},
			&model.Invoice{},
			&model.Revenue{},
		); err != nil {
			logger.WithError(err).Fatal("auto-migrate")
		}
		logger.Info("schema migrated")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()

	// Initialize repositories
	invoiceRepo := repository.NewInvoiceRepository(gormDB)
	customerRepo := repository.NewCustomerRepository(gormDB)
	revenueRepo := repository.NewRevenueRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.SessionSecret, cfg.SessionTTL)
	sessionStore := auth.NewSessionStore(cacheClient)
	views := cache.NewViewCache(cacheClient, cfg.ViewCacheTTL)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, sessionStore, logger)
	dashboardService := service.NewDashboardService(invoiceRepo, customerRepo, revenueRepo, logger)
	invoiceService := service.NewInvoiceService(invoiceRepo, logger)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, cfg.SessionCookie, cfg.SessionSecure)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	invoiceHandler := handler.NewInvoiceHandler(dashboardService, invoiceService, views)

	e := echo.New()
	e.HideBanner = true

	router.Register(
		e,
		cfg,
		logger,
		jwtService,
		authService,
		authHandler,
		dashboardHandler,
		invoiceHandler,
	)

	if cfg.SwaggerHost != "" {
		// SwaggerHost may carry a scheme; swagger wants host[:port] only
		host := strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
		docs.SwaggerInfo.Host = host
	}
	logger.Infof("Swagger documentation available at: http://%s/swagger/index.html", docs.SwaggerInfo.Host)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("server start")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("server shutdown")
	}
}
