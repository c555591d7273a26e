package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/diegogutti007/sistema-golden-backend/internal/config"
	"github.com/diegogutti007/sistema-golden-backend/internal/database"
	"github.com/diegogutti007/sistema-golden-backend/internal/handler"
	"github.com/diegogutti007/sistema-golden-backend/internal/metrics"
	"github.com/diegogutti007/sistema-golden-backend/internal/middleware"
	"github.com/diegogutti007/sistema-golden-backend/internal/queue"
	"github.com/diegogutti007/sistema-golden-backend/internal/repository"
	"github.com/diegogutti007/sistema-golden-backend/internal/router"
	"github.com/diegogutti007/sistema-golden-backend/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}
	log := config.NewLogger(cfg)

	gw, err := database.Open(database.Options{
		User:         cfg.DBUser,
		Pass:         cfg.DBPass,
		Host:         cfg.DBHost,
		Port:         cfg.DBPort,
		Name:         cfg.DBName,
		TLS:          cfg.DBTLS,
		MaxOpenConns: cfg.DBMaxOpenConns,
		Timeout:      cfg.DBConnTimeout,
	})
	if err != nil {
		log.WithError(err).Fatal("database connection failed")
	}
	log.WithFields(logrus.Fields{"db": cfg.DBName, "pool": cfg.DBMaxOpenConns}).Info("database connected")

	rdb := config.NewRedisClient(log)
	if rdb != nil {
		defer rdb.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pub := queue.NewPublisher(cfg.RabbitMQURL, log)
	if cfg.RabbitMQURL != "" && cfg.LedgerConsumer {
		consumer := queue.NewConsumer(cfg.RabbitMQURL, cfg.LedgerLogPath, log)
		go func() {
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.WithError(err).Error("ledger consumer stopped")
			}
		}()
	}

	db := gw.DB()
	authSvc := service.NewAuthService(repository.NewUserRepo(db), service.AuthConfig{
		Secret:     cfg.JWTSecret,
		TokenTTL:   cfg.TokenTTL,
		BcryptCost: cfg.BcryptCost,
	}, log)
	saleRepo := repository.NewSaleRepo(db)
	expenseRepo := repository.NewExpenseRepo(db)

	handlers := router.Handlers{
		Health:       handler.NewHealthHandler(gw),
		Auth:         handler.NewAuthHandler(authSvc),
		Sales:        handler.NewSaleHandler(service.NewSaleService(gw, log, pub), saleRepo),
		Expenses:     handler.NewExpenseHandler(service.NewExpenseService(gw, log, pub), expenseRepo),
		Appointments: handler.NewAppointmentHandler(repository.NewAppointmentRepo(db)),
		Clients:      handler.NewClientHandler(repository.NewClientRepo(db)),
		Employees:    handler.NewEmployeeHandler(repository.NewEmployeeRepo(db)),
		Lookups:      handler.NewLookupHandler(repository.NewLookupRepo(db)),
		Commissions:  handler.NewCommissionHandler(repository.NewCommissionRepo(db)),
	}
	guards := router.Guards{
		Verifier:   authSvc,
		Cache:      middleware.NewRedisCache(config.LoadCacheConfig(), rdb),
		LoginLimit: middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb, log),
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = router.ErrorHandler(log)
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(echomw.BodyLimit("10M"))
	e.Use(middleware.RequestLogger(log))
	e.Use(metrics.Middleware())
	router.Register(e, handlers, guards)

	addr := ":" + cfg.Port
	go func() {
		log.WithFields(logrus.Fields{"addr": addr, "env": cfg.Env}).Info("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
	if err := gw.Close(); err != nil {
		log.WithError(err).Warn("closing database pool")
	}
}
