// Command server runs the tax system HTTP API.
//
// @title                      Tax System API
// @version                    1.0
// @description                Small-business tax management API for New Zealand: bank feed, GST, invoicing, payroll, timesheets, contracts, and reports.
// @BasePath                   /
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/aitax/tax-system/internal/api"
	"github.com/aitax/tax-system/internal/core/service"
	"github.com/aitax/tax-system/internal/infrastructure/db/mongo"
	"github.com/aitax/tax-system/internal/infrastructure/db/redis"
	"github.com/aitax/tax-system/internal/infrastructure/queue"
	"github.com/aitax/tax-system/internal/pkg/config"
	"github.com/aitax/tax-system/pkg/logger"
)

const (
	tokenTTL        = 24 * time.Hour
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	// --- Repositories ---
	userRepo := mongo.NewUserRepository(db)
	txRepo := mongo.NewTransactionRepository(db)
	gstRepo := mongo.NewGSTReturnRepository(db)
	invoiceRepo := mongo.NewInvoiceRepository(db)
	payrollRepo := mongo.NewPayrollRepository(db)
	timesheetRepo := mongo.NewTimesheetRepository(db)
	contractRepo := mongo.NewContractRepository(db)
	reportRepo := mongo.NewReportRepository(db)

	if err := txRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("transaction indexes failed")
	}
	if err := invoiceRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("invoice indexes failed")
	}

	if err := mongo.NewSeeder(db).Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("seeding demo data failed")
	}

	// --- Services ---
	sessionStore := redis.NewSessionStore(rdb)
	sessions := service.NewSessionService(sessionStore, log)
	if err := sessions.Bootstrap(ctx, userRepo); err != nil {
		log.Fatal().Err(err).Msg("session bootstrap failed")
	}

	dispatcher := queue.NewDispatcher(cfg.Workers, log)
	deduper := redis.NewClassificationDeduper(rdb)
	bank := service.NewBankService(txRepo, dispatcher, deduper, log)
	dispatcher.Bind(bank)
	dispatcher.Start(ctx)

	auth := service.NewAuthService(userRepo, sessions, cfg.JWTSecret, tokenTTL)
	gst := service.NewGSTService(gstRepo, txRepo, log)
	invoices := service.NewInvoiceService(invoiceRepo, log)
	payroll := service.NewPayrollService(payrollRepo, log)
	timesheets := service.NewTimesheetService(timesheetRepo, log)
	contracts := service.NewContractService(contractRepo, log)
	reports := service.NewReportService(reportRepo, txRepo, log)
	assistant := service.NewAssistantService(log)

	// --- HTTP server ---
	e := api.NewRouter(api.Dependencies{
		JWTSecret:  cfg.JWTSecret,
		Logger:     log,
		Mongo:      db,
		Redis:      rdb,
		Auth:       auth,
		Sessions:   sessions,
		Bank:       bank,
		GST:        gst,
		Invoices:   invoices,
		Payroll:    payroll,
		Timesheets: timesheets,
		Contracts:  contracts,
		Reports:    reports,
		Assistant:  assistant,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("tax system API started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
