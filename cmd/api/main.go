package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"payout-gateway/config"
	httpHandler "payout-gateway/internal/adapter/http/handler"
	ledgerClient "payout-gateway/internal/adapter/ledger"
	pgStorage "payout-gateway/internal/adapter/storage/postgres"
	redisStorage "payout-gateway/internal/adapter/storage/redis"
	"payout-gateway/internal/core/ports"
	"payout-gateway/internal/service"
	"payout-gateway/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Payout Gateway")

	ctx := context.Background()

	// Initialize PostgreSQL pool (audit trail)
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Upstream ledger client
	ledger := ledgerClient.NewClient(cfg.Ledger, log)

	// Initialize repositories and stores
	auditRepo := pgStorage.NewAuditRepository(pool)
	sessionStore := redisStorage.NewSessionStore(rdb)
	accountCache := redisStorage.NewAccountCache(rdb)
	historyCache := redisStorage.NewHistoryCache(rdb)
	submitLock := redisStorage.NewSubmitLock(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize core services
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Issuer)
	auditSvc := service.NewAuditService(auditRepo, log)
	feeCalc := service.NewFeeCalculator(cfg.Withdrawal.FeeRate, cfg.Withdrawal.MinAmount, cfg.Withdrawal.Presets)

	// Initialize business services
	revealSvc := service.NewRevealService(ledger, auditSvc, log)
	accountSvc := service.NewPayoutAccountService(ledger, accountCache, revealSvc, auditSvc, log)
	historySvc := service.NewHistoryService(ledger, historyCache, auditSvc, log)
	wizardSvc := service.NewWizardService(
		ledger,
		sessionStore,
		accountSvc,
		historyCache,
		submitLock,
		auditSvc,
		feeCalc,
		cfg.Withdrawal.SessionTTL,
		log,
	)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WizardSvc:      wizardSvc,
		AccountSvc:     accountSvc,
		HistorySvc:     historySvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
