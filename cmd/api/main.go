package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"confidential-points-exchange/config"
	httpHandler "confidential-points-exchange/internal/adapter/http/handler"
	pgStorage "confidential-points-exchange/internal/adapter/storage/postgres"
	redisStorage "confidential-points-exchange/internal/adapter/storage/redis"
	"confidential-points-exchange/internal/core/ports"
	"confidential-points-exchange/internal/service"
	"confidential-points-exchange/pkg/logger"

	"github.com/google/uuid"
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
		Msg("Starting Confidential Points Exchange")

	ctx := context.Background()

	// Initialize PostgreSQL pool
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

	// Initialize repositories
	participantRepo := pgStorage.NewParticipantRepo(pool)
	ownershipRepo := pgStorage.NewOwnershipRepo(pool)
	brandRepo := pgStorage.NewBrandRepo(pool)
	rateRepo := pgStorage.NewRateRepo(pool)
	accountRepo := pgStorage.NewAccountRepo(pool)
	decryptRepo := pgStorage.NewDecryptionRepo(pool)
	eventRepo := pgStorage.NewEventRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	verifiedCache := redisStorage.NewVerifiedValueCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize core services
	engine, err := service.NewSealedEngine(cfg.Engine.SealKey, cfg.Engine.AttestSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize confidential engine")
	}
	verifier, err := service.NewHMACProofVerifier(cfg.Oracle.ProofSecret, cfg.JWT.Issuer)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize proof verifier")
	}
	dispatcher := service.NewHTTPOracleDispatcher(
		cfg.Oracle.Endpoint,
		cfg.Oracle.ProofSecret,
		&http.Client{Timeout: cfg.Oracle.Timeout},
		cfg.Oracle.Timeout,
		log,
	)
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Initialize business services
	identitySvc := service.NewIdentityService(participantRepo, hashSvc, tokenSvc, log)
	accessSvc := service.NewAccessService(ownershipRepo, eventRepo, transactor, log)
	registrySvc := service.NewRegistryService(brandRepo, rateRepo, eventRepo, accessSvc, engine, transactor, log)
	accountSvc := service.NewAccountService(accountRepo, eventRepo, engine, transactor, log)
	conversionSvc := service.NewConversionService(accountRepo, brandRepo, rateRepo, eventRepo, engine, transactor, log)
	oracleSvc := service.NewOracleService(decryptRepo, eventRepo, verifier, dispatcher, verifiedCache, transactor, cfg.Oracle.VerifiedTTL, log)
	eventSvc := service.NewEventService(eventRepo, log)

	// Seed the registry owner on first start. The persisted row wins later.
	if cfg.Owner.BootstrapID != "" {
		ownerID, err := uuid.Parse(cfg.Owner.BootstrapID)
		if err != nil {
			log.Fatal().Err(err).Msg("Invalid owner bootstrap ID")
		}
		if err := accessSvc.Bootstrap(ctx, ownerID); err != nil {
			log.Fatal().Err(err).Msg("Failed to bootstrap registry owner")
		}
	}

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		IdentitySvc:    identitySvc,
		AccessSvc:      accessSvc,
		RegistrySvc:    registrySvc,
		AccountSvc:     accountSvc,
		ConversionSvc:  conversionSvc,
		OracleSvc:      oracleSvc,
		EventSvc:       eventSvc,
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
