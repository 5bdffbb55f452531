package main

import (
	"context"
	"fmt"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bank-ledger/config"
	httpHandler "bank-ledger/internal/adapter/http/handler"
	pgStorage "bank-ledger/internal/adapter/storage/postgres"
	redisStorage "bank-ledger/internal/adapter/storage/redis"
	"bank-ledger/internal/adapter/token"
	"bank-ledger/internal/core/ports"
	"bank-ledger/internal/service"
	"bank-ledger/pkg/logger"
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
		Msg("Starting Bank Ledger")

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
	userRepo := pgStorage.NewUserRepo(pool)
	journal := pgStorage.NewEventJournalRepo(pool)

	// Initialize core services
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	authSvc := service.NewAuthService(userRepo, hashSvc, tokenSvc)

	// Bootstrap the owner identity
	if cfg.Bank.OwnerPassword == "" {
		log.Fatal().Msg("BANK_BANK_OWNER_PASSWORD must be set")
	}
	owner, err := authSvc.EnsureOwner(ctx, cfg.Bank.OwnerUsername, cfg.Bank.OwnerPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to bootstrap owner")
	}
	log.Info().Str("username", owner.Username).Str("account_id", owner.ID.String()).Msg("Owner ready")

	// Companion tokens
	maxSupply, ok := new(big.Int).SetString(cfg.Token.MaxSupply, 10)
	if !ok {
		log.Fatal().Str("max_supply", cfg.Token.MaxSupply).Msg("Invalid token max supply")
	}
	swapRatio, ok := new(big.Int).SetString(cfg.Token.SwapRatio, 10)
	if !ok {
		log.Fatal().Str("swap_ratio", cfg.Token.SwapRatio).Msg("Invalid token swap ratio")
	}
	rewardToken := token.NewRewardToken("Bank Reward", "BRW", maxSupply, swapRatio, log)
	badge := token.NewRewardBadge(log)

	// Bank state machine
	bankSvc := service.NewBankService(
		owner.ID,
		rewardToken,
		badge,
		journal,
		cfg.Bank.VIPThreshold,
		cfg.Bank.LeadersPageSize,
		log,
	)

	// Initialize rate limit store
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		BankSvc:        bankSvc,
		TokenSvc:       tokenSvc,
		Journal:        journal,
		UserRepo:       userRepo,
		Token:          rewardToken,
		Badges:         badge,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		VIPThreshold:   cfg.Bank.VIPThreshold,
		PageSize:       cfg.Bank.LeadersPageSize,
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
