package handler

import (
	"bank-ledger/internal/adapter/http/middleware"
	redisStore "bank-ledger/internal/adapter/storage/redis"
	"bank-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	BankSvc        ports.BankService
	TokenSvc       ports.TokenService
	Journal        ports.EventJournal // nil = events endpoint disabled
	UserRepo       ports.UserRepository
	Token          TokenAccess
	Badges         BadgeAccess
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	VIPThreshold   int
	PageSize       int
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", rl("auth_register"), authHandler.Register)
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	leaderboardHandler := NewLeaderboardHandler(deps.BankSvc, deps.VIPThreshold, deps.PageSize)

	bankHandler := NewBankHandler(deps.BankSvc, deps.Journal)
	tokenHandler := NewTokenHandler(deps.Token, deps.Badges)
	v1.GET("/bank/pot", rl("bank_read"), bankHandler.Pot)
	v1.GET("/token", rl("bank_read"), tokenHandler.Info)

	// --- JWT-authenticated routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	leaderboard := v1.Group("/leaderboard")
	{
		leaderboard.GET("", rl("leaderboard"), leaderboardHandler.Show)
		leaderboard.GET("/slice", rl("leaderboard"), leaderboardHandler.Slice)
		leaderboard.GET("/pages/:page", rl("leaderboard"), leaderboardHandler.Page)
		leaderboard.GET("/rank", jwtAuth, rl("leaderboard"), leaderboardHandler.Rank)
	}

	bank := v1.Group("/bank", jwtAuth)
	{
		bank.POST("/deposit", rl("bank_mutation"), bankHandler.Deposit)
		bank.POST("/withdraw", rl("bank_mutation"), bankHandler.Withdraw)
		bank.POST("/stake", rl("bank_mutation"), bankHandler.Stake)
		bank.POST("/unstake", rl("bank_mutation"), bankHandler.Unstake)
		bank.POST("/claim-interest", rl("bank_mutation"), bankHandler.ClaimInterest)
		bank.POST("/claim-reward", rl("bank_mutation"), bankHandler.ClaimReward)
		bank.GET("/me", rl("bank_read"), bankHandler.Me)
		bank.GET("/events", rl("bank_read"), bankHandler.Events)
	}

	v1.GET("/token/me", jwtAuth, rl("bank_read"), tokenHandler.Me)

	// --- Admin routes (JWT-authenticated) ---
	// Bank-level operations are authorized inside the facade against the
	// current owner, so ownership transfers take effect immediately. The
	// token controls have no facade-level owner and rely on the role claim.
	adminHandler := NewAdminHandler(deps.BankSvc, deps.UserRepo, deps.Token)
	admin := v1.Group("/admin", jwtAuth)
	{
		admin.POST("/pause", rl("admin"), adminHandler.Pause)
		admin.POST("/unpause", rl("admin"), adminHandler.Unpause)
		admin.POST("/blacklist", rl("admin"), adminHandler.Blacklist)
		admin.POST("/circuit-breaker", rl("admin"), adminHandler.CircuitBreaker)
		admin.POST("/transfer-ownership", rl("admin"), adminHandler.TransferOwnership)
		admin.POST("/pot/deposit", rl("admin"), adminHandler.PotDeposit)
		admin.POST("/pot/withdraw", rl("admin"), adminHandler.PotWithdraw)

		token := admin.Group("/token", middleware.RequireOwner())
		{
			token.POST("/ratio", rl("admin"), adminHandler.TokenRatio)
			token.POST("/pause", rl("admin"), adminHandler.TokenPause)
		}
	}

	return r
}
