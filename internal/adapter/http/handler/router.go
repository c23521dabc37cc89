package handler

import (
	"payout-gateway/internal/adapter/http/middleware"
	redisStore "payout-gateway/internal/adapter/storage/redis"
	"payout-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WizardSvc      ports.WizardService
	AccountSvc     ports.PayoutAccountService
	HistorySvc     ports.HistoryService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check, deep: verifies PostgreSQL and Redis
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

	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	v1 := r.Group("/api/v1", jwtAuth)

	// --- Withdrawal wizard ---
	wizardHandler := NewWizardHandler(deps.WizardSvc)
	wizard := v1.Group("/withdrawals/wizard")
	{
		wizard.POST("", rl("wizard"), wizardHandler.Start)
		wizard.GET("/:id", rl("wizard"), wizardHandler.Get)
		wizard.POST("/:id/amount", rl("wizard"), wizardHandler.EnterAmount)
		wizard.POST("/:id/confirm-account", rl("wizard"), wizardHandler.ConfirmAccount)
		wizard.POST("/:id/reveal", rl("pin_gated"), wizardHandler.Reveal)
		wizard.POST("/:id/confirm-summary", rl("wizard"), wizardHandler.ConfirmSummary)
		wizard.POST("/:id/submit", rl("pin_gated"), wizardHandler.Submit)
		wizard.POST("/:id/back", rl("wizard"), wizardHandler.Back)
	}

	// --- Payout account ---
	accountHandler := NewAccountHandler(deps.AccountSvc)
	account := v1.Group("/payout-account")
	{
		account.GET("", rl("account"), accountHandler.Get)
		account.PUT("", rl("account"), accountHandler.Save)
		account.DELETE("", rl("pin_gated"), accountHandler.Remove)
		account.POST("/reveal", rl("pin_gated"), accountHandler.Reveal)
	}

	// --- Withdrawal history & balance ---
	historyHandler := NewHistoryHandler(deps.HistorySvc)
	withdrawals := v1.Group("/withdrawals")
	{
		withdrawals.GET("", rl("history"), historyHandler.List)
		withdrawals.POST("/refresh", rl("history"), historyHandler.Refresh)
		// Cancellation is modelled as deleting the request.
		withdrawals.DELETE("/:uid", rl("history_mut"), historyHandler.Cancel)
	}
	v1.GET("/balance", rl("history"), historyHandler.Balance)

	return r
}
