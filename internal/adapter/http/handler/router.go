package handler

import (
	"marketplace-wallet/internal/adapter/http/middleware"
	"marketplace-wallet/internal/core/domain"
	"marketplace-wallet/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Wallets           ports.WalletService
	Deposits          ports.DepositService
	Checkout          ports.CheckoutService
	Reconciliation    ports.ReconciliationService
	Orders            ports.OrderService
	TokenSvc          ports.TokenService
	HashSvc           ports.HashService
	WebhookAPIKeyHash string               // empty = bank receiver unauthenticated
	RateLimitStore    ports.RateLimitStore // nil = rate limiting disabled
	HealthCheckers    []ports.HealthChecker
	AuditSvc          ports.AuditService // nil = audit logging disabled
	Production        bool
	Logger            zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	if deps.Production {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	// Health check (deep, pings every configured store)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

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

	v1 := r.Group("/api/v1")
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	adminOnly := middleware.RequireAdmin()

	walletHandler := NewWalletHandler(deps.Wallets, deps.Deposits)
	webhookHandler := NewWebhookHandler(deps.Reconciliation, deps.Logger)
	paymentHandler := NewPaymentHandler(deps.Checkout, deps.Reconciliation, deps.Logger)
	orderHandler := NewOrderHandler(deps.Orders)

	// --- Provider notifications (no JWT) ---
	bankKey := middleware.WebhookAPIKey(deps.HashSvc, deps.WebhookAPIKeyHash, deps.Logger)
	v1.POST("/wallet/webhook-receiver", rl("webhook"), bankKey, webhookHandler.BankReceiver)
	if !deps.Production {
		v1.POST("/wallet/test-webhook", rl("webhook"), webhookHandler.TestReceiver)
	}
	gatewayKey := middleware.WhenParam("gateway", string(domain.ProviderBank), bankKey)
	v1.GET("/payment/webhook/:gateway", rl("webhook"), gatewayKey, paymentHandler.GatewayWebhook)
	v1.POST("/payment/webhook/:gateway", rl("webhook"), gatewayKey, paymentHandler.GatewayWebhook)

	// --- JWT-authenticated routes ---
	wallet := v1.Group("/wallet", jwtAuth)
	{
		wallet.POST("/deposit", rl("wallet_deposit"), walletHandler.Deposit)
		wallet.GET("/balance", rl("wallet_read"), walletHandler.GetBalance)
		wallet.POST("/withdraw", rl("wallet_withdraw"), walletHandler.Withdraw)
		wallet.GET("/transactions", rl("wallet_read"), walletHandler.ListTransactions)
		wallet.PUT("/payout-info", rl("wallet_read"), walletHandler.UpdatePayoutInfo)
		wallet.GET("/deposits/:transactionId", rl("wallet_read"), walletHandler.GetDeposit)
		wallet.GET("/reconcile", rl("wallet_read"), walletHandler.Reconcile)
		wallet.POST("/confirm/:transactionId", adminOnly, walletHandler.ConfirmDeposit)
	}

	payment := v1.Group("/payment", jwtAuth)
	{
		payment.POST("/checkout", rl("checkout"), paymentHandler.Checkout)
		payment.GET("/status/:orderId", rl("wallet_read"), paymentHandler.GetStatus)
		payment.POST("/confirm/:paymentId", adminOnly, paymentHandler.ConfirmPayment)
	}

	orders := v1.Group("/orders", jwtAuth)
	{
		orders.PATCH("/:orderId/status", rl("orders"), orderHandler.UpdateStatus)
	}

	return r
}
