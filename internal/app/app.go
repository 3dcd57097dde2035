// Package app wires configuration, storage, services and the HTTP router
// into a runnable application shared by the API server and walletctl.
package app

import (
	"context"
	"fmt"
	"net/http"

	"marketplace-wallet/config"
	"marketplace-wallet/internal/adapter/gateway"
	httpHandler "marketplace-wallet/internal/adapter/http/handler"
	"marketplace-wallet/internal/adapter/storage/memory"
	pgStorage "marketplace-wallet/internal/adapter/storage/postgres"
	redisStorage "marketplace-wallet/internal/adapter/storage/redis"
	"marketplace-wallet/internal/core/domain"
	"marketplace-wallet/internal/core/ports"
	"marketplace-wallet/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Storage drivers.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// App holds the wired services.
type App struct {
	Wallets        ports.WalletService
	Deposits       ports.DepositService
	Checkout       ports.CheckoutService
	Reconciliation ports.ReconciliationService
	Orders         ports.OrderService
	Tokens         ports.TokenService
	Audit          ports.AuditService

	// Memory is set when storage.driver=memory so local runs can seed
	// orders and shops.
	Memory *memory.Store

	cfg      *config.Config
	hashSvc  ports.HashService
	limiter  ports.RateLimitStore
	checkers []ports.HealthChecker
	closers  []func()
	log      zerolog.Logger
}

type repositories struct {
	wallets      ports.WalletRepository
	transactions ports.TransactionRepository
	payments     ports.PaymentRepository
	orders       ports.OrderRepository
	shops        ports.ShopRepository
	idempotency  ports.IdempotencyRepository
	events       ports.WebhookEventRepository
	audit        ports.AuditRepository
	transactor   ports.DBTransactor
}

// New connects the configured storage backend and builds every service.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	a := &App{cfg: cfg, log: log}

	var (
		repos      repositories
		idempCache ports.IdempotencyCache
		receipts   ports.ReceiptStore
	)

	switch cfg.Storage.Driver {
	case DriverMemory:
		store := memory.NewStore()
		r := store.Repositories()
		repos = repositories{
			wallets:      r.Wallets,
			transactions: r.Transactions,
			payments:     r.Payments,
			orders:       r.Orders,
			shops:        r.Shops,
			idempotency:  r.Idempotency,
			events:       r.Events,
			audit:        r.Audit,
			transactor:   r.Transactor,
		}
		a.Memory = store
		log.Warn().Msg("Using in-memory storage, data is lost on restart")

	case DriverPostgres, "":
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		a.closers = append(a.closers, pool.Close)
		log.Info().Msg("PostgreSQL connected")

		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		a.closers = append(a.closers, func() { _ = rdb.Close() })
		log.Info().Msg("Redis connected")

		repos = repositories{
			wallets:      pgStorage.NewWalletRepo(pool),
			transactions: pgStorage.NewTransactionRepo(pool),
			payments:     pgStorage.NewPaymentRepo(pool),
			orders:       pgStorage.NewOrderRepo(pool),
			shops:        pgStorage.NewShopRepo(pool),
			idempotency:  pgStorage.NewIdempotencyRepo(pool),
			events:       pgStorage.NewWebhookEventRepo(pool),
			audit:        pgStorage.NewAuditRepo(pool),
			transactor:   pgStorage.NewTransactor(pool),
		}
		idempCache = redisStorage.NewIdempotencyCache(rdb)
		receipts = redisStorage.NewReceiptStore(rdb)
		a.limiter = redisStorage.NewRateLimitStore(rdb)
		a.checkers = []ports.HealthChecker{pgStorage.NewHealthCheck(pool), redisStorage.NewHealthCheck(rdb)}

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("init encryption: %w", err)
	}
	a.hashSvc = service.NewArgon2HashService()
	a.Tokens = service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	notifier := service.NewNotificationService(
		cfg.Notification.URL,
		cfg.Notification.Secret,
		service.NewHMACSignatureService(),
		&http.Client{Timeout: cfg.Notification.Timeout},
		log,
	)
	a.Audit = service.NewAuditService(repos.audit, log)

	policy := domain.AmountPolicy{
		TestMode:  cfg.Payment.TestMode,
		Cap:       cfg.Payment.TestAmountCap,
		Tolerance: cfg.Payment.AmountTolerance,
	}
	platform := domain.BankAccount{
		BankCode:      cfg.Payment.DefaultBank.BankCode,
		AccountNumber: cfg.Payment.DefaultBank.AccountNumber,
		AccountName:   cfg.Payment.DefaultBank.AccountName,
	}
	qr := gateway.NewVietQR(cfg.Payment.QRTemplate)
	vnpay := gateway.NewVNPay(gateway.VNPayConfig{
		TmnCode:    cfg.Gateway.VNPay.TmnCode,
		HashSecret: cfg.Gateway.VNPay.HashSecret,
		PayURL:     cfg.Gateway.VNPay.PayURL,
		ReturnURL:  cfg.Gateway.VNPay.ReturnURL,
		Expiry:     cfg.Gateway.VNPay.Expiry,
	}, service.NewHMACSHA512SignatureService())

	ledger := service.NewLedgerService(repos.wallets, repos.transactions, repos.transactor, log)
	wallets := service.NewWalletService(repos.wallets, repos.transactions, repos.idempotency, idempCache, ledger, encSvc, repos.transactor, log)
	deposits := service.NewDepositService(ledger, repos.transactions, wallets, qr, notifier, service.DepositConfig{
		Policy:      policy,
		DefaultBank: platform,
		Expiry:      cfg.Payment.DepositExpiry,
	}, log)
	checkout := service.NewCheckoutService(repos.orders, repos.payments, ledger, repos.transactor, qr, vnpay, notifier, service.CheckoutConfig{
		Policy:             policy,
		Bank:               platform,
		BankTransferExpiry: cfg.Payment.BankTransferExpiry,
		RedirectExpiry:     cfg.Gateway.VNPay.Expiry,
	}, log)

	parsers := map[domain.Provider]ports.NotificationParser{
		domain.ProviderBank: gateway.NewParser(domain.ProviderBank),
	}
	if !cfg.Server.IsProduction() {
		parsers[domain.ProviderTest] = gateway.NewParser(domain.ProviderTest)
	}
	recon := service.NewReconciliationService(deposits, checkout, repos.transactions, repos.payments, repos.events, parsers, vnpay, receipts, cfg.Webhook.ReceiptTTL, log)
	escrow := service.NewEscrowService(repos.orders, repos.shops, repos.payments, ledger, notifier, log)

	a.Wallets = wallets
	a.Deposits = deposits
	a.Checkout = checkout
	a.Reconciliation = recon
	a.Orders = service.NewOrderService(repos.orders, repos.shops, escrow, notifier, a.Audit, log)

	return a, nil
}

// Router builds the gin engine for the API server.
func (a *App) Router() *gin.Engine {
	return httpHandler.SetupRouter(httpHandler.RouterDeps{
		Wallets:           a.Wallets,
		Deposits:          a.Deposits,
		Checkout:          a.Checkout,
		Reconciliation:    a.Reconciliation,
		Orders:            a.Orders,
		TokenSvc:          a.Tokens,
		HashSvc:           a.hashSvc,
		WebhookAPIKeyHash: a.cfg.Webhook.APIKeyHash,
		RateLimitStore:    a.limiter,
		HealthCheckers:    a.checkers,
		AuditSvc:          a.Audit,
		Production:        a.cfg.Server.IsProduction(),
		Logger:            a.log,
	})
}

// Close releases storage connections in reverse order.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
