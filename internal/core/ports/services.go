package ports

import (
	"context"
	"time"

	"marketplace-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// EncryptionService handles AES-256-GCM encryption/decryption.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// SignatureService handles HMAC-SHA256 signing and verification.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
}

// HashService handles secret hashing (Argon2id).
type HashService interface {
	Hash(secret string) (string, error)
	Verify(secret string, hash string) (bool, error)
}

// Roles carried in access tokens.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(ownerID uuid.UUID, role string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	OwnerID uuid.UUID
	Role    string
}

// Principal is the authenticated caller of an operation.
type Principal struct {
	OwnerID uuid.UUID
	Role    string
}

// IsAdmin reports whether the caller holds the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// IdempotencyCache is the Redis-layer idempotency check (fast path).
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns cached response JSON or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// ReceiptStore remembers notifications that were already applied.
// It is advisory; the status guards remain authoritative.
type ReceiptStore interface {
	Seen(ctx context.Context, provider domain.Provider, reference string) (bool, error)
	Mark(ctx context.Context, provider domain.Provider, reference string, ttl time.Duration) error
}

// RateLimitStore counts requests per key in a fixed window.
type RateLimitStore interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, int, error)
}

// --- Gateway Ports ---

// QRGenerator renders a bank-transfer QR descriptor.
type QRGenerator interface {
	Generate(account domain.BankAccount, amount int64, note string) string
}

// RedirectRequest is the input for a signed gateway redirect URL.
type RedirectRequest struct {
	PaymentID uuid.UUID
	Amount    int64
	OrderInfo string
	ReturnURL string
	ClientIP  string
	CreatedAt time.Time
}

// RedirectGateway builds signed redirect URLs and verifies their callbacks.
type RedirectGateway interface {
	PaymentURL(req RedirectRequest) (string, error)
	// VerifyCallback authenticates the parameters before anything else reads them.
	VerifyCallback(params map[string]string) (domain.ReconciliationEvent, error)
}

// NotificationParser classifies a raw inbound notification body.
type NotificationParser interface {
	Parse(raw []byte) (domain.ReconciliationEvent, error)
}

// --- Service Ports (Business Logic) ---

// LedgerService is the only writer of wallet balances.
type LedgerService interface {
	Credit(ctx context.Context, ownerID uuid.UUID, amount int64, meta domain.TxMeta) (*domain.WalletTransaction, error)
	Debit(ctx context.Context, ownerID uuid.UUID, amount int64, meta domain.TxMeta) (*domain.WalletTransaction, error)
	CreditTx(ctx context.Context, tx pgx.Tx, ownerID uuid.UUID, amount int64, meta domain.TxMeta) (*domain.WalletTransaction, error)
	DebitTx(ctx context.Context, tx pgx.Tx, ownerID uuid.UUID, amount int64, meta domain.TxMeta) (*domain.WalletTransaction, error)
	// CompletePending confirms a PENDING transaction and applies its amount once.
	// applied is false when the transaction was already COMPLETED.
	CompletePending(ctx context.Context, txID uuid.UUID, completion domain.Completion) (txn *domain.WalletTransaction, applied bool, err error)
	FailPending(ctx context.Context, txID uuid.UUID, reason string) (bool, error)
	// RecordFailed appends a FAILED entry that never touches the balance.
	RecordFailed(ctx context.Context, ownerID uuid.UUID, amount int64, meta domain.TxMeta) (*domain.WalletTransaction, error)
}

// DepositService handles wallet top-ups through bank transfer.
type DepositService interface {
	CreateDeposit(ctx context.Context, req DepositRequest) (*DepositResult, error)
	ConfirmDeposit(ctx context.Context, req ConfirmDepositRequest) (*ConfirmResult, error)
	FailDeposit(ctx context.Context, txID uuid.UUID, reason string) error
	GetDeposit(ctx context.Context, ownerID, txID uuid.UUID) (*DepositView, error)
}

// DepositRequest holds validated input for a top-up.
type DepositRequest struct {
	OwnerID     uuid.UUID
	Amount      int64
	Description *string
}

// DepositResult is returned once when a deposit is created.
type DepositResult struct {
	Transaction   *domain.WalletTransaction
	QRCode        string
	ClampedAmount int64
	ExpiresAt     time.Time
	BankAccount   domain.BankAccount
	Instructions  string
}

// DepositView is a deposit with its passive expiry flag.
type DepositView struct {
	Transaction *domain.WalletTransaction
	IsExpired   bool
}

// ConfirmDepositRequest carries what a confirmation channel observed.
type ConfirmDepositRequest struct {
	TransactionID  uuid.UUID
	ExternalRef    string
	ObservedAmount int64
	Source         domain.ConfirmationSource
}

// ConfirmResult reports whether a confirmation changed anything.
type ConfirmResult struct {
	Transaction *domain.WalletTransaction
	Applied     bool
}

// CheckoutService creates and confirms order payments.
type CheckoutService interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error)
	GetPaymentStatus(ctx context.Context, ownerID, orderID uuid.UUID) (*PaymentStatusResult, error)
	ConfirmBankTransferFromWebhook(ctx context.Context, orderID uuid.UUID, externalRef string, observedAmount int64) (*PaymentConfirmResult, error)
	ConfirmPayment(ctx context.Context, paymentID uuid.UUID, actor Principal) (*PaymentConfirmResult, error)
	HandleGatewayResult(ctx context.Context, paymentID uuid.UUID, result GatewayResult) (*PaymentConfirmResult, error)
}

// CheckoutRequest holds validated input for a checkout.
type CheckoutRequest struct {
	OwnerID   uuid.UUID
	OrderID   uuid.UUID
	Method    domain.PaymentMethod
	ReturnURL *string
	CancelURL *string
	ClientIP  string
}

// CheckoutResult describes how the buyer completes the payment.
type CheckoutResult struct {
	Payment      *domain.Payment
	PaymentURL   string
	QRCode       string
	Instructions string
	BankAccount  *domain.BankAccount
	Reused       bool
}

// PaymentStatusResult is the latest payment of an order.
type PaymentStatusResult struct {
	Payment   *domain.Payment
	IsExpired bool
}

// PaymentConfirmResult reports whether a payment confirmation changed anything.
type PaymentConfirmResult struct {
	Payment *domain.Payment
	Applied bool
}

// GatewayResult is the verified outcome reported by a redirect gateway.
type GatewayResult struct {
	Success           bool
	ProviderReference string
	ResponseCode      string
	Amount            int64
}

// ReconciliationService matches inbound notifications to deposits and payments.
type ReconciliationService interface {
	// HandleNotification processes a bank or test notification body.
	// Failures are recorded and logged; callers always acknowledge.
	HandleNotification(ctx context.Context, provider domain.Provider, raw []byte) error
	// HandleRedirectCallback verifies and applies a signed gateway callback.
	HandleRedirectCallback(ctx context.Context, params map[string]string) CallbackAck
}

// CallbackAck is the provider-specific answer to a signed callback.
type CallbackAck struct {
	RspCode string `json:"RspCode"`
	Message string `json:"Message"`
}

// EscrowService moves funds when an order changes status.
type EscrowService interface {
	OnStatusChange(ctx context.Context, order *domain.Order, previous domain.OrderStatus) error
}

// OrderService is the order-transition entrypoint that drives escrow.
type OrderService interface {
	UpdateStatus(ctx context.Context, actor Principal, orderID uuid.UUID, status domain.OrderStatus) (*domain.Order, error)
}

// WalletService serves balance queries, withdrawals and payout settings.
type WalletService interface {
	GetBalance(ctx context.Context, ownerID uuid.UUID) (*domain.WalletBalance, error)
	Withdraw(ctx context.Context, req WithdrawRequest) (*domain.WalletTransaction, error)
	ListTransactions(ctx context.Context, params TransactionListParams) ([]domain.WalletTransaction, int64, error)
	UpdatePayoutInfo(ctx context.Context, req PayoutInfoRequest) (*domain.WalletBalance, error)
	ResolvePayoutAccount(ctx context.Context, ownerID uuid.UUID) (*domain.BankAccount, error)
	Reconcile(ctx context.Context, ownerID uuid.UUID) (*ReconcileReport, error)
}

// WithdrawRequest holds validated input for a withdrawal.
type WithdrawRequest struct {
	OwnerID        uuid.UUID
	Amount         int64
	IdempotencyKey string
	Description    string
}

// PayoutInfoRequest is the plaintext bank account submitted by an owner.
type PayoutInfoRequest struct {
	OwnerID       uuid.UUID
	BankCode      string
	AccountName   string
	AccountNumber string
}

// ReconcileReport compares the stored balance with the ledger.
type ReconcileReport struct {
	OwnerID    uuid.UUID `json:"owner_id"`
	Balance    int64     `json:"balance"`
	LedgerSum  int64     `json:"ledger_sum"`
	Consistent bool      `json:"consistent"`
}

// NotificationService delivers user notifications asynchronously.
type NotificationService interface {
	Notify(ctx context.Context, n domain.Notification)
}

// AuditService records audit entries asynchronously.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
