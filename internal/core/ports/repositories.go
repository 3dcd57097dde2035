package ports

import (
	"context"
	"time"

	"marketplace-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Repository methods taking a pgx.Tx run inside it when tx is non-nil and
// against the pool otherwise.

// WalletRepository persists balance records. Every balance change is a single
// conditional statement; there is no read-modify-write.
type WalletRepository interface {
	// EnsureExists is the atomic find-or-create used before a debit.
	EnsureExists(ctx context.Context, tx pgx.Tx, ownerID uuid.UUID) error
	// Credit upserts the row and adds amount. Returns the new balance.
	Credit(ctx context.Context, tx pgx.Tx, ownerID uuid.UUID, amount int64, at time.Time) (int64, error)
	// Debit subtracts amount only if the balance covers it.
	// ok is false when the balance is insufficient; nothing changes then.
	Debit(ctx context.Context, tx pgx.Tx, ownerID uuid.UUID, amount int64, at time.Time) (newBalance int64, ok bool, err error)
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*domain.WalletBalance, error)
	UpdatePayoutInfo(ctx context.Context, ownerID uuid.UUID, info domain.PayoutInfo) error
}

// TransactionRepository persists the append-only transaction log.
type TransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, transaction *domain.WalletTransaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WalletTransaction, error)
	GetByExternalReference(ctx context.Context, ref string) (*domain.WalletTransaction, error)
	// MarkCompleted transitions PENDING to COMPLETED and merges metadata.
	// Returns the updated row, or nil when no PENDING row matched.
	MarkCompleted(ctx context.Context, tx pgx.Tx, id uuid.UUID, at time.Time, patch domain.TransactionMetadata) (*domain.WalletTransaction, error)
	// MarkFailed transitions PENDING to FAILED. Returns false when no PENDING row matched.
	MarkFailed(ctx context.Context, tx pgx.Tx, id uuid.UUID, patch domain.TransactionMetadata) (bool, error)
	List(ctx context.Context, params TransactionListParams) ([]domain.WalletTransaction, int64, error)
	SumCompleted(ctx context.Context, ownerID uuid.UUID) (int64, error)
}

// TransactionListParams holds filter + pagination for listing transactions.
type TransactionListParams struct {
	OwnerID  uuid.UUID
	Status   *domain.TransactionStatus
	Type     *domain.TransactionType
	From     *int64 // Unix timestamp
	To       *int64 // Unix timestamp
	Page     int
	PageSize int
}

// PaymentRepository persists checkout payments. Status changes are
// conditional on the current status so concurrent confirmers serialize.
type PaymentRepository interface {
	Create(ctx context.Context, tx pgx.Tx, payment *domain.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
	GetLatestByOrderID(ctx context.Context, orderID uuid.UUID) (*domain.Payment, error)
	GetLatestByOrderAndMethod(ctx context.Context, orderID uuid.UUID, method domain.PaymentMethod) (*domain.Payment, error)
	// MarkCompleted moves a PENDING or PROCESSING payment to COMPLETED.
	// Returns nil when the payment was not confirmable.
	MarkCompleted(ctx context.Context, tx pgx.Tx, id uuid.UUID, providerRef *string, paidAt time.Time, gw domain.GatewayResponse) (*domain.Payment, error)
	// MarkFailed moves a PENDING or PROCESSING payment to FAILED.
	MarkFailed(ctx context.Context, id uuid.UUID, gw domain.GatewayResponse) (bool, error)
	// CancelPending moves a PENDING payment to CANCELLED.
	CancelPending(ctx context.Context, id uuid.UUID) (bool, error)
	// Reopen moves a FAILED or CANCELLED payment back to PENDING for a retry.
	Reopen(ctx context.Context, payment *domain.Payment) (bool, error)
	UpdateQRCode(ctx context.Context, id uuid.UUID, qrCode string) error
}

// OrderRepository reads and writes the marketplace order fields this service owns.
type OrderRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	// MarkPaid sets is_pay and advances the status.
	MarkPaid(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.OrderStatus) error
	// CompareAndSetStatus writes status only if the order is still in from.
	CompareAndSetStatus(ctx context.Context, id uuid.UUID, from, to domain.OrderStatus) (bool, error)
	SetWalletTransferred(ctx context.Context, id uuid.UUID, transferred bool, at *time.Time) error
}

// ShopRepository resolves shops to their payee.
type ShopRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Shop, error)
}

// IdempotencyRepository defines persistence for idempotency logs (DB backup).
type IdempotencyRepository interface {
	Create(ctx context.Context, tx pgx.Tx, log *domain.IdempotencyLog) error
	Get(ctx context.Context, key string) (*domain.IdempotencyLog, error)
}

// WebhookEventRepository records inbound provider notifications.
type WebhookEventRepository interface {
	Create(ctx context.Context, event *domain.WebhookEvent) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.WebhookEventStatus, errMsg *string) error
	ListRecent(ctx context.Context, status *domain.WebhookEventStatus, limit int) ([]domain.WebhookEvent, error)
}

// AuditRepository persists audit entries.
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditLog) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
