// Package memory is an in-process storage backend implementing the same
// repository ports as the PostgreSQL adapter. It backs local runs with
// storage.driver=memory and the end-to-end tests.
package memory

import (
	"context"
	"errors"
	"sync"

	"marketplace-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Store holds every table. Each repository method takes the mutex for the
// duration of one statement, mirroring single-row atomicity in PostgreSQL.
type Store struct {
	mu sync.Mutex

	wallets      map[uuid.UUID]*domain.WalletBalance // by owner
	transactions map[uuid.UUID]*domain.WalletTransaction
	txOrder      []uuid.UUID
	payments     map[uuid.UUID]*domain.Payment
	payOrder     []uuid.UUID
	orders       map[uuid.UUID]*domain.Order
	shops        map[uuid.UUID]*domain.Shop
	idempotency  map[string]*domain.IdempotencyLog
	events       map[uuid.UUID]*domain.WebhookEvent
	eventOrder   []uuid.UUID
	audits       []domain.AuditLog
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		wallets:      make(map[uuid.UUID]*domain.WalletBalance),
		transactions: make(map[uuid.UUID]*domain.WalletTransaction),
		payments:     make(map[uuid.UUID]*domain.Payment),
		orders:       make(map[uuid.UUID]*domain.Order),
		shops:        make(map[uuid.UUID]*domain.Shop),
		idempotency:  make(map[string]*domain.IdempotencyLog),
		events:       make(map[uuid.UUID]*domain.WebhookEvent),
	}
}

// Repositories bundles the port implementations backed by one store.
type Repositories struct {
	Wallets      *WalletRepo
	Transactions *TransactionRepo
	Payments     *PaymentRepo
	Orders       *OrderRepo
	Shops        *ShopRepo
	Idempotency  *IdempotencyRepo
	Events       *WebhookEventRepo
	Audit        *AuditRepo
	Transactor   *Transactor
}

// Repositories returns the port implementations backed by s.
func (s *Store) Repositories() Repositories {
	return Repositories{
		Wallets:      &WalletRepo{s},
		Transactions: &TransactionRepo{s},
		Payments:     &PaymentRepo{s},
		Orders:       &OrderRepo{s},
		Shops:        &ShopRepo{s},
		Idempotency:  &IdempotencyRepo{s},
		Events:       &WebhookEventRepo{s},
		Audit:        &AuditRepo{s},
		Transactor:   &Transactor{s},
	}
}

// PutOrder inserts or replaces an order. Orders belong to the marketplace,
// so this is how fixtures and local runs seed them.
func (s *Store) PutOrder(o domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID] = &o
}

// PutShop inserts or replaces a shop.
func (s *Store) PutShop(sh domain.Shop) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shops[sh.ID] = &sh
}

// ErrTxDone is returned when a finished transaction is committed again.
var ErrTxDone = errors.New("memory: transaction already finished")

// memTx is an undo journal. Writes apply immediately; Rollback replays the
// undo steps in reverse. Concurrent readers may observe uncommitted writes.
type memTx struct {
	pgx.Tx // nil; only Commit and Rollback are supported

	store *Store
	mu    sync.Mutex
	undo  []func()
	done  bool
}

// Transactor implements ports.DBTransactor.
type Transactor struct {
	store *Store
}

// Begin starts a journaled transaction.
func (t *Transactor) Begin(_ context.Context) (pgx.Tx, error) {
	return &memTx{store: t.store}, nil
}

func (tx *memTx) Commit(_ context.Context) error {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	if tx.done {
		return ErrTxDone
	}
	tx.done = true
	tx.undo = nil
	return nil
}

func (tx *memTx) Rollback(_ context.Context) error {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	if tx.done {
		return nil
	}
	tx.done = true

	tx.store.mu.Lock()
	defer tx.store.mu.Unlock()
	for i := len(tx.undo) - 1; i >= 0; i-- {
		tx.undo[i]()
	}
	tx.undo = nil
	return nil
}

// record registers an undo step. It must be called with the store lock held.
func record(tx pgx.Tx, step func()) {
	mt, ok := tx.(*memTx)
	if !ok || mt == nil {
		return
	}
	mt.mu.Lock()
	defer mt.mu.Unlock()
	if !mt.done {
		mt.undo = append(mt.undo, step)
	}
}
