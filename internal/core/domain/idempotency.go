package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// IdempotencyScope namespaces client keys by the operation they guard.
type IdempotencyScope string

const IdempotencyScopeWithdraw IdempotencyScope = "withdraw"

// MaxIdempotencyKeyLength bounds a client-supplied Idempotency-Key.
const MaxIdempotencyKeyLength = 128

var ErrInvalidIdempotencyKey = errors.New("idempotency key must be 1 to 128 visible ASCII characters")

// IdempotencyLog is the stored outcome of a keyed withdrawal. A replay
// returns ResponseJSON instead of debiting again.
type IdempotencyLog struct {
	Key           string    `json:"key"`
	TransactionID uuid.UUID `json:"transaction_id"`
	ResponseJSON  []byte    `json:"response_json"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewIdempotencyLog snapshots txn under key.
func NewIdempotencyLog(key string, txn *WalletTransaction) (*IdempotencyLog, error) {
	body, err := json.Marshal(txn)
	if err != nil {
		return nil, fmt.Errorf("encode replay: %w", err)
	}
	return &IdempotencyLog{
		Key:           key,
		TransactionID: txn.ID,
		ResponseJSON:  body,
		CreatedAt:     txn.CreatedAt,
	}, nil
}

// DecodeReplay restores the transaction snapshot written by NewIdempotencyLog.
func DecodeReplay(body []byte) (*WalletTransaction, error) {
	var txn WalletTransaction
	if err := json.Unmarshal(body, &txn); err != nil {
		return nil, fmt.Errorf("decode replay: %w", err)
	}
	if txn.ID == uuid.Nil {
		return nil, errors.New("decode replay: missing transaction id")
	}
	return &txn, nil
}

// ValidateIdempotencyKey accepts printable ASCII without spaces.
func ValidateIdempotencyKey(clientKey string) error {
	if clientKey == "" || len(clientKey) > MaxIdempotencyKeyLength {
		return ErrInvalidIdempotencyKey
	}
	for i := 0; i < len(clientKey); i++ {
		if c := clientKey[i]; c <= ' ' || c > '~' {
			return ErrInvalidIdempotencyKey
		}
	}
	return nil
}

// BuildIdempotencyKey scopes clientKey to one owner and operation, so two
// owners reusing the same key never collide.
func BuildIdempotencyKey(ownerID uuid.UUID, scope IdempotencyScope, clientKey string) string {
	return ownerID.String() + ":" + string(scope) + ":" + clientKey
}
