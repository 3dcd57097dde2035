package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	payoutKeySize = 32

	// sealedPrefix tags the envelope format stored in
	// wallet_balances.payout_account_enc.
	sealedPrefix = "v1:"
)

// payoutAAD binds every sealed value to payout account storage, so a
// ciphertext copied from another column fails to open.
var payoutAAD = []byte("mpw/payout-account")

// ErrMalformedCiphertext is returned when a stored value is not a v1 envelope.
var ErrMalformedCiphertext = errors.New("malformed payout ciphertext")

// AESEncryptionService implements ports.EncryptionService with AES-256-GCM.
// Payout account numbers are stored as "v1:" + hex(nonce || ciphertext).
type AESEncryptionService struct {
	aead cipher.AEAD
}

// NewAESEncryptionService builds the cipher from a 64-character hex key.
func NewAESEncryptionService(hexKey string) (*AESEncryptionService, error) {
	key, err := hex.DecodeString(strings.TrimSpace(hexKey))
	if err != nil {
		return nil, fmt.Errorf("decode payout key: %w", err)
	}
	if len(key) != payoutKeySize {
		return nil, fmt.Errorf("payout key must be %d bytes, got %d", payoutKeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("new cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("new gcm: %w", err)
	}
	return &AESEncryptionService{aead: aead}, nil
}

func (s *AESEncryptionService) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, s.aead.NonceSize(), s.aead.NonceSize()+len(plaintext)+s.aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("read nonce: %w", err)
	}
	sealed := s.aead.Seal(nonce, nonce, []byte(plaintext), payoutAAD)
	return sealedPrefix + hex.EncodeToString(sealed), nil
}

func (s *AESEncryptionService) Decrypt(stored string) (string, error) {
	body, ok := strings.CutPrefix(stored, sealedPrefix)
	if !ok {
		return "", ErrMalformedCiphertext
	}
	sealed, err := hex.DecodeString(body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedCiphertext, err)
	}

	n := s.aead.NonceSize()
	if len(sealed) < n+s.aead.Overhead() {
		return "", ErrMalformedCiphertext
	}
	plaintext, err := s.aead.Open(nil, sealed[:n], sealed[n:], payoutAAD)
	if err != nil {
		return "", fmt.Errorf("open payout ciphertext: %w", err)
	}
	return string(plaintext), nil
}
