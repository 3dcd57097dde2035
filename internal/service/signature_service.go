package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"
)

// HMACSignatureService implements ports.SignatureService.
// Outgoing notifications are signed with SHA-256; the VNPay redirect
// protocol requires SHA-512.
type HMACSignatureService struct {
	newHash func() hash.Hash
}

// NewHMACSignatureService creates an HMAC-SHA256 signer.
func NewHMACSignatureService() *HMACSignatureService {
	return &HMACSignatureService{newHash: sha256.New}
}

// NewHMACSHA512SignatureService creates an HMAC-SHA512 signer.
func NewHMACSHA512SignatureService() *HMACSignatureService {
	return &HMACSignatureService{newHash: sha512.New}
}

// Sign returns the lowercase hex HMAC of payload.
func (s *HMACSignatureService) Sign(secretKey string, payload string) string {
	mac := hmac.New(s.newHash, []byte(secretKey))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify compares in constant time. Providers may send uppercase hex.
func (s *HMACSignatureService) Verify(secretKey string, payload string, signature string) bool {
	expected, err := hex.DecodeString(s.Sign(secretKey, payload))
	if err != nil {
		return false
	}
	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(expected, got)
}
