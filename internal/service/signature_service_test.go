package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHMACSignatureService_SignAndVerify(t *testing.T) {
	svc := NewHMACSignatureService()
	secretKey := "notify-secret"
	payload := `{"owner_id":"abc","type":"DEPOSIT_COMPLETED"}`

	signature := svc.Sign(secretKey, payload)

	assert.Regexp(t, `^[0-9a-f]{64}$`, signature, "signature should be 64-char lowercase hex (SHA-256)")
	assert.True(t, svc.Verify(secretKey, payload, signature))
}

func TestHMACSHA512SignatureService_SignAndVerify(t *testing.T) {
	svc := NewHMACSHA512SignatureService()
	payload := "vnp_Amount=10000000&vnp_Command=pay&vnp_TxnRef=abc"

	signature := svc.Sign("vnpay-secret", payload)

	assert.Regexp(t, `^[0-9a-f]{128}$`, signature)
	assert.True(t, svc.Verify("vnpay-secret", payload, signature))
	assert.True(t, svc.Verify("vnpay-secret", payload, strings.ToUpper(signature)), "hex comparison is case-insensitive")
}

func TestHMACSignatureService_VerifyFails_WrongKey(t *testing.T) {
	svc := NewHMACSignatureService()
	payload := "test payload"

	signature := svc.Sign("correct-key", payload)
	assert.False(t, svc.Verify("wrong-key", payload, signature))
}

func TestHMACSignatureService_VerifyFails_WrongPayload(t *testing.T) {
	svc := NewHMACSHA512SignatureService()
	secretKey := "my-key"

	signature := svc.Sign(secretKey, "vnp_Amount=100")
	assert.False(t, svc.Verify(secretKey, "vnp_Amount=999", signature))
}

func TestHMACSignatureService_VerifyFails_WrongSignature(t *testing.T) {
	svc := NewHMACSignatureService()
	assert.False(t, svc.Verify("key", "payload", "invalidsignature"))
	assert.False(t, svc.Verify("key", "payload", ""))
}

func TestHMACSignatureService_DeterministicSign(t *testing.T) {
	svc := NewHMACSignatureService()

	sig1 := svc.Sign("key", "data")
	sig2 := svc.Sign("key", "data")

	assert.Equal(t, sig1, sig2, "same key+payload should produce same signature")
}
