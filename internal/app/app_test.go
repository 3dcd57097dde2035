package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketplace-wallet/config"
	"marketplace-wallet/internal/adapter/gateway"
	"marketplace-wallet/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func memoryConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Mode = "test"
	cfg.Storage.Driver = DriverMemory
	cfg.JWT.Secret = "test-jwt-secret"
	cfg.JWT.Expiry = time.Hour
	cfg.JWT.Issuer = "marketplace"
	cfg.AES.Key = "6368616e676520746869732070617373776f726420746f206120736563726574"
	cfg.Payment.AmountTolerance = 1000
	cfg.Payment.DepositExpiry = time.Hour
	cfg.Payment.BankTransferExpiry = 24 * time.Hour
	cfg.Payment.QRTemplate = "compact2"
	cfg.Payment.DefaultBank = config.BankAccountConfig{BankCode: "MB", AccountNumber: "0123456789", AccountName: "MARKETPLACE"}
	cfg.Gateway.VNPay.Expiry = 15 * time.Minute
	cfg.Webhook.ReceiptTTL = time.Hour
	return cfg
}

func doJSON(t *testing.T, r http.Handler, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestNew_UnknownDriver(t *testing.T) {
	cfg := memoryConfig()
	cfg.Storage.Driver = "sqlite"

	_, err := New(context.Background(), cfg, zerolog.Nop())
	assert.Error(t, err)
}

func TestNew_InvalidAESKey(t *testing.T) {
	cfg := memoryConfig()
	cfg.AES.Key = "short"

	_, err := New(context.Background(), cfg, zerolog.Nop())
	assert.Error(t, err)
}

func TestDepositOverHTTP(t *testing.T) {
	a, err := New(context.Background(), memoryConfig(), zerolog.Nop())
	require.NoError(t, err)
	defer a.Close()
	require.NotNil(t, a.Memory)

	r := a.Router()
	owner := uuid.New()
	token, _, err := a.Tokens.Generate(owner, ports.RoleUser)
	require.NoError(t, err)

	w, _ := doJSON(t, r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, "/api/v1/wallet/balance", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/wallet/deposit", token, map[string]interface{}{"amount": 50000})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	data := resp["data"].(map[string]interface{})
	code := data["paymentCode"].(string)
	require.NotEmpty(t, code)

	notification := gateway.BankTransferPayload{
		ID:             4242,
		Gateway:        "MBBank",
		AccountNumber:  "0123456789",
		Code:           code,
		Content:        "NAP TIEN " + code,
		TransferType:   "in",
		TransferAmount: 50000,
		ReferenceCode:  "FT4242",
	}
	for i := 0; i < 2; i++ {
		w, resp = doJSON(t, r, http.MethodPost, "/api/v1/wallet/webhook-receiver", "", notification)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, resp["success"])
	}

	w, resp = doJSON(t, r, http.MethodGet, "/api/v1/wallet/balance", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(50000), resp["data"].(map[string]interface{})["balance"])

	w, resp = doJSON(t, r, http.MethodGet, "/api/v1/wallet/reconcile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["data"].(map[string]interface{})["consistent"])

	w, _ = doJSON(t, r, http.MethodPost, "/api/v1/wallet/withdraw", token, map[string]interface{}{"amount": 60000})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
