package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"marketplace-wallet/internal/adapter/http/dto"
	"marketplace-wallet/internal/adapter/http/middleware"
	"marketplace-wallet/internal/core/domain"
	"marketplace-wallet/internal/core/ports"
	"marketplace-wallet/internal/core/ports/mocks"
	"marketplace-wallet/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newContext(method, target string, body []byte, ownerID uuid.UUID, role string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	if ownerID != uuid.Nil {
		c.Set(middleware.CtxOwnerID, ownerID)
		c.Set(middleware.CtxRole, role)
	}
	return c, w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "body: %s", w.Body.String())
	return data
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	code, _ := resp["error_code"].(string)
	return code
}

// --- Wallet Handler Tests ---

func TestDeposit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDeposits := mocks.NewMockDepositService(ctrl)
	h := NewWalletHandler(mocks.NewMockWalletService(ctrl), mockDeposits)

	ownerID := uuid.New()
	txID := uuid.New()
	expires := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	ref := "WLT0123456789abcdef0123456789abcdef"

	mockDeposits.EXPECT().CreateDeposit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req ports.DepositRequest) (*ports.DepositResult, error) {
			assert.Equal(t, ownerID, req.OwnerID)
			assert.Equal(t, int64(500000), req.Amount)
			require.NotNil(t, req.Description)
			assert.Equal(t, "&lt;b&gt;top up&lt;/b&gt;", *req.Description)
			return &ports.DepositResult{
				Transaction: &domain.WalletTransaction{
					ID:                txID,
					OwnerID:           ownerID,
					Type:              domain.TransactionTypeDeposit,
					Amount:            500000,
					Status:            domain.TransactionStatusPending,
					ExternalReference: &ref,
					Metadata:          domain.TransactionMetadata{PaymentCode: ref},
				},
				QRCode:        "https://img.vietqr.io/image/MB-0123456789-compact2.png",
				ClampedAmount: 500000,
				ExpiresAt:     expires,
				BankAccount:   domain.BankAccount{BankCode: "MB", AccountNumber: "0123456789", AccountName: "MARKETPLACE"},
				Instructions:  "Transfer with content " + ref,
			}, nil
		})

	desc := "<b>top up</b>"
	body, _ := json.Marshal(dto.DepositRequest{Amount: 500000, Description: &desc})
	c, w := newContext(http.MethodPost, "/api/v1/wallet/deposit", body, ownerID, ports.RoleUser)

	h.Deposit(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, txID.String(), data["transactionId"])
	assert.Equal(t, ref, data["paymentCode"])
	assert.Equal(t, "2026-01-02T03:04:05Z", data["expiresAt"])
	bank := data["bankAccount"].(map[string]interface{})
	assert.Equal(t, "MB", bank["bankCode"])
}

func TestDeposit_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewWalletHandler(mocks.NewMockWalletService(ctrl), mocks.NewMockDepositService(ctrl))

	c, w := newContext(http.MethodPost, "/", []byte(`{"amount":0}`), uuid.New(), ports.RoleUser)

	h.Deposit(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apperror.CodeValidation, errorCode(t, w))
}

func TestDeposit_MissingPrincipal(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewWalletHandler(mocks.NewMockWalletService(ctrl), mocks.NewMockDepositService(ctrl))

	c, w := newContext(http.MethodPost, "/", []byte(`{"amount":1000}`), uuid.Nil, "")

	h.Deposit(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetBalance_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockWallets := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockWallets, mocks.NewMockDepositService(ctrl))

	ownerID := uuid.New()
	mockWallets.EXPECT().GetBalance(gomock.Any(), ownerID).Return(&domain.WalletBalance{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Balance: 100000,
		PayoutInfo: &domain.PayoutInfo{
			BankCode:     "VCB",
			AccountName:  "NGUYEN VAN A",
			AccountLast4: "6789",
		},
		UpdatedAt: time.Now(),
	}, nil)

	c, w := newContext(http.MethodGet, "/", nil, ownerID, ports.RoleUser)

	h.GetBalance(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, float64(100000), data["balance"])
	wallet := data["wallet"].(map[string]interface{})
	payout := wallet["payoutInfo"].(map[string]interface{})
	assert.Equal(t, "6789", payout["accountLast4"])
	assert.NotContains(t, w.Body.String(), "encrypted")
}

func TestWithdraw_PassesIdempotencyKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockWallets := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockWallets, mocks.NewMockDepositService(ctrl))

	ownerID := uuid.New()
	mockWallets.EXPECT().Withdraw(gomock.Any(), ports.WithdrawRequest{
		OwnerID:        ownerID,
		Amount:         20000,
		IdempotencyKey: "wd-1",
		Description:    "cash out",
	}).Return(&domain.WalletTransaction{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Type:      domain.TransactionTypeWithdraw,
		Amount:    -20000,
		Status:    domain.TransactionStatusCompleted,
		CreatedAt: time.Now(),
	}, nil)

	body, _ := json.Marshal(dto.WithdrawRequest{Amount: 20000, Description: "cash out"})
	c, w := newContext(http.MethodPost, "/", body, ownerID, ports.RoleUser)
	c.Request.Header.Set(HeaderIdempotencyKey, "wd-1")

	h.Withdraw(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, float64(-20000), data["amount"])
}

func TestWithdraw_InsufficientFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockWallets := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockWallets, mocks.NewMockDepositService(ctrl))

	mockWallets.EXPECT().Withdraw(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrInsufficientFunds())

	c, w := newContext(http.MethodPost, "/", []byte(`{"amount":999999}`), uuid.New(), ports.RoleUser)

	h.Withdraw(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apperror.CodeInsufficientFunds, errorCode(t, w))
}

func TestListTransactions_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockWallets := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockWallets, mocks.NewMockDepositService(ctrl))

	ownerID := uuid.New()
	mockWallets.EXPECT().ListTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params ports.TransactionListParams) ([]domain.WalletTransaction, int64, error) {
			assert.Equal(t, ownerID, params.OwnerID)
			assert.Equal(t, 2, params.Page)
			assert.Equal(t, 10, params.PageSize)
			require.NotNil(t, params.Status)
			assert.Equal(t, domain.TransactionStatusCompleted, *params.Status)
			require.NotNil(t, params.From)
			assert.Equal(t, int64(1700000000), *params.From)
			return []domain.WalletTransaction{
				{ID: uuid.New(), OwnerID: ownerID, Type: domain.TransactionTypeDeposit, Amount: 50000, Status: domain.TransactionStatusCompleted, CreatedAt: time.Now()},
			}, int64(11), nil
		})

	c, w := newContext(http.MethodGet, "/?page=2&page_size=10&status=COMPLETED&from=1700000000", nil, ownerID, ports.RoleUser)

	h.ListTransactions(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Len(t, data["items"], 1)
	assert.Equal(t, float64(11), data["total"])
	assert.Equal(t, float64(2), data["totalPages"])
}

func TestListTransactions_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockWallets := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockWallets, mocks.NewMockDepositService(ctrl))

	mockWallets.EXPECT().ListTransactions(gomock.Any(), gomock.Any()).Return(nil, int64(0), errors.New("db down"))

	c, w := newContext(http.MethodGet, "/", nil, uuid.New(), ports.RoleUser)

	h.ListTransactions(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestUpdatePayoutInfo_RejectsNonNumericAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewWalletHandler(mocks.NewMockWalletService(ctrl), mocks.NewMockDepositService(ctrl))

	body, _ := json.Marshal(dto.PayoutInfoRequest{BankCode: "VCB", AccountName: "A", AccountNumber: "12ab5678"})
	c, w := newContext(http.MethodPut, "/", body, uuid.New(), ports.RoleUser)

	h.UpdatePayoutInfo(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetDeposit_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewWalletHandler(mocks.NewMockWalletService(ctrl), mocks.NewMockDepositService(ctrl))

	c, w := newContext(http.MethodGet, "/", nil, uuid.New(), ports.RoleUser)
	c.Params = gin.Params{{Key: "transactionId", Value: "not-a-uuid"}}

	h.GetDeposit(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReconcile_OtherOwnerRequiresAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockWallets := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockWallets, mocks.NewMockDepositService(ctrl))

	other := uuid.New()

	c, w := newContext(http.MethodGet, "/?ownerId="+other.String(), nil, uuid.New(), ports.RoleUser)
	h.Reconcile(c)
	assert.Equal(t, http.StatusForbidden, w.Code)

	mockWallets.EXPECT().Reconcile(gomock.Any(), other).Return(&ports.ReconcileReport{
		OwnerID:    other,
		Balance:    300,
		LedgerSum:  300,
		Consistent: true,
	}, nil)

	c, w = newContext(http.MethodGet, "/?ownerId="+other.String(), nil, uuid.New(), ports.RoleAdmin)
	h.Reconcile(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeData(t, w)["consistent"])
}

func TestConfirmDeposit_ManualSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDeposits := mocks.NewMockDepositService(ctrl)
	h := NewWalletHandler(mocks.NewMockWalletService(ctrl), mockDeposits)

	txID := uuid.New()
	mockDeposits.EXPECT().ConfirmDeposit(gomock.Any(), ports.ConfirmDepositRequest{
		TransactionID:  txID,
		ExternalRef:    "FT2401",
		ObservedAmount: 50000,
		Source:         domain.SourceManual,
	}).Return(&ports.ConfirmResult{
		Transaction: &domain.WalletTransaction{ID: txID, Amount: 50000, Status: domain.TransactionStatusCompleted},
		Applied:     false,
	}, nil)

	c, w := newContext(http.MethodPost, "/", []byte(`{"amount":50000,"externalRef":"FT2401"}`), uuid.New(), ports.RoleAdmin)
	c.Params = gin.Params{{Key: "transactionId", Value: txID.String()}}

	h.ConfirmDeposit(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, false, data["applied"])
}

// --- Payment Handler Tests ---

func TestCheckout_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCheckout := mocks.NewMockCheckoutService(ctrl)
	h := NewPaymentHandler(mockCheckout, mocks.NewMockReconciliationService(ctrl), zerolog.Nop())

	ownerID := uuid.New()
	orderID := uuid.New()
	paymentID := uuid.New()

	mockCheckout.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req ports.CheckoutRequest) (*ports.CheckoutResult, error) {
			assert.Equal(t, ownerID, req.OwnerID)
			assert.Equal(t, orderID, req.OrderID)
			assert.Equal(t, domain.PaymentMethodVNPay, req.Method)
			assert.NotEmpty(t, req.ClientIP)
			return &ports.CheckoutResult{
				Payment: &domain.Payment{
					ID:      paymentID,
					OrderID: orderID,
					Amount:  250000,
					Method:  domain.PaymentMethodVNPay,
					Status:  domain.PaymentStatusPending,
				},
				PaymentURL: "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html?vnp_TxnRef=x",
			}, nil
		})

	body, _ := json.Marshal(dto.CheckoutRequest{OrderID: orderID.String(), PaymentMethod: "VNPAY"})
	c, w := newContext(http.MethodPost, "/", body, ownerID, ports.RoleUser)

	h.Checkout(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, paymentID.String(), data["paymentId"])
	assert.Contains(t, data["paymentUrl"], "vnp_TxnRef")
}

func TestCheckout_ReusedPaymentIsOK(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCheckout := mocks.NewMockCheckoutService(ctrl)
	h := NewPaymentHandler(mockCheckout, mocks.NewMockReconciliationService(ctrl), zerolog.Nop())

	mockCheckout.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).Return(&ports.CheckoutResult{
		Payment: &domain.Payment{ID: uuid.New(), Method: domain.PaymentMethodBankTransfer, Status: domain.PaymentStatusPending},
		Reused:  true,
	}, nil)

	body, _ := json.Marshal(dto.CheckoutRequest{OrderID: uuid.NewString(), PaymentMethod: "BANK_TRANSFER"})
	c, w := newContext(http.MethodPost, "/", body, uuid.New(), ports.RoleUser)

	h.Checkout(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeData(t, w)["reused"])
}

func TestCheckout_RejectsUnknownMethodAndBadURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewPaymentHandler(mocks.NewMockCheckoutService(ctrl), mocks.NewMockReconciliationService(ctrl), zerolog.Nop())

	bodies := []string{
		`{"orderId":"` + uuid.NewString() + `","paymentMethod":"PAYPAL"}`,
		`{"orderId":"` + uuid.NewString() + `","paymentMethod":"VNPAY","returnUrl":"javascript:alert(1)"}`,
		`{"orderId":"123","paymentMethod":"WALLET"}`,
	}
	for _, b := range bodies {
		c, w := newContext(http.MethodPost, "/", []byte(b), uuid.New(), ports.RoleUser)
		h.Checkout(c)
		assert.Equal(t, http.StatusBadRequest, w.Code, b)
	}
}

func TestGetStatus_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCheckout := mocks.NewMockCheckoutService(ctrl)
	h := NewPaymentHandler(mockCheckout, mocks.NewMockReconciliationService(ctrl), zerolog.Nop())

	ownerID := uuid.New()
	orderID := uuid.New()
	mockCheckout.EXPECT().GetPaymentStatus(gomock.Any(), ownerID, orderID).Return(nil, apperror.ErrNotFound("Payment"))

	c, w := newContext(http.MethodGet, "/", nil, ownerID, ports.RoleUser)
	c.Params = gin.Params{{Key: "orderId", Value: orderID.String()}}

	h.GetStatus(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestConfirmPayment_PassesActor(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCheckout := mocks.NewMockCheckoutService(ctrl)
	h := NewPaymentHandler(mockCheckout, mocks.NewMockReconciliationService(ctrl), zerolog.Nop())

	adminID := uuid.New()
	paymentID := uuid.New()
	mockCheckout.EXPECT().ConfirmPayment(gomock.Any(), paymentID, ports.Principal{OwnerID: adminID, Role: ports.RoleAdmin}).
		Return(&ports.PaymentConfirmResult{
			Payment: &domain.Payment{ID: paymentID, Status: domain.PaymentStatusCompleted},
			Applied: true,
		}, nil)

	c, w := newContext(http.MethodPost, "/", nil, adminID, ports.RoleAdmin)
	c.Params = gin.Params{{Key: "paymentId", Value: paymentID.String()}}

	h.ConfirmPayment(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, true, data["applied"])
}

func TestGatewayWebhook_VNPayQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRecon := mocks.NewMockReconciliationService(ctrl)
	h := NewPaymentHandler(mocks.NewMockCheckoutService(ctrl), mockRecon, zerolog.Nop())

	mockRecon.EXPECT().HandleRedirectCallback(gomock.Any(), map[string]string{
		"vnp_TxnRef":       "abc",
		"vnp_ResponseCode": "00",
	}).Return(ports.CallbackAck{RspCode: "00", Message: "Confirm Success"})

	c, w := newContext(http.MethodGet, "/?vnp_TxnRef=abc&vnp_ResponseCode=00", nil, uuid.Nil, "")
	c.Params = gin.Params{{Key: "gateway", Value: "vnpay"}}

	h.GatewayWebhook(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"RspCode":"00","Message":"Confirm Success"}`, w.Body.String())
}

func TestGatewayWebhook_VNPayForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRecon := mocks.NewMockReconciliationService(ctrl)
	h := NewPaymentHandler(mocks.NewMockCheckoutService(ctrl), mockRecon, zerolog.Nop())

	mockRecon.EXPECT().HandleRedirectCallback(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params map[string]string) ports.CallbackAck {
			assert.Equal(t, "97", params["vnp_ResponseCode"])
			assert.Equal(t, "deadbeef", params["vnp_SecureHash"])
			return ports.CallbackAck{RspCode: "97", Message: "Invalid signature"}
		})

	form := url.Values{"vnp_ResponseCode": {"97"}, "vnp_SecureHash": {"deadbeef"}}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.Params = gin.Params{{Key: "gateway", Value: "VNPay"}}

	h.GatewayWebhook(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"RspCode":"97"`)
}

func TestGatewayWebhook_BankAlwaysAcks(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRecon := mocks.NewMockReconciliationService(ctrl)
	h := NewPaymentHandler(mocks.NewMockCheckoutService(ctrl), mockRecon, zerolog.Nop())

	raw := []byte(`{"content":"ORD123","transferAmount":100}`)
	mockRecon.EXPECT().HandleNotification(gomock.Any(), domain.ProviderBank, raw).Return(errors.New("no match"))

	c, w := newContext(http.MethodPost, "/", raw, uuid.Nil, "")
	c.Params = gin.Params{{Key: "gateway", Value: "bank"}}

	h.GatewayWebhook(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
}

func TestGatewayWebhook_UnknownGateway(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewPaymentHandler(mocks.NewMockCheckoutService(ctrl), mocks.NewMockReconciliationService(ctrl), zerolog.Nop())

	c, w := newContext(http.MethodPost, "/", nil, uuid.Nil, "")
	c.Params = gin.Params{{Key: "gateway", Value: "paypal"}}

	h.GatewayWebhook(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Webhook Handler Tests ---

func TestBankReceiver_AcksOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRecon := mocks.NewMockReconciliationService(ctrl)
	h := NewWebhookHandler(mockRecon, zerolog.Nop())

	raw := []byte(`not json`)
	mockRecon.EXPECT().HandleNotification(gomock.Any(), domain.ProviderBank, raw).Return(errors.New("malformed"))

	c, w := newContext(http.MethodPost, "/", raw, uuid.Nil, "")

	h.BankReceiver(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
}

func TestTestReceiver_UsesTestProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRecon := mocks.NewMockReconciliationService(ctrl)
	h := NewWebhookHandler(mockRecon, zerolog.Nop())

	mockRecon.EXPECT().HandleNotification(gomock.Any(), domain.ProviderTest, gomock.Any()).Return(nil)

	c, w := newContext(http.MethodPost, "/", []byte(`{}`), uuid.Nil, "")

	h.TestReceiver(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Order Handler Tests ---

func TestUpdateOrderStatus_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockOrders := mocks.NewMockOrderService(ctrl)
	h := NewOrderHandler(mockOrders)

	buyerID := uuid.New()
	orderID := uuid.New()
	mockOrders.EXPECT().UpdateStatus(gomock.Any(), ports.Principal{OwnerID: buyerID, Role: ports.RoleUser}, orderID, domain.OrderStatusDelivered).
		Return(&domain.Order{ID: orderID, Status: domain.OrderStatusDelivered, IsPay: true, WalletTransferred: true}, nil)

	c, w := newContext(http.MethodPatch, "/", []byte(`{"status":"DELIVERED"}`), buyerID, ports.RoleUser)
	c.Params = gin.Params{{Key: "orderId", Value: orderID.String()}}

	h.UpdateStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "DELIVERED", data["status"])
	assert.Equal(t, true, data["walletTransferred"])
}

func TestUpdateOrderStatus_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockOrders := mocks.NewMockOrderService(ctrl)
	h := NewOrderHandler(mockOrders)

	mockOrders.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), domain.OrderStatusShipping).Return(nil, apperror.ErrForbidden())

	c, w := newContext(http.MethodPatch, "/", []byte(`{"status":"SHIPPING"}`), uuid.New(), ports.RoleUser)
	c.Params = gin.Params{{Key: "orderId", Value: uuid.NewString()}}

	h.UpdateStatus(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- Health Check Tests ---

func TestHealthCheck(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck()(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
}

func TestHealthCheck_Degraded(t *testing.T) {
	ctrl := gomock.NewController(t)
	pg := mocks.NewMockHealthChecker(ctrl)
	rd := mocks.NewMockHealthChecker(ctrl)

	pg.EXPECT().Ping(gomock.Any()).Return(nil)
	pg.EXPECT().Name().Return("postgres").AnyTimes()
	rd.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
	rd.EXPECT().Name().Return("redis").AnyTimes()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck(pg, rd)(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp["status"])
	deps := resp["dependencies"].(map[string]interface{})
	assert.Equal(t, "healthy", deps["postgres"].(map[string]interface{})["status"])
	assert.Equal(t, "unhealthy", deps["redis"].(map[string]interface{})["status"])
}

// --- Router Tests ---

func TestRouter_AdminRouteRejectsUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokens := mocks.NewMockTokenService(ctrl)
	tokens.EXPECT().Validate("user-token").Return(&ports.TokenClaims{OwnerID: uuid.New(), Role: ports.RoleUser}, nil)

	r := SetupRouter(RouterDeps{
		Wallets:        mocks.NewMockWalletService(ctrl),
		Deposits:       mocks.NewMockDepositService(ctrl),
		Checkout:       mocks.NewMockCheckoutService(ctrl),
		Reconciliation: mocks.NewMockReconciliationService(ctrl),
		Orders:         mocks.NewMockOrderService(ctrl),
		TokenSvc:       tokens,
		HashSvc:        mocks.NewMockHashService(ctrl),
		Logger:         zerolog.Nop(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payment/confirm/"+uuid.NewString(), nil)
	req.Header.Set("Authorization", "Bearer user-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
}

func TestRouter_TestWebhookOnlyOutsideProduction(t *testing.T) {
	ctrl := gomock.NewController(t)
	recon := mocks.NewMockReconciliationService(ctrl)
	recon.EXPECT().HandleNotification(gomock.Any(), domain.ProviderTest, gomock.Any()).Return(nil)

	deps := RouterDeps{
		Wallets:        mocks.NewMockWalletService(ctrl),
		Deposits:       mocks.NewMockDepositService(ctrl),
		Checkout:       mocks.NewMockCheckoutService(ctrl),
		Reconciliation: recon,
		Orders:         mocks.NewMockOrderService(ctrl),
		TokenSvc:       mocks.NewMockTokenService(ctrl),
		HashSvc:        mocks.NewMockHashService(ctrl),
		Logger:         zerolog.Nop(),
	}

	w := httptest.NewRecorder()
	SetupRouter(deps).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/wallet/test-webhook", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusOK, w.Code)

	deps.Production = true
	w = httptest.NewRecorder()
	SetupRouter(deps).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/wallet/test-webhook", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusNotFound, w.Code)

	gin.SetMode(gin.TestMode)
}

func TestRouter_BankNotificationsRequireAPIKeyOnEveryRoute(t *testing.T) {
	const encoded = "$argon2id$v=19$m=65536,t=1,p=4$c2FsdHNhbHQ$aGFzaGhhc2hoYXNoaGFzaA"
	body := `{"id":1,"gateway":"MBBank","transferType":"in","transferAmount":50000,"content":"NAP TIEN WLT1"}`

	ctrl := gomock.NewController(t)
	recon := mocks.NewMockReconciliationService(ctrl)
	hashSvc := mocks.NewMockHashService(ctrl)
	hashSvc.EXPECT().Verify("bank-feed-key", encoded).Return(true, nil).Times(2)
	hashSvc.EXPECT().Verify("forged", encoded).Return(false, nil).Times(2)
	recon.EXPECT().HandleNotification(gomock.Any(), domain.ProviderBank, gomock.Any()).Return(nil).Times(2)

	r := SetupRouter(RouterDeps{
		Wallets:           mocks.NewMockWalletService(ctrl),
		Deposits:          mocks.NewMockDepositService(ctrl),
		Checkout:          mocks.NewMockCheckoutService(ctrl),
		Reconciliation:    recon,
		Orders:            mocks.NewMockOrderService(ctrl),
		TokenSvc:          mocks.NewMockTokenService(ctrl),
		HashSvc:           hashSvc,
		WebhookAPIKeyHash: encoded,
		Logger:            zerolog.Nop(),
	})

	for _, path := range []string{"/api/v1/wallet/webhook-receiver", "/api/v1/payment/webhook/bank"} {
		for _, key := range []string{"", "forged", "bank-feed-key"} {
			req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			if key != "" {
				req.Header.Set(middleware.HeaderAPIKey, key)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code, "%s key=%q", path, key)
			assert.JSONEq(t, `{"success":true}`, w.Body.String())
		}
	}
}

func TestRouter_VNPayCallbackSkipsAPIKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	recon := mocks.NewMockReconciliationService(ctrl)
	recon.EXPECT().HandleRedirectCallback(gomock.Any(), gomock.Any()).Return(ports.CallbackAck{RspCode: "97", Message: "Invalid signature"})

	r := SetupRouter(RouterDeps{
		Wallets:           mocks.NewMockWalletService(ctrl),
		Deposits:          mocks.NewMockDepositService(ctrl),
		Checkout:          mocks.NewMockCheckoutService(ctrl),
		Reconciliation:    recon,
		Orders:            mocks.NewMockOrderService(ctrl),
		TokenSvc:          mocks.NewMockTokenService(ctrl),
		HashSvc:           mocks.NewMockHashService(ctrl),
		WebhookAPIKeyHash: "$argon2id$v=19$m=65536,t=1,p=4$c2FsdHNhbHQ$aGFzaGhhc2hoYXNoaGFzaA",
		Logger:            zerolog.Nop(),
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/payment/webhook/vnpay?vnp_TxnRef=x", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"RspCode":"97"`)
}
