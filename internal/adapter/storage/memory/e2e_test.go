package memory_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"testing"
	"time"

	"marketplace-wallet/internal/adapter/gateway"
	"marketplace-wallet/internal/adapter/storage/memory"
	"marketplace-wallet/internal/core/domain"
	"marketplace-wallet/internal/core/ports"
	"marketplace-wallet/internal/service"
	"marketplace-wallet/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAESKey     = "6368616e676520746869732070617373776f726420746f206120736563726574"
	testTmnCode    = "MPWTEST1"
	testHashSecret = "vnpay-test-secret"
)

type harness struct {
	store    *memory.Store
	repos    memory.Repositories
	ledger   *service.LedgerServiceImpl
	wallets  *service.WalletServiceImpl
	deposits *service.DepositServiceImpl
	checkout *service.CheckoutServiceImpl
	recon    *service.ReconciliationServiceImpl
	orders   *service.OrderServiceImpl
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	log := zerolog.Nop()
	store := memory.NewStore()
	repos := store.Repositories()

	enc, err := service.NewAESEncryptionService(testAESKey)
	require.NoError(t, err)

	policy := domain.AmountPolicy{Tolerance: 1000}
	platform := domain.BankAccount{BankCode: "MB", AccountNumber: "0123456789", AccountName: "MARKETPLACE"}
	notifier := service.NewNotificationService("", "", service.NewHMACSignatureService(), http.DefaultClient, log)
	audit := service.NewAuditService(repos.Audit, log)
	qr := gateway.NewVietQR("compact2")
	vnpay := gateway.NewVNPay(gateway.VNPayConfig{
		TmnCode:    testTmnCode,
		HashSecret: testHashSecret,
		PayURL:     "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html",
		ReturnURL:  "https://shop.example.com/payment/return",
		Expiry:     15 * time.Minute,
	}, service.NewHMACSHA512SignatureService())

	ledger := service.NewLedgerService(repos.Wallets, repos.Transactions, repos.Transactor, log)
	wallets := service.NewWalletService(repos.Wallets, repos.Transactions, repos.Idempotency, nil, ledger, enc, repos.Transactor, log)
	deposits := service.NewDepositService(ledger, repos.Transactions, wallets, qr, notifier, service.DepositConfig{
		Policy:      policy,
		DefaultBank: platform,
		Expiry:      30 * time.Minute,
	}, log)
	checkout := service.NewCheckoutService(repos.Orders, repos.Payments, ledger, repos.Transactor, qr, vnpay, notifier, service.CheckoutConfig{
		Policy:             policy,
		Bank:               platform,
		BankTransferExpiry: 24 * time.Hour,
		RedirectExpiry:     15 * time.Minute,
	}, log)
	parsers := map[domain.Provider]ports.NotificationParser{
		domain.ProviderBank: gateway.NewParser(domain.ProviderBank),
		domain.ProviderTest: gateway.NewParser(domain.ProviderTest),
	}
	recon := service.NewReconciliationService(deposits, checkout, repos.Transactions, repos.Payments, repos.Events, parsers, vnpay, nil, time.Hour, log)
	escrow := service.NewEscrowService(repos.Orders, repos.Shops, repos.Payments, ledger, notifier, log)
	orders := service.NewOrderService(repos.Orders, repos.Shops, escrow, notifier, audit, log)

	return &harness{
		store:    store,
		repos:    repos,
		ledger:   ledger,
		wallets:  wallets,
		deposits: deposits,
		checkout: checkout,
		recon:    recon,
		orders:   orders,
	}
}

func (h *harness) seedOrder(buyer, shopOwner uuid.UUID, total int64) domain.Order {
	shop := domain.Shop{ID: uuid.New(), OwnerID: shopOwner, Name: "Test shop"}
	h.store.PutShop(shop)
	order := domain.Order{
		ID:          uuid.New(),
		BuyerID:     buyer,
		ShopID:      shop.ID,
		TotalAmount: total,
		Status:      domain.OrderStatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	h.store.PutOrder(order)
	return order
}

func (h *harness) balance(t *testing.T, owner uuid.UUID) int64 {
	t.Helper()
	w, err := h.wallets.GetBalance(context.Background(), owner)
	require.NoError(t, err)
	return w.Balance
}

func (h *harness) assertConsistent(t *testing.T, owner uuid.UUID) {
	t.Helper()
	report, err := h.wallets.Reconcile(context.Background(), owner)
	require.NoError(t, err)
	assert.True(t, report.Consistent, "balance %d, ledger %d", report.Balance, report.LedgerSum)
}

func bankNotification(t *testing.T, id int64, code string, amount int64) []byte {
	t.Helper()
	body, err := json.Marshal(gateway.BankTransferPayload{
		ID:             id,
		Gateway:        "MBBank",
		AccountNumber:  "0123456789",
		Code:           code,
		Content:        "CT " + code,
		TransferType:   "in",
		TransferAmount: amount,
		ReferenceCode:  "FT" + strconv.FormatInt(id, 10),
	})
	require.NoError(t, err)
	return body
}

func vnpayCallback(paymentID uuid.UUID, amount int64, responseCode string) map[string]string {
	params := map[string]string{
		"vnp_TmnCode":           testTmnCode,
		"vnp_TxnRef":            gateway.TxnRef(paymentID),
		"vnp_Amount":            strconv.FormatInt(amount*100, 10),
		"vnp_ResponseCode":      responseCode,
		"vnp_TransactionStatus": responseCode,
		"vnp_TransactionNo":     "14000001",
		"vnp_OrderInfo":         "Thanh toan don hang",
		"vnp_BankCode":          "NCB",
	}
	params["vnp_SecureHash"] = service.NewHMACSHA512SignatureService().Sign(testHashSecret, gateway.Canonical(params))
	return params
}

func TestDepositConfirmedTwiceCreditsOnce(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	owner := uuid.New()

	dep, err := h.deposits.CreateDeposit(ctx, ports.DepositRequest{OwnerID: owner, Amount: 100000})
	require.NoError(t, err)
	code := *dep.Transaction.ExternalReference
	assert.Contains(t, dep.QRCode, "addInfo="+code)

	body := bankNotification(t, 9001, code, 100000)
	require.NoError(t, h.recon.HandleNotification(ctx, domain.ProviderBank, body))
	require.NoError(t, h.recon.HandleNotification(ctx, domain.ProviderBank, body))

	res, err := h.deposits.ConfirmDeposit(ctx, ports.ConfirmDepositRequest{
		TransactionID:  dep.Transaction.ID,
		ObservedAmount: 100000,
		Source:         domain.SourceManual,
	})
	require.NoError(t, err)
	assert.False(t, res.Applied)

	assert.Equal(t, int64(100000), h.balance(t, owner))
	h.assertConsistent(t, owner)

	view, err := h.deposits.GetDeposit(ctx, owner, dep.Transaction.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusCompleted, view.Transaction.Status)
	assert.Equal(t, string(domain.SourceBankWebhook), view.Transaction.Metadata.ConfirmationSource)
}

func TestWalletCheckoutInsufficientFunds(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	buyer := uuid.New()

	_, err := h.ledger.Credit(ctx, buyer, 300000, domain.TxMeta{Type: domain.TransactionTypeDeposit, Description: "seed"})
	require.NoError(t, err)
	order := h.seedOrder(buyer, uuid.New(), 500000)

	_, err = h.checkout.CreateCheckout(ctx, ports.CheckoutRequest{OwnerID: buyer, OrderID: order.ID, Method: domain.PaymentMethodWallet})
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.CodeInsufficientFunds))

	assert.Equal(t, int64(300000), h.balance(t, buyer))
	h.assertConsistent(t, buyer)

	p, err := h.repos.Payments.GetLatestByOrderID(ctx, order.ID)
	require.NoError(t, err)
	assert.Nil(t, p)

	stored, err := h.repos.Orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsPay)
}

func TestBankTransferCheckoutThenDeliveryReleasesEscrow(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	buyer, shopOwner := uuid.New(), uuid.New()
	order := h.seedOrder(buyer, shopOwner, 200000)

	res, err := h.checkout.CreateCheckout(ctx, ports.CheckoutRequest{OwnerID: buyer, OrderID: order.ID, Method: domain.PaymentMethodBankTransfer})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPending, res.Payment.Status)
	code := domain.OrderCode(order.ID)
	assert.Contains(t, res.Instructions, code)

	require.NoError(t, h.recon.HandleNotification(ctx, domain.ProviderBank, bankNotification(t, 9100, code, 200000)))

	status, err := h.checkout.GetPaymentStatus(ctx, buyer, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, status.Payment.Status)

	paid, err := h.repos.Orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, paid.IsPay)
	assert.Equal(t, domain.OrderStatusConfirmed, paid.Status)

	seller := ports.Principal{OwnerID: shopOwner, Role: ports.RoleUser}
	delivered, err := h.orders.UpdateStatus(ctx, seller, order.ID, domain.OrderStatusDelivered)
	require.NoError(t, err)
	assert.True(t, delivered.WalletTransferred)
	assert.Equal(t, int64(200000), h.balance(t, shopOwner))

	_, err = h.orders.UpdateStatus(ctx, seller, order.ID, domain.OrderStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, int64(200000), h.balance(t, shopOwner))
	h.assertConsistent(t, shopOwner)
}

func TestBankTransferAmountMismatchLeavesPaymentPending(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	buyer := uuid.New()
	order := h.seedOrder(buyer, uuid.New(), 200000)

	_, err := h.checkout.CreateCheckout(ctx, ports.CheckoutRequest{OwnerID: buyer, OrderID: order.ID, Method: domain.PaymentMethodBankTransfer})
	require.NoError(t, err)

	err = h.recon.HandleNotification(ctx, domain.ProviderBank, bankNotification(t, 9200, domain.OrderCode(order.ID), 150000))
	require.Error(t, err)

	status, err := h.checkout.GetPaymentStatus(ctx, buyer, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPending, status.Payment.Status)

	failed := domain.WebhookEventFailed
	events, err := h.repos.Events.ListRecent(ctx, &failed, 10)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestVNPayCallbackCodes(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	buyer := uuid.New()
	order := h.seedOrder(buyer, uuid.New(), 250000)

	res, err := h.checkout.CreateCheckout(ctx, ports.CheckoutRequest{
		OwnerID:  buyer,
		OrderID:  order.ID,
		Method:   domain.PaymentMethodVNPay,
		ClientIP: "203.0.113.7",
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.PaymentURL)
	paymentID := res.Payment.ID

	tampered := vnpayCallback(paymentID, 250000, "00")
	tampered["vnp_Amount"] = "100"
	assert.Equal(t, "97", h.recon.HandleRedirectCallback(ctx, tampered).RspCode)

	p, err := h.repos.Payments.GetByID(ctx, paymentID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPending, p.Status)

	assert.Equal(t, "04", h.recon.HandleRedirectCallback(ctx, vnpayCallback(paymentID, 1000, "00")).RspCode)
	assert.Equal(t, "01", h.recon.HandleRedirectCallback(ctx, vnpayCallback(uuid.New(), 250000, "00")).RspCode)

	valid := vnpayCallback(paymentID, 250000, "00")
	assert.Equal(t, "00", h.recon.HandleRedirectCallback(ctx, valid).RspCode)
	assert.Equal(t, "02", h.recon.HandleRedirectCallback(ctx, valid).RspCode)

	p, err = h.repos.Payments.GetByID(ctx, paymentID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, p.Status)
	require.NotNil(t, p.TransactionID)
	assert.Equal(t, "14000001", *p.TransactionID)

	paid, err := h.repos.Orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, paid.IsPay)
}

func TestVNPayDeclinedThenRetryReopensPayment(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	buyer := uuid.New()
	order := h.seedOrder(buyer, uuid.New(), 120000)
	req := ports.CheckoutRequest{OwnerID: buyer, OrderID: order.ID, Method: domain.PaymentMethodVNPay}

	first, err := h.checkout.CreateCheckout(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, "00", h.recon.HandleRedirectCallback(ctx, vnpayCallback(first.Payment.ID, 120000, "24")).RspCode)
	p, err := h.repos.Payments.GetByID(ctx, first.Payment.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusFailed, p.Status)

	retry, err := h.checkout.CreateCheckout(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, first.Payment.ID, retry.Payment.ID)
	assert.Equal(t, domain.PaymentStatusPending, retry.Payment.Status)
	assert.NotEmpty(t, retry.PaymentURL)
}

func TestConcurrentDepositConfirmations(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	owner := uuid.New()

	const n = 20
	ids := make([]uuid.UUID, n)
	for i := range ids {
		dep, err := h.deposits.CreateDeposit(ctx, ports.DepositRequest{OwnerID: owner, Amount: 10000})
		require.NoError(t, err)
		ids[i] = dep.Transaction.ID
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		for j := 0; j < 2; j++ {
			wg.Add(1)
			go func(id uuid.UUID) {
				defer wg.Done()
				_, err := h.deposits.ConfirmDeposit(ctx, ports.ConfirmDepositRequest{
					TransactionID:  id,
					ObservedAmount: 10000,
					Source:         domain.SourceTestWebhook,
				})
				assert.NoError(t, err)
			}(id)
		}
	}
	wg.Wait()

	assert.Equal(t, int64(n*10000), h.balance(t, owner))
	h.assertConsistent(t, owner)
}

func TestConcurrentWalletCheckoutDebitsOnce(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	buyer := uuid.New()

	_, err := h.ledger.Credit(ctx, buyer, 900000, domain.TxMeta{Type: domain.TransactionTypeDeposit, Description: "seed"})
	require.NoError(t, err)
	order := h.seedOrder(buyer, uuid.New(), 300000)

	const n = 8
	results := make([]*ports.CheckoutResult, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := h.checkout.CreateCheckout(ctx, ports.CheckoutRequest{OwnerID: buyer, OrderID: order.ID, Method: domain.PaymentMethodWallet})
			if assert.NoError(t, err) {
				results[i] = res
			}
		}(i)
	}
	wg.Wait()

	for _, res := range results {
		require.NotNil(t, res)
		assert.Equal(t, results[0].Payment.ID, res.Payment.ID)
	}
	assert.Equal(t, int64(600000), h.balance(t, buyer))
	h.assertConsistent(t, buyer)
}

func TestCancelAfterDeliveryReversesEscrow(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	buyer, shopOwner := uuid.New(), uuid.New()

	_, err := h.ledger.Credit(ctx, buyer, 400000, domain.TxMeta{Type: domain.TransactionTypeDeposit, Description: "seed"})
	require.NoError(t, err)
	order := h.seedOrder(buyer, shopOwner, 400000)

	_, err = h.checkout.CreateCheckout(ctx, ports.CheckoutRequest{OwnerID: buyer, OrderID: order.ID, Method: domain.PaymentMethodWallet})
	require.NoError(t, err)
	assert.Equal(t, int64(0), h.balance(t, buyer))

	admin := ports.Principal{OwnerID: uuid.New(), Role: ports.RoleAdmin}
	_, err = h.orders.UpdateStatus(ctx, admin, order.ID, domain.OrderStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, int64(400000), h.balance(t, shopOwner))

	cancelled, err := h.orders.UpdateStatus(ctx, admin, order.ID, domain.OrderStatusCancelled)
	require.NoError(t, err)
	assert.False(t, cancelled.WalletTransferred)

	assert.Equal(t, int64(0), h.balance(t, shopOwner))
	assert.Equal(t, int64(400000), h.balance(t, buyer))
	h.assertConsistent(t, buyer)
	h.assertConsistent(t, shopOwner)
}

func TestRedeliveryRetriesFailedPayout(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	buyer, shopOwner := uuid.New(), uuid.New()

	_, err := h.ledger.Credit(ctx, buyer, 150000, domain.TxMeta{Type: domain.TransactionTypeDeposit, Description: "seed"})
	require.NoError(t, err)

	order := domain.Order{
		ID:          uuid.New(),
		BuyerID:     buyer,
		ShopID:      uuid.New(),
		TotalAmount: 150000,
		Status:      domain.OrderStatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	h.store.PutOrder(order)

	_, err = h.checkout.CreateCheckout(ctx, ports.CheckoutRequest{OwnerID: buyer, OrderID: order.ID, Method: domain.PaymentMethodWallet})
	require.NoError(t, err)

	admin := ports.Principal{OwnerID: uuid.New(), Role: ports.RoleAdmin}
	delivered, err := h.orders.UpdateStatus(ctx, admin, order.ID, domain.OrderStatusDelivered)
	require.NoError(t, err)
	assert.False(t, delivered.WalletTransferred)
	assert.Equal(t, int64(0), h.balance(t, shopOwner))

	h.store.PutShop(domain.Shop{ID: order.ShopID, OwnerID: shopOwner, Name: "Late shop"})

	retried, err := h.orders.UpdateStatus(ctx, admin, order.ID, domain.OrderStatusDelivered)
	require.NoError(t, err)
	assert.True(t, retried.WalletTransferred)
	assert.Equal(t, int64(150000), h.balance(t, shopOwner))

	_, err = h.orders.UpdateStatus(ctx, admin, order.ID, domain.OrderStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, int64(150000), h.balance(t, shopOwner))
	h.assertConsistent(t, shopOwner)

	stored, err := h.repos.Orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, stored.WalletTransferred)
}
