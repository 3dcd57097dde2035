package handler

import (
	"math"
	"strconv"

	"marketplace-wallet/internal/adapter/http/dto"
	"marketplace-wallet/internal/adapter/http/middleware"
	"marketplace-wallet/internal/core/domain"
	"marketplace-wallet/internal/core/ports"
	"marketplace-wallet/pkg/apperror"
	"marketplace-wallet/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderIdempotencyKey deduplicates withdrawal retries.
const HeaderIdempotencyKey = "Idempotency-Key"

// WalletHandler handles wallet endpoints.
type WalletHandler struct {
	wallets  ports.WalletService
	deposits ports.DepositService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(wallets ports.WalletService, deposits ports.DepositService) *WalletHandler {
	return &WalletHandler{wallets: wallets, deposits: deposits}
}

// Deposit handles POST /api/v1/wallet/deposit.
func (h *WalletHandler) Deposit(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	res, err := h.deposits.CreateDeposit(c.Request.Context(), ports.DepositRequest{
		OwnerID:     p.OwnerID,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.DepositResponse{
		TransactionID: res.Transaction.ID.String(),
		Amount:        res.Transaction.Amount,
		ClampedAmount: res.ClampedAmount,
		PaymentCode:   res.Transaction.Metadata.PaymentCode,
		QRCode:        res.QRCode,
		ExpiresAt:     formatTime(res.ExpiresAt),
		BankAccount:   toBankAccountResponse(res.BankAccount),
		Instructions:  res.Instructions,
	})
}

// GetBalance handles GET /api/v1/wallet/balance.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	wallet, err := h.wallets.GetBalance(c.Request.Context(), p.OwnerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{
		Balance: wallet.Balance,
		Wallet:  toWalletResponse(wallet),
	})
}

// Withdraw handles POST /api/v1/wallet/withdraw.
func (h *WalletHandler) Withdraw(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	key := c.GetHeader(HeaderIdempotencyKey)
	if key != "" {
		if err := domain.ValidateIdempotencyKey(key); err != nil {
			response.Error(c, apperror.Validation(err.Error()))
			return
		}
	}

	txn, err := h.wallets.Withdraw(c.Request.Context(), ports.WithdrawRequest{
		OwnerID:        p.OwnerID,
		Amount:         req.Amount,
		IdempotencyKey: key,
		Description:    req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTransactionResponse(txn))
}

// ListTransactions handles GET /api/v1/wallet/transactions.
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	params := ports.TransactionListParams{
		OwnerID:  p.OwnerID,
		Page:     page,
		PageSize: pageSize,
	}

	if s := c.Query("status"); s != "" {
		status := domain.TransactionStatus(s)
		params.Status = &status
	}
	if t := c.Query("type"); t != "" {
		txType := domain.TransactionType(t)
		params.Type = &txType
	}
	if f := c.Query("from"); f != "" {
		if v, err := strconv.ParseInt(f, 10, 64); err == nil {
			params.From = &v
		}
	}
	if t := c.Query("to"); t != "" {
		if v, err := strconv.ParseInt(t, 10, 64); err == nil {
			params.To = &v
		}
	}

	txns, total, err := h.wallets.ListTransactions(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.TransactionResponse, 0, len(txns))
	for i := range txns {
		items = append(items, toTransactionResponse(&txns[i]))
	}

	response.OK(c, dto.TransactionListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
	})
}

// UpdatePayoutInfo handles PUT /api/v1/wallet/payout-info.
func (h *WalletHandler) UpdatePayoutInfo(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.PayoutInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	wallet, err := h.wallets.UpdatePayoutInfo(c.Request.Context(), ports.PayoutInfoRequest{
		OwnerID:       p.OwnerID,
		BankCode:      req.BankCode,
		AccountName:   req.AccountName,
		AccountNumber: req.AccountNumber,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toWalletResponse(wallet))
}

// GetDeposit handles GET /api/v1/wallet/deposits/:transactionId.
func (h *WalletHandler) GetDeposit(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	txID, err := uuid.Parse(c.Param("transactionId"))
	if err != nil {
		response.Error(c, apperror.Validation("Invalid transaction id"))
		return
	}

	view, err := h.deposits.GetDeposit(c.Request.Context(), p.OwnerID, txID)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := toTransactionResponse(view.Transaction)
	resp.IsExpired = view.IsExpired
	response.OK(c, resp)
}

// Reconcile handles GET /api/v1/wallet/reconcile. Admins may pass
// ?ownerId= to check another wallet.
func (h *WalletHandler) Reconcile(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	ownerID := p.OwnerID
	if raw := c.Query("ownerId"); raw != "" {
		if !p.IsAdmin() {
			response.Error(c, apperror.ErrForbidden())
			return
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, apperror.Validation("Invalid owner id"))
			return
		}
		ownerID = id
	}

	report, err := h.wallets.Reconcile(c.Request.Context(), ownerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, report)
}

// ConfirmDeposit handles POST /api/v1/wallet/confirm/:transactionId (admin).
func (h *WalletHandler) ConfirmDeposit(c *gin.Context) {
	txID, err := uuid.Parse(c.Param("transactionId"))
	if err != nil {
		response.Error(c, apperror.Validation("Invalid transaction id"))
		return
	}

	var req dto.ConfirmDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	res, err := h.deposits.ConfirmDeposit(c.Request.Context(), ports.ConfirmDepositRequest{
		TransactionID:  txID,
		ExternalRef:    req.ExternalRef,
		ObservedAmount: req.Amount,
		Source:         domain.SourceManual,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	txn := toTransactionResponse(res.Transaction)
	response.OK(c, dto.ConfirmResponse{Applied: res.Applied, Transaction: &txn})
}
