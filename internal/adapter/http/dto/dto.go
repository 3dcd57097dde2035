package dto

// DepositRequest is the request body for a wallet top-up.
type DepositRequest struct {
	Amount      int64   `json:"amount" binding:"required,gt=0"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=255"`
}

// WithdrawRequest is the request body for a synchronous withdrawal.
type WithdrawRequest struct {
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	Description string `json:"description,omitempty" binding:"max=255"`
}

// PayoutInfoRequest is the bank account an owner wants to be paid on.
type PayoutInfoRequest struct {
	BankCode      string `json:"bankCode" binding:"required,max=20,safe_ref"`
	AccountName   string `json:"accountName" binding:"required,max=100"`
	AccountNumber string `json:"accountNumber" binding:"required,numeric,min=6,max=20"`
}

// CheckoutRequest is the request body for paying an order.
type CheckoutRequest struct {
	OrderID       string  `json:"orderId" binding:"required,uuid"`
	PaymentMethod string  `json:"paymentMethod" binding:"required,oneof=COD BANK_TRANSFER WALLET VNPAY"`
	ReturnURL     *string `json:"returnUrl,omitempty" binding:"omitempty,max=2048,safe_url"`
	CancelURL     *string `json:"cancelUrl,omitempty" binding:"omitempty,max=2048,safe_url"`
}

// UpdateOrderStatusRequest is the request body for an order transition.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING CONFIRMED PROCESSING SHIPPING DELIVERED CANCELLED"`
}

// BankAccountResponse is a printable payout descriptor.
type BankAccountResponse struct {
	BankCode      string `json:"bankCode"`
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
}

// DepositResponse is returned once when a deposit is created.
type DepositResponse struct {
	TransactionID string              `json:"transactionId"`
	Amount        int64               `json:"amount"`
	ClampedAmount int64               `json:"clampedAmount"`
	PaymentCode   string              `json:"paymentCode"`
	QRCode        string              `json:"qrCode"`
	ExpiresAt     string              `json:"expiresAt"`
	BankAccount   BankAccountResponse `json:"bankAccount"`
	Instructions  string              `json:"instructions"`
}

// WalletResponse is the wallet record without the encrypted account number.
type WalletResponse struct {
	OwnerID           string              `json:"ownerId"`
	Balance           int64               `json:"balance"`
	PayoutInfo        *PayoutInfoResponse `json:"payoutInfo,omitempty"`
	IsVerified        bool                `json:"isVerified"`
	LastTransactionAt *string             `json:"lastTransactionAt,omitempty"`
	UpdatedAt         string              `json:"updatedAt"`
}

// PayoutInfoResponse masks the account number to its last four digits.
type PayoutInfoResponse struct {
	BankCode     string `json:"bankCode"`
	AccountName  string `json:"accountName"`
	AccountLast4 string `json:"accountLast4"`
}

// BalanceResponse is the response for a balance query.
type BalanceResponse struct {
	Balance int64          `json:"balance"`
	Wallet  WalletResponse `json:"wallet"`
}

// TransactionResponse is a ledger entry.
type TransactionResponse struct {
	ID                string  `json:"id"`
	Type              string  `json:"type"`
	Amount            int64   `json:"amount"`
	Status            string  `json:"status"`
	RelatedOrderID    *string `json:"relatedOrderId,omitempty"`
	RelatedPaymentID  *string `json:"relatedPaymentId,omitempty"`
	ExternalReference *string `json:"externalReference,omitempty"`
	Description       string  `json:"description"`
	CreatedAt         string  `json:"createdAt"`
	CompletedAt       *string `json:"completedAt,omitempty"`
	ExpiresAt         *string `json:"expiresAt,omitempty"`
	IsExpired         bool    `json:"isExpired,omitempty"`
}

// TransactionListResponse wraps a paginated transaction list.
type TransactionListResponse struct {
	Items      []TransactionResponse `json:"items"`
	Total      int64                 `json:"total"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"pageSize"`
	TotalPages int                   `json:"totalPages"`
}

// ConfirmResponse reports whether a confirmation changed anything.
type ConfirmResponse struct {
	Applied     bool                 `json:"applied"`
	Transaction *TransactionResponse `json:"transaction,omitempty"`
	Payment     *PaymentResponse     `json:"payment,omitempty"`
}

// PaymentResponse is a checkout payment.
type PaymentResponse struct {
	PaymentID     string  `json:"paymentId"`
	OrderID       string  `json:"orderId"`
	Amount        int64   `json:"amount"`
	Method        string  `json:"method"`
	Status        string  `json:"status"`
	TransactionID *string `json:"transactionId,omitempty"`
	ExpiresAt     *string `json:"expiresAt,omitempty"`
	PaidAt        *string `json:"paidAt,omitempty"`
	IsExpired     bool    `json:"isExpired,omitempty"`
}

// CheckoutResponse tells the buyer how to complete the payment.
type CheckoutResponse struct {
	PaymentID    string               `json:"paymentId"`
	Status       string               `json:"status"`
	Method       string               `json:"method"`
	Amount       int64                `json:"amount"`
	PaymentURL   string               `json:"paymentUrl,omitempty"`
	QRCode       string               `json:"qrCode,omitempty"`
	Instructions string               `json:"instructions,omitempty"`
	BankAccount  *BankAccountResponse `json:"bankAccount,omitempty"`
	Reused       bool                 `json:"reused"`
}

// OrderResponse is an order after a status change.
type OrderResponse struct {
	OrderID           string `json:"orderId"`
	Status            string `json:"status"`
	IsPay             bool   `json:"isPay"`
	WalletTransferred bool   `json:"walletTransferred"`
}

// ConfirmDepositRequest is what an operator saw on the bank statement.
type ConfirmDepositRequest struct {
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	ExternalRef string `json:"externalRef,omitempty" binding:"omitempty,max=100,safe_ref"`
}
