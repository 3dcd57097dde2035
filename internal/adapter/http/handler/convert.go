package handler

import (
	"time"

	"marketplace-wallet/internal/adapter/http/dto"
	"marketplace-wallet/internal/core/domain"
	"marketplace-wallet/internal/core/ports"

	"github.com/google/uuid"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func uuidString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func toBankAccountResponse(a domain.BankAccount) dto.BankAccountResponse {
	return dto.BankAccountResponse{
		BankCode:      a.BankCode,
		AccountNumber: a.AccountNumber,
		AccountName:   a.AccountName,
	}
}

func toTransactionResponse(tx *domain.WalletTransaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:                tx.ID.String(),
		Type:              string(tx.Type),
		Amount:            tx.Amount,
		Status:            string(tx.Status),
		RelatedOrderID:    uuidString(tx.RelatedOrderID),
		RelatedPaymentID:  uuidString(tx.RelatedPaymentID),
		ExternalReference: tx.ExternalReference,
		Description:       tx.Description,
		CreatedAt:         formatTime(tx.CreatedAt),
		CompletedAt:       formatTimePtr(tx.CompletedAt),
		ExpiresAt:         formatTimePtr(tx.ExpiresAt),
		IsExpired:         tx.IsExpired(time.Now().UTC()),
	}
}

func toWalletResponse(w *domain.WalletBalance) dto.WalletResponse {
	resp := dto.WalletResponse{
		OwnerID:           w.OwnerID.String(),
		Balance:           w.Balance,
		IsVerified:        w.IsVerified,
		LastTransactionAt: formatTimePtr(w.LastTransactionAt),
		UpdatedAt:         formatTime(w.UpdatedAt),
	}
	if w.PayoutInfo != nil {
		resp.PayoutInfo = &dto.PayoutInfoResponse{
			BankCode:     w.PayoutInfo.BankCode,
			AccountName:  w.PayoutInfo.AccountName,
			AccountLast4: w.PayoutInfo.AccountLast4,
		}
	}
	return resp
}

func toPaymentResponse(p *domain.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		PaymentID:     p.ID.String(),
		OrderID:       p.OrderID.String(),
		Amount:        p.Amount,
		Method:        string(p.Method),
		Status:        string(p.Status),
		TransactionID: p.TransactionID,
		ExpiresAt:     formatTimePtr(p.ExpiresAt),
		PaidAt:        formatTimePtr(p.PaidAt),
		IsExpired:     p.IsExpired(time.Now().UTC()),
	}
}

func toCheckoutResponse(res *ports.CheckoutResult) dto.CheckoutResponse {
	resp := dto.CheckoutResponse{
		PaymentID:    res.Payment.ID.String(),
		Status:       string(res.Payment.Status),
		Method:       string(res.Payment.Method),
		Amount:       res.Payment.Amount,
		PaymentURL:   res.PaymentURL,
		QRCode:       res.QRCode,
		Instructions: res.Instructions,
		Reused:       res.Reused,
	}
	if res.BankAccount != nil {
		bank := toBankAccountResponse(*res.BankAccount)
		resp.BankAccount = &bank
	}
	return resp
}
