package gateway

import (
	"fmt"
	"net/url"
	"strconv"

	"marketplace-wallet/internal/core/domain"
	"marketplace-wallet/internal/core/ports"
)

const (
	vietQRBaseURL         = "https://img.vietqr.io/image"
	defaultVietQRTemplate = "compact2"
)

// VietQR renders bank-transfer QR codes as img.vietqr.io image links.
type VietQR struct {
	template string
}

// NewVietQR creates a QR generator. An empty template uses compact2.
func NewVietQR(template string) *VietQR {
	if template == "" {
		template = defaultVietQRTemplate
	}
	return &VietQR{template: template}
}

// Generate returns the QR image URL with amount and transfer note prefilled.
func (q *VietQR) Generate(account domain.BankAccount, amount int64, note string) string {
	v := url.Values{}
	v.Set("amount", strconv.FormatInt(amount, 10))
	v.Set("addInfo", note)
	if account.AccountName != "" {
		v.Set("accountName", account.AccountName)
	}

	return fmt.Sprintf("%s/%s-%s-%s.png?%s",
		vietQRBaseURL,
		url.PathEscape(account.BankCode),
		url.PathEscape(account.AccountNumber),
		q.template,
		v.Encode(),
	)
}

var _ ports.QRGenerator = (*VietQR)(nil)
