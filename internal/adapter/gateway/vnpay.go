package gateway

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"marketplace-wallet/internal/core/domain"
	"marketplace-wallet/internal/core/ports"
	"marketplace-wallet/pkg/apperror"

	"github.com/google/uuid"
)

const (
	vnpVersion    = "2.1.0"
	vnpCommandPay = "pay"
	vnpCurrency   = "VND"
	vnpLocale     = "vn"
	vnpOrderType  = "other"
	vnpDateLayout = "20060102150405"
	vnpSuccess    = "00"
	secureHashKey = "vnp_SecureHash"
	hashTypeKey   = "vnp_SecureHashType"
)

// vnpayZone is the GMT+7 clock VNPay expects for create/expire dates.
var vnpayZone = time.FixedZone("GMT+7", 7*60*60)

// VNPayConfig holds merchant credentials for the VNPay redirect flow.
type VNPayConfig struct {
	TmnCode    string
	HashSecret string
	PayURL     string
	ReturnURL  string
	Expiry     time.Duration
}

// VNPay implements ports.RedirectGateway for VNPay.
type VNPay struct {
	cfg    VNPayConfig
	sigSvc ports.SignatureService
}

// NewVNPay creates a VNPay gateway. sigSvc must be HMAC-SHA512.
func NewVNPay(cfg VNPayConfig, sigSvc ports.SignatureService) *VNPay {
	return &VNPay{cfg: cfg, sigSvc: sigSvc}
}

// PaymentURL builds the signed redirect URL for a payment.
func (g *VNPay) PaymentURL(req ports.RedirectRequest) (string, error) {
	if g.cfg.TmnCode == "" || g.cfg.HashSecret == "" {
		return "", fmt.Errorf("vnpay: merchant credentials are not configured")
	}
	if req.Amount <= 0 {
		return "", fmt.Errorf("vnpay: amount must be positive")
	}

	returnURL := req.ReturnURL
	if returnURL == "" {
		returnURL = g.cfg.ReturnURL
	}
	clientIP := req.ClientIP
	if clientIP == "" {
		clientIP = "127.0.0.1"
	}

	created := req.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	created = created.In(vnpayZone)

	params := map[string]string{
		"vnp_Version":    vnpVersion,
		"vnp_Command":    vnpCommandPay,
		"vnp_TmnCode":    g.cfg.TmnCode,
		"vnp_Amount":     strconv.FormatInt(req.Amount*100, 10),
		"vnp_CurrCode":   vnpCurrency,
		"vnp_TxnRef":     TxnRef(req.PaymentID),
		"vnp_OrderInfo":  req.OrderInfo,
		"vnp_OrderType":  vnpOrderType,
		"vnp_Locale":     vnpLocale,
		"vnp_ReturnUrl":  returnURL,
		"vnp_IpAddr":     clientIP,
		"vnp_CreateDate": created.Format(vnpDateLayout),
		"vnp_ExpireDate": created.Add(g.cfg.Expiry).Format(vnpDateLayout),
	}

	query := Canonical(params)
	signature := g.sigSvc.Sign(g.cfg.HashSecret, query)
	return g.cfg.PayURL + "?" + query + "&" + secureHashKey + "=" + signature, nil
}

// VerifyCallback checks vnp_SecureHash over the remaining parameters and
// only then reads them.
func (g *VNPay) VerifyCallback(params map[string]string) (domain.ReconciliationEvent, error) {
	hash := params[secureHashKey]
	if hash == "" || !g.sigSvc.Verify(g.cfg.HashSecret, Canonical(params), hash) {
		return domain.ReconciliationEvent{}, apperror.ErrInvalidSignature()
	}

	if tmn := params["vnp_TmnCode"]; tmn != "" && tmn != g.cfg.TmnCode {
		return domain.ReconciliationEvent{}, fmt.Errorf("vnpay: unexpected terminal code %q", tmn)
	}

	paymentID, err := uuid.Parse(params["vnp_TxnRef"])
	if err != nil {
		return domain.ReconciliationEvent{}, fmt.Errorf("vnpay: invalid txn ref: %w", err)
	}

	raw, err := strconv.ParseInt(params["vnp_Amount"], 10, 64)
	if err != nil {
		return domain.ReconciliationEvent{}, fmt.Errorf("vnpay: invalid amount: %w", err)
	}

	responseCode := params["vnp_ResponseCode"]
	status, hasStatus := params["vnp_TransactionStatus"]
	success := responseCode == vnpSuccess && (!hasStatus || status == vnpSuccess)

	return domain.ReconciliationEvent{
		Provider:    domain.ProviderVNPay,
		Kind:        domain.EventKindPayment,
		TargetID:    paymentID,
		Reference:   params["vnp_TransactionNo"],
		ExternalRef: params["vnp_TransactionNo"],
		Code:        responseCode,
		Content:     params["vnp_OrderInfo"],
		Amount:      raw / 100,
		Success:     success,
	}, nil
}

// TxnRef is the compact payment id sent as vnp_TxnRef.
func TxnRef(paymentID uuid.UUID) string {
	return strings.ReplaceAll(paymentID.String(), "-", "")
}

// Canonical builds the string VNPay signs: non-empty parameters other than
// the hash fields, sorted by key, URL-encoded and joined with '&'.
func Canonical(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v == "" || k == secureHashKey || k == hashTypeKey {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(params[k]))
	}
	return b.String()
}

var _ ports.RedirectGateway = (*VNPay)(nil)
