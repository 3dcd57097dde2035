package handler

import (
	"net/http"
	"strings"

	"marketplace-wallet/internal/adapter/http/dto"
	"marketplace-wallet/internal/adapter/http/middleware"
	"marketplace-wallet/internal/core/domain"
	"marketplace-wallet/internal/core/ports"
	"marketplace-wallet/pkg/apperror"
	"marketplace-wallet/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// PaymentHandler handles checkout and gateway callback endpoints.
type PaymentHandler struct {
	checkout ports.CheckoutService
	recon    ports.ReconciliationService
	log      zerolog.Logger
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(checkout ports.CheckoutService, recon ports.ReconciliationService, log zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{checkout: checkout, recon: recon, log: log}
}

// Checkout handles POST /api/v1/payment/checkout.
func (h *PaymentHandler) Checkout(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	res, err := h.checkout.CreateCheckout(c.Request.Context(), ports.CheckoutRequest{
		OwnerID:   p.OwnerID,
		OrderID:   uuid.MustParse(req.OrderID),
		Method:    domain.PaymentMethod(req.PaymentMethod),
		ReturnURL: req.ReturnURL,
		CancelURL: req.CancelURL,
		ClientIP:  c.ClientIP(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if res.Reused {
		response.OK(c, toCheckoutResponse(res))
		return
	}
	response.Created(c, toCheckoutResponse(res))
}

// GetStatus handles GET /api/v1/payment/status/:orderId.
func (h *PaymentHandler) GetStatus(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		response.Error(c, apperror.Validation("Invalid order id"))
		return
	}

	res, err := h.checkout.GetPaymentStatus(c.Request.Context(), p.OwnerID, orderID)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := toPaymentResponse(res.Payment)
	resp.IsExpired = res.IsExpired
	response.OK(c, resp)
}

// ConfirmPayment handles POST /api/v1/payment/confirm/:paymentId (admin).
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	paymentID, err := uuid.Parse(c.Param("paymentId"))
	if err != nil {
		response.Error(c, apperror.Validation("Invalid payment id"))
		return
	}

	res, err := h.checkout.ConfirmPayment(c.Request.Context(), paymentID, p)
	if err != nil {
		response.Error(c, err)
		return
	}

	payment := toPaymentResponse(res.Payment)
	response.OK(c, dto.ConfirmResponse{Applied: res.Applied, Payment: &payment})
}

// GatewayWebhook handles GET|POST /api/v1/payment/webhook/:gateway.
// VNPay gets its own RspCode answer; every other sender gets the plain ack.
func (h *PaymentHandler) GatewayWebhook(c *gin.Context) {
	switch domain.Provider(strings.ToLower(c.Param("gateway"))) {
	case domain.ProviderVNPay:
		params, err := callbackParams(c)
		if err != nil {
			h.log.Warn().Err(err).Msg("unreadable vnpay callback")
			c.JSON(http.StatusOK, ports.CallbackAck{RspCode: "99", Message: "Invalid request"})
			return
		}
		c.JSON(http.StatusOK, h.recon.HandleRedirectCallback(c.Request.Context(), params))
	case domain.ProviderBank:
		handleNotification(c, h.recon, domain.ProviderBank, h.log)
	default:
		response.Error(c, apperror.ErrNotFound("Gateway"))
	}
}

// callbackParams collects vnp_* parameters from the query string, a form
// body or a JSON object body.
func callbackParams(c *gin.Context) (map[string]string, error) {
	params := make(map[string]string)
	for k, v := range c.Request.URL.Query() {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	if c.Request.Method != http.MethodPost {
		return params, nil
	}

	if strings.HasPrefix(c.ContentType(), "application/json") {
		var body map[string]string
		if err := c.ShouldBindJSON(&body); err != nil {
			return nil, err
		}
		for k, v := range body {
			params[k] = v
		}
		return params, nil
	}

	if err := c.Request.ParseForm(); err != nil {
		return nil, err
	}
	for k, v := range c.Request.PostForm {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	return params, nil
}
