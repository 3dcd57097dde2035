package handler

import (
	"marketplace-wallet/internal/core/domain"
	"marketplace-wallet/internal/core/ports"
	"marketplace-wallet/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// WebhookHandler receives provider balance notifications. Senders always
// get a 200 ack; failures are recorded by the reconciliation service.
type WebhookHandler struct {
	recon ports.ReconciliationService
	log   zerolog.Logger
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(recon ports.ReconciliationService, log zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{recon: recon, log: log}
}

// BankReceiver handles POST /api/v1/wallet/webhook-receiver.
func (h *WebhookHandler) BankReceiver(c *gin.Context) {
	handleNotification(c, h.recon, domain.ProviderBank, h.log)
}

// TestReceiver handles POST /api/v1/wallet/test-webhook. It is only
// registered outside production.
func (h *WebhookHandler) TestReceiver(c *gin.Context) {
	handleNotification(c, h.recon, domain.ProviderTest, h.log)
}

func handleNotification(c *gin.Context, recon ports.ReconciliationService, provider domain.Provider, log zerolog.Logger) {
	raw, err := c.GetRawData()
	if err != nil {
		log.Warn().Err(err).Str("provider", string(provider)).Msg("failed to read notification body")
		response.Ack(c)
		return
	}

	if err := recon.HandleNotification(c.Request.Context(), provider, raw); err != nil {
		log.Debug().Err(err).Str("provider", string(provider)).Msg("notification acknowledged with error")
	}
	response.Ack(c)
}
