package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"marketplace-wallet/internal/core/domain"
	"marketplace-wallet/internal/core/ports"
	"marketplace-wallet/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type auditRoute struct {
	action       domain.AuditAction
	resourceType string
	param        string
}

// auditedRoutes maps registered route patterns to audit actions. Order
// status changes are audited by the order service itself.
var auditedRoutes = map[string]auditRoute{
	http.MethodPost + " /api/v1/wallet/deposit":                {domain.AuditActionDeposit, "wallet_transaction", ""},
	http.MethodPost + " /api/v1/wallet/withdraw":               {domain.AuditActionWithdraw, "wallet_transaction", ""},
	http.MethodPut + " /api/v1/wallet/payout-info":             {domain.AuditActionPayoutInfo, "wallet", ""},
	http.MethodPost + " /api/v1/wallet/confirm/:transactionId": {domain.AuditActionConfirmDeposit, "wallet_transaction", "transactionId"},
	http.MethodPost + " /api/v1/payment/checkout":              {domain.AuditActionCheckout, "payment", ""},
	http.MethodPost + " /api/v1/payment/confirm/:paymentId":    {domain.AuditActionConfirmPayment, "payment", "paymentId"},
}

// AuditLog records successful write operations on audited routes.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}

		route, ok := auditedRoutes[c.Request.Method+" "+c.FullPath()]
		if !ok {
			return
		}

		var ownerID *uuid.UUID
		if p, ok := PrincipalFrom(c); ok {
			ownerID = &p.OwnerID
		}

		var resourceID string
		if route.param != "" {
			resourceID = c.Param(route.param)
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"request_id": c.GetString(response.RequestIDKey),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			OwnerID:      ownerID,
			Action:       route.action,
			ResourceType: route.resourceType,
			ResourceID:   resourceID,
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now().UTC(),
		})
	}
}
