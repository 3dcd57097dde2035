package handler

import (
	"marketplace-wallet/internal/adapter/http/dto"
	"marketplace-wallet/internal/adapter/http/middleware"
	"marketplace-wallet/internal/core/domain"
	"marketplace-wallet/internal/core/ports"
	"marketplace-wallet/pkg/apperror"
	"marketplace-wallet/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrderHandler exposes order transitions.
type OrderHandler struct {
	orders ports.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orders ports.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// UpdateStatus handles PATCH /api/v1/orders/:orderId/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
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

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	order, err := h.orders.UpdateStatus(c.Request.Context(), p, orderID, domain.OrderStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.OrderResponse{
		OrderID:           order.ID.String(),
		Status:            string(order.Status),
		IsPay:             order.IsPay,
		WalletTransferred: order.WalletTransferred,
	})
}
