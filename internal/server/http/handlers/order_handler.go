package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/spicemart/spicemart/internal/domain/errors"
	"github.com/spicemart/spicemart/internal/domain/model"
	"github.com/spicemart/spicemart/internal/server/http/dto"
)

// OrderHandler manages checkout and order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Token handles GET /api/braintree/token.
func (h *OrderHandler) Token(c *gin.Context) {
	token, err := h.facade.PaymentToken(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.TokenResponse{ClientToken: token})
}

// Checkout handles POST /api/braintree/payment.
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	cart := make([]model.CartItem, 0, len(req.Cart))
	for _, item := range req.Cart {
		cart = append(cart, model.CartItem{ProductID: item.ID, Price: item.Price})
	}

	_, err := h.facade.Checkout(c.Request.Context(), CurrentUserID(c), req.Nonce, cart)
	if err != nil {
		// Every checkout failure carries its message: declines, transport
		// errors, and paid-but-unrecorded orders alike.
		switch {
		case errors.Is(err, domainErrors.ErrEmptyCart), errors.Is(err, domainErrors.ErrValidation):
			errorMessage(c, http.StatusBadRequest, err)
		default:
			errorMessage(c, http.StatusInternalServerError, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// MyOrders handles GET /api/orders.
func (h *OrderHandler) MyOrders(c *gin.Context) {
	orders, err := h.facade.MyOrders(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// AllOrders handles GET /api/all-orders.
func (h *OrderHandler) AllOrders(c *gin.Context) {
	orders, err := h.facade.AllOrders(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// UpdateStatus handles PUT /api/order-status/:orderId.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), c.Param("orderId"), model.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidStatus):
			errorMessage(c, http.StatusBadRequest, err)
		case errors.Is(err, domainErrors.ErrInvalidTransition):
			errorMessage(c, http.StatusConflict, err)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderDetailResponse(*order))
}

func toOrderResponses(orders []model.Order) []dto.OrderResponse {
	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, dto.ToOrderResponse(o))
	}
	return response
}
