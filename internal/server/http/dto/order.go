package dto

import (
	"time"

	"github.com/spicemart/spicemart/internal/domain/model"
)

// CartItemRequest is a single purchased item as the client sends it.
type CartItemRequest struct {
	ID    string  `json:"_id"`
	Price float64 `json:"price"`
}

// CheckoutRequest carries the payment nonce and the cart snapshot.
type CheckoutRequest struct {
	Nonce string            `json:"nonce"`
	Cart  []CartItemRequest `json:"cart"`
}

// TokenResponse wraps a client token issued by the payment gateway.
type TokenResponse struct {
	ClientToken string `json:"clientToken"`
}

// StatusUpdateRequest carries the new order status.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// LineItemResponse is one ordered product.
type LineItemResponse struct {
	ProductID string  `json:"_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

// BuyerResponse identifies the purchasing user on an order. Listings carry
// the name only; the email appears solely on the status update response.
type BuyerResponse struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// PaymentResponse mirrors the captured transaction reference.
type PaymentResponse struct {
	TransactionID string `json:"transaction_id"`
	Success       bool   `json:"success"`
}

// OrderResponse is the order view shared by buyer and admin listings.
type OrderResponse struct {
	ID        string             `json:"_id"`
	Status    string             `json:"status"`
	Buyer     BuyerResponse      `json:"buyer"`
	Products  []LineItemResponse `json:"products"`
	Payment   PaymentResponse    `json:"payment"`
	Total     float64            `json:"total"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// ToOrderResponse maps a domain order to its listing view. The buyer is
// projected by name only.
func ToOrderResponse(o model.Order) OrderResponse {
	products := make([]LineItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		products = append(products, LineItemResponse{
			ProductID: item.ProductID,
			Name:      item.ProductName,
			Price:     item.Price,
		})
	}
	return OrderResponse{
		ID:     o.ID,
		Status: string(o.Status),
		Buyer: BuyerResponse{
			ID:   o.BuyerID,
			Name: o.BuyerName,
		},
		Products: products,
		Payment: PaymentResponse{
			TransactionID: o.Payment.TransactionID,
			Success:       o.Payment.Success,
		},
		Total:     o.Total(),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

// ToOrderDetailResponse maps a domain order to the status update view, which
// additionally exposes the buyer's email.
func ToOrderDetailResponse(o model.Order) OrderResponse {
	response := ToOrderResponse(o)
	response.Buyer.Email = o.BuyerEmail
	return response
}
