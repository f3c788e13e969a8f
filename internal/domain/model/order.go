package model

import (
	"encoding/json"
	"time"
)

// OrderStatus describes the order fulfilment lifecycle.
type OrderStatus string

const (
	OrderStatusUnprocessed OrderStatus = "Unprocessed"
	OrderStatusProcessing  OrderStatus = "Processing"
	OrderStatusShipped     OrderStatus = "Shipped"
	OrderStatusDelivered   OrderStatus = "Delivered"
	OrderStatusCancelled   OrderStatus = "Cancelled"
)

// statusRank orders the progression chain. Cancelled sits outside it.
var statusRank = map[OrderStatus]int{
	OrderStatusUnprocessed: 0,
	OrderStatusProcessing:  1,
	OrderStatusShipped:     2,
	OrderStatusDelivered:   3,
}

// Valid reports whether the status is one of the enumerated values.
func (s OrderStatus) Valid() bool {
	if s == OrderStatusCancelled {
		return true
	}
	_, ok := statusRank[s]
	return ok
}

// Terminal reports whether no further transitions are expected from the status.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo implements the strict progression rule: forward movement
// through the chain, or cancellation from any non-terminal state. Consulted
// only when flow enforcement is enabled; by default any status may replace
// any other.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	if s.Terminal() {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}
	return statusRank[next] > statusRank[s]
}

// LineItem is one purchased unit of a product with its price frozen at
// purchase time.
type LineItem struct {
	ProductID   string
	ProductName string
	Price       float64
}

// CartItem is one unit of a product in a checkout request. Repeated entries
// represent quantity.
type CartItem struct {
	ProductID string
	Price     float64
}

// PaymentRecord is the capture result returned by the payment gateway, stored
// verbatim on the order and never reparsed.
type PaymentRecord struct {
	TransactionID string          `json:"transaction_id"`
	Success       bool            `json:"success"`
	Raw           json.RawMessage `json:"raw,omitempty"`
}

// Order is a confirmed purchase. Line items and payment are immutable after
// creation; only status (and UpdatedAt) may change.
type Order struct {
	ID         string
	BuyerID    string
	BuyerName  string
	BuyerEmail string
	Items      []LineItem
	Payment    PaymentRecord
	Status     OrderStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Total sums the captured line item prices.
func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Price
	}
	return total
}
