package model

// Notification carries everything the dispatcher needs to send a status
// update email to the buyer.
type Notification struct {
	Recipient string
	BuyerName string
	OrderID   string
	Status    OrderStatus
	Link      string
}
