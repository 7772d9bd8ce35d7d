package domain

import "time"

type OrderStatus string

const (
	StatusAwaitingPayment    OrderStatus = "awaiting_payment"
	StatusPendingPreparation OrderStatus = "pending_preparation"
	StatusInPreparation      OrderStatus = "in_preparation"
	StatusReadyForDelivery   OrderStatus = "ready_for_delivery"
	StatusCompleted          OrderStatus = "completed"
)

// Valid reports whether s is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusAwaitingPayment, StatusPendingPreparation, StatusInPreparation,
		StatusReadyForDelivery, StatusCompleted:
		return true
	}
	return false
}

type OrderItem struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// CustomerOrder is the canonical persisted shape of an order. The header is
// immutable once the order reaches completed; Active is a soft visibility
// flag orthogonal to Status.
type CustomerOrder struct {
	ID           int           `json:"id"`
	CustomerID   int           `json:"customer_id"`
	OrderNumber  string        `json:"order_number"`
	DeliveryDate time.Time     `json:"delivery_date"`
	PaymentDate  *time.Time    `json:"payment_date"`
	Status       OrderStatus   `json:"status"`
	Paid         bool          `json:"paid"`
	Active       bool          `json:"active"`
	Items        []OrderItem   `json:"items"`
	Customer     *CatalogEntry `json:"customer,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// CustomerName returns the linked customer's display name, or "" when the
// reference was not embedded by the persistence service.
func (o CustomerOrder) CustomerName() string {
	if o.Customer == nil {
		return ""
	}
	return o.Customer.Name
}
