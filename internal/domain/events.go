package domain

import (
	"encoding/json"
	"time"
)

type EventType string

const (
	EventOrderSubmitted     EventType = "order.submitted"
	EventOrderStatusChanged EventType = "order.status_changed"
	EventPurchaseRecorded   EventType = "purchase.recorded"
)

// Event is the envelope written to the document events topic. Payload holds
// one of the typed event structs below, keyed by Type.
type Event struct {
	Type       EventType       `json:"type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

func NewEvent(t EventType, payload any) (Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, err
	}
	return Event{Type: t, OccurredAt: time.Now().UTC(), Payload: data}, nil
}

type OrderSubmittedEvent struct {
	OrderID     int         `json:"order_id"`
	OrderNumber string      `json:"order_number"`
	CustomerID  int         `json:"customer_id"`
	Status      OrderStatus `json:"status"`
	Paid        bool        `json:"paid"`
	Items       []OrderItem `json:"items"`
}

type OrderStatusChangedEvent struct {
	OrderNumber string      `json:"order_number"`
	Previous    OrderStatus `json:"previous"`
	Status      OrderStatus `json:"status"`
}

type PurchaseRecordedEvent struct {
	PurchaseID int     `json:"purchase_id"`
	SupplierID int     `json:"supplier_id"`
	Total      float64 `json:"total"`
}
