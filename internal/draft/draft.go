// Package draft builds purchase and order documents from operator input.
// A draft mirrors the form state of the original console: header fields and
// ledger items are raw strings until submission parses them into the
// canonical domain shapes handed to the persistence service.
package draft

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/ordena-app/ordena/internal/domain"
	"github.com/ordena-app/ordena/internal/ledger"
	"github.com/ordena-app/ordena/internal/lifecycle"
)

// DateLayout is the date-only form used by draft header fields.
const DateLayout = "2006-01-02"

const orderNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

type PurchaseDraft struct {
	DraftID          string                `json:"draft_id"`
	SupplierID       string                `json:"supplier_id"`
	PurchaseDate     string                `json:"purchase_date"`
	RegistrationDate string                `json:"registration_date"`
	Status           domain.PurchaseStatus `json:"status"`
	Ledger           ledger.PurchaseLedger `json:"ledger"`
	Supplier         domain.CatalogEntry   `json:"supplier"`
	Active           bool                  `json:"active"`
}

type OrderDraft struct {
	DraftID      string              `json:"draft_id"`
	ID           int                 `json:"id"`
	CustomerID   string              `json:"customer_id"`
	OrderNumber  string              `json:"order_number"`
	DeliveryDate string              `json:"delivery_date"`
	PaymentDate  string              `json:"payment_date"`
	Status       domain.OrderStatus  `json:"status"`
	Paid         bool                `json:"paid"`
	Ledger       ledger.OrderLedger  `json:"ledger"`
	Customer     domain.CatalogEntry `json:"customer"`
	Active       bool                `json:"active"`
}

// NewPurchase returns an empty purchase draft. Purchases are only ever
// recorded as completed.
func NewPurchase() *PurchaseDraft {
	return &PurchaseDraft{
		DraftID: uuid.NewString(),
		Status:  domain.PurchaseCompleted,
		Active:  true,
	}
}

// NewOrder returns an empty order draft with a generated order number and
// the unpaid initial status.
func NewOrder() *OrderDraft {
	return &OrderDraft{
		DraftID:     uuid.NewString(),
		OrderNumber: GenerateOrderNumber(),
		Status:      lifecycle.Initial(false),
		Active:      true,
	}
}

// GenerateOrderNumber draws a 10-character order number uniformly from
// [A-Z0-9]. Numbers are not checked for global uniqueness; at expected data
// volumes the collision probability is accepted as negligible.
func GenerateOrderNumber() string {
	b := make([]byte, 10)
	for i := range b {
		b[i] = orderNumberAlphabet[rand.IntN(len(orderNumberAlphabet))]
	}
	return string(b)
}

// LoadPurchase normalizes a persisted purchase into editable draft shape:
// dates keep only their date portion and an absent supplier reference is
// defaulted so the form can always render name and contact.
func LoadPurchase(p domain.Purchase) *PurchaseDraft {
	d := &PurchaseDraft{
		DraftID:          uuid.NewString(),
		SupplierID:       itoa(p.SupplierID),
		PurchaseDate:     p.PurchaseDate.Format(DateLayout),
		RegistrationDate: p.RegistrationDate.Format(DateLayout),
		Status:           p.Status,
		Active:           p.Active,
	}
	if p.Supplier != nil {
		d.Supplier = *p.Supplier
	}
	for _, it := range p.Items {
		d.Ledger.Items = append(d.Ledger.Items, ledger.PurchaseDraftItem{
			SupplyID:  itoa(it.SupplyID),
			Quantity:  itoa(it.Quantity),
			UnitPrice: ftoa(it.UnitPrice),
		})
	}
	d.Ledger.ComputeTotals()
	return d
}

// LoadOrder normalizes a persisted order into editable draft shape. A nil
// payment date becomes the empty string.
func LoadOrder(o domain.CustomerOrder) *OrderDraft {
	d := &OrderDraft{
		DraftID:      uuid.NewString(),
		ID:           o.ID,
		CustomerID:   itoa(o.CustomerID),
		OrderNumber:  o.OrderNumber,
		DeliveryDate: o.DeliveryDate.Format(DateLayout),
		Status:       o.Status,
		Paid:         o.Paid,
		Active:       o.Active,
	}
	if o.PaymentDate != nil {
		d.PaymentDate = o.PaymentDate.Format(DateLayout)
	}
	if o.Customer != nil {
		d.Customer = *o.Customer
	}
	for _, it := range o.Items {
		d.Ledger.Items = append(d.Ledger.Items, ledger.OrderDraftItem{
			ProductID: itoa(it.ProductID),
			Quantity:  itoa(it.Quantity),
		})
	}
	return d
}

func parseDate(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	return t, err == nil
}
