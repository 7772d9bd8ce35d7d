package domain

import "time"

type PurchaseStatus string

// Purchases are recorded after the fact, so the only status they ever carry
// is completed.
const PurchaseCompleted PurchaseStatus = "completed"

// TaxRate is the surcharge applied on top of the purchase subtotal.
const TaxRate = 0.19

type PurchaseItem struct {
	SupplyID  int     `json:"supply_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Purchase is the canonical persisted shape of a supplier purchase. Subtotal
// and Total are derived from the line items (Total = Subtotal * 1.19) and are
// recomputed whenever the items change, never stored independently.
type Purchase struct {
	ID               int            `json:"id"`
	SupplierID       int            `json:"supplier_id"`
	PurchaseDate     time.Time      `json:"purchase_date"`
	RegistrationDate time.Time      `json:"registration_date"`
	Status           PurchaseStatus `json:"status"`
	Subtotal         float64        `json:"subtotal"`
	Total            float64        `json:"total"`
	Active           bool           `json:"active"`
	Items            []PurchaseItem `json:"items"`
	Supplier         *CatalogEntry  `json:"supplier,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

func (p Purchase) SupplierName() string {
	if p.Supplier == nil {
		return ""
	}
	return p.Supplier.Name
}
