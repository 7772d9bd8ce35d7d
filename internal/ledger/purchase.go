// Package ledger holds the mutable line-item collections backing an
// in-progress purchase or order draft. Item fields are kept as the raw
// strings the operator typed so totals can update live while incomplete
// values are still being corrected; only validation and submission enforce
// parseability.
package ledger

import (
	"strconv"
	"strings"

	"github.com/ordena-app/ordena/internal/domain"
)

// Field names accepted by UpdateItem.
const (
	FieldSupplyID  = "supply_id"
	FieldProductID = "product_id"
	FieldQuantity  = "quantity"
	FieldUnitPrice = "unit_price"
)

type PurchaseDraftItem struct {
	SupplyID  string `json:"supply_id"`
	Quantity  string `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

// PurchaseLedger is the ordered line-item sequence of one purchase draft.
// Subtotal and Total are recomputed after every mutation; fields that do not
// parse yet count as zero.
type PurchaseLedger struct {
	Items    []PurchaseDraftItem `json:"items"`
	Subtotal float64             `json:"subtotal"`
	Total    float64             `json:"total"`
}

// AddItem appends an empty line item. Totals are unchanged by an empty row
// but recomputed anyway to keep the invariant in one place.
func (l *PurchaseLedger) AddItem() {
	l.Items = append(l.Items, PurchaseDraftItem{})
	l.ComputeTotals()
}

// RemoveItem deletes the item at index i, preserving the order of the rest.
func (l *PurchaseLedger) RemoveItem(i int) error {
	if i < 0 || i >= len(l.Items) {
		return domain.ErrItemIndex
	}
	l.Items = append(l.Items[:i], l.Items[i+1:]...)
	l.ComputeTotals()
	return nil
}

// UpdateItem writes a raw field value into the item at index i. Quantity
// keeps digit characters only; unit price keeps digits and at most one
// decimal point. Unknown fields are ignored, matching lenient form handling.
func (l *PurchaseLedger) UpdateItem(i int, field, raw string) error {
	if i < 0 || i >= len(l.Items) {
		return domain.ErrItemIndex
	}
	switch field {
	case FieldSupplyID:
		l.Items[i].SupplyID = raw
	case FieldQuantity:
		l.Items[i].Quantity = sanitizeDigits(raw)
	case FieldUnitPrice:
		l.Items[i].UnitPrice = sanitizeDecimal(raw)
	}
	l.ComputeTotals()
	return nil
}

// ComputeTotals derives subtotal and total from the current items. Total is
// always subtotal plus the 19% tax surcharge.
func (l *PurchaseLedger) ComputeTotals() {
	subtotal := 0.0
	for _, it := range l.Items {
		qty, _ := strconv.Atoi(it.Quantity)
		price, _ := strconv.ParseFloat(it.UnitPrice, 64)
		subtotal += float64(qty) * price
	}
	l.Subtotal = subtotal
	l.Total = subtotal * (1 + domain.TaxRate)
}

// Validate checks every line item for completeness. Reference ids must parse
// to positive integers; the form's select boxes guarantee that, but the API
// accepts arbitrary strings. Duplicate supply references are reported
// separately by CheckDuplicates.
func (l *PurchaseLedger) Validate() domain.ValidationErrors {
	var errs domain.ValidationErrors
	if len(l.Items) == 0 {
		errs = append(errs, domain.FieldError{
			Field:   "items",
			Item:    domain.HeaderItem,
			Message: "at least one line item is required",
		})
		return errs
	}
	for i, it := range l.Items {
		if id, err := strconv.Atoi(strings.TrimSpace(it.SupplyID)); err != nil || id <= 0 {
			errs = append(errs, domain.FieldError{Field: FieldSupplyID, Item: i, Message: "supply item is required"})
		}
		if qty, err := strconv.Atoi(it.Quantity); err != nil || qty <= 0 {
			errs = append(errs, domain.FieldError{Field: FieldQuantity, Item: i, Message: "quantity must be greater than 0"})
		}
		if price, err := strconv.ParseFloat(it.UnitPrice, 64); err != nil || price <= 0 {
			errs = append(errs, domain.FieldError{Field: FieldUnitPrice, Item: i, Message: "unit price must be greater than 0"})
		}
	}
	return errs
}

// CheckDuplicates fails when two items reference the same supply id. Blank
// ids are skipped; Validate already reports those.
func (l *PurchaseLedger) CheckDuplicates() error {
	seen := make(map[string]struct{}, len(l.Items))
	for _, it := range l.Items {
		id := strings.TrimSpace(it.SupplyID)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			return domain.ErrDuplicateItem
		}
		seen[id] = struct{}{}
	}
	return nil
}

// sanitizeDigits strips everything but digit characters.
func sanitizeDigits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// sanitizeDecimal keeps digits and the first decimal point.
func sanitizeDecimal(raw string) string {
	var b strings.Builder
	dot := false
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !dot:
			dot = true
			b.WriteRune(r)
		}
	}
	return b.String()
}
