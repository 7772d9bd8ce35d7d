package ledger

import (
	"strconv"
	"strings"

	"github.com/ordena-app/ordena/internal/domain"
)

type OrderDraftItem struct {
	ProductID string `json:"product_id"`
	Quantity  string `json:"quantity"`
}

// OrderLedger is the line-item sequence of one customer order draft. Order
// items carry no price (product pricing lives with the catalog service) and,
// unlike purchases, duplicate product rows are accepted.
type OrderLedger struct {
	Items []OrderDraftItem `json:"items"`
}

func (l *OrderLedger) AddItem() {
	l.Items = append(l.Items, OrderDraftItem{})
}

func (l *OrderLedger) RemoveItem(i int) error {
	if i < 0 || i >= len(l.Items) {
		return domain.ErrItemIndex
	}
	l.Items = append(l.Items[:i], l.Items[i+1:]...)
	return nil
}

// UpdateItem stores the raw value as given; order quantities are not
// sanitized on entry, only checked at validation time.
func (l *OrderLedger) UpdateItem(i int, field, raw string) error {
	if i < 0 || i >= len(l.Items) {
		return domain.ErrItemIndex
	}
	switch field {
	case FieldProductID:
		l.Items[i].ProductID = raw
	case FieldQuantity:
		l.Items[i].Quantity = raw
	}
	return nil
}

func (l *OrderLedger) Validate() domain.ValidationErrors {
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
		if id, err := strconv.Atoi(strings.TrimSpace(it.ProductID)); err != nil || id <= 0 {
			errs = append(errs, domain.FieldError{Field: FieldProductID, Item: i, Message: "product is required"})
		}
		if qty, err := strconv.Atoi(it.Quantity); err != nil || qty <= 0 {
			errs = append(errs, domain.FieldError{Field: FieldQuantity, Item: i, Message: "quantity must be greater than 0"})
		}
	}
	return errs
}
