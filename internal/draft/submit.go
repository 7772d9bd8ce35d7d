package draft

import (
	"strconv"
	"strings"

	"github.com/ordena-app/ordena/internal/domain"
	"github.com/ordena-app/ordena/internal/lifecycle"
)

// Submit validates the purchase draft and, when valid, serializes it into
// the canonical purchase document: reference ids and quantities parsed to
// integers, prices to floats, dates to UTC timestamps, totals recomputed
// from the parsed values. Field failures come back aggregated as
// ValidationErrors; a repeated supply id fails with ErrDuplicateItem.
func (d *PurchaseDraft) Submit() (domain.Purchase, error) {
	var errs domain.ValidationErrors

	supplierID, ok := atoi(d.SupplierID)
	if !ok {
		errs = append(errs, headerError("supplier_id", "supplier is required"))
	}
	purchaseDate, ok := parseDate(d.PurchaseDate)
	if !ok {
		errs = append(errs, headerError("purchase_date", "purchase date is required"))
	}
	registrationDate, ok := parseDate(d.RegistrationDate)
	if !ok {
		errs = append(errs, headerError("registration_date", "registration date is required"))
	}

	errs = append(errs, d.Ledger.Validate()...)
	if len(errs) > 0 {
		return domain.Purchase{}, errs
	}
	if err := d.Ledger.CheckDuplicates(); err != nil {
		return domain.Purchase{}, err
	}

	p := domain.Purchase{
		SupplierID:       supplierID,
		PurchaseDate:     purchaseDate,
		RegistrationDate: registrationDate,
		Status:           domain.PurchaseCompleted,
		Active:           true,
	}
	subtotal := 0.0
	for _, it := range d.Ledger.Items {
		supplyID, _ := atoi(it.SupplyID)
		qty, _ := atoi(it.Quantity)
		price, _ := strconv.ParseFloat(it.UnitPrice, 64)
		p.Items = append(p.Items, domain.PurchaseItem{
			SupplyID:  supplyID,
			Quantity:  qty,
			UnitPrice: price,
		})
		subtotal += float64(qty) * price
	}
	p.Subtotal = subtotal
	p.Total = subtotal * (1 + domain.TaxRate)
	return p, nil
}

// Submit validates the order draft and serializes it into the canonical
// order document. Submission state is derived, not trusted from the form:
// the status comes from the lifecycle rules for the paid flag, and the
// payment date is dropped unless the order is paid.
func (d *OrderDraft) Submit() (domain.CustomerOrder, error) {
	var errs domain.ValidationErrors

	customerID, ok := atoi(d.CustomerID)
	if !ok {
		errs = append(errs, headerError("customer_id", "customer is required"))
	}
	if strings.TrimSpace(d.OrderNumber) == "" {
		errs = append(errs, headerError("order_number", "order number is required"))
	}
	deliveryDate, ok := parseDate(d.DeliveryDate)
	if !ok {
		errs = append(errs, headerError("delivery_date", "delivery date is required"))
	}

	errs = append(errs, d.Ledger.Validate()...)
	if len(errs) > 0 {
		return domain.CustomerOrder{}, errs
	}

	o := domain.CustomerOrder{
		ID:           d.ID,
		CustomerID:   customerID,
		OrderNumber:  d.OrderNumber,
		DeliveryDate: deliveryDate,
		Active:       true,
	}
	lifecycle.SetPaid(&o, d.Paid)
	if o.Paid {
		if t, ok := parseDate(d.PaymentDate); ok {
			o.PaymentDate = &t
		}
	}
	for _, it := range d.Ledger.Items {
		productID, _ := atoi(it.ProductID)
		qty, _ := atoi(it.Quantity)
		o.Items = append(o.Items, domain.OrderItem{ProductID: productID, Quantity: qty})
	}
	return o, nil
}

func headerError(field, msg string) domain.FieldError {
	return domain.FieldError{Field: field, Item: domain.HeaderItem, Message: msg}
}

func atoi(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return n, err == nil && n != 0
}

func itoa(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
