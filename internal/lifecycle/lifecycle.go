// Package lifecycle implements the payment-gated fulfillment state machine
// for customer orders. Unpaid orders are pinned to awaiting_payment; paid
// orders may move freely between the four paid states (the flow is not
// forward-only), and completed is terminal for any further editing.
package lifecycle

import (
	"slices"

	"github.com/ordena-app/ordena/internal/domain"
)

var paidStatuses = []domain.OrderStatus{
	domain.StatusPendingPreparation,
	domain.StatusInPreparation,
	domain.StatusReadyForDelivery,
	domain.StatusCompleted,
}

// Initial returns the status a freshly created order starts in.
func Initial(paid bool) domain.OrderStatus {
	if paid {
		return domain.StatusPendingPreparation
	}
	return domain.StatusAwaitingPayment
}

// AllowedStatuses is the legal target set for an order with the given paid
// flag. It matches the options the status dialog offers an operator.
func AllowedStatuses(paid bool) []domain.OrderStatus {
	if paid {
		return slices.Clone(paidStatuses)
	}
	return []domain.OrderStatus{domain.StatusAwaitingPayment}
}

// UpdateStatus moves the order to status, or fails with an
// InvalidTransitionError when the order is already completed or the target
// is outside the legal set for its paid flag.
func UpdateStatus(o *domain.CustomerOrder, status domain.OrderStatus) error {
	if o.Status == domain.StatusCompleted {
		return &domain.InvalidTransitionError{From: o.Status, To: status, Paid: o.Paid}
	}
	if !slices.Contains(AllowedStatuses(o.Paid), status) {
		return &domain.InvalidTransitionError{From: o.Status, To: status, Paid: o.Paid}
	}
	o.Status = status
	return nil
}

// SetPaid records or revokes payment. Marking an order paid moves it to
// pending_preparation; revoking payment forces it back to awaiting_payment
// and clears the payment date.
func SetPaid(o *domain.CustomerOrder, paid bool) {
	o.Paid = paid
	if paid {
		o.Status = domain.StatusPendingPreparation
		return
	}
	o.Status = domain.StatusAwaitingPayment
	o.PaymentDate = nil
}

// Editable reports whether the order's header and lifecycle may still be
// changed: completed orders and deactivated documents are locked.
func Editable(o domain.CustomerOrder) bool {
	return o.Active && o.Status != domain.StatusCompleted
}
