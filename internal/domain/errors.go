package domain

import (
	"errors"
	"fmt"
	"strings"
)

// HeaderItem marks a FieldError as belonging to the document header rather
// than a specific line item.
const HeaderItem = -1

// FieldError describes one invalid field on a draft, either on the header
// (Item == HeaderItem) or on the line item at the given index.
type FieldError struct {
	Field   string `json:"field"`
	Item    int    `json:"item"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	if e.Item == HeaderItem {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("%s[%d]: %s", e.Field, e.Item, e.Message)
}

// ValidationErrors aggregates every field failure found in one validation
// pass so the caller can re-render the whole form at once.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// ErrDuplicateItem blocks submission of a purchase whose ledger references
// the same supply item twice.
var ErrDuplicateItem = errors.New("duplicate supply item in purchase")

// ErrItemIndex is returned when a ledger mutation targets an index outside
// the current line item sequence.
var ErrItemIndex = errors.New("line item index out of range")

// ErrSubmissionInFlight rejects a second submission of the same draft while
// the first request is still outstanding.
var ErrSubmissionInFlight = errors.New("submission already in flight for draft")

// InvalidTransitionError reports a status update outside the legal set for
// the order's payment state, or any update on a completed order.
type InvalidTransitionError struct {
	From OrderStatus
	To   OrderStatus
	Paid bool
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %q to %q (paid=%t)", e.From, e.To, e.Paid)
}

// BackendError wraps a failed call to the persistence or catalog service.
// Status is zero when the request never produced a response.
type BackendError struct {
	Op     string
	Status int
	Err    error
}

func (e *BackendError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: backend returned status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }
