package ledger

import (
	"errors"
	"testing"

	"github.com/ordena-app/ordena/internal/domain"
)

func TestOrderLedger_Mutations(t *testing.T) {
	l := &OrderLedger{}
	l.AddItem()
	l.AddItem()

	if err := l.UpdateItem(0, FieldProductID, "7"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := l.UpdateItem(1, FieldQuantity, "3"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := l.RemoveItem(0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(l.Items) != 1 || l.Items[0].Quantity != "3" {
		t.Errorf("expected surviving item with quantity 3, got %+v", l.Items)
	}

	if err := l.RemoveItem(5); !errors.Is(err, domain.ErrItemIndex) {
		t.Errorf("expected ErrItemIndex, got %v", err)
	}
}

func TestOrderLedger_QuantityStoredAsGiven(t *testing.T) {
	// The order variant does not sanitize input; validation catches bad
	// values at submission time instead.
	l := &OrderLedger{}
	l.AddItem()
	_ = l.UpdateItem(0, FieldQuantity, "2x")
	if l.Items[0].Quantity != "2x" {
		t.Errorf("expected raw value 2x, got %q", l.Items[0].Quantity)
	}
}

func TestOrderLedger_Validate(t *testing.T) {
	t.Run("empty ledger fails", func(t *testing.T) {
		l := &OrderLedger{}
		errs := l.Validate()
		if len(errs) != 1 || errs[0].Field != "items" {
			t.Fatalf("expected missing-items error, got %v", errs)
		}
	})

	t.Run("missing product and bad quantity reported per item", func(t *testing.T) {
		l := &OrderLedger{Items: []OrderDraftItem{
			{ProductID: "", Quantity: "0"},
			{ProductID: "4", Quantity: "2"},
		}}
		errs := l.Validate()
		if len(errs) != 2 {
			t.Fatalf("expected 2 errors, got %d: %v", len(errs), errs)
		}
	})

	t.Run("non-numeric product id is rejected", func(t *testing.T) {
		l := &OrderLedger{Items: []OrderDraftItem{
			{ProductID: "abc", Quantity: "2"},
		}}
		errs := l.Validate()
		if len(errs) != 1 || errs[0].Field != FieldProductID {
			t.Fatalf("expected a product id error, got %v", errs)
		}
	})

	t.Run("duplicate products are allowed", func(t *testing.T) {
		l := &OrderLedger{Items: []OrderDraftItem{
			{ProductID: "4", Quantity: "1"},
			{ProductID: "4", Quantity: "2"},
		}}
		if errs := l.Validate(); errs != nil {
			t.Errorf("expected no errors, got %v", errs)
		}
	})
}
