package worker

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ordena-app/ordena/internal/domain"
)

func mustEvent(t *testing.T, typ domain.EventType, payload any) []byte {
	t.Helper()
	event, err := domain.NewEvent(typ, payload)
	if err != nil {
		t.Fatalf("failed to build event: %v", err)
	}
	data, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("failed to marshal event: %v", err)
	}
	return data
}

func TestNotificationHandler_Handle(t *testing.T) {
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("delivers a notification for an order submission", func(t *testing.T) {
		var got map[string]string
		webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/notifications" {
				t.Errorf("expected POST /notifications, got %s %s", r.Method, r.URL.Path)
			}
			if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
				t.Fatalf("failed to decode notification: %v", err)
			}
			w.WriteHeader(http.StatusCreated)
		}))
		defer webhook.Close()

		h := NewNotificationHandler(webhook.URL, webhook.Client(), discard)
		payload := mustEvent(t, domain.EventOrderSubmitted, domain.OrderSubmittedEvent{
			OrderID:     7,
			OrderNumber: "AB12CD34EF",
			Status:      domain.StatusPendingPreparation,
			Items:       []domain.OrderItem{{ProductID: 1, Quantity: 2}},
		})

		if err := h.Handle(context.Background(), payload); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got["level"] != "success" {
			t.Errorf("expected success level, got %s", got["level"])
		}
		if got["message"] != "order AB12CD34EF created with 1 items (pending_preparation)" {
			t.Errorf("unexpected message: %s", got["message"])
		}
	})

	t.Run("delivers a notification for a status change", func(t *testing.T) {
		var got map[string]string
		webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&got)
			w.WriteHeader(http.StatusCreated)
		}))
		defer webhook.Close()

		h := NewNotificationHandler(webhook.URL, webhook.Client(), discard)
		payload := mustEvent(t, domain.EventOrderStatusChanged, domain.OrderStatusChangedEvent{
			OrderNumber: "AB12CD34EF",
			Previous:    domain.StatusInPreparation,
			Status:      domain.StatusReadyForDelivery,
		})

		if err := h.Handle(context.Background(), payload); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got["message"] != "order AB12CD34EF moved from in_preparation to ready_for_delivery" {
			t.Errorf("unexpected message: %s", got["message"])
		}
	})

	t.Run("acknowledges unknown event types without delivering", func(t *testing.T) {
		webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("unexpected delivery for unknown event type")
		}))
		defer webhook.Close()

		h := NewNotificationHandler(webhook.URL, webhook.Client(), discard)
		payload := mustEvent(t, domain.EventType("order.archived"), map[string]int{"order_id": 7})

		if err := h.Handle(context.Background(), payload); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("fails when the notification service rejects the delivery", func(t *testing.T) {
		webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer webhook.Close()

		h := NewNotificationHandler(webhook.URL, webhook.Client(), discard)
		payload := mustEvent(t, domain.EventPurchaseRecorded, domain.PurchaseRecordedEvent{
			PurchaseID: 42,
			Total:      29.75,
		})

		if err := h.Handle(context.Background(), payload); err == nil {
			t.Error("expected an error, got nil")
		}
	})

	t.Run("fails on a malformed envelope", func(t *testing.T) {
		h := NewNotificationHandler("http://unused", http.DefaultClient, discard)
		if err := h.Handle(context.Background(), []byte("not json")); err == nil {
			t.Error("expected an error, got nil")
		}
	})
}
