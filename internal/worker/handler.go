// Package worker turns document events into operator notifications. It is the
// consuming side of the document events topic: the console publishes, the
// worker formats a human-readable message and delivers it to the notification
// service.
package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ordena-app/ordena/internal/domain"
	"github.com/ordena-app/ordena/internal/notify"
)

type NotificationHandler struct {
	webhookURL string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewNotificationHandler(webhookURL string, client *http.Client, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		webhookURL: webhookURL,
		httpClient: client,
		logger:     logger,
	}
}

// Handle decodes one event envelope and delivers the matching notification.
// Unknown event types are logged and acknowledged so a newer console does not
// wedge an older worker.
func (h *NotificationHandler) Handle(ctx context.Context, payload []byte) error {
	var event domain.Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("unmarshal event envelope: %w", err)
	}

	message, err := h.formatMessage(event)
	if err != nil {
		return err
	}
	if message == "" {
		h.logger.Warn("skipping unknown event type", "type", event.Type)
		return nil
	}

	h.logger.Info("processing document event", "type", event.Type, "occurred_at", event.OccurredAt)

	if err := h.deliver(ctx, notify.LevelSuccess, message); err != nil {
		h.logger.Error("failed to deliver notification", "error", err, "type", event.Type)
		return fmt.Errorf("deliver notification: %w", err)
	}
	return nil
}

func (h *NotificationHandler) formatMessage(event domain.Event) (string, error) {
	switch event.Type {
	case domain.EventOrderSubmitted:
		var e domain.OrderSubmittedEvent
		if err := json.Unmarshal(event.Payload, &e); err != nil {
			return "", fmt.Errorf("unmarshal order submitted payload: %w", err)
		}
		return fmt.Sprintf("order %s created with %d items (%s)", e.OrderNumber, len(e.Items), e.Status), nil

	case domain.EventOrderStatusChanged:
		var e domain.OrderStatusChangedEvent
		if err := json.Unmarshal(event.Payload, &e); err != nil {
			return "", fmt.Errorf("unmarshal status changed payload: %w", err)
		}
		return fmt.Sprintf("order %s moved from %s to %s", e.OrderNumber, e.Previous, e.Status), nil

	case domain.EventPurchaseRecorded:
		var e domain.PurchaseRecordedEvent
		if err := json.Unmarshal(event.Payload, &e); err != nil {
			return "", fmt.Errorf("unmarshal purchase recorded payload: %w", err)
		}
		return fmt.Sprintf("purchase %d recorded for a total of %.2f", e.PurchaseID, e.Total), nil
	}
	return "", nil
}

func (h *NotificationHandler) deliver(ctx context.Context, level notify.Level, message string) error {
	body := map[string]string{
		"level":   string(level),
		"message": message,
	}
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.webhookURL+"/notifications", bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("notification service returned status %d", resp.StatusCode)
	}
	return nil
}
