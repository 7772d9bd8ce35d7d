// Package console exposes the management console REST API. Every write
// operation runs the domain core — ledger validation, builder submission,
// lifecycle rules — before anything is forwarded to the persistence service.
package console

import (
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/ordena-app/ordena/internal/backend"
	"github.com/ordena-app/ordena/internal/catalog"
	"github.com/ordena-app/ordena/internal/domain"
	"github.com/ordena-app/ordena/internal/messaging"
	"github.com/ordena-app/ordena/internal/notify"
	"github.com/ordena-app/ordena/internal/telemetry"
)

type Handler struct {
	backend  *backend.Client
	catalog  *catalog.Client
	producer *messaging.Producer
	notifier notify.Notifier
	logger   *slog.Logger

	purchasePageSize int
	orderPageSize    int

	submissions metric.Int64Counter
}

type Config struct {
	Backend  *backend.Client
	Catalog  *catalog.Client
	Producer *messaging.Producer // optional; nil disables event publishing
	Notifier notify.Notifier
	Logger   *slog.Logger

	PurchasePageSize int
	OrderPageSize    int
}

func NewHandler(cfg Config) *Handler {
	meter := otel.Meter("ordena/console")
	submissions, err := meter.Int64Counter("documents_submitted_total",
		metric.WithDescription("Documents accepted by the console and forwarded to the persistence service"),
	)
	if err != nil {
		cfg.Logger.Warn("failed to create submissions counter", "error", err)
	}

	return &Handler{
		backend:          cfg.Backend,
		catalog:          cfg.Catalog,
		producer:         cfg.Producer,
		notifier:         cfg.Notifier,
		logger:           cfg.Logger,
		purchasePageSize: cfg.PurchasePageSize,
		orderPageSize:    cfg.OrderPageSize,
		submissions:      submissions,
	}
}

// Routes wires the console API onto a fresh mux. Each handler records the
// matched pattern on its span.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	handle := func(pattern string, handler http.HandlerFunc) {
		mux.HandleFunc(pattern, telemetry.WithHTTPRoute(handler))
	}

	handle("GET /health", h.handleHealth)

	handle("GET /purchases", h.handleListPurchases)
	handle("POST /purchases", h.handleCreatePurchase)
	handle("PATCH /purchases/{id}/active", h.handleSetPurchaseActive)

	handle("GET /orders", h.handleListOrders)
	handle("GET /orders/sold-count", h.handleSoldCount)
	handle("POST /orders", h.handleCreateOrder)
	handle("PUT /orders/{id}", h.handleUpdateOrder)
	handle("DELETE /orders/{id}", h.handleDeleteOrder)
	handle("PUT /orders/{number}/status", h.handleUpdateOrderStatus)
	handle("PATCH /orders/{id}/active", h.handleSetOrderActive)

	handle("GET /catalog/directory", h.handleDirectory)
	handle("GET /catalog/suppliers", h.handleCatalog((*catalog.Client).ListSuppliers, true))
	handle("GET /catalog/customers", h.handleCatalog((*catalog.Client).ListCustomers, true))
	handle("GET /catalog/supplies", h.handleCatalog((*catalog.Client).ListSupplyItems, true))
	handle("GET /catalog/products", h.handleCatalog((*catalog.Client).ListActiveProducts, false))

	return mux
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) recordSubmission(r *http.Request, kind string) {
	if h.submissions == nil {
		return
	}
	h.submissions.Add(r.Context(), 1, metric.WithAttributes(attribute.String("kind", kind)))
}

// publishEvent emits a document event when a producer is configured. A
// publish failure is logged, never surfaced: the document is already
// persisted by the time events go out.
func (h *Handler) publishEvent(r *http.Request, key string, t domain.EventType, payload any) {
	if h.producer == nil {
		return
	}
	event, err := domain.NewEvent(t, payload)
	if err != nil {
		h.logger.Error("failed to build event", "error", err, "type", t)
		return
	}
	if err := h.producer.Publish(r.Context(), key, event); err != nil {
		h.logger.Error("failed to publish event", "error", err, "type", t, "key", key)
	}
}
