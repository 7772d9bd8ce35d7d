package console

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ordena-app/ordena/internal/backend"
	"github.com/ordena-app/ordena/internal/domain"
	"github.com/ordena-app/ordena/internal/draft"
	"github.com/ordena-app/ordena/internal/ledger"
	"github.com/ordena-app/ordena/internal/lifecycle"
	"github.com/ordena-app/ordena/internal/listing"
	"github.com/ordena-app/ordena/internal/notify"
)

type orderListResponse struct {
	Orders []domain.CustomerOrder `json:"orders"`
	Page   int                    `json:"page"`
	Pages  []int                  `json:"pages"`
}

func (h *Handler) handleListOrders(w http.ResponseWriter, r *http.Request) {
	filter := orderFilter(r)
	orders, err := h.backend.ListOrders(r.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list orders", "error", err)
		h.writeDomainError(w, err)
		return
	}

	search := r.URL.Query().Get("search")
	filtered := listing.FilterByName(orders, search, domain.CustomerOrder.CustomerName)

	page := pageParam(r)
	h.writeJSON(w, http.StatusOK, orderListResponse{
		Orders: listing.Paginate(filtered, h.orderPageSize, page),
		Page:   page,
		Pages:  listing.PageNumbers(len(filtered), h.orderPageSize),
	})
}

// handleSoldCount sums item quantities across paid orders, optionally for a
// single delivery date. It backs the "units sold" figure on the dashboard.
func (h *Handler) handleSoldCount(w http.ResponseWriter, r *http.Request) {
	paid := true
	filter := &backend.OrderFilter{
		DeliveryDate: r.URL.Query().Get("delivery_date"),
		Paid:         &paid,
	}

	orders, err := h.backend.ListOrders(r.Context(), filter)
	if err != nil {
		h.logger.Error("failed to compute sold count", "error", err)
		h.writeDomainError(w, err)
		return
	}

	count := 0
	for _, o := range orders {
		for _, it := range o.Items {
			count += it.Quantity
		}
	}
	h.writeJSON(w, http.StatusOK, map[string]int{"sold": count})
}

type orderSubmission struct {
	DraftID      string                  `json:"draft_id"`
	CustomerID   string                  `json:"customer_id"`
	OrderNumber  string                  `json:"order_number"`
	DeliveryDate string                  `json:"delivery_date"`
	PaymentDate  string                  `json:"payment_date"`
	Paid         bool                    `json:"paid"`
	Items        []ledger.OrderDraftItem `json:"items"`
}

func (h *Handler) orderDraftFrom(req orderSubmission) *draft.OrderDraft {
	d := draft.NewOrder()
	if req.DraftID != "" {
		d.DraftID = req.DraftID
	}
	if req.OrderNumber != "" {
		d.OrderNumber = req.OrderNumber
	}
	d.CustomerID = req.CustomerID
	d.DeliveryDate = req.DeliveryDate
	d.PaymentDate = req.PaymentDate
	d.Paid = req.Paid
	d.Ledger.Items = req.Items
	return d
}

func (h *Handler) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req orderSubmission
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	d := h.orderDraftFrom(req)
	doc, err := d.Submit()
	if err != nil {
		h.notifier.Notify(r.Context(), notify.LevelError, "please correct the errors in the order form")
		h.writeDomainError(w, err)
		return
	}

	created, err := h.backend.CreateOrder(r.Context(), d.DraftID, doc)
	if err != nil {
		h.logger.Error("failed to create order", "error", err, "draft_id", d.DraftID)
		h.notifier.Notify(r.Context(), notify.LevelError, "there was a problem saving the order")
		h.writeDomainError(w, err)
		return
	}

	h.recordSubmission(r, "order")
	h.publishEvent(r, created.OrderNumber, domain.EventOrderSubmitted, domain.OrderSubmittedEvent{
		OrderID:     created.ID,
		OrderNumber: created.OrderNumber,
		CustomerID:  created.CustomerID,
		Status:      created.Status,
		Paid:        created.Paid,
		Items:       created.Items,
	})

	h.notifier.Notify(r.Context(), notify.LevelSuccess, "the order has been created")
	h.logger.Info("order created", "order_number", created.OrderNumber, "customer_id", created.CustomerID)
	h.writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleUpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var req orderSubmission
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	current, ok := h.findOrderByID(w, r, id)
	if !ok {
		return
	}
	if !lifecycle.Editable(*current) {
		h.notifier.Notify(r.Context(), notify.LevelError, "this order can no longer be edited")
		h.writeError(w, http.StatusConflict, "order is no longer editable")
		return
	}

	d := h.orderDraftFrom(req)
	d.ID = id
	doc, err := d.Submit()
	if err != nil {
		h.notifier.Notify(r.Context(), notify.LevelError, "please correct the errors in the order form")
		h.writeDomainError(w, err)
		return
	}

	updated, err := h.backend.UpdateOrder(r.Context(), d.DraftID, id, doc)
	if err != nil {
		h.logger.Error("failed to update order", "error", err, "order_id", id)
		h.notifier.Notify(r.Context(), notify.LevelError, "there was a problem saving the order")
		h.writeDomainError(w, err)
		return
	}

	h.notifier.Notify(r.Context(), notify.LevelSuccess, "the order has been updated")
	h.writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) handleDeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	if err := h.backend.DeleteOrder(r.Context(), id); err != nil {
		h.logger.Error("failed to delete order", "error", err, "order_id", id)
		h.notifier.Notify(r.Context(), notify.LevelError, "there was a problem deleting the order")
		h.writeDomainError(w, err)
		return
	}

	h.notifier.Notify(r.Context(), notify.LevelSuccess, "the order has been deleted")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	number := r.PathValue("number")

	var req struct {
		Status domain.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !req.Status.Valid() {
		h.writeError(w, http.StatusBadRequest, "unknown status")
		return
	}

	order, ok := h.findOrderByNumber(w, r, number)
	if !ok {
		return
	}

	previous := order.Status
	if err := lifecycle.UpdateStatus(order, req.Status); err != nil {
		h.notifier.Notify(r.Context(), notify.LevelError, "that status change is not allowed")
		h.writeDomainError(w, err)
		return
	}

	updated, err := h.backend.UpdateOrderStatus(r.Context(), number, req.Status)
	if err != nil {
		h.logger.Error("failed to update order status", "error", err, "order_number", number)
		h.notifier.Notify(r.Context(), notify.LevelError, "there was a problem updating the order status")
		h.writeDomainError(w, err)
		return
	}

	h.publishEvent(r, number, domain.EventOrderStatusChanged, domain.OrderStatusChangedEvent{
		OrderNumber: number,
		Previous:    previous,
		Status:      req.Status,
	})

	h.notifier.Notify(r.Context(), notify.LevelSuccess, "the order status has been updated")
	h.logger.Info("order status updated", "order_number", number, "from", previous, "to", req.Status)
	h.writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) handleSetOrderActive(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var req struct {
		Active bool `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.backend.SetOrderActive(r.Context(), id, req.Active); err != nil {
		h.logger.Error("failed to set order active flag", "error", err, "order_id", id)
		h.notifier.Notify(r.Context(), notify.LevelError, "there was a problem updating the order")
		h.writeDomainError(w, err)
		return
	}

	h.notifier.Notify(r.Context(), notify.LevelSuccess, "the order visibility has been updated")
	h.writeJSON(w, http.StatusOK, map[string]bool{"active": req.Active})
}

// findOrderByID loads the current persisted state of one order. The
// persistence service has no single-order read, so this scans the list.
func (h *Handler) findOrderByID(w http.ResponseWriter, r *http.Request, id int) (*domain.CustomerOrder, bool) {
	orders, err := h.backend.ListOrders(r.Context(), nil)
	if err != nil {
		h.writeDomainError(w, err)
		return nil, false
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], true
		}
	}
	h.writeError(w, http.StatusNotFound, "order not found")
	return nil, false
}

func (h *Handler) findOrderByNumber(w http.ResponseWriter, r *http.Request, number string) (*domain.CustomerOrder, bool) {
	orders, err := h.backend.ListOrders(r.Context(), nil)
	if err != nil {
		h.writeDomainError(w, err)
		return nil, false
	}
	for i := range orders {
		if orders[i].OrderNumber == number {
			return &orders[i], true
		}
	}
	h.writeError(w, http.StatusNotFound, "order not found")
	return nil, false
}

func orderFilter(r *http.Request) *backend.OrderFilter {
	q := r.URL.Query()
	filter := &backend.OrderFilter{DeliveryDate: q.Get("delivery_date")}
	if v := q.Get("paid"); v != "" {
		if paid, err := strconv.ParseBool(v); err == nil {
			filter.Paid = &paid
		}
	}
	if filter.DeliveryDate == "" && filter.Paid == nil {
		return nil
	}
	return filter
}
