package console

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ordena-app/ordena/internal/domain"
	"github.com/ordena-app/ordena/internal/draft"
	"github.com/ordena-app/ordena/internal/ledger"
	"github.com/ordena-app/ordena/internal/listing"
	"github.com/ordena-app/ordena/internal/notify"
)

type purchaseListResponse struct {
	Purchases []domain.Purchase `json:"purchases"`
	Page      int               `json:"page"`
	Pages     []int             `json:"pages"`
}

func (h *Handler) handleListPurchases(w http.ResponseWriter, r *http.Request) {
	purchases, err := h.backend.ListPurchases(r.Context())
	if err != nil {
		h.logger.Error("failed to list purchases", "error", err)
		h.writeDomainError(w, err)
		return
	}

	search := r.URL.Query().Get("search")
	filtered := listing.FilterByName(purchases, search, domain.Purchase.SupplierName)

	page := pageParam(r)
	h.writeJSON(w, http.StatusOK, purchaseListResponse{
		Purchases: listing.Paginate(filtered, h.purchasePageSize, page),
		Page:      page,
		Pages:     listing.PageNumbers(len(filtered), h.purchasePageSize),
	})
}

// purchaseSubmission is the raw form state the console UI posts; all fields
// arrive as strings and are parsed by the document builder.
type purchaseSubmission struct {
	DraftID          string                     `json:"draft_id"`
	SupplierID       string                     `json:"supplier_id"`
	PurchaseDate     string                     `json:"purchase_date"`
	RegistrationDate string                     `json:"registration_date"`
	Items            []ledger.PurchaseDraftItem `json:"items"`
}

func (h *Handler) handleCreatePurchase(w http.ResponseWriter, r *http.Request) {
	var req purchaseSubmission
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	d := draft.NewPurchase()
	if req.DraftID != "" {
		d.DraftID = req.DraftID
	}
	d.SupplierID = req.SupplierID
	d.PurchaseDate = req.PurchaseDate
	d.RegistrationDate = req.RegistrationDate
	d.Ledger.Items = req.Items
	d.Ledger.ComputeTotals()

	doc, err := d.Submit()
	if err != nil {
		h.notifier.Notify(r.Context(), notify.LevelError, "please correct the errors in the purchase form")
		h.writeDomainError(w, err)
		return
	}

	created, err := h.backend.CreatePurchase(r.Context(), d.DraftID, doc)
	if err != nil {
		h.logger.Error("failed to create purchase", "error", err, "draft_id", d.DraftID)
		h.notifier.Notify(r.Context(), notify.LevelError, "there was a problem saving the purchase")
		h.writeDomainError(w, err)
		return
	}

	h.recordSubmission(r, "purchase")
	h.publishEvent(r, strconv.Itoa(created.ID), domain.EventPurchaseRecorded, domain.PurchaseRecordedEvent{
		PurchaseID: created.ID,
		SupplierID: created.SupplierID,
		Total:      created.Total,
	})

	h.notifier.Notify(r.Context(), notify.LevelSuccess, "the purchase has been recorded")
	h.logger.Info("purchase created", "purchase_id", created.ID, "supplier_id", created.SupplierID)
	h.writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleSetPurchaseActive(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid purchase id")
		return
	}

	var req struct {
		Active bool `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.backend.SetPurchaseActive(r.Context(), id, req.Active); err != nil {
		h.logger.Error("failed to set purchase active flag", "error", err, "purchase_id", id)
		h.notifier.Notify(r.Context(), notify.LevelError, "there was a problem updating the purchase")
		h.writeDomainError(w, err)
		return
	}

	h.notifier.Notify(r.Context(), notify.LevelSuccess, "the purchase visibility has been updated")
	h.writeJSON(w, http.StatusOK, map[string]bool{"active": req.Active})
}

func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
