package console

import (
	"context"
	"net/http"

	"github.com/ordena-app/ordena/internal/catalog"
	"github.com/ordena-app/ordena/internal/domain"
)

// handleCatalog adapts one catalog listing into a GET handler. The picker
// endpoints filter out inactive references; products come pre-filtered by the
// catalog service.
func (h *Handler) handleCatalog(list func(*catalog.Client, context.Context) ([]domain.CatalogEntry, error), activeOnly bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := list(h.catalog, r.Context())
		if err != nil {
			h.logger.Error("failed to list catalog entries", "error", err)
			h.writeDomainError(w, err)
			return
		}
		if activeOnly {
			entries = catalog.Active(entries)
		}
		if entries == nil {
			entries = []domain.CatalogEntry{}
		}
		h.writeJSON(w, http.StatusOK, entries)
	}
}

type directoryResponse struct {
	Suppliers []domain.CatalogEntry `json:"suppliers"`
	Customers []domain.CatalogEntry `json:"customers"`
	Supplies  []domain.CatalogEntry `json:"supplies"`
	Products  []domain.CatalogEntry `json:"products"`
}

// handleDirectory loads the full reference snapshot for one console session:
// the selectable (active) suppliers, customers and supplies plus the products
// on offer.
func (h *Handler) handleDirectory(w http.ResponseWriter, r *http.Request) {
	dir, err := h.catalog.LoadDirectory(r.Context())
	if err != nil {
		h.logger.Error("failed to load catalog directory", "error", err)
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, directoryResponse{
		Suppliers: dir.ActiveSuppliers(),
		Customers: dir.ActiveCustomers(),
		Supplies:  dir.ActiveSupplies(),
		Products:  dir.Products(),
	})
}
