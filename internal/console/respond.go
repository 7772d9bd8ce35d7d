package console

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ordena-app/ordena/internal/domain"
)

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}

// writeDomainError maps the error taxonomy onto HTTP statuses: validation
// failures are 422 with field detail, business conflicts 409, backend
// failures 502. Every failure path leaves the caller's draft editable.
func (h *Handler) writeDomainError(w http.ResponseWriter, err error) {
	var verrs domain.ValidationErrors
	if errors.As(err, &verrs) {
		h.writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  "validation failed",
			"fields": verrs,
		})
		return
	}

	var ite *domain.InvalidTransitionError
	switch {
	case errors.Is(err, domain.ErrDuplicateItem):
		h.writeError(w, http.StatusConflict, "duplicate supply items are not allowed")
	case errors.Is(err, domain.ErrSubmissionInFlight):
		h.writeError(w, http.StatusConflict, "a submission for this draft is already in progress")
	case errors.As(err, &ite):
		h.writeError(w, http.StatusConflict, ite.Error())
	default:
		var be *domain.BackendError
		if errors.As(err, &be) {
			h.writeError(w, http.StatusBadGateway, "persistence service unavailable")
			return
		}
		h.writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
