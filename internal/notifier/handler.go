// Package notifier is the notification sink service. The worker posts
// operator notifications here; the service keeps a bounded in-memory feed the
// console UI polls.
package notifier

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/ordena-app/ordena/internal/notify"
)

// feedLimit bounds the in-memory feed; older notifications are dropped.
const feedLimit = 50

type Notification struct {
	Level      notify.Level `json:"level"`
	Message    string       `json:"message"`
	ReceivedAt time.Time    `json:"received_at"`
}

type Handler struct {
	logger *slog.Logger

	mu   sync.Mutex
	feed []Notification
}

func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{logger: logger}
}

func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", h.handleHealth)
	mux.HandleFunc("POST /notifications", h.handleReceive)
	mux.HandleFunc("GET /notifications", h.handleFeed)
	return mux
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleReceive(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Level   notify.Level `json:"level"`
		Message string       `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Message == "" {
		h.writeError(w, http.StatusBadRequest, "message is required")
		return
	}
	if req.Level != notify.LevelSuccess && req.Level != notify.LevelError {
		req.Level = notify.LevelSuccess
	}

	n := Notification{Level: req.Level, Message: req.Message, ReceivedAt: time.Now().UTC()}

	h.mu.Lock()
	h.feed = append(h.feed, n)
	if len(h.feed) > feedLimit {
		h.feed = h.feed[len(h.feed)-feedLimit:]
	}
	h.mu.Unlock()

	h.logger.Info("notification received", "level", n.Level, "message", n.Message)
	h.writeJSON(w, http.StatusCreated, n)
}

// handleFeed returns the feed newest first.
func (h *Handler) handleFeed(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	feed := make([]Notification, 0, len(h.feed))
	for i := len(h.feed) - 1; i >= 0; i-- {
		feed = append(feed, h.feed[i])
	}
	h.mu.Unlock()

	h.writeJSON(w, http.StatusOK, feed)
}

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
