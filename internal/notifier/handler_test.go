package notifier

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newHandler() *Handler {
	return NewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHandler_Notifications(t *testing.T) {
	t.Run("stores and returns notifications newest first", func(t *testing.T) {
		h := newHandler()
		mux := h.Routes()

		for _, msg := range []string{"first", "second", "third"} {
			rec := httptest.NewRecorder()
			body := `{"level":"success","message":"` + msg + `"}`
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/notifications", strings.NewReader(body)))
			if rec.Code != http.StatusCreated {
				t.Fatalf("expected status 201, got %d", rec.Code)
			}
		}

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/notifications", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}

		var feed []Notification
		if err := json.Unmarshal(rec.Body.Bytes(), &feed); err != nil {
			t.Fatalf("failed to decode feed: %v", err)
		}
		if len(feed) != 3 {
			t.Fatalf("expected 3 notifications, got %d", len(feed))
		}
		if feed[0].Message != "third" {
			t.Errorf("expected newest first, got %s", feed[0].Message)
		}
	})

	t.Run("rejects an empty message", func(t *testing.T) {
		h := newHandler()
		rec := httptest.NewRecorder()
		h.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/notifications", strings.NewReader(`{"level":"success"}`)))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", rec.Code)
		}
	})

	t.Run("defaults an unknown level to success", func(t *testing.T) {
		h := newHandler()
		rec := httptest.NewRecorder()
		h.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/notifications", strings.NewReader(`{"level":"warning","message":"hi"}`)))
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected status 201, got %d", rec.Code)
		}
		var n Notification
		if err := json.Unmarshal(rec.Body.Bytes(), &n); err != nil {
			t.Fatalf("failed to decode notification: %v", err)
		}
		if string(n.Level) != "success" {
			t.Errorf("expected success level, got %s", n.Level)
		}
	})

	t.Run("caps the feed length", func(t *testing.T) {
		h := newHandler()
		mux := h.Routes()
		for range 60 {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/notifications", strings.NewReader(`{"level":"success","message":"x"}`)))
			if rec.Code != http.StatusCreated {
				t.Fatalf("expected status 201, got %d", rec.Code)
			}
		}

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/notifications", nil))
		var feed []Notification
		if err := json.Unmarshal(rec.Body.Bytes(), &feed); err != nil {
			t.Fatalf("failed to decode feed: %v", err)
		}
		if len(feed) != 50 {
			t.Errorf("expected feed capped at 50, got %d", len(feed))
		}
	})
}
