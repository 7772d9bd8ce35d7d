// Package backend is the HTTP client for the persistence service that owns
// all purchase and order records. The console never talks to a database; it
// submits canonical documents here and renders what comes back.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/ordena-app/ordena/internal/domain"
)

type Client struct {
	baseURL    string
	httpClient *http.Client

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		inFlight:   make(map[string]struct{}),
	}
}

// OrderFilter narrows ListOrders; zero values mean no filter.
type OrderFilter struct {
	DeliveryDate string
	Paid         *bool
}

func (c *Client) ListPurchases(ctx context.Context) ([]domain.Purchase, error) {
	var purchases []domain.Purchase
	if err := c.do(ctx, http.MethodGet, "/purchases", nil, &purchases, "list purchases"); err != nil {
		return nil, err
	}
	return purchases, nil
}

// CreatePurchase submits a canonical purchase. draftID guards against a
// double submit of the same draft while the first request is outstanding.
func (c *Client) CreatePurchase(ctx context.Context, draftID string, p domain.Purchase) (*domain.Purchase, error) {
	if err := c.begin(draftID); err != nil {
		return nil, err
	}
	defer c.end(draftID)

	var created domain.Purchase
	if err := c.do(ctx, http.MethodPost, "/purchases", p, &created, "create purchase"); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) ListOrders(ctx context.Context, filter *OrderFilter) ([]domain.CustomerOrder, error) {
	path := "/orders"
	if filter != nil {
		q := url.Values{}
		if filter.DeliveryDate != "" {
			q.Set("delivery_date", filter.DeliveryDate)
		}
		if filter.Paid != nil {
			q.Set("paid", strconv.FormatBool(*filter.Paid))
		}
		if len(q) > 0 {
			path += "?" + q.Encode()
		}
	}

	var orders []domain.CustomerOrder
	if err := c.do(ctx, http.MethodGet, path, nil, &orders, "list orders"); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) CreateOrder(ctx context.Context, draftID string, o domain.CustomerOrder) (*domain.CustomerOrder, error) {
	if err := c.begin(draftID); err != nil {
		return nil, err
	}
	defer c.end(draftID)

	var created domain.CustomerOrder
	if err := c.do(ctx, http.MethodPost, "/orders", o, &created, "create order"); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateOrder(ctx context.Context, draftID string, id int, o domain.CustomerOrder) (*domain.CustomerOrder, error) {
	if err := c.begin(draftID); err != nil {
		return nil, err
	}
	defer c.end(draftID)

	var updated domain.CustomerOrder
	path := fmt.Sprintf("/orders/%d", id)
	if err := c.do(ctx, http.MethodPut, path, o, &updated, "update order"); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteOrder(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/orders/%d", id), nil, nil, "delete order")
}

func (c *Client) UpdateOrderStatus(ctx context.Context, orderNumber string, status domain.OrderStatus) (*domain.CustomerOrder, error) {
	body := map[string]domain.OrderStatus{"status": status}
	var updated domain.CustomerOrder
	path := "/orders/" + url.PathEscape(orderNumber) + "/status"
	if err := c.do(ctx, http.MethodPut, path, body, &updated, "update order status"); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) SetPurchaseActive(ctx context.Context, id int, active bool) error {
	body := map[string]bool{"active": active}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/purchases/%d/active", id), body, nil, "set purchase active")
}

func (c *Client) SetOrderActive(ctx context.Context, id int, active bool) error {
	body := map[string]bool{"active": active}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/orders/%d/active", id), body, nil, "set order active")
}

func (c *Client) begin(draftID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, busy := c.inFlight[draftID]; busy {
		return domain.ErrSubmissionInFlight
	}
	c.inFlight[draftID] = struct{}{}
	return nil
}

func (c *Client) end(draftID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inFlight, draftID)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, op string) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: marshal request: %w", op, err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.BackendError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &domain.BackendError{Op: op, Status: resp.StatusCode}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &domain.BackendError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
		}
	}
	return nil
}
