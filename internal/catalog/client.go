// Package catalog resolves reference data — suppliers, customers, supply
// items and products — from the catalog service. The console treats these as
// read-only and refreshes them once per session load.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ordena-app/ordena/internal/domain"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

func (c *Client) ListSuppliers(ctx context.Context) ([]domain.CatalogEntry, error) {
	return c.list(ctx, "/suppliers", "list suppliers")
}

func (c *Client) ListCustomers(ctx context.Context) ([]domain.CatalogEntry, error) {
	return c.list(ctx, "/customers", "list customers")
}

func (c *Client) ListSupplyItems(ctx context.Context) ([]domain.CatalogEntry, error) {
	return c.list(ctx, "/supplies", "list supply items")
}

// ListActiveProducts returns only products currently offered for sale; the
// catalog service applies the active filter itself.
func (c *Client) ListActiveProducts(ctx context.Context) ([]domain.CatalogEntry, error) {
	return c.list(ctx, "/products/active", "list active products")
}

// LoadDirectory fetches every reference collection for one session.
func (c *Client) LoadDirectory(ctx context.Context) (*Directory, error) {
	suppliers, err := c.ListSuppliers(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := c.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	supplies, err := c.ListSupplyItems(ctx)
	if err != nil {
		return nil, err
	}
	products, err := c.ListActiveProducts(ctx)
	if err != nil {
		return nil, err
	}
	return NewDirectory(suppliers, customers, supplies, products), nil
}

func (c *Client) list(ctx context.Context, path, op string) ([]domain.CatalogEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: create request: %w", op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.BackendError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.BackendError{Op: op, Status: resp.StatusCode}
	}

	var entries []domain.CatalogEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, &domain.BackendError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return entries, nil
}
