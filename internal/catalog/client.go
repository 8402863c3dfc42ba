// Package catalog provides a read-only HTTP client for the upstream product
// catalog service. The redeem flow uses it to resolve a voucher's catalog
// query into the product records an offer page is built from.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/josejibin/ecommerce/internal/domain"
)

// Image holds the display image of a catalog product.
type Image struct {
	Src string `json:"src"`
}

// Product is one record returned by the catalog search resource.
type Product struct {
	Key             string     `json:"key"`
	Title           string     `json:"title"`
	Start           *time.Time `json:"start"`
	Image           *Image     `json:"image"`
	SeatType        string     `json:"seat_type"`
	Price           float64    `json:"price"`
	Currency        string     `json:"currency"`
	CreditProviders []string   `json:"credit_providers"`
}

// Provider holds the public details of a credit provider.
type Provider struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// searchResponse is the catalog search envelope: a count, an opaque
// continuation URL, and the result records. Continuation is never followed;
// a single bounded request is all the redeem flow needs.
type searchResponse struct {
	Count   int       `json:"count"`
	Next    string    `json:"next"`
	Results []Product `json:"results"`
}

// Client calls the upstream catalog API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a catalog client for the given base URL.
// If httpClient is nil, http.DefaultClient is used.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

// Products performs one read-only search request scoped to query, bounded by
// limit. Transport failures and non-200 responses surface as Unavailable
// errors; an empty result list is a valid response, not an error.
func (c *Client) Products(ctx context.Context, query string, limit int) ([]Product, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("limit", strconv.Itoa(limit))
	endpoint := c.baseURL + "/api/v1/search/?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create catalog search request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, domain.NewAppError(domain.CodeUnavailable, "catalog request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewAppError(domain.CodeUnavailable,
			fmt.Sprintf("catalog returned status %d", resp.StatusCode), nil)
	}

	var data searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, domain.NewAppError(domain.CodeUnavailable, "decode catalog response", err)
	}

	return data.Results, nil
}

// Provider fetches the details of a single credit provider.
// A 404 maps to NotFound; transport failures and other statuses map to
// Unavailable.
func (c *Client) Provider(ctx context.Context, id string) (*Provider, error) {
	endpoint := c.baseURL + "/api/v1/providers/" + url.PathEscape(id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create provider request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, domain.NewAppError(domain.CodeUnavailable, "provider request failed", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decode
	case http.StatusNotFound:
		return nil, domain.ErrNotFound
	default:
		return nil, domain.NewAppError(domain.CodeUnavailable,
			fmt.Sprintf("provider endpoint returned status %d", resp.StatusCode), nil)
	}

	var p Provider
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, domain.NewAppError(domain.CodeUnavailable, "decode provider response", err)
	}
	return &p, nil
}
