package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/josejibin/ecommerce/internal/domain"
)

func TestProducts(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/v1/search/" {
				t.Errorf("unexpected path %q", r.URL.Path)
			}
			if got := r.URL.Query().Get("q"); got != "org:OrgX" {
				t.Errorf("q = %q, want org:OrgX", got)
			}
			if got := r.URL.Query().Get("limit"); got != "50" {
				t.Errorf("limit = %q, want 50", got)
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"count": 2,
				"next": null,
				"results": [
					{"key": "course-v1:OrgX+CS101+2026", "title": "Intro", "seat_type": "verified", "price": 100, "currency": "USD"},
					{"key": "course-v1:OrgX+CS102+2026", "title": "Advanced", "seat_type": "credit", "price": 200, "currency": "USD", "credit_providers": ["acme"]}
				]
			}`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, srv.Client())
		products, err := c.Products(context.Background(), "org:OrgX", 50)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(products) != 2 {
			t.Fatalf("len = %d, want 2", len(products))
		}
		if products[0].Key != "course-v1:OrgX+CS101+2026" {
			t.Errorf("key = %q", products[0].Key)
		}
		if len(products[1].CreditProviders) != 1 || products[1].CreditProviders[0] != "acme" {
			t.Errorf("credit providers = %v", products[1].CreditProviders)
		}
	})

	t.Run("empty result is not an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"count": 0, "next": null, "results": []}`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, srv.Client())
		products, err := c.Products(context.Background(), "org:Nothing", 50)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(products) != 0 {
			t.Errorf("len = %d, want 0", len(products))
		}
	})

	t.Run("non-200 status is unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := NewClient(srv.URL, srv.Client())
		_, err := c.Products(context.Background(), "org:OrgX", 50)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !domain.IsUnavailable(err) {
			t.Errorf("expected unavailable error, got %v", err)
		}
	})

	t.Run("transport failure is unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // close immediately to force a connection error

		c := NewClient(srv.URL, nil)
		_, err := c.Products(context.Background(), "org:OrgX", 50)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !domain.IsUnavailable(err) {
			t.Errorf("expected unavailable error, got %v", err)
		}
	})

	t.Run("malformed body is unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, srv.Client())
		_, err := c.Products(context.Background(), "org:OrgX", 50)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !domain.IsUnavailable(err) {
			t.Errorf("expected unavailable error, got %v", err)
		}
	})
}

func TestProvider(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/v1/providers/acme" {
				t.Errorf("unexpected path %q", r.URL.Path)
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id": "acme", "display_name": "Acme University"}`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, srv.Client())
		p, err := c.Provider(context.Background(), "acme")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.DisplayName != "Acme University" {
			t.Errorf("display name = %q", p.DisplayName)
		}
	})

	t.Run("404 maps to not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		c := NewClient(srv.URL, srv.Client())
		_, err := c.Provider(context.Background(), "ghost")
		if !domain.IsNotFound(err) {
			t.Errorf("expected not found error, got %v", err)
		}
	})

	t.Run("other status is unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		c := NewClient(srv.URL, srv.Client())
		_, err := c.Provider(context.Background(), "acme")
		if !domain.IsUnavailable(err) {
			t.Errorf("expected unavailable error, got %v", err)
		}
	})
}
