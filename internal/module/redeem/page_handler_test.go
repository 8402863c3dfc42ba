package redeem

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/josejibin/ecommerce/internal/domain"
)

// --- mock offer service for handler tests ---

type mockOfferService struct {
	offers []domain.Offer
	// hook for error injection
	getErr error

	lastCode string
}

func (m *mockOfferService) GetOffers(_ context.Context, code string) ([]domain.Offer, error) {
	m.lastCode = code
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.offers, nil
}

// --- helper to set up gin test router with minimal templates ---

// setupPageTestRouter creates a gin engine for page handler testing.
// Template rendering is not verified here; we focus on status codes and the
// data passed to the template. For endpoints that call c.HTML, the router
// uses a stub HTML renderer.
func setupPageTestRouter(h *PageHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	// Stub templates so c.HTML() calls don't panic. The redeem stub echoes
	// the pagination state so tests can assert on it.
	tmpl := template.Must(template.New("").Parse(
		`{{define "coupon/redeem.html"}}redeem empty={{.Empty}} page={{.Page}}/{{.TotalPages}} offers={{len .Offers}} first={{.OnFirstPage}} last={{.OnLastPage}}{{end}}` +
			`{{define "errors/400.html"}}400{{end}}` +
			`{{define "errors/404.html"}}404{{end}}` +
			`{{define "errors/500.html"}}500{{end}}`,
	))
	r.SetHTMLTemplate(tmpl)

	r.GET("/coupons/redeem", h.RedeemPage)

	return r
}

func getRedeemPage(t *testing.T, r *gin.Engine, query string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/coupons/redeem"+query, nil)
	r.ServeHTTP(w, req)
	return w
}

// --- tests ---

func TestRedeemPage_Success(t *testing.T) {
	svc := &mockOfferService{offers: makeOffers(13)}
	r := setupPageTestRouter(NewPageHandler(svc))

	w := getRedeemPage(t, r, "?code=SUMMER25")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if svc.lastCode != "SUMMER25" {
		t.Errorf("service received code %q", svc.lastCode)
	}

	body := w.Body.String()
	for _, want := range []string{"empty=false", "page=1/3", "offers=6", "first=true", "last=false"} {
		if !strings.Contains(body, want) {
			t.Errorf("body %q missing %q", body, want)
		}
	}
}

func TestRedeemPage_SecondPage(t *testing.T) {
	svc := &mockOfferService{offers: makeOffers(13)}
	r := setupPageTestRouter(NewPageHandler(svc))

	w := getRedeemPage(t, r, "?code=SUMMER25&page=3")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	body := w.Body.String()
	for _, want := range []string{"page=3/3", "offers=1", "first=false", "last=true"} {
		if !strings.Contains(body, want) {
			t.Errorf("body %q missing %q", body, want)
		}
	}
}

func TestRedeemPage_EmptyState(t *testing.T) {
	svc := &mockOfferService{offers: []domain.Offer{}}
	r := setupPageTestRouter(NewPageHandler(svc))

	w := getRedeemPage(t, r, "?code=SUMMER25")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "empty=true") {
		t.Errorf("body %q should report the empty state", w.Body.String())
	}
}

func TestRedeemPage_Errors(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		getErr   error
		wantCode int
		wantBody string
	}{
		{"missing code", "", nil, http.StatusBadRequest, "400"},
		{"blank code", "?code=%20%20", nil, http.StatusBadRequest, "400"},
		{"unknown code", "?code=NOPE", domain.ErrNotFound, http.StatusNotFound, "404"},
		{
			"catalog unavailable", "?code=SUMMER25",
			domain.NewAppError(domain.CodeUnavailable, "catalog request failed", nil),
			http.StatusBadRequest, "400",
		},
		{
			"internal error", "?code=SUMMER25",
			domain.NewAppError(domain.CodeInternal, "database error", nil),
			http.StatusInternalServerError, "500",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockOfferService{getErr: tt.getErr}
			r := setupPageTestRouter(NewPageHandler(svc))

			w := getRedeemPage(t, r, tt.query)
			if w.Code != tt.wantCode {
				t.Fatalf("expected status %d, got %d", tt.wantCode, w.Code)
			}
			if !strings.Contains(w.Body.String(), tt.wantBody) {
				t.Errorf("body %q missing %q", w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestRedeemPage_PageParameter(t *testing.T) {
	tests := []struct {
		name     string
		page     string
		wantPage int
	}{
		{"default", "", 1},
		{"explicit", "2", 2},
		{"zero falls back", "0", 1},
		{"negative falls back", "-3", 1},
		{"garbage falls back", "abc", 1},
		{"out of range moves the cursor", "9", 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockOfferService{offers: makeOffers(13)}
			r := setupPageTestRouter(NewPageHandler(svc))

			query := "?code=SUMMER25"
			if tt.page != "" {
				query += "&page=" + tt.page
			}
			w := getRedeemPage(t, r, query)
			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", w.Code)
			}
			if want := fmt.Sprintf("page=%d/3", tt.wantPage); !strings.Contains(w.Body.String(), want) {
				t.Errorf("body %q missing %q", w.Body.String(), want)
			}
		})
	}
}
