package redeem

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/josejibin/ecommerce/internal/domain"
	"github.com/josejibin/ecommerce/internal/middleware"
)

// PageHandler renders the voucher redeem page.
type PageHandler struct {
	svc Service
}

// NewPageHandler creates a new PageHandler with the given service.
func NewPageHandler(svc Service) *PageHandler {
	return &PageHandler{svc: svc}
}

// RedeemPage renders the redeem page for a voucher code.
// GET /coupons/redeem?code=X&page=N
//
// The offer batch is fetched in full before rendering so the template knows
// the empty/non-empty state at first paint; the page parameter then selects
// one in-memory slice of that batch.
func (h *PageHandler) RedeemPage(c *gin.Context) {
	code := strings.TrimSpace(c.Query("code"))
	if code == "" {
		c.HTML(http.StatusBadRequest, "errors/400.html", gin.H{})
		return
	}

	offers, err := h.svc.GetOffers(c.Request.Context(), code)
	if err != nil {
		switch {
		case domain.IsNotFound(err):
			c.HTML(http.StatusNotFound, "errors/404.html", gin.H{})
		case domain.IsValidation(err), domain.IsUnavailable(err):
			c.HTML(http.StatusBadRequest, "errors/400.html", gin.H{})
		default:
			c.HTML(http.StatusInternalServerError, "errors/500.html", gin.H{})
		}
		return
	}

	store := NewOfferStore()
	store.Load(offers)

	page := parsePage(c)
	items := store.GoToPage(page)

	c.HTML(http.StatusOK, "coupon/redeem.html", gin.H{
		"Code":        code,
		"Offers":      items,
		"Empty":       store.Empty(),
		"Page":        store.Page(),
		"TotalPages":  store.NumberOfPages(),
		"OnFirstPage": store.OnFirstPage(),
		"OnLastPage":  store.OnLastPage(),
		"TotalOffers": store.Len(),
		"BaseURL":     "/coupons/redeem",
		"CSRFToken":   middleware.GetCSRFToken(c),
	})
}

// parsePage extracts the "page" query parameter, defaulting to 1.
// Values below 1 fall back to 1; anything past the last page is left to the
// store's permissive slicing.
func parsePage(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
