package redeem

import (
	"github.com/gin-gonic/gin"

	"github.com/josejibin/ecommerce/internal/domain"
	"github.com/josejibin/ecommerce/internal/pkg"
)

// OffersResponse is the payload of the voucher offers endpoint.
type OffersResponse struct {
	Count   int            `json:"count"`
	Results []domain.Offer `json:"results"`
}

// OffersHandler handles REST API requests for voucher offers.
type OffersHandler struct {
	svc Service
}

// NewOffersHandler creates a new OffersHandler with the given service.
func NewOffersHandler(svc Service) *OffersHandler {
	return &OffersHandler{svc: svc}
}

// Offers handles GET /api/v1/offers?code=X.
//
// A blank code, an unknown code, and an upstream catalog failure all answer
// 400 Bad Request; a code whose catalog query matches nothing answers 200
// with an empty results array.
func (h *OffersHandler) Offers(c *gin.Context) {
	code := c.Query("code")

	offers, err := h.svc.GetOffers(c.Request.Context(), code)
	if err != nil {
		// A code with no voucher behind it is a bad request on this
		// endpoint, not a missing resource.
		if domain.IsNotFound(err) {
			err = domain.NewAppError(domain.CodeValidation, "no voucher available for code", err)
		}
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, OffersResponse{
		Count:   len(offers),
		Results: offers,
	})
}
