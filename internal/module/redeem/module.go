package redeem

import "github.com/gin-gonic/gin"

// RedeemModule implements the app.Module interface for the redeem flow.
type RedeemModule struct {
	handler     *OffersHandler
	pageHandler *PageHandler
}

// NewModule creates a new RedeemModule with the given handlers.
// Panics if h or ph is nil.
func NewModule(h *OffersHandler, ph *PageHandler) *RedeemModule {
	if h == nil {
		panic("redeem.NewModule: handler must not be nil")
	}
	if ph == nil {
		panic("redeem.NewModule: pageHandler must not be nil")
	}
	return &RedeemModule{handler: h, pageHandler: ph}
}

// RegisterRoutes registers the offers API and the redeem page.
func (m *RedeemModule) RegisterRoutes(api *gin.RouterGroup, pages *gin.RouterGroup) {
	// API routes
	// Kept off the /vouchers subtree: gin's router cannot mix a static
	// "offers" segment with the voucher module's "/vouchers/:id" wildcard.
	api.GET("/offers", m.handler.Offers)

	// Page routes
	pages.GET("/coupons/redeem", m.pageHandler.RedeemPage)
}
