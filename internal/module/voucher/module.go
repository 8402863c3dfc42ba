// Package voucher provides management of discount voucher codes: the
// persistence layer, validation rules and the REST API used to create,
// list, update and delete vouchers.
package voucher

import (
	"github.com/gin-gonic/gin"

	"github.com/josejibin/ecommerce/internal/domain"
)

// VoucherModule bundles the voucher handlers and registers their routes.
type VoucherModule struct {
	handler *VoucherHandler
}

// NewModule creates a voucher module from its service.
func NewModule(svc domain.VoucherService) *VoucherModule {
	if svc == nil {
		panic("voucher: service is nil")
	}
	return &VoucherModule{handler: NewVoucherHandler(svc)}
}

// RegisterRoutes mounts the voucher API routes.
func (m *VoucherModule) RegisterRoutes(api, pages *gin.RouterGroup) {
	vouchers := api.Group("/vouchers")
	{
		vouchers.POST("", m.handler.Create)
		vouchers.GET("", m.handler.List)
		vouchers.GET("/:id", m.handler.Get)
		vouchers.PUT("/:id", m.handler.Update)
		vouchers.DELETE("/:id", m.handler.Delete)
	}
}
