package app

import "github.com/gin-gonic/gin"

// Module is a self-registering storefront feature, such as voucher
// administration or the redeem flow. API routes land under the JSON
// /api/v1 group; page routes land under the CSRF-protected HTML group.
type Module interface {
	RegisterRoutes(api *gin.RouterGroup, pages *gin.RouterGroup)
}
