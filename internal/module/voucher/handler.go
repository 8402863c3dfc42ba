package voucher

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/josejibin/ecommerce/internal/domain"
	"github.com/josejibin/ecommerce/internal/pkg"
)

// VoucherHandler handles REST API requests for the voucher resource.
type VoucherHandler struct {
	svc domain.VoucherService
}

// NewVoucherHandler creates a new VoucherHandler with the given service.
func NewVoucherHandler(svc domain.VoucherService) *VoucherHandler {
	return &VoucherHandler{svc: svc}
}

// Create handles POST /api/v1/vouchers.
func (h *VoucherHandler) Create(c *gin.Context) {
	var req CreateVoucherRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	voucher, err := h.svc.CreateVoucher(c.Request.Context(), domain.VoucherInput{
		Code:          req.Code,
		Name:          req.Name,
		BenefitType:   req.BenefitType,
		BenefitValue:  req.BenefitValue,
		CatalogQuery:  req.CatalogQuery,
		StartDatetime: req.StartDatetime,
		EndDatetime:   req.EndDatetime,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    voucher,
	})
}

// Get handles GET /api/v1/vouchers/:id.
func (h *VoucherHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	voucher, err := h.svc.GetVoucher(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, voucher)
}

// List handles GET /api/v1/vouchers.
// Supports ?code=X filtering alongside the standard pagination parameters.
func (h *VoucherHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.ListVouchers(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /api/v1/vouchers/:id.
func (h *VoucherHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req UpdateVoucherRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	voucher, err := h.svc.UpdateVoucher(c.Request.Context(), id, domain.VoucherInput{
		Code:          req.Code,
		Name:          req.Name,
		BenefitType:   req.BenefitType,
		BenefitValue:  req.BenefitValue,
		CatalogQuery:  req.CatalogQuery,
		StartDatetime: req.StartDatetime,
		EndDatetime:   req.EndDatetime,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, voucher)
}

// Delete handles DELETE /api/v1/vouchers/:id.
func (h *VoucherHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.DeleteVoucher(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}

// parseID extracts and validates the "id" URL parameter.
func parseID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id: %s", idStr)
	}
	if id > uint64(^uint(0)) {
		return 0, fmt.Errorf("invalid id: %s", idStr)
	}
	return uint(id), nil
}
