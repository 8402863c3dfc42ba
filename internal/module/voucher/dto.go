package voucher

import "time"

// CreateVoucherRequest represents the input for creating a new voucher.
// Datetimes are RFC 3339.
type CreateVoucherRequest struct {
	Code          string    `json:"code" form:"code" binding:"required,min=1,max=128"`
	Name          string    `json:"name" form:"name" binding:"required,min=1,max=255"`
	BenefitType   string    `json:"benefit_type" form:"benefit_type" binding:"required,oneof=Percentage Absolute"`
	BenefitValue  float64   `json:"benefit_value" form:"benefit_value" binding:"required,gt=0"`
	CatalogQuery  string    `json:"catalog_query" form:"catalog_query" binding:"max=255"`
	StartDatetime time.Time `json:"start_datetime" form:"start_datetime" binding:"required"`
	EndDatetime   time.Time `json:"end_datetime" form:"end_datetime" binding:"required"`
}

// UpdateVoucherRequest represents the input for updating an existing voucher.
type UpdateVoucherRequest struct {
	Code          string    `json:"code" form:"code" binding:"required,min=1,max=128"`
	Name          string    `json:"name" form:"name" binding:"required,min=1,max=255"`
	BenefitType   string    `json:"benefit_type" form:"benefit_type" binding:"required,oneof=Percentage Absolute"`
	BenefitValue  float64   `json:"benefit_value" form:"benefit_value" binding:"required,gt=0"`
	CatalogQuery  string    `json:"catalog_query" form:"catalog_query" binding:"max=255"`
	StartDatetime time.Time `json:"start_datetime" form:"start_datetime" binding:"required"`
	EndDatetime   time.Time `json:"end_datetime" form:"end_datetime" binding:"required"`
}
