package domain

import (
	"context"
	"time"
)

// Benefit types a voucher can carry.
const (
	BenefitPercentage = "Percentage"
	BenefitAbsolute   = "Absolute"
)

// Voucher represents a redeemable discount code sold or distributed by the
// store. The catalog query scopes which products the voucher applies to.
type Voucher struct {
	BaseModel
	Code          string    `gorm:"size:128;uniqueIndex;not null" json:"code"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	BenefitType   string    `gorm:"size:32;not null" json:"benefit_type"`
	BenefitValue  float64   `gorm:"not null" json:"benefit_value"`
	CatalogQuery  string    `gorm:"size:255" json:"catalog_query"`
	StartDatetime time.Time `json:"start_datetime"`
	EndDatetime   time.Time `json:"end_datetime"`
}

// VoucherRepository defines the data access interface for vouchers.
type VoucherRepository interface {
	Create(ctx context.Context, voucher *Voucher) error
	GetByID(ctx context.Context, id uint) (*Voucher, error)
	GetByCode(ctx context.Context, code string) (*Voucher, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Voucher], error)
	Update(ctx context.Context, voucher *Voucher) error
	Delete(ctx context.Context, id uint) error
}

// VoucherService defines the business logic interface for vouchers.
type VoucherService interface {
	CreateVoucher(ctx context.Context, input VoucherInput) (*Voucher, error)
	GetVoucher(ctx context.Context, id uint) (*Voucher, error)
	ListVouchers(ctx context.Context, req PageRequest) (*PageResult[Voucher], error)
	UpdateVoucher(ctx context.Context, id uint, input VoucherInput) (*Voucher, error)
	DeleteVoucher(ctx context.Context, id uint) error
}

// VoucherInput carries the writable voucher fields through the service layer.
type VoucherInput struct {
	Code          string
	Name          string
	BenefitType   string
	BenefitValue  float64
	CatalogQuery  string
	StartDatetime time.Time
	EndDatetime   time.Time
}
