package voucher

import (
	"context"
	"strings"

	"github.com/josejibin/ecommerce/internal/domain"
)

// voucherService implements domain.VoucherService.
type voucherService struct {
	repo domain.VoucherRepository
}

// NewVoucherService creates a new VoucherService with the given repository.
func NewVoucherService(repo domain.VoucherRepository) domain.VoucherService {
	return &voucherService{repo: repo}
}

// CreateVoucher validates input, builds a Voucher, and persists it via the repository.
func (s *voucherService) CreateVoucher(ctx context.Context, input domain.VoucherInput) (*domain.Voucher, error) {
	normalizeInput(&input)

	if err := validateInput(input); err != nil {
		return nil, err
	}

	voucher := &domain.Voucher{
		Code:          input.Code,
		Name:          input.Name,
		BenefitType:   input.BenefitType,
		BenefitValue:  input.BenefitValue,
		CatalogQuery:  input.CatalogQuery,
		StartDatetime: input.StartDatetime,
		EndDatetime:   input.EndDatetime,
	}

	if err := s.repo.Create(ctx, voucher); err != nil {
		return nil, err
	}

	return voucher, nil
}

// GetVoucher retrieves a voucher by ID.
func (s *voucherService) GetVoucher(ctx context.Context, id uint) (*domain.Voucher, error) {
	return s.repo.GetByID(ctx, id)
}

// ListVouchers returns a paginated list of vouchers.
func (s *voucherService) ListVouchers(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Voucher], error) {
	return s.repo.List(ctx, req)
}

// UpdateVoucher loads the existing voucher, applies changes, and persists them.
func (s *voucherService) UpdateVoucher(ctx context.Context, id uint, input domain.VoucherInput) (*domain.Voucher, error) {
	normalizeInput(&input)

	if err := validateInput(input); err != nil {
		return nil, err
	}

	voucher, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	voucher.Code = input.Code
	voucher.Name = input.Name
	voucher.BenefitType = input.BenefitType
	voucher.BenefitValue = input.BenefitValue
	voucher.CatalogQuery = input.CatalogQuery
	voucher.StartDatetime = input.StartDatetime
	voucher.EndDatetime = input.EndDatetime

	if err := s.repo.Update(ctx, voucher); err != nil {
		return nil, err
	}

	return voucher, nil
}

// DeleteVoucher removes a voucher by ID.
func (s *voucherService) DeleteVoucher(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// normalizeInput trims free-text fields and canonicalizes the code.
// Codes are stored uppercase so lookups at redeem time are case-insensitive.
func normalizeInput(input *domain.VoucherInput) {
	input.Code = strings.ToUpper(strings.TrimSpace(input.Code))
	input.Name = strings.TrimSpace(input.Name)
	input.CatalogQuery = strings.TrimSpace(input.CatalogQuery)
}

// validateInput checks field-level and cross-field constraints.
func validateInput(input domain.VoucherInput) error {
	if input.Code == "" {
		return domain.NewAppError(domain.CodeValidation, "code is required", nil)
	}
	if strings.ContainsAny(input.Code, " \t") {
		return domain.NewAppError(domain.CodeValidation, "code must not contain whitespace", nil)
	}
	if input.Name == "" {
		return domain.NewAppError(domain.CodeValidation, "name is required", nil)
	}

	switch input.BenefitType {
	case domain.BenefitPercentage:
		if input.BenefitValue <= 0 || input.BenefitValue > 100 {
			return domain.NewAppError(domain.CodeValidation, "percentage benefit value must be between 0 and 100", nil)
		}
	case domain.BenefitAbsolute:
		if input.BenefitValue <= 0 {
			return domain.NewAppError(domain.CodeValidation, "absolute benefit value must be greater than 0", nil)
		}
	default:
		return domain.NewAppError(domain.CodeValidation, "benefit type must be Percentage or Absolute", nil)
	}

	if input.StartDatetime.IsZero() || input.EndDatetime.IsZero() {
		return domain.NewAppError(domain.CodeValidation, "start and end datetimes are required", nil)
	}
	if !input.EndDatetime.After(input.StartDatetime) {
		return domain.NewAppError(domain.CodeValidation, "end datetime must be after start datetime", nil)
	}

	return nil
}
