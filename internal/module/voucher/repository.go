package voucher

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/josejibin/ecommerce/internal/domain"
	"github.com/josejibin/ecommerce/internal/pkg"
)

// Allowed fields for sorting and filtering in List queries.
var (
	allowedSortFields   = []string{"id", "code", "name", "benefit_type", "created_at", "updated_at"}
	allowedFilterFields = []string{"code", "name", "benefit_type"}
)

// voucherRepository implements domain.VoucherRepository using GORM.
type voucherRepository struct {
	db *gorm.DB
}

// NewVoucherRepository creates a new VoucherRepository backed by the given GORM database.
func NewVoucherRepository(db *gorm.DB) domain.VoucherRepository {
	return &voucherRepository{db: db}
}

// Create inserts a new voucher into the database.
func (r *voucherRepository) Create(ctx context.Context, voucher *domain.Voucher) error {
	if err := r.db.WithContext(ctx).Create(voucher).Error; err != nil {
		return mapError(err)
	}
	return nil
}

// GetByID retrieves a voucher by its primary key.
func (r *voucherRepository) GetByID(ctx context.Context, id uint) (*domain.Voucher, error) {
	var voucher domain.Voucher
	if err := r.db.WithContext(ctx).First(&voucher, id).Error; err != nil {
		return nil, mapError(err)
	}
	return &voucher, nil
}

// GetByCode retrieves a voucher by its code. Codes are stored uppercase;
// the lookup canonicalizes its argument the same way.
func (r *voucherRepository) GetByCode(ctx context.Context, code string) (*domain.Voucher, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	var voucher domain.Voucher
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&voucher).Error; err != nil {
		return nil, mapError(err)
	}
	return &voucher, nil
}

// List returns a paginated, sorted, and filtered list of vouchers.
func (r *voucherRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Voucher], error) {
	var total int64
	base := r.db.WithContext(ctx).Model(&domain.Voucher{}).
		Scopes(pkg.Filter(req, allowedFilterFields))

	if err := base.Count(&total).Error; err != nil {
		return nil, mapError(err)
	}

	var vouchers []domain.Voucher
	if err := base.Scopes(
		pkg.Paginate(req),
		pkg.Sort(req, allowedSortFields),
	).Find(&vouchers).Error; err != nil {
		return nil, mapError(err)
	}

	return pkg.NewPageResult(vouchers, total, req), nil
}

// Update saves changes to an existing voucher.
func (r *voucherRepository) Update(ctx context.Context, voucher *domain.Voucher) error {
	if err := r.db.WithContext(ctx).Save(voucher).Error; err != nil {
		return mapError(err)
	}
	return nil
}

// Delete removes a voucher by ID.
func (r *voucherRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Voucher{}, id)
	if result.Error != nil {
		return mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// mapError converts GORM errors to domain errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyError(err) {
		return domain.NewAppError(domain.CodeAlreadyExists, "voucher code already exists", err)
	}
	return domain.NewAppError(domain.CodeInternal, "database error", err)
}

// isDuplicateKeyError detects unique constraint violations by examining the
// error message. This is needed because not all GORM dialectors translate
// driver-level errors to gorm.ErrDuplicatedKey (e.g. the pure-Go SQLite driver).
func isDuplicateKeyError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}
