package redeem

import (
	"context"
	"log/slog"
	"strings"

	"github.com/josejibin/ecommerce/internal/catalog"
	"github.com/josejibin/ecommerce/internal/domain"
)

// CatalogClient is the slice of the catalog API the offer service needs.
// *catalog.Client satisfies it; tests substitute a mock.
type CatalogClient interface {
	Products(ctx context.Context, query string, limit int) ([]catalog.Product, error)
	Provider(ctx context.Context, id string) (*catalog.Provider, error)
}

// Service assembles the offers presented on the redeem page for a voucher code.
type Service interface {
	GetOffers(ctx context.Context, code string) ([]domain.Offer, error)
}

// offerService implements Service.
type offerService struct {
	vouchers domain.VoucherRepository
	catalog  CatalogClient
	limit    int
}

// NewService creates an offer Service. limit bounds how many catalog records
// a single fetch may request; values below 1 fall back to 50.
func NewService(vouchers domain.VoucherRepository, catalogClient CatalogClient, limit int) Service {
	if limit < 1 {
		limit = 50
	}
	return &offerService{
		vouchers: vouchers,
		catalog:  catalogClient,
		limit:    limit,
	}
}

// GetOffers resolves code to a voucher, performs one bounded catalog fetch for
// the voucher's catalog query, and combines both into displayable offers.
// An unknown code yields NotFound; a catalog failure yields Unavailable; zero
// matching products yields an empty slice, which is a valid result.
func (s *offerService) GetOffers(ctx context.Context, code string) ([]domain.Offer, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "voucher code is required", nil)
	}

	voucher, err := s.vouchers.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	products, err := s.catalog.Products(ctx, voucher.CatalogQuery, s.limit)
	if err != nil {
		return nil, err
	}

	offers := make([]domain.Offer, 0, len(products))
	for _, p := range products {
		offers = append(offers, s.buildOffer(ctx, voucher, p))
	}

	return offers, nil
}

// buildOffer combines one catalog product with the voucher's benefit data.
// Credit-seat offers with a single provider are enriched with the provider's
// display name; a failed provider lookup is logged and the offer proceeds
// without provider details.
func (s *offerService) buildOffer(ctx context.Context, voucher *domain.Voucher, p catalog.Product) domain.Offer {
	offer := domain.Offer{
		ID:             p.Key,
		Title:          p.Title,
		Organization:   organizationFromKey(p.Key),
		StartDate:      p.Start,
		SeatType:       p.SeatType,
		Price:          p.Price,
		Currency:       p.Currency,
		BenefitType:    voucher.BenefitType,
		BenefitValue:   voucher.BenefitValue,
		VoucherEndDate: voucher.EndDatetime,
	}
	if p.Image != nil {
		offer.ImageURL = p.Image.Src
	}

	switch len(p.CreditProviders) {
	case 0:
		// Not a credit seat; nothing to enrich.
	case 1:
		providerID := p.CreditProviders[0]
		offer.CreditProvider = providerID
		price := p.Price
		offer.CreditProviderPrice = &price

		provider, err := s.catalog.Provider(ctx, providerID)
		if err != nil {
			slog.WarnContext(ctx, "failed to retrieve credit provider details",
				slog.String("provider_id", providerID),
				slog.Any("error", err),
			)
			break
		}
		if provider.DisplayName != "" {
			offer.CreditProvider = provider.DisplayName
		}
	default:
		// Multiple providers: the page shows a chooser instead of one price.
		offer.MultipleCreditProviders = true
		offer.CreditProviderPrice = nil
	}

	return offer
}

// organizationFromKey extracts the owning organization from a product key.
// Keys look like "course-v1:OrgX+CS101+2026" or "OrgX/CS101/2026"; the
// organization is the first segment. Unrecognized keys yield an empty string.
func organizationFromKey(key string) string {
	key = strings.TrimPrefix(key, "course-v1:")
	if idx := strings.IndexAny(key, "+/"); idx > 0 {
		return key[:idx]
	}
	return ""
}
