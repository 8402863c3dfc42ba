package domain

import "time"

// Offer is one redeemable product presented on the voucher redeem page.
// Offers are assembled on demand from the voucher's benefit data and the
// upstream catalog; they are never persisted.
type Offer struct {
	ID                      string     `json:"id"`
	Title                   string     `json:"title"`
	Organization            string     `json:"organization"`
	ImageURL                string     `json:"image_url"`
	StartDate               *time.Time `json:"start_date"`
	SeatType                string     `json:"seat_type"`
	Price                   float64    `json:"price"`
	Currency                string     `json:"currency"`
	BenefitType             string     `json:"benefit_type"`
	BenefitValue            float64    `json:"benefit_value"`
	CreditProvider          string     `json:"credit_provider,omitempty"`
	CreditProviderPrice     *float64   `json:"credit_provider_price"`
	MultipleCreditProviders bool       `json:"multiple_credit_providers"`
	VoucherEndDate          time.Time  `json:"voucher_end_date"`
}
