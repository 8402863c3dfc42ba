package redeem

import (
	"math"

	"github.com/josejibin/ecommerce/internal/domain"
)

// offersPerPage is the fixed number of offers shown per redeem page.
const offersPerPage = 6

// OfferStore holds one fetched batch of offers and a 1-based page cursor over
// it. The whole result set is fetched once (bounded at fetch time) and paged
// in memory; the store never goes back to the network.
//
// An OfferStore is owned by the single request that created it and is not
// safe for concurrent use.
type OfferStore struct {
	records       []domain.Offer
	page          int
	perPage       int
	lowerLimit    int
	upperLimit    int
	numberOfPages int
	empty         bool
}

// NewOfferStore creates an empty store positioned on page 1.
func NewOfferStore() *OfferStore {
	s := &OfferStore{perPage: offersPerPage, page: 1}
	s.setLimits()
	return s
}

// Load replaces the stored offers with records, marks the empty state, and
// recomputes the page count. The cursor resets to page 1. A zero-length batch
// is a valid, representable state, not a failure.
func (s *OfferStore) Load(records []domain.Offer) {
	s.records = records
	s.empty = len(records) == 0
	s.numberOfPages = int(math.Ceil(float64(len(records)) / float64(s.perPage)))
	s.page = 1
	s.setLimits()
}

// GoToPage moves the cursor to page n and returns that page's offers.
// No bounds validation is performed: an out-of-range n moves the cursor and
// yields an empty slice. The last in-range page may hold fewer than perPage
// offers.
func (s *OfferStore) GoToPage(n int) []domain.Offer {
	s.page = n
	s.setLimits()
	return s.slice()
}

// NextPage advances to the following page and returns it. When the cursor is
// already on or past the last page it reports false and leaves the cursor
// unchanged. An empty batch has zero pages, so the cursor (page 1) never
// advances.
func (s *OfferStore) NextPage() ([]domain.Offer, bool) {
	if s.page >= s.numberOfPages {
		return nil, false
	}
	return s.GoToPage(s.page + 1), true
}

// PreviousPage moves back one page and returns it. When the cursor is already
// on the first page it reports false and leaves the cursor unchanged.
func (s *OfferStore) PreviousPage() ([]domain.Offer, bool) {
	if s.page == 1 {
		return nil, false
	}
	return s.GoToPage(s.page - 1), true
}

// OnFirstPage reports whether the cursor is on page 1.
func (s *OfferStore) OnFirstPage() bool {
	return s.page == 1
}

// OnLastPage reports whether the cursor is on the final page.
func (s *OfferStore) OnLastPage() bool {
	return s.page == s.numberOfPages
}

// Page returns the current 1-based page number.
func (s *OfferStore) Page() int {
	return s.page
}

// NumberOfPages returns the total page count for the loaded batch.
func (s *OfferStore) NumberOfPages() int {
	return s.numberOfPages
}

// PerPage returns the fixed page size.
func (s *OfferStore) PerPage() int {
	return s.perPage
}

// Empty reports whether the last Load carried zero offers.
func (s *OfferStore) Empty() bool {
	return s.empty
}

// Len returns the total number of loaded offers.
func (s *OfferStore) Len() int {
	return len(s.records)
}

// setLimits derives the slice bounds from the current page.
func (s *OfferStore) setLimits() {
	s.lowerLimit = (s.page - 1) * s.perPage
	s.upperLimit = s.page * s.perPage
}

// slice returns records[lowerLimit:upperLimit] clipped to the record bounds.
// The result is never nil so callers can range over it directly.
func (s *OfferStore) slice() []domain.Offer {
	lo := s.lowerLimit
	hi := s.upperLimit
	if lo < 0 {
		lo = 0
	}
	if hi > len(s.records) {
		hi = len(s.records)
	}
	if lo >= hi {
		return []domain.Offer{}
	}
	return s.records[lo:hi]
}
