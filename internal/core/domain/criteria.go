package domain

import "fmt"

// SortOrder selects the ordering of filter results.
type SortOrder string

// Available sort orders. SortDefault preserves snapshot insertion order.
const (
	SortDefault   SortOrder = ""
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
)

// IsValid returns true if the sort order is recognised.
func (o SortOrder) IsValid() bool {
	switch o {
	case SortDefault, SortPriceAsc, SortPriceDesc:
		return true
	default:
		return false
	}
}

// FilterCriteria is a partially-specified set of listing constraints.
// Nil pointers and empty slices impose no constraint; supplied criteria
// are combined with logical AND. Range bounds are inclusive.
type FilterCriteria struct {
	MinPrice *int64
	MaxPrice *int64

	MinBedrooms *int
	MaxBedrooms *int

	MinBathrooms *float64
	MaxBathrooms *float64

	MinSquareFeet *int
	MaxSquareFeet *int

	// Areas restricts to listings in any of these areas
	// (case-insensitive name match).
	Areas []string

	// PropertyTypes restricts to any of these categories.
	PropertyTypes []string

	// Statuses restricts to any of these lifecycle states.
	Statuses []ListingStatus

	// Features requires every entry to appear as a case-insensitive
	// substring of some listing feature.
	Features []string

	// Query is a free-text constraint matched against the listing's
	// searchable text.
	Query string

	// Sort selects result ordering.
	Sort SortOrder
}

// Validate reports self-contradictory criteria. Inverted ranges are an
// error rather than being silently swapped.
func (c FilterCriteria) Validate() error {
	if c.MinPrice != nil && c.MaxPrice != nil && *c.MinPrice > *c.MaxPrice {
		return fmt.Errorf("%w: min price %d exceeds max price %d", ErrInvalidCriteria, *c.MinPrice, *c.MaxPrice)
	}
	if c.MinBedrooms != nil && c.MaxBedrooms != nil && *c.MinBedrooms > *c.MaxBedrooms {
		return fmt.Errorf("%w: min bedrooms %d exceeds max bedrooms %d", ErrInvalidCriteria, *c.MinBedrooms, *c.MaxBedrooms)
	}
	if c.MinBathrooms != nil && c.MaxBathrooms != nil && *c.MinBathrooms > *c.MaxBathrooms {
		return fmt.Errorf("%w: min bathrooms %g exceeds max bathrooms %g", ErrInvalidCriteria, *c.MinBathrooms, *c.MaxBathrooms)
	}
	if c.MinSquareFeet != nil && c.MaxSquareFeet != nil && *c.MinSquareFeet > *c.MaxSquareFeet {
		return fmt.Errorf("%w: min square feet %d exceeds max square feet %d", ErrInvalidCriteria, *c.MinSquareFeet, *c.MaxSquareFeet)
	}
	if !c.Sort.IsValid() {
		return fmt.Errorf("%w: unknown sort order %q", ErrInvalidCriteria, string(c.Sort))
	}
	return nil
}
