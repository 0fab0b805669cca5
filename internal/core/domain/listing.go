package domain

import "strings"

// ListingStatus is the lifecycle state of a listing.
type ListingStatus string

// Available listing statuses.
const (
	StatusActive  ListingStatus = "active"
	StatusPending ListingStatus = "pending"
	StatusSold    ListingStatus = "sold"
)

// IsValid returns true if the status is recognised.
func (s ListingStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusPending, StatusSold:
		return true
	default:
		return false
	}
}

// Listing is a property listing. Listings are immutable once loaded;
// a refresh replaces the whole snapshot rather than mutating records.
type Listing struct {
	// ID is the stable unique identifier.
	ID string

	// Address is the street address.
	Address string

	// Area is the name of the area the listing belongs to.
	// It must resolve against the Area collection.
	Area string

	// Price is the asking price in whole dollars. Never negative.
	Price int64

	// Bedrooms and Bathrooms are room counts. Bathrooms may be
	// fractional (2.5 baths).
	Bedrooms  int
	Bathrooms float64

	// SquareFeet is the interior size.
	SquareFeet int

	// PropertyType categorises the listing (condo, single_family, ...).
	PropertyType string

	// Style is the architectural style (victorian, modern, ...).
	Style string

	// Status is the lifecycle state.
	Status ListingStatus

	// AgentID references the owning agent.
	AgentID string

	// Description is free text shown to buyers.
	Description string

	// Features are structured tags (garage, pool, hardwood floors).
	Features []string
}

// SearchText returns the lower-cased text the free-text search matches
// against: address, description, area, features, property type and style.
func (l Listing) SearchText() string {
	parts := []string{
		l.Address,
		l.Description,
		l.Area,
		strings.Join(l.Features, " "),
		l.PropertyType,
		l.Style,
	}
	return strings.ToLower(strings.Join(parts, " "))
}
