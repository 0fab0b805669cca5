package domain

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot is one immutable, complete set of all six record
// collections. A snapshot is built in full by a record source and then
// never mutated; refresh replaces the whole snapshot wholesale.
// Collections preserve the source's insertion order.
type Snapshot struct {
	// Generation uniquely identifies this snapshot. Derived state
	// (the cross-reference index) carries the same generation so a
	// mismatch indicates a bug.
	Generation uuid.UUID

	// LoadedAt is when the snapshot was built.
	LoadedAt time.Time

	Listings     []Listing
	Agents       []Agent
	Clients      []Client
	Transactions []Transaction
	Areas        []Area
	Amenities    []Amenity

	// Diagnostics records per-category load degradations: categories
	// that could not be read and individual records that were skipped.
	Diagnostics []Diagnostic
}

// Diagnostic is one recorded load problem. A diagnostic never fails
// the load; it degrades the affected category only.
type Diagnostic struct {
	// Category is the collection the problem occurred in.
	Category EntityType

	// Message describes what was skipped or degraded.
	Message string
}

// String formats the diagnostic as "category: message".
func (d Diagnostic) String() string {
	return string(d.Category) + ": " + d.Message
}

// NewSnapshot returns an empty snapshot stamped with a fresh
// generation ID.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Generation: uuid.New(),
		LoadedAt:   time.Now().UTC(),
	}
}

// Count returns the number of records in the named collection.
func (s *Snapshot) Count(t EntityType) int {
	switch t {
	case EntityListing:
		return len(s.Listings)
	case EntityAgent:
		return len(s.Agents)
	case EntityClient:
		return len(s.Clients)
	case EntityTransaction:
		return len(s.Transactions)
	case EntityArea:
		return len(s.Areas)
	case EntityAmenity:
		return len(s.Amenities)
	default:
		return 0
	}
}
