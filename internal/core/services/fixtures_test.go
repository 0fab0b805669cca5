package services

import (
	"context"
	"time"

	"github.com/garyj/real-estate-mcp/internal/core/domain"
)

// fakeSource implements driven.RecordSource for testing.
type fakeSource struct {
	snap    *domain.Snapshot
	err     error
	blockCh chan struct{} // when set, Load blocks until closed
	loads   int
}

func (f *fakeSource) Load(ctx context.Context) (*domain.Snapshot, error) {
	f.loads++
	if f.blockCh != nil {
		select {
		case <-f.blockCh:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.snap, nil
}

func int64p(v int64) *int64 { return &v }
func intp(v int) *int       { return &v }

// testSnapshot builds a small, internally consistent dataset used
// across the service tests.
func testSnapshot() *domain.Snapshot {
	snap := domain.NewSnapshot()

	snap.Areas = []domain.Area{
		{Name: "Woodcrest", Description: "Leafy family neighbourhood", Population: 18200, MedianIncome: 92_000, WalkScore: 71, SchoolRating: 8.4, AmenityIDs: []string{"AM-001", "AM-003"}},
		{Name: "Downtown Riverside", Description: "High-rise riverfront core", Population: 42650, MedianIncome: 78_500, WalkScore: 94, SchoolRating: 6.9, AmenityIDs: []string{"AM-002"}},
		{Name: "Harbor Point", Description: "Waterfront estates", Population: 6100, MedianIncome: 164_000, WalkScore: 38, SchoolRating: 9.1},
	}

	snap.Agents = []domain.Agent{
		{ID: "AGT-001", Name: "Maria Lopez", Specializations: []string{"single_family", "luxury"}, ExpertiseAreas: []string{"Woodcrest", "Harbor Point"}, Bio: "Twenty years selling family homes", Rating: 4.8},
		{ID: "AGT-002", Name: "James Chen", Specializations: []string{"condo", "townhouse"}, ExpertiseAreas: []string{"Downtown Riverside"}, Bio: "Downtown condo specialist", Rating: 4.5},
	}

	snap.Listings = []domain.Listing{
		{
			ID: "PROP-001", Address: "42 Maple Street", Area: "Woodcrest", Price: 450_000,
			Bedrooms: 3, Bathrooms: 2, SquareFeet: 1850, PropertyType: "single_family",
			Style: "victorian", Status: domain.StatusActive, AgentID: "AGT-001",
			Description: "Beautifully restored Victorian with wraparound porch",
			Features:    []string{"Wraparound Porch", "Original Hardwood", "Garage"},
		},
		{
			ID: "PROP-002", Address: "810 River Walk", Area: "Downtown Riverside", Price: 900_000,
			Bedrooms: 2, Bathrooms: 2.5, SquareFeet: 1400, PropertyType: "condo",
			Style: "modern", Status: domain.StatusActive, AgentID: "AGT-002",
			Description: "Sleek modern condo with skyline views",
			Features:    []string{"Skyline Views", "Gym", "Concierge"},
		},
		{
			ID: "PROP-003", Address: "17 Harbor Lane", Area: "Harbor Point", Price: 1_250_000,
			Bedrooms: 4, Bathrooms: 3.5, SquareFeet: 3200, PropertyType: "single_family",
			Style: "contemporary", Status: domain.StatusPending, AgentID: "AGT-001",
			Description: "Expansive waterfront contemporary",
			Features:    []string{"Private Dock", "Home Office"},
		},
		{
			ID: "PROP-004", Address: "5 Mill Court", Area: "Woodcrest", Price: 385_000,
			Bedrooms: 2, Bathrooms: 1, SquareFeet: 1100, PropertyType: "townhouse",
			Style: "craftsman", Status: domain.StatusActive, AgentID: "AGT-002",
			Description: "Cosy craftsman townhouse near the plaza",
			Features:    []string{"Patio", "Updated Kitchen"},
		},
	}

	snap.Clients = []domain.Client{
		{
			ID: "CLI-001", Name: "Dana Whitfield", Role: domain.RoleBuyer, AgentID: "AGT-001",
			Preferences: domain.Preferences{
				MinPrice: int64p(300_000), MaxPrice: int64p(500_000),
				MinBedrooms: 3, Areas: []string{"Woodcrest"}, PropertyTypes: []string{"single_family"},
			},
			MatchHistory: []domain.MatchRecord{{ListingID: "PROP-004", Feedback: "too small"}},
		},
		{ID: "CLI-002", Name: "Ron Patel", Role: domain.RoleSeller, AgentID: "AGT-002"},
		{ID: "CLI-003", Name: "Ivy Okafor", Role: domain.RoleBuyer, AgentID: "AGT-002"},
	}

	snap.Transactions = []domain.Transaction{
		{
			ID: "TX-001", ListingID: "PROP-090", AgentID: "AGT-002", Area: "Woodcrest",
			ClosingPrice: 380_000, ClosingDate: time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC),
			Type: domain.TransactionSale, DaysOnMarket: 21, PricePerSqft: 345.45,
		},
		{
			ID: "TX-002", ListingID: "PROP-091", AgentID: "AGT-001", Area: "Harbor Point",
			ClosingPrice: 1_180_000, ClosingDate: time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC),
			Type: domain.TransactionSale, DaysOnMarket: 34, PricePerSqft: 402.10,
		},
		{
			ID: "TX-003", ListingID: "PROP-092", AgentID: "AGT-002", Area: "Woodcrest",
			ClosingPrice: 420_000, ClosingDate: time.Date(2026, 7, 19, 0, 0, 0, 0, time.UTC),
			Type: domain.TransactionSale, DaysOnMarket: 15, PricePerSqft: 360.00,
		},
	}

	snap.Amenities = []domain.Amenity{
		{ID: "AM-001", Name: "Woodcrest Elementary", Category: domain.AmenitySchool, Area: "Woodcrest", Rating: 8.5},
		{ID: "AM-002", Name: "Riverside Commons", Category: domain.AmenityPark, Area: "Downtown Riverside", Rating: 4.6},
		{ID: "AM-003", Name: "Woodcrest Plaza", Category: domain.AmenityShopping, Area: "Woodcrest", Rating: 4.1},
	}

	return snap
}

// loadedStore returns a store with the test snapshot already active.
func loadedStore() *Store {
	store := NewStore(&fakeSource{snap: testSnapshot()})
	if err := store.Refresh(context.Background()); err != nil {
		panic(err)
	}
	return store
}

func listingIDs(listings []domain.Listing) []string {
	ids := make([]string, len(listings))
	for i, l := range listings {
		ids[i] = l.ID
	}
	return ids
}
