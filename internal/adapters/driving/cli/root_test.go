package cli

import (
	"context"
	"errors"

	"github.com/garyj/real-estate-mcp/internal/core/domain"
	"github.com/garyj/real-estate-mcp/internal/core/services"
)

// staticSource serves a fixed snapshot, letting the tests run the real
// service stack without touching the filesystem.
type staticSource struct {
	snap *domain.Snapshot
}

func (s *staticSource) Load(_ context.Context) (*domain.Snapshot, error) {
	return s.snap, nil
}

func fixtureSnapshot() *domain.Snapshot {
	snap := domain.NewSnapshot()
	snap.Areas = []domain.Area{
		{Name: "Woodcrest", Description: "Leafy residential area", WalkScore: 71},
		{Name: "Harbor Point", Description: "Waterfront", WalkScore: 64},
	}
	snap.Agents = []domain.Agent{
		{ID: "AGT-001", Name: "Maria Lopez", ExpertiseAreas: []string{"Woodcrest"}, Rating: 4.8},
	}
	snap.Listings = []domain.Listing{
		{
			ID: "PROP-001", Address: "412 Maple Crest Drive", Area: "Woodcrest",
			Price: 450000, Bedrooms: 3, Bathrooms: 2.5, SquareFeet: 1850,
			PropertyType: "single_family", Status: domain.StatusActive,
			AgentID: "AGT-001", Features: []string{"garage"},
		},
		{
			ID: "PROP-002", Address: "9 Harborside Walk", Area: "Harbor Point",
			Price: 900000, Bedrooms: 2, Bathrooms: 2, SquareFeet: 1200,
			PropertyType: "condo", Status: domain.StatusActive,
			AgentID: "AGT-001",
		},
	}
	minPrice := int64(300000)
	maxPrice := int64(500000)
	snap.Clients = []domain.Client{
		{
			ID: "CLI-001", Name: "Dana Reyes", Role: domain.RoleBuyer, AgentID: "AGT-001",
			Preferences: domain.Preferences{
				MinPrice:    &minPrice,
				MaxPrice:    &maxPrice,
				MinBedrooms: 3,
				Areas:       []string{"Woodcrest"},
			},
		},
	}
	snap.Transactions = []domain.Transaction{
		{
			ID: "TX-001", ListingID: "PROP-090", AgentID: "AGT-001", Area: "Woodcrest",
			ClosingPrice: 420000, Type: domain.TransactionSale, DaysOnMarket: 21, PricePerSqft: 310,
		},
	}
	return snap
}

// setupTestServices wires the real services over the fixture snapshot
// and returns a cleanup that restores the previous wiring.
func setupTestServices() func() {
	oldCatalog := catalogService
	oldSearch := searchService
	oldMatch := matchService
	oldStats := statsService

	store := services.NewStore(&staticSource{snap: fixtureSnapshot()})
	if err := store.Refresh(context.Background()); err != nil {
		panic(err)
	}

	catalogService = store
	searchService = services.NewSearchService(store)
	matchService = services.NewMatchService(store)
	statsService = services.NewStatsService(store)

	return func() {
		catalogService = oldCatalog
		searchService = oldSearch
		matchService = oldMatch
		statsService = oldStats
	}
}

// mockSearchServiceError fails every operation.
type mockSearchServiceError struct{}

var errMock = errors.New("search failed")

func (m *mockSearchServiceError) Filter(_ context.Context, _ domain.FilterCriteria) ([]domain.Listing, error) {
	return nil, errMock
}

func (m *mockSearchServiceError) Search(_ context.Context, _ string) ([]domain.Listing, error) {
	return nil, errMock
}

func (m *mockSearchServiceError) SearchAgents(_ context.Context, _ string) ([]domain.Agent, error) {
	return nil, errMock
}

func (m *mockSearchServiceError) ByAgent(_ context.Context, _ string) ([]domain.Listing, error) {
	return nil, errMock
}

func (m *mockSearchServiceError) ByArea(_ context.Context, _ string) ([]domain.Listing, error) {
	return nil, errMock
}
