package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garyj/real-estate-mcp/internal/core/domain"
)

func testListing() domain.Listing {
	return domain.Listing{
		ID:           "PROP-001",
		Address:      "412 Maple Crest Drive",
		Area:         "Woodcrest",
		Price:        450000,
		Bedrooms:     3,
		Bathrooms:    2.5,
		SquareFeet:   1850,
		PropertyType: "single_family",
		Style:        "victorian",
		Status:       domain.StatusActive,
		AgentID:      "AGT-001",
		Features:     []string{"garage", "hardwood floors"},
	}
}

func TestServer_handleSearchListings(t *testing.T) {
	ctx := context.Background()

	t.Run("returns matching listings", func(t *testing.T) {
		mockSearch := &mockSearchService{listings: []domain.Listing{testListing()}}
		ports := testPorts()
		ports.Search = mockSearch
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, output, err := server.handleSearchListings(ctx, nil, SearchListingsInput{Query: "maple"})

		require.NoError(t, err)
		assert.Equal(t, 1, output.Count)
		require.Len(t, output.Listings, 1)
		assert.Equal(t, "PROP-001", output.Listings[0].ID)
		assert.Equal(t, "Woodcrest", output.Listings[0].Area)
		assert.Equal(t, "active", output.Listings[0].Status)
		assert.Equal(t, "maple", mockSearch.query)
	})

	t.Run("returns error on search failure", func(t *testing.T) {
		ports := testPorts()
		ports.Search = &mockSearchService{err: errors.New("search failed")}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleSearchListings(ctx, nil, SearchListingsInput{Query: "maple"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "search failed")
	})
}

func TestServer_handleFilterListings(t *testing.T) {
	ctx := context.Background()

	t.Run("maps all criteria fields", func(t *testing.T) {
		mockSearch := &mockSearchService{listings: []domain.Listing{testListing()}}
		ports := testPorts()
		ports.Search = mockSearch
		server, err := NewServer(ports)
		require.NoError(t, err)

		minPrice := int64(300000)
		maxPrice := int64(500000)
		minBeds := 3
		input := FilterListingsInput{
			MinPrice:    &minPrice,
			MaxPrice:    &maxPrice,
			MinBedrooms: &minBeds,
			Areas:       []string{"Woodcrest"},
			Statuses:    []string{"active"},
			Sort:        "price_asc",
		}
		_, output, err := server.handleFilterListings(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 1, output.Count)
		require.NotNil(t, mockSearch.criteria.MinPrice)
		assert.Equal(t, int64(300000), *mockSearch.criteria.MinPrice)
		require.NotNil(t, mockSearch.criteria.MaxPrice)
		assert.Equal(t, int64(500000), *mockSearch.criteria.MaxPrice)
		assert.Equal(t, []string{"Woodcrest"}, mockSearch.criteria.Areas)
		assert.Equal(t, []domain.ListingStatus{domain.StatusActive}, mockSearch.criteria.Statuses)
		assert.Equal(t, domain.SortPriceAsc, mockSearch.criteria.Sort)
	})

	t.Run("propagates invalid criteria", func(t *testing.T) {
		ports := testPorts()
		ports.Search = &mockSearchService{err: domain.ErrInvalidCriteria}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleFilterListings(ctx, nil, FilterListingsInput{})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidCriteria)
	})
}

func TestServer_handleGetListing(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the listing", func(t *testing.T) {
		ports := testPorts()
		ports.Catalog = &mockCatalogService{record: testListing()}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, output, err := server.handleGetListing(ctx, nil, GetListingInput{ListingID: "PROP-001"})

		require.NoError(t, err)
		assert.Equal(t, "PROP-001", output.Listing.ID)
		assert.Equal(t, int64(450000), output.Listing.Price)
	})

	t.Run("propagates not found", func(t *testing.T) {
		ports := testPorts()
		ports.Catalog = &mockCatalogService{err: domain.ErrNotFound}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleGetListing(ctx, nil, GetListingInput{ListingID: "PROP-999"})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestServer_handleSearchAgents(t *testing.T) {
	ctx := context.Background()

	ports := testPorts()
	ports.Search = &mockSearchService{agents: []domain.Agent{{
		ID:     "AGT-001",
		Name:   "Maria Lopez",
		Rating: 4.8,
	}}}
	server, err := NewServer(ports)
	require.NoError(t, err)

	_, output, err := server.handleSearchAgents(ctx, nil, SearchAgentsInput{Query: "maria"})

	require.NoError(t, err)
	assert.Equal(t, 1, output.Count)
	require.Len(t, output.Agents, 1)
	assert.Equal(t, "Maria Lopez", output.Agents[0].Name)
	assert.Equal(t, 4.8, output.Agents[0].Rating)
}

func TestServer_handleMatchClient(t *testing.T) {
	ctx := context.Background()

	t.Run("returns ranked recommendations", func(t *testing.T) {
		mockMatch := &mockMatchService{recommendations: []domain.Recommendation{{
			Listing: testListing(),
			Score:   92.5,
			Breakdown: domain.ScoreBreakdown{
				PriceFit:   1.0,
				BedroomFit: 1.0,
				AreaMatch:  1.0,
				TypeMatch:  0.5,
			},
		}}}
		ports := testPorts()
		ports.Match = mockMatch
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, output, err := server.handleMatchClient(ctx, nil, MatchClientInput{ClientID: "CLI-001"})

		require.NoError(t, err)
		assert.Equal(t, 1, output.Count)
		require.Len(t, output.Recommendations, 1)
		assert.Equal(t, "PROP-001", output.Recommendations[0].Listing.ID)
		assert.Equal(t, 92.5, output.Recommendations[0].Score)
		assert.Equal(t, 0.5, output.Recommendations[0].TypeMatch)
		assert.Equal(t, "CLI-001", mockMatch.clientID)
	})

	t.Run("propagates unknown client", func(t *testing.T) {
		ports := testPorts()
		ports.Match = &mockMatchService{err: domain.ErrNotFound}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleMatchClient(ctx, nil, MatchClientInput{ClientID: "CLI-999"})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestServer_handleAreaStats(t *testing.T) {
	ctx := context.Background()

	ports := testPorts()
	ports.Stats = &mockStatsService{areaStats: domain.AreaStats{
		Area:           "Woodcrest",
		ActiveListings: 2,
		AveragePrice:   417500,
		MinPrice:       385000,
		MaxPrice:       450000,
	}}
	server, err := NewServer(ports)
	require.NoError(t, err)

	_, output, err := server.handleAreaStats(ctx, nil, AreaStatsInput{Area: "Woodcrest"})

	require.NoError(t, err)
	assert.Equal(t, "Woodcrest", output.Area)
	assert.Equal(t, 2, output.ActiveListings)
	assert.Equal(t, 417500.0, output.AveragePrice)
}

func TestServer_handleAgentStats(t *testing.T) {
	ctx := context.Background()

	ports := testPorts()
	ports.Stats = &mockStatsService{agentStats: domain.AgentStats{
		AgentID:            "AGT-002",
		Name:               "James Chen",
		ClosedTransactions: 2,
		TotalVolume:        800000,
	}}
	server, err := NewServer(ports)
	require.NoError(t, err)

	_, output, err := server.handleAgentStats(ctx, nil, AgentStatsInput{AgentID: "AGT-002"})

	require.NoError(t, err)
	assert.Equal(t, "James Chen", output.Name)
	assert.Equal(t, int64(800000), output.TotalVolume)
}

func TestServer_handleMarketTrends(t *testing.T) {
	ctx := context.Background()

	ports := testPorts()
	ports.Stats = &mockStatsService{trends: domain.MarketTrends{
		Area:       "All Areas",
		TotalSales: 3,
	}}
	server, err := NewServer(ports)
	require.NoError(t, err)

	_, output, err := server.handleMarketTrends(ctx, nil, MarketTrendsInput{})

	require.NoError(t, err)
	assert.Equal(t, "All Areas", output.Area)
	assert.Equal(t, 3, output.TotalSales)
}

func TestServer_handleCompareAreas(t *testing.T) {
	ctx := context.Background()

	ports := testPorts()
	ports.Stats = &mockStatsService{comparison: []domain.AreaStats{
		{Area: "Woodcrest"},
		{Area: "Harbor Point"},
	}}
	server, err := NewServer(ports)
	require.NoError(t, err)

	_, output, err := server.handleCompareAreas(ctx, nil, CompareAreasInput{
		Areas: []string{"Woodcrest", "Nowhere", "Harbor Point"},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, output.Count)
	assert.Equal(t, "Woodcrest", output.Areas[0].Area)
	assert.Equal(t, "Harbor Point", output.Areas[1].Area)
}

func TestServer_handleRefreshData(t *testing.T) {
	ctx := context.Background()

	t.Run("reports the new snapshot", func(t *testing.T) {
		snap := domain.NewSnapshot()
		snap.Listings = []domain.Listing{testListing()}
		snap.Diagnostics = []domain.Diagnostic{{Category: domain.EntityAmenity, Message: "category file missing"}}
		catalog := &mockCatalogService{snapshot: snap}
		ports := testPorts()
		ports.Catalog = catalog
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, output, err := server.handleRefreshData(ctx, nil, RefreshDataInput{})

		require.NoError(t, err)
		assert.Equal(t, 1, catalog.refreshCalls)
		assert.Equal(t, snap.Generation.String(), output.Generation)
		assert.Equal(t, 1, output.Listings)
		require.Len(t, output.Diagnostics, 1)
		assert.Contains(t, output.Diagnostics[0], "category file missing")
	})

	t.Run("propagates load failure", func(t *testing.T) {
		ports := testPorts()
		ports.Catalog = &mockCatalogService{refreshErr: domain.ErrLoadFailure}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleRefreshData(ctx, nil, RefreshDataInput{})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrLoadFailure)
	})
}
