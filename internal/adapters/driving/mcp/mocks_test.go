package mcp

import (
	"context"

	"github.com/garyj/real-estate-mcp/internal/core/domain"
)

// mockCatalogService is a mock implementation of driving.CatalogService.
type mockCatalogService struct {
	record       any
	records      any
	snapshot     *domain.Snapshot
	err          error
	refreshErr   error
	refreshCalls int
}

func (m *mockCatalogService) Get(_ context.Context, _ domain.EntityType, _ string) (any, error) {
	return m.record, m.err
}

func (m *mockCatalogService) All(_ context.Context, _ domain.EntityType) (any, error) {
	return m.records, m.err
}

func (m *mockCatalogService) Snapshot() *domain.Snapshot {
	if m.snapshot == nil {
		return domain.NewSnapshot()
	}
	return m.snapshot
}

func (m *mockCatalogService) Refresh(_ context.Context) error {
	m.refreshCalls++
	return m.refreshErr
}

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	listings []domain.Listing
	agents   []domain.Agent
	criteria domain.FilterCriteria
	query    string
	err      error
}

func (m *mockSearchService) Filter(_ context.Context, criteria domain.FilterCriteria) ([]domain.Listing, error) {
	m.criteria = criteria
	return m.listings, m.err
}

func (m *mockSearchService) Search(_ context.Context, query string) ([]domain.Listing, error) {
	m.query = query
	return m.listings, m.err
}

func (m *mockSearchService) SearchAgents(_ context.Context, query string) ([]domain.Agent, error) {
	m.query = query
	return m.agents, m.err
}

func (m *mockSearchService) ByAgent(_ context.Context, _ string) ([]domain.Listing, error) {
	return m.listings, m.err
}

func (m *mockSearchService) ByArea(_ context.Context, _ string) ([]domain.Listing, error) {
	return m.listings, m.err
}

// mockMatchService is a mock implementation of driving.MatchService.
type mockMatchService struct {
	recommendations []domain.Recommendation
	clientID        string
	err             error
}

func (m *mockMatchService) Match(_ context.Context, clientID string) ([]domain.Recommendation, error) {
	m.clientID = clientID
	return m.recommendations, m.err
}

// mockStatsService is a mock implementation of driving.StatsService.
type mockStatsService struct {
	areaStats  domain.AreaStats
	agentStats domain.AgentStats
	trends     domain.MarketTrends
	comparison []domain.AreaStats
	report     domain.AreaReport
	dashboard  domain.AgentDashboard
	insights   domain.ListingInsights
	err        error
}

func (m *mockStatsService) AreaStats(_ context.Context, _ string) (domain.AreaStats, error) {
	return m.areaStats, m.err
}

func (m *mockStatsService) AgentStats(_ context.Context, _ string) (domain.AgentStats, error) {
	return m.agentStats, m.err
}

func (m *mockStatsService) MarketTrends(_ context.Context, _ string) (domain.MarketTrends, error) {
	return m.trends, m.err
}

func (m *mockStatsService) CompareAreas(_ context.Context, _ []string) ([]domain.AreaStats, error) {
	return m.comparison, m.err
}

func (m *mockStatsService) AreaReport(_ context.Context, _ string) (domain.AreaReport, error) {
	return m.report, m.err
}

func (m *mockStatsService) AgentDashboard(_ context.Context, _ string) (domain.AgentDashboard, error) {
	return m.dashboard, m.err
}

func (m *mockStatsService) ListingInsights(_ context.Context, _ string) (domain.ListingInsights, error) {
	return m.insights, m.err
}

// testPorts returns a fully-populated Ports value with fresh mocks.
func testPorts() *Ports {
	return &Ports{
		Catalog: &mockCatalogService{},
		Search:  &mockSearchService{},
		Match:   &mockMatchService{},
		Stats:   &mockStatsService{},
	}
}
