package services

import (
	"context"
	"fmt"

	"github.com/garyj/real-estate-mcp/internal/core/domain"
	"github.com/garyj/real-estate-mcp/internal/core/ports/driving"
)

// Ensure StatsService implements the interface.
var _ driving.StatsService = (*StatsService)(nil)

// allAreasLabel names the city-wide trend view.
const allAreasLabel = "All Areas"

// StatsService computes derived statistics by folding over the active
// snapshot and its cross-reference index. Every call recomputes from
// scratch; the data volumes make caching unnecessary.
type StatsService struct {
	store *Store
}

// NewStatsService creates a new stats service over the store.
func NewStatsService(store *Store) *StatsService {
	return &StatsService{store: store}
}

// AreaStats returns the market summary for one area.
func (s *StatsService) AreaStats(_ context.Context, areaName string) (domain.AreaStats, error) {
	ix := s.store.Index()
	area, ok := ix.Area(areaName)
	if !ok {
		return domain.AreaStats{}, fmt.Errorf("area %q: %w", areaName, domain.ErrNotFound)
	}
	return areaStats(ix, area.Name), nil
}

// areaStats folds over the area's active listings.
func areaStats(ix *Index, areaName string) domain.AreaStats {
	stats := domain.AreaStats{Area: areaName}

	var priceSum int64
	var sqftSum float64
	var sqftCount int
	for _, l := range ix.ListingsForArea(areaName) {
		if l.Status != domain.StatusActive {
			continue
		}
		stats.ActiveListings++
		priceSum += l.Price
		if stats.MinPrice == 0 || l.Price < stats.MinPrice {
			stats.MinPrice = l.Price
		}
		if l.Price > stats.MaxPrice {
			stats.MaxPrice = l.Price
		}
		if l.SquareFeet > 0 {
			sqftSum += float64(l.Price) / float64(l.SquareFeet)
			sqftCount++
		}
	}

	if stats.ActiveListings > 0 {
		stats.AveragePrice = float64(priceSum) / float64(stats.ActiveListings)
	}
	if sqftCount > 0 {
		stats.AveragePricePerSqft = sqftSum / float64(sqftCount)
	}
	return stats
}

// AgentStats returns performance metrics for one agent.
func (s *StatsService) AgentStats(_ context.Context, agentID string) (domain.AgentStats, error) {
	ix := s.store.Index()
	agent, ok := ix.Agent(agentID)
	if !ok {
		return domain.AgentStats{}, fmt.Errorf("agent %s: %w", agentID, domain.ErrNotFound)
	}
	return agentStats(ix, agent), nil
}

// agentStats folds over the agent's listings and transactions.
func agentStats(ix *Index, agent domain.Agent) domain.AgentStats {
	stats := domain.AgentStats{
		AgentID:         agent.ID,
		Name:            agent.Name,
		Specializations: agent.Specializations,
		Rating:          agent.Rating,
	}

	for _, l := range ix.ListingsForAgent(agent.ID) {
		if l.Status == domain.StatusActive {
			stats.ActiveListings++
		}
	}

	var daysSum int
	for _, tx := range ix.TransactionsForAgent(agent.ID) {
		stats.ClosedTransactions++
		stats.TotalVolume += tx.ClosingPrice
		daysSum += tx.DaysOnMarket
	}
	if stats.ClosedTransactions > 0 {
		stats.AverageClosingPrice = float64(stats.TotalVolume) / float64(stats.ClosedTransactions)
		stats.AverageDaysOnMarket = float64(daysSum) / float64(stats.ClosedTransactions)
	}
	return stats
}

// MarketTrends summarises transactions, restricted to one area when
// areaName is non-empty. An area with no recorded sales yields a zero
// summary, not an error.
func (s *StatsService) MarketTrends(_ context.Context, areaName string) (domain.MarketTrends, error) {
	ix := s.store.Index()

	var sales []domain.Transaction
	trends := domain.MarketTrends{Area: allAreasLabel}
	if areaName != "" {
		area, ok := ix.Area(areaName)
		if !ok {
			return domain.MarketTrends{}, fmt.Errorf("area %q: %w", areaName, domain.ErrNotFound)
		}
		trends.Area = area.Name
		sales = ix.TransactionsForArea(area.Name)
	} else {
		sales = ix.Snapshot().Transactions
	}

	return foldTrends(trends, sales), nil
}

func foldTrends(trends domain.MarketTrends, sales []domain.Transaction) domain.MarketTrends {
	if len(sales) == 0 {
		return trends
	}

	var priceSum int64
	var daysSum int
	var sqftSum float64
	for _, tx := range sales {
		priceSum += tx.ClosingPrice
		daysSum += tx.DaysOnMarket
		sqftSum += tx.PricePerSqft
	}

	n := float64(len(sales))
	trends.TotalSales = len(sales)
	trends.AverageSalePrice = float64(priceSum) / n
	trends.AverageDaysOnMarket = float64(daysSum) / n
	trends.AveragePricePerSqft = sqftSum / n
	return trends
}

// CompareAreas returns the market summary for each named area that
// exists. Unknown names are skipped so a partial comparison is still
// useful.
func (s *StatsService) CompareAreas(_ context.Context, areaNames []string) ([]domain.AreaStats, error) {
	ix := s.store.Index()
	results := []domain.AreaStats{}
	for _, name := range areaNames {
		area, ok := ix.Area(name)
		if !ok {
			continue
		}
		results = append(results, areaStats(ix, area.Name))
	}
	return results, nil
}

// AreaReport assembles the comprehensive view of one area. All parts
// come from the same index, so the report is internally consistent
// even across a concurrent refresh.
func (s *StatsService) AreaReport(_ context.Context, areaName string) (domain.AreaReport, error) {
	ix := s.store.Index()
	area, ok := ix.Area(areaName)
	if !ok {
		return domain.AreaReport{}, fmt.Errorf("area %q: %w", areaName, domain.ErrNotFound)
	}

	sales := ix.TransactionsForArea(area.Name)
	return domain.AreaReport{
		Area:           area,
		Stats:          areaStats(ix, area.Name),
		ActiveListings: activeOnly(ix.ListingsForArea(area.Name)),
		RecentSales:    sales,
		Amenities:      ix.AmenitiesForArea(area.Name),
		Trends:         foldTrends(domain.MarketTrends{Area: area.Name}, sales),
	}, nil
}

// AgentDashboard assembles the comprehensive view of one agent.
func (s *StatsService) AgentDashboard(_ context.Context, agentID string) (domain.AgentDashboard, error) {
	ix := s.store.Index()
	agent, ok := ix.Agent(agentID)
	if !ok {
		return domain.AgentDashboard{}, fmt.Errorf("agent %s: %w", agentID, domain.ErrNotFound)
	}

	return domain.AgentDashboard{
		Agent:          agent,
		Stats:          agentStats(ix, agent),
		ActiveListings: activeOnly(ix.ListingsForAgent(agent.ID)),
		Clients:        ix.ClientsForAgent(agent.ID),
		RecentSales:    ix.TransactionsForAgent(agent.ID),
	}, nil
}

// ListingInsights places one listing in its market context. The agent
// and area pointers are nil when the listing's references do not
// resolve; that is a data quality issue, not a lookup failure.
func (s *StatsService) ListingInsights(_ context.Context, listingID string) (domain.ListingInsights, error) {
	ix := s.store.Index()
	listing, ok := ix.Listing(listingID)
	if !ok {
		return domain.ListingInsights{}, fmt.Errorf("listing %s: %w", listingID, domain.ErrNotFound)
	}

	insights := domain.ListingInsights{
		Listing:         listing,
		AreaStats:       areaStats(ix, listing.Area),
		ComparableSales: ix.TransactionsForArea(listing.Area),
		Amenities:       ix.AmenitiesForArea(listing.Area),
	}
	if agent, ok := ix.Agent(listing.AgentID); ok {
		insights.Agent = &agent
	}
	if area, ok := ix.Area(listing.Area); ok {
		insights.Area = &area
	}
	return insights, nil
}

func activeOnly(listings []domain.Listing) []domain.Listing {
	active := []domain.Listing{}
	for _, l := range listings {
		if l.Status == domain.StatusActive {
			active = append(active, l)
		}
	}
	return active
}
