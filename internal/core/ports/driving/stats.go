package driving

import (
	"context"

	"github.com/garyj/real-estate-mcp/internal/core/domain"
)

// StatsService computes read-only derived statistics over the active
// snapshot. Every call recomputes from scratch; nothing is cached
// between calls.
type StatsService interface {
	// AreaStats returns the market summary for one area.
	// Returns domain.ErrNotFound for an unknown area.
	AreaStats(ctx context.Context, areaName string) (domain.AreaStats, error)

	// AgentStats returns performance metrics for one agent.
	// Returns domain.ErrNotFound for an unknown agent.
	AgentStats(ctx context.Context, agentID string) (domain.AgentStats, error)

	// MarketTrends summarises transactions, restricted to one area
	// when areaName is non-empty.
	MarketTrends(ctx context.Context, areaName string) (domain.MarketTrends, error)

	// CompareAreas returns the market summary for each named area
	// that exists; unknown names are skipped, not errors.
	CompareAreas(ctx context.Context, areaNames []string) ([]domain.AreaStats, error)

	// AreaReport assembles the comprehensive area view.
	// Returns domain.ErrNotFound for an unknown area.
	AreaReport(ctx context.Context, areaName string) (domain.AreaReport, error)

	// AgentDashboard assembles the comprehensive agent view.
	// Returns domain.ErrNotFound for an unknown agent.
	AgentDashboard(ctx context.Context, agentID string) (domain.AgentDashboard, error)

	// ListingInsights places one listing in its market context.
	// Returns domain.ErrNotFound for an unknown listing.
	ListingInsights(ctx context.Context, listingID string) (domain.ListingInsights, error)
}
