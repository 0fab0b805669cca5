package driving

import (
	"context"

	"github.com/garyj/real-estate-mcp/internal/core/domain"
)

// SearchService selects and orders listings (and agents) matching
// caller-supplied criteria. An empty result is a normal outcome, never
// an error.
type SearchService interface {
	// Filter returns the listings matching every supplied criterion,
	// in snapshot insertion order unless the criteria request a price
	// sort. Returns domain.ErrInvalidCriteria for self-contradictory
	// criteria.
	Filter(ctx context.Context, criteria domain.FilterCriteria) ([]domain.Listing, error)

	// Search returns the listings whose searchable text contains the
	// query, case-insensitively. Exact substring only; an empty query
	// matches every listing.
	Search(ctx context.Context, query string) ([]domain.Listing, error)

	// SearchAgents returns the agents whose profile text contains the
	// query, case-insensitively. An empty query matches every agent.
	SearchAgents(ctx context.Context, query string) ([]domain.Agent, error)

	// ByAgent returns the listings owned by the agent, in insertion
	// order. An unknown agent yields an empty slice.
	ByAgent(ctx context.Context, agentID string) ([]domain.Listing, error)

	// ByArea returns the listings located in the area, in insertion
	// order. An unknown area yields an empty slice.
	ByArea(ctx context.Context, areaName string) ([]domain.Listing, error)
}
