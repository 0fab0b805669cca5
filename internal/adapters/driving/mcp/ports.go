package mcp

import (
	"github.com/garyj/real-estate-mcp/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP
// server. This provides a single injection point for dependency
// injection.
type Ports struct {
	// Catalog provides record lookup and refresh.
	Catalog driving.CatalogService

	// Search provides listing filtering and free-text search.
	Search driving.SearchService

	// Match ranks listings for clients.
	Match driving.MatchService

	// Stats computes market statistics and reports.
	Stats driving.StatsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Match == nil {
		return ErrMissingMatchService
	}
	if p.Stats == nil {
		return ErrMissingStatsService
	}
	return nil
}
