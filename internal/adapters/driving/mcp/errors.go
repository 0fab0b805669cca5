// Package mcp provides an MCP (Model Context Protocol) server adapter
// for the real-estate knowledge base. It enables AI assistants to
// query listings, agents, market statistics and client matches.
package mcp

import (
	"errors"

	"github.com/garyj/real-estate-mcp/internal/core/domain"
)

// Errors returned when a required service is not provided.
var (
	ErrMissingCatalogService = errors.New("mcp: catalog service is required")
	ErrMissingSearchService  = errors.New("mcp: search service is required")
	ErrMissingMatchService   = errors.New("mcp: match service is required")
	ErrMissingStatsService   = errors.New("mcp: stats service is required")
)

// isNotFound reports whether err means the requested record is absent,
// so the handler can answer with a resource-not-found error instead of
// an internal one.
func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
