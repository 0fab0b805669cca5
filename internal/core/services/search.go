package services

import (
	"context"
	"sort"
	"strings"

	"github.com/garyj/real-estate-mcp/internal/core/domain"
	"github.com/garyj/real-estate-mcp/internal/core/ports/driving"
	"github.com/garyj/real-estate-mcp/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService selects and orders listings by criteria or free text.
// All queries run against the snapshot that is active when the call
// starts; a concurrent refresh does not affect results mid-query.
type SearchService struct {
	store *Store
}

// NewSearchService creates a new search service over the store.
func NewSearchService(store *Store) *SearchService {
	return &SearchService{store: store}
}

// Filter returns the listings matching every supplied criterion.
// Omitted criteria impose no constraint; range bounds are inclusive.
// Results preserve snapshot insertion order unless a price sort is
// requested, and ties under a price sort keep insertion order.
func (s *SearchService) Filter(_ context.Context, criteria domain.FilterCriteria) ([]domain.Listing, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	logger.Section("Listing Filter")

	snap := s.store.Snapshot()
	results := []domain.Listing{}
	for _, l := range snap.Listings {
		if matchesCriteria(l, criteria) {
			results = append(results, l)
		}
	}

	switch criteria.Sort {
	case domain.SortPriceAsc:
		sort.SliceStable(results, func(i, j int) bool { return results[i].Price < results[j].Price })
	case domain.SortPriceDesc:
		sort.SliceStable(results, func(i, j int) bool { return results[i].Price > results[j].Price })
	}

	logger.Debug("Filter matched %d of %d listings", len(results), len(snap.Listings))
	return results, nil
}

// matchesCriteria applies every supplied predicate; logical AND.
func matchesCriteria(l domain.Listing, c domain.FilterCriteria) bool {
	if c.MinPrice != nil && l.Price < *c.MinPrice {
		return false
	}
	if c.MaxPrice != nil && l.Price > *c.MaxPrice {
		return false
	}
	if c.MinBedrooms != nil && l.Bedrooms < *c.MinBedrooms {
		return false
	}
	if c.MaxBedrooms != nil && l.Bedrooms > *c.MaxBedrooms {
		return false
	}
	if c.MinBathrooms != nil && l.Bathrooms < *c.MinBathrooms {
		return false
	}
	if c.MaxBathrooms != nil && l.Bathrooms > *c.MaxBathrooms {
		return false
	}
	if c.MinSquareFeet != nil && l.SquareFeet < *c.MinSquareFeet {
		return false
	}
	if c.MaxSquareFeet != nil && l.SquareFeet > *c.MaxSquareFeet {
		return false
	}
	if len(c.Areas) > 0 && !containsFold(c.Areas, l.Area) {
		return false
	}
	if len(c.PropertyTypes) > 0 && !containsFold(c.PropertyTypes, l.PropertyType) {
		return false
	}
	if len(c.Statuses) > 0 && !containsStatus(c.Statuses, l.Status) {
		return false
	}
	for _, want := range c.Features {
		if !hasFeature(l.Features, want) {
			return false
		}
	}
	if q := strings.TrimSpace(c.Query); q != "" {
		if !strings.Contains(l.SearchText(), strings.ToLower(q)) {
			return false
		}
	}
	return true
}

func containsFold(haystack []string, needle string) bool {
	for _, h := range haystack {
		if strings.EqualFold(h, needle) {
			return true
		}
	}
	return false
}

func containsStatus(statuses []domain.ListingStatus, s domain.ListingStatus) bool {
	for _, want := range statuses {
		if want == s {
			return true
		}
	}
	return false
}

// hasFeature reports whether any listing feature contains want as a
// case-insensitive substring.
func hasFeature(features []string, want string) bool {
	want = strings.ToLower(want)
	for _, f := range features {
		if strings.Contains(strings.ToLower(f), want) {
			return true
		}
	}
	return false
}

// Search returns the listings whose searchable text (address,
// description, area, features, property type, style) contains the
// query, case-insensitively. Exact substring match only; no stemming.
// An empty query is a substring of every text and so matches all
// listings.
func (s *SearchService) Search(_ context.Context, query string) ([]domain.Listing, error) {
	logger.Section("Listing Search")
	logger.Debug("Query: %q", query)

	query = strings.ToLower(strings.TrimSpace(query))

	snap := s.store.Snapshot()
	results := []domain.Listing{}
	for _, l := range snap.Listings {
		if strings.Contains(l.SearchText(), query) {
			results = append(results, l)
		}
	}
	logger.Debug("Search matched %d of %d listings", len(results), len(snap.Listings))
	return results, nil
}

// SearchAgents returns the agents whose profile text (name,
// specializations, expertise areas, bio) contains the query.
func (s *SearchService) SearchAgents(_ context.Context, query string) ([]domain.Agent, error) {
	query = strings.ToLower(strings.TrimSpace(query))

	snap := s.store.Snapshot()
	results := []domain.Agent{}
	for _, a := range snap.Agents {
		if strings.Contains(a.SearchText(), query) {
			results = append(results, a)
		}
	}
	return results, nil
}

// ByAgent returns the listings owned by the agent.
func (s *SearchService) ByAgent(_ context.Context, agentID string) ([]domain.Listing, error) {
	return s.store.Index().ListingsForAgent(agentID), nil
}

// ByArea returns the listings located in the area.
func (s *SearchService) ByArea(_ context.Context, areaName string) ([]domain.Listing, error) {
	return s.store.Index().ListingsForArea(areaName), nil
}
