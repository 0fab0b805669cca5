package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/garyj/real-estate-mcp/internal/core/domain"
	"github.com/garyj/real-estate-mcp/internal/core/ports/driven"
	"github.com/garyj/real-estate-mcp/internal/core/ports/driving"
	"github.com/garyj/real-estate-mcp/internal/logger"
)

// Ensure Store implements the interface.
var _ driving.CatalogService = (*Store)(nil)

// Store owns the active snapshot and its cross-reference index.
//
// Readers load the current index through an atomic pointer and then
// operate on immutable data, so concurrent reads never block each
// other. Refresh is the sole writer: it builds the new snapshot and
// index off to the side and swaps the pointer once, so an in-flight
// reader observes either the old or the new state in full, never a
// mix.
type Store struct {
	source driven.RecordSource

	// refreshMu serializes refreshes. Readers never take it.
	refreshMu sync.Mutex

	active atomic.Pointer[Index]
}

// NewStore creates a store over the given record source. The store
// starts with an empty snapshot; call Refresh to perform the initial
// load.
func NewStore(source driven.RecordSource) *Store {
	s := &Store{source: source}
	s.active.Store(BuildIndex(domain.NewSnapshot()))
	return s
}

// Refresh reloads the dataset and atomically swaps the active
// snapshot together with its index. On load failure the previous
// snapshot is retained and the error is reported to the caller.
// At most one refresh runs at a time; a concurrent attempt fails fast
// with domain.ErrRefreshInProgress rather than queueing.
func (s *Store) Refresh(ctx context.Context) error {
	if !s.refreshMu.TryLock() {
		return domain.ErrRefreshInProgress
	}
	defer s.refreshMu.Unlock()

	logger.Section("Dataset Refresh")

	snap, err := s.source.Load(ctx)
	if err != nil {
		logger.Warn("Load failed, keeping previous snapshot: %v", err)
		return fmt.Errorf("%w: %v", domain.ErrLoadFailure, err)
	}

	ix := BuildIndex(snap)
	for _, d := range snap.Diagnostics {
		logger.Warn("Load diagnostic [%s]: %s", d.Category, d.Message)
	}
	for _, d := range ix.Diagnostics() {
		logger.Warn("Index diagnostic [%s]: %s", d.Category, d.Message)
	}

	s.active.Store(ix)
	logger.Info("Snapshot %s active: %d listings, %d agents, %d clients, %d transactions, %d areas, %d amenities",
		snap.Generation, len(snap.Listings), len(snap.Agents), len(snap.Clients),
		len(snap.Transactions), len(snap.Areas), len(snap.Amenities))
	return nil
}

// Index returns the active cross-reference index. The result is
// immutable and stays internally consistent for as long as the caller
// holds it, even across a concurrent refresh.
func (s *Store) Index() *Index {
	return s.active.Load()
}

// Snapshot returns the active snapshot.
func (s *Store) Snapshot() *domain.Snapshot {
	return s.Index().Snapshot()
}

// Get returns the record with the given id from the named collection.
func (s *Store) Get(_ context.Context, t domain.EntityType, id string) (any, error) {
	ix := s.Index()
	switch t {
	case domain.EntityListing:
		if l, ok := ix.Listing(id); ok {
			return l, nil
		}
	case domain.EntityAgent:
		if a, ok := ix.Agent(id); ok {
			return a, nil
		}
	case domain.EntityClient:
		if c, ok := ix.Client(id); ok {
			return c, nil
		}
	case domain.EntityTransaction:
		if tx, ok := ix.Transaction(id); ok {
			return tx, nil
		}
	case domain.EntityArea:
		if a, ok := ix.Area(id); ok {
			return a, nil
		}
	case domain.EntityAmenity:
		if a, ok := ix.Amenity(id); ok {
			return a, nil
		}
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedType, string(t))
	}
	return nil, fmt.Errorf("%s %s: %w", t, id, domain.ErrNotFound)
}

// All returns the full ordered collection for the entity type.
func (s *Store) All(_ context.Context, t domain.EntityType) (any, error) {
	snap := s.Snapshot()
	switch t {
	case domain.EntityListing:
		return snap.Listings, nil
	case domain.EntityAgent:
		return snap.Agents, nil
	case domain.EntityClient:
		return snap.Clients, nil
	case domain.EntityTransaction:
		return snap.Transactions, nil
	case domain.EntityArea:
		return snap.Areas, nil
	case domain.EntityAmenity:
		return snap.Amenities, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedType, string(t))
	}
}
