package driving

import (
	"context"

	"github.com/garyj/real-estate-mcp/internal/core/domain"
)

// CatalogService provides record lookup and snapshot lifecycle
// management to external actors.
type CatalogService interface {
	// Get returns the record with the given id from the named
	// collection. The concrete type matches the entity type
	// (domain.Listing for EntityListing, and so on).
	// Returns domain.ErrNotFound when the id is absent.
	Get(ctx context.Context, t domain.EntityType, id string) (any, error)

	// All returns the full ordered collection for the entity type as
	// a typed slice ([]domain.Listing, []domain.Agent, ...).
	All(ctx context.Context, t domain.EntityType) (any, error)

	// Snapshot returns the active snapshot. Callers must treat it as
	// read-only; it is shared by every concurrent reader.
	Snapshot() *domain.Snapshot

	// Refresh reloads the dataset and atomically swaps the active
	// snapshot. On load failure the previous snapshot is retained and
	// a domain.ErrLoadFailure-wrapped error is returned.
	Refresh(ctx context.Context) error
}
