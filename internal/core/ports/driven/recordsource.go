package driven

import (
	"context"

	"github.com/garyj/real-estate-mcp/internal/core/domain"
)

// RecordSource loads a complete snapshot of all six record collections
// from persisted storage.
//
// Load follows the partial-availability policy: a missing or unreadable
// category yields an empty collection plus a snapshot diagnostic, and a
// malformed record within an otherwise valid category is skipped with a
// diagnostic. Load returns an error only when the source as a whole is
// unusable (data directory absent, database unreachable, context
// deadline exceeded); the caller then keeps its previous snapshot.
type RecordSource interface {
	// Load reads every category and returns a fully-populated
	// snapshot. The context bounds the whole read; implementations
	// must return ctx.Err() promptly once it is done.
	Load(ctx context.Context) (*domain.Snapshot, error)
}
