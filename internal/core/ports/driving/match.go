package driving

import (
	"context"

	"github.com/garyj/real-estate-mcp/internal/core/domain"
)

// MatchService ranks listings for a client by fit to stated
// preferences.
type MatchService interface {
	// Match scores every active listing against the client's
	// preferences and returns those with a nonzero score, ordered by
	// descending score with ties broken by insertion order.
	// Non-buyer clients receive an empty result. Returns
	// domain.ErrNotFound for an unknown client.
	Match(ctx context.Context, clientID string) ([]domain.Recommendation, error)
}
