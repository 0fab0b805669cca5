package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCriteria indicates a self-contradictory filter,
	// such as a minimum price above the maximum price.
	ErrInvalidCriteria = errors.New("invalid criteria")

	// ErrLoadFailure indicates the persisted dataset could not be read.
	// A refresh that fails this way leaves the previous snapshot active.
	ErrLoadFailure = errors.New("load failure")

	// ErrRefreshInProgress indicates another refresh is already running.
	ErrRefreshInProgress = errors.New("refresh in progress")

	// ErrUnsupportedType indicates an unknown entity type name.
	ErrUnsupportedType = errors.New("unsupported entity type")
)
