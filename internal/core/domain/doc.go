// Package domain defines the core business entities for the real-estate
// knowledge base.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the six record types and the value types shared by the
// query engines:
//
//   - Listing, Agent, Client, Transaction, Area, Amenity: the records
//   - Snapshot: one immutable, complete set of all six collections
//   - FilterCriteria: caller-supplied listing filter constraints
//   - Recommendation: a scored listing produced by client matching
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend on
// domain, never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library and github.com/google/uuid only
//   - Cannot Import: Any internal/ package
package domain
