package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/garyj/real-estate-mcp/internal/core/domain"
)

// Index holds the reverse and lateral lookup maps derived from one
// snapshot. It is built in a single pass per collection, carries the
// snapshot's generation ID, and is never mutated after construction.
//
// Lookups return empty slices for absent keys: the absence of
// relations is a normal condition, not an error. Area keys are matched
// case-insensitively, following the dataset's loose area naming.
type Index struct {
	snap       *domain.Snapshot
	generation uuid.UUID

	listingPos     map[string]int
	agentPos       map[string]int
	clientPos      map[string]int
	transactionPos map[string]int
	areaPos        map[string]int
	amenityPos     map[string]int

	agentListings     map[string][]int
	areaListings      map[string][]int
	areaAmenities     map[string][]int
	areaTransactions  map[string][]int
	agentTransactions map[string][]int
	agentClients      map[string][]int
	clientMatches     map[string][]string

	diagnostics []domain.Diagnostic
}

// BuildIndex derives the cross-reference index from a snapshot.
// Referential problems (a listing naming an unknown agent or area) are
// recorded as diagnostics, not errors: the forward data stays usable.
func BuildIndex(snap *domain.Snapshot) *Index {
	ix := &Index{
		snap:       snap,
		generation: snap.Generation,

		listingPos:     make(map[string]int, len(snap.Listings)),
		agentPos:       make(map[string]int, len(snap.Agents)),
		clientPos:      make(map[string]int, len(snap.Clients)),
		transactionPos: make(map[string]int, len(snap.Transactions)),
		areaPos:        make(map[string]int, len(snap.Areas)),
		amenityPos:     make(map[string]int, len(snap.Amenities)),

		agentListings:     make(map[string][]int),
		areaListings:      make(map[string][]int),
		areaAmenities:     make(map[string][]int),
		areaTransactions:  make(map[string][]int),
		agentTransactions: make(map[string][]int),
		agentClients:      make(map[string][]int),
		clientMatches:     make(map[string][]string),
	}

	for i, area := range snap.Areas {
		ix.areaPos[areaKey(area.Name)] = i
	}
	for i, agent := range snap.Agents {
		ix.agentPos[agent.ID] = i
	}

	for i, l := range snap.Listings {
		ix.listingPos[l.ID] = i
		ix.agentListings[l.AgentID] = append(ix.agentListings[l.AgentID], i)
		ix.areaListings[areaKey(l.Area)] = append(ix.areaListings[areaKey(l.Area)], i)

		if _, ok := ix.agentPos[l.AgentID]; !ok && l.AgentID != "" {
			ix.warnf(domain.EntityListing, "listing %s references unknown agent %s", l.ID, l.AgentID)
		}
		if _, ok := ix.areaPos[areaKey(l.Area)]; !ok && l.Area != "" {
			ix.warnf(domain.EntityListing, "listing %s references unknown area %q", l.ID, l.Area)
		}
	}

	for i, c := range snap.Clients {
		ix.clientPos[c.ID] = i
		if c.AgentID != "" {
			ix.agentClients[c.AgentID] = append(ix.agentClients[c.AgentID], i)
		}
		for _, m := range c.MatchHistory {
			ix.clientMatches[c.ID] = append(ix.clientMatches[c.ID], m.ListingID)
		}
	}

	for i, tx := range snap.Transactions {
		ix.transactionPos[tx.ID] = i
		ix.agentTransactions[tx.AgentID] = append(ix.agentTransactions[tx.AgentID], i)
		ix.areaTransactions[areaKey(tx.Area)] = append(ix.areaTransactions[areaKey(tx.Area)], i)
	}

	for i, am := range snap.Amenities {
		ix.amenityPos[am.ID] = i
		ix.areaAmenities[areaKey(am.Area)] = append(ix.areaAmenities[areaKey(am.Area)], i)
	}

	return ix
}

func (ix *Index) warnf(category domain.EntityType, format string, args ...any) {
	ix.diagnostics = append(ix.diagnostics, domain.Diagnostic{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	})
}

// areaKey normalises an area name for map lookup.
func areaKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Snapshot returns the snapshot this index was derived from.
func (ix *Index) Snapshot() *domain.Snapshot {
	return ix.snap
}

// Generation returns the generation ID shared with the snapshot.
func (ix *Index) Generation() uuid.UUID {
	return ix.generation
}

// Diagnostics returns the referential problems found at build time.
func (ix *Index) Diagnostics() []domain.Diagnostic {
	return ix.diagnostics
}

// ListingsForAgent returns the agent's listings in insertion order.
func (ix *Index) ListingsForAgent(agentID string) []domain.Listing {
	return resolve(ix.snap.Listings, ix.agentListings[agentID])
}

// ListingsForArea returns the area's listings in insertion order.
func (ix *Index) ListingsForArea(areaName string) []domain.Listing {
	return resolve(ix.snap.Listings, ix.areaListings[areaKey(areaName)])
}

// AmenitiesForArea returns the area's amenities in insertion order.
func (ix *Index) AmenitiesForArea(areaName string) []domain.Amenity {
	return resolve(ix.snap.Amenities, ix.areaAmenities[areaKey(areaName)])
}

// TransactionsForArea returns the area's transactions in insertion order.
func (ix *Index) TransactionsForArea(areaName string) []domain.Transaction {
	return resolve(ix.snap.Transactions, ix.areaTransactions[areaKey(areaName)])
}

// TransactionsForAgent returns the agent's transactions in insertion order.
func (ix *Index) TransactionsForAgent(agentID string) []domain.Transaction {
	return resolve(ix.snap.Transactions, ix.agentTransactions[agentID])
}

// ClientsForAgent returns the agent's clients in insertion order.
func (ix *Index) ClientsForAgent(agentID string) []domain.Client {
	return resolve(ix.snap.Clients, ix.agentClients[agentID])
}

// MatchesForClient returns the listing IDs previously recommended to
// the client.
func (ix *Index) MatchesForClient(clientID string) []string {
	return ix.clientMatches[clientID]
}

// Listing returns the listing with the given id.
func (ix *Index) Listing(id string) (domain.Listing, bool) {
	i, ok := ix.listingPos[id]
	if !ok {
		return domain.Listing{}, false
	}
	return ix.snap.Listings[i], true
}

// Agent returns the agent with the given id.
func (ix *Index) Agent(id string) (domain.Agent, bool) {
	i, ok := ix.agentPos[id]
	if !ok {
		return domain.Agent{}, false
	}
	return ix.snap.Agents[i], true
}

// Client returns the client with the given id.
func (ix *Index) Client(id string) (domain.Client, bool) {
	i, ok := ix.clientPos[id]
	if !ok {
		return domain.Client{}, false
	}
	return ix.snap.Clients[i], true
}

// Transaction returns the transaction with the given id.
func (ix *Index) Transaction(id string) (domain.Transaction, bool) {
	i, ok := ix.transactionPos[id]
	if !ok {
		return domain.Transaction{}, false
	}
	return ix.snap.Transactions[i], true
}

// Area returns the area with the given name, matched case-insensitively.
func (ix *Index) Area(name string) (domain.Area, bool) {
	i, ok := ix.areaPos[areaKey(name)]
	if !ok {
		return domain.Area{}, false
	}
	return ix.snap.Areas[i], true
}

// Amenity returns the amenity with the given id.
func (ix *Index) Amenity(id string) (domain.Amenity, bool) {
	i, ok := ix.amenityPos[id]
	if !ok {
		return domain.Amenity{}, false
	}
	return ix.snap.Amenities[i], true
}

// resolve maps collection positions back to records, preserving order.
func resolve[T any](records []T, positions []int) []T {
	if len(positions) == 0 {
		return []T{}
	}
	out := make([]T, len(positions))
	for i, p := range positions {
		out[i] = records[p]
	}
	return out
}
