// Package sqlite loads the dataset from a single SQLite database,
// one table per record category. It is an alternative to the jsondir
// source for deployments that keep the dataset in one file.
//
// The same partial-availability policy applies: a missing or broken
// table degrades to an empty collection with a diagnostic, and a
// malformed row is skipped; only an unusable database fails the load.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/garyj/real-estate-mcp/internal/core/domain"
	"github.com/garyj/real-estate-mcp/internal/core/ports/driven"
	"github.com/garyj/real-estate-mcp/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.RecordSource = (*Source)(nil)

// DefaultLoadTimeout bounds a full dataset load when the caller does
// not configure one.
const DefaultLoadTimeout = 10 * time.Second

// Schema is the expected table layout. List-valued columns hold JSON
// arrays; dates are ISO-8601 text.
const Schema = `
CREATE TABLE IF NOT EXISTS listings (
	id TEXT PRIMARY KEY,
	address TEXT NOT NULL DEFAULT '',
	area TEXT NOT NULL DEFAULT '',
	price INTEGER NOT NULL DEFAULT 0,
	bedrooms INTEGER NOT NULL DEFAULT 0,
	bathrooms REAL NOT NULL DEFAULT 0,
	square_feet INTEGER NOT NULL DEFAULT 0,
	property_type TEXT NOT NULL DEFAULT '',
	style TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT 'active',
	agent_id TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	features TEXT NOT NULL DEFAULT '[]'
);
CREATE TABLE IF NOT EXISTS agents (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL DEFAULT '',
	specializations TEXT NOT NULL DEFAULT '[]',
	expertise_areas TEXT NOT NULL DEFAULT '[]',
	bio TEXT NOT NULL DEFAULT '',
	phone TEXT NOT NULL DEFAULT '',
	email TEXT NOT NULL DEFAULT '',
	rating REAL NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS clients (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL DEFAULT '',
	role TEXT NOT NULL DEFAULT 'buyer',
	agent_id TEXT NOT NULL DEFAULT '',
	email TEXT NOT NULL DEFAULT '',
	min_price INTEGER,
	max_price INTEGER,
	min_bedrooms INTEGER NOT NULL DEFAULT 0,
	areas TEXT NOT NULL DEFAULT '[]',
	property_types TEXT NOT NULL DEFAULT '[]',
	match_history TEXT NOT NULL DEFAULT '[]'
);
CREATE TABLE IF NOT EXISTS transactions (
	id TEXT PRIMARY KEY,
	listing_id TEXT NOT NULL DEFAULT '',
	agent_id TEXT NOT NULL DEFAULT '',
	area TEXT NOT NULL DEFAULT '',
	closing_price INTEGER NOT NULL DEFAULT 0,
	closing_date TEXT NOT NULL DEFAULT '',
	type TEXT NOT NULL DEFAULT 'sale',
	days_on_market INTEGER NOT NULL DEFAULT 0,
	price_per_sqft REAL NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS areas (
	name TEXT PRIMARY KEY,
	description TEXT NOT NULL DEFAULT '',
	population INTEGER NOT NULL DEFAULT 0,
	median_income INTEGER NOT NULL DEFAULT 0,
	walk_score INTEGER NOT NULL DEFAULT 0,
	school_rating REAL NOT NULL DEFAULT 0,
	amenity_ids TEXT NOT NULL DEFAULT '[]'
);
CREATE TABLE IF NOT EXISTS amenities (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL DEFAULT '',
	area TEXT NOT NULL DEFAULT '',
	rating REAL NOT NULL DEFAULT 0
);
`

// matchDTO is the stored shape of one match_history entry.
type matchDTO struct {
	ListingID string `json:"listing_id"`
	Feedback  string `json:"feedback"`
}

// Source reads record collections from a SQLite database file.
type Source struct {
	path    string
	timeout time.Duration
}

// New creates a source over the database at path. A non-positive
// timeout falls back to DefaultLoadTimeout.
func New(path string, timeout time.Duration) *Source {
	if timeout <= 0 {
		timeout = DefaultLoadTimeout
	}
	return &Source{path: path, timeout: timeout}
}

// Load reads every table and returns a fully-populated snapshot.
func (s *Source) Load(ctx context.Context) (*domain.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := os.Stat(s.path); err != nil {
		return nil, fmt.Errorf("database %s: %w", s.path, err)
	}

	db, err := sql.Open("sqlite", s.path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", s.path, err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("database %s unreachable: %w", s.path, err)
	}

	snap := domain.NewSnapshot()
	s.loadListings(ctx, db, snap)
	s.loadAgents(ctx, db, snap)
	s.loadClients(ctx, db, snap)
	s.loadTransactions(ctx, db, snap)
	s.loadAreas(ctx, db, snap)
	s.loadAmenities(ctx, db, snap)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("loading dataset from %s: %w", s.path, err)
	}
	return snap, nil
}

func (s *Source) loadListings(ctx context.Context, db *sql.DB, snap *domain.Snapshot) {
	rows, err := db.QueryContext(ctx, `SELECT id, address, area, price, bedrooms, bathrooms,
		square_feet, property_type, style, status, agent_id, description, features
		FROM listings ORDER BY rowid`)
	if err != nil {
		diag(snap, domain.EntityListing, "querying listings: %v", err)
		return
	}
	defer rows.Close()

	for rows.Next() {
		var l domain.Listing
		var status, features string
		if err := rows.Scan(&l.ID, &l.Address, &l.Area, &l.Price, &l.Bedrooms, &l.Bathrooms,
			&l.SquareFeet, &l.PropertyType, &l.Style, &status, &l.AgentID, &l.Description, &features); err != nil {
			diag(snap, domain.EntityListing, "scanning listing: %v", err)
			continue
		}
		l.Status = domain.ListingStatus(status)
		if !l.Status.IsValid() || l.Price < 0 {
			diag(snap, domain.EntityListing, "skipping listing %s: status %q, price %d", l.ID, status, l.Price)
			continue
		}
		if !decodeList(snap, domain.EntityListing, l.ID, features, &l.Features) {
			continue
		}
		snap.Listings = append(snap.Listings, l)
	}
	if err := rows.Err(); err != nil {
		diag(snap, domain.EntityListing, "iterating listings: %v", err)
	}
}

func (s *Source) loadAgents(ctx context.Context, db *sql.DB, snap *domain.Snapshot) {
	rows, err := db.QueryContext(ctx, `SELECT id, name, specializations, expertise_areas,
		bio, phone, email, rating FROM agents ORDER BY rowid`)
	if err != nil {
		diag(snap, domain.EntityAgent, "querying agents: %v", err)
		return
	}
	defer rows.Close()

	for rows.Next() {
		var a domain.Agent
		var specializations, expertise string
		if err := rows.Scan(&a.ID, &a.Name, &specializations, &expertise,
			&a.Bio, &a.Phone, &a.Email, &a.Rating); err != nil {
			diag(snap, domain.EntityAgent, "scanning agent: %v", err)
			continue
		}
		if !decodeList(snap, domain.EntityAgent, a.ID, specializations, &a.Specializations) ||
			!decodeList(snap, domain.EntityAgent, a.ID, expertise, &a.ExpertiseAreas) {
			continue
		}
		snap.Agents = append(snap.Agents, a)
	}
	if err := rows.Err(); err != nil {
		diag(snap, domain.EntityAgent, "iterating agents: %v", err)
	}
}

func (s *Source) loadClients(ctx context.Context, db *sql.DB, snap *domain.Snapshot) {
	rows, err := db.QueryContext(ctx, `SELECT id, name, role, agent_id, email, min_price,
		max_price, min_bedrooms, areas, property_types, match_history FROM clients ORDER BY rowid`)
	if err != nil {
		diag(snap, domain.EntityClient, "querying clients: %v", err)
		return
	}
	defer rows.Close()

	for rows.Next() {
		var c domain.Client
		var role, areas, types, history string
		var minPrice, maxPrice sql.NullInt64
		if err := rows.Scan(&c.ID, &c.Name, &role, &c.AgentID, &c.Email, &minPrice,
			&maxPrice, &c.Preferences.MinBedrooms, &areas, &types, &history); err != nil {
			diag(snap, domain.EntityClient, "scanning client: %v", err)
			continue
		}
		c.Role = domain.ClientRole(role)
		if !c.Role.IsValid() {
			diag(snap, domain.EntityClient, "skipping client %s: unknown role %q", c.ID, role)
			continue
		}
		if minPrice.Valid {
			c.Preferences.MinPrice = &minPrice.Int64
		}
		if maxPrice.Valid {
			c.Preferences.MaxPrice = &maxPrice.Int64
		}
		var matches []matchDTO
		if !decodeList(snap, domain.EntityClient, c.ID, areas, &c.Preferences.Areas) ||
			!decodeList(snap, domain.EntityClient, c.ID, types, &c.Preferences.PropertyTypes) ||
			!decodeList(snap, domain.EntityClient, c.ID, history, &matches) {
			continue
		}
		for _, m := range matches {
			c.MatchHistory = append(c.MatchHistory, domain.MatchRecord{ListingID: m.ListingID, Feedback: m.Feedback})
		}
		snap.Clients = append(snap.Clients, c)
	}
	if err := rows.Err(); err != nil {
		diag(snap, domain.EntityClient, "iterating clients: %v", err)
	}
}

func (s *Source) loadTransactions(ctx context.Context, db *sql.DB, snap *domain.Snapshot) {
	rows, err := db.QueryContext(ctx, `SELECT id, listing_id, agent_id, area, closing_price,
		closing_date, type, days_on_market, price_per_sqft FROM transactions ORDER BY rowid`)
	if err != nil {
		diag(snap, domain.EntityTransaction, "querying transactions: %v", err)
		return
	}
	defer rows.Close()

	for rows.Next() {
		var tx domain.Transaction
		var txType, closed string
		if err := rows.Scan(&tx.ID, &tx.ListingID, &tx.AgentID, &tx.Area, &tx.ClosingPrice,
			&closed, &txType, &tx.DaysOnMarket, &tx.PricePerSqft); err != nil {
			diag(snap, domain.EntityTransaction, "scanning transaction: %v", err)
			continue
		}
		tx.Type = domain.TransactionType(txType)
		if !tx.Type.IsValid() {
			diag(snap, domain.EntityTransaction, "skipping transaction %s: unknown type %q", tx.ID, txType)
			continue
		}
		if closed != "" {
			parsed, err := time.Parse("2006-01-02", closed)
			if err != nil {
				diag(snap, domain.EntityTransaction, "skipping transaction %s: malformed closing date %q", tx.ID, closed)
				continue
			}
			tx.ClosingDate = parsed
		}
		snap.Transactions = append(snap.Transactions, tx)
	}
	if err := rows.Err(); err != nil {
		diag(snap, domain.EntityTransaction, "iterating transactions: %v", err)
	}
}

func (s *Source) loadAreas(ctx context.Context, db *sql.DB, snap *domain.Snapshot) {
	rows, err := db.QueryContext(ctx, `SELECT name, description, population, median_income,
		walk_score, school_rating, amenity_ids FROM areas ORDER BY rowid`)
	if err != nil {
		diag(snap, domain.EntityArea, "querying areas: %v", err)
		return
	}
	defer rows.Close()

	for rows.Next() {
		var a domain.Area
		var amenityIDs string
		if err := rows.Scan(&a.Name, &a.Description, &a.Population, &a.MedianIncome,
			&a.WalkScore, &a.SchoolRating, &amenityIDs); err != nil {
			diag(snap, domain.EntityArea, "scanning area: %v", err)
			continue
		}
		if !decodeList(snap, domain.EntityArea, a.Name, amenityIDs, &a.AmenityIDs) {
			continue
		}
		snap.Areas = append(snap.Areas, a)
	}
	if err := rows.Err(); err != nil {
		diag(snap, domain.EntityArea, "iterating areas: %v", err)
	}
}

func (s *Source) loadAmenities(ctx context.Context, db *sql.DB, snap *domain.Snapshot) {
	rows, err := db.QueryContext(ctx, `SELECT id, name, category, area, rating
		FROM amenities ORDER BY rowid`)
	if err != nil {
		diag(snap, domain.EntityAmenity, "querying amenities: %v", err)
		return
	}
	defer rows.Close()

	for rows.Next() {
		var a domain.Amenity
		var category string
		if err := rows.Scan(&a.ID, &a.Name, &category, &a.Area, &a.Rating); err != nil {
			diag(snap, domain.EntityAmenity, "scanning amenity: %v", err)
			continue
		}
		a.Category = domain.AmenityCategory(category)
		if !a.Category.IsValid() {
			diag(snap, domain.EntityAmenity, "skipping amenity %s: unknown category %q", a.ID, category)
			continue
		}
		snap.Amenities = append(snap.Amenities, a)
	}
	if err := rows.Err(); err != nil {
		diag(snap, domain.EntityAmenity, "iterating amenities: %v", err)
	}
}

// decodeList decodes a JSON array column, recording a diagnostic and
// rejecting the row on malformed JSON.
func decodeList[T any](snap *domain.Snapshot, category domain.EntityType, id, raw string, out *[]T) bool {
	if raw == "" {
		return true
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		diag(snap, category, "skipping %s: malformed list column: %v", id, err)
		return false
	}
	return true
}

func diag(snap *domain.Snapshot, category domain.EntityType, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	logger.Debug("sqlite [%s]: %s", category, msg)
	snap.Diagnostics = append(snap.Diagnostics, domain.Diagnostic{
		Category: category,
		Message:  msg,
	})
}
