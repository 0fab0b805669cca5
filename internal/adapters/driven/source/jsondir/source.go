// Package jsondir loads the dataset from a directory of JSON files,
// one file per record category. It is the default record source.
//
// A missing or unreadable category degrades to an empty collection
// with a snapshot diagnostic, and a malformed record is skipped with a
// diagnostic; only an unusable source (absent directory, expired
// context) fails the load as a whole.
package jsondir

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/garyj/real-estate-mcp/internal/core/domain"
	"github.com/garyj/real-estate-mcp/internal/core/ports/driven"
	"github.com/garyj/real-estate-mcp/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.RecordSource = (*Source)(nil)

// Category file paths relative to the data directory.
const (
	listingsPath     = "properties/active_listings.json"
	agentsPath       = "agents/agent_profiles.json"
	clientsPath      = "clients/client_database.json"
	transactionsPath = "transactions/recent_sales.json"
	areasPath        = "areas/city_overview.json"
	amenitiesPath    = "amenities/local_amenities.json"
)

// DefaultLoadTimeout bounds a full dataset load when the caller does
// not configure one.
const DefaultLoadTimeout = 10 * time.Second

// Source reads record collections from a JSON data directory.
type Source struct {
	dataDir string
	timeout time.Duration
}

// New creates a source over dataDir. A non-positive timeout falls back
// to DefaultLoadTimeout.
func New(dataDir string, timeout time.Duration) *Source {
	if timeout <= 0 {
		timeout = DefaultLoadTimeout
	}
	return &Source{dataDir: dataDir, timeout: timeout}
}

// Load reads every category and returns a fully-populated snapshot.
func (s *Source) Load(ctx context.Context) (*domain.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	info, err := os.Stat(s.dataDir)
	if err != nil {
		return nil, fmt.Errorf("data directory %s: %w", s.dataDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("data directory %s: not a directory", s.dataDir)
	}

	snap := domain.NewSnapshot()

	var listings listingsFile
	if readCategory(ctx, s, snap, domain.EntityListing, listingsPath, &listings) {
		snap.Listings = convert(snap, domain.EntityListing, listings.ActiveListings, listingDTO.toDomain)
	}

	var agents agentsFile
	if readCategory(ctx, s, snap, domain.EntityAgent, agentsPath, &agents) {
		snap.Agents = convert(snap, domain.EntityAgent, agents.Agents, agentDTO.toDomain)
	}

	var clients clientsFile
	if readCategory(ctx, s, snap, domain.EntityClient, clientsPath, &clients) {
		snap.Clients = convert(snap, domain.EntityClient, clients.Clients, clientDTO.toDomain)
	}

	var transactions transactionsFile
	if readCategory(ctx, s, snap, domain.EntityTransaction, transactionsPath, &transactions) {
		snap.Transactions = convert(snap, domain.EntityTransaction, transactions.RecentSales, transactionDTO.toDomain)
	}

	var areas areasFile
	if readCategory(ctx, s, snap, domain.EntityArea, areasPath, &areas) {
		snap.Areas = convert(snap, domain.EntityArea, areas.Areas, areaDTO.toDomain)
	}

	var amenities amenitiesFile
	if readCategory(ctx, s, snap, domain.EntityAmenity, amenitiesPath, &amenities) {
		snap.Amenities = convert(snap, domain.EntityAmenity, amenities.Amenities, amenityDTO.toDomain)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("loading dataset from %s: %w", s.dataDir, err)
	}
	return snap, nil
}

// readCategory reads and decodes one category file into v. It returns
// false after recording a diagnostic when the file is missing or
// malformed; the category then stays empty.
func readCategory(ctx context.Context, s *Source, snap *domain.Snapshot, category domain.EntityType, relPath string, v any) bool {
	if ctx.Err() != nil {
		return false
	}

	path := filepath.Join(s.dataDir, relPath)
	data, err := os.ReadFile(path)
	if err != nil {
		diag(snap, category, "reading %s: %v", relPath, err)
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		diag(snap, category, "decoding %s: %v", relPath, err)
		return false
	}
	return true
}

// convert maps DTOs to domain records, skipping malformed records with
// a diagnostic instead of failing the category.
func convert[D, R any](snap *domain.Snapshot, category domain.EntityType, dtos []D, toDomain func(D) (R, error)) []R {
	records := make([]R, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			diag(snap, category, "skipping record: %v", err)
			continue
		}
		records = append(records, record)
	}
	return records
}

func diag(snap *domain.Snapshot, category domain.EntityType, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	logger.Debug("jsondir [%s]: %s", category, msg)
	snap.Diagnostics = append(snap.Diagnostics, domain.Diagnostic{
		Category: category,
		Message:  msg,
	})
}
