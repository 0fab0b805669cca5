package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/garyj/real-estate-mcp/internal/core/domain"
	"github.com/garyj/real-estate-mcp/internal/core/ports/driving"
	"github.com/garyj/real-estate-mcp/internal/logger"
)

// Ensure MatchService implements the interface.
var _ driving.MatchService = (*MatchService)(nil)

// MatchService ranks active listings for a client by fit to stated
// preferences. Scoring is deterministic: the same snapshot and the
// same preferences always produce the same ranked output.
type MatchService struct {
	store *Store
}

// NewMatchService creates a new match service over the store.
func NewMatchService(store *Store) *MatchService {
	return &MatchService{store: store}
}

// Match scores every active listing against the client's preferences.
// Only components the client actually stated participate; the weighted
// sum is normalized over the active weights to [0,domain.MaxScore].
// Listings scoring zero are excluded: recommendations must be
// relevant, not exhaustive. Non-buyer clients receive an empty result.
func (s *MatchService) Match(_ context.Context, clientID string) ([]domain.Recommendation, error) {
	ix := s.store.Index()

	client, ok := ix.Client(clientID)
	if !ok {
		return nil, fmt.Errorf("client %s: %w", clientID, domain.ErrNotFound)
	}
	if client.Role != domain.RoleBuyer {
		logger.Debug("Client %s has role %s, no recommendations", clientID, client.Role)
		return []domain.Recommendation{}, nil
	}

	logger.Section("Client Matching")
	logger.Debug("Matching listings for client %s", clientID)

	recs := []domain.Recommendation{}
	for _, l := range ix.Snapshot().Listings {
		if l.Status != domain.StatusActive {
			continue
		}
		score, breakdown := scoreListing(l, client.Preferences)
		if score <= 0 {
			continue
		}
		recs = append(recs, domain.Recommendation{
			Listing:   l,
			Score:     score,
			Breakdown: breakdown,
		})
	}

	// Stable sort keeps insertion order for equal scores.
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Score > recs[j].Score })

	logger.Debug("Matched %d listings for client %s", len(recs), clientID)
	return recs, nil
}

// scoreListing assembles the weighted score for one listing. Each
// stated component contributes credit in [0,1] at its documented
// weight; unstated components are left out of both the sum and the
// normalization, so a client who only states an area preference can
// still reach a full score on an area match.
func scoreListing(l domain.Listing, prefs domain.Preferences) (float64, domain.ScoreBreakdown) {
	var breakdown domain.ScoreBreakdown
	var sum, totalWeight float64

	if prefs.MinPrice != nil || prefs.MaxPrice != nil {
		breakdown.PriceFit = priceFit(l.Price, prefs.MinPrice, prefs.MaxPrice)
		sum += domain.WeightPrice * breakdown.PriceFit
		totalWeight += domain.WeightPrice
	}
	if prefs.MinBedrooms > 0 {
		breakdown.BedroomFit = bedroomFit(l.Bedrooms, prefs.MinBedrooms)
		sum += domain.WeightBedrooms * breakdown.BedroomFit
		totalWeight += domain.WeightBedrooms
	}
	if len(prefs.Areas) > 0 {
		if containsFold(prefs.Areas, l.Area) {
			breakdown.AreaMatch = 1
		}
		sum += domain.WeightArea * breakdown.AreaMatch
		totalWeight += domain.WeightArea
	}
	if len(prefs.PropertyTypes) > 0 {
		if containsFold(prefs.PropertyTypes, l.PropertyType) {
			breakdown.TypeMatch = 1
		}
		sum += domain.WeightType * breakdown.TypeMatch
		totalWeight += domain.WeightType
	}

	if totalWeight == 0 {
		return 0, breakdown
	}
	return domain.MaxScore * sum / totalWeight, breakdown
}

// priceFit gives full credit inside the stated range and linearly
// decaying credit outside it, reaching zero once the price is
// domain.PriceDecaySpan (50%) beyond the violated bound. A violated
// non-positive bound has no scale to decay against and earns zero.
func priceFit(price int64, minPrice, maxPrice *int64) float64 {
	if minPrice != nil && price < *minPrice {
		if *minPrice <= 0 {
			return 0
		}
		shortfall := float64(*minPrice-price) / float64(*minPrice)
		return clampZero(1 - shortfall/domain.PriceDecaySpan)
	}
	if maxPrice != nil && price > *maxPrice {
		if *maxPrice <= 0 {
			return 0
		}
		excess := float64(price-*maxPrice) / float64(*maxPrice)
		return clampZero(1 - excess/domain.PriceDecaySpan)
	}
	return 1
}

// bedroomFit gives full credit at or above the minimum and credit
// proportional to the shortfall below it.
func bedroomFit(bedrooms, minBedrooms int) float64 {
	if bedrooms >= minBedrooms {
		return 1
	}
	if bedrooms <= 0 {
		return 0
	}
	return float64(bedrooms) / float64(minBedrooms)
}

func clampZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
