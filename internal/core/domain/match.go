package domain

// Scoring weights for client-to-listing matching. The four components
// are scored independently in [0,1], combined as a weighted sum and
// scaled to [0,MaxScore]. The weights sum to 1.
const (
	// WeightPrice credits listings priced inside the client's budget,
	// with linear decay for listings outside it.
	WeightPrice = 0.35

	// WeightBedrooms credits listings meeting the bedroom minimum,
	// with proportional credit for a shortfall.
	WeightBedrooms = 0.25

	// WeightArea credits listings in one of the desired areas.
	WeightArea = 0.25

	// WeightType credits listings of a desired property type.
	WeightType = 0.15

	// MaxScore is the upper bound of the normalized score.
	MaxScore = 100.0

	// PriceDecaySpan is the fraction outside the budget at which price
	// credit reaches zero: a listing 50% above the maximum (or below
	// the minimum) scores no price credit at all.
	PriceDecaySpan = 0.5
)

// ScoreBreakdown records the per-component credit, each in [0,1],
// before weighting.
type ScoreBreakdown struct {
	PriceFit   float64
	BedroomFit float64
	AreaMatch  float64
	TypeMatch  float64
}

// Recommendation is a listing ranked for a specific client.
type Recommendation struct {
	// Listing is the recommended listing.
	Listing Listing

	// Score is the normalized fit in [0,MaxScore].
	Score float64

	// Breakdown explains how the score was assembled.
	Breakdown ScoreBreakdown
}
