package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/garyj/real-estate-mcp/internal/core/domain"
)

// ListingOutput represents a single property listing.
type ListingOutput struct {
	ID           string   `json:"id"`
	Address      string   `json:"address"`
	Area         string   `json:"area"`
	Price        int64    `json:"price"`
	Bedrooms     int      `json:"bedrooms"`
	Bathrooms    float64  `json:"bathrooms"`
	SquareFeet   int      `json:"square_feet"`
	PropertyType string   `json:"property_type"`
	Style        string   `json:"style,omitempty"`
	Status       string   `json:"status"`
	AgentID      string   `json:"agent_id"`
	Description  string   `json:"description,omitempty"`
	Features     []string `json:"features,omitempty"`
}

// AgentOutput represents a single agent profile.
type AgentOutput struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Specializations []string `json:"specializations,omitempty"`
	ExpertiseAreas  []string `json:"expertise_areas,omitempty"`
	Bio             string   `json:"bio,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	Email           string   `json:"email,omitempty"`
	Rating          float64  `json:"rating,omitempty"`
}

// AreaStatsOutput represents the market summary for one area.
type AreaStatsOutput struct {
	Area                string  `json:"area"`
	ActiveListings      int     `json:"active_listings"`
	AveragePrice        float64 `json:"average_price"`
	MinPrice            int64   `json:"min_price"`
	MaxPrice            int64   `json:"max_price"`
	AveragePricePerSqft float64 `json:"average_price_per_sqft"`
}

// AgentStatsOutput represents performance metrics for one agent.
type AgentStatsOutput struct {
	AgentID             string   `json:"agent_id"`
	Name                string   `json:"name"`
	ActiveListings      int      `json:"active_listings"`
	ClosedTransactions  int      `json:"closed_transactions"`
	TotalVolume         int64    `json:"total_volume"`
	AverageClosingPrice float64  `json:"average_closing_price"`
	AverageDaysOnMarket float64  `json:"average_days_on_market"`
	Specializations     []string `json:"specializations,omitempty"`
	Rating              float64  `json:"rating,omitempty"`
}

// TrendsOutput represents a market trends summary.
type TrendsOutput struct {
	Area                string  `json:"area"`
	TotalSales          int     `json:"total_sales"`
	AverageSalePrice    float64 `json:"average_sale_price"`
	AverageDaysOnMarket float64 `json:"average_days_on_market"`
	AveragePricePerSqft float64 `json:"average_price_per_sqft"`
}

// RecommendationOutput represents a listing ranked for a client.
type RecommendationOutput struct {
	Listing    ListingOutput `json:"listing"`
	Score      float64       `json:"score"`
	PriceFit   float64       `json:"price_fit"`
	BedroomFit float64       `json:"bedroom_fit"`
	AreaMatch  float64       `json:"area_match"`
	TypeMatch  float64       `json:"type_match"`
}

func listingOutput(l domain.Listing) ListingOutput {
	return ListingOutput{
		ID:           l.ID,
		Address:      l.Address,
		Area:         l.Area,
		Price:        l.Price,
		Bedrooms:     l.Bedrooms,
		Bathrooms:    l.Bathrooms,
		SquareFeet:   l.SquareFeet,
		PropertyType: l.PropertyType,
		Style:        l.Style,
		Status:       string(l.Status),
		AgentID:      l.AgentID,
		Description:  l.Description,
		Features:     l.Features,
	}
}

func listingOutputs(listings []domain.Listing) []ListingOutput {
	out := make([]ListingOutput, len(listings))
	for i := range listings {
		out[i] = listingOutput(listings[i])
	}
	return out
}

func agentOutput(a domain.Agent) AgentOutput {
	return AgentOutput{
		ID:              a.ID,
		Name:            a.Name,
		Specializations: a.Specializations,
		ExpertiseAreas:  a.ExpertiseAreas,
		Bio:             a.Bio,
		Phone:           a.Phone,
		Email:           a.Email,
		Rating:          a.Rating,
	}
}

func areaStatsOutput(s domain.AreaStats) AreaStatsOutput {
	return AreaStatsOutput{
		Area:                s.Area,
		ActiveListings:      s.ActiveListings,
		AveragePrice:        s.AveragePrice,
		MinPrice:            s.MinPrice,
		MaxPrice:            s.MaxPrice,
		AveragePricePerSqft: s.AveragePricePerSqft,
	}
}

func trendsOutput(t domain.MarketTrends) TrendsOutput {
	return TrendsOutput{
		Area:                t.Area,
		TotalSales:          t.TotalSales,
		AverageSalePrice:    t.AverageSalePrice,
		AverageDaysOnMarket: t.AverageDaysOnMarket,
		AveragePricePerSqft: t.AveragePricePerSqft,
	}
}

// SearchListingsInput is the input schema for the search_listings tool.
type SearchListingsInput struct {
	Query string `json:"query" jsonschema:"free-text query matched against address, description, area, features, type and style"`
}

// SearchListingsOutput is the output schema for the search_listings tool.
type SearchListingsOutput struct {
	Listings []ListingOutput `json:"listings"`
	Count    int             `json:"count"`
}

// FilterListingsInput is the input schema for the filter_listings tool.
// Omitted fields impose no constraint; range bounds are inclusive.
type FilterListingsInput struct {
	MinPrice      *int64   `json:"min_price,omitempty" jsonschema:"minimum asking price in dollars"`
	MaxPrice      *int64   `json:"max_price,omitempty" jsonschema:"maximum asking price in dollars"`
	MinBedrooms   *int     `json:"min_bedrooms,omitempty" jsonschema:"minimum number of bedrooms"`
	MaxBedrooms   *int     `json:"max_bedrooms,omitempty" jsonschema:"maximum number of bedrooms"`
	MinBathrooms  *float64 `json:"min_bathrooms,omitempty" jsonschema:"minimum number of bathrooms"`
	MaxBathrooms  *float64 `json:"max_bathrooms,omitempty" jsonschema:"maximum number of bathrooms"`
	MinSquareFeet *int     `json:"min_square_feet,omitempty" jsonschema:"minimum interior size in square feet"`
	MaxSquareFeet *int     `json:"max_square_feet,omitempty" jsonschema:"maximum interior size in square feet"`
	Areas         []string `json:"areas,omitempty" jsonschema:"restrict to listings in any of these areas"`
	PropertyTypes []string `json:"property_types,omitempty" jsonschema:"restrict to any of these property types (condo, single_family, townhouse, ...)"`
	Statuses      []string `json:"statuses,omitempty" jsonschema:"restrict to any of these statuses (active, pending, sold)"`
	Features      []string `json:"features,omitempty" jsonschema:"require all of these features (garage, pool, ...)"`
	Query         string   `json:"query,omitempty" jsonschema:"free-text constraint on the listing's searchable text"`
	Sort          string   `json:"sort,omitempty" jsonschema:"result ordering: price_asc or price_desc (default preserves dataset order)"`
}

// FilterListingsOutput is the output schema for the filter_listings tool.
type FilterListingsOutput struct {
	Listings []ListingOutput `json:"listings"`
	Count    int             `json:"count"`
}

// GetListingInput is the input schema for the get_listing tool.
type GetListingInput struct {
	ListingID string `json:"listing_id" jsonschema:"the listing identifier, e.g. PROP-001"`
}

// GetListingOutput is the output schema for the get_listing tool.
type GetListingOutput struct {
	Listing ListingOutput `json:"listing"`
}

// SearchAgentsInput is the input schema for the search_agents tool.
type SearchAgentsInput struct {
	Query string `json:"query" jsonschema:"free-text query matched against agent name, specializations, expertise areas and bio"`
}

// SearchAgentsOutput is the output schema for the search_agents tool.
type SearchAgentsOutput struct {
	Agents []AgentOutput `json:"agents"`
	Count  int           `json:"count"`
}

// MatchClientInput is the input schema for the match_client tool.
type MatchClientInput struct {
	ClientID string `json:"client_id" jsonschema:"the client identifier, e.g. CLI-001"`
}

// MatchClientOutput is the output schema for the match_client tool.
type MatchClientOutput struct {
	Recommendations []RecommendationOutput `json:"recommendations"`
	Count           int                    `json:"count"`
}

// AreaStatsInput is the input schema for the area_stats tool.
type AreaStatsInput struct {
	Area string `json:"area" jsonschema:"the area name, e.g. Woodcrest"`
}

// AgentStatsInput is the input schema for the agent_stats tool.
type AgentStatsInput struct {
	AgentID string `json:"agent_id" jsonschema:"the agent identifier, e.g. AGT-001"`
}

// MarketTrendsInput is the input schema for the market_trends tool.
type MarketTrendsInput struct {
	Area string `json:"area,omitempty" jsonschema:"restrict the summary to one area (omit for the city-wide view)"`
}

// CompareAreasInput is the input schema for the compare_areas tool.
type CompareAreasInput struct {
	Areas []string `json:"areas" jsonschema:"the area names to compare"`
}

// CompareAreasOutput is the output schema for the compare_areas tool.
type CompareAreasOutput struct {
	Areas []AreaStatsOutput `json:"areas"`
	Count int               `json:"count"`
}

// RefreshDataInput is the input schema for the refresh_data tool.
type RefreshDataInput struct{}

// RefreshDataOutput is the output schema for the refresh_data tool.
type RefreshDataOutput struct {
	Generation  string   `json:"generation"`
	Listings    int      `json:"listings"`
	Agents      int      `json:"agents"`
	Clients     int      `json:"clients"`
	Diagnostics []string `json:"diagnostics,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_listings",
		Description: "Search property listings by free text",
	}, s.handleSearchListings)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "filter_listings",
		Description: "Filter property listings by price, size, area, type, status and features",
	}, s.handleFilterListings)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_listing",
		Description: "Fetch a single property listing by identifier",
	}, s.handleGetListing)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_agents",
		Description: "Search agent profiles by free text",
	}, s.handleSearchAgents)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "match_client",
		Description: "Rank active listings against a client's stated preferences",
	}, s.handleMatchClient)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "area_stats",
		Description: "Market summary for one area",
	}, s.handleAreaStats)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "agent_stats",
		Description: "Performance metrics for one agent",
	}, s.handleAgentStats)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "market_trends",
		Description: "Sale trends city-wide or for one area",
	}, s.handleMarketTrends)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "compare_areas",
		Description: "Side-by-side market summaries for several areas",
	}, s.handleCompareAreas)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "refresh_data",
		Description: "Reload the dataset and swap in a fresh snapshot",
	}, s.handleRefreshData)
}

// handleSearchListings handles the search_listings tool invocation.
func (s *Server) handleSearchListings(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchListingsInput,
) (*mcp.CallToolResult, SearchListingsOutput, error) {
	listings, err := s.ports.Search.Search(ctx, input.Query)
	if err != nil {
		return nil, SearchListingsOutput{}, err
	}
	return nil, SearchListingsOutput{
		Listings: listingOutputs(listings),
		Count:    len(listings),
	}, nil
}

// handleFilterListings handles the filter_listings tool invocation.
func (s *Server) handleFilterListings(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FilterListingsInput,
) (*mcp.CallToolResult, FilterListingsOutput, error) {
	criteria := domain.FilterCriteria{
		MinPrice:      input.MinPrice,
		MaxPrice:      input.MaxPrice,
		MinBedrooms:   input.MinBedrooms,
		MaxBedrooms:   input.MaxBedrooms,
		MinBathrooms:  input.MinBathrooms,
		MaxBathrooms:  input.MaxBathrooms,
		MinSquareFeet: input.MinSquareFeet,
		MaxSquareFeet: input.MaxSquareFeet,
		Areas:         input.Areas,
		PropertyTypes: input.PropertyTypes,
		Features:      input.Features,
		Query:         input.Query,
		Sort:          domain.SortOrder(input.Sort),
	}
	for _, status := range input.Statuses {
		criteria.Statuses = append(criteria.Statuses, domain.ListingStatus(status))
	}

	listings, err := s.ports.Search.Filter(ctx, criteria)
	if err != nil {
		return nil, FilterListingsOutput{}, err
	}
	return nil, FilterListingsOutput{
		Listings: listingOutputs(listings),
		Count:    len(listings),
	}, nil
}

// handleGetListing handles the get_listing tool invocation.
func (s *Server) handleGetListing(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetListingInput,
) (*mcp.CallToolResult, GetListingOutput, error) {
	record, err := s.ports.Catalog.Get(ctx, domain.EntityListing, input.ListingID)
	if err != nil {
		return nil, GetListingOutput{}, err
	}
	listing, ok := record.(domain.Listing)
	if !ok {
		return nil, GetListingOutput{}, domain.ErrUnsupportedType
	}
	return nil, GetListingOutput{Listing: listingOutput(listing)}, nil
}

// handleSearchAgents handles the search_agents tool invocation.
func (s *Server) handleSearchAgents(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchAgentsInput,
) (*mcp.CallToolResult, SearchAgentsOutput, error) {
	agents, err := s.ports.Search.SearchAgents(ctx, input.Query)
	if err != nil {
		return nil, SearchAgentsOutput{}, err
	}
	output := SearchAgentsOutput{
		Agents: make([]AgentOutput, len(agents)),
		Count:  len(agents),
	}
	for i := range agents {
		output.Agents[i] = agentOutput(agents[i])
	}
	return nil, output, nil
}

// handleMatchClient handles the match_client tool invocation.
func (s *Server) handleMatchClient(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input MatchClientInput,
) (*mcp.CallToolResult, MatchClientOutput, error) {
	recs, err := s.ports.Match.Match(ctx, input.ClientID)
	if err != nil {
		return nil, MatchClientOutput{}, err
	}
	output := MatchClientOutput{
		Recommendations: make([]RecommendationOutput, len(recs)),
		Count:           len(recs),
	}
	for i := range recs {
		output.Recommendations[i] = RecommendationOutput{
			Listing:    listingOutput(recs[i].Listing),
			Score:      recs[i].Score,
			PriceFit:   recs[i].Breakdown.PriceFit,
			BedroomFit: recs[i].Breakdown.BedroomFit,
			AreaMatch:  recs[i].Breakdown.AreaMatch,
			TypeMatch:  recs[i].Breakdown.TypeMatch,
		}
	}
	return nil, output, nil
}

// handleAreaStats handles the area_stats tool invocation.
func (s *Server) handleAreaStats(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AreaStatsInput,
) (*mcp.CallToolResult, AreaStatsOutput, error) {
	stats, err := s.ports.Stats.AreaStats(ctx, input.Area)
	if err != nil {
		return nil, AreaStatsOutput{}, err
	}
	return nil, areaStatsOutput(stats), nil
}

// handleAgentStats handles the agent_stats tool invocation.
func (s *Server) handleAgentStats(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AgentStatsInput,
) (*mcp.CallToolResult, AgentStatsOutput, error) {
	stats, err := s.ports.Stats.AgentStats(ctx, input.AgentID)
	if err != nil {
		return nil, AgentStatsOutput{}, err
	}
	return nil, AgentStatsOutput{
		AgentID:             stats.AgentID,
		Name:                stats.Name,
		ActiveListings:      stats.ActiveListings,
		ClosedTransactions:  stats.ClosedTransactions,
		TotalVolume:         stats.TotalVolume,
		AverageClosingPrice: stats.AverageClosingPrice,
		AverageDaysOnMarket: stats.AverageDaysOnMarket,
		Specializations:     stats.Specializations,
		Rating:              stats.Rating,
	}, nil
}

// handleMarketTrends handles the market_trends tool invocation.
func (s *Server) handleMarketTrends(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input MarketTrendsInput,
) (*mcp.CallToolResult, TrendsOutput, error) {
	trends, err := s.ports.Stats.MarketTrends(ctx, input.Area)
	if err != nil {
		return nil, TrendsOutput{}, err
	}
	return nil, trendsOutput(trends), nil
}

// handleCompareAreas handles the compare_areas tool invocation.
func (s *Server) handleCompareAreas(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CompareAreasInput,
) (*mcp.CallToolResult, CompareAreasOutput, error) {
	stats, err := s.ports.Stats.CompareAreas(ctx, input.Areas)
	if err != nil {
		return nil, CompareAreasOutput{}, err
	}
	output := CompareAreasOutput{
		Areas: make([]AreaStatsOutput, len(stats)),
		Count: len(stats),
	}
	for i := range stats {
		output.Areas[i] = areaStatsOutput(stats[i])
	}
	return nil, output, nil
}

// handleRefreshData handles the refresh_data tool invocation.
func (s *Server) handleRefreshData(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ RefreshDataInput,
) (*mcp.CallToolResult, RefreshDataOutput, error) {
	if err := s.ports.Catalog.Refresh(ctx); err != nil {
		return nil, RefreshDataOutput{}, err
	}

	snap := s.ports.Catalog.Snapshot()
	output := RefreshDataOutput{
		Generation: snap.Generation.String(),
		Listings:   len(snap.Listings),
		Agents:     len(snap.Agents),
		Clients:    len(snap.Clients),
	}
	for _, d := range snap.Diagnostics {
		output.Diagnostics = append(output.Diagnostics, d.String())
	}
	return nil, output, nil
}
