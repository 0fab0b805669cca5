package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/garyj/real-estate-mcp/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for real-estate resources.
	uriScheme = "realestate://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resources for the three browsable collections.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "listings",
		Name:        "listings",
		Description: "All property listings in the active snapshot",
		MIMEType:    "application/json",
	}, s.handleListingsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "agents",
		Name:        "agents",
		Description: "All agent profiles in the active snapshot",
		MIMEType:    "application/json",
	}, s.handleAgentsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "areas",
		Name:        "areas",
		Description: "All area profiles in the active snapshot",
		MIMEType:    "application/json",
	}, s.handleAreasResource)

	// Template for the comprehensive area report.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "areas/{name}/report",
		Name:        "area-report",
		Description: "Comprehensive market report for one area",
		MIMEType:    "application/json",
	}, s.handleAreaReportResource)

	// Template for listing market context.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "listings/{listingId}/insights",
		Name:        "listing-insights",
		Description: "Market context for one listing",
		MIMEType:    "application/json",
	}, s.handleListingInsightsResource)
}

// handleListingsResource returns every listing as a JSON array.
func (s *Server) handleListingsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	records, err := s.ports.Catalog.All(ctx, domain.EntityListing)
	if err != nil {
		return nil, fmt.Errorf("listing listings: %w", err)
	}
	listings, _ := records.([]domain.Listing)
	return jsonResource(req.Params.URI, listingOutputs(listings))
}

// handleAgentsResource returns every agent profile as a JSON array.
func (s *Server) handleAgentsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	records, err := s.ports.Catalog.All(ctx, domain.EntityAgent)
	if err != nil {
		return nil, fmt.Errorf("listing agents: %w", err)
	}
	agents, _ := records.([]domain.Agent)

	infos := make([]AgentOutput, len(agents))
	for i := range agents {
		infos[i] = agentOutput(agents[i])
	}
	return jsonResource(req.Params.URI, infos)
}

// handleAreasResource returns every area profile as a JSON array.
func (s *Server) handleAreasResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	records, err := s.ports.Catalog.All(ctx, domain.EntityArea)
	if err != nil {
		return nil, fmt.Errorf("listing areas: %w", err)
	}
	areas, _ := records.([]domain.Area)

	type areaInfo struct {
		Name         string  `json:"name"`
		Description  string  `json:"description,omitempty"`
		Population   int     `json:"population,omitempty"`
		MedianIncome int64   `json:"median_income,omitempty"`
		WalkScore    int     `json:"walk_score,omitempty"`
		SchoolRating float64 `json:"school_rating,omitempty"`
	}

	infos := make([]areaInfo, len(areas))
	for i, a := range areas {
		infos[i] = areaInfo{
			Name:         a.Name,
			Description:  a.Description,
			Population:   a.Population,
			MedianIncome: a.MedianIncome,
			WalkScore:    a.WalkScore,
			SchoolRating: a.SchoolRating,
		}
	}
	return jsonResource(req.Params.URI, infos)
}

// handleAreaReportResource returns the comprehensive report for one area.
func (s *Server) handleAreaReportResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract the area name from realestate://areas/{name}/report
	name := extractAreaName(req.Params.URI)
	if name == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	report, err := s.ports.Stats.AreaReport(ctx, name)
	if err != nil {
		if isNotFound(err) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("building area report: %w", err)
	}

	type reportInfo struct {
		Area           string            `json:"area"`
		Description    string            `json:"description,omitempty"`
		Stats          AreaStatsOutput   `json:"stats"`
		ActiveListings []ListingOutput   `json:"active_listings"`
		RecentSales    []transactionInfo `json:"recent_sales"`
		Amenities      []amenityInfo     `json:"amenities"`
		Trends         TrendsOutput      `json:"trends"`
	}

	info := reportInfo{
		Area:           report.Area.Name,
		Description:    report.Area.Description,
		Stats:          areaStatsOutput(report.Stats),
		ActiveListings: listingOutputs(report.ActiveListings),
		RecentSales:    transactionInfos(report.RecentSales),
		Amenities:      amenityInfos(report.Amenities),
		Trends:         trendsOutput(report.Trends),
	}
	return jsonResource(req.Params.URI, info)
}

// handleListingInsightsResource returns the market context of one listing.
func (s *Server) handleListingInsightsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract the listing ID from realestate://listings/{listingId}/insights
	listingID := extractListingID(req.Params.URI)
	if listingID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	insights, err := s.ports.Stats.ListingInsights(ctx, listingID)
	if err != nil {
		if isNotFound(err) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("building listing insights: %w", err)
	}

	type insightsInfo struct {
		Listing         ListingOutput     `json:"listing"`
		Agent           *AgentOutput      `json:"agent,omitempty"`
		AreaStats       AreaStatsOutput   `json:"area_stats"`
		ComparableSales []transactionInfo `json:"comparable_sales"`
		Amenities       []amenityInfo     `json:"amenities"`
	}

	info := insightsInfo{
		Listing:         listingOutput(insights.Listing),
		AreaStats:       areaStatsOutput(insights.AreaStats),
		ComparableSales: transactionInfos(insights.ComparableSales),
		Amenities:       amenityInfos(insights.Amenities),
	}
	if insights.Agent != nil {
		agent := agentOutput(*insights.Agent)
		info.Agent = &agent
	}
	return jsonResource(req.Params.URI, info)
}

type transactionInfo struct {
	ID           string  `json:"id"`
	ListingID    string  `json:"listing_id"`
	AgentID      string  `json:"agent_id"`
	Area         string  `json:"area"`
	ClosingPrice int64   `json:"closing_price"`
	ClosingDate  string  `json:"closing_date,omitempty"`
	Type         string  `json:"type"`
	DaysOnMarket int     `json:"days_on_market"`
	PricePerSqft float64 `json:"price_per_sqft,omitempty"`
}

func transactionInfos(txs []domain.Transaction) []transactionInfo {
	infos := make([]transactionInfo, len(txs))
	for i, tx := range txs {
		date := ""
		if !tx.ClosingDate.IsZero() {
			date = tx.ClosingDate.Format("2006-01-02")
		}
		infos[i] = transactionInfo{
			ID:           tx.ID,
			ListingID:    tx.ListingID,
			AgentID:      tx.AgentID,
			Area:         tx.Area,
			ClosingPrice: tx.ClosingPrice,
			ClosingDate:  date,
			Type:         string(tx.Type),
			DaysOnMarket: tx.DaysOnMarket,
			PricePerSqft: tx.PricePerSqft,
		}
	}
	return infos
}

type amenityInfo struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Area     string  `json:"area"`
	Rating   float64 `json:"rating,omitempty"`
}

func amenityInfos(amenities []domain.Amenity) []amenityInfo {
	infos := make([]amenityInfo, len(amenities))
	for i, a := range amenities {
		infos[i] = amenityInfo{
			ID:       a.ID,
			Name:     a.Name,
			Category: string(a.Category),
			Area:     a.Area,
			Rating:   a.Rating,
		}
	}
	return infos
}

// jsonResource wraps a value as an indented JSON resource result.
func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractAreaName extracts the area name from a URI like realestate://areas/{name}/report.
func extractAreaName(uri string) string {
	const prefix = uriScheme + "areas/"
	const suffix = "/report"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	return strings.TrimSuffix(uri, suffix)
}

// extractListingID extracts the listing ID from a URI like realestate://listings/{listingId}/insights.
func extractListingID(uri string) string {
	const prefix = uriScheme + "listings/"
	const suffix = "/insights"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	return strings.TrimSuffix(uri, suffix)
}
