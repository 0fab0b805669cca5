package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// registerPrompts registers all prompt templates with the MCP server.
func (s *Server) registerPrompts() {
	s.server.AddPrompt(&mcp.Prompt{
		Name:        "buyer-recommendation",
		Description: "Draft a property recommendation message for a buyer",
		Arguments: []*mcp.PromptArgument{{
			Name:        "client_id",
			Description: "The client identifier, e.g. CLI-001",
			Required:    true,
		}},
	}, s.handleBuyerRecommendationPrompt)

	s.server.AddPrompt(&mcp.Prompt{
		Name:        "area-report",
		Description: "Draft a market report narrative for one area",
		Arguments: []*mcp.PromptArgument{{
			Name:        "area",
			Description: "The area name, e.g. Woodcrest",
			Required:    true,
		}},
	}, s.handleAreaReportPrompt)
}

// handleBuyerRecommendationPrompt assembles the matching results for a
// client into a prompt asking the model to write a recommendation.
func (s *Server) handleBuyerRecommendationPrompt(
	ctx context.Context,
	req *mcp.GetPromptRequest,
) (*mcp.GetPromptResult, error) {
	clientID := req.Params.Arguments["client_id"]
	if clientID == "" {
		return nil, fmt.Errorf("client_id argument is required")
	}

	recs, err := s.ports.Match.Match(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("matching client: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are a real-estate assistant. Write a short, friendly recommendation message for client %s.\n\n", clientID)
	if len(recs) == 0 {
		b.WriteString("No listings currently match this client's preferences. Suggest adjusting the budget or widening the desired areas.\n")
	} else {
		b.WriteString("Ranked matches:\n")
		for i, rec := range recs {
			fmt.Fprintf(&b, "%d. %s in %s, $%d, %d bed / %.1f bath, %d sqft (match score %.0f/100)\n",
				i+1, rec.Listing.Address, rec.Listing.Area, rec.Listing.Price,
				rec.Listing.Bedrooms, rec.Listing.Bathrooms, rec.Listing.SquareFeet, rec.Score)
		}
		b.WriteString("\nExplain why the top match fits and mention one tradeoff to consider.\n")
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Recommendation draft for client %s", clientID),
		Messages: []*mcp.PromptMessage{{
			Role:    "user",
			Content: &mcp.TextContent{Text: b.String()},
		}},
	}, nil
}

// handleAreaReportPrompt assembles area statistics into a prompt asking
// the model to write a market narrative.
func (s *Server) handleAreaReportPrompt(
	ctx context.Context,
	req *mcp.GetPromptRequest,
) (*mcp.GetPromptResult, error) {
	area := req.Params.Arguments["area"]
	if area == "" {
		return nil, fmt.Errorf("area argument is required")
	}

	report, err := s.ports.Stats.AreaReport(ctx, area)
	if err != nil {
		return nil, fmt.Errorf("building area report: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Write a concise market report for the %s area based on these figures.\n\n", report.Area.Name)
	fmt.Fprintf(&b, "Active listings: %d\n", report.Stats.ActiveListings)
	fmt.Fprintf(&b, "Average asking price: $%.0f (range $%d to $%d)\n",
		report.Stats.AveragePrice, report.Stats.MinPrice, report.Stats.MaxPrice)
	fmt.Fprintf(&b, "Average price per sqft: $%.2f\n", report.Stats.AveragePricePerSqft)
	fmt.Fprintf(&b, "Recent sales: %d, average sale price $%.0f, average days on market %.1f\n",
		report.Trends.TotalSales, report.Trends.AverageSalePrice, report.Trends.AverageDaysOnMarket)
	if report.Area.WalkScore > 0 {
		fmt.Fprintf(&b, "Walk score: %d\n", report.Area.WalkScore)
	}
	if report.Area.SchoolRating > 0 {
		fmt.Fprintf(&b, "School rating: %.1f/10\n", report.Area.SchoolRating)
	}
	b.WriteString("\nCover pricing, inventory and pace of sales. Keep it under 200 words.\n")

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Market report draft for %s", report.Area.Name),
		Messages: []*mcp.PromptMessage{{
			Role:    "user",
			Content: &mcp.TextContent{Text: b.String()},
		}},
	}, nil
}
