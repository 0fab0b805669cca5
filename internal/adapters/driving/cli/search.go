package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/garyj/real-estate-mcp/internal/core/domain"
)

var (
	searchAgents bool
	searchJSON   bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search listings by free text",
	Long: `Searches listing addresses, descriptions, areas, features, property
types and styles for the query, case-insensitively.

Use --agents to search agent profiles instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchAgents, "agents", false, "search agent profiles instead of listings")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if searchService == nil {
		return errors.New("search service not configured")
	}

	ctx := cmd.Context()

	if searchAgents {
		agents, err := searchService.SearchAgents(ctx, query)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		if searchJSON {
			return outputJSON(cmd, agents)
		}
		return outputAgentTable(cmd, agents)
	}

	listings, err := searchService.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputJSON(cmd, listings)
	}
	return outputListingTable(cmd, listings)
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputListingTable(cmd *cobra.Command, listings []domain.Listing) error {
	if len(listings) == 0 {
		cmd.Println("No listings found.")
		return nil
	}

	cmd.Println(outStyles.Title.Render("Listings:"))
	cmd.Println()
	for i := range listings {
		l := &listings[i]
		cmd.Printf("  [%d] %s (%s)\n", i+1, l.Address, l.ID)
		cmd.Printf("      %s | $%d | %d bed / %.1f bath | %d sqft | %s\n",
			l.Area, l.Price, l.Bedrooms, l.Bathrooms, l.SquareFeet, l.Status)
		cmd.Println()
	}
	return nil
}

func outputAgentTable(cmd *cobra.Command, agents []domain.Agent) error {
	if len(agents) == 0 {
		cmd.Println("No agents found.")
		return nil
	}

	cmd.Println(outStyles.Title.Render("Agents:"))
	cmd.Println()
	for i := range agents {
		a := &agents[i]
		cmd.Printf("  [%d] %s (%s)\n", i+1, a.Name, a.ID)
		if len(a.ExpertiseAreas) > 0 {
			cmd.Printf("      Areas: %v\n", a.ExpertiseAreas)
		}
		if a.Rating > 0 {
			cmd.Printf("      Rating: %.1f\n", a.Rating)
		}
		cmd.Println()
	}
	return nil
}
