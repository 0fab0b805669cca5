package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/garyj/real-estate-mcp/internal/core/domain"
)

var matchJSON bool

var matchCmd = &cobra.Command{
	Use:   "match [client-id]",
	Short: "Rank listings for a client",
	Long: `Scores every active listing against the client's stated preferences
(budget, bedrooms, areas, property types) and prints the ranked matches.
Listings with no overlap score zero and are omitted.`,
	Args: cobra.ExactArgs(1),
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	if matchService == nil {
		return errors.New("match service not configured")
	}

	recommendations, err := matchService.Match(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	if matchJSON {
		return outputJSON(cmd, recommendations)
	}
	return outputMatchTable(cmd, recommendations)
}

func outputMatchTable(cmd *cobra.Command, recommendations []domain.Recommendation) error {
	if len(recommendations) == 0 {
		cmd.Println("No matching listings.")
		return nil
	}

	cmd.Println(outStyles.Title.Render("Matches:"))
	cmd.Println()
	for i := range recommendations {
		rec := &recommendations[i]
		cmd.Printf("  [%d] %s (%s) - score %.0f/100\n",
			i+1, rec.Listing.Address, rec.Listing.ID, rec.Score)
		cmd.Printf("      %s | $%d | %d bed | %s\n",
			rec.Listing.Area, rec.Listing.Price, rec.Listing.Bedrooms, rec.Listing.PropertyType)
		cmd.Printf("      price %.2f, bedrooms %.2f, area %.2f, type %.2f\n",
			rec.Breakdown.PriceFit, rec.Breakdown.BedroomFit,
			rec.Breakdown.AreaMatch, rec.Breakdown.TypeMatch)
		cmd.Println()
	}
	return nil
}
