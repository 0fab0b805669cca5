package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/garyj/real-estate-mcp/internal/core/domain"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Market statistics",
	Long:  `Computes market statistics over the active snapshot.`,
}

var statsAreaCmd = &cobra.Command{
	Use:   "area [name]",
	Short: "Market summary for one area",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatsArea,
}

var statsAgentCmd = &cobra.Command{
	Use:   "agent [id]",
	Short: "Performance metrics for one agent",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatsAgent,
}

var statsTrendsCmd = &cobra.Command{
	Use:   "trends [area]",
	Short: "Sale trends city-wide or for one area",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStatsTrends,
}

var statsCompareCmd = &cobra.Command{
	Use:   "compare [area]...",
	Short: "Compare market summaries across areas",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runStatsCompare,
}

func init() {
	statsCmd.PersistentFlags().BoolVar(&statsJSON, "json", false, "output results as JSON")
	statsCmd.AddCommand(statsAreaCmd)
	statsCmd.AddCommand(statsAgentCmd)
	statsCmd.AddCommand(statsTrendsCmd)
	statsCmd.AddCommand(statsCompareCmd)
	rootCmd.AddCommand(statsCmd)
}

func runStatsArea(cmd *cobra.Command, args []string) error {
	if statsService == nil {
		return errors.New("stats service not configured")
	}

	stats, err := statsService.AreaStats(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("area stats failed: %w", err)
	}

	if statsJSON {
		return outputJSON(cmd, stats)
	}
	printAreaStats(cmd, stats)
	return nil
}

func runStatsAgent(cmd *cobra.Command, args []string) error {
	if statsService == nil {
		return errors.New("stats service not configured")
	}

	stats, err := statsService.AgentStats(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("agent stats failed: %w", err)
	}

	if statsJSON {
		return outputJSON(cmd, stats)
	}

	cmd.Println(outStyles.Title.Render(fmt.Sprintf("%s (%s)", stats.Name, stats.AgentID)))
	cmd.Printf("  Active listings:     %d\n", stats.ActiveListings)
	cmd.Printf("  Closed transactions: %d\n", stats.ClosedTransactions)
	cmd.Printf("  Total volume:        $%d\n", stats.TotalVolume)
	cmd.Printf("  Avg closing price:   $%.0f\n", stats.AverageClosingPrice)
	cmd.Printf("  Avg days on market:  %.1f\n", stats.AverageDaysOnMarket)
	if len(stats.Specializations) > 0 {
		cmd.Printf("  Specializations:     %s\n", strings.Join(stats.Specializations, ", "))
	}
	if stats.Rating > 0 {
		cmd.Printf("  Rating:              %.1f\n", stats.Rating)
	}
	return nil
}

func runStatsTrends(cmd *cobra.Command, args []string) error {
	if statsService == nil {
		return errors.New("stats service not configured")
	}

	area := ""
	if len(args) > 0 {
		area = args[0]
	}

	trends, err := statsService.MarketTrends(cmd.Context(), area)
	if err != nil {
		return fmt.Errorf("market trends failed: %w", err)
	}

	if statsJSON {
		return outputJSON(cmd, trends)
	}

	cmd.Println(outStyles.Title.Render(fmt.Sprintf("Market trends: %s", trends.Area)))
	cmd.Printf("  Total sales:        %d\n", trends.TotalSales)
	cmd.Printf("  Avg sale price:     $%.0f\n", trends.AverageSalePrice)
	cmd.Printf("  Avg days on market: %.1f\n", trends.AverageDaysOnMarket)
	cmd.Printf("  Avg price per sqft: $%.2f\n", trends.AveragePricePerSqft)
	return nil
}

func runStatsCompare(cmd *cobra.Command, args []string) error {
	if statsService == nil {
		return errors.New("stats service not configured")
	}

	comparison, err := statsService.CompareAreas(cmd.Context(), args)
	if err != nil {
		return fmt.Errorf("area comparison failed: %w", err)
	}

	if statsJSON {
		return outputJSON(cmd, comparison)
	}

	if len(comparison) == 0 {
		cmd.Println("No matching areas.")
		return nil
	}
	for _, stats := range comparison {
		printAreaStats(cmd, stats)
		cmd.Println()
	}
	return nil
}

func printAreaStats(cmd *cobra.Command, stats domain.AreaStats) {
	cmd.Println(outStyles.Title.Render(stats.Area))
	cmd.Printf("  Active listings:    %d\n", stats.ActiveListings)
	cmd.Printf("  Avg asking price:   $%.0f\n", stats.AveragePrice)
	cmd.Printf("  Price range:        $%d to $%d\n", stats.MinPrice, stats.MaxPrice)
	cmd.Printf("  Avg price per sqft: $%.2f\n", stats.AveragePricePerSqft)
}
