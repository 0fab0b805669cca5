package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Comprehensive reports",
	Long: `Assembles comprehensive views from a single snapshot: an area's full
market picture, an agent's dashboard or one listing in its market
context. Output is JSON.`,
}

var reportAreaCmd = &cobra.Command{
	Use:   "area [name]",
	Short: "Full market report for one area",
	Args:  cobra.ExactArgs(1),
	RunE:  runReportArea,
}

var reportAgentCmd = &cobra.Command{
	Use:   "agent [id]",
	Short: "Dashboard for one agent",
	Args:  cobra.ExactArgs(1),
	RunE:  runReportAgent,
}

var reportListingCmd = &cobra.Command{
	Use:   "listing [id]",
	Short: "Market context for one listing",
	Args:  cobra.ExactArgs(1),
	RunE:  runReportListing,
}

func init() {
	reportCmd.AddCommand(reportAreaCmd)
	reportCmd.AddCommand(reportAgentCmd)
	reportCmd.AddCommand(reportListingCmd)
	rootCmd.AddCommand(reportCmd)
}

func runReportArea(cmd *cobra.Command, args []string) error {
	if statsService == nil {
		return errors.New("stats service not configured")
	}

	report, err := statsService.AreaReport(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("area report failed: %w", err)
	}
	return outputJSON(cmd, report)
}

func runReportAgent(cmd *cobra.Command, args []string) error {
	if statsService == nil {
		return errors.New("stats service not configured")
	}

	dashboard, err := statsService.AgentDashboard(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("agent dashboard failed: %w", err)
	}
	return outputJSON(cmd, dashboard)
}

func runReportListing(cmd *cobra.Command, args []string) error {
	if statsService == nil {
		return errors.New("stats service not configured")
	}

	insights, err := statsService.ListingInsights(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("listing insights failed: %w", err)
	}
	return outputJSON(cmd, insights)
}
