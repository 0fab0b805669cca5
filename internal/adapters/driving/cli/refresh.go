package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Reload the dataset",
	Long: `Reloads the dataset from its source and swaps in a fresh snapshot.
On failure the previous snapshot stays active.`,
	Args: cobra.NoArgs,
	RunE: runRefresh,
}

func init() {
	rootCmd.AddCommand(refreshCmd)
}

func runRefresh(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	if err := catalogService.Refresh(cmd.Context()); err != nil {
		return fmt.Errorf("refresh failed: %w", err)
	}

	snap := catalogService.Snapshot()
	cmd.Println(outStyles.Success.Render("Dataset refreshed."))
	cmd.Printf("  Generation:   %s\n", snap.Generation)
	cmd.Printf("  Listings:     %d\n", len(snap.Listings))
	cmd.Printf("  Agents:       %d\n", len(snap.Agents))
	cmd.Printf("  Clients:      %d\n", len(snap.Clients))
	cmd.Printf("  Transactions: %d\n", len(snap.Transactions))
	cmd.Printf("  Areas:        %d\n", len(snap.Areas))
	cmd.Printf("  Amenities:    %d\n", len(snap.Amenities))
	for _, d := range snap.Diagnostics {
		cmd.Println(outStyles.Warning.Render("  warning: " + d.String()))
	}
	return nil
}
