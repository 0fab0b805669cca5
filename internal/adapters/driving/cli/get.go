package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/garyj/real-estate-mcp/internal/core/domain"
)

var getCmd = &cobra.Command{
	Use:   "get [type] [id]",
	Short: "Fetch a single record by id",
	Long: `Fetches one record from the active snapshot and prints it as JSON.

Types: listing, agent, client, transaction, area, amenity.
Areas are keyed by name rather than id.

Examples:
  realestate get listing PROP-001
  realestate get area Woodcrest`,
	Args: cobra.ExactArgs(2),
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	entityType, err := domain.ParseEntityType(args[0])
	if err != nil {
		return fmt.Errorf("unknown record type %q (expected listing, agent, client, transaction, area or amenity)", args[0])
	}

	record, err := catalogService.Get(cmd.Context(), entityType, args[1])
	if err != nil {
		return fmt.Errorf("get failed: %w", err)
	}

	return outputJSON(cmd, record)
}
