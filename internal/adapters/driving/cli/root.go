// Package cli implements the command-line interface for the
// real-estate knowledge base.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	configfile "github.com/garyj/real-estate-mcp/internal/adapters/driven/config/file"
	"github.com/garyj/real-estate-mcp/internal/adapters/driven/source/jsondir"
	"github.com/garyj/real-estate-mcp/internal/adapters/driven/source/sqlite"
	"github.com/garyj/real-estate-mcp/internal/adapters/driving/cli/styles"
	"github.com/garyj/real-estate-mcp/internal/core/ports/driven"
	"github.com/garyj/real-estate-mcp/internal/core/ports/driving"
	"github.com/garyj/real-estate-mcp/internal/core/services"
	"github.com/garyj/real-estate-mcp/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// outStyles renders the table output headings.
var outStyles = styles.DefaultStyles()

// Services wired by initServices and consumed by the commands.
// Tests swap these for mocks.
var (
	catalogService driving.CatalogService
	searchService  driving.SearchService
	matchService   driving.MatchService
	statsService   driving.StatsService
	configStore    driven.ConfigStore
)

var (
	flagVerbose bool
	flagDataDir string
	flagDB      string
)

var rootCmd = &cobra.Command{
	Use:   "realestate",
	Short: "Queryable knowledge base for a real-estate dataset",
	Long: `Realestate loads a dataset of listings, agents, clients, transactions,
areas and amenities into memory and answers queries over it: filtering,
free-text search, client-to-listing matching and market statistics.

The dataset is read from a directory of JSON files (or a SQLite
database) and can be refreshed without restarting.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "dataset directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite database path (overrides config)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// initServices builds the service graph before any command runs.
// Tests that pre-populate the services are left alone.
func initServices(cmd *cobra.Command, _ []string) error {
	// Commands that never touch the dataset.
	switch cmd.Name() {
	case "version", "help", "completion":
		return nil
	}
	if catalogService != nil {
		return nil
	}

	cfg, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	configStore = cfg

	if flagVerbose || cfg.GetBool(driven.ConfigVerbose) {
		logger.SetVerbose(true)
	}
	logger.Debug("Config: %s", cfg.Path())

	source, err := buildSource(cfg)
	if err != nil {
		return err
	}

	store := services.NewStore(source)
	catalogService = store
	searchService = services.NewSearchService(store)
	matchService = services.NewMatchService(store)
	statsService = services.NewStatsService(store)

	if err := store.Refresh(cmd.Context()); err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}
	return nil
}

// buildSource picks the record source from flags and config. A --db
// flag or a configured "sqlite" source selects SQLite; otherwise the
// JSON directory source is used.
func buildSource(cfg driven.ConfigStore) (driven.RecordSource, error) {
	timeout := time.Duration(cfg.GetInt(driven.ConfigLoadTimeoutSeconds)) * time.Second

	dbPath := flagDB
	if dbPath == "" && cfg.GetString(driven.ConfigSourceKind) == "sqlite" {
		dbPath = cfg.GetString(driven.ConfigDatabasePath)
	}
	if dbPath != "" {
		return sqlite.New(dbPath, timeout), nil
	}

	dataDir := flagDataDir
	if dataDir == "" {
		dataDir = cfg.GetString(driven.ConfigDataDir)
	}
	if dataDir == "" {
		dataDir = "data"
	}
	return jsondir.New(dataDir, timeout), nil
}

// dataDirectory returns the effective dataset directory, used by the
// file watcher.
func dataDirectory() string {
	if flagDataDir != "" {
		return flagDataDir
	}
	if configStore != nil {
		if dir := configStore.GetString(driven.ConfigDataDir); dir != "" {
			return dir
		}
	}
	return "data"
}
