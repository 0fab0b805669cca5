package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/garyj/real-estate-mcp/internal/core/domain"
)

var (
	filterMinPrice      int64
	filterMaxPrice      int64
	filterMinBedrooms   int
	filterMaxBedrooms   int
	filterMinBathrooms  float64
	filterMaxBathrooms  float64
	filterMinSquareFeet int
	filterMaxSquareFeet int
	filterAreas         []string
	filterTypes         []string
	filterStatuses      []string
	filterFeatures      []string
	filterQuery         string
	filterSort          string
	filterJSON          bool
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Filter listings by criteria",
	Long: `Filters listings by any combination of price, bedrooms, bathrooms,
size, area, property type, status and features. All supplied criteria
must hold; range bounds are inclusive.

Examples:
  realestate filter --min-price 300000 --max-price 500000 --area Woodcrest
  realestate filter --min-bedrooms 3 --feature garage --sort price_asc`,
	Args: cobra.NoArgs,
	RunE: runFilter,
}

func init() {
	filterCmd.Flags().Int64Var(&filterMinPrice, "min-price", -1, "minimum asking price")
	filterCmd.Flags().Int64Var(&filterMaxPrice, "max-price", -1, "maximum asking price")
	filterCmd.Flags().IntVar(&filterMinBedrooms, "min-bedrooms", -1, "minimum bedrooms")
	filterCmd.Flags().IntVar(&filterMaxBedrooms, "max-bedrooms", -1, "maximum bedrooms")
	filterCmd.Flags().Float64Var(&filterMinBathrooms, "min-bathrooms", -1, "minimum bathrooms")
	filterCmd.Flags().Float64Var(&filterMaxBathrooms, "max-bathrooms", -1, "maximum bathrooms")
	filterCmd.Flags().IntVar(&filterMinSquareFeet, "min-sqft", -1, "minimum square feet")
	filterCmd.Flags().IntVar(&filterMaxSquareFeet, "max-sqft", -1, "maximum square feet")
	filterCmd.Flags().StringSliceVar(&filterAreas, "area", nil, "restrict to these areas")
	filterCmd.Flags().StringSliceVar(&filterTypes, "type", nil, "restrict to these property types")
	filterCmd.Flags().StringSliceVar(&filterStatuses, "status", nil, "restrict to these statuses (active, pending, sold)")
	filterCmd.Flags().StringSliceVar(&filterFeatures, "feature", nil, "require these features")
	filterCmd.Flags().StringVar(&filterQuery, "query", "", "free-text constraint")
	filterCmd.Flags().StringVar(&filterSort, "sort", "", "sort order: price_asc or price_desc")
	filterCmd.Flags().BoolVar(&filterJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(filterCmd)
}

func runFilter(cmd *cobra.Command, _ []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	criteria := domain.FilterCriteria{
		Areas:         filterAreas,
		PropertyTypes: filterTypes,
		Features:      filterFeatures,
		Query:         filterQuery,
		Sort:          domain.SortOrder(filterSort),
	}
	if filterMinPrice >= 0 {
		criteria.MinPrice = &filterMinPrice
	}
	if filterMaxPrice >= 0 {
		criteria.MaxPrice = &filterMaxPrice
	}
	if filterMinBedrooms >= 0 {
		criteria.MinBedrooms = &filterMinBedrooms
	}
	if filterMaxBedrooms >= 0 {
		criteria.MaxBedrooms = &filterMaxBedrooms
	}
	if filterMinBathrooms >= 0 {
		criteria.MinBathrooms = &filterMinBathrooms
	}
	if filterMaxBathrooms >= 0 {
		criteria.MaxBathrooms = &filterMaxBathrooms
	}
	if filterMinSquareFeet >= 0 {
		criteria.MinSquareFeet = &filterMinSquareFeet
	}
	if filterMaxSquareFeet >= 0 {
		criteria.MaxSquareFeet = &filterMaxSquareFeet
	}
	for _, status := range filterStatuses {
		criteria.Statuses = append(criteria.Statuses, domain.ListingStatus(status))
	}

	listings, err := searchService.Filter(cmd.Context(), criteria)
	if err != nil {
		return fmt.Errorf("filter failed: %w", err)
	}

	if filterJSON {
		return outputJSON(cmd, listings)
	}
	return outputListingTable(cmd, listings)
}
