package domain

// AreaStats is the market summary for one area, computed over the
// active listings located there.
type AreaStats struct {
	Area           string
	ActiveListings int

	// AveragePrice, MinPrice and MaxPrice summarise asking prices of
	// active listings. Zero when the area has none.
	AveragePrice float64
	MinPrice     int64
	MaxPrice     int64

	// AveragePricePerSqft is the mean of price divided by size over
	// active listings with a known size.
	AveragePricePerSqft float64
}

// AgentStats summarises one agent's portfolio and closed business.
type AgentStats struct {
	AgentID string
	Name    string

	// ActiveListings is the current portfolio size.
	ActiveListings int

	// ClosedTransactions counts the agent's closed deals.
	ClosedTransactions int

	// TotalVolume and AverageClosingPrice summarise closing prices.
	TotalVolume         int64
	AverageClosingPrice float64

	// AverageDaysOnMarket is the mean time to close.
	AverageDaysOnMarket float64

	// Specializations echoes the agent's focus categories.
	Specializations []string

	// Rating is the agent's average client rating.
	Rating float64
}

// MarketTrends summarises recent transactions, optionally restricted
// to one area. Area is "All Areas" for the city-wide view.
type MarketTrends struct {
	Area                string
	TotalSales          int
	AverageSalePrice    float64
	AverageDaysOnMarket float64
	AveragePricePerSqft float64
}
