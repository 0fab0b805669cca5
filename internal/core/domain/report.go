package domain

// AreaReport is the comprehensive view of one area: the area record,
// its market summary, active listings, recent sales, amenities and
// sale trends, assembled from a single snapshot.
type AreaReport struct {
	Area           Area
	Stats          AreaStats
	ActiveListings []Listing
	RecentSales    []Transaction
	Amenities      []Amenity
	Trends         MarketTrends
}

// AgentDashboard is the comprehensive view of one agent: the profile,
// performance metrics, current portfolio, represented clients and
// recent sales.
type AgentDashboard struct {
	Agent          Agent
	Stats          AgentStats
	ActiveListings []Listing
	Clients        []Client
	RecentSales    []Transaction
}

// ListingInsights places one listing in context: its agent, area,
// the area's market summary, comparable sales and nearby amenities.
// Agent and Area are nil when the listing's references do not resolve.
type ListingInsights struct {
	Listing         Listing
	Agent           *Agent
	Area            *Area
	AreaStats       AreaStats
	ComparableSales []Transaction
	Amenities       []Amenity
}
