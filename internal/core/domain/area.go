package domain

// Area describes a neighbourhood. The name is the unique key;
// listings and amenities reference areas by name.
type Area struct {
	// Name is the unique area name.
	Name string

	// Description is a free-text overview.
	Description string

	// Population is the resident count.
	Population int

	// MedianIncome is the median household income in whole dollars.
	MedianIncome int64

	// WalkScore rates walkability 0-100.
	WalkScore int

	// SchoolRating is the average school rating 0-10.
	SchoolRating float64

	// AmenityIDs reference the amenities located in this area.
	AmenityIDs []string
}
