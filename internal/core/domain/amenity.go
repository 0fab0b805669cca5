package domain

// AmenityCategory groups amenities by kind.
type AmenityCategory string

// Available amenity categories.
const (
	AmenitySchool     AmenityCategory = "school"
	AmenityPark       AmenityCategory = "park"
	AmenityShopping   AmenityCategory = "shopping"
	AmenityHealthcare AmenityCategory = "healthcare"
)

// IsValid returns true if the category is recognised.
func (c AmenityCategory) IsValid() bool {
	switch c {
	case AmenitySchool, AmenityPark, AmenityShopping, AmenityHealthcare:
		return true
	default:
		return false
	}
}

// Amenity is a point of interest tied to an area.
type Amenity struct {
	// ID is the stable unique identifier.
	ID string

	// Name is the display name.
	Name string

	// Category groups the amenity (school, park, shopping, healthcare).
	Category AmenityCategory

	// Area is the name of the area the amenity belongs to.
	Area string

	// Rating is the public rating, 0 when unrated.
	Rating float64
}
