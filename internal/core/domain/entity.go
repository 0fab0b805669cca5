package domain

// EntityType identifies one of the six record collections in a snapshot.
type EntityType string

// Available entity types.
const (
	EntityListing     EntityType = "listing"
	EntityAgent       EntityType = "agent"
	EntityClient      EntityType = "client"
	EntityTransaction EntityType = "transaction"
	EntityArea        EntityType = "area"
	EntityAmenity     EntityType = "amenity"
)

// IsValid returns true if the entity type is recognised.
func (t EntityType) IsValid() bool {
	switch t {
	case EntityListing, EntityAgent, EntityClient, EntityTransaction, EntityArea, EntityAmenity:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t EntityType) String() string {
	return string(t)
}

// ParseEntityType converts a string into an EntityType.
// Returns ErrUnsupportedType for unknown names.
func ParseEntityType(s string) (EntityType, error) {
	t := EntityType(s)
	if !t.IsValid() {
		return "", ErrUnsupportedType
	}
	return t, nil
}
