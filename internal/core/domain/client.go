package domain

// ClientRole describes what the client is in the market for.
type ClientRole string

// Available client roles.
const (
	RoleBuyer    ClientRole = "buyer"
	RoleSeller   ClientRole = "seller"
	RoleInvestor ClientRole = "investor"
)

// IsValid returns true if the role is recognised.
func (r ClientRole) IsValid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleInvestor:
		return true
	default:
		return false
	}
}

// Preferences are a client's stated listing preferences.
// Zero pointer fields mean the client expressed no constraint.
type Preferences struct {
	// MinPrice and MaxPrice bound the budget, inclusive.
	MinPrice *int64
	MaxPrice *int64

	// MinBedrooms is the smallest acceptable bedroom count.
	MinBedrooms int

	// Areas are the desired area names.
	Areas []string

	// PropertyTypes are the desired listing categories.
	PropertyTypes []string
}

// MatchRecord is one prior recommendation shown to a client.
type MatchRecord struct {
	// ListingID references the recommended listing.
	ListingID string

	// Feedback is the client's reaction, free text ("liked", "too small").
	Feedback string
}

// Client is a buyer, seller or investor profile.
type Client struct {
	// ID is the stable unique identifier.
	ID string

	// Name is the client's display name.
	Name string

	// Role is the client's market role.
	Role ClientRole

	// AgentID references the agent representing this client.
	AgentID string

	// Email is the contact address.
	Email string

	// Preferences are the stated listing preferences.
	// Only consulted for buyers.
	Preferences Preferences

	// MatchHistory records prior recommendations and feedback.
	MatchHistory []MatchRecord
}
