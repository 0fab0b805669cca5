package domain

import "strings"

// Agent is a real-estate agent profile.
type Agent struct {
	// ID is the stable unique identifier.
	ID string

	// Name is the agent's display name.
	Name string

	// Specializations are the listing categories the agent focuses on.
	Specializations []string

	// ExpertiseAreas are the area names the agent knows well.
	ExpertiseAreas []string

	// Bio is a free-text profile.
	Bio string

	// Phone and Email are contact details.
	Phone string
	Email string

	// Rating is the average client rating, 0 when unrated.
	Rating float64
}

// SearchText returns the lower-cased text agent search matches against:
// name, specializations, expertise areas and bio.
func (a Agent) SearchText() string {
	parts := []string{
		a.Name,
		strings.Join(a.Specializations, " "),
		strings.Join(a.ExpertiseAreas, " "),
		a.Bio,
	}
	return strings.ToLower(strings.Join(parts, " "))
}
