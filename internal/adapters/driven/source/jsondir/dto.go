package jsondir

import (
	"fmt"
	"time"

	"github.com/garyj/real-estate-mcp/internal/core/domain"
)

// Wire DTOs mirror the dataset's JSON layout. Each category file wraps
// its records in a single named array so the files stay self-describing.

type listingsFile struct {
	ActiveListings []listingDTO `json:"active_listings"`
}

type agentsFile struct {
	Agents []agentDTO `json:"agents"`
}

type clientsFile struct {
	Clients []clientDTO `json:"clients"`
}

type transactionsFile struct {
	RecentSales []transactionDTO `json:"recent_sales"`
}

type areasFile struct {
	Areas []areaDTO `json:"areas"`
}

type amenitiesFile struct {
	Amenities []amenityDTO `json:"amenities"`
}

type listingDTO struct {
	ID           string   `json:"id"`
	Address      string   `json:"address"`
	Area         string   `json:"area"`
	Price        int64    `json:"price"`
	Bedrooms     int      `json:"bedrooms"`
	Bathrooms    float64  `json:"bathrooms"`
	SquareFeet   int      `json:"square_feet"`
	PropertyType string   `json:"property_type"`
	Style        string   `json:"style"`
	Status       string   `json:"status"`
	AgentID      string   `json:"agent_id"`
	Description  string   `json:"description"`
	Features     []string `json:"features"`
}

func (d listingDTO) toDomain() (domain.Listing, error) {
	if d.ID == "" {
		return domain.Listing{}, fmt.Errorf("listing without id (address %q)", d.Address)
	}
	if d.Price < 0 {
		return domain.Listing{}, fmt.Errorf("listing %s has negative price %d", d.ID, d.Price)
	}
	status := domain.ListingStatus(d.Status)
	if d.Status == "" {
		status = domain.StatusActive
	}
	if !status.IsValid() {
		return domain.Listing{}, fmt.Errorf("listing %s has unknown status %q", d.ID, d.Status)
	}
	return domain.Listing{
		ID:           d.ID,
		Address:      d.Address,
		Area:         d.Area,
		Price:        d.Price,
		Bedrooms:     d.Bedrooms,
		Bathrooms:    d.Bathrooms,
		SquareFeet:   d.SquareFeet,
		PropertyType: d.PropertyType,
		Style:        d.Style,
		Status:       status,
		AgentID:      d.AgentID,
		Description:  d.Description,
		Features:     d.Features,
	}, nil
}

type agentDTO struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Specializations []string `json:"specializations"`
	ExpertiseAreas  []string `json:"expertise_areas"`
	Bio             string   `json:"bio"`
	Phone           string   `json:"phone"`
	Email           string   `json:"email"`
	Rating          float64  `json:"rating"`
}

func (d agentDTO) toDomain() (domain.Agent, error) {
	if d.ID == "" {
		return domain.Agent{}, fmt.Errorf("agent without id (name %q)", d.Name)
	}
	return domain.Agent{
		ID:              d.ID,
		Name:            d.Name,
		Specializations: d.Specializations,
		ExpertiseAreas:  d.ExpertiseAreas,
		Bio:             d.Bio,
		Phone:           d.Phone,
		Email:           d.Email,
		Rating:          d.Rating,
	}, nil
}

type clientDTO struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	AgentID      string          `json:"agent_id"`
	Email        string          `json:"email"`
	Preferences  *preferencesDTO `json:"preferences"`
	MatchHistory []matchDTO      `json:"match_history"`
}

type preferencesDTO struct {
	BudgetRange *struct {
		Min *int64 `json:"min"`
		Max *int64 `json:"max"`
	} `json:"budget_range"`
	MinBedrooms   int      `json:"min_bedrooms"`
	DesiredAreas  []string `json:"desired_areas"`
	PropertyTypes []string `json:"property_types"`
}

type matchDTO struct {
	ListingID string `json:"listing_id"`
	Feedback  string `json:"feedback"`
}

func (d clientDTO) toDomain() (domain.Client, error) {
	if d.ID == "" {
		return domain.Client{}, fmt.Errorf("client without id (name %q)", d.Name)
	}
	role := domain.ClientRole(d.Type)
	if !role.IsValid() {
		return domain.Client{}, fmt.Errorf("client %s has unknown role %q", d.ID, d.Type)
	}

	c := domain.Client{
		ID:      d.ID,
		Name:    d.Name,
		Role:    role,
		AgentID: d.AgentID,
		Email:   d.Email,
	}
	if p := d.Preferences; p != nil {
		c.Preferences = domain.Preferences{
			MinBedrooms:   p.MinBedrooms,
			Areas:         p.DesiredAreas,
			PropertyTypes: p.PropertyTypes,
		}
		if p.BudgetRange != nil {
			c.Preferences.MinPrice = p.BudgetRange.Min
			c.Preferences.MaxPrice = p.BudgetRange.Max
		}
	}
	for _, m := range d.MatchHistory {
		c.MatchHistory = append(c.MatchHistory, domain.MatchRecord{
			ListingID: m.ListingID,
			Feedback:  m.Feedback,
		})
	}
	return c, nil
}

type transactionDTO struct {
	ID           string  `json:"id"`
	ListingID    string  `json:"listing_id"`
	AgentID      string  `json:"agent_id"`
	Area         string  `json:"area"`
	SalePrice    int64   `json:"sale_price"`
	ClosingDate  string  `json:"closing_date"`
	Type         string  `json:"type"`
	DaysOnMarket int     `json:"days_on_market"`
	PricePerSqft float64 `json:"price_per_sqft"`
}

func (d transactionDTO) toDomain() (domain.Transaction, error) {
	if d.ID == "" {
		return domain.Transaction{}, fmt.Errorf("transaction without id (listing %q)", d.ListingID)
	}
	txType := domain.TransactionType(d.Type)
	if d.Type == "" {
		txType = domain.TransactionSale
	}
	if !txType.IsValid() {
		return domain.Transaction{}, fmt.Errorf("transaction %s has unknown type %q", d.ID, d.Type)
	}

	var closed time.Time
	if d.ClosingDate != "" {
		var err error
		closed, err = time.Parse("2006-01-02", d.ClosingDate)
		if err != nil {
			return domain.Transaction{}, fmt.Errorf("transaction %s has malformed closing date %q", d.ID, d.ClosingDate)
		}
	}

	return domain.Transaction{
		ID:           d.ID,
		ListingID:    d.ListingID,
		AgentID:      d.AgentID,
		Area:         d.Area,
		ClosingPrice: d.SalePrice,
		ClosingDate:  closed,
		Type:         txType,
		DaysOnMarket: d.DaysOnMarket,
		PricePerSqft: d.PricePerSqft,
	}, nil
}

type areaDTO struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Population   int      `json:"population"`
	MedianIncome int64    `json:"median_income"`
	WalkScore    int      `json:"walk_score"`
	SchoolRating float64  `json:"school_rating"`
	AmenityIDs   []string `json:"amenity_ids"`
}

func (d areaDTO) toDomain() (domain.Area, error) {
	if d.Name == "" {
		return domain.Area{}, fmt.Errorf("area without name")
	}
	return domain.Area{
		Name:         d.Name,
		Description:  d.Description,
		Population:   d.Population,
		MedianIncome: d.MedianIncome,
		WalkScore:    d.WalkScore,
		SchoolRating: d.SchoolRating,
		AmenityIDs:   d.AmenityIDs,
	}, nil
}

type amenityDTO struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Area     string  `json:"area"`
	Rating   float64 `json:"rating"`
}

func (d amenityDTO) toDomain() (domain.Amenity, error) {
	if d.ID == "" {
		return domain.Amenity{}, fmt.Errorf("amenity without id (name %q)", d.Name)
	}
	category := domain.AmenityCategory(d.Category)
	if !category.IsValid() {
		return domain.Amenity{}, fmt.Errorf("amenity %s has unknown category %q", d.ID, d.Category)
	}
	return domain.Amenity{
		ID:       d.ID,
		Name:     d.Name,
		Category: category,
		Area:     d.Area,
		Rating:   d.Rating,
	}, nil
}
