package domain

import "time"

// TransactionType distinguishes sales from leases.
type TransactionType string

// Available transaction types.
const (
	TransactionSale  TransactionType = "sale"
	TransactionLease TransactionType = "lease"
)

// IsValid returns true if the transaction type is recognised.
func (t TransactionType) IsValid() bool {
	return t == TransactionSale || t == TransactionLease
}

// Transaction is a closed deal. Transactions are read-only historical
// facts; they are never updated after load.
type Transaction struct {
	// ID is the stable unique identifier.
	ID string

	// ListingID and AgentID reference the listing sold and the
	// closing agent.
	ListingID string
	AgentID   string

	// Area is the area name the listing belonged to at closing.
	Area string

	// ClosingPrice is the final price in whole dollars.
	ClosingPrice int64

	// ClosingDate is when the deal closed.
	ClosingDate time.Time

	// Type is sale or lease.
	Type TransactionType

	// DaysOnMarket is how long the listing was active before closing.
	DaysOnMarket int

	// PricePerSqft is the closing price divided by interior size.
	PricePerSqft float64
}
