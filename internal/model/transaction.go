package model

import "time"

// Transaction types recognized by the system.
// Anything else is rejected at ingestion; the aggregation code treats an
// unknown type as an error rather than silently coercing it to a sell.
const (
	TransactionTypeBuy  = "Buy"
	TransactionTypeSell = "Sell"
)

// Transaction represents a single buy or sell recorded against a user's ledger.
// Transactions are immutable once created.
type Transaction struct {
	TransactionID string    `json:"transaction_id"`
	UserID        string    `json:"user_id"`
	AssetID       string    `json:"asset_id"`
	Type          string    `json:"transaction_type"`
	Quantity      float64   `json:"quantity"`
	Price         float64   `json:"price"` // price per unit at transaction time
	Date          time.Time `json:"date"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
}

// Value returns the cash value of the transaction (quantity * price per unit).
func (t Transaction) Value() float64 {
	return t.Quantity * t.Price
}

// TransactionResponse represents a transaction enriched with catalog data
// for API responses.
type TransactionResponse struct {
	TransactionID string    `json:"transaction_id"`
	UserID        string    `json:"user_id"`
	AssetID       string    `json:"asset_id"`
	AssetName     string    `json:"asset_name"`
	Type          string    `json:"transaction_type"`
	Quantity      float64   `json:"quantity"`
	Price         float64   `json:"price"`
	Total         float64   `json:"total"`
	Date          time.Time `json:"date"`
}
