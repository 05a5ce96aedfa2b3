package model

import "time"

// PriceQuote is a transient live price for an asset, fetched per valuation
// pass and never persisted.
type PriceQuote struct {
	AssetID string    `json:"symbol"`
	Price   float64   `json:"price"`
	Time    time.Time `json:"time,omitempty"`
}
