package model

// AssetGainRecord is the cash-flow view of a single asset: cumulative buy and
// sell values over the ledger, independent of live pricing.
//
// Gain here is realized-style (returns - buys). It measures something
// different from the mark-to-market gain in PortfolioValuation and the two
// diverge whenever unsold positions exist; they must not be conflated.
type AssetGainRecord struct {
	AssetID   string  `json:"asset_id"`
	AssetName string  `json:"asset_name"`
	Buys      float64 `json:"buys"`
	Sells     float64 `json:"sells"`
	Quantity  float64 `json:"quantity"`
	Invested  float64 `json:"invested"`
	Returns   float64 `json:"returns"`
	Gain      float64 `json:"gain"`
}

// GainAnalysis aggregates AssetGainRecords across the ledger.
// TotalGain is the running cash-flow sum: buys subtract, sells add.
type GainAnalysis struct {
	PerAsset      []AssetGainRecord `json:"per_asset"`
	TotalInvested float64           `json:"total_invested"`
	TotalReturns  float64           `json:"total_returns"`
	TotalGain     float64           `json:"total_gain"`
	GainPct       float64           `json:"gain_pct"`
}
