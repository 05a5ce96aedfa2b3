package model

// Holding is an asset position derived from folding a user's transaction
// ledger. It is recomputed fresh on each request and never persisted.
//
// Quantity is a signed running total: buys increase it, sells decrease it.
// Invested accumulates only on buys; sells do not reduce it. This models cost
// basis as "total ever invested", matching the product's observed behavior,
// not remaining cost basis.
type Holding struct {
	AssetID   string  `json:"asset_id"`
	AssetName string  `json:"asset_name"`
	AssetType string  `json:"asset_type"`
	Quantity  float64 `json:"quantity"`
	Invested  float64 `json:"invested"`
}

// Active reports whether the position is currently held.
// Inactive holdings are excluded from valuation but not discarded.
func (h Holding) Active() bool {
	return h.Quantity > 0
}

// ValuedHolding is a Holding marked to market with a live price.
type ValuedHolding struct {
	Holding
	LivePrice    float64 `json:"live_price"`
	CurrentValue float64 `json:"current_value"`
	Gain         float64 `json:"gain"`
	GainPct      float64 `json:"gain_pct"`
}

// PortfolioValuation is the full mark-to-market view of a user's portfolio:
// every active holding valued at its live price, plus aggregate totals.
type PortfolioValuation struct {
	Holdings      []ValuedHolding `json:"holdings"`
	TotalInvested float64         `json:"total_invested"`
	TotalValue    float64         `json:"total_value"`
	TotalGain     float64         `json:"total_gain"`
	GainPct       float64         `json:"gain_pct"`
}

// DashboardResponse is the payload for the dashboard endpoint: the valuation
// plus a short chronological recent-activity view.
type DashboardResponse struct {
	PortfolioValuation
	ActiveAssets       int                   `json:"active_assets"`
	RecentTransactions []TransactionResponse `json:"recent_transactions"`
}
