// Package portfolio implements the valuation and gain/loss computation engine.
//
// Everything in this package is pure computation over an in-memory transaction
// ledger, an asset catalog, and a price lookup. No I/O, no hidden state: every
// result is recomputed fresh from its inputs, and the same inputs always
// produce the same outputs. Fetching, caching and rendering belong to the
// layers around it.
package portfolio

import (
	"fmt"
	"math"

	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/apperrors"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/model"
)

// AggregateHoldings folds a transaction ledger into per-asset holdings.
//
// Transactions are processed in the given order. A buy increases the holding's
// quantity and adds quantity*price to invested; a sell decreases quantity and
// leaves invested untouched (invested models cumulative capital ever deployed,
// not remaining cost basis). Holdings are returned for every asset ever
// touched, in first-seen order; callers filter on Holding.Active as needed.
//
// Assets missing from the catalog fall back to the asset ID as display name
// with type "Unknown". An empty ledger yields an empty result, not an error.
//
// Malformed transactions (non-positive or non-finite quantity/price) and
// transaction types outside {Buy, Sell} are errors. Ingestion validation
// should have rejected both already; the engine refuses to guess.
func AggregateHoldings(transactions []model.Transaction, assets []model.Asset) ([]model.Holding, error) {
	catalog := indexAssets(assets)

	holdings := []model.Holding{}
	position := make(map[string]int) // asset_id -> index into holdings

	for _, tx := range transactions {
		if err := checkWellFormed(tx); err != nil {
			return nil, err
		}

		idx, seen := position[tx.AssetID]
		if !seen {
			idx = len(holdings)
			position[tx.AssetID] = idx
			holdings = append(holdings, newHolding(tx.AssetID, catalog))
		}

		h := &holdings[idx]
		switch tx.Type {
		case model.TransactionTypeBuy:
			h.Quantity += tx.Quantity
			h.Invested += tx.Value()
		case model.TransactionTypeSell:
			h.Quantity -= tx.Quantity
		default:
			return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownTransactionType, tx.Type)
		}
	}

	return holdings, nil
}

// ActiveHoldings filters to holdings with a positive quantity.
// First-seen order is preserved.
func ActiveHoldings(holdings []model.Holding) []model.Holding {
	active := []model.Holding{}
	for _, h := range holdings {
		if h.Active() {
			active = append(active, h)
		}
	}
	return active
}

// newHolding creates a zeroed holding for the asset, resolving display data
// from the catalog with the unknown-asset fallback.
func newHolding(assetID string, catalog map[string]model.Asset) model.Holding {
	if asset, ok := catalog[assetID]; ok {
		return model.Holding{
			AssetID:   asset.AssetID,
			AssetName: asset.AssetName,
			AssetType: asset.AssetType,
		}
	}
	return model.Holding{
		AssetID:   assetID,
		AssetName: assetID,
		AssetType: "Unknown",
	}
}

// indexAssets builds an asset_id lookup over the catalog slice.
func indexAssets(assets []model.Asset) map[string]model.Asset {
	catalog := make(map[string]model.Asset, len(assets))
	for _, a := range assets {
		catalog[a.AssetID] = a
	}
	return catalog
}

// checkWellFormed rejects transactions whose quantity or price is not a valid
// positive number.
func checkWellFormed(tx model.Transaction) error {
	if tx.Quantity <= 0 || math.IsNaN(tx.Quantity) || math.IsInf(tx.Quantity, 0) {
		return fmt.Errorf("%w: quantity %v", apperrors.ErrMalformedTransaction, tx.Quantity)
	}
	if tx.Price <= 0 || math.IsNaN(tx.Price) || math.IsInf(tx.Price, 0) {
		return fmt.Errorf("%w: price %v", apperrors.ErrMalformedTransaction, tx.Price)
	}
	return nil
}
