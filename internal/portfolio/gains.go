package portfolio

import (
	"fmt"
	"sort"

	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/apperrors"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/model"
)

// AnalyzeGains computes the cash-flow view of the ledger: per asset, the
// cumulative buy and sell values, with gain = returns - buys.
//
// TotalGain is a running sum over transactions in iteration order where a buy
// subtracts its value and a sell adds it. This is a different number from the
// mark-to-market gain produced by ValuePortfolio: it ignores the value of
// unsold inventory, so the two diverge whenever open positions exist. Live
// prices play no part here: the analysis is a pure function of the ledger.
//
// Per-asset records are ordered descending by gain for presentation. The sort
// is stable, so ties keep their first-seen relative order.
func AnalyzeGains(transactions []model.Transaction, assets []model.Asset) (model.GainAnalysis, error) {
	catalog := indexAssets(assets)

	records := []model.AssetGainRecord{}
	position := make(map[string]int) // asset_id -> index into records

	var totalGain float64

	for _, tx := range transactions {
		if err := checkWellFormed(tx); err != nil {
			return model.GainAnalysis{}, err
		}

		idx, seen := position[tx.AssetID]
		if !seen {
			idx = len(records)
			position[tx.AssetID] = idx
			records = append(records, newGainRecord(tx.AssetID, catalog))
		}

		rec := &records[idx]
		value := tx.Value()

		switch tx.Type {
		case model.TransactionTypeBuy:
			rec.Buys += value
			rec.Quantity += tx.Quantity
			rec.Invested += value
			totalGain -= value
		case model.TransactionTypeSell:
			rec.Sells += value
			rec.Quantity -= tx.Quantity
			rec.Returns += value
			totalGain += value
		default:
			return model.GainAnalysis{}, fmt.Errorf("%w: %q", apperrors.ErrUnknownTransactionType, tx.Type)
		}

		rec.Gain = rec.Returns - rec.Buys
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Gain > records[j].Gain
	})

	var totalInvested, totalReturns float64
	for _, rec := range records {
		totalInvested += rec.Invested
		totalReturns += rec.Returns
	}

	return model.GainAnalysis{
		PerAsset:      records,
		TotalInvested: totalInvested,
		TotalReturns:  totalReturns,
		TotalGain:     totalGain,
		GainPct:       percentage(totalGain, totalInvested),
	}, nil
}

// newGainRecord creates a zeroed record for the asset with its display name
// resolved from the catalog, falling back to the asset ID.
func newGainRecord(assetID string, catalog map[string]model.Asset) model.AssetGainRecord {
	name := assetID
	if asset, ok := catalog[assetID]; ok {
		name = asset.AssetName
	}
	return model.AssetGainRecord{
		AssetID:   assetID,
		AssetName: name,
	}
}
