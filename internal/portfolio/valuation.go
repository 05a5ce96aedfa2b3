package portfolio

import "github.com/rjanssen/Portfolio-Tracker-Backend/internal/model"

// ValuePortfolio marks holdings to market against the given price lookup.
//
// Only active holdings (quantity > 0) are valued. A holding whose price is
// missing from the lookup is carried at a current value of zero rather than
// aborting the valuation; the pricing resolver guarantees such gaps only occur
// when no live price and no cost-basis fallback exist.
//
// Gain percentages are defined as 0 when nothing is invested, never NaN or
// infinity, at both the per-holding and portfolio level.
func ValuePortfolio(holdings []model.Holding, prices map[string]float64) model.PortfolioValuation {
	valued := []model.ValuedHolding{}
	var totalInvested, totalValue float64

	for _, h := range ActiveHoldings(holdings) {
		price := prices[h.AssetID] // zero when missing
		currentValue := h.Quantity * price
		gain := currentValue - h.Invested

		vh := model.ValuedHolding{
			Holding:      h,
			LivePrice:    price,
			CurrentValue: currentValue,
			Gain:         gain,
			GainPct:      percentage(gain, h.Invested),
		}

		valued = append(valued, vh)
		totalInvested += h.Invested
		totalValue += currentValue
	}

	totalGain := totalValue - totalInvested

	return model.PortfolioValuation{
		Holdings:      valued,
		TotalInvested: totalInvested,
		TotalValue:    totalValue,
		TotalGain:     totalGain,
		GainPct:       percentage(totalGain, totalInvested),
	}
}

// percentage returns part/base as a percentage, zero-guarded against an
// empty base.
func percentage(part, base float64) float64 {
	if base > 0 {
		return part / base * 100
	}
	return 0
}
