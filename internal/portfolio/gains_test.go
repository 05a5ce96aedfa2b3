package portfolio_test

import (
	"errors"
	"testing"

	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/apperrors"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/model"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/portfolio"
)

// TestAnalyzeGains tests the cash-flow gain analysis over the ledger.
//
// WHY: This view measures realized-style gain (sells minus buys) and must stay
// independent of live pricing; it is a different number from the dashboard's
// mark-to-market gain, and conflating the two is the bug the redesign guards
// against.
func TestAnalyzeGains(t *testing.T) {
	t.Run("empty ledger returns zeroed analysis", func(t *testing.T) {
		analysis, err := portfolio.AnalyzeGains([]model.Transaction{}, testCatalog)
		if err != nil {
			t.Fatalf("AnalyzeGains() returned unexpected error: %v", err)
		}
		if len(analysis.PerAsset) != 0 || analysis.TotalGain != 0 {
			t.Errorf("Expected zeroed analysis, got %+v", analysis)
		}
	})

	t.Run("buy then partial sell", func(t *testing.T) {
		// Scenario: Buy 10 @ $5, Sell 4 @ $6 -> buys=50, sells=24, gain=-26.
		analysis, err := portfolio.AnalyzeGains([]model.Transaction{
			buy("AAA", 10, 5),
			sell("AAA", 4, 6),
		}, testCatalog)
		if err != nil {
			t.Fatalf("AnalyzeGains() returned unexpected error: %v", err)
		}

		if len(analysis.PerAsset) != 1 {
			t.Fatalf("Expected 1 record, got %d", len(analysis.PerAsset))
		}
		rec := analysis.PerAsset[0]
		if rec.Buys != 50 || rec.Sells != 24 {
			t.Errorf("Expected buys=50 sells=24, got buys=%v sells=%v", rec.Buys, rec.Sells)
		}
		if rec.Gain != -26 {
			t.Errorf("Expected gain -26, got %v", rec.Gain)
		}
		if rec.Quantity != 6 {
			t.Errorf("Expected quantity 6, got %v", rec.Quantity)
		}
		if rec.Invested != 50 || rec.Returns != 24 {
			t.Errorf("Expected invested=50 returns=24, got invested=%v returns=%v", rec.Invested, rec.Returns)
		}
		if analysis.TotalGain != -26 {
			t.Errorf("Expected total gain -26, got %v", analysis.TotalGain)
		}
	})

	t.Run("total gain is the running cash-flow sum across assets", func(t *testing.T) {
		analysis, err := portfolio.AnalyzeGains([]model.Transaction{
			buy("AAA", 10, 5),  // -50
			buy("BBB", 2, 100), // -200
			sell("AAA", 10, 9), // +90
			sell("BBB", 1, 150),
		}, testCatalog)
		if err != nil {
			t.Fatalf("AnalyzeGains() returned unexpected error: %v", err)
		}

		if analysis.TotalGain != -10 {
			t.Errorf("Expected total gain -10, got %v", analysis.TotalGain)
		}
		if analysis.TotalInvested != 250 || analysis.TotalReturns != 240 {
			t.Errorf("Expected invested=250 returns=240, got %+v", analysis)
		}
	})

	t.Run("records sort descending by gain with stable ties", func(t *testing.T) {
		analysis, err := portfolio.AnalyzeGains([]model.Transaction{
			buy("AAA", 1, 100), // gain -100
			buy("BBB", 1, 10),  // gain +5 after sale below
			sell("BBB", 1, 15),
			buy("CCC", 1, 100), // gain -100, ties with AAA, seen later
		}, testCatalog)
		if err != nil {
			t.Fatalf("AnalyzeGains() returned unexpected error: %v", err)
		}

		order := []string{"BBB", "AAA", "CCC"}
		for i, want := range order {
			if analysis.PerAsset[i].AssetID != want {
				t.Errorf("Position %d: expected %s, got %s", i, want, analysis.PerAsset[i].AssetID)
			}
		}
	})

	t.Run("unknown transaction type is rejected", func(t *testing.T) {
		_, err := portfolio.AnalyzeGains([]model.Transaction{
			tx("AAA", "Dividend", 1, 1),
		}, testCatalog)
		if !errors.Is(err, apperrors.ErrUnknownTransactionType) {
			t.Errorf("Expected ErrUnknownTransactionType, got %v", err)
		}
	})
}
