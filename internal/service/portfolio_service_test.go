package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/apperrors"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/testutil"
)

// TestGetDashboard tests the mark-to-market dashboard.
//
// WHY: The dashboard is the product's core read path: fold the ledger into
// holdings, price them, and report gains. These tests pin the arithmetic
// end to end against a known ledger and price table.
func TestGetDashboard(t *testing.T) {
	ctx := context.Background()

	t.Run("values a single holding at the live price", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db, map[string]float64{"TSLA": 40})

		user := testutil.CreateUser(t, db, "abc123")
		asset := testutil.CreateAsset(t, db, "TSLA")
		testutil.CreateBuy(t, db, user.UserID, asset.AssetID, 2, 25)

		dashboard, err := svc.GetDashboard(ctx, user.UserID)
		if err != nil {
			t.Fatalf("Failed to build dashboard: %v", err)
		}

		if dashboard.ActiveAssets != 1 {
			t.Fatalf("Expected 1 active asset, got %d", dashboard.ActiveAssets)
		}

		h := dashboard.Holdings[0]
		if h.Quantity != 2 || h.Invested != 50 {
			t.Errorf("Expected quantity 2 invested 50, got %v and %v", h.Quantity, h.Invested)
		}
		if h.LivePrice != 40 || h.CurrentValue != 80 {
			t.Errorf("Expected price 40 value 80, got %v and %v", h.LivePrice, h.CurrentValue)
		}
		if h.Gain != 30 || h.GainPct != 60 {
			t.Errorf("Expected gain 30 (60%%), got %v (%v%%)", h.Gain, h.GainPct)
		}

		if dashboard.TotalInvested != 50 || dashboard.TotalValue != 80 {
			t.Errorf("Expected totals 50/80, got %v/%v", dashboard.TotalInvested, dashboard.TotalValue)
		}
		if dashboard.TotalGain != 30 || dashboard.GainPct != 60 {
			t.Errorf("Expected total gain 30 (60%%), got %v (%v%%)", dashboard.TotalGain, dashboard.GainPct)
		}
	})

	t.Run("falls back to cost basis when no live price exists", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db, map[string]float64{})

		user := testutil.CreateUser(t, db, "abc123")
		asset := testutil.CreateAsset(t, db, "OBSCURE")
		testutil.CreateBuy(t, db, user.UserID, asset.AssetID, 4, 10)

		dashboard, err := svc.GetDashboard(ctx, user.UserID)
		if err != nil {
			t.Fatalf("Failed to build dashboard: %v", err)
		}

		h := dashboard.Holdings[0]
		if h.LivePrice != 10 {
			t.Errorf("Expected average cost as price, got %v", h.LivePrice)
		}
		if h.CurrentValue != 40 || h.Gain != 0 {
			t.Errorf("Expected cost-basis valuation 40 with zero gain, got %v and %v", h.CurrentValue, h.Gain)
		}
	})

	t.Run("excludes fully sold positions from valuation", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db, map[string]float64{"TSLA": 40, "AAPL": 200})

		user := testutil.CreateUser(t, db, "abc123")
		tsla := testutil.CreateAsset(t, db, "TSLA")
		aapl := testutil.CreateAsset(t, db, "AAPL")

		testutil.CreateBuy(t, db, user.UserID, tsla.AssetID, 2, 25)
		testutil.CreateBuy(t, db, user.UserID, aapl.AssetID, 1, 150)
		testutil.CreateSell(t, db, user.UserID, aapl.AssetID, 1, 180)

		dashboard, err := svc.GetDashboard(ctx, user.UserID)
		if err != nil {
			t.Fatalf("Failed to build dashboard: %v", err)
		}

		if dashboard.ActiveAssets != 1 {
			t.Fatalf("Expected 1 active asset, got %d", dashboard.ActiveAssets)
		}
		if dashboard.Holdings[0].AssetID != "TSLA" {
			t.Errorf("Expected only TSLA to remain, got %s", dashboard.Holdings[0].AssetID)
		}
	})

	t.Run("caps recent activity at five entries, newest first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db, map[string]float64{"TSLA": 40})

		user := testutil.CreateUser(t, db, "abc123")
		asset := testutil.CreateAsset(t, db, "TSLA")

		for day := 1; day <= 7; day++ {
			testutil.NewTransaction(user.UserID, asset.AssetID).
				WithDate(time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC)).
				Build(t, db)
		}

		dashboard, err := svc.GetDashboard(ctx, user.UserID)
		if err != nil {
			t.Fatalf("Failed to build dashboard: %v", err)
		}

		if len(dashboard.RecentTransactions) != 5 {
			t.Fatalf("Expected 5 recent transactions, got %d", len(dashboard.RecentTransactions))
		}
		if got := dashboard.RecentTransactions[0].Date.Day(); got != 7 {
			t.Errorf("Expected newest transaction (day 7) first, got day %d", got)
		}
	})

	t.Run("returns an empty dashboard for a fresh user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db, nil)

		user := testutil.CreateUser(t, db, "abc123")

		dashboard, err := svc.GetDashboard(ctx, user.UserID)
		if err != nil {
			t.Fatalf("Failed to build dashboard: %v", err)
		}

		if dashboard.ActiveAssets != 0 || dashboard.TotalValue != 0 {
			t.Errorf("Expected empty dashboard, got %d assets worth %v", dashboard.ActiveAssets, dashboard.TotalValue)
		}
	})

	t.Run("rejects an unknown user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db, nil)

		_, err := svc.GetDashboard(ctx, "zzz999")
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			t.Errorf("Expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("rejects a malformed user ID", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db, nil)

		_, err := svc.GetDashboard(ctx, "NOT-AN-ID")
		if !errors.Is(err, apperrors.ErrInvalidUserID) {
			t.Errorf("Expected ErrInvalidUserID, got %v", err)
		}
	})
}

// TestGetGainAnalysis tests the cash-flow gain view.
//
// WHY: Gains here are realized-style cash flow (sells minus buys), not
// mark-to-market; holding an asset at a paper profit must not show up.
func TestGetGainAnalysis(t *testing.T) {
	t.Run("computes per-asset cash flow over the ledger", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db, nil)

		user := testutil.CreateUser(t, db, "abc123")
		asset := testutil.CreateAsset(t, db, "TSLA")

		testutil.CreateBuy(t, db, user.UserID, asset.AssetID, 2, 25)
		testutil.CreateSell(t, db, user.UserID, asset.AssetID, 2, 12)

		analysis, err := svc.GetGainAnalysis(user.UserID)
		if err != nil {
			t.Fatalf("Failed to analyze gains: %v", err)
		}

		if len(analysis.PerAsset) != 1 {
			t.Fatalf("Expected 1 asset record, got %d", len(analysis.PerAsset))
		}

		rec := analysis.PerAsset[0]
		if rec.Buys != 50 || rec.Sells != 24 {
			t.Errorf("Expected buys 50 sells 24, got %v and %v", rec.Buys, rec.Sells)
		}
		if rec.Gain != -26 {
			t.Errorf("Expected gain -26, got %v", rec.Gain)
		}
		if rec.Quantity != 0 || rec.Invested != 50 {
			t.Errorf("Expected quantity 0 invested 50, got %v and %v", rec.Quantity, rec.Invested)
		}

		if analysis.TotalGain != -26 || analysis.GainPct != -52 {
			t.Errorf("Expected total gain -26 (-52%%), got %v (%v%%)", analysis.TotalGain, analysis.GainPct)
		}
	})

	t.Run("ignores live prices entirely", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		// A huge live price must not influence realized cash flow.
		svc := testutil.NewTestPortfolioService(t, db, map[string]float64{"TSLA": 9999})

		user := testutil.CreateUser(t, db, "abc123")
		asset := testutil.CreateAsset(t, db, "TSLA")
		testutil.CreateBuy(t, db, user.UserID, asset.AssetID, 2, 25)

		analysis, err := svc.GetGainAnalysis(user.UserID)
		if err != nil {
			t.Fatalf("Failed to analyze gains: %v", err)
		}

		if analysis.TotalGain != -50 {
			t.Errorf("Expected total gain -50 (cash out, nothing sold), got %v", analysis.TotalGain)
		}
	})

	t.Run("rejects an unknown user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db, nil)

		_, err := svc.GetGainAnalysis("zzz999")
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			t.Errorf("Expected ErrUserNotFound, got %v", err)
		}
	})
}
