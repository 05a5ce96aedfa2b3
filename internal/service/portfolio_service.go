package service

import (
	"context"
	"fmt"

	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/apperrors"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/model"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/portfolio"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/pricing"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/repository"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/validation"
)

// RecentTransactionCount is how many ledger entries the dashboard's
// recent-activity view shows.
const RecentTransactionCount = 5

// PortfolioService builds the derived portfolio views: the mark-to-market
// dashboard and the cash-flow gain analysis. Both are recomputed from the
// ledger on every request; nothing derived is persisted.
type PortfolioService struct {
	transactionRepo *repository.TransactionRepository
	assetRepo       *repository.AssetRepository
	userRepo        *repository.UserRepository
	resolver        *pricing.Resolver
}

// NewPortfolioService creates a new PortfolioService.
func NewPortfolioService(
	transactionRepo *repository.TransactionRepository,
	assetRepo *repository.AssetRepository,
	userRepo *repository.UserRepository,
	resolver *pricing.Resolver,
) *PortfolioService {
	return &PortfolioService{
		transactionRepo: transactionRepo,
		assetRepo:       assetRepo,
		userRepo:        userRepo,
		resolver:        resolver,
	}
}

// GetDashboard returns the user's portfolio marked to market: every active
// holding valued at its resolved price, aggregate totals, and the most recent
// transactions.
//
// Ledger or catalog fetch failures abort with ErrDataUnavailable; no partial
// dashboard is returned. Pricing failures never abort, the resolver degrades
// to cost basis per asset.
func (s *PortfolioService) GetDashboard(ctx context.Context, userID string) (model.DashboardResponse, error) {
	transactions, assets, err := s.loadLedger(userID)
	if err != nil {
		return model.DashboardResponse{}, err
	}

	holdings, err := portfolio.AggregateHoldings(transactions, assets)
	if err != nil {
		return model.DashboardResponse{}, fmt.Errorf("%w: %v", apperrors.ErrFailedToBuildDashboard, err)
	}

	prices := s.resolver.Resolve(ctx, holdings)
	valuation := portfolio.ValuePortfolio(holdings, prices)
	roundValuation(&valuation)

	recent := enrichTransactions(portfolio.Recent(transactions, RecentTransactionCount), assets)

	return model.DashboardResponse{
		PortfolioValuation: valuation,
		ActiveAssets:       len(valuation.Holdings),
		RecentTransactions: recent,
	}, nil
}

// GetGainAnalysis returns the cash-flow gain view of the user's ledger:
// cumulative buys and sells per asset and the running total across all of
// them. No live prices are involved.
func (s *PortfolioService) GetGainAnalysis(userID string) (model.GainAnalysis, error) {
	transactions, assets, err := s.loadLedger(userID)
	if err != nil {
		return model.GainAnalysis{}, err
	}

	analysis, err := portfolio.AnalyzeGains(transactions, assets)
	if err != nil {
		return model.GainAnalysis{}, fmt.Errorf("%w: %v", apperrors.ErrFailedToAnalyzeGains, err)
	}
	roundGainAnalysis(&analysis)

	return analysis, nil
}

// loadLedger validates the user and fetches the inputs both derived views
// share: the user's transactions and the asset catalog.
func (s *PortfolioService) loadLedger(userID string) ([]model.Transaction, []model.Asset, error) {
	if err := validation.ValidateUserID(userID); err != nil {
		return nil, nil, err
	}

	exists, err := s.userRepo.UserExists(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return nil, nil, apperrors.ErrUserNotFound
	}

	transactions, err := s.transactionRepo.GetTransactionsByUser(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrDataUnavailable, err)
	}

	assets, err := s.assetRepo.GetAssets()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrDataUnavailable, err)
	}

	return transactions, assets, nil
}

// roundValuation rounds the monetary fields of a valuation for presentation.
// Live prices are passed through as quoted.
func roundValuation(v *model.PortfolioValuation) {
	for i := range v.Holdings {
		h := &v.Holdings[i]
		h.Invested = round(h.Invested)
		h.CurrentValue = round(h.CurrentValue)
		h.Gain = round(h.Gain)
		h.GainPct = round(h.GainPct)
	}

	v.TotalInvested = round(v.TotalInvested)
	v.TotalValue = round(v.TotalValue)
	v.TotalGain = round(v.TotalGain)
	v.GainPct = round(v.GainPct)
}

func roundGainAnalysis(a *model.GainAnalysis) {
	for i := range a.PerAsset {
		rec := &a.PerAsset[i]
		rec.Buys = round(rec.Buys)
		rec.Sells = round(rec.Sells)
		rec.Invested = round(rec.Invested)
		rec.Returns = round(rec.Returns)
		rec.Gain = round(rec.Gain)
	}

	a.TotalInvested = round(a.TotalInvested)
	a.TotalReturns = round(a.TotalReturns)
	a.TotalGain = round(a.TotalGain)
	a.GainPct = round(a.GainPct)
}
