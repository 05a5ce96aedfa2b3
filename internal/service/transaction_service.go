package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/api/request"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/apperrors"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/model"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/portfolio"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/pricing"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/repository"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/validation"
)

// TransactionService handles transaction ingestion and ledger queries.
type TransactionService struct {
	transactionRepo *repository.TransactionRepository
	assetRepo       *repository.AssetRepository
	userRepo        *repository.UserRepository
	cache           *pricing.QuoteCache
}

// NewTransactionService creates a new TransactionService.
// The cache may be nil; when present it is invalidated after every ledger
// write so the next valuation fetches fresh quotes.
func NewTransactionService(
	transactionRepo *repository.TransactionRepository,
	assetRepo *repository.AssetRepository,
	userRepo *repository.UserRepository,
	cache *pricing.QuoteCache,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		assetRepo:       assetRepo,
		userRepo:        userRepo,
		cache:           cache,
	}
}

// CreateTransaction validates and stores a new buy or sell.
//
// Rules enforced here, before the ledger is touched:
//   - the user and asset must exist
//   - quantity and price must be positive finite numbers
//   - the type must be Buy or Sell; anything else is rejected outright
//   - a sell must not exceed the quantity currently held
//
// An empty date defaults to the current time.
func (s *TransactionService) CreateTransaction(ctx context.Context, req request.CreateTransactionRequest) (*model.Transaction, error) {
	if err := validation.ValidateCreateTransaction(req); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.UserExists(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrUserNotFound
	}

	if _, err := s.assetRepo.GetAsset(req.AssetID); err != nil {
		return nil, err
	}

	if req.Type == model.TransactionTypeSell {
		held, err := s.transactionRepo.HeldQuantity(req.UserID, req.AssetID)
		if err != nil {
			return nil, err
		}
		if held < req.Quantity {
			return nil, fmt.Errorf("%w: holding %g, selling %g", apperrors.ErrInsufficientQuantity, held, req.Quantity)
		}
	}

	date := time.Now().UTC()
	if req.Date != "" {
		date, err = time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedTransaction, err)
		}
	}

	transaction := &model.Transaction{
		TransactionID: uuid.New().String(),
		UserID:        req.UserID,
		AssetID:       req.AssetID,
		Type:          req.Type,
		Quantity:      req.Quantity,
		Price:         req.Price,
		Date:          date,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.transactionRepo.InsertTransaction(ctx, transaction); err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate()
	}

	log.Printf("Recorded %s of %g %s for user %s", transaction.Type, transaction.Quantity, transaction.AssetID, transaction.UserID)
	return transaction, nil
}

// GetTransactionHistory returns the user's transactions newest first,
// enriched with catalog names for display.
func (s *TransactionService) GetTransactionHistory(userID string) ([]model.TransactionResponse, error) {
	if err := validation.ValidateUserID(userID); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.UserExists(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrUserNotFound
	}

	transactions, err := s.transactionRepo.GetTransactionsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrieveTransactions, err)
	}

	assets, err := s.assetRepo.GetAssets()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrieveAssets, err)
	}

	return enrichTransactions(portfolio.Recent(transactions, len(transactions)), assets), nil
}

// GetTransaction retrieves a single transaction by ID.
func (s *TransactionService) GetTransaction(transactionID string) (model.Transaction, error) {
	transaction, err := s.transactionRepo.GetTransaction(transactionID)
	if errors.Is(err, apperrors.ErrTransactionNotFound) || errors.Is(err, apperrors.ErrEmptyID) {
		return model.Transaction{}, err
	}
	if err != nil {
		return model.Transaction{}, fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrieveTransaction, err)
	}

	return transaction, nil
}

// enrichTransactions joins transactions against the catalog for display.
// Assets missing from the catalog keep their ID as the display name, the same
// fallback the aggregation engine uses.
func enrichTransactions(transactions []model.Transaction, assets []model.Asset) []model.TransactionResponse {
	names := make(map[string]string, len(assets))
	for _, a := range assets {
		names[a.AssetID] = a.AssetName
	}

	responses := make([]model.TransactionResponse, len(transactions))
	for i, t := range transactions {
		name, ok := names[t.AssetID]
		if !ok {
			name = t.AssetID
		}

		responses[i] = model.TransactionResponse{
			TransactionID: t.TransactionID,
			UserID:        t.UserID,
			AssetID:       t.AssetID,
			AssetName:     name,
			Type:          t.Type,
			Quantity:      t.Quantity,
			Price:         t.Price,
			Total:         round(t.Value()),
			Date:          t.Date,
		}
	}

	return responses
}
