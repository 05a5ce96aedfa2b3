package testutil

import (
	"database/sql"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/pricing"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/repository"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/service"
)

// ErrUnknownSymbol is returned by MockQuoteSource for symbols outside its
// price table.
var ErrUnknownSymbol = errors.New("unknown symbol")

func NewTestUserService(t *testing.T, db *sql.DB) *service.UserService {
	t.Helper()

	userRepo := repository.NewUserRepository(db)

	svc, err := service.NewUserService(userRepo, "")
	if err != nil {
		t.Fatalf("Failed to create user service: %v", err)
	}
	return svc
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

func NewTestAssetService(t *testing.T, db *sql.DB) *service.AssetService {
	t.Helper()

	return service.NewAssetService(repository.NewAssetRepository(db))
}

func NewTestTransactionService(t *testing.T, db *sql.DB) *service.TransactionService {
	t.Helper()

	transactionRepo := repository.NewTransactionRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	userRepo := repository.NewUserRepository(db)

	return service.NewTransactionService(
		transactionRepo,
		assetRepo,
		userRepo,
		pricing.NewQuoteCache(time.Minute),
	)
}

// NewTestPortfolioService creates a PortfolioService backed by a mock quote
// source. Pass the price table the valuation should see; symbols not in the
// table fall back to cost basis.
func NewTestPortfolioService(t *testing.T, db *sql.DB, prices map[string]float64) *service.PortfolioService {
	t.Helper()

	transactionRepo := repository.NewTransactionRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	userRepo := repository.NewUserRepository(db)
	resolver := pricing.NewResolver(NewMockQuoteSource(prices), nil, 0)

	return service.NewPortfolioService(
		transactionRepo,
		assetRepo,
		userRepo,
		resolver,
	)
}

// NewTestPriceService creates a PriceService backed by a mock quote source,
// with caching disabled.
func NewTestPriceService(t *testing.T, prices map[string]float64) *service.PriceService {
	t.Helper()

	return service.NewPriceService(NewMockQuoteSource(prices), nil)
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeUserID generates a valid random user ID (six lowercase alphanumerics).
//
// Example usage:
//
//	userID := testutil.MakeUserID()
//	// Returns: "k3x90a"
func MakeUserID() string {
	const charset = "abcdefghijklmnopqrstuvwxyz0123456789"
	result := make([]byte, 6)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}

// MakeSymbol generates a ticker-like symbol for testing.
//
// Example usage:
//
//	symbol := testutil.MakeSymbol("TST")
//	// Returns: "TST1A2B"
func MakeSymbol(base string) string {
	if base == "" {
		base = "TEST"
	}
	return base + randomAlphanumeric(4)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
