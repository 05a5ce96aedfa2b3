package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrUserNotFound indicates that a user with the given ID does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrAssetNotFound indicates that an asset with the given ID does not exist
	// in the catalog.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrTransactionNotFound indicates that a transaction with the given ID does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrMalformedTransaction indicates that a transaction's quantity or price
	// is not a valid positive number, or its type is not a recognized value.
	// Malformed transactions are rejected at ingestion, never silently coerced.
	ErrMalformedTransaction = errors.New("malformed transaction")

	// ErrUnknownTransactionType indicates a transaction type outside {Buy, Sell}.
	// The aggregation engine refuses to guess what an unknown type means.
	ErrUnknownTransactionType = errors.New("unknown transaction type")

	// ErrInsufficientQuantity indicates that a sell transaction cannot be
	// completed because the user does not hold enough of the asset.
	ErrInsufficientQuantity = errors.New("insufficient quantity for sale")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrInvalidUserID indicates that a provided user ID is not in the expected format.
	ErrInvalidUserID = errors.New("invalid user ID format")
)

// Availability errors represent failures of external collaborators.
var (
	// ErrDataUnavailable indicates that the catalog or transaction ledger could
	// not be fetched. It propagates to the caller; no partial result is returned.
	ErrDataUnavailable = errors.New("data unavailable")

	// ErrPriceUnavailable indicates that no live price could be obtained for an
	// asset and no cost-basis fallback exists. Per-asset only: one asset's price
	// outage never aborts the whole valuation.
	ErrPriceUnavailable = errors.New("price unavailable")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data. These indicate that an operation failed, but not due to
// missing entities or validation issues.
var (
	ErrFailedToRetrieveAssets       = errors.New("failed to retrieve assets")
	ErrFailedToRetrieveTransactions = errors.New("failed to retrieve transactions")
	ErrFailedToRetrieveTransaction  = errors.New("failed to retrieve transaction")
	ErrFailedToRegisterUser         = errors.New("failed to register user")
	ErrFailedToRetrievePrice        = errors.New("failed to retrieve price")
	ErrFailedToBuildDashboard       = errors.New("failed to build dashboard")
	ErrFailedToAnalyzeGains         = errors.New("failed to analyze gains")
)
