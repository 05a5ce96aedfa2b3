package validation

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/api/request"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/model"
)

// ValidTransactionType contains the allowed transaction type values.
// Anything else is a malformed transaction: the earlier behavior of treating
// every non-Buy value as a sell is deliberately not preserved.
var ValidTransactionType = map[string]bool{
	model.TransactionTypeBuy:  true,
	model.TransactionTypeSell: true,
}

// ValidateCreateTransaction validates a transaction creation request.
// Checks all required fields and validates their formats and constraints.
//
// Required fields:
//   - user_id: Must be a well-formed user ID
//   - asset_id: Must be non-empty
//   - transaction_type: Must be Buy or Sell
//   - quantity: Must be a positive finite number
//   - price: Must be a positive finite number
//   - date: Optional; must be YYYY-MM-DD if provided
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateTransaction(req request.CreateTransactionRequest) error {
	errors := make(map[string]string)

	if err := ValidateUserID(req.UserID); err != nil {
		errors["userId"] = err.Error()
	}

	if strings.TrimSpace(req.AssetID) == "" {
		errors["assetId"] = "asset_id is required"
	}

	if strings.TrimSpace(req.Type) == "" {
		errors["transactionType"] = "transaction_type is required"
	} else if !ValidTransactionType[req.Type] {
		errors["transactionType"] = fmt.Sprintf("invalid type: %s", req.Type)
	}

	if req.Quantity <= 0 || math.IsNaN(req.Quantity) || math.IsInf(req.Quantity, 0) {
		errors["quantity"] = "quantity must be a positive number"
	}

	if req.Price <= 0 || math.IsNaN(req.Price) || math.IsInf(req.Price, 0) {
		errors["price"] = "price must be a positive number"
	}

	if req.Date != "" {
		if _, err := time.Parse("2006-01-02", req.Date); err != nil {
			errors["date"] = err.Error()
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
