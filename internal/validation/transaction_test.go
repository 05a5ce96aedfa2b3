package validation_test

import (
	"math"
	"testing"

	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/api/request"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/validation"
)

func validRequest() request.CreateTransactionRequest {
	return request.CreateTransactionRequest{
		UserID:   "abc123",
		AssetID:  "AAPL",
		Type:     "Buy",
		Quantity: 2.5,
		Price:    150.25,
		Date:     "2025-06-01",
	}
}

// TestValidateCreateTransaction tests ingestion validation for transactions.
//
// WHY: Malformed transactions must be rejected before they reach the ledger;
// once stored, the aggregation engine treats bad rows as hard errors.
func TestValidateCreateTransaction(t *testing.T) {
	t.Run("accepts a well-formed request", func(t *testing.T) {
		if err := validation.ValidateCreateTransaction(validRequest()); err != nil {
			t.Errorf("Expected valid request to pass, got %v", err)
		}
	})

	t.Run("accepts an empty date", func(t *testing.T) {
		req := validRequest()
		req.Date = ""
		if err := validation.ValidateCreateTransaction(req); err != nil {
			t.Errorf("Expected empty date to pass, got %v", err)
		}
	})

	tests := []struct {
		name   string
		mutate func(*request.CreateTransactionRequest)
	}{
		{"missing user id", func(r *request.CreateTransactionRequest) { r.UserID = "" }},
		{"uppercase user id", func(r *request.CreateTransactionRequest) { r.UserID = "ABC123" }},
		{"missing asset id", func(r *request.CreateTransactionRequest) { r.AssetID = " " }},
		{"missing type", func(r *request.CreateTransactionRequest) { r.Type = "" }},
		{"lowercase type", func(r *request.CreateTransactionRequest) { r.Type = "buy" }},
		{"unrecognized type", func(r *request.CreateTransactionRequest) { r.Type = "Transfer" }},
		{"zero quantity", func(r *request.CreateTransactionRequest) { r.Quantity = 0 }},
		{"negative quantity", func(r *request.CreateTransactionRequest) { r.Quantity = -1 }},
		{"NaN quantity", func(r *request.CreateTransactionRequest) { r.Quantity = math.NaN() }},
		{"zero price", func(r *request.CreateTransactionRequest) { r.Price = 0 }},
		{"infinite price", func(r *request.CreateTransactionRequest) { r.Price = math.Inf(1) }},
		{"malformed date", func(r *request.CreateTransactionRequest) { r.Date = "01-06-2025" }},
	}

	for _, tc := range tests {
		t.Run("rejects "+tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			if err := validation.ValidateCreateTransaction(req); err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}
}

// TestValidateUserID tests user ID format validation.
//
// WHY: User IDs are generated as six lowercase alphanumerics; anything else
// in a query or body is a client error, not a lookup miss.
func TestValidateUserID(t *testing.T) {
	valid := []string{"abc123", "000000", "zzzzzz"}
	for _, id := range valid {
		if err := validation.ValidateUserID(id); err != nil {
			t.Errorf("Expected %q to be valid, got %v", id, err)
		}
	}

	invalid := []string{"", "abc12", "abc1234", "ABC123", "abc 12", "abc-12"}
	for _, id := range invalid {
		if err := validation.ValidateUserID(id); err == nil {
			t.Errorf("Expected %q to be rejected", id)
		}
	}
}
