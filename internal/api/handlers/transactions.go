package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/api/request"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/api/response"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/apperrors"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/service"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/validation"
)

// TransactionHandler handles HTTP requests for transaction endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the transactionService.
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler with the provided service dependency.
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// CreateTransaction handles POST requests to record a new buy or sell.
// Validates the request body and appends the transaction to the user's ledger.
//
// Endpoint: POST /api/transaction
// Request Body: CreateTransactionRequest (user_id, asset_id, transaction_type, quantity, price, optional date)
// Response: 201 Created with Transaction
// Error: 400 Bad Request if validation fails, the sell exceeds holdings, or the body is invalid
// Error: 404 Not Found if the user or asset does not exist
// Error: 500 Internal Server Error if creation fails
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateTransactionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	transaction, err := h.transactionService.CreateTransaction(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUserNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrUserNotFound.Error(), err.Error())
		case errors.Is(err, apperrors.ErrAssetNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAssetNotFound.Error(), err.Error())
		case errors.Is(err, apperrors.ErrInsufficientQuantity):
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInsufficientQuantity.Error(), err.Error())
		case errors.Is(err, apperrors.ErrMalformedTransaction),
			errors.Is(err, apperrors.ErrInvalidUserID),
			errors.Is(err, apperrors.ErrEmptyID):
			response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		default:
			var fieldErr *validation.Error
			if errors.As(err, &fieldErr) {
				response.RespondError(w, http.StatusBadRequest, "validation failed", fieldErr.Fields)
				return
			}
			response.RespondError(w, http.StatusInternalServerError, "failed to create transaction", err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusCreated, transaction)
}

// Transactions handles GET requests to retrieve a user's transaction history.
// Returns transactions newest first, enriched with catalog names.
//
// Endpoint: GET /api/transaction?user={userId}
// Response: 200 OK with array of TransactionResponse
// Error: 400 Bad Request if the user ID is invalid (validated by middleware)
// Error: 404 Not Found if the user does not exist
// Error: 500 Internal Server Error if retrieval fails
func (h *TransactionHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user")

	transactions, err := h.transactionService.GetTransactionHistory(userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrUserNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTransactions.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, transactions)
}

// GetTransaction handles GET requests to retrieve a single transaction by ID.
//
// Endpoint: GET /api/transaction/{transactionId}
// Response: 200 OK with Transaction
// Error: 404 Not Found if transaction not found
// Error: 500 Internal Server Error if retrieval fails
func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "transactionId")

	transaction, err := h.transactionService.GetTransaction(transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTransactionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTransactionNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTransaction.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, transaction)
}
