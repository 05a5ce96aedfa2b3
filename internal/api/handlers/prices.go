package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/api/response"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/apperrors"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/service"
)

// PriceHandler handles HTTP requests for live quote lookups.
type PriceHandler struct {
	priceService *service.PriceService
}

// NewPriceHandler creates a new PriceHandler with the provided service dependency.
func NewPriceHandler(priceService *service.PriceService) *PriceHandler {
	return &PriceHandler{
		priceService: priceService,
	}
}

// Price handles GET requests for a single symbol's current quote.
//
// Endpoint: GET /api/price/{symbol}
// Response: 200 OK with PriceQuote
// Error: 404 Not Found if no price is available for the symbol
// Error: 500 Internal Server Error if the lookup fails
func (h *PriceHandler) Price(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	quote, err := h.priceService.GetPrice(r.Context(), symbol)
	if err != nil {
		if errors.Is(err, apperrors.ErrPriceUnavailable) || errors.Is(err, apperrors.ErrEmptyID) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPriceUnavailable.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePrice.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, quote)
}

// Prices handles GET requests for a batch of quotes.
// Symbols with no available price are omitted from the result.
//
// Endpoint: GET /api/prices?assets=TSLA,AAPL,BTC
// Response: 200 OK with map of symbol to PriceQuote
// Error: 400 Bad Request if the assets parameter is missing
// Error: 500 Internal Server Error if the lookup fails
func (h *PriceHandler) Prices(w http.ResponseWriter, r *http.Request) {
	assets := r.URL.Query().Get("assets")
	if strings.TrimSpace(assets) == "" {
		response.RespondError(w, http.StatusBadRequest, "assets query parameter is required", "")
		return
	}

	quotes, err := h.priceService.GetPrices(r.Context(), strings.Split(assets, ","))
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePrice.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, quotes)
}
