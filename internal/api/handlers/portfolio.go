package handlers

import (
	"errors"
	"net/http"

	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/api/response"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/apperrors"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/service"
)

// PortfolioHandler handles portfolio-related HTTP requests
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
	}
}

// Dashboard handles GET requests for the mark-to-market portfolio view.
// Returns every active holding valued at its live price, aggregate totals,
// and recent activity.
//
// Endpoint: GET /api/portfolio/dashboard?user={userId}
// Response: 200 OK with DashboardResponse
// Error: 400 Bad Request if the user ID is invalid (validated by middleware)
// Error: 404 Not Found if the user does not exist
// Error: 503 Service Unavailable if the ledger or catalog cannot be fetched
// Error: 500 Internal Server Error if the dashboard cannot be built
func (h *PortfolioHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user")

	dashboard, err := h.portfolioService.GetDashboard(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUserNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrUserNotFound.Error(), err.Error())
		case errors.Is(err, apperrors.ErrDataUnavailable):
			response.RespondError(w, http.StatusServiceUnavailable, apperrors.ErrDataUnavailable.Error(), err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToBuildDashboard.Error(), err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusOK, dashboard)
}

// Gains handles GET requests for the cash-flow gain analysis.
// Returns per-asset cumulative buys and sells plus the overall running total.
//
// Endpoint: GET /api/portfolio/gains?user={userId}
// Response: 200 OK with GainAnalysis
// Error: 400 Bad Request if the user ID is invalid (validated by middleware)
// Error: 404 Not Found if the user does not exist
// Error: 503 Service Unavailable if the ledger or catalog cannot be fetched
// Error: 500 Internal Server Error if the analysis fails
func (h *PortfolioHandler) Gains(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user")

	analysis, err := h.portfolioService.GetGainAnalysis(userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUserNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrUserNotFound.Error(), err.Error())
		case errors.Is(err, apperrors.ErrDataUnavailable):
			response.RespondError(w, http.StatusServiceUnavailable, apperrors.ErrDataUnavailable.Error(), err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToAnalyzeGains.Error(), err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusOK, analysis)
}
