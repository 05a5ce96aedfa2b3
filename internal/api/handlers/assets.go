package handlers

import (
	"net/http"

	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/api/response"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/apperrors"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/service"
)

// AssetHandler handles HTTP requests for the asset catalog.
type AssetHandler struct {
	assetService *service.AssetService
}

// NewAssetHandler creates a new AssetHandler with the provided service dependency.
func NewAssetHandler(assetService *service.AssetService) *AssetHandler {
	return &AssetHandler{
		assetService: assetService,
	}
}

// Assets handles GET requests to retrieve the tradable asset catalog.
//
// Endpoint: GET /api/asset
// Response: 200 OK with array of Asset
// Error: 500 Internal Server Error if retrieval fails
func (h *AssetHandler) Assets(w http.ResponseWriter, _ *http.Request) {
	assets, err := h.assetService.GetAssets()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveAssets.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, assets)
}
