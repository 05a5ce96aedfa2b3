package service

import (
	"errors"
	"fmt"

	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/apperrors"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/model"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/repository"
)

// AssetService provides read access to the asset catalog.
type AssetService struct {
	assetRepo *repository.AssetRepository
}

// NewAssetService creates a new AssetService.
func NewAssetService(assetRepo *repository.AssetRepository) *AssetService {
	return &AssetService{assetRepo: assetRepo}
}

// GetAssets returns the full asset catalog.
func (s *AssetService) GetAssets() ([]model.Asset, error) {
	assets, err := s.assetRepo.GetAssets()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrieveAssets, err)
	}

	return assets, nil
}

// GetAsset returns a single catalog entry.
// Returns apperrors.ErrAssetNotFound if the asset is not in the catalog.
func (s *AssetService) GetAsset(assetID string) (model.Asset, error) {
	asset, err := s.assetRepo.GetAsset(assetID)
	if errors.Is(err, apperrors.ErrAssetNotFound) {
		return model.Asset{}, err
	}
	if err != nil {
		return model.Asset{}, fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrieveAssets, err)
	}

	return asset, nil
}
