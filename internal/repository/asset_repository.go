package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/apperrors"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/model"
)

// AssetRepository provides data access methods for the asset catalog table.
// The catalog is read-only reference data; assets are seeded by migration.
type AssetRepository struct {
	db *sql.DB
}

// NewAssetRepository creates a new AssetRepository with the provided database connection.
func NewAssetRepository(db *sql.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

// GetAssets retrieves the full asset catalog, ordered by asset ID.
func (r *AssetRepository) GetAssets() ([]model.Asset, error) {
	query := `
		SELECT asset_id, asset_name, asset_type
		FROM asset
		ORDER BY asset_id ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query asset table: %w", err)
	}
	defer rows.Close()

	assets := []model.Asset{}

	for rows.Next() {
		var a model.Asset
		if err := rows.Scan(&a.AssetID, &a.AssetName, &a.AssetType); err != nil {
			return nil, fmt.Errorf("failed to scan asset table results: %w", err)
		}
		assets = append(assets, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating asset table: %w", err)
	}

	return assets, nil
}

// GetAsset retrieves a single catalog entry by ID.
// Returns apperrors.ErrAssetNotFound if no such asset exists.
func (r *AssetRepository) GetAsset(assetID string) (model.Asset, error) {
	var a model.Asset

	query := `SELECT asset_id, asset_name, asset_type FROM asset WHERE asset_id = ?`
	err := r.db.QueryRow(query, assetID).Scan(&a.AssetID, &a.AssetName, &a.AssetType)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Asset{}, apperrors.ErrAssetNotFound
	}
	if err != nil {
		return model.Asset{}, fmt.Errorf("failed to scan asset table results: %w", err)
	}

	return a, nil
}
