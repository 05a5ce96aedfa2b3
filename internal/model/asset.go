package model

// Asset represents a tradable asset from the catalog.
// Read-only reference data: the engine never mutates assets.
type Asset struct {
	AssetID   string `json:"asset_id"`
	AssetName string `json:"asset_name"`
	AssetType string `json:"asset_type"`
}
