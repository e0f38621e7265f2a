package request

// CreateAssetRequest is the request body for creating an asset.
type CreateAssetRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	OwnerID  string `json:"ownerId"`
	Currency string `json:"currency"`
}

// UpdateAssetRequest is the request body for updating an asset.
// Nil fields are left unchanged.
type UpdateAssetRequest struct {
	Name       *string `json:"name"`
	Category   *string `json:"category"`
	OwnerID    *string `json:"ownerId"`
	Currency   *string `json:"currency"`
	IsArchived *bool   `json:"isArchived"`
}

// ReorderAssetsRequest is the request body for reordering assets.
// Assets take the sort position of their index in the list.
type ReorderAssetsRequest struct {
	AssetIDs []string `json:"assetIds"`
}
