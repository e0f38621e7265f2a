package model

// Owner represents a household member who owns one or more assets.
type Owner struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"` // Display color used by the frontend for labeling
}

// OwnerUsage describes whether an owner is referenced by any assets.
// Owners that are in use cannot be deleted.
type OwnerUsage struct {
	InUsage    bool `json:"inUsage"`
	AssetCount int  `json:"assetCount"`
}
