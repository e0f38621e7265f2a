package model

import "time"

// Asset represents a single tracked holding (a brokerage account, a
// property, a pension pot). Its value history lives in the snapshot table.
type Asset struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	OwnerID    string    `json:"ownerId"`
	Currency   string    `json:"currency"`
	SortOrder  int       `json:"sortOrder"`
	IsArchived bool      `json:"isArchived"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
}

// AssetFilter for querying assets
type AssetFilter struct {
	OwnerID         string
	IncludeArchived bool
}

// AssetUsage describes whether an asset has snapshot history attached.
type AssetUsage struct {
	InUsage       bool `json:"inUsage"`
	SnapshotCount int  `json:"snapshotCount"`
}
