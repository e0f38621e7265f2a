package model

import "time"

// Snapshot is one dated observation of an asset's value, together with any
// external cash contribution (positive) or withdrawal (negative) recorded
// at that time.
//
// Dates are stored as YYYY-MM-DD strings. The valuation engine buckets and
// compares dates lexicographically, which for this format is equivalent to
// chronological ordering. The same date may appear more than once for an
// asset; ties are broken by insertion order (created_at, then id).
type Snapshot struct {
	ID        string    `json:"id"`
	AssetID   string    `json:"assetId"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Value     float64   `json:"value"`
	CashFlow  float64   `json:"cashFlow"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}
