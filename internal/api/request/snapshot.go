package request

// CreateSnapshotRequest is the request body for recording a snapshot.
// Date must be in YYYY-MM-DD format.
type CreateSnapshotRequest struct {
	Date     string  `json:"date"`
	Value    float64 `json:"value"`
	CashFlow float64 `json:"cashFlow"`
	Note     string  `json:"note"`
}

// UpdateSnapshotRequest is the request body for updating a snapshot.
// Nil fields are left unchanged.
type UpdateSnapshotRequest struct {
	Date     *string  `json:"date"`
	Value    *float64 `json:"value"`
	CashFlow *float64 `json:"cashFlow"`
	Note     *string  `json:"note"`
}
