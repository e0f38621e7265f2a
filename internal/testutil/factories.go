package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/mbeekman/wealthtrack/internal/model"
)

// OwnerBuilder provides a fluent interface for creating test owners.
//
// Example usage:
//
//	// Simple creation with defaults
//	owner := testutil.NewOwner().Build(t, db)
//
//	// Customized owner
//	owner := testutil.NewOwner().
//	    WithName("Alice").
//	    WithColor("#cc4444").
//	    Build(t, db)
type OwnerBuilder struct {
	ID    string
	Name  string
	Color string
}

// NewOwner creates an OwnerBuilder with sensible defaults.
func NewOwner() *OwnerBuilder {
	return &OwnerBuilder{
		ID:    MakeID(),
		Name:  MakeName("Test Owner"),
		Color: "#4a7ab5",
	}
}

// WithID sets a custom ID.
func (b *OwnerBuilder) WithID(id string) *OwnerBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *OwnerBuilder) WithName(name string) *OwnerBuilder {
	b.Name = name
	return b
}

// WithColor sets a custom color.
func (b *OwnerBuilder) WithColor(color string) *OwnerBuilder {
	b.Color = color
	return b
}

// Build creates the owner in the database and returns it.
func (b *OwnerBuilder) Build(t *testing.T, db *sql.DB) model.Owner {
	t.Helper()

	query := `
		INSERT INTO owner (id, name, color)
		VALUES (?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.Name, b.Color)
	if err != nil {
		t.Fatalf("Failed to create test owner: %v", err)
	}

	return model.Owner{
		ID:    b.ID,
		Name:  b.Name,
		Color: b.Color,
	}
}

// AssetBuilder provides a fluent interface for creating test assets.
//
// Example usage:
//
//	owner := testutil.NewOwner().Build(t, db)
//	asset := testutil.NewAsset(owner.ID).
//	    WithName("Broker Account").
//	    WithCategory("etf").
//	    Build(t, db)
type AssetBuilder struct {
	ID         string
	Name       string
	Category   string
	OwnerID    string
	Currency   string
	SortOrder  int
	IsArchived bool
	CreatedAt  time.Time
}

// NewAsset creates an AssetBuilder with sensible defaults for the given owner.
func NewAsset(ownerID string) *AssetBuilder {
	return &AssetBuilder{
		ID:        MakeID(),
		Name:      MakeName("Test Asset"),
		Category:  "etf",
		OwnerID:   ownerID,
		Currency:  "EUR",
		CreatedAt: time.Now().UTC(),
	}
}

// WithID sets a custom ID.
func (b *AssetBuilder) WithID(id string) *AssetBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *AssetBuilder) WithName(name string) *AssetBuilder {
	b.Name = name
	return b
}

// WithCategory sets a custom category.
func (b *AssetBuilder) WithCategory(category string) *AssetBuilder {
	b.Category = category
	return b
}

// WithCurrency sets a custom currency.
func (b *AssetBuilder) WithCurrency(currency string) *AssetBuilder {
	b.Currency = currency
	return b
}

// WithSortOrder sets a custom sort position.
func (b *AssetBuilder) WithSortOrder(order int) *AssetBuilder {
	b.SortOrder = order
	return b
}

// Archived marks the asset as archived.
func (b *AssetBuilder) Archived() *AssetBuilder {
	b.IsArchived = true
	return b
}

// Build creates the asset in the database and returns it.
func (b *AssetBuilder) Build(t *testing.T, db *sql.DB) model.Asset {
	t.Helper()

	query := `
		INSERT INTO asset (id, name, category, owner_id, currency, sort_order, is_archived, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.ID, b.Name, b.Category, b.OwnerID, b.Currency,
		b.SortOrder, b.IsArchived, b.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		t.Fatalf("Failed to create test asset: %v", err)
	}

	return model.Asset{
		ID:         b.ID,
		Name:       b.Name,
		Category:   b.Category,
		OwnerID:    b.OwnerID,
		Currency:   b.Currency,
		SortOrder:  b.SortOrder,
		IsArchived: b.IsArchived,
		CreatedAt:  b.CreatedAt,
	}
}

// SnapshotBuilder provides a fluent interface for creating test snapshots.
//
// Example usage:
//
//	snapshot := testutil.NewSnapshot(asset.ID, "2023-01-15").
//	    WithValue(1000).
//	    WithCashFlow(1000).
//	    Build(t, db)
type SnapshotBuilder struct {
	ID        string
	AssetID   string
	Date      string
	Value     float64
	CashFlow  float64
	Note      string
	CreatedAt time.Time
}

// NewSnapshot creates a SnapshotBuilder for the given asset and date.
// The date must be in YYYY-MM-DD format.
func NewSnapshot(assetID, date string) *SnapshotBuilder {
	return &SnapshotBuilder{
		ID:        MakeID(),
		AssetID:   assetID,
		Date:      date,
		CreatedAt: time.Now().UTC(),
	}
}

// WithValue sets the observed value.
func (b *SnapshotBuilder) WithValue(value float64) *SnapshotBuilder {
	b.Value = value
	return b
}

// WithCashFlow sets the net cash flow.
func (b *SnapshotBuilder) WithCashFlow(flow float64) *SnapshotBuilder {
	b.CashFlow = flow
	return b
}

// WithNote sets a note.
func (b *SnapshotBuilder) WithNote(note string) *SnapshotBuilder {
	b.Note = note
	return b
}

// WithCreatedAt sets the creation timestamp, which breaks ties between
// snapshots recorded on the same date.
func (b *SnapshotBuilder) WithCreatedAt(createdAt time.Time) *SnapshotBuilder {
	b.CreatedAt = createdAt
	return b
}

// Build creates the snapshot in the database and returns it.
func (b *SnapshotBuilder) Build(t *testing.T, db *sql.DB) model.Snapshot {
	t.Helper()

	query := `
		INSERT INTO snapshot (id, asset_id, date, value, cash_flow, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.ID, b.AssetID, b.Date, b.Value, b.CashFlow, b.Note,
		b.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		t.Fatalf("Failed to create test snapshot: %v", err)
	}

	return model.Snapshot{
		ID:        b.ID,
		AssetID:   b.AssetID,
		Date:      b.Date,
		Value:     b.Value,
		CashFlow:  b.CashFlow,
		Note:      b.Note,
		CreatedAt: b.CreatedAt,
	}
}

// Convenience functions

// CreateOwner creates an owner with the given name and default values.
//
// Example usage:
//
//	owner := testutil.CreateOwner(t, db, "Alice")
func CreateOwner(t *testing.T, db *sql.DB, name string) model.Owner {
	t.Helper()
	return NewOwner().WithName(name).Build(t, db)
}

// CreateAsset creates an asset with the given name for an owner.
//
// Example usage:
//
//	asset := testutil.CreateAsset(t, db, owner.ID, "Broker Account")
func CreateAsset(t *testing.T, db *sql.DB, ownerID, name string) model.Asset {
	t.Helper()
	return NewAsset(ownerID).WithName(name).Build(t, db)
}

// CreateSnapshot creates a snapshot with the given value and cash flow.
//
// Example usage:
//
//	snapshot := testutil.CreateSnapshot(t, db, asset.ID, "2023-01-15", 1000, 1000)
func CreateSnapshot(t *testing.T, db *sql.DB, assetID, date string, value, cashFlow float64) model.Snapshot {
	t.Helper()
	return NewSnapshot(assetID, date).WithValue(value).WithCashFlow(cashFlow).Build(t, db)
}
