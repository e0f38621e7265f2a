package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	apperrors "github.com/mbeekman/wealthtrack/internal/errors"
	"github.com/mbeekman/wealthtrack/internal/model"
)

// AssetRepository provides data access methods for the asset table.
type AssetRepository struct {
	db *sql.DB
}

// NewAssetRepository creates a new AssetRepository with the provided database connection.
func NewAssetRepository(db *sql.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

// GetAssets retrieves assets from the database based on filter criteria,
// ordered by sort_order then name. The filter allows restricting to a single
// owner and controls whether archived assets are included.
// Returns an empty slice if no assets match.
func (s *AssetRepository) GetAssets(filter model.AssetFilter) ([]model.Asset, error) {
	query := `
          SELECT id, name, category, owner_id, currency, sort_order, is_archived, created_at
          FROM asset
          WHERE 1=1
      `
	var args []any

	if !filter.IncludeArchived {
		query += " AND is_archived = ?"
		args = append(args, 0)
	}

	if filter.OwnerID != "" {
		query += " AND owner_id = ?"
		args = append(args, filter.OwnerID)
	}

	query += " ORDER BY sort_order ASC, name ASC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query asset table: %w", err)
	}
	defer rows.Close()

	assets := []model.Asset{}

	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating asset table: %w", err)
	}

	return assets, nil
}

func (s *AssetRepository) GetAssetOnID(assetID string) (model.Asset, error) {
	query := `
          SELECT id, name, category, owner_id, currency, sort_order, is_archived, created_at
          FROM asset
          WHERE id = ?
      `
	row := s.db.QueryRow(query, assetID)

	var a model.Asset
	var createdAtStr string
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Category,
		&a.OwnerID,
		&a.Currency,
		&a.SortOrder,
		&a.IsArchived,
		&createdAtStr,
	)
	if err == sql.ErrNoRows {
		return model.Asset{}, apperrors.ErrAssetNotFound
	}
	if err != nil {
		return model.Asset{}, fmt.Errorf("failed to query asset: %w", err)
	}

	a.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.Asset{}, fmt.Errorf("failed to parse date: %w", err)
	}

	return a, nil
}

// InsertAsset inserts a new asset record.
func (s *AssetRepository) InsertAsset(ctx context.Context, asset *model.Asset) error {
	query := `
          INSERT INTO asset (id, name, category, owner_id, currency, sort_order, is_archived, created_at)
          VALUES (?, ?, ?, ?, ?, ?, ?, ?)
      `
	_, err := s.db.ExecContext(ctx, query,
		asset.ID,
		asset.Name,
		asset.Category,
		asset.OwnerID,
		asset.Currency,
		asset.SortOrder,
		asset.IsArchived,
		asset.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert asset: %w", err)
	}
	return nil
}

// UpdateAsset updates an existing asset record.
func (s *AssetRepository) UpdateAsset(ctx context.Context, asset *model.Asset) error {
	query := `
          UPDATE asset
          SET name = ?, category = ?, owner_id = ?, currency = ?, sort_order = ?, is_archived = ?
          WHERE id = ?
      `
	_, err := s.db.ExecContext(ctx, query,
		asset.Name,
		asset.Category,
		asset.OwnerID,
		asset.Currency,
		asset.SortOrder,
		asset.IsArchived,
		asset.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update asset: %w", err)
	}
	return nil
}

// DeleteAsset removes an asset record. Snapshots cascade via the schema.
func (s *AssetRepository) DeleteAsset(ctx context.Context, assetID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM asset WHERE id = ?`, assetID); err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	return nil
}

// UpdateSortOrders persists the given asset-to-position mapping in one
// transaction so a drag reorder is applied atomically.
func (s *AssetRepository) UpdateSortOrders(ctx context.Context, orders map[string]int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for assetID, sortOrder := range orders {
		if _, err := tx.ExecContext(ctx, `UPDATE asset SET sort_order = ? WHERE id = ?`, sortOrder, assetID); err != nil {
			return fmt.Errorf("failed to update sort order: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit sort order update: %w", err)
	}
	return nil
}

// CountSnapshots returns the number of snapshots recorded for the given asset.
func (s *AssetRepository) CountSnapshots(assetID string) (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM snapshot WHERE asset_id = ?`, assetID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count asset snapshots: %w", err)
	}
	return count, nil
}

func scanAsset(rows *sql.Rows) (model.Asset, error) {
	var a model.Asset
	var createdAtStr string

	err := rows.Scan(
		&a.ID,
		&a.Name,
		&a.Category,
		&a.OwnerID,
		&a.Currency,
		&a.SortOrder,
		&a.IsArchived,
		&createdAtStr,
	)
	if err != nil {
		return model.Asset{}, fmt.Errorf("failed to scan asset table results: %w", err)
	}

	a.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.Asset{}, fmt.Errorf("failed to parse date: %w", err)
	}

	return a, nil
}
