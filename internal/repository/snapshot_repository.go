package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	apperrors "github.com/mbeekman/wealthtrack/internal/errors"
	"github.com/mbeekman/wealthtrack/internal/model"
)

// SnapshotRepository provides data access methods for the snapshot table.
// It handles retrieving per-asset snapshot history for the valuation engine.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new SnapshotRepository with the provided database connection.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// GetSnapshots retrieves all snapshots for the given asset IDs, grouped by
// asset. Results are ordered by date then created_at then id, so snapshots
// sharing a date keep their insertion order. The engine's same-month
// "last snapshot wins" rule depends on this.
//
// Returns a map of assetID -> []Snapshot. If assetIDs is empty, returns an empty map.
func (s *SnapshotRepository) GetSnapshots(assetIDs []string) (map[string][]model.Snapshot, error) {
	if len(assetIDs) == 0 {
		return make(map[string][]model.Snapshot), nil
	}

	placeholders := make([]string, len(assetIDs))
	for i := range placeholders {
		placeholders[i] = "?"
	}

	//#nosec G202 -- Safe: placeholders are generated programmatically, not from user input
	query := `
		SELECT id, asset_id, date, value, cash_flow, note, created_at
		FROM snapshot
		WHERE asset_id IN (` + strings.Join(placeholders, ",") + `)
		ORDER BY date ASC, created_at ASC, id ASC
	`

	args := make([]any, len(assetIDs))
	for i, id := range assetIDs {
		args[i] = id
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot table: %w", err)
	}
	defer rows.Close()

	snapshotsByAsset := make(map[string][]model.Snapshot)

	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshotsByAsset[snap.AssetID] = append(snapshotsByAsset[snap.AssetID], snap)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating snapshot table: %w", err)
	}

	return snapshotsByAsset, nil
}

// GetSnapshotsOnAssetID retrieves the full snapshot list for one asset in
// ascending date order.
func (s *SnapshotRepository) GetSnapshotsOnAssetID(assetID string) ([]model.Snapshot, error) {
	grouped, err := s.GetSnapshots([]string{assetID})
	if err != nil {
		return nil, err
	}
	snapshots, ok := grouped[assetID]
	if !ok {
		return []model.Snapshot{}, nil
	}
	return snapshots, nil
}

func (s *SnapshotRepository) GetSnapshotOnID(snapshotID string) (model.Snapshot, error) {
	query := `
		SELECT id, asset_id, date, value, cash_flow, note, created_at
		FROM snapshot
		WHERE id = ?
	`
	rows, err := s.db.Query(query, snapshotID)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to query snapshot: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return model.Snapshot{}, fmt.Errorf("failed to query snapshot: %w", err)
		}
		return model.Snapshot{}, apperrors.ErrSnapshotNotFound
	}

	return scanSnapshot(rows)
}

// InsertSnapshot inserts a new snapshot record.
func (s *SnapshotRepository) InsertSnapshot(ctx context.Context, snap *model.Snapshot) error {
	query := `
		INSERT INTO snapshot (id, asset_id, date, value, cash_flow, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query,
		snap.ID,
		snap.AssetID,
		snap.Date,
		snap.Value,
		snap.CashFlow,
		snap.Note,
		snap.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}
	return nil
}

// InsertSnapshots inserts a batch of snapshots in one transaction.
// Used by CSV import so a half-parsed file never leaves partial history.
func (s *SnapshotRepository) InsertSnapshots(ctx context.Context, snaps []model.Snapshot) error {
	if len(snaps) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO snapshot (id, asset_id, date, value, cash_flow, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	for _, snap := range snaps {
		_, err := tx.ExecContext(ctx, query,
			snap.ID,
			snap.AssetID,
			snap.Date,
			snap.Value,
			snap.CashFlow,
			snap.Note,
			snap.CreatedAt.UTC().Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("failed to insert snapshot: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot batch: %w", err)
	}
	return nil
}

// UpdateSnapshot updates an existing snapshot record.
func (s *SnapshotRepository) UpdateSnapshot(ctx context.Context, snap *model.Snapshot) error {
	query := `
		UPDATE snapshot
		SET date = ?, value = ?, cash_flow = ?, note = ?
		WHERE id = ?
	`
	_, err := s.db.ExecContext(ctx, query, snap.Date, snap.Value, snap.CashFlow, snap.Note, snap.ID)
	if err != nil {
		return fmt.Errorf("failed to update snapshot: %w", err)
	}
	return nil
}

// DeleteSnapshot removes a snapshot record.
func (s *SnapshotRepository) DeleteSnapshot(ctx context.Context, snapshotID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM snapshot WHERE id = ?`, snapshotID); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}

func scanSnapshot(rows *sql.Rows) (model.Snapshot, error) {
	var snap model.Snapshot
	var note sql.NullString
	var createdAtStr string

	err := rows.Scan(
		&snap.ID,
		&snap.AssetID,
		&snap.Date,
		&snap.Value,
		&snap.CashFlow,
		&note,
		&createdAtStr,
	)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to scan snapshot table results: %w", err)
	}
	snap.Note = note.String

	snap.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to parse date: %w", err)
	}

	return snap, nil
}
