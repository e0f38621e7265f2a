package repository

import (
	"context"
	"database/sql"
	"fmt"

	apperrors "github.com/mbeekman/wealthtrack/internal/errors"
	"github.com/mbeekman/wealthtrack/internal/model"
)

// OwnerRepository provides data access methods for the owner table.
type OwnerRepository struct {
	db *sql.DB
}

// NewOwnerRepository creates a new OwnerRepository with the provided database connection.
func NewOwnerRepository(db *sql.DB) *OwnerRepository {
	return &OwnerRepository{db: db}
}

// GetOwners retrieves all owners ordered by name.
// Returns an empty slice if no owners exist.
func (s *OwnerRepository) GetOwners() ([]model.Owner, error) {
	query := `
          SELECT id, name, color
          FROM owner
          ORDER BY name ASC
      `
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query owner table: %w", err)
	}
	defer rows.Close()

	owners := []model.Owner{}

	for rows.Next() {
		var o model.Owner

		err := rows.Scan(&o.ID, &o.Name, &o.Color)
		if err != nil {
			return nil, fmt.Errorf("failed to scan owner table results: %w", err)
		}

		owners = append(owners, o)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating owner table: %w", err)
	}

	return owners, nil
}

func (s *OwnerRepository) GetOwnerOnID(ownerID string) (model.Owner, error) {
	query := `
          SELECT id, name, color
          FROM owner
          WHERE id = ?
      `
	var o model.Owner

	err := s.db.QueryRow(query, ownerID).Scan(&o.ID, &o.Name, &o.Color)
	if err == sql.ErrNoRows {
		return model.Owner{}, apperrors.ErrOwnerNotFound
	}
	if err != nil {
		return model.Owner{}, fmt.Errorf("failed to query owner: %w", err)
	}

	return o, nil
}

// InsertOwner inserts a new owner record.
func (s *OwnerRepository) InsertOwner(ctx context.Context, owner *model.Owner) error {
	query := `
          INSERT INTO owner (id, name, color)
          VALUES (?, ?, ?)
      `
	if _, err := s.db.ExecContext(ctx, query, owner.ID, owner.Name, owner.Color); err != nil {
		return fmt.Errorf("failed to insert owner: %w", err)
	}
	return nil
}

// UpdateOwner updates an existing owner record.
func (s *OwnerRepository) UpdateOwner(ctx context.Context, owner *model.Owner) error {
	query := `
          UPDATE owner
          SET name = ?, color = ?
          WHERE id = ?
      `
	if _, err := s.db.ExecContext(ctx, query, owner.Name, owner.Color, owner.ID); err != nil {
		return fmt.Errorf("failed to update owner: %w", err)
	}
	return nil
}

// DeleteOwner removes an owner record.
func (s *OwnerRepository) DeleteOwner(ctx context.Context, ownerID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM owner WHERE id = ?`, ownerID); err != nil {
		return fmt.Errorf("failed to delete owner: %w", err)
	}
	return nil
}

// CountAssets returns the number of assets referencing the given owner.
// Used to refuse deletion of owners that are still in use.
func (s *OwnerRepository) CountAssets(ownerID string) (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM asset WHERE owner_id = ?`, ownerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count owner assets: %w", err)
	}
	return count, nil
}
