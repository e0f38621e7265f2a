package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/mbeekman/wealthtrack/internal/api/request"
	"github.com/mbeekman/wealthtrack/internal/engine"
	"github.com/mbeekman/wealthtrack/internal/model"
	"github.com/mbeekman/wealthtrack/internal/repository"
)

// SnapshotService handles snapshot-related business logic operations.
type SnapshotService struct {
	snapshotRepo *repository.SnapshotRepository
	assetService *AssetService
}

// NewSnapshotService creates a new SnapshotService with the provided dependencies.
func NewSnapshotService(
	snapshotRepo *repository.SnapshotRepository,
	assetService *AssetService,
) *SnapshotService {
	return &SnapshotService{
		snapshotRepo: snapshotRepo,
		assetService: assetService,
	}
}

func (s *SnapshotService) GetSnapshot(snapshotID string) (model.Snapshot, error) {
	return s.snapshotRepo.GetSnapshotOnID(snapshotID)
}

// GetSnapshots retrieves an asset's raw snapshots in ascending date order.
func (s *SnapshotService) GetSnapshots(assetID string) ([]model.Snapshot, error) {
	if _, err := s.assetService.GetAsset(assetID); err != nil {
		return nil, err
	}
	return s.snapshotRepo.GetSnapshotsOnAssetID(assetID)
}

// GetEnhancedSnapshots returns an asset's snapshots annotated with period,
// cumulative and year-to-date attribution, newest first for table views.
// Monetary results are rounded to two decimals; percentages are left as-is.
func (s *SnapshotService) GetEnhancedSnapshots(assetID string) ([]engine.EnhancedSnapshot, error) {
	snapshots, err := s.GetSnapshots(assetID)
	if err != nil {
		return nil, err
	}

	enhanced := engine.EnrichSnapshots(snapshots)
	for i := range enhanced {
		enhanced[i].CumInvested = round(enhanced[i].CumInvested)
		enhanced[i].PeriodGL = round(enhanced[i].PeriodGL)
		enhanced[i].CumGL = round(enhanced[i].CumGL)
		enhanced[i].YTDGL = round(enhanced[i].YTDGL)
	}

	// Computation is oldest-first; the table shows newest-first.
	slices.Reverse(enhanced)
	return enhanced, nil
}

// CreateSnapshot records a new observation for an asset.
func (s *SnapshotService) CreateSnapshot(ctx context.Context, assetID string, req request.CreateSnapshotRequest) (*model.Snapshot, error) {
	if _, err := s.assetService.GetAsset(assetID); err != nil {
		return nil, err
	}

	snap := &model.Snapshot{
		ID:        uuid.New().String(),
		AssetID:   assetID,
		Date:      req.Date,
		Value:     req.Value,
		CashFlow:  req.CashFlow,
		Note:      req.Note,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.snapshotRepo.InsertSnapshot(ctx, snap); err != nil {
		return nil, fmt.Errorf("failed to create snapshot: %w", err)
	}

	return snap, nil
}

// UpdateSnapshot updates an existing snapshot with the provided fields.
// Only provided fields in the request are updated; omitted fields remain unchanged.
func (s *SnapshotService) UpdateSnapshot(ctx context.Context, id string, req request.UpdateSnapshotRequest) (*model.Snapshot, error) {
	snap, err := s.snapshotRepo.GetSnapshotOnID(id)
	if err != nil {
		return nil, err
	}
	if req.Date != nil {
		snap.Date = *req.Date
	}
	if req.Value != nil {
		snap.Value = *req.Value
	}
	if req.CashFlow != nil {
		snap.CashFlow = *req.CashFlow
	}
	if req.Note != nil {
		snap.Note = *req.Note
	}

	if err := s.snapshotRepo.UpdateSnapshot(ctx, &snap); err != nil {
		return nil, fmt.Errorf("failed to update snapshot: %w", err)
	}

	return &snap, nil
}

// DeleteSnapshot removes a snapshot.
func (s *SnapshotService) DeleteSnapshot(ctx context.Context, id string) error {
	if _, err := s.snapshotRepo.GetSnapshotOnID(id); err != nil {
		return err
	}

	if err := s.snapshotRepo.DeleteSnapshot(ctx, id); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}
