package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mbeekman/wealthtrack/internal/api/request"
	apperrors "github.com/mbeekman/wealthtrack/internal/errors"
	"github.com/mbeekman/wealthtrack/internal/model"
	"github.com/mbeekman/wealthtrack/internal/repository"
)

// AssetService handles asset-related business logic operations.
type AssetService struct {
	assetRepo    *repository.AssetRepository
	ownerService *OwnerService
}

// NewAssetService creates a new AssetService with the provided dependencies.
func NewAssetService(
	assetRepo *repository.AssetRepository,
	ownerService *OwnerService,
) *AssetService {
	return &AssetService{
		assetRepo:    assetRepo,
		ownerService: ownerService,
	}
}

func (s *AssetService) GetAsset(assetID string) (model.Asset, error) {
	return s.assetRepo.GetAssetOnID(assetID)
}

func (s *AssetService) GetAssets(filter model.AssetFilter) ([]model.Asset, error) {
	return s.assetRepo.GetAssets(filter)
}

// GetAssetsForRequest resolves assets for performance queries: all active
// assets, optionally restricted to a single owner.
func (s *AssetService) GetAssetsForRequest(ownerID string) ([]model.Asset, error) {
	if ownerID != "" {
		if _, err := s.ownerService.GetOwner(ownerID); err != nil {
			return nil, err
		}
	}
	return s.assetRepo.GetAssets(model.AssetFilter{OwnerID: ownerID})
}

// CreateAsset creates a new asset with the provided details.
// Validates that the owner exists, generates a UUID, and places the asset
// at the end of the current sort order.
func (s *AssetService) CreateAsset(ctx context.Context, req request.CreateAssetRequest) (*model.Asset, error) {
	if _, err := s.ownerService.GetOwner(req.OwnerID); err != nil {
		return nil, err
	}

	existing, err := s.assetRepo.GetAssets(model.AssetFilter{IncludeArchived: true})
	if err != nil {
		return nil, fmt.Errorf("failed to determine sort order: %w", err)
	}

	asset := &model.Asset{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Category:  req.Category,
		OwnerID:   req.OwnerID,
		Currency:  req.Currency,
		SortOrder: len(existing),
		CreatedAt: time.Now().UTC(),
	}
	if asset.Currency == "" {
		asset.Currency = "EUR"
	}

	if err := s.assetRepo.InsertAsset(ctx, asset); err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}

	return asset, nil
}

// UpdateAsset updates an existing asset with the provided fields.
// Only provided fields in the request are updated; omitted fields remain unchanged.
func (s *AssetService) UpdateAsset(
	ctx context.Context,
	id string,
	req request.UpdateAssetRequest,
) (*model.Asset, error) {
	asset, err := s.assetRepo.GetAssetOnID(id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		asset.Name = *req.Name
	}
	if req.Category != nil {
		asset.Category = *req.Category
	}
	if req.OwnerID != nil {
		if _, err := s.ownerService.GetOwner(*req.OwnerID); err != nil {
			return nil, err
		}
		asset.OwnerID = *req.OwnerID
	}
	if req.Currency != nil {
		asset.Currency = *req.Currency
	}
	if req.IsArchived != nil {
		asset.IsArchived = *req.IsArchived
	}

	if err := s.assetRepo.UpdateAsset(ctx, &asset); err != nil {
		return nil, fmt.Errorf("failed to update asset: %w", err)
	}

	return &asset, nil
}

// DeleteAsset removes an asset. An asset that still has snapshot history is
// only deleted when cascade is set; otherwise the caller gets ErrAssetInUse
// so the frontend can ask for confirmation.
func (s *AssetService) DeleteAsset(ctx context.Context, id string, cascade bool) error {
	_, err := s.assetRepo.GetAssetOnID(id)
	if err != nil {
		return err
	}

	usage, err := s.CheckUsage(id)
	if err != nil {
		return fmt.Errorf("failed to check asset usage: %w", err)
	}
	if usage.InUsage && !cascade {
		return apperrors.ErrAssetInUse
	}

	if err := s.assetRepo.DeleteAsset(ctx, id); err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	return nil
}

// ReorderAssets persists a new display order after a drag reorder.
// The request carries the full list of asset IDs in their new order.
func (s *AssetService) ReorderAssets(ctx context.Context, req request.ReorderAssetsRequest) error {
	orders := make(map[string]int, len(req.AssetIDs))
	for position, assetID := range req.AssetIDs {
		if _, err := s.assetRepo.GetAssetOnID(assetID); err != nil {
			return err
		}
		orders[assetID] = position
	}

	if err := s.assetRepo.UpdateSortOrders(ctx, orders); err != nil {
		return fmt.Errorf("failed to reorder assets: %w", err)
	}
	return nil
}

// CheckUsage reports whether the asset has any snapshot history.
func (s *AssetService) CheckUsage(assetID string) (model.AssetUsage, error) {
	count, err := s.assetRepo.CountSnapshots(assetID)
	if err != nil {
		return model.AssetUsage{}, err
	}
	return model.AssetUsage{InUsage: count > 0, SnapshotCount: count}, nil
}
