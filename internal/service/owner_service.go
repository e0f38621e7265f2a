package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mbeekman/wealthtrack/internal/api/request"
	apperrors "github.com/mbeekman/wealthtrack/internal/errors"
	"github.com/mbeekman/wealthtrack/internal/model"
	"github.com/mbeekman/wealthtrack/internal/repository"
)

// OwnerService handles owner-related business logic operations.
type OwnerService struct {
	ownerRepo *repository.OwnerRepository
}

// NewOwnerService creates a new OwnerService with the provided dependencies.
func NewOwnerService(ownerRepo *repository.OwnerRepository) *OwnerService {
	return &OwnerService{ownerRepo: ownerRepo}
}

func (s *OwnerService) GetOwner(ownerID string) (model.Owner, error) {
	return s.ownerRepo.GetOwnerOnID(ownerID)
}

func (s *OwnerService) GetAllOwners() ([]model.Owner, error) {
	return s.ownerRepo.GetOwners()
}

// CreateOwner creates a new owner with a generated UUID.
func (s *OwnerService) CreateOwner(ctx context.Context, req request.CreateOwnerRequest) (*model.Owner, error) {
	owner := &model.Owner{
		ID:    uuid.New().String(),
		Name:  req.Name,
		Color: req.Color,
	}
	if owner.Color == "" {
		owner.Color = "#4a7ab5"
	}

	if err := s.ownerRepo.InsertOwner(ctx, owner); err != nil {
		return nil, fmt.Errorf("failed to create owner: %w", err)
	}

	return owner, nil
}

// UpdateOwner updates an existing owner with the provided fields.
// Only provided fields in the request are updated; omitted fields remain unchanged.
func (s *OwnerService) UpdateOwner(ctx context.Context, id string, req request.UpdateOwnerRequest) (*model.Owner, error) {
	owner, err := s.ownerRepo.GetOwnerOnID(id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		owner.Name = *req.Name
	}
	if req.Color != nil {
		owner.Color = *req.Color
	}

	if err := s.ownerRepo.UpdateOwner(ctx, &owner); err != nil {
		return nil, fmt.Errorf("failed to update owner: %w", err)
	}

	return &owner, nil
}

// DeleteOwner removes an owner. Owners that still have assets cannot be
// deleted; the assets must be reassigned or removed first.
func (s *OwnerService) DeleteOwner(ctx context.Context, id string) error {
	_, err := s.ownerRepo.GetOwnerOnID(id)
	if err != nil {
		return err
	}

	usage, err := s.CheckUsage(id)
	if err != nil {
		return fmt.Errorf("failed to check owner usage: %w", err)
	}
	if usage.InUsage {
		return apperrors.ErrOwnerInUse
	}

	if err := s.ownerRepo.DeleteOwner(ctx, id); err != nil {
		return fmt.Errorf("failed to delete owner: %w", err)
	}
	return nil
}

// CheckUsage reports whether any assets reference the owner.
func (s *OwnerService) CheckUsage(ownerID string) (model.OwnerUsage, error) {
	count, err := s.ownerRepo.CountAssets(ownerID)
	if err != nil {
		return model.OwnerUsage{}, err
	}
	return model.OwnerUsage{InUsage: count > 0, AssetCount: count}, nil
}
