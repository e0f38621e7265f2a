package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mbeekman/wealthtrack/internal/api/request"
	apperrors "github.com/mbeekman/wealthtrack/internal/errors"
	"github.com/mbeekman/wealthtrack/internal/model"
	"github.com/mbeekman/wealthtrack/internal/testutil"
)

// TestAssetService_GetAssets tests asset listing and filtering.
//
// WHY: The asset list drives the main screen. Archived assets must stay
// hidden unless asked for, and the owner filter must narrow correctly.
func TestAssetService_GetAssets(t *testing.T) {
	t.Run("excludes archived assets by default", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssetService(t, db)
		owner := testutil.NewOwner().Build(t, db)
		active := testutil.NewAsset(owner.ID).WithName("Active").Build(t, db)
		testutil.NewAsset(owner.ID).WithName("Old").Archived().Build(t, db)

		// Execute
		assets, err := svc.GetAssets(model.AssetFilter{})

		// Assert
		if err != nil {
			t.Fatalf("GetAssets() returned unexpected error: %v", err)
		}

		if len(assets) != 1 {
			t.Fatalf("Expected 1 asset, got %d", len(assets))
		}
		if assets[0].ID != active.ID {
			t.Errorf("Expected active asset %s, got %s", active.ID, assets[0].ID)
		}
	})

	t.Run("includes archived assets when requested", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssetService(t, db)
		owner := testutil.NewOwner().Build(t, db)
		testutil.NewAsset(owner.ID).Build(t, db)
		testutil.NewAsset(owner.ID).Archived().Build(t, db)

		// Execute
		assets, err := svc.GetAssets(model.AssetFilter{IncludeArchived: true})

		// Assert
		if err != nil {
			t.Fatalf("GetAssets() returned unexpected error: %v", err)
		}

		if len(assets) != 2 {
			t.Errorf("Expected 2 assets, got %d", len(assets))
		}
	})

	t.Run("filters by owner", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssetService(t, db)
		alice := testutil.NewOwner().WithName("Alice").Build(t, db)
		bob := testutil.NewOwner().WithName("Bob").Build(t, db)
		testutil.NewAsset(alice.ID).Build(t, db)
		testutil.NewAsset(bob.ID).Build(t, db)

		// Execute
		assets, err := svc.GetAssets(model.AssetFilter{OwnerID: alice.ID})

		// Assert
		if err != nil {
			t.Fatalf("GetAssets() returned unexpected error: %v", err)
		}

		if len(assets) != 1 {
			t.Fatalf("Expected 1 asset, got %d", len(assets))
		}
		if assets[0].OwnerID != alice.ID {
			t.Errorf("Expected owner %s, got %s", alice.ID, assets[0].OwnerID)
		}
	})

	t.Run("orders by sort order", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssetService(t, db)
		owner := testutil.NewOwner().Build(t, db)
		second := testutil.NewAsset(owner.ID).WithSortOrder(1).Build(t, db)
		first := testutil.NewAsset(owner.ID).WithSortOrder(0).Build(t, db)

		// Execute
		assets, err := svc.GetAssets(model.AssetFilter{})

		// Assert
		if err != nil {
			t.Fatalf("GetAssets() returned unexpected error: %v", err)
		}

		if len(assets) != 2 {
			t.Fatalf("Expected 2 assets, got %d", len(assets))
		}
		if assets[0].ID != first.ID || assets[1].ID != second.ID {
			t.Error("Expected assets ordered by sort order")
		}
	})
}

// TestAssetService_CreateAsset tests asset creation.
//
// WHY: New assets must land at the end of the display order and pick up the
// default currency, and creation against a missing owner must fail cleanly.
func TestAssetService_CreateAsset(t *testing.T) {
	t.Run("appends to sort order and defaults currency", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssetService(t, db)
		owner := testutil.NewOwner().Build(t, db)
		testutil.NewAsset(owner.ID).WithSortOrder(0).Build(t, db)
		testutil.NewAsset(owner.ID).WithSortOrder(1).Archived().Build(t, db)

		// Execute
		asset, err := svc.CreateAsset(context.Background(), request.CreateAssetRequest{
			Name:     "Broker Account",
			Category: "etf",
			OwnerID:  owner.ID,
		})

		// Assert
		if err != nil {
			t.Fatalf("CreateAsset() returned unexpected error: %v", err)
		}

		// Archived assets keep their position, so the new asset goes after them
		if asset.SortOrder != 2 {
			t.Errorf("Expected sort order 2, got %d", asset.SortOrder)
		}
		if asset.Currency != "EUR" {
			t.Errorf("Expected default currency 'EUR', got '%s'", asset.Currency)
		}
	})

	t.Run("rejects unknown owner", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssetService(t, db)

		// Execute
		_, err := svc.CreateAsset(context.Background(), request.CreateAssetRequest{
			Name:     "Orphan",
			Category: "cash",
			OwnerID:  testutil.MakeID(),
		})

		// Assert
		if !errors.Is(err, apperrors.ErrOwnerNotFound) {
			t.Errorf("Expected ErrOwnerNotFound, got %v", err)
		}
	})
}

// TestAssetService_UpdateAsset tests partial updates including archiving.
//
// WHY: Archiving is how assets leave the main screen without losing history;
// it must flip only the archived flag and leave everything else alone.
func TestAssetService_UpdateAsset(t *testing.T) {
	t.Run("archives asset without touching other fields", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssetService(t, db)
		owner := testutil.NewOwner().Build(t, db)
		asset := testutil.NewAsset(owner.ID).WithName("Savings").Build(t, db)

		archived := true

		// Execute
		updated, err := svc.UpdateAsset(context.Background(), asset.ID, request.UpdateAssetRequest{
			IsArchived: &archived,
		})

		// Assert
		if err != nil {
			t.Fatalf("UpdateAsset() returned unexpected error: %v", err)
		}

		if !updated.IsArchived {
			t.Error("Expected asset to be archived")
		}
		if updated.Name != "Savings" {
			t.Errorf("Expected name to be unchanged, got '%s'", updated.Name)
		}
	})

	t.Run("rejects moving asset to unknown owner", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssetService(t, db)
		owner := testutil.NewOwner().Build(t, db)
		asset := testutil.NewAsset(owner.ID).Build(t, db)

		unknownOwner := testutil.MakeID()

		// Execute
		_, err := svc.UpdateAsset(context.Background(), asset.ID, request.UpdateAssetRequest{
			OwnerID: &unknownOwner,
		})

		// Assert
		if !errors.Is(err, apperrors.ErrOwnerNotFound) {
			t.Errorf("Expected ErrOwnerNotFound, got %v", err)
		}
	})
}

// TestAssetService_DeleteAsset tests deletion and the cascade guard.
//
// WHY: Deleting an asset with history is destructive, so it needs an explicit
// cascade confirmation. Without it the service must refuse.
func TestAssetService_DeleteAsset(t *testing.T) {
	t.Run("refuses asset with snapshots without cascade", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssetService(t, db)
		owner := testutil.NewOwner().Build(t, db)
		asset := testutil.NewAsset(owner.ID).Build(t, db)
		testutil.CreateSnapshot(t, db, asset.ID, "2023-01-15", 1000, 1000)

		// Execute
		err := svc.DeleteAsset(context.Background(), asset.ID, false)

		// Assert
		if !errors.Is(err, apperrors.ErrAssetInUse) {
			t.Errorf("Expected ErrAssetInUse, got %v", err)
		}
	})

	t.Run("deletes asset and snapshots with cascade", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssetService(t, db)
		owner := testutil.NewOwner().Build(t, db)
		asset := testutil.NewAsset(owner.ID).Build(t, db)
		testutil.CreateSnapshot(t, db, asset.ID, "2023-01-15", 1000, 1000)

		// Execute
		err := svc.DeleteAsset(context.Background(), asset.ID, true)

		// Assert
		if err != nil {
			t.Fatalf("DeleteAsset() returned unexpected error: %v", err)
		}

		if _, err := svc.GetAsset(asset.ID); !errors.Is(err, apperrors.ErrAssetNotFound) {
			t.Errorf("Expected asset to be gone, got %v", err)
		}

		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM snapshot WHERE asset_id = ?", asset.ID).Scan(&count); err != nil {
			t.Fatalf("Failed to count snapshots: %v", err)
		}
		if count != 0 {
			t.Errorf("Expected snapshots to cascade, %d left", count)
		}
	})

	t.Run("deletes empty asset without cascade", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssetService(t, db)
		owner := testutil.NewOwner().Build(t, db)
		asset := testutil.NewAsset(owner.ID).Build(t, db)

		// Execute
		err := svc.DeleteAsset(context.Background(), asset.ID, false)

		// Assert
		if err != nil {
			t.Fatalf("DeleteAsset() returned unexpected error: %v", err)
		}
	})
}

// TestAssetService_ReorderAssets tests drag-reorder persistence.
//
// WHY: Sort positions come from the index of each ID in the submitted list;
// a partial or misapplied update would scramble the display order.
func TestAssetService_ReorderAssets(t *testing.T) {
	t.Run("assigns positions from list order", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssetService(t, db)
		owner := testutil.NewOwner().Build(t, db)
		a := testutil.NewAsset(owner.ID).WithName("A").WithSortOrder(0).Build(t, db)
		b := testutil.NewAsset(owner.ID).WithName("B").WithSortOrder(1).Build(t, db)
		c := testutil.NewAsset(owner.ID).WithName("C").WithSortOrder(2).Build(t, db)

		// Execute: reverse the order
		err := svc.ReorderAssets(context.Background(), request.ReorderAssetsRequest{
			AssetIDs: []string{c.ID, b.ID, a.ID},
		})

		// Assert
		if err != nil {
			t.Fatalf("ReorderAssets() returned unexpected error: %v", err)
		}

		assets, err := svc.GetAssets(model.AssetFilter{})
		if err != nil {
			t.Fatalf("GetAssets() returned unexpected error: %v", err)
		}

		if assets[0].ID != c.ID || assets[1].ID != b.ID || assets[2].ID != a.ID {
			t.Error("Expected assets in reversed order")
		}
	})

	t.Run("rejects unknown asset in list", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssetService(t, db)
		owner := testutil.NewOwner().Build(t, db)
		a := testutil.NewAsset(owner.ID).Build(t, db)

		// Execute
		err := svc.ReorderAssets(context.Background(), request.ReorderAssetsRequest{
			AssetIDs: []string{a.ID, testutil.MakeID()},
		})

		// Assert
		if !errors.Is(err, apperrors.ErrAssetNotFound) {
			t.Errorf("Expected ErrAssetNotFound, got %v", err)
		}
	})
}
