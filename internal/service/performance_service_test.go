package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/mbeekman/wealthtrack/internal/engine"
	apperrors "github.com/mbeekman/wealthtrack/internal/errors"
	"github.com/mbeekman/wealthtrack/internal/testutil"
)

// referenceNow is the injected clock value for performance tests, so
// default-range computation does not depend on the wall clock.
var referenceNow = time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)

// TestPerformanceService_GetAssetTimeline tests the dense monthly timeline.
//
// WHY: The chart view depends on the timeline carrying values forward between
// observations and extending to the current month by default. A gap or a
// short series would render as a broken chart.
func TestPerformanceService_GetAssetTimeline(t *testing.T) {
	t.Run("carries values forward to the current month", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPerformanceService(t, db, referenceNow)
		owner := testutil.NewOwner().Build(t, db)
		asset := testutil.NewAsset(owner.ID).Build(t, db)

		testutil.CreateSnapshot(t, db, asset.ID, "2023-01-15", 1000, 1000)
		testutil.CreateSnapshot(t, db, asset.ID, "2023-03-20", 1150, 100)

		// Execute
		timeline, err := svc.GetAssetTimeline(asset.ID, "")

		// Assert
		if err != nil {
			t.Fatalf("GetAssetTimeline() returned unexpected error: %v", err)
		}

		// January through June, the injected current month
		if len(timeline) != 6 {
			t.Fatalf("Expected 6 months, got %d", len(timeline))
		}

		if timeline[0].Month != "2023-01" || !timeline[0].RealData || timeline[0].Value != 1000 {
			t.Errorf("Unexpected inception point: %+v", timeline[0])
		}
		if timeline[1].Month != "2023-02" || timeline[1].RealData || timeline[1].Value != 1000 {
			t.Errorf("Expected February to carry January's value: %+v", timeline[1])
		}
		if timeline[2].Value != 1150 || timeline[2].Flow != 100 || !timeline[2].RealData {
			t.Errorf("Unexpected March point: %+v", timeline[2])
		}
		if timeline[5].Month != "2023-06" || timeline[5].Value != 1150 || timeline[5].RealData {
			t.Errorf("Expected June to carry March's value: %+v", timeline[5])
		}
	})

	t.Run("honors explicit end month", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPerformanceService(t, db, referenceNow)
		owner := testutil.NewOwner().Build(t, db)
		asset := testutil.NewAsset(owner.ID).Build(t, db)

		testutil.CreateSnapshot(t, db, asset.ID, "2023-01-15", 1000, 1000)

		// Execute
		timeline, err := svc.GetAssetTimeline(asset.ID, "2023-02")

		// Assert
		if err != nil {
			t.Fatalf("GetAssetTimeline() returned unexpected error: %v", err)
		}

		if len(timeline) != 2 {
			t.Errorf("Expected 2 months, got %d", len(timeline))
		}
	})

	t.Run("returns empty timeline for asset without snapshots", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPerformanceService(t, db, referenceNow)
		owner := testutil.NewOwner().Build(t, db)
		asset := testutil.NewAsset(owner.ID).Build(t, db)

		// Execute
		timeline, err := svc.GetAssetTimeline(asset.ID, "")

		// Assert
		if err != nil {
			t.Fatalf("GetAssetTimeline() returned unexpected error: %v", err)
		}

		if len(timeline) != 0 {
			t.Errorf("Expected empty timeline, got %d points", len(timeline))
		}
	})

	t.Run("returns not found for unknown asset", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPerformanceService(t, db, referenceNow)

		// Execute
		_, err := svc.GetAssetTimeline(testutil.MakeID(), "")

		// Assert
		if !errors.Is(err, apperrors.ErrAssetNotFound) {
			t.Errorf("Expected ErrAssetNotFound, got %v", err)
		}
	})
}

// TestPerformanceService_GetHeatmap tests the heatmap computation.
//
// WHY: The heatmap is the core view of the application. It must align rows
// by month, aggregate the portfolio from absolutes, and default the range
// to the trailing twelve months.
func TestPerformanceService_GetHeatmap(t *testing.T) {
	t.Run("defaults to trailing twelve months", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPerformanceService(t, db, referenceNow)

		// Execute
		heatmap, err := svc.GetHeatmap("", "", "")

		// Assert
		if err != nil {
			t.Fatalf("GetHeatmap() returned unexpected error: %v", err)
		}

		if heatmap.StartMonth != "2022-07" {
			t.Errorf("Expected start month 2022-07, got %s", heatmap.StartMonth)
		}
		if heatmap.EndMonth != "2023-06" {
			t.Errorf("Expected end month 2023-06, got %s", heatmap.EndMonth)
		}
	})

	t.Run("rejects inverted range", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPerformanceService(t, db, referenceNow)

		// Execute
		_, err := svc.GetHeatmap("2023-05", "2023-01", "")

		// Assert
		if !errors.Is(err, apperrors.ErrInvalidDateRange) {
			t.Errorf("Expected ErrInvalidDateRange, got %v", err)
		}
	})

	t.Run("rejects unknown owner", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPerformanceService(t, db, referenceNow)

		// Execute
		_, err := svc.GetHeatmap("", "", testutil.MakeID())

		// Assert
		if !errors.Is(err, apperrors.ErrOwnerNotFound) {
			t.Errorf("Expected ErrOwnerNotFound, got %v", err)
		}
	})

	t.Run("computes rows and portfolio aggregate", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPerformanceService(t, db, referenceNow)
		owner := testutil.NewOwner().Build(t, db)
		a := testutil.NewAsset(owner.ID).WithName("Broker").WithSortOrder(0).Build(t, db)
		b := testutil.NewAsset(owner.ID).WithName("Savings").WithSortOrder(1).Build(t, db)

		testutil.CreateSnapshot(t, db, a.ID, "2023-01-15", 1000, 1000)
		testutil.CreateSnapshot(t, db, a.ID, "2023-02-15", 1100, 0)
		testutil.CreateSnapshot(t, db, b.ID, "2023-02-20", 500, 500)

		// Execute
		heatmap, err := svc.GetHeatmap("2023-01", "2023-03", "")

		// Assert
		if err != nil {
			t.Fatalf("GetHeatmap() returned unexpected error: %v", err)
		}

		if len(heatmap.Rows) != 2 {
			t.Fatalf("Expected 2 rows, got %d", len(heatmap.Rows))
		}

		broker := heatmap.Rows[0]
		if broker.AssetID != a.ID {
			t.Fatalf("Expected first row to follow sort order")
		}
		if len(broker.Cells) != 3 {
			t.Fatalf("Expected 3 cells, got %d", len(broker.Cells))
		}

		if broker.Cells[0].State != engine.CellInception {
			t.Errorf("Expected January to be the inception cell, got %s", broker.Cells[0].State)
		}
		feb := broker.Cells[1]
		if feb.Change != 100 || !almostEqual(feb.ChangePercent, 10) {
			t.Errorf("Expected February gain 100 (10%%), got %v (%v%%)", feb.Change, feb.ChangePercent)
		}
		mar := broker.Cells[2]
		if mar.State != engine.CellNoData || mar.Value != 1100 {
			t.Errorf("Expected March to carry 1100 without data, got %+v", mar)
		}

		savings := heatmap.Rows[1]
		if savings.Cells[0].State != engine.CellNotExists {
			t.Errorf("Expected January before savings inception, got %s", savings.Cells[0].State)
		}
		if savings.Cells[1].State != engine.CellInception {
			t.Errorf("Expected February savings inception, got %s", savings.Cells[1].State)
		}

		// Portfolio: February value 1600, basis 1000 + 500, gain 100
		portfolio := heatmap.Portfolio
		pfeb := portfolio.Cells[1]
		if pfeb.Value != 1600 {
			t.Errorf("Expected portfolio February value 1600, got %v", pfeb.Value)
		}
		if pfeb.Change != 100 {
			t.Errorf("Expected portfolio February gain 100, got %v", pfeb.Change)
		}
		if !almostEqual(pfeb.ChangePercent, 100.0/1500.0*100.0) {
			t.Errorf("Expected portfolio February gain 6.67%%, got %v%%", pfeb.ChangePercent)
		}

		// Portfolio inception is the earliest asset inception
		if !portfolio.Cells[0].IsInception {
			t.Error("Expected portfolio January to be the inception cell")
		}
	})

	t.Run("filters rows by owner", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPerformanceService(t, db, referenceNow)
		alice := testutil.NewOwner().WithName("Alice").Build(t, db)
		bob := testutil.NewOwner().WithName("Bob").Build(t, db)
		a := testutil.NewAsset(alice.ID).Build(t, db)
		b := testutil.NewAsset(bob.ID).Build(t, db)

		testutil.CreateSnapshot(t, db, a.ID, "2023-01-15", 1000, 1000)
		testutil.CreateSnapshot(t, db, b.ID, "2023-01-15", 2000, 2000)

		// Execute
		heatmap, err := svc.GetHeatmap("2023-01", "2023-03", alice.ID)

		// Assert
		if err != nil {
			t.Fatalf("GetHeatmap() returned unexpected error: %v", err)
		}

		if len(heatmap.Rows) != 1 {
			t.Fatalf("Expected 1 row, got %d", len(heatmap.Rows))
		}
		if heatmap.Rows[0].AssetID != a.ID {
			t.Errorf("Expected only Alice's asset, got %s", heatmap.Rows[0].AssetID)
		}
	})
}
