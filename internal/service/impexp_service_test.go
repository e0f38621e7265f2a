package service_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	apperrors "github.com/mbeekman/wealthtrack/internal/errors"
	"github.com/mbeekman/wealthtrack/internal/testutil"
)

// TestImpExpService_ExportSnapshots tests CSV export.
//
// WHY: Exports are the user's escape hatch; the format must stay stable
// (header row plus one row per snapshot, oldest first, two decimals).
func TestImpExpService_ExportSnapshots(t *testing.T) {
	t.Run("writes header and rows oldest first", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestImpExpService(t, db)
		owner := testutil.NewOwner().Build(t, db)
		asset := testutil.NewAsset(owner.ID).Build(t, db)

		testutil.NewSnapshot(asset.ID, "2023-02-15").WithValue(1100.505).Build(t, db)
		testutil.NewSnapshot(asset.ID, "2023-01-15").WithValue(1000).WithCashFlow(1000).WithNote("opening").Build(t, db)

		var buf bytes.Buffer

		// Execute
		err := svc.ExportSnapshots(asset.ID, &buf)

		// Assert
		if err != nil {
			t.Fatalf("ExportSnapshots() returned unexpected error: %v", err)
		}

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) != 3 {
			t.Fatalf("Expected header plus 2 rows, got %d lines", len(lines))
		}
		if lines[0] != "date,value,cash_flow,note" {
			t.Errorf("Unexpected header: %s", lines[0])
		}
		if lines[1] != "2023-01-15,1000,1000,opening" {
			t.Errorf("Unexpected first row: %s", lines[1])
		}
		if lines[2] != "2023-02-15,1100.51,0," {
			t.Errorf("Expected value rounded to two decimals, got: %s", lines[2])
		}
	})

	t.Run("returns not found for unknown asset", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestImpExpService(t, db)

		var buf bytes.Buffer

		// Execute
		err := svc.ExportSnapshots(testutil.MakeID(), &buf)

		// Assert
		if !errors.Is(err, apperrors.ErrAssetNotFound) {
			t.Errorf("Expected ErrAssetNotFound, got %v", err)
		}
	})
}

// TestImpExpService_ImportSnapshots tests CSV import.
//
// WHY: Imports are all-or-nothing: a single bad row must reject the whole
// file, and monetary columns must survive the decimal round trip.
func TestImpExpService_ImportSnapshots(t *testing.T) {
	t.Run("imports valid file", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestImpExpService(t, db)
		snapshotSvc := testutil.NewTestSnapshotService(t, db)
		owner := testutil.NewOwner().Build(t, db)
		asset := testutil.NewAsset(owner.ID).Build(t, db)

		csv := "date,value,cash_flow,note\n" +
			"2023-01-15,1000,1000,opening\n" +
			"2023-02-15,1100.10,,\n"

		// Execute
		imported, err := svc.ImportSnapshots(context.Background(), asset.ID, strings.NewReader(csv))

		// Assert
		if err != nil {
			t.Fatalf("ImportSnapshots() returned unexpected error: %v", err)
		}
		if imported != 2 {
			t.Errorf("Expected 2 imported rows, got %d", imported)
		}

		snapshots, err := snapshotSvc.GetSnapshots(asset.ID)
		if err != nil {
			t.Fatalf("GetSnapshots() returned unexpected error: %v", err)
		}
		if len(snapshots) != 2 {
			t.Fatalf("Expected 2 snapshots, got %d", len(snapshots))
		}
		if snapshots[1].Value != 1100.10 {
			t.Errorf("Expected value 1100.10, got %v", snapshots[1].Value)
		}
		if snapshots[1].CashFlow != 0 {
			t.Errorf("Expected empty cash flow to default to 0, got %v", snapshots[1].CashFlow)
		}
	})

	t.Run("rejects wrong headers", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestImpExpService(t, db)
		owner := testutil.NewOwner().Build(t, db)
		asset := testutil.NewAsset(owner.ID).Build(t, db)

		csv := "datum,value,cash_flow,note\n2023-01-15,1000,1000,\n"

		// Execute
		_, err := svc.ImportSnapshots(context.Background(), asset.ID, strings.NewReader(csv))

		// Assert
		if !errors.Is(err, apperrors.ErrInvalidCSVHeaders) {
			t.Errorf("Expected ErrInvalidCSVHeaders, got %v", err)
		}
	})

	t.Run("rejects negative values and imports nothing", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestImpExpService(t, db)
		owner := testutil.NewOwner().Build(t, db)
		asset := testutil.NewAsset(owner.ID).Build(t, db)

		csv := "date,value,cash_flow,note\n" +
			"2023-01-15,1000,1000,\n" +
			"2023-02-15,-50,0,\n"

		// Execute
		_, err := svc.ImportSnapshots(context.Background(), asset.ID, strings.NewReader(csv))

		// Assert
		if !errors.Is(err, apperrors.ErrNegativeValue) {
			t.Errorf("Expected ErrNegativeValue, got %v", err)
		}

		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM snapshot WHERE asset_id = ?", asset.ID).Scan(&count); err != nil {
			t.Fatalf("Failed to count snapshots: %v", err)
		}
		if count != 0 {
			t.Errorf("Expected no snapshots after failed import, got %d", count)
		}
	})

	t.Run("rejects malformed date with line number", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestImpExpService(t, db)
		owner := testutil.NewOwner().Build(t, db)
		asset := testutil.NewAsset(owner.ID).Build(t, db)

		csv := "date,value,cash_flow,note\n15-01-2023,1000,1000,\n"

		// Execute
		_, err := svc.ImportSnapshots(context.Background(), asset.ID, strings.NewReader(csv))

		// Assert
		if err == nil {
			t.Fatal("Expected error for malformed date")
		}
		if !strings.Contains(err.Error(), "line 2") {
			t.Errorf("Expected error to name line 2, got: %v", err)
		}
	})
}
