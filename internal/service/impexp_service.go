package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apperrors "github.com/mbeekman/wealthtrack/internal/errors"
	"github.com/mbeekman/wealthtrack/internal/model"
	"github.com/mbeekman/wealthtrack/internal/repository"
)

// snapshotCSVHeaders is the expected header row for snapshot import/export files.
var snapshotCSVHeaders = []string{"date", "value", "cash_flow", "note"}

// ImpExpService handles CSV import and export of snapshot history.
//
// Imports parse monetary columns through shopspring/decimal and round to
// two decimal places before converting, so "10.10" never arrives in the
// store as 10.099999999999999.
type ImpExpService struct {
	snapshotRepo *repository.SnapshotRepository
	assetService *AssetService
}

// NewImpExpService creates a new ImpExpService with the provided dependencies.
func NewImpExpService(
	snapshotRepo *repository.SnapshotRepository,
	assetService *AssetService,
) *ImpExpService {
	return &ImpExpService{
		snapshotRepo: snapshotRepo,
		assetService: assetService,
	}
}

// ExportSnapshots writes an asset's snapshot history as CSV, oldest first.
func (s *ImpExpService) ExportSnapshots(assetID string, w io.Writer) error {
	if _, err := s.assetService.GetAsset(assetID); err != nil {
		return err
	}

	snapshots, err := s.snapshotRepo.GetSnapshotsOnAssetID(assetID)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(snapshotCSVHeaders); err != nil {
		return fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, snap := range snapshots {
		record := []string{
			snap.Date,
			decimal.NewFromFloat(snap.Value).Round(2).String(),
			decimal.NewFromFloat(snap.CashFlow).Round(2).String(),
			snap.Note,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV output: %w", err)
	}
	return nil
}

// ImportSnapshots parses a CSV file and appends its rows as snapshots of
// the given asset. The whole file is inserted in one transaction; a single
// bad row rejects the entire import. Returns the number of imported rows.
func (s *ImpExpService) ImportSnapshots(ctx context.Context, assetID string, r io.Reader) (int, error) {
	if _, err := s.assetService.GetAsset(assetID); err != nil {
		return 0, err
	}

	reader := csv.NewReader(r)
	headers, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read CSV headers: %w", err)
	}
	if !equalHeaders(headers, snapshotCSVHeaders) {
		return 0, apperrors.ErrInvalidCSVHeaders
	}

	var snaps []model.Snapshot
	now := time.Now().UTC()
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read CSV record: %w", err)
		}

		snap, err := parseSnapshotRecord(record)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", line, err)
		}
		snap.ID = uuid.New().String()
		snap.AssetID = assetID
		snap.CreatedAt = now
		snaps = append(snaps, snap)
	}

	if err := s.snapshotRepo.InsertSnapshots(ctx, snaps); err != nil {
		return 0, err
	}
	return len(snaps), nil
}

func parseSnapshotRecord(record []string) (model.Snapshot, error) {
	if len(record) != len(snapshotCSVHeaders) {
		return model.Snapshot{}, fmt.Errorf("expected %d columns, got %d", len(snapshotCSVHeaders), len(record))
	}

	if _, err := time.Parse("2006-01-02", record[0]); err != nil {
		return model.Snapshot{}, fmt.Errorf("invalid date %q: %w", record[0], err)
	}

	value, err := decimal.NewFromString(record[1])
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("invalid value %q: %w", record[1], err)
	}
	if value.IsNegative() {
		return model.Snapshot{}, apperrors.ErrNegativeValue
	}

	cashFlow := decimal.Zero
	if record[2] != "" {
		cashFlow, err = decimal.NewFromString(record[2])
		if err != nil {
			return model.Snapshot{}, fmt.Errorf("invalid cash_flow %q: %w", record[2], err)
		}
	}

	return model.Snapshot{
		Date:     record[0],
		Value:    value.Round(2).InexactFloat64(),
		CashFlow: cashFlow.Round(2).InexactFloat64(),
		Note:     record[3],
	}, nil
}

func equalHeaders(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
