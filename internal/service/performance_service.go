package service

import (
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mbeekman/wealthtrack/internal/engine"
	apperrors "github.com/mbeekman/wealthtrack/internal/errors"
	"github.com/mbeekman/wealthtrack/internal/repository"
)

// Heatmap is the computed heatmap for a visible month range: one row per
// asset plus the aggregated portfolio row.
type Heatmap struct {
	StartMonth string              `json:"startMonth"`
	EndMonth   string              `json:"endMonth"`
	Rows       []engine.HeatmapRow `json:"rows"`
	Portfolio  engine.HeatmapRow   `json:"portfolio"`
}

// PerformanceService orchestrates the valuation engine: it loads snapshot
// history, builds per-asset timelines and heatmap rows, and aggregates them
// into the portfolio series. All computation is delegated to the engine
// package; this service only wires data and injects the clock.
type PerformanceService struct {
	snapshotRepo *repository.SnapshotRepository
	assetService *AssetService
	now          func() time.Time
}

// NewPerformanceService creates a new PerformanceService with the provided
// dependencies. A nil clock defaults to time.Now; tests pass a fixed clock
// so default-range computation stays deterministic.
func NewPerformanceService(
	snapshotRepo *repository.SnapshotRepository,
	assetService *AssetService,
	clock func() time.Time,
) *PerformanceService {
	if clock == nil {
		clock = time.Now
	}
	return &PerformanceService{
		snapshotRepo: snapshotRepo,
		assetService: assetService,
		now:          clock,
	}
}

// GetAssetTimeline builds the dense monthly timeline for one asset.
// An empty endMonth defaults to the later of the newest snapshot month and
// the current month. An asset without snapshots yields an empty timeline,
// which callers must render as "no data" rather than treat as an error.
func (s *PerformanceService) GetAssetTimeline(assetID, endMonth string) (engine.Timeline, error) {
	if _, err := s.assetService.GetAsset(assetID); err != nil {
		return nil, err
	}

	snapshots, err := s.snapshotRepo.GetSnapshotsOnAssetID(assetID)
	if err != nil {
		return nil, err
	}

	if endMonth == "" {
		endMonth = engine.DefaultEndMonth(snapshots, s.now())
	}
	return engine.BuildTimeline(snapshots, endMonth), nil
}

// GetHeatmap computes the heatmap over [startMonth, endMonth] for all active
// assets, optionally restricted to one owner. Empty bounds default to the
// trailing twelve months ending in the current month.
//
// Per-asset rows are independent pure computations, so they are built
// concurrently; the portfolio fold runs after all rows are in place.
func (s *PerformanceService) GetHeatmap(startMonth, endMonth, ownerID string) (*Heatmap, error) {
	if endMonth == "" {
		endMonth = engine.MonthOf(s.now())
	}
	if startMonth == "" {
		end, err := time.Parse("2006-01", endMonth)
		if err != nil {
			return nil, apperrors.ErrInvalidDateRange
		}
		startMonth = engine.MonthOf(end.AddDate(0, -11, 0))
	}
	if startMonth > endMonth {
		return nil, apperrors.ErrInvalidDateRange
	}

	assets, err := s.assetService.GetAssetsForRequest(ownerID)
	if err != nil {
		return nil, err
	}

	assetIDs := make([]string, len(assets))
	for i, a := range assets {
		assetIDs[i] = a.ID
	}

	snapshotsByAsset, err := s.snapshotRepo.GetSnapshots(assetIDs)
	if err != nil {
		return nil, err
	}

	rows := make([]engine.HeatmapRow, len(assets))
	var g errgroup.Group
	for i, asset := range assets {
		i, asset := i, asset
		g.Go(func() error {
			timeline := engine.BuildTimeline(snapshotsByAsset[asset.ID], endMonth)
			rows[i] = engine.BuildRow(timeline, startMonth, endMonth, asset.ID, asset.Name)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Heatmap{
		StartMonth: startMonth,
		EndMonth:   endMonth,
		Rows:       rows,
		Portfolio:  engine.AggregateRows(rows),
	}, nil
}
