package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbeekman/wealthtrack/internal/engine"
	"github.com/mbeekman/wealthtrack/internal/model"
)

func TestEnrichSnapshots_Empty(t *testing.T) {
	assert.Nil(t, engine.EnrichSnapshots(nil))
}

func TestEnrichSnapshots_FirstSnapshot(t *testing.T) {
	// There is no prior state: the opening contribution is the whole basis.
	enhanced := engine.EnrichSnapshots([]model.Snapshot{snap("2023-01-10", 1000, 1000)})
	require.Len(t, enhanced, 1)

	e := enhanced[0]
	assert.Equal(t, 1000.0, e.CumInvested)
	assert.Zero(t, e.PeriodGL)
	assert.Zero(t, e.PeriodGLPercent)
	assert.Zero(t, e.CumGL)
	assert.Zero(t, e.ROI)
}

func TestEnrichSnapshots_PeriodAttribution(t *testing.T) {
	enhanced := engine.EnrichSnapshots([]model.Snapshot{
		snap("2023-01-10", 1000, 1000),
		snap("2023-02-10", 1100, 0),
	})
	require.Len(t, enhanced, 2)

	e := enhanced[1]
	assert.InDelta(t, 100, e.PeriodGL, 1e-9)
	assert.InDelta(t, 10, e.PeriodGLPercent, 1e-9)
	assert.InDelta(t, 100, e.CumGL, 1e-9)
	assert.InDelta(t, 10, e.ROI, 1e-9)
}

func TestEnrichSnapshots_FlowAdjustedPeriod(t *testing.T) {
	// A deposit is not a gain: value rises 1000 -> 1600 but 500 of it was
	// contributed, so only 100 was earned.
	enhanced := engine.EnrichSnapshots([]model.Snapshot{
		snap("2023-01-10", 1000, 1000),
		snap("2023-02-10", 1600, 500),
	})

	e := enhanced[1]
	assert.InDelta(t, 100, e.PeriodGL, 1e-9)
	assert.InDelta(t, 100.0/1500*100, e.PeriodGLPercent, 1e-9)
	assert.Equal(t, 1500.0, e.CumInvested)
	assert.InDelta(t, 100, e.CumGL, 1e-9)
}

func TestEnrichSnapshots_WithdrawalReducesInvested(t *testing.T) {
	enhanced := engine.EnrichSnapshots([]model.Snapshot{
		snap("2023-01-10", 1000, 1000),
		snap("2023-02-10", 600, -500),
	})

	e := enhanced[1]
	// Basis after withdrawing 500 from a 1000 position is 500.
	assert.InDelta(t, 100, e.PeriodGL, 1e-9)
	assert.InDelta(t, 20, e.PeriodGLPercent, 1e-9)
	assert.Equal(t, 500.0, e.CumInvested)
	assert.InDelta(t, 100, e.CumGL, 1e-9)
}

func TestEnrichSnapshots_ZeroBasisGuards(t *testing.T) {
	// An asset observed with value but with no recorded contributions has
	// no meaningful percentage return: every percent field must be exactly
	// 0, never NaN or Inf.
	enhanced := engine.EnrichSnapshots([]model.Snapshot{
		snap("2023-01-10", 500, 0),
		snap("2023-02-10", 700, 0),
	})

	for _, e := range enhanced {
		assert.Zero(t, e.ROI, "roi at %s", e.Date)
		assert.Zero(t, e.YTDROI, "ytdROI at %s", e.Date)
	}
	assert.Zero(t, enhanced[0].PeriodGLPercent)
	assert.NotZero(t, enhanced[1].PeriodGLPercent, "second period has a real basis")
}

func TestEnrichSnapshots_YearToDate(t *testing.T) {
	enhanced := engine.EnrichSnapshots([]model.Snapshot{
		snap("2022-06-01", 1000, 1000),
		snap("2022-12-01", 1200, 0),
		snap("2023-03-01", 1300, 100),
		snap("2023-06-01", 1500, 0),
	})
	require.Len(t, enhanced, 4)

	// 2023 baseline: value carried into the year is 1200, invested 1000.
	march := enhanced[2]
	assert.InDelta(t, 200, march.CumGL, 1e-9)
	assert.InDelta(t, 0, march.YTDGL, 1e-9, "1200 -> 1300 with a 100 deposit is no YTD gain")
	assert.InDelta(t, 0, march.YTDROI, 1e-9)

	june := enhanced[3]
	assert.InDelta(t, 400, june.CumGL, 1e-9)
	assert.InDelta(t, 200, june.YTDGL, 1e-9)
	assert.InDelta(t, 200.0/1300*100, june.YTDROI, 1e-9)
}

func TestEnrichSnapshots_FirstYearBaselineIsZero(t *testing.T) {
	// In the asset's first calendar year YTD figures coincide with the
	// cumulative ones.
	enhanced := engine.EnrichSnapshots([]model.Snapshot{
		snap("2023-01-10", 1000, 1000),
		snap("2023-04-10", 1150, 50),
	})

	for _, e := range enhanced {
		assert.InDelta(t, e.CumGL, e.YTDGL, 1e-9)
	}
}

func TestEnrichSnapshots_AscendingOrderRegardlessOfInput(t *testing.T) {
	enhanced := engine.EnrichSnapshots([]model.Snapshot{
		snap("2023-03-01", 1300, 0),
		snap("2023-01-01", 1000, 1000),
		snap("2023-02-01", 1100, 100),
	})
	require.Len(t, enhanced, 3)

	assert.Equal(t, "2023-01-01", enhanced[0].Date)
	assert.Equal(t, "2023-03-01", enhanced[2].Date)
	assert.InDelta(t, 1100.0, enhanced[2].CumInvested, 1e-9)
}
