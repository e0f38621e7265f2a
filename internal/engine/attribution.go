package engine

import "github.com/mbeekman/wealthtrack/internal/model"

// EnhancedSnapshot is a raw snapshot augmented with running attribution
// figures. Used for table views, independent of monthly bucketing.
type EnhancedSnapshot struct {
	model.Snapshot

	CumInvested     float64 `json:"cumInvested"`     // Net cash invested through this snapshot
	PeriodGL        float64 `json:"periodGL"`        // Gain/loss vs the previous snapshot
	PeriodGLPercent float64 `json:"periodGLPercent"` // PeriodGL over the period basis
	CumGL           float64 `json:"cumGL"`           // Value minus all cash invested to date
	ROI             float64 `json:"roi"`             // CumGL over cash invested, percent
	YTDGL           float64 `json:"ytdGL"`           // Gain/loss since the start-of-year baseline
	YTDROI          float64 `json:"ytdROI"`          // YTDGL over the year basis, percent
}

// percentOf returns part/basis as a percentage, or exactly 0 when the basis
// is zero. A zero basis means nothing was at stake, so no percentage return
// is meaningful; returning 0 here is a business rule, not a numeric fallback.
func percentOf(part, basis float64) float64 {
	if basis == 0 {
		return 0
	}
	return part / basis * 100
}

// EnrichSnapshots walks an asset's snapshots in ascending date order and
// annotates each with period, cumulative, and year-to-date attribution.
//
// The governing rule everywhere: the basis of a period is the value carried
// over from the prior period plus cash injected during the period; gain or
// loss is value minus that basis. For the very first snapshot the carried
// value is 0, so the whole starting contribution flows through the basis.
//
// Results are returned oldest-first (computation order); presentation
// layers usually reverse them.
func EnrichSnapshots(snapshots []model.Snapshot) []EnhancedSnapshot {
	if len(snapshots) == 0 {
		return nil
	}

	sorted := SortSnapshots(snapshots)

	type yearBaseline struct {
		value    float64 // value carried into the year
		invested float64 // net cash invested before the year's first snapshot
	}
	baselines := make(map[string]yearBaseline)

	enhanced := make([]EnhancedSnapshot, 0, len(sorted))
	var prevValue, invested float64
	for _, s := range sorted {
		year := YearOf(s.Date)
		if _, ok := baselines[year]; !ok {
			baselines[year] = yearBaseline{value: prevValue, invested: invested}
		}
		invested += s.CashFlow

		periodGL := (s.Value - prevValue) - s.CashFlow
		periodBasis := prevValue + s.CashFlow

		cumGL := s.Value - invested
		roi := 0.0
		if invested > 0 {
			roi = cumGL / invested * 100
		}

		base := baselines[year]
		ytdGL := cumGL - (base.value - base.invested)
		ytdBasis := base.value + (invested - base.invested)
		ytdROI := 0.0
		if ytdBasis > 0 {
			ytdROI = ytdGL / ytdBasis * 100
		}

		enhanced = append(enhanced, EnhancedSnapshot{
			Snapshot:        s,
			CumInvested:     invested,
			PeriodGL:        periodGL,
			PeriodGLPercent: percentOf(periodGL, periodBasis),
			CumGL:           cumGL,
			ROI:             roi,
			YTDGL:           ytdGL,
			YTDROI:          ytdROI,
		})
		prevValue = s.Value
	}
	return enhanced
}
