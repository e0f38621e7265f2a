// Package engine implements the valuation and attribution core: it turns a
// sparse, irregularly-dated list of value snapshots into a dense monthly
// timeline, computes period, cumulative and year-to-date gain/loss figures,
// aggregates per-asset results into a portfolio series, and projects either
// onto a year-by-month heatmap grid.
//
// Every function in this package is a pure transformation of its inputs: no
// I/O, no clock access (callers inject reference time), no shared state.
// Empty inputs produce empty outputs rather than errors, and a zero
// financial basis always yields a 0% return rather than NaN or Inf.
package engine

import (
	"sort"
	"time"

	"github.com/mbeekman/wealthtrack/internal/model"
)

// TimelinePoint is one month of an asset's dense timeline.
type TimelinePoint struct {
	Month string  `json:"month"` // YYYY-MM
	Value float64 `json:"value"` // Forward-filled end-of-month value
	Flow  float64 `json:"flow"`  // Sum of cash flows recorded in this month
	// RealData is true only for months that had at least one actual
	// snapshot; forward-filled months carry false.
	RealData bool `json:"realDataExists"`
}

// Timeline is an asset's dense month-by-month series, sorted ascending by
// month. Iteration order equals chronological order.
type Timeline []TimelinePoint

// FirstMonth returns the inception month, or "" for an empty timeline.
func (tl Timeline) FirstMonth() string {
	if len(tl) == 0 {
		return ""
	}
	return tl[0].Month
}

// LastMonth returns the final covered month, or "" for an empty timeline.
func (tl Timeline) LastMonth() string {
	if len(tl) == 0 {
		return ""
	}
	return tl[len(tl)-1].Month
}

// At returns the point for the given month. For months after the covered
// range it forward-fills the last known value; for months before inception
// (or an empty timeline) it returns a zero point and false.
func (tl Timeline) At(month string) (TimelinePoint, bool) {
	if len(tl) == 0 || month < tl[0].Month {
		return TimelinePoint{Month: month}, false
	}
	if month > tl[len(tl)-1].Month {
		return TimelinePoint{Month: month, Value: tl[len(tl)-1].Value}, true
	}
	// The timeline is contiguous, so the point sits at a fixed offset.
	i := sort.Search(len(tl), func(i int) bool { return tl[i].Month >= month })
	return tl[i], true
}

// SortSnapshots orders snapshots ascending by date, preserving insertion
// order for snapshots that share a date. All engine entry points expect
// (and internally enforce) this ordering.
func SortSnapshots(snapshots []model.Snapshot) []model.Snapshot {
	sorted := make([]model.Snapshot, len(snapshots))
	copy(sorted, snapshots)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})
	return sorted
}

// DefaultEndMonth returns the month a timeline should extend through when
// the caller has no explicit range: the later of the newest snapshot's
// month and the month of the reference time.
func DefaultEndMonth(snapshots []model.Snapshot, now time.Time) string {
	end := MonthOf(now)
	for _, s := range snapshots {
		if m := MonthOfDate(s.Date); m > end {
			end = m
		}
	}
	return end
}

// BuildTimeline converts one asset's snapshot list into a dense monthly
// timeline covering every month from the first snapshot through endMonth
// (or through the last snapshot month, whichever is later).
//
// Months with more than one snapshot take the value of the last snapshot in
// that month but the sum of all its cash flows. That asymmetry is
// intentional: a later valuation supersedes an earlier one, while every
// contribution in the month really happened. Months without any snapshot
// carry the previous month's value forward with zero flow.
//
// An empty snapshot list yields an empty timeline; callers must treat that
// as "asset has no data", not as an error.
func BuildTimeline(snapshots []model.Snapshot, endMonth string) Timeline {
	if len(snapshots) == 0 {
		return nil
	}

	sorted := SortSnapshots(snapshots)

	type bucket struct {
		value float64
		flow  float64
	}
	buckets := make(map[string]*bucket)
	for _, s := range sorted {
		m := MonthOfDate(s.Date)
		b, ok := buckets[m]
		if !ok {
			b = &bucket{}
			buckets[m] = b
		}
		b.value = s.Value // later snapshot wins
		b.flow += s.CashFlow
	}

	firstMonth := MonthOfDate(sorted[0].Date)
	if endMonth < firstMonth {
		endMonth = firstMonth
	}

	var (
		timeline  Timeline
		lastValue float64
	)
	for m := firstMonth; m <= endMonth; m = NextMonth(m) {
		if b, ok := buckets[m]; ok {
			timeline = append(timeline, TimelinePoint{
				Month:    m,
				Value:    b.value,
				Flow:     b.flow,
				RealData: true,
			})
			lastValue = b.value
			continue
		}
		timeline = append(timeline, TimelinePoint{
			Month: m,
			Value: lastValue,
		})
	}
	return timeline
}
