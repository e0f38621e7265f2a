package engine

// CellState classifies how a heatmap cell should be rendered.
type CellState string

const (
	// CellNotExists marks months before the asset's inception; rendered empty.
	CellNotExists CellState = "not-exists"
	// CellInception marks the asset's first data month; rendered as a
	// distinct marker rather than a gain/loss color.
	CellInception CellState = "inception"
	// CellNoData marks a forward-filled carry month: the asset existed but
	// recorded no snapshot. Still colored by its computed change, but
	// flagged as non-authoritative.
	CellNoData CellState = "no-data"
	// CellNormal is an ordinary month with real data.
	CellNormal CellState = "normal"
)

// Severity buckets a cell's monthly return for coloring.
type Severity string

const (
	GainHigh   Severity = "gain-high"
	GainMedium Severity = "gain-medium"
	GainLow    Severity = "gain-low"
	Neutral    Severity = "neutral"
	LossLow    Severity = "loss-low"
	LossMedium Severity = "loss-medium"
	LossHigh   Severity = "loss-high"
)

// Classify maps a monthly change percentage onto its severity bucket.
// Thresholds are fixed at +-0.5, +-2 and +-5 percent.
func Classify(changePercent float64) Severity {
	switch {
	case changePercent >= 5:
		return GainHigh
	case changePercent >= 2:
		return GainMedium
	case changePercent >= 0.5:
		return GainLow
	case changePercent >= -0.5:
		return Neutral
	case changePercent >= -2:
		return LossLow
	case changePercent >= -5:
		return LossMedium
	default:
		return LossHigh
	}
}

// HeatmapCell is one (asset or portfolio, month) cell of the heatmap grid.
type HeatmapCell struct {
	Month         string    `json:"month"`
	Value         float64   `json:"value"`         // End-of-month value
	PreviousValue float64   `json:"previousValue"` // End of prior month; 0 pre-inception
	MonthlyFlow   float64   `json:"monthlyFlow"`   // Cash flow recorded during the month
	Change        float64   `json:"change"`        // Value minus (previousValue + monthlyFlow)
	ChangePercent float64   `json:"changePercent"` // Change over the same basis; 0 on zero basis
	HasData       bool      `json:"hasData"`       // A real snapshot exists this month
	Exists        bool      `json:"exists"`        // Asset has reached inception by this month
	IsInception   bool      `json:"isInception"`   // This is the asset's first data month
	YearStart     bool      `json:"yearStart"`     // First month of a calendar year (display only)
	State         CellState `json:"state"`
	Severity      Severity  `json:"severity"`
}

// HeatmapRow is one asset's (or the portfolio's) ordered cell sequence over
// a visible month range, plus a summary of that range.
type HeatmapRow struct {
	AssetID string        `json:"assetId,omitempty"`
	Name    string        `json:"name"`
	Cells   []HeatmapCell `json:"cells"`

	StartValue         float64 `json:"startValue"` // Value carried into the range
	EndValue           float64 `json:"endValue"`   // Value at the end of the range
	TotalChange        float64 `json:"totalChange"`
	TotalChangePercent float64 `json:"totalChangePercent"`
}

// BuildRow projects a single asset's timeline onto the visible month range
// [rangeStart, rangeEnd], computing per-month cash-flow-adjusted attribution
// for each cell and a cash-flow-adjusted summary for the whole range.
//
// The per-month rule matches EnrichSnapshots: basis is the prior month's
// value plus the month's flow. The inception month has no prior state, so
// its previous value is definitionally 0 and the opening contribution forms
// the entire basis.
func BuildRow(tl Timeline, rangeStart, rangeEnd, assetID, name string) HeatmapRow {
	row := HeatmapRow{AssetID: assetID, Name: name}
	months := MonthRange(rangeStart, rangeEnd)
	if len(months) == 0 {
		return row
	}

	inception := tl.FirstMonth()
	row.Cells = make([]HeatmapCell, 0, len(months))

	var flowInRange float64
	for _, m := range months {
		cell := HeatmapCell{
			Month:     m,
			YearStart: IsYearStart(m),
		}
		point, exists := tl.At(m)
		if !exists {
			cell.State = CellNotExists
			cell.Severity = Neutral
			row.Cells = append(row.Cells, cell)
			continue
		}

		var prev float64
		if m != inception {
			prevPoint, _ := tl.At(PrevMonth(m))
			prev = prevPoint.Value
		}

		basis := prev + point.Flow
		change := point.Value - basis

		cell.Value = point.Value
		cell.PreviousValue = prev
		cell.MonthlyFlow = point.Flow
		cell.Change = change
		cell.ChangePercent = percentOf(change, basis)
		cell.HasData = point.RealData
		cell.Exists = true
		cell.IsInception = m == inception
		cell.Severity = Classify(cell.ChangePercent)

		switch {
		case cell.IsInception:
			cell.State = CellInception
		case !cell.HasData:
			cell.State = CellNoData
		default:
			cell.State = CellNormal
		}

		row.Cells = append(row.Cells, cell)
		row.TotalChange += change
		flowInRange += point.Flow
	}

	first, last := firstExisting(row.Cells), lastExisting(row.Cells)
	if first < 0 {
		return row
	}

	// An asset whose inception falls inside the window has no carried-in
	// value; its opening contribution is already counted through its flows.
	var initialBasis float64
	if !row.Cells[first].IsInception {
		initialBasis = row.Cells[first].PreviousValue
	}
	row.StartValue = row.Cells[first].PreviousValue
	row.EndValue = row.Cells[last].Value

	basis := initialBasis + flowInRange
	if basis > 0 {
		row.TotalChangePercent = row.TotalChange / basis * 100
	}
	return row
}

func firstExisting(cells []HeatmapCell) int {
	for i, c := range cells {
		if c.Exists {
			return i
		}
	}
	return -1
}

func lastExisting(cells []HeatmapCell) int {
	for i := len(cells) - 1; i >= 0; i-- {
		if cells[i].Exists {
			return i
		}
	}
	return -1
}
