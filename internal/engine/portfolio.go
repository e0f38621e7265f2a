package engine

// AggregateRows folds per-asset heatmap rows (all built over the same
// visible range, so cells align by index) into one synthetic portfolio row.
//
// Only absolute figures sum correctly across assets: values, flows and
// gains are added per month, and every percentage is recomputed from the
// summed basis. Averaging per-asset percentages would weight a small
// holding the same as a large one and is deliberately never done.
//
// An asset contributes to a month only once it exists; months before every
// asset's inception come out as not-exists cells. The first month in which
// any asset exists is the portfolio's inception.
func AggregateRows(rows []HeatmapRow) HeatmapRow {
	portfolio := HeatmapRow{Name: "Portfolio"}

	var width int
	for _, r := range rows {
		if len(r.Cells) > width {
			width = len(r.Cells)
		}
	}
	if width == 0 {
		return portfolio
	}

	portfolio.Cells = make([]HeatmapCell, 0, width)
	var flowInRange, initialBasis float64
	for i := 0; i < width; i++ {
		var cell HeatmapCell
		for _, r := range rows {
			if i >= len(r.Cells) {
				continue
			}
			c := r.Cells[i]
			cell.Month = c.Month
			cell.YearStart = c.YearStart
			if !c.Exists {
				continue
			}
			cell.Exists = true
			cell.Value += c.Value
			cell.PreviousValue += c.PreviousValue
			cell.MonthlyFlow += c.MonthlyFlow
			cell.Change += c.Change
			cell.HasData = cell.HasData || c.HasData

			flowInRange += c.MonthlyFlow
			if i == 0 && !c.IsInception {
				// Carried-in value of assets that already existed at the
				// start of the window. Assets born inside the window are
				// captured through their flows instead.
				initialBasis += c.PreviousValue
			}
		}

		if !cell.Exists {
			cell.State = CellNotExists
			cell.Severity = Neutral
			portfolio.Cells = append(portfolio.Cells, cell)
			continue
		}

		basis := cell.PreviousValue + cell.MonthlyFlow
		cell.ChangePercent = percentOf(cell.Change, basis)
		cell.Severity = Classify(cell.ChangePercent)
		if cell.HasData {
			cell.State = CellNormal
		} else {
			cell.State = CellNoData
		}

		portfolio.Cells = append(portfolio.Cells, cell)
		portfolio.TotalChange += cell.Change
	}

	if first := firstExisting(portfolio.Cells); first >= 0 {
		// The portfolio's inception is the earliest asset inception. When any
		// asset carried value in from before the window, the portfolio
		// predates the window and no visible cell is an inception marker.
		born := true
		for _, r := range rows {
			if first < len(r.Cells) && r.Cells[first].Exists && !r.Cells[first].IsInception {
				born = false
				break
			}
		}
		if born {
			portfolio.Cells[first].IsInception = true
			portfolio.Cells[first].State = CellInception
		}
		portfolio.StartValue = portfolio.Cells[first].PreviousValue
		portfolio.EndValue = portfolio.Cells[lastExisting(portfolio.Cells)].Value
	}

	basis := initialBasis + flowInRange
	if basis > 0 {
		portfolio.TotalChangePercent = portfolio.TotalChange / basis * 100
	}
	return portfolio
}
