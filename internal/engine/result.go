package engine

import "woodcut/internal/model"

// buildResult derives the per-board and overall statistics from the final
// placement state. Utilization percentages are rounded to two decimals;
// an empty run reports zero utilization rather than dividing by zero.
func (o *Optimizer) buildResult(boards []*boardState, rejected []model.RejectedPiece) model.CuttingResult {
	result := model.CuttingResult{
		TotalBoards:    len(boards),
		RejectedPieces: rejected,
	}

	var usedTotal, areaTotal float64
	for i, b := range boards {
		layout := model.BoardLayout{
			Index:       i + 1,
			Spec:        o.board,
			Pieces:      b.placed,
			FreeRegions: freeRegions(b.free),
		}

		used := layout.UsedArea()
		area := layout.TotalArea()
		layout.Utilization = model.Round2(used / area * 100)
		layout.WasteArea = area - used

		usedTotal += used
		areaTotal += area
		result.Boards = append(result.Boards, layout)
	}

	if areaTotal > 0 {
		result.OverallUtilization = model.Round2(usedTotal / areaTotal * 100)
	}

	return result
}

// freeRegions exports a tracker's regions in their scan order.
func freeRegions(fs *freeSpace) []model.FreeRegion {
	if len(fs.regions) == 0 {
		return nil
	}
	out := make([]model.FreeRegion, 0, len(fs.regions))
	for _, r := range fs.regions {
		out = append(out, model.FreeRegion{X: r.x, Y: r.y, Length: r.l, Width: r.w})
	}
	return out
}
