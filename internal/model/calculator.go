package model

import "math"

// PurchaseEstimate summarizes how many boards to buy for a cut list and
// what they will cost.
type PurchaseEstimate struct {
	TotalPieceArea  float64 `json:"total_piece_area"`  // Area of all placed pieces (sq cm)
	BoardArea       float64 `json:"board_area"`        // Area of one board (sq cm)
	BoardsUsed      int     `json:"boards_used"`       // Boards the layout actually uses
	BoardsWithWaste int     `json:"boards_with_waste"` // Recommended purchase including waste factor
	WastePercent    float64 `json:"waste_percent"`     // Waste factor applied, e.g. 15 for 15%
	PricePerBoard   float64 `json:"price_per_board"`   // Price used for estimation (0 = unknown)
	EstimatedCost   float64 `json:"estimated_cost"`    // BoardsWithWaste * PricePerBoard
}

// CalculatePurchaseEstimate computes a purchase recommendation from a
// finished layout. The waste factor pads the board count for cutting
// mistakes and defects; it never reduces it below the layout's own count.
func CalculatePurchaseEstimate(result CuttingResult, board BoardSpec, wastePercent, pricePerBoard float64) PurchaseEstimate {
	est := PurchaseEstimate{
		TotalPieceArea: result.UsedArea(),
		BoardArea:      board.Area(),
		BoardsUsed:     result.TotalBoards,
		WastePercent:   wastePercent,
		PricePerBoard:  pricePerBoard,
	}

	wasteFactor := 1.0 + wastePercent/100.0
	est.BoardsWithWaste = int(math.Ceil(float64(result.TotalBoards) * wasteFactor))
	if est.BoardsWithWaste < est.BoardsUsed {
		est.BoardsWithWaste = est.BoardsUsed
	}

	if pricePerBoard > 0 {
		est.EstimatedCost = float64(est.BoardsWithWaste) * pricePerBoard
	}

	return est
}

// CutLengthSummary holds the total saw travel needed to cut a layout.
type CutLengthSummary struct {
	TotalLinearCM    float64 `json:"total_linear_cm"`     // Sum of placed piece perimeters
	TotalLinearM     float64 `json:"total_linear_m"`      // Same in meters
	WastePercent     float64 `json:"waste_percent"`       // Extra allowance applied
	TotalWithWasteCM float64 `json:"total_with_waste_cm"` // Total with allowance in cm
	TotalWithWasteM  float64 `json:"total_with_waste_m"`  // Total with allowance in meters
	PieceCount       int     `json:"piece_count"`         // Pieces contributing to the total
}

// CalculateCutLength sums the perimeters of every placed piece. This
// over-counts cuts shared between adjacent pieces, so it is an upper
// bound, which is the safe direction for quoting saw time.
func CalculateCutLength(result CuttingResult, wastePercent float64) CutLengthSummary {
	var totalCM float64
	pieceCount := 0
	for _, board := range result.Boards {
		for _, p := range board.Pieces {
			totalCM += 2 * (p.Length + p.Width)
			pieceCount++
		}
	}

	wasteFactor := 1.0 + wastePercent/100.0
	withWaste := totalCM * wasteFactor

	return CutLengthSummary{
		TotalLinearCM:    totalCM,
		TotalLinearM:     totalCM / 100.0,
		WastePercent:     wastePercent,
		TotalWithWasteCM: withWaste,
		TotalWithWasteM:  withWaste / 100.0,
		PieceCount:       pieceCount,
	}
}
