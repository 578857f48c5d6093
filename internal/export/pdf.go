// Package export renders cutting results to shareable files: PDF layout
// reports, QR-coded piece labels, DXF drawings, and utilization charts.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"woodcut/internal/model"
)

// pieceColor represents an RGB color for a placed piece.
type pieceColor struct {
	R, G, B int
}

var pieceColors = []pieceColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF generates a PDF document for a cutting result. Each board is
// rendered on its own page with a scaled layout diagram (waste regions
// hatched), followed by a summary page with overall statistics, rejected
// pieces, and the purchase estimate.
func ExportPDF(path string, result model.CuttingResult, cfg model.AppConfig) error {
	if len(result.Boards) == 0 {
		return fmt.Errorf("no boards to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for _, board := range result.Boards {
		pdf.AddPage()
		renderBoardPage(pdf, board, cfg.MaterialName)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, result, cfg)

	return pdf.OutputFileAndClose(path)
}

// renderBoardPage draws a single board layout on the current PDF page.
func renderBoardPage(pdf *fpdf.Fpdf, board model.BoardLayout, materialName string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Board %d: %s (%.0f x %.0f cm)", board.Index, materialName, board.Spec.Length, board.Spec.Width)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Pieces: %d | Used area: %.1f cm2 | Waste: %.1f cm2 | Utilization: %.2f%%",
		len(board.Pieces), board.UsedArea(), board.WasteArea, board.Utilization)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight

	scaleX := drawWidth / board.Spec.Length
	scaleY := drawHeight / board.Spec.Width
	scale := math.Min(scaleX, scaleY)

	canvasW := board.Spec.Length * scale
	canvasH := board.Spec.Width * scale

	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Board background (wood color)
	pdf.SetFillColor(210, 180, 140)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Waste regions, hatched. The board's y axis points up while PDF y
	// points down, so y coordinates are flipped.
	for _, fr := range board.FreeRegions {
		zx := offsetX + fr.X*scale
		zy := offsetY + (board.Spec.Width-fr.Y-fr.Width)*scale
		zw := fr.Length * scale
		zh := fr.Width * scale

		pdf.SetFillColor(235, 225, 210)
		pdf.SetDrawColor(170, 150, 130)
		pdf.SetLineWidth(0.15)
		pdf.Rect(zx, zy, zw, zh, "FD")
		drawHatchPattern(pdf, zx, zy, zw, zh)
	}

	// Placed pieces
	for i, p := range board.Pieces {
		col := pieceColors[i%len(pieceColors)]
		pw := p.Length * scale
		ph := p.Width * scale
		px := offsetX + p.X*scale
		py := offsetY + (board.Spec.Width-p.Y-p.Width)*scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, pw, ph, "FD")

		if pw > 15 && ph > 8 {
			pdf.SetFont("Helvetica", "", labelFontSize(pw, ph))
			pdf.SetTextColor(0, 0, 0)

			label := p.Name
			dims := fmt.Sprintf("%.1fx%.1f", p.Length, p.Width)

			labelW := pdf.GetStringWidth(label)
			dimsW := pdf.GetStringWidth(dims)

			if labelW < pw-2 {
				pdf.SetXY(px+(pw-labelW)/2, py+ph/2-4)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
			if ph > 14 && dimsW < pw-2 {
				pdf.SetXY(px+(pw-dimsW)/2, py+ph/2)
				pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
			}
		}
	}

	drawDimensionAnnotations(pdf, board.Spec, offsetX, offsetY, canvasW, canvasH)
	drawPieceLegend(pdf, board, offsetY+canvasH+5)
}

// drawHatchPattern draws diagonal lines inside a rectangle to mark waste.
func drawHatchPattern(pdf *fpdf.Fpdf, x, y, w, h float64) {
	pdf.SetDrawColor(170, 150, 130)
	pdf.SetLineWidth(0.15)

	spacing := 4.0
	maxDist := w + h

	for d := spacing; d < maxDist; d += spacing {
		x1 := x + math.Max(0, d-h)
		y1 := y + math.Min(h, d)
		x2 := x + math.Min(w, d)
		y2 := y + math.Max(0, d-w)

		pdf.Line(x1, y1, x2, y2)
	}
}

// drawDimensionAnnotations adds length and width labels outside the board.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, spec model.BoardSpec, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	lengthLabel := fmt.Sprintf("%.0f cm", spec.Length)
	lLabelW := pdf.GetStringWidth(lengthLabel)
	pdf.SetXY(offsetX+(canvasW-lLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(lLabelW, 4, lengthLabel, "", 0, "C", false, 0, "")

	widthLabel := fmt.Sprintf("%.0f cm", spec.Width)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX-3-wLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawPieceLegend renders a compact legend of placed pieces below the board.
func drawPieceLegend(pdf *fpdf.Fpdf, board model.BoardLayout, startY float64) {
	if len(board.Pieces) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Pieces placed:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight

	for i, p := range board.Pieces {
		col := pieceColors[i%len(pieceColors)]
		label := fmt.Sprintf("%s (%.1fx%.1f)", p.Name, p.Length, p.Width)
		if p.Rotated {
			label += " R"
		}
		labelW := pdf.GetStringWidth(label) + 6

		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")

		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

// renderSummaryPage draws the final summary page with overall statistics.
func renderSummaryPage(pdf *fpdf.Fpdf, result model.CuttingResult, cfg model.AppConfig) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Cutting Optimization Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Overall Statistics", "", 0, "L", false, 0, "")
	y += 9

	cutLength := model.CalculateCutLength(result, cfg.WastePercent)
	offcuts := model.DetectAllOffcuts(result, cfg.MinOffcutEdge, cfg.MinOffcutArea)

	summaryItems := []struct {
		label string
		value string
	}{
		{"Material", cfg.MaterialName},
		{"Total Boards Used", fmt.Sprintf("%d", result.TotalBoards)},
		{"Overall Utilization", fmt.Sprintf("%.2f%%", result.OverallUtilization)},
		{"Total Pieces Placed", fmt.Sprintf("%d", result.PlacedCount())},
		{"Rejected Pieces", fmt.Sprintf("%d", len(result.RejectedPieces))},
		{"Reusable Offcuts", fmt.Sprintf("%d (%.0f cm2)", len(offcuts), model.TotalOffcutArea(offcuts))},
		{"Estimated Cut Length", fmt.Sprintf("%.1f m", cutLength.TotalLinearM)},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(60, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5

	// Per-board breakdown table
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Board Breakdown", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{20, 50, 35, 40, 60}
	headers := []string{"Board", "Dimensions", "Pieces", "Utilization", "Used / Total Area"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, board := range result.Boards {
		xPos = marginLeft
		rowData := []string{
			fmt.Sprintf("%d", board.Index),
			fmt.Sprintf("%.0f x %.0f cm", board.Spec.Length, board.Spec.Width),
			fmt.Sprintf("%d", len(board.Pieces)),
			fmt.Sprintf("%.2f%%", board.Utilization),
			fmt.Sprintf("%.0f / %.0f cm2", board.UsedArea(), board.TotalArea()),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	if len(result.RejectedPieces) > 0 {
		y += 8
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "WARNING: Rejected Pieces", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)

		for _, rp := range result.RejectedPieces {
			pdf.SetXY(marginLeft+5, y)
			text := fmt.Sprintf("- %s: %.1f x %.1f cm (%s)", rp.Name, rp.Length, rp.Width, rp.Reason)
			pdf.CellFormat(200, 5, text, "", 0, "L", false, 0, "")
			y += 5
		}
	}

	if cfg.PricePerBoard > 0 {
		est := model.CalculatePurchaseEstimate(result, cfg.Board(), cfg.WastePercent, cfg.PricePerBoard)

		y += 8
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(100, 7, "Purchase Estimate", "", 0, "L", false, 0, "")
		y += 9

		estItems := []struct {
			label string
			value string
		}{
			{"Boards to Buy", fmt.Sprintf("%d (incl. %.0f%% waste)", est.BoardsWithWaste, est.WastePercent)},
			{"Price per Board", fmt.Sprintf("%.2f", est.PricePerBoard)},
			{"Estimated Cost", fmt.Sprintf("%.2f", est.EstimatedCost)},
		}

		pdf.SetFont("Helvetica", "", 9)
		for _, item := range estItems {
			pdf.SetXY(marginLeft+5, y)
			pdf.CellFormat(50, 5, item.label+":", "", 0, "L", false, 0, "")
			pdf.CellFormat(40, 5, item.value, "", 0, "L", false, 0, "")
			y += 5
		}
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by WoodCut - Wood Cutting Optimizer", "", 0, "C", false, 0, "")
}

// labelFontSize returns a font size matched to the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
