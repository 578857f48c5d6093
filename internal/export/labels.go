package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"woodcut/internal/model"
)

// LabelInfo holds the data encoded into each piece label's QR code.
type LabelInfo struct {
	PieceName  string  `json:"name"`
	Length     float64 `json:"length_cm"`
	Width      float64 `json:"width_cm"`
	BoardIndex int     `json:"board"`
	Rotated    bool    `json:"rotated"`
	X          float64 `json:"x_cm"`
	Y          float64 `json:"y_cm"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10
// rows per page on US Letter).
const (
	labelPageWidth  = 215.9
	labelPageHeight = 279.4
	labelMarginTop  = 12.7
	labelMarginLeft = 4.8
	labelWidth      = 66.7
	labelHeight     = 25.4
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0
	labelPadding    = 2.0
)

// ExportLabels generates a PDF of QR-coded labels for every placed piece.
// Each label carries the piece name, dimensions, and a QR code encoding
// the piece metadata as JSON.
func ExportLabels(path string, result model.CuttingResult) error {
	labels := CollectLabelInfos(result)
	if len(labels) == 0 {
		return fmt.Errorf("no pieces placed to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", label.PieceName, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	// Light border as cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%s_%d_%d", info.PieceName, info.BoardIndex, int(info.X*1000+info.Y))
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)

	name := info.PieceName
	if pdf.GetStringWidth(name) > textW {
		for len(name) > 0 && pdf.GetStringWidth(name+"...") > textW {
			name = name[:len(name)-1]
		}
		name += "..."
	}
	pdf.CellFormat(textW, 4.5, name, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	dims := fmt.Sprintf("%.1f x %.1f cm", info.Length, info.Width)
	pdf.CellFormat(textW, 3.5, dims, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	boardInfo := fmt.Sprintf("Board %d @ (%.1f, %.1f)", info.BoardIndex, info.X, info.Y)
	pdf.CellFormat(textW, 3, boardInfo, "", 1, "L", false, 0, "")

	if info.Rotated {
		pdf.SetXY(textX, y+labelPadding+12.5)
		pdf.SetFont("Helvetica", "I", 6)
		pdf.SetTextColor(150, 100, 0)
		pdf.CellFormat(textW, 3, "Rotated 90\xb0", "", 0, "L", false, 0, "")
	}

	pdf.SetTextColor(0, 0, 0)

	return nil
}

// CollectLabelInfos extracts label information from a cutting result.
func CollectLabelInfos(result model.CuttingResult) []LabelInfo {
	var labels []LabelInfo
	for _, board := range result.Boards {
		for _, p := range board.Pieces {
			labels = append(labels, LabelInfo{
				PieceName:  p.Name,
				Length:     p.Length,
				Width:      p.Width,
				BoardIndex: board.Index,
				Rotated:    p.Rotated,
				X:          p.X,
				Y:          p.Y,
			})
		}
	}
	return labels
}
