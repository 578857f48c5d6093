package export

import (
	"fmt"
	"path/filepath"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"

	"woodcut/internal/model"
)

// ExportDXF writes one board layout as a DXF drawing. The board outline
// goes on the BOARD layer and every placed piece on the PIECES layer, so
// shop software can toggle them independently. Units are cm, matching the
// rest of the system.
func ExportDXF(path string, board model.BoardLayout) error {
	d := dxf.NewDrawing()

	if _, err := d.AddLayer("BOARD", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add BOARD layer: %w", err)
	}
	drawRect(d, 0, 0, board.Spec.Length, board.Spec.Width)

	if _, err := d.AddLayer("PIECES", color.Red, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add PIECES layer: %w", err)
	}
	for _, p := range board.Pieces {
		drawRect(d, p.X, p.Y, p.Length, p.Width)
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save DXF: %w", err)
	}
	return nil
}

// ExportAllDXF writes one DXF file per board into dir, named board_N.dxf.
func ExportAllDXF(dir string, result model.CuttingResult) error {
	if len(result.Boards) == 0 {
		return fmt.Errorf("no boards to export")
	}
	for _, board := range result.Boards {
		path := filepath.Join(dir, fmt.Sprintf("board_%d.dxf", board.Index))
		if err := ExportDXF(path, board); err != nil {
			return err
		}
	}
	return nil
}

// drawRect draws an axis-aligned rectangle as four lines on the current
// layer.
func drawRect(d *drawing.Drawing, x, y, l, w float64) {
	d.Line(x, y, 0, x+l, y, 0)
	d.Line(x+l, y, 0, x+l, y+w, 0)
	d.Line(x+l, y+w, 0, x, y+w, 0)
	d.Line(x, y+w, 0, x, y, 0)
}
