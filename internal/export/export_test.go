package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"woodcut/internal/model"
)

func sampleResult() model.CuttingResult {
	return model.CuttingResult{
		TotalBoards:        1,
		OverallUtilization: 84.73,
		Boards: []model.BoardLayout{
			{
				Index: 1,
				Spec:  model.BoardSpec{Length: 240, Width: 120},
				Pieces: []model.PlacedPiece{
					{Name: "Side Panel", Length: 59.3, Width: 114, X: 155, Y: 0},
					{Name: "Back Panel", Length: 77.5, Width: 114, X: 0, Y: 0},
					{Name: "Shelf", Length: 50, Width: 114, X: 77.5, Y: 0, Rotated: true},
				},
				FreeRegions: []model.FreeRegion{
					{X: 0, Y: 114, Length: 77.5, Width: 6},
					{X: 214.3, Y: 0, Length: 25.7, Width: 120},
				},
				Utilization: 84.73,
				WasteArea:   4398.58,
			},
		},
	}
}

func readNonEmpty(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	return data
}

func TestExportPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")
	cfg := model.DefaultAppConfig()
	cfg.PricePerBoard = 25.50

	require.NoError(t, ExportPDF(path, sampleResult(), cfg))

	data := readNonEmpty(t, path)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestExportPDF_WithRejectedPieces(t *testing.T) {
	result := sampleResult()
	result.RejectedPieces = []model.RejectedPiece{
		{Name: "Beam", Length: 250, Width: 50, Reason: model.RejectTooLargeForBoard},
	}
	path := filepath.Join(t.TempDir(), "report.pdf")

	require.NoError(t, ExportPDF(path, result, model.DefaultAppConfig()))
	readNonEmpty(t, path)
}

func TestExportPDF_EmptyResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")

	err := ExportPDF(path, model.CuttingResult{}, model.DefaultAppConfig())
	assert.Error(t, err)
}

func TestCollectLabelInfos(t *testing.T) {
	labels := CollectLabelInfos(sampleResult())

	require.Len(t, labels, 3)
	assert.Equal(t, "Side Panel", labels[0].PieceName)
	assert.Equal(t, 1, labels[0].BoardIndex)
	assert.Equal(t, 155.0, labels[0].X)
	assert.True(t, labels[2].Rotated)
}

func TestExportLabels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")

	require.NoError(t, ExportLabels(path, sampleResult()))

	data := readNonEmpty(t, path)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestExportLabels_EmptyResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")

	err := ExportLabels(path, model.CuttingResult{})
	assert.Error(t, err)
}

func TestExportDXF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board_1.dxf")

	require.NoError(t, ExportDXF(path, sampleResult().Boards[0]))

	data := readNonEmpty(t, path)
	assert.Contains(t, string(data), "ENTITIES")
	assert.Contains(t, string(data), "PIECES")
}

func TestExportAllDXF(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, ExportAllDXF(dir, sampleResult()))

	readNonEmpty(t, filepath.Join(dir, "board_1.dxf"))
}

func TestExportAllDXF_EmptyResult(t *testing.T) {
	err := ExportAllDXF(t.TempDir(), model.CuttingResult{})
	assert.Error(t, err)
}

func TestExportUtilizationChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "utilization.html")

	require.NoError(t, ExportUtilizationChart(path, sampleResult()))

	data := readNonEmpty(t, path)
	assert.Contains(t, string(data), "echarts")
	assert.Contains(t, string(data), "Board Utilization")
}

func TestExportUtilizationChart_EmptyResult(t *testing.T) {
	err := ExportUtilizationChart(filepath.Join(t.TempDir(), "u.html"), model.CuttingResult{})
	assert.Error(t, err)
}
