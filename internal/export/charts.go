package export

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"woodcut/internal/model"
)

// ExportUtilizationChart renders a bar chart of per-board utilization to a
// standalone HTML file.
func ExportUtilizationChart(path string, result model.CuttingResult) error {
	if len(result.Boards) == 0 {
		return fmt.Errorf("no boards to chart")
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Board Utilization",
			Subtitle: fmt.Sprintf("Overall: %.2f%% across %d boards", result.OverallUtilization, result.TotalBoards),
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "%", Max: 100}),
	)

	names := make([]string, 0, len(result.Boards))
	values := make([]opts.BarData, 0, len(result.Boards))
	for _, board := range result.Boards {
		names = append(names, fmt.Sprintf("Board %d", board.Index))
		values = append(values, opts.BarData{Value: board.Utilization})
	}

	bar.SetXAxis(names).AddSeries("Utilization", values)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	return bar.Render(f)
}
