// woodcut — wood cutting optimizer CLI.
//
// Reads a cut list (.xlsx or .csv), packs the pieces onto stock boards
// with a deterministic guillotine heuristic, and prints a per-board
// summary. Optional flags export the layout as a PDF report, QR piece
// labels, DXF drawings, or a utilization chart.
//
// Build:
//
//	go build -o woodcut ./cmd/woodcut
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"woodcut/internal/engine"
	"woodcut/internal/export"
	"woodcut/internal/importer"
	"woodcut/internal/model"
	"woodcut/internal/project"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("woodcut: ")

	var (
		inPath      = flag.String("in", "", "cut list file (.xlsx or .csv)")
		boardLength = flag.Float64("board-length", 0, "stock board length in cm (overrides config)")
		boardWidth  = flag.Float64("board-width", 0, "stock board width in cm (overrides config)")
		presetName  = flag.String("preset", "", "board preset name from the catalog")
		configPath  = flag.String("config", project.DefaultConfigPath(), "config file path")
		jsonOut     = flag.Bool("json", false, "print the raw result as JSON")
		pdfPath     = flag.String("pdf", "", "write a PDF report to this path")
		labelsPath  = flag.String("labels", "", "write QR piece labels PDF to this path")
		dxfDir      = flag.String("dxf", "", "write per-board DXF files into this directory")
		chartPath   = flag.String("chart", "", "write a utilization chart HTML to this path")
	)
	flag.Parse()

	if *inPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := project.LoadAppConfig(*configPath)
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	board := cfg.Board()
	if *presetName != "" {
		presets, err := project.LoadBoardPresets(project.DefaultPresetsPath())
		if err != nil {
			log.Fatalf("cannot load board presets: %v", err)
		}
		preset, ok := project.FindPreset(presets, *presetName)
		if !ok {
			log.Fatalf("unknown board preset %q", *presetName)
		}
		board = preset.Spec()
		if preset.PricePerBoard > 0 {
			cfg.PricePerBoard = preset.PricePerBoard
		}
	}
	if *boardLength > 0 {
		board.Length = *boardLength
	}
	if *boardWidth > 0 {
		board.Width = *boardWidth
	}

	imported := importer.ImportFile(*inPath)
	for _, w := range imported.Warnings {
		log.Printf("warning: %s", w)
	}
	if len(imported.Errors) > 0 {
		for _, e := range imported.Errors {
			log.Printf("error: %s", e)
		}
		os.Exit(1)
	}
	if len(imported.Requests) == 0 {
		log.Fatal("no valid pieces found in cut list")
	}

	result, err := engine.New(board).Optimize(imported.Requests)
	if err != nil {
		log.Fatalf("optimization failed: %v", err)
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			log.Fatalf("cannot encode result: %v", err)
		}
	} else {
		printSummary(result, cfg)
	}

	if *pdfPath != "" {
		if err := export.ExportPDF(*pdfPath, result, cfg); err != nil {
			log.Fatalf("PDF export failed: %v", err)
		}
		log.Printf("report written to %s", *pdfPath)
	}
	if *labelsPath != "" {
		if err := export.ExportLabels(*labelsPath, result); err != nil {
			log.Fatalf("label export failed: %v", err)
		}
		log.Printf("labels written to %s", *labelsPath)
	}
	if *dxfDir != "" {
		if err := os.MkdirAll(*dxfDir, 0755); err != nil {
			log.Fatalf("cannot create DXF directory: %v", err)
		}
		if err := export.ExportAllDXF(*dxfDir, result); err != nil {
			log.Fatalf("DXF export failed: %v", err)
		}
		log.Printf("DXF drawings written to %s", *dxfDir)
	}
	if *chartPath != "" {
		if err := export.ExportUtilizationChart(*chartPath, result); err != nil {
			log.Fatalf("chart export failed: %v", err)
		}
		log.Printf("chart written to %s", *chartPath)
	}
}

func printSummary(result model.CuttingResult, cfg model.AppConfig) {
	fmt.Printf("Boards used: %d (overall utilization %.2f%%)\n", result.TotalBoards, result.OverallUtilization)

	for _, board := range result.Boards {
		fmt.Printf("\nBoard %d (%.0f x %.0f cm) — %.2f%% used, %.1f cm2 waste\n",
			board.Index, board.Spec.Length, board.Spec.Width, board.Utilization, board.WasteArea)
		for _, p := range board.Pieces {
			rotated := ""
			if p.Rotated {
				rotated = " (rotated)"
			}
			fmt.Printf("  %-20s %7.1f x %6.1f cm at (%.1f, %.1f)%s\n", p.Name, p.Length, p.Width, p.X, p.Y, rotated)
		}

		offcuts := model.DetectOffcuts(board, cfg.MinOffcutEdge, cfg.MinOffcutArea)
		for _, o := range offcuts {
			fmt.Printf("  offcut: %.1f x %.1f cm at (%.1f, %.1f)\n", o.Length, o.Width, o.X, o.Y)
		}
	}

	if len(result.RejectedPieces) > 0 {
		fmt.Printf("\nRejected pieces:\n")
		for _, rp := range result.RejectedPieces {
			fmt.Printf("  %-20s %7.1f x %6.1f cm — %s\n", rp.Name, rp.Length, rp.Width, rp.Reason)
		}
	}

	cutLength := model.CalculateCutLength(result, cfg.WastePercent)
	fmt.Printf("\nEstimated cut length: %.1f m (%.1f m with %.0f%% allowance)\n",
		cutLength.TotalLinearM, cutLength.TotalWithWasteM, cutLength.WastePercent)

	if cfg.PricePerBoard > 0 {
		est := model.CalculatePurchaseEstimate(result, cfg.Board(), cfg.WastePercent, cfg.PricePerBoard)
		fmt.Printf("Purchase estimate: %d boards, cost %.2f\n", est.BoardsWithWaste, est.EstimatedCost)
	}
}
