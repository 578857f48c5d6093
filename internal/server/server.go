// Package server exposes the cutting optimizer over HTTP. Each request
// runs an independent optimizer instance, so no state is shared between
// concurrent calculations.
package server

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"woodcut/internal/engine"
	"woodcut/internal/export"
	"woodcut/internal/importer"
	"woodcut/internal/model"
)

// Version is the API version reported by the root endpoint.
const Version = "1.0.0"

// Server wires the HTTP routes to the optimizer.
type Server struct {
	cfg    model.AppConfig
	router *gin.Engine
}

// New builds a Server with its routes registered.
func New(cfg model.AppConfig) *Server {
	s := &Server{cfg: cfg, router: gin.Default()}

	s.router.GET("/", s.handleInfo)
	s.router.GET("/health", s.handleHealth)

	api := s.router.Group("/api")
	api.POST("/calculate", s.handleCalculate)
	api.POST("/calculate/report", s.handleCalculateReport)

	return s
}

// Router returns the underlying gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP server on the configured listen address.
func (s *Server) Run() error {
	return s.router.Run(s.cfg.ListenAddr)
}

func (s *Server) handleInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Wood Cutting Optimizer API",
		"version": Version,
		"endpoints": gin.H{
			"calculate":        "/api/calculate",
			"calculate_report": "/api/calculate/report",
		},
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// runCalculation handles the shared upload-parse-optimize flow. It writes
// the error response itself and reports success via the bool return.
func (s *Server) runCalculation(c *gin.Context) (model.CuttingResult, int, bool) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing upload field 'file'"})
		return model.CuttingResult{}, 0, false
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".xlsx" && ext != ".xls" && ext != ".csv" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only Excel (.xlsx, .xls) and CSV files are allowed"})
		return model.CuttingResult{}, 0, false
	}

	board, err := s.boardFromForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return model.CuttingResult{}, 0, false
	}

	tmpPath := filepath.Join(os.TempDir(), fmt.Sprintf("woodcut-upload-%d%s", time.Now().UnixNano(), ext))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to store upload: %v", err)})
		return model.CuttingResult{}, 0, false
	}
	defer os.Remove(tmpPath)

	imported := importer.ImportFile(tmpPath)
	if len(imported.Errors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cut list has invalid rows", "details": imported.Errors})
		return model.CuttingResult{}, 0, false
	}
	if len(imported.Requests) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no valid pieces found in file"})
		return model.CuttingResult{}, 0, false
	}

	result, err := engine.New(board).Optimize(imported.Requests)
	if err != nil {
		if errors.Is(err, model.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return model.CuttingResult{}, 0, false
	}

	return result, len(imported.Requests), true
}

// boardFromForm returns the stock board, applying any form overrides to
// the configured defaults.
func (s *Server) boardFromForm(c *gin.Context) (model.BoardSpec, error) {
	board := s.cfg.Board()

	if v := c.PostForm("board_length"); v != "" {
		length, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return model.BoardSpec{}, fmt.Errorf("invalid board_length %q", v)
		}
		board.Length = length
	}
	if v := c.PostForm("board_width"); v != "" {
		width, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return model.BoardSpec{}, fmt.Errorf("invalid board_width %q", v)
		}
		board.Width = width
	}

	if err := board.Validate(); err != nil {
		return model.BoardSpec{}, err
	}
	return board, nil
}

func (s *Server) handleCalculate(c *gin.Context) {
	result, requestCount, ok := s.runCalculation(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"result":  result,
		"message": fmt.Sprintf("Successfully packed %d piece types into %d boards", requestCount, result.TotalBoards),
	})
}

func (s *Server) handleCalculateReport(c *gin.Context) {
	result, _, ok := s.runCalculation(c)
	if !ok {
		return
	}

	if len(result.Boards) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no pieces could be placed, nothing to report"})
		return
	}

	reportPath := filepath.Join(os.TempDir(), fmt.Sprintf("woodcut-report-%d.pdf", time.Now().UnixNano()))
	defer os.Remove(reportPath)

	if err := export.ExportPDF(reportPath, result, s.cfg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to generate report: %v", err)})
		return
	}

	c.FileAttachment(reportPath, "cutting_report.pdf")
}
