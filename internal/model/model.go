// Package model defines the data types shared by the cutting optimizer,
// the importers, the exporters, and the HTTP service. All dimensions are
// in centimeters.
package model

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
)

// ErrInvalidRequest marks structurally invalid input: non-positive
// dimensions or a negative quantity. Pieces that are merely too large for
// the board are not errors; they end up in CuttingResult.RejectedPieces.
var ErrInvalidRequest = errors.New("invalid request")

// BoardSpec is the stock board size in cm. The board keeps its declared
// orientation: length runs along the X axis, width along the Y axis.
type BoardSpec struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
}

// Area returns the board area in square cm.
func (b BoardSpec) Area() float64 {
	return b.Length * b.Width
}

// Validate checks that both board dimensions are positive.
func (b BoardSpec) Validate() error {
	if b.Length <= 0 || b.Width <= 0 {
		return fmt.Errorf("%w: board dimensions must be positive, got %.2f x %.2f", ErrInvalidRequest, b.Length, b.Width)
	}
	return nil
}

// PieceRequest is one row of a cut list: a piece type with a quantity.
// LengthLocked means the piece's length edge must stay aligned to the
// board's length axis; WidthLocked is the analogous constraint for the
// width axis. Either lock fixes the orientation entirely.
type PieceRequest struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Length       float64 `json:"length"`
	Width        float64 `json:"width"`
	Quantity     int     `json:"quantity"`
	LengthLocked bool    `json:"length_locked"`
	WidthLocked  bool    `json:"width_locked"`
}

// NewPieceRequest creates a PieceRequest with a generated ID and no locks.
func NewPieceRequest(name string, length, width float64, qty int) PieceRequest {
	return PieceRequest{
		ID:       uuid.New().String()[:8],
		Name:     name,
		Length:   length,
		Width:    width,
		Quantity: qty,
	}
}

// Locked reports whether the piece's orientation is fixed.
func (r PieceRequest) Locked() bool {
	return r.LengthLocked || r.WidthLocked
}

// Area returns the area of a single piece in square cm.
func (r PieceRequest) Area() float64 {
	return r.Length * r.Width
}

// Validate checks the request for structural errors. A quantity of zero is
// allowed (the request simply yields no pieces); a negative quantity is not.
func (r PieceRequest) Validate() error {
	if r.Length <= 0 || r.Width <= 0 {
		return fmt.Errorf("%w: piece %q: dimensions must be positive, got %.2f x %.2f", ErrInvalidRequest, r.Name, r.Length, r.Width)
	}
	if r.Quantity < 0 {
		return fmt.Errorf("%w: piece %q: quantity must not be negative, got %d", ErrInvalidRequest, r.Name, r.Quantity)
	}
	return nil
}

// PlacedPiece is one piece placed on a board. Length and Width are the
// placed dimensions: when Rotated is true they are the request's
// dimensions swapped. Coordinates are board-local cm from the lower-left
// corner.
type PlacedPiece struct {
	Name    string  `json:"name"`
	Length  float64 `json:"length"`
	Width   float64 `json:"width"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Rotated bool    `json:"rotated"`
}

// Area returns the piece area in square cm.
func (p PlacedPiece) Area() float64 {
	return p.Length * p.Width
}

// FreeRegion is an unoccupied rectangle within a board, in board-local
// coordinates. Regions on the same board never overlap each other or any
// placed piece.
type FreeRegion struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
}

// Area returns the region area in square cm.
func (f FreeRegion) Area() float64 {
	return f.Length * f.Width
}

// BoardLayout is the final state of one board: its placed pieces, the
// surviving free regions, and the derived statistics.
type BoardLayout struct {
	Index       int           `json:"board_number"`
	Spec        BoardSpec     `json:"spec"`
	Pieces      []PlacedPiece `json:"pieces"`
	FreeRegions []FreeRegion  `json:"free_regions"`
	Utilization float64       `json:"utilization"`
	WasteArea   float64       `json:"waste_area"`
}

// UsedArea returns the total area covered by placed pieces.
func (b BoardLayout) UsedArea() float64 {
	var total float64
	for _, p := range b.Pieces {
		total += p.Area()
	}
	return total
}

// TotalArea returns the board area.
func (b BoardLayout) TotalArea() float64 {
	return b.Spec.Area()
}

// RejectReason explains why a piece could not be placed.
type RejectReason string

// RejectTooLargeForBoard means the piece exceeds the board in every
// permitted orientation.
const RejectTooLargeForBoard RejectReason = "TooLargeForBoard"

// RejectedPiece is one piece unit that could not be placed on any board.
type RejectedPiece struct {
	Name   string       `json:"name"`
	Length float64      `json:"length"`
	Width  float64      `json:"width"`
	Reason RejectReason `json:"reason"`
}

// CuttingResult is the complete outcome of one optimization run.
type CuttingResult struct {
	Boards             []BoardLayout   `json:"boards"`
	TotalBoards        int             `json:"total_boards"`
	OverallUtilization float64         `json:"overall_utilization"`
	RejectedPieces     []RejectedPiece `json:"rejected_pieces"`
}

// PlacedCount returns the total number of pieces placed across all boards.
func (r CuttingResult) PlacedCount() int {
	total := 0
	for _, b := range r.Boards {
		total += len(b.Pieces)
	}
	return total
}

// UsedArea returns the total placed-piece area across all boards.
func (r CuttingResult) UsedArea() float64 {
	var total float64
	for _, b := range r.Boards {
		total += b.UsedArea()
	}
	return total
}

// TotalArea returns the total board area consumed by the run.
func (r CuttingResult) TotalArea() float64 {
	var total float64
	for _, b := range r.Boards {
		total += b.TotalArea()
	}
	return total
}

// Round2 rounds a value to two decimal places. Utilization percentages are
// reported with this precision.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
