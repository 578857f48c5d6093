package model

import (
	"sort"

	"github.com/google/uuid"
)

// Offcut is a free region large enough to be worth keeping for a later
// job. Position and dimensions are board-local cm.
type Offcut struct {
	ID         string  `json:"id"`
	BoardIndex int     `json:"board_number"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Length     float64 `json:"length"`
	Width      float64 `json:"width"`
}

// Area returns the offcut area in square cm.
func (o Offcut) Area() float64 {
	return o.Length * o.Width
}

// DetectOffcuts filters a board's free regions down to those usable as
// offcuts: both edges at least minEdge and area at least minArea. Results
// are sorted largest first; ties keep lower-left regions first so repeated
// runs order identically.
func DetectOffcuts(board BoardLayout, minEdge, minArea float64) []Offcut {
	var offcuts []Offcut
	for _, fr := range board.FreeRegions {
		if fr.Length < minEdge || fr.Width < minEdge || fr.Area() < minArea {
			continue
		}
		offcuts = append(offcuts, Offcut{
			ID:         uuid.New().String()[:8],
			BoardIndex: board.Index,
			X:          fr.X,
			Y:          fr.Y,
			Length:     fr.Length,
			Width:      fr.Width,
		})
	}

	sort.SliceStable(offcuts, func(i, j int) bool {
		if offcuts[i].Area() != offcuts[j].Area() {
			return offcuts[i].Area() > offcuts[j].Area()
		}
		if offcuts[i].Y != offcuts[j].Y {
			return offcuts[i].Y < offcuts[j].Y
		}
		return offcuts[i].X < offcuts[j].X
	})

	return offcuts
}

// DetectAllOffcuts finds offcuts across every board in a result.
func DetectAllOffcuts(result CuttingResult, minEdge, minArea float64) []Offcut {
	var all []Offcut
	for _, board := range result.Boards {
		all = append(all, DetectOffcuts(board, minEdge, minArea)...)
	}
	return all
}

// TotalOffcutArea returns the combined area of the given offcuts.
func TotalOffcutArea(offcuts []Offcut) float64 {
	var total float64
	for _, o := range offcuts {
		total += o.Area()
	}
	return total
}
