package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func offcutBoard() BoardLayout {
	return BoardLayout{
		Index: 1,
		Spec:  BoardSpec{Length: 240, Width: 120},
		FreeRegions: []FreeRegion{
			{X: 200, Y: 0, Length: 40, Width: 120},  // big, usable
			{X: 0, Y: 110, Length: 200, Width: 10},  // 10 cm edge, borderline
			{X: 100, Y: 50, Length: 5, Width: 100},  // sliver, below min edge
			{X: 150, Y: 80, Length: 15, Width: 15},  // edges fine, area too small
		},
	}
}

func TestDetectOffcuts(t *testing.T) {
	offcuts := DetectOffcuts(offcutBoard(), 10, 400)

	require.Len(t, offcuts, 2)
	// Sorted largest first.
	assert.Equal(t, 40.0, offcuts[0].Length)
	assert.Equal(t, 120.0, offcuts[0].Width)
	assert.Equal(t, 200.0, offcuts[1].Length)
	assert.Equal(t, 10.0, offcuts[1].Width)
	for _, o := range offcuts {
		assert.Equal(t, 1, o.BoardIndex)
		assert.Len(t, o.ID, 8)
	}
}

func TestDetectOffcuts_MinEdgeFiltersSlivers(t *testing.T) {
	offcuts := DetectOffcuts(offcutBoard(), 20, 0)

	require.Len(t, offcuts, 1)
	assert.Equal(t, 40.0, offcuts[0].Length)
}

func TestDetectOffcuts_NoRegions(t *testing.T) {
	board := BoardLayout{Index: 1, Spec: BoardSpec{Length: 240, Width: 120}}

	assert.Empty(t, DetectOffcuts(board, 10, 400))
}

func TestDetectAllOffcuts(t *testing.T) {
	result := CuttingResult{Boards: []BoardLayout{
		offcutBoard(),
		{Index: 2, Spec: BoardSpec{Length: 240, Width: 120}, FreeRegions: []FreeRegion{
			{X: 0, Y: 0, Length: 100, Width: 50},
		}},
	}}

	offcuts := DetectAllOffcuts(result, 10, 400)

	require.Len(t, offcuts, 3)
	assert.Equal(t, 1, offcuts[0].BoardIndex)
	assert.Equal(t, 2, offcuts[2].BoardIndex)
}

func TestTotalOffcutArea(t *testing.T) {
	offcuts := []Offcut{
		{Length: 40, Width: 120},
		{Length: 200, Width: 10},
	}

	assert.Equal(t, 4800.0+2000.0, TotalOffcutArea(offcuts))
	assert.Equal(t, 0.0, TotalOffcutArea(nil))
}
