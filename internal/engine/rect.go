// Package engine implements the deterministic guillotine cutting-stock
// optimizer. It places piece requests onto stock boards, minimizing the
// number of boards while keeping every decision rule fixed so identical
// inputs always produce identical layouts.
package engine

// eps is the tolerance for dimension comparisons. Fits are decided with
// this slack so platform float differences cannot flip a placement.
const eps = 1e-9

// rect is an axis-aligned rectangle in board-local cm. l runs along the
// board's length axis (X), w along the width axis (Y).
type rect struct {
	x, y, l, w float64
}

func (r rect) area() float64 {
	return r.l * r.w
}

// fitsIn reports whether a piece of size (pl, pw) fits into a region of
// size (rl, rw) without rotation.
func fitsIn(pl, pw, rl, rw float64) bool {
	return pl <= rl+eps && pw <= rw+eps
}

// degenerate reports whether a dimension is too small to hold anything.
func degenerate(v float64) bool {
	return v <= eps
}
