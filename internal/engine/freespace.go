package engine

import "sort"

// freeSpace owns the set of unoccupied rectangles of a single board and
// answers fit queries against them. Regions never overlap; their union
// plus the placed pieces always covers the board exactly.
type freeSpace struct {
	regions []rect
}

// newFreeSpace starts with one region spanning the whole board.
func newFreeSpace(length, width float64) *freeSpace {
	return &freeSpace{regions: []rect{{0, 0, length, width}}}
}

// findFit scans regions in the fixed order (area ascending, then y, then
// x) and returns the index of the first region that can hold the piece,
// along with the orientation to use. First-fit: the scan stops at the
// first region that works, it does not search for the tightest one.
//
// At a given region the leftover area is the same in both orientations,
// so when both fit the unrotated orientation wins.
func (fs *freeSpace) findFit(l, w float64, allowRotate bool) (idx int, rotated, ok bool) {
	for i, r := range fs.regions {
		if fitsIn(l, w, r.l, r.w) {
			return i, false, true
		}
		if allowRotate && fitsIn(w, l, r.l, r.w) {
			return i, true, true
		}
	}
	return 0, false, false
}

// place consumes region idx with a piece of size (pl, pw) anchored at the
// region's lower-left corner and splits the L-shaped leftover with one
// guillotine cut. The cut runs along the axis with the larger leftover,
// keeping the bigger remaining rectangle intact: if the length leftover is
// at least the width leftover the cut is vertical (full-height right
// region plus a top strip over the piece); otherwise it is horizontal
// (full-length top region plus a right strip beside the piece).
// Zero-area remainders are discarded. Returns the placement position.
func (fs *freeSpace) place(idx int, pl, pw float64) (x, y float64) {
	r := fs.regions[idx]
	fs.regions = append(fs.regions[:idx], fs.regions[idx+1:]...)

	leftL := r.l - pl
	leftW := r.w - pw

	if leftL >= leftW {
		fs.add(rect{r.x + pl, r.y, leftL, r.w})
		fs.add(rect{r.x, r.y + pw, pl, leftW})
	} else {
		fs.add(rect{r.x, r.y + pw, r.l, leftW})
		fs.add(rect{r.x + pl, r.y, leftL, pw})
	}

	fs.resort()
	return r.x, r.y
}

func (fs *freeSpace) add(r rect) {
	if degenerate(r.l) || degenerate(r.w) {
		return
	}
	fs.regions = append(fs.regions, r)
}

// resort restores the fixed scan order: smallest area first, ties broken
// lower-left first. Keeping the slice sorted makes findFit a plain linear
// scan and the whole run order-deterministic.
func (fs *freeSpace) resort() {
	sort.SliceStable(fs.regions, func(i, j int) bool {
		ri, rj := fs.regions[i], fs.regions[j]
		if ri.area() != rj.area() {
			return ri.area() < rj.area()
		}
		if ri.y != rj.y {
			return ri.y < rj.y
		}
		return ri.x < rj.x
	})
}
