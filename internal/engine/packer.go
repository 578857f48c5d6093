package engine

import (
	"sort"

	"woodcut/internal/model"
)

// Optimizer runs the guillotine packing algorithm against one stock board
// size. It holds no state between runs; each Optimize call is a pure
// function of its input.
type Optimizer struct {
	board model.BoardSpec
}

// New creates an Optimizer for the given stock board.
func New(board model.BoardSpec) *Optimizer {
	return &Optimizer{board: board}
}

// pieceUnit is one piece instance produced by expanding a request's
// quantity. order is the unit's position in the expanded input stream and
// breaks sorting ties so runs are reproducible.
type pieceUnit struct {
	name    string
	length  float64
	width   float64
	locked  bool
	order   int
}

func (u pieceUnit) area() float64 {
	return u.length * u.width
}

// boardState is one open board during placement.
type boardState struct {
	placed []model.PlacedPiece
	free   *freeSpace
}

// Optimize assigns every piece in the requests to a board, a position,
// and an orientation. Pieces too large for the board in any permitted
// orientation are reported in RejectedPieces; structurally invalid input
// fails the run before any board is opened.
func (o *Optimizer) Optimize(requests []model.PieceRequest) (model.CuttingResult, error) {
	if err := o.board.Validate(); err != nil {
		return model.CuttingResult{}, err
	}
	for _, r := range requests {
		if err := r.Validate(); err != nil {
			return model.CuttingResult{}, err
		}
	}

	units, rejected := o.expand(requests)
	orderUnits(units)

	var boards []*boardState
	for _, u := range units {
		placed := false
		for _, b := range boards {
			if o.placeOn(b, u) {
				placed = true
				break
			}
		}
		if placed {
			continue
		}

		b := &boardState{free: newFreeSpace(o.board.Length, o.board.Width)}
		boards = append(boards, b)
		if !o.placeOn(b, u) {
			// Unreachable: the pre-pass rejects anything a fresh board
			// cannot hold. Kept as a reject rather than a panic.
			rejected = append(rejected, model.RejectedPiece{
				Name:   u.name,
				Length: u.length,
				Width:  u.width,
				Reason: model.RejectTooLargeForBoard,
			})
		}
	}

	return o.buildResult(boards, rejected), nil
}

// expand turns requests into individual piece units and rejects up front
// every unit that exceeds the board in all permitted orientations.
// Requests with zero quantity contribute nothing.
func (o *Optimizer) expand(requests []model.PieceRequest) ([]pieceUnit, []model.RejectedPiece) {
	var units []pieceUnit
	var rejected []model.RejectedPiece

	order := 0
	for _, r := range requests {
		fits := fitsIn(r.Length, r.Width, o.board.Length, o.board.Width)
		if !fits && !r.Locked() {
			fits = fitsIn(r.Width, r.Length, o.board.Length, o.board.Width)
		}

		for i := 0; i < r.Quantity; i++ {
			if !fits {
				rejected = append(rejected, model.RejectedPiece{
					Name:   r.Name,
					Length: r.Length,
					Width:  r.Width,
					Reason: model.RejectTooLargeForBoard,
				})
				continue
			}
			units = append(units, pieceUnit{
				name:   r.Name,
				length: r.Length,
				width:  r.Width,
				locked: r.Locked(),
				order:  order,
			})
			order++
		}
	}

	return units, rejected
}

// orderUnits sorts the placement stream: locked units first (their
// orientation freedom is lower, so they go while space is plentiful),
// then by area descending. The sort is stable, so equal units keep their
// input order.
func orderUnits(units []pieceUnit) {
	sort.SliceStable(units, func(i, j int) bool {
		if units[i].locked != units[j].locked {
			return units[i].locked
		}
		return units[i].area() > units[j].area()
	})
}

// placeOn tries to put a unit on a board. On success it commits the
// placement and the guillotine split and records the placed piece.
func (o *Optimizer) placeOn(b *boardState, u pieceUnit) bool {
	idx, rotated, ok := b.free.findFit(u.length, u.width, !u.locked)
	if !ok {
		return false
	}

	pl, pw := u.length, u.width
	if rotated {
		pl, pw = pw, pl
	}

	x, y := b.free.place(idx, pl, pw)
	b.placed = append(b.placed, model.PlacedPiece{
		Name:    u.name,
		Length:  pl,
		Width:   pw,
		X:       x,
		Y:       y,
		Rotated: rotated,
	})
	return true
}
