package core

import (
	"fmt"
	"sort"
)

// FlowState is the state of the water propagation.
type FlowState uint8

const (
	FlowRunning FlowState = iota // Flow can advance when the timer elapses
	FlowBlocked                  // Last step found no pipe end matching the entry
	FlowSpilled                  // Flow left the board; no further steps
)

// String returns the string representation of a flow state.
func (f FlowState) String() string {
	switch f {
	case FlowRunning:
		return "running"
	case FlowBlocked:
		return "blocked"
	case FlowSpilled:
		return "spilled"
	default:
		return "unknown"
	}
}

// BoardOptions tunes board rules.
type BoardOptions struct {
	// StrictEdges rejects Left/Right steps that would cross a row boundary.
	// Off by default: the bounds check alone lets a step Left from column 0
	// land on the previous row's last column.
	StrictEdges bool
}

// Board is the puzzle grid. Tiles are stored in row-major order:
// index = row*cols + col.
type Board struct {
	rows  int
	cols  int
	size  int
	tiles []Tile
	gaps  map[int]struct{}

	active      int
	strictEdges bool

	// Water progress
	waterIndex     int
	nextWaterIndex int
	nextEntry      Direction
	flow           FlowState
}

// NewBoard creates a board from a layout.
func NewBoard(rows, cols int, layout Layout, opts BoardOptions) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	size := rows * cols
	b := &Board{
		rows:        rows,
		cols:        cols,
		size:        size,
		tiles:       make([]Tile, size),
		gaps:        make(map[int]struct{}, len(layout.Gaps)),
		active:      layout.Active,
		strictEdges: opts.StrictEdges,
	}

	for _, g := range layout.Gaps {
		if g < 0 || g >= size {
			return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrGapOutOfRange, g, size)
		}
		if g == 0 {
			return nil, ErrOriginIsGap
		}
		b.gaps[g] = struct{}{}
	}
	if len(b.gaps) == 0 {
		return nil, ErrNoGaps
	}
	if b.active < 0 || b.active >= size {
		return nil, fmt.Errorf("%w: %d", ErrActiveOutOfRange, b.active)
	}
	if b.IsGap(b.active) {
		return nil, fmt.Errorf("%w: %d", ErrActiveOnGap, b.active)
	}

	for i := range b.tiles {
		t := &b.tiles[i]
		t.index = i
		t.movable = true
		if b.IsGap(i) {
			continue
		}
		shape, ok := layout.Shapes[i]
		if !ok {
			return nil, fmt.Errorf("%w: index %d", ErrMissingShape, i)
		}
		t.pipe = NewPipe(shape)
	}

	if err := b.initWater(); err != nil {
		return nil, err
	}
	return b, nil
}

// step returns the index one step from `from` in direction d.
// The second result is false when the target is off the board.
func (b *Board) step(from int, d Direction, strict bool) (int, bool) {
	to := from + d.Offset(b.cols)
	if to < 0 || to >= b.size {
		return 0, false
	}
	if strict && (d == DirLeft || d == DirRight) && to/b.cols != from/b.cols {
		return 0, false
	}
	return to, true
}

// Select moves the selection one step in direction d.
// The target must be on the board and must not be a gap; otherwise the
// call is a no-op and returns false.
func (b *Board) Select(d Direction) bool {
	candidate, ok := b.step(b.active, d, b.strictEdges)
	if !ok || b.IsGap(candidate) {
		return false
	}
	b.active = candidate
	return true
}

// SlideToward slides the active tile's pipe into the adjacent gap in
// direction d. The active tile must be movable and the target must be a
// gap; otherwise the call is a no-op and returns false.
// On success the old position becomes a gap and the selection follows
// the pipe.
func (b *Board) SlideToward(d Direction) bool {
	src := &b.tiles[b.active]
	if !src.movable {
		return false
	}
	candidate, ok := b.step(b.active, d, b.strictEdges)
	if !ok || !b.IsGap(candidate) {
		return false
	}

	dst := &b.tiles[candidate]
	dst.pipe, src.pipe = src.pipe, nil

	delete(b.gaps, candidate)
	b.gaps[b.active] = struct{}{}
	b.active = candidate
	return true
}

// RotateActive rotates the pipe on the active tile one step clockwise.
// Locked tiles are not rotated.
func (b *Board) RotateActive() bool {
	t := &b.tiles[b.active]
	if !t.movable || t.pipe == nil {
		return false
	}
	t.pipe.rotate()
	return true
}

// Validate checks the board's internal consistency.
func (b *Board) Validate() error {
	if len(b.gaps) == 0 {
		return ErrNoGaps
	}
	if b.active < 0 || b.active >= b.size {
		return fmt.Errorf("%w: %d", ErrActiveOutOfRange, b.active)
	}
	if b.IsGap(b.active) {
		return fmt.Errorf("%w: %d", ErrActiveOnGap, b.active)
	}
	if b.waterIndex < 0 || b.waterIndex >= b.size {
		return fmt.Errorf("%w: water %d", ErrWaterOutOfRange, b.waterIndex)
	}
	if b.nextWaterIndex < 0 || b.nextWaterIndex >= b.size {
		return fmt.Errorf("%w: next %d", ErrWaterOutOfRange, b.nextWaterIndex)
	}
	return nil
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// Size returns rows*cols.
func (b *Board) Size() int { return b.size }

// ActiveIndex returns the selected tile index.
func (b *Board) ActiveIndex() int { return b.active }

// WaterIndex returns the tile the flow currently occupies.
func (b *Board) WaterIndex() int { return b.waterIndex }

// NextWaterIndex returns the tile the flow will enter next.
func (b *Board) NextWaterIndex() int { return b.nextWaterIndex }

// NextEntry returns the edge the flow must enter the water tile through.
func (b *Board) NextEntry() Direction { return b.nextEntry }

// Flow returns the flow state.
func (b *Board) Flow() FlowState { return b.flow }

// IsGap reports whether index i is a gap.
func (b *Board) IsGap(i int) bool {
	_, ok := b.gaps[i]
	return ok
}

// Gaps returns the gap indices in ascending order.
func (b *Board) Gaps() []int {
	gaps := make([]int, 0, len(b.gaps))
	for g := range b.gaps {
		gaps = append(gaps, g)
	}
	sort.Ints(gaps)
	return gaps
}

// Tile returns the tile at index i, or nil if out of range.
func (b *Board) Tile(i int) *Tile {
	if i < 0 || i >= b.size {
		return nil
	}
	return &b.tiles[i]
}
