package core

import (
	"fmt"
	"math/rand"
)

// Layout is the initial placement of gaps and pipe shapes on a board.
type Layout struct {
	Gaps   []int         // Gap indices; duplicates coalesce
	Shapes map[int]Shape // Shape per occupied index
	Active int           // Initially selected tile
}

// LayoutSource produces the initial layout for a board of the given size.
type LayoutSource interface {
	Layout(rows, cols int) (Layout, error)
}

// RandomLayout generates a seeded random layout.
//
// The origin (index 0) gets a horizontal or vertical straight pipe. Every
// other index gets one of the 8 shapes uniformly. Gaps are drawn with
// replacement from [1, size), so duplicate draws coalesce into fewer gaps.
type RandomLayout struct {
	Seed     int64
	GapCount int // 0 means 2*rows
}

// Layout implements LayoutSource.
func (r RandomLayout) Layout(rows, cols int) (Layout, error) {
	if rows <= 0 || cols <= 0 {
		return Layout{}, ErrInvalidDimensions
	}
	size := rows * cols
	if size < 2 {
		return Layout{}, fmt.Errorf("%w: need at least 2 tiles, got %d", ErrInvalidDimensions, size)
	}

	rng := rand.New(rand.NewSource(r.Seed))

	count := r.GapCount
	if count <= 0 {
		count = 2 * rows
	}

	gaps := make([]int, 0, count)
	for range count {
		idx := 1 + rng.Intn(size-1)
		gaps = append(gaps, idx)
	}

	shapes := make(map[int]Shape, size)
	all := AllShapes()
	for i := 1; i < size; i++ {
		shapes[i] = all[rng.Intn(len(all))]
	}
	shapes[0] = randomOrigin(rng, rows, cols)

	return Layout{
		Gaps:   gaps,
		Shapes: shapes,
		Active: 0,
	}, nil
}

// randomOrigin picks a straight pipe whose exit leads onto the board.
func randomOrigin(rng *rand.Rand, rows, cols int) Shape {
	switch {
	case cols == 1:
		return Straight(DirTop)
	case rows == 1:
		return Straight(DirRight)
	}
	if rng.Intn(2) == 0 {
		return Straight(DirRight)
	}
	return Straight(DirTop)
}

// FixedLayout always returns the same layout, e.g. one loaded from a file.
type FixedLayout struct {
	Rows, Cols int
	Value      Layout
}

// Layout implements LayoutSource. The requested size must match.
func (f FixedLayout) Layout(rows, cols int) (Layout, error) {
	if rows != f.Rows || cols != f.Cols {
		return Layout{}, fmt.Errorf("%w: layout is %dx%d, board is %dx%d",
			ErrInvalidDimensions, f.Rows, f.Cols, rows, cols)
	}

	shapes := make(map[int]Shape, len(f.Value.Shapes))
	for k, v := range f.Value.Shapes {
		shapes[k] = v
	}
	gaps := make([]int, len(f.Value.Gaps))
	copy(gaps, f.Value.Gaps)
	return Layout{Gaps: gaps, Shapes: shapes, Active: f.Value.Active}, nil
}
