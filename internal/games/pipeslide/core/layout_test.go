package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pipeslide/internal/games/pipeslide/core"
)

func TestRandomLayoutDeterministic(t *testing.T) {
	a, err := core.RandomLayout{Seed: 7}.Layout(10, 14)
	require.NoError(t, err)
	b, err := core.RandomLayout{Seed: 7}.Layout(10, 14)
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := core.RandomLayout{Seed: 8}.Layout(10, 14)
	require.NoError(t, err)
	require.NotEqual(t, a, c)
}

func TestRandomLayoutGaps(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		l, err := core.RandomLayout{Seed: seed}.Layout(10, 14)
		require.NoError(t, err)

		require.Len(t, l.Gaps, 20, "2*rows draws")
		for _, g := range l.Gaps {
			require.GreaterOrEqual(t, g, 1)
			require.Less(t, g, 140)
		}
		require.Equal(t, 0, l.Active)
	}

	l, err := core.RandomLayout{Seed: 1, GapCount: 3}.Layout(4, 4)
	require.NoError(t, err)
	require.Len(t, l.Gaps, 3)
}

func TestRandomLayoutOrigin(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		l, err := core.RandomLayout{Seed: seed}.Layout(5, 6)
		require.NoError(t, err)

		origin := l.Shapes[0]
		require.Equal(t, core.KindStraight, origin.Kind)
		require.Contains(t, []core.Direction{core.DirRight, core.DirTop}, origin.Dir)

		_, err = core.NewBoard(5, 6, l, core.BoardOptions{})
		require.NoError(t, err, "seed %d", seed)
	}

	row, err := core.RandomLayout{Seed: 3}.Layout(1, 5)
	require.NoError(t, err)
	require.Equal(t, core.Straight(core.DirRight), row.Shapes[0])

	col, err := core.RandomLayout{Seed: 3}.Layout(5, 1)
	require.NoError(t, err)
	require.Equal(t, core.Straight(core.DirTop), col.Shapes[0])
}

func TestRandomLayoutTooSmall(t *testing.T) {
	_, err := core.RandomLayout{}.Layout(1, 1)
	require.ErrorIs(t, err, core.ErrInvalidDimensions)

	_, err = core.RandomLayout{}.Layout(0, 3)
	require.ErrorIs(t, err, core.ErrInvalidDimensions)
}

func TestFixedLayoutCopies(t *testing.T) {
	f := core.FixedLayout{Rows: 1, Cols: 2, Value: core.Layout{
		Gaps:   []int{1},
		Shapes: map[int]core.Shape{0: core.Straight(core.DirRight)},
	}}

	l, err := f.Layout(1, 2)
	require.NoError(t, err)
	l.Gaps[0] = 0
	l.Shapes[0] = core.Elbow(core.DirTop)

	again, err := f.Layout(1, 2)
	require.NoError(t, err)
	require.Equal(t, []int{1}, again.Gaps)
	require.Equal(t, core.Straight(core.DirRight), again.Shapes[0])
}
