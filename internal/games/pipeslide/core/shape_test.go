package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pipeslide/internal/games/pipeslide/core"
)

func TestDirectionOpposite(t *testing.T) {
	pairs := map[core.Direction]core.Direction{
		core.DirTop:    core.DirBottom,
		core.DirRight:  core.DirLeft,
		core.DirBottom: core.DirTop,
		core.DirLeft:   core.DirRight,
	}
	for d, want := range pairs {
		require.Equal(t, want, d.Opposite(), "Opposite(%s)", d)
		require.Equal(t, d, d.Opposite().Opposite(), "Opposite is an involution for %s", d)
	}
}

func TestDirectionClockwiseCycle(t *testing.T) {
	require.Equal(t, core.DirRight, core.DirTop.Clockwise())
	require.Equal(t, core.DirBottom, core.DirRight.Clockwise())
	require.Equal(t, core.DirLeft, core.DirBottom.Clockwise())
	require.Equal(t, core.DirTop, core.DirLeft.Clockwise())
}

func TestDirectionOffset(t *testing.T) {
	const cols = 14
	require.Equal(t, -cols, core.DirTop.Offset(cols))
	require.Equal(t, 1, core.DirRight.Offset(cols))
	require.Equal(t, cols, core.DirBottom.Offset(cols))
	require.Equal(t, -1, core.DirLeft.Offset(cols))
}

func TestDirectionVector(t *testing.T) {
	for _, d := range []core.Direction{core.DirTop, core.DirRight, core.DirBottom, core.DirLeft} {
		dx, dy := d.Vector()
		ox, oy := d.Opposite().Vector()
		require.Equal(t, 1, dx*dx+dy*dy, "unit vector for %s", d)
		require.Equal(t, [2]int{-dx, -dy}, [2]int{ox, oy}, "opposite of %s", d)
		// Screen rows grow downwards, matching the index offset on a 1-wide board.
		require.Equal(t, dy, d.Offset(1)-dx, "%s", d)
	}
	dx, dy := core.DirTop.Vector()
	require.Equal(t, [2]int{0, -1}, [2]int{dx, dy})
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want core.Direction
	}{
		{"top", core.DirTop},
		{"up", core.DirTop},
		{"Right", core.DirRight},
		{"down", core.DirBottom},
		{" left ", core.DirLeft},
	}
	for _, tc := range tests {
		got, err := core.ParseDirection(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}

	_, err := core.ParseDirection("north")
	require.Error(t, err)
}

func TestShapePoints(t *testing.T) {
	tests := []struct {
		shape core.Shape
		want  [2]core.Direction
	}{
		{core.Straight(core.DirTop), [2]core.Direction{core.DirTop, core.DirBottom}},
		{core.Straight(core.DirRight), [2]core.Direction{core.DirRight, core.DirLeft}},
		{core.Straight(core.DirBottom), [2]core.Direction{core.DirBottom, core.DirTop}},
		{core.Straight(core.DirLeft), [2]core.Direction{core.DirLeft, core.DirRight}},
		{core.Elbow(core.DirTop), [2]core.Direction{core.DirTop, core.DirRight}},
		{core.Elbow(core.DirRight), [2]core.Direction{core.DirRight, core.DirBottom}},
		{core.Elbow(core.DirBottom), [2]core.Direction{core.DirBottom, core.DirLeft}},
		{core.Elbow(core.DirLeft), [2]core.Direction{core.DirLeft, core.DirTop}},
	}
	for _, tc := range tests {
		t.Run(tc.shape.String(), func(t *testing.T) {
			require.Equal(t, tc.want, tc.shape.Points())
		})
	}
}

func TestShapeRotateFourTimesIsIdentity(t *testing.T) {
	for _, s := range core.AllShapes() {
		r := s
		for range 4 {
			r = r.Rotated()
		}
		require.Equal(t, s, r, "rotate^4 of %s", s)
		require.Equal(t, s.Kind, s.Rotated().Kind, "rotation keeps the family")
	}
}

func TestStraightRedundancy(t *testing.T) {
	require.True(t, core.Straight(core.DirTop).Equivalent(core.Straight(core.DirBottom)))
	require.True(t, core.Straight(core.DirLeft).Equivalent(core.Straight(core.DirRight)))
	require.False(t, core.Straight(core.DirTop).Equivalent(core.Straight(core.DirRight)))
	require.NotEqual(t, core.Straight(core.DirTop), core.Straight(core.DirBottom))
}

func TestShapeOther(t *testing.T) {
	e := core.Elbow(core.DirTop)

	other, ok := e.Other(core.DirTop)
	require.True(t, ok)
	require.Equal(t, core.DirRight, other)

	other, ok = e.Other(core.DirRight)
	require.True(t, ok)
	require.Equal(t, core.DirTop, other)

	_, ok = e.Other(core.DirBottom)
	require.False(t, ok)
}

func TestShapeTokenRoundTrip(t *testing.T) {
	for _, s := range core.AllShapes() {
		got, err := core.ParseShape(s.String())
		require.NoError(t, err)
		require.Equal(t, s, got)
	}

	for _, bad := range []string{"", "S", "X^", "S?", "S^^"} {
		_, err := core.ParseShape(bad)
		require.Error(t, err, "token %q", bad)
	}
}
