// Package grid_test verifies Room coordinate packing and Direction algebra,
// with particular attention to negative coordinates and the int16 boundary.
package grid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/portalroute/grid"
)

// TestRoomAt_RoundTrip checks that packing and unpacking coordinates is
// lossless across the signed range, including negatives and extremes.
func TestRoomAt_RoundTrip(t *testing.T) {
	cases := []struct{ x, y int16 }{
		{0, 0},
		{1, -1},
		{-1, 1},
		{-128, 300},
		{math.MaxInt16, math.MinInt16},
		{math.MinInt16, math.MaxInt16},
	}
	for _, c := range cases {
		r := grid.RoomAt(c.x, c.y)
		assert.Equal(t, c.x, r.X(), "X of %v", r)
		assert.Equal(t, c.y, r.Y(), "Y of %v", r)
	}
}

// TestRoom_EqualityAndMapKey ensures two Rooms built from the same
// coordinates are identical values and collide as map keys.
func TestRoom_EqualityAndMapKey(t *testing.T) {
	a := grid.RoomAt(-7, 42)
	b := grid.RoomAt(-7, 42)
	require.Equal(t, a, b)

	seen := map[grid.Room]int{a: 1}
	seen[b]++
	assert.Len(t, seen, 1)
	assert.Equal(t, 2, seen[a])
}

// TestDirection_Inverse verifies every compass direction inverts to its
// opposite and that inverting twice is the identity.
func TestDirection_Inverse(t *testing.T) {
	want := map[grid.Direction]grid.Direction{
		grid.North:     grid.South,
		grid.NorthEast: grid.SouthWest,
		grid.East:      grid.West,
		grid.SouthEast: grid.NorthWest,
		grid.South:     grid.North,
		grid.SouthWest: grid.NorthEast,
		grid.West:      grid.East,
		grid.NorthWest: grid.SouthEast,
	}
	for d, inv := range want {
		assert.Equal(t, inv, d.Inverse(), "inverse of %s", d)
		assert.Equal(t, d, d.Inverse().Inverse(), "double inverse of %s", d)
	}
	assert.Equal(t, grid.DirNone, grid.DirNone.Inverse())
}

// TestDirection_OffsetsCancel checks that each direction's offset plus its
// inverse's offset is a zero move.
func TestDirection_OffsetsCancel(t *testing.T) {
	for d := grid.North; d <= grid.NorthWest; d++ {
		dx, dy := d.Offset()
		ix, iy := d.Inverse().Offset()
		assert.Zero(t, dx+ix, "%s dx", d)
		assert.Zero(t, dy+iy, "%s dy", d)
		assert.False(t, dx == 0 && dy == 0, "%s must move", d)
	}
}

// TestRoom_Shift covers normal steps, the DirNone rejection, and overflow at
// all four edges of the coordinate space.
func TestRoom_Shift(t *testing.T) {
	r := grid.RoomAt(0, 0)

	n, ok := r.Shift(grid.North)
	require.True(t, ok)
	assert.Equal(t, grid.RoomAt(0, -1), n)

	se, ok := r.Shift(grid.SouthEast)
	require.True(t, ok)
	assert.Equal(t, grid.RoomAt(1, 1), se)

	_, ok = r.Shift(grid.DirNone)
	assert.False(t, ok, "DirNone is not a move")

	// Stepping off any edge of the int16 square reports "no neighbor".
	edges := []struct {
		room grid.Room
		dir  grid.Direction
	}{
		{grid.RoomAt(0, math.MinInt16), grid.North},
		{grid.RoomAt(math.MaxInt16, 0), grid.East},
		{grid.RoomAt(0, math.MaxInt16), grid.South},
		{grid.RoomAt(math.MinInt16, 0), grid.West},
		{grid.RoomAt(math.MaxInt16, math.MinInt16), grid.NorthEast},
	}
	for _, e := range edges {
		_, ok = e.room.Shift(e.dir)
		assert.False(t, ok, "%v step %s must overflow", e.room, e.dir)
	}
}

// TestRoom_ShiftInverseRoundTrip verifies Shift followed by the inverse step
// returns to the starting room.
func TestRoom_ShiftInverseRoundTrip(t *testing.T) {
	start := grid.RoomAt(12, -34)
	for d := grid.North; d <= grid.NorthWest; d++ {
		next, ok := start.Shift(d)
		require.True(t, ok)
		back, ok := next.Shift(d.Inverse())
		require.True(t, ok)
		assert.Equal(t, start, back, "round trip via %s", d)
	}
}

// TestRoom_DistanceTo spot-checks the Manhattan metric, including symmetry.
func TestRoom_DistanceTo(t *testing.T) {
	a := grid.RoomAt(0, 0)
	b := grid.RoomAt(3, -4)
	assert.Equal(t, 7, a.DistanceTo(b))
	assert.Equal(t, 7, b.DistanceTo(a))
	assert.Zero(t, a.DistanceTo(a))
}

// TestStrings pins the human-readable forms used in logs and test failures.
func TestStrings(t *testing.T) {
	assert.Equal(t, "(-3,9)", grid.RoomAt(-3, 9).String())
	assert.Equal(t, "north-west", grid.NorthWest.String())
	assert.Equal(t, "none", grid.DirNone.String())
}
