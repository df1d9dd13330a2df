package grid

import (
	"fmt"
	"math"
)

// Room is a compact key identifying one map region. It packs signed 16-bit
// x/y coordinates into a single uint32, so Rooms are comparable, hashable,
// totally ordered by their packed value, and free to copy.
//
// Rooms are immutable: every operation returns a new Room.
type Room uint32

// RoomAt builds the Room key for coordinates (x, y).
func RoomAt(x, y int16) Room {
	return Room(uint32(uint16(x))<<16 | uint32(uint16(y)))
}

// X returns the signed x coordinate of r.
func (r Room) X() int16 {
	return int16(uint16(r >> 16))
}

// Y returns the signed y coordinate of r.
func (r Room) Y() int16 {
	return int16(uint16(r))
}

// Shift returns the neighboring Room one step from r in direction d.
// It reports ok=false when d is not a valid compass direction or when the
// step would leave the representable int16 coordinate range; such a
// neighbor simply does not exist.
func (r Room) Shift(d Direction) (Room, bool) {
	dx, dy := d.Offset()
	if dx == 0 && dy == 0 {
		return r, false
	}
	// Widen to int before adding so boundary arithmetic cannot wrap.
	nx := int(r.X()) + dx
	ny := int(r.Y()) + dy
	if nx < math.MinInt16 || nx > math.MaxInt16 || ny < math.MinInt16 || ny > math.MaxInt16 {
		return r, false
	}

	return RoomAt(int16(nx), int16(ny)), true
}

// DistanceTo returns the Manhattan distance |dx|+|dy| between r and other.
// Complexity: O(1).
func (r Room) DistanceTo(other Room) int {
	dx := int(r.X()) - int(other.X())
	if dx < 0 {
		dx = -dx
	}
	dy := int(r.Y()) - int(other.Y())
	if dy < 0 {
		dy = -dy
	}

	return dx + dy
}

// String renders r as "(x,y)".
func (r Room) String() string {
	return fmt.Sprintf("(%d,%d)", r.X(), r.Y())
}
