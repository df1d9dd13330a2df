package grid

// Direction identifies one of the eight compass directions between adjacent
// rooms. Values start at 1; the zero value (DirNone) means "no direction"
// and is what a route ledger stores for the origin room.
type Direction uint8

// Compass directions in clockwise order. Y grows southward, matching the
// screen-style grids this library routes over.
const (
	// DirNone is the zero Direction; it is not a valid movement.
	DirNone Direction = iota
	North
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// dirCount is the number of valid compass directions.
const dirCount = 8

// offsets maps each valid Direction to its (dx, dy) coordinate delta.
// Index 0 belongs to DirNone and stays zero.
var offsets = [dirCount + 1][2]int{
	North:     {0, -1},
	NorthEast: {1, -1},
	East:      {1, 0},
	SouthEast: {1, 1},
	South:     {0, 1},
	SouthWest: {-1, 1},
	West:      {-1, 0},
	NorthWest: {-1, -1},
}

// names holds the String representation per Direction.
var names = [dirCount + 1]string{
	DirNone:   "none",
	North:     "north",
	NorthEast: "north-east",
	East:      "east",
	SouthEast: "south-east",
	South:     "south",
	SouthWest: "south-west",
	West:      "west",
	NorthWest: "north-west",
}

// IsValid reports whether d is one of the eight compass directions.
// DirNone is not valid.
func (d Direction) IsValid() bool {
	return d >= North && d <= NorthWest
}

// Inverse returns the opposite compass direction (North↔South, East↔West,
// and so on). The inverse of DirNone or any out-of-range value is DirNone.
func (d Direction) Inverse() Direction {
	if !d.IsValid() {
		return DirNone
	}
	// Rotate half way around the 8-point compass: (d-1+4) mod 8, back to 1-based.
	return Direction((d-1+dirCount/2)%dirCount + 1)
}

// Offset returns the coordinate delta (dx, dy) of one step in direction d.
// DirNone and out-of-range values yield (0, 0).
func (d Direction) Offset() (dx, dy int) {
	if !d.IsValid() {
		return 0, 0
	}

	return offsets[d][0], offsets[d][1]
}

// String returns the lowercase compass name of d, or "none".
func (d Direction) String() string {
	if d > NorthWest {
		return "none"
	}

	return names[d]
}
