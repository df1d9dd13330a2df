// Package gridmap provides a bounded rectangular world of rooms, used as a
// ready-made connectivity collaborator (route.World) by callers, tests,
// examples, and benchmarks.
package gridmap

import (
	"github.com/katalvlaran/portalroute/grid"
	"github.com/katalvlaran/portalroute/route"
)

// Map is a bounded rectangular world of rooms. It is immutable once built:
// the blocked set is copied during construction and exits are derived, not
// stored.
type Map struct {
	width, height    int
	originX, originY int16
	dirs             []grid.Direction // exit enumeration order per connectivity
	blocked          map[grid.Room]struct{}
}

// Compile-time check that Map satisfies the router's connectivity contract.
var _ route.World = (*Map)(nil)

// New constructs a Map of width×height rooms whose north-west corner sits at
// the configured origin. Returns ErrBadDimensions if width or height is not
// positive.
// Complexity: O(B) for B blocked rooms; the room grid itself is implicit.
func New(width, height int, opts ...Option) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	dirs := conn4Dirs
	if cfg.Conn == Conn8 {
		dirs = conn8Dirs
	}

	// Copy the blocked list to keep the Map immutable.
	blocked := make(map[grid.Room]struct{}, len(cfg.Blocked))
	for _, r := range cfg.Blocked {
		blocked[r] = struct{}{}
	}

	return &Map{
		width:   width,
		height:  height,
		originX: cfg.OriginX,
		originY: cfg.OriginY,
		dirs:    dirs,
		blocked: blocked,
	}, nil
}

// Contains reports whether room exists in this world: inside the bounds and
// not blocked.
// Complexity: O(1).
func (m *Map) Contains(room grid.Room) bool {
	dx := int(room.X()) - int(m.originX)
	dy := int(room.Y()) - int(m.originY)
	if dx < 0 || dx >= m.width || dy < 0 || dy >= m.height {
		return false
	}
	_, isBlocked := m.blocked[room]

	return !isBlocked
}

// Exits returns the directions in which room has an existing neighbor,
// enumerated in the fixed per-connectivity order. A room outside the world
// has no exits.
// Complexity: O(d) for d = 4 or 8.
func (m *Map) Exits(room grid.Room) []grid.Direction {
	if !m.Contains(room) {
		return nil
	}

	out := make([]grid.Direction, 0, len(m.dirs))
	for _, d := range m.dirs {
		if adj, ok := room.Shift(d); ok && m.Contains(adj) {
			out = append(out, d)
		}
	}

	return out
}
