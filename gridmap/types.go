// Package gridmap defines the types, options, and sentinel errors for the
// in-memory rectangular world used as a route.World implementation.
package gridmap

import (
	"errors"

	"github.com/katalvlaran/portalroute/grid"
)

// Sentinel errors for gridmap construction.
var (
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("gridmap: width and height must be positive")
)

// Connectivity selects neighbor connectivity: orthogonal exits only (Conn4)
// or orthogonal plus diagonal exits (Conn8).
type Connectivity int

const (
	// Conn4 exposes 4-directional exits: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 exposes 8-directional exits: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// conn4Dirs and conn8Dirs are the exit enumeration orders per connectivity.
// The order is fixed and documented: it decides which of several tied goals
// a search discovers first.
var (
	conn4Dirs = []grid.Direction{grid.North, grid.East, grid.South, grid.West}
	conn8Dirs = []grid.Direction{
		grid.North, grid.NorthEast, grid.East, grid.SouthEast,
		grid.South, grid.SouthWest, grid.West, grid.NorthWest,
	}
)

// Options contains tunable parameters for a Map.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity. Default Conn4.
	Conn Connectivity
	// OriginX, OriginY anchor the north-west corner of the world.
	// Default (0, 0).
	OriginX, OriginY int16
	// Blocked lists rooms that do not exist: no exit ever leads to them.
	Blocked []grid.Room
}

// Option is a functional option for configuring New.
type Option func(*Options)

// WithConnectivity selects Conn4 or Conn8 exits.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		o.Conn = c
	}
}

// WithOrigin anchors the world's north-west corner at (x, y) instead of the
// default (0, 0).
func WithOrigin(x, y int16) Option {
	return func(o *Options) {
		o.OriginX = x
		o.OriginY = y
	}
}

// WithBlocked removes the given rooms from the world. Blocked rooms are
// indistinguishable from rooms outside the bounds.
func WithBlocked(rooms ...grid.Room) Option {
	return func(o *Options) {
		o.Blocked = append(o.Blocked, rooms...)
	}
}

// DefaultOptions returns Options with Conn4 connectivity, origin (0,0), and
// no blocked rooms.
func DefaultOptions() Options {
	return Options{
		Conn:    Conn4,
		OriginX: 0,
		OriginY: 0,
		Blocked: nil,
	}
}
