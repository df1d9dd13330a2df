// Package route defines the collaborator contracts, configuration options,
// and sentinel errors for the multi-goal best-first router.
//
// The router itself lives in route.go; this file declares everything a
// caller touches: the World connectivity interface, the CostFunc cost
// collaborator with its impassable sentinel, RoomSet, Stats, and the
// functional Options.
package route

import (
	"errors"
	"math"

	"github.com/katalvlaran/portalroute/grid"
)

// Sentinel errors returned by FindRoute.
var (
	// ErrNilWorld indicates a nil World collaborator was passed.
	ErrNilWorld = errors.New("route: world is nil")

	// ErrNilCost indicates a nil cost function was passed.
	ErrNilCost = errors.New("route: cost function is nil")

	// ErrNoGoals indicates an empty or nil goal set; the router needs at
	// least one goal to estimate remaining cost.
	ErrNoGoals = errors.New("route: goal set is empty")

	// ErrNoPath indicates the frontier was exhausted without discovering
	// any goal. It carries no diagnostic payload; see WithStats for
	// exploration counters.
	ErrNoPath = errors.New("route: no path found")

	// ErrBudgetExhausted indicates the search stopped because it hit the
	// WithMaxExpansions cap before discovering a goal or proving there is
	// none. Distinct from ErrNoPath: a capped search is inconclusive.
	ErrBudgetExhausted = errors.New("route: expansion budget exhausted")

	// ErrBadMaxExpansions indicates a negative value was passed to
	// WithMaxExpansions.
	ErrBadMaxExpansions = errors.New("route: MaxExpansions must be non-negative")
)

// ImpassableCost is the reserved maximum of the cost range. A room whose
// cost evaluates to this sentinel is never pushed onto the frontier and can
// never appear inside a returned route (goals are exempt: the goal test
// precedes cost evaluation).
const ImpassableCost = math.MaxUint8

// CostFunc is the cost collaborator: the traversal cost of entering a room,
// as a small non-negative integer. It must be pure and stable for the
// lifetime of one FindRoute call. Returning ImpassableCost marks the room
// impassable.
type CostFunc func(grid.Room) uint8

// World is the connectivity collaborator. Exits returns the directions in
// which room has an existing neighboring room; only returned directions are
// treated as edges. Enumeration order is the World's choice and shapes
// which of several tied goals is discovered first.
//
// Implementations must be read-only and synchronous. The router performs no
// caching of Exits results (none exists in the original design).
type World interface {
	Exits(room grid.Room) []grid.Direction
}

// RoomSet is an unordered set of rooms. FindRoute takes its goals and
// returns its route as a RoomSet: the route spans origin to goal but keeps
// no ordering information.
type RoomSet map[grid.Room]struct{}

// NewRoomSet builds a RoomSet from the given rooms.
func NewRoomSet(rooms ...grid.Room) RoomSet {
	s := make(RoomSet, len(rooms))
	for _, r := range rooms {
		s[r] = struct{}{}
	}

	return s
}

// Contains reports whether r is a member of the set.
func (s RoomSet) Contains(r grid.Room) bool {
	_, ok := s[r]

	return ok
}

// Stats carries exploration counters filled in by FindRoute when requested
// via WithStats. Counters are written on every return path, success or
// failure, so a caller can tell a near-miss from a trivial dead end.
type Stats struct {
	// Discovered counts ledger insertions, origin included.
	Discovered int
	// Expanded counts frontier entries popped and expanded.
	Expanded int
	// Pushed counts frontier pushes, origin included.
	Pushed int
}

// Options configures FindRoute behavior.
//
// MaxExpansions – cap on frontier pops before the search gives up with
// ErrBudgetExhausted. 0 (default) means unlimited.
// Stats         – optional destination for exploration counters.
type Options struct {
	MaxExpansions int    // 0 disables the cap
	Stats         *Stats // nil disables stats collection
}

// Option is a functional option for configuring FindRoute.
type Option func(*Options)

// WithMaxExpansions caps how many frontier entries the search may expand.
// A capped search that runs out of budget returns ErrBudgetExhausted rather
// than ErrNoPath, since exhausting the budget proves nothing about
// reachability. Must be non-negative; negative values panic with
// ErrBadMaxExpansions. 0 restores the default unlimited behavior.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// WithStats directs FindRoute to write exploration counters into dst on
// return. A nil dst leaves stats collection disabled.
func WithStats(dst *Stats) Option {
	return func(o *Options) {
		o.Stats = dst
	}
}

// DefaultOptions returns the Options FindRoute starts from:
//   - MaxExpansions: 0 (unlimited)
//   - Stats:         nil (no collection)
func DefaultOptions() Options {
	return Options{
		MaxExpansions: 0,
		Stats:         nil,
	}
}
