// Package route implements multi-goal best-first routing over an implicit
// room graph. See doc.go for the full contract and the deliberate
// deviations from textbook A*.
package route

import (
	"container/heap"

	"github.com/katalvlaran/portalroute/grid"
)

// FindRoute searches for a route from origin to any member of goals,
// expanding rooms in ascending order of estimated total cost
// (f = accumulated cost + minimum Manhattan distance to a goal).
//
// Returns the set of rooms spanning origin to the discovered goal, both
// endpoints included, or ErrNoPath when the frontier is exhausted first.
//
// Two properties differ from textbook A* and are part of the contract:
//
//  1. Discovery-time closing: a room enters the visited ledger the moment it
//     is first seen as a neighbor, never at pop time. Each room is therefore
//     enqueued at most once and never re-opened.
//  2. Goal test before cost: a neighbor that is a goal terminates the search
//     immediately — its cost is never evaluated, so even an impassable goal
//     is reachable. With several goals the first one *discovered* wins,
//     which is not necessarily the cheapest.
//
// The origin is not special-cased: it is in the ledger from the start, so a
// goal set containing only the origin is never "discovered" and the search
// runs to exhaustion. Callers wanting trivial self-routes must check before
// calling.
//
// Complexity: O(E log E) time for E discovered edges (each push/pop costs
// O(log E)), plus O(G) heuristic work per push for G goals. Space: O(V)
// for the ledger plus O(V) frontier.
func FindRoute(world World, origin grid.Room, goals RoomSet, cost CostFunc, opts ...Option) (RoomSet, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Fail fast on missing collaborators and empty goal sets.
	if world == nil {
		return nil, ErrNilWorld
	}
	if cost == nil {
		return nil, ErrNilCost
	}
	if len(goals) == 0 {
		return nil, ErrNoGoals
	}

	// 3) Assemble per-call state; nothing survives the return.
	r := &runner{
		world:   world,
		cost:    cost,
		goals:   goals,
		options: cfg,
		ledger:  make(map[grid.Room]grid.Direction),
		open:    make(frontier, 0),
	}

	// 4) Publish counters on every return path when requested.
	if cfg.Stats != nil {
		defer func() { *cfg.Stats = r.stats }()
	}

	// 5) Seed the frontier with the origin and run the main loop.
	r.init(origin)

	return r.process()
}

// runner holds the mutable state of a single FindRoute execution.
type runner struct {
	world   World    // connectivity collaborator, read-only
	cost    CostFunc // cost collaborator, assumed pure
	goals   RoomSet  // immutable for the duration of the search
	options Options
	ledger  map[grid.Room]grid.Direction // room → direction it was discovered from; DirNone for origin
	open    frontier                     // min-heap on f
	stats   Stats
}

// init records the origin in the ledger (closing it immediately) and pushes
// its frontier entry with g=0.
func (r *runner) init(origin grid.Room) {
	r.ledger[origin] = grid.DirNone
	r.stats.Discovered++

	heap.Init(&r.open)
	r.push(origin, 0, grid.DirNone)
}

// push scores room with f = g + heuristic and adds it to the frontier.
func (r *runner) push(room grid.Room, g uint32, openedFrom grid.Direction) {
	heap.Push(&r.open, &frontierEntry{
		room:       room,
		g:          g,
		f:          g + heuristicToClosestGoal(room, r.goals),
		openedFrom: openedFrom,
	})
	r.stats.Pushed++
}

// process pops the lowest-f entry and expands its neighbors until a goal is
// discovered, the frontier drains, or the expansion budget runs out.
func (r *runner) process() (RoomSet, error) {
	var entry *frontierEntry
	var dir grid.Direction
	for r.open.Len() > 0 {
		// Budget check happens before the pop so MaxExpansions bounds the
		// number of expansions exactly.
		if r.options.MaxExpansions > 0 && r.stats.Expanded >= r.options.MaxExpansions {
			return nil, ErrBudgetExhausted
		}

		entry = heap.Pop(&r.open).(*frontierEntry)
		r.stats.Expanded++

		for _, dir = range r.world.Exits(entry.room) {
			// Skip the single immediate reversal toward the room that
			// opened this entry. Purely local: longer cycles are caught by
			// the ledger below.
			if dir.Inverse() == entry.openedFrom {
				continue
			}

			// Coordinate overflow means the neighbor does not exist.
			adj, ok := entry.room.Shift(dir)
			if !ok {
				continue
			}

			// Ledger membership is the authoritative "already considered"
			// test; a room is closed the moment it is first discovered.
			if _, seen := r.ledger[adj]; seen {
				continue
			}
			r.ledger[adj] = dir
			r.stats.Discovered++

			// Goal test precedes cost evaluation: an edge into a goal is
			// taken unconditionally, impassable or not.
			if r.goals.Contains(adj) {
				return resolvePath(adj, r.ledger), nil
			}

			c := r.cost(adj)
			if c == ImpassableCost {
				continue
			}
			r.push(adj, entry.g+uint32(c), dir)
		}
	}

	return nil, ErrNoPath
}

// frontierEntry is one open candidate: the room, its accumulated cost g,
// its estimated total cost f, and the direction it was opened from (used
// only for the single-step backtrack skip).
type frontierEntry struct {
	room       grid.Room
	g          uint32
	f          uint32
	openedFrom grid.Direction
}

// frontier is a min-heap of *frontierEntry ordered by f ascending. Ties are
// broken arbitrarily by heap layout; the contract does not order them.
type frontier []*frontierEntry

// Len returns the number of open entries.
func (fr frontier) Len() int { return len(fr) }

// Less orders entries by estimated total cost, lowest first.
func (fr frontier) Less(i, j int) bool { return fr[i].f < fr[j].f }

// Swap swaps two entries.
func (fr frontier) Swap(i, j int) { fr[i], fr[j] = fr[j], fr[i] }

// Push appends x; called by heap.Push, x must be *frontierEntry.
func (fr *frontier) Push(x interface{}) { *fr = append(*fr, x.(*frontierEntry)) }

// Pop removes and returns the last entry; called by heap.Pop.
func (fr *frontier) Pop() interface{} {
	old := *fr
	n := len(old)
	entry := old[n-1]
	old[n-1] = nil
	*fr = old[:n-1]

	return entry
}
