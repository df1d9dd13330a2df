package route

import (
	"github.com/katalvlaran/portalroute/grid"
)

// resolvePath walks the ledger backward from a discovered goal to assemble
// the route set. Each ledger entry stores the direction traveled *into* its
// room, so the predecessor is one step along the inverse direction.
//
// The walk ends at the origin, whose ledger entry holds DirNone. A missing
// ledger entry or an inverse step that overflows the coordinate range stops
// the walk silently, truncating the route rather than failing: by the
// ledger's insert-once invariant every predecessor was itself discovered,
// so neither case occurs on routes the search actually produced.
//
// The returned set contains both the goal and the origin.
// Complexity: O(L) for a route of L rooms.
func resolvePath(goal grid.Room, ledger map[grid.Room]grid.Direction) RoomSet {
	path := RoomSet{goal: {}}

	cursor := goal
	for {
		dir, ok := ledger[cursor]
		if !ok || dir == grid.DirNone {
			break
		}
		prev, ok := cursor.Shift(dir.Inverse())
		if !ok {
			break
		}
		path[prev] = struct{}{}
		cursor = prev
	}

	return path
}
