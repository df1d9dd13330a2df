package route

import (
	"math"

	"github.com/katalvlaran/portalroute/grid"
)

// heuristicToClosestGoal estimates the remaining cost from room as the
// lowest Manhattan distance to any goal. Pure linear scan over the goal
// set; no state, no side effects.
//
// The estimate is admissible only while every traversal step costs at least
// one coordinate-distance unit, which holds for the intended collaborators.
// Complexity: O(G) per call for G goals.
func heuristicToClosestGoal(room grid.Room, goals RoomSet) uint32 {
	lowest := uint32(math.MaxUint32)
	var d uint32
	for goal := range goals {
		d = uint32(room.DistanceTo(goal))
		if d < lowest {
			lowest = d
		}
	}

	return lowest
}
