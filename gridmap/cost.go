package gridmap

import (
	"github.com/katalvlaran/portalroute/grid"
	"github.com/katalvlaran/portalroute/route"
)

// UniformCost returns a cost collaborator charging c for every room.
func UniformCost(c uint8) route.CostFunc {
	return func(grid.Room) uint8 {
		return c
	}
}

// CostMap is a per-room cost table with a default for unlisted rooms.
// Assign route.ImpassableCost to mark individual rooms impassable.
type CostMap struct {
	// Default is charged for rooms absent from Costs.
	Default uint8
	// Costs overrides the default per room.
	Costs map[grid.Room]uint8
}

// Cost looks room up in the table, falling back to Default. Usable directly
// as a route.CostFunc.
func (cm CostMap) Cost(room grid.Room) uint8 {
	if c, ok := cm.Costs[room]; ok {
		return c
	}

	return cm.Default
}
