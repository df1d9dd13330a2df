package route_test

import (
	"testing"

	"github.com/katalvlaran/portalroute/grid"
	"github.com/katalvlaran/portalroute/gridmap"
	"github.com/katalvlaran/portalroute/route"
)

// BenchmarkFindRoute_Grid64 routes corner to corner across a fully
// connected 64x64 orthogonal grid with uniform cost.
func BenchmarkFindRoute_Grid64(b *testing.B) {
	world, err := gridmap.New(64, 64)
	if err != nil {
		b.Fatal(err)
	}
	origin := grid.RoomAt(0, 0)
	goals := route.NewRoomSet(grid.RoomAt(63, 63))
	cost := gridmap.UniformCost(1)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err = route.FindRoute(world, origin, goals, cost); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkFindRoute_Grid64Diagonal measures the same route under Conn8,
// where diagonal exits roughly halve the hop count but widen the frontier.
func BenchmarkFindRoute_Grid64Diagonal(b *testing.B) {
	world, err := gridmap.New(64, 64, gridmap.WithConnectivity(gridmap.Conn8))
	if err != nil {
		b.Fatal(err)
	}
	origin := grid.RoomAt(0, 0)
	goals := route.NewRoomSet(grid.RoomAt(63, 63))
	cost := gridmap.UniformCost(1)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err = route.FindRoute(world, origin, goals, cost); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkFindRoute_NoPath measures the exhaustion worst case: a walled
// world where the goal is unreachable and every room gets expanded.
func BenchmarkFindRoute_NoPath(b *testing.B) {
	// Wall off the last column by blocking x=62 entirely.
	blocked := make([]grid.Room, 0, 64)
	for y := int16(0); y < 64; y++ {
		blocked = append(blocked, grid.RoomAt(62, y))
	}
	world, err := gridmap.New(64, 64, gridmap.WithBlocked(blocked...))
	if err != nil {
		b.Fatal(err)
	}
	origin := grid.RoomAt(0, 0)
	goals := route.NewRoomSet(grid.RoomAt(63, 63))
	cost := gridmap.UniformCost(1)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err = route.FindRoute(world, origin, goals, cost); err == nil {
			b.Fatal("expected no path")
		}
	}
}
