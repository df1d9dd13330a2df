// Package portalroute is a small routing core for region-level maps: given
// an origin room, a set of goal rooms, and a pair of caller-supplied
// collaborators, it returns the set of rooms forming a feasible route.
//
// 🚀 What is portalroute?
//
//	A focused library built around one algorithm:
//		• route/   — multi-goal best-first search (A*-style) with a
//		  min-heap frontier, discovery-time visited ledger, and
//		  direction-based path reconstruction
//		• grid/    — packed integer room keys and compass directions
//		• gridmap/ — a bounded rectangular world implementing the
//		  connectivity collaborator, for callers, tests, and benchmarks
//
// ✨ Why choose portalroute?
//
//   - Collaborator-driven – you own the map and the costs; the router owns
//     only the search
//   - Allocation-light – rooms are packed uint32 keys, the frontier is an
//     array-backed binary heap
//   - Stateless – nothing persists across calls; concurrent independent
//     searches need no locking
//
// The router deliberately keeps two non-textbook behaviors for
// compatibility with the system it was carved out of: rooms close at
// discovery time, and goal membership is tested before the cost
// collaborator runs — so an edge into a goal always succeeds and the
// first-discovered goal wins. See route's package documentation for the
// full contract.
//
//	go get github.com/katalvlaran/portalroute
package portalroute
