// Package gridmap implements route.World over a bounded rectangular grid of
// rooms, with optional blocked rooms and 4- or 8-directional connectivity.
//
// What:
//
//   - Map: an immutable width×height world anchored at a configurable
//     origin; Exits derives neighbors on the fly, so the grid costs no
//     memory beyond its blocked set.
//   - UniformCost and CostMap: small cost-collaborator helpers for wiring a
//     Map into route.FindRoute.
//
// Why:
//
//   - The router treats connectivity as an external collaborator; this
//     package is the reference implementation used throughout the module's
//     tests, examples, and benchmarks, and a reasonable starting point for
//     callers with rectangular maps.
//
// Complexity:
//
//   - New:      O(B) for B blocked rooms.
//   - Contains: O(1).
//   - Exits:    O(d), d = 4 or 8 depending on Connectivity.
//
// Options:
//
//   - WithConnectivity(Conn4|Conn8): orthogonal or orthogonal+diagonal exits.
//   - WithOrigin(x, y): anchor the north-west corner away from (0,0).
//   - WithBlocked(rooms...): rooms that simply do not exist.
//
// Errors:
//
//   - ErrBadDimensions: width or height not positive.
package gridmap
