// Package grid defines the room identity and direction primitives shared by
// every portalroute package.
//
// What:
//
//   - Room: a compact, comparable key for one map region, packing signed
//     16-bit x/y coordinates into a single uint32.
//   - Direction: the eight compass directions, numbered from 1 so the zero
//     value reads as "no direction".
//   - Checked coordinate arithmetic (Room.Shift) that reports "no neighbor"
//     instead of wrapping at the coordinate boundary.
//
// Why:
//
//   - Search frontiers and visited ledgers hash millions of room keys; a
//     packed integer avoids per-node allocation and gives free total
//     ordering and map-key equality.
//   - Directions carry their own inverse and coordinate offset, which is all
//     the topology a best-first router needs from a region map.
//
// Complexity:
//
//   - All operations are O(1) with no allocation, except Room.String.
//
// Errors: none. Fallible operations (Shift) return an ok bool; an offset
// that would leave the representable coordinate range simply has no
// neighboring room.
package grid
