// Package route finds a route from an origin room to the nearest-discovered
// member of a goal set, over an implicitly-defined room graph supplied by
// collaborators.
//
// What:
//
//   - FindRoute: informed best-first search (A*-style) with a min-heap
//     frontier keyed by f = g + minimum Manhattan distance to any goal.
//   - World: the connectivity collaborator — which compass directions lead
//     to an existing neighboring room.
//   - CostFunc: the cost collaborator — per-room traversal cost as a small
//     unsigned integer, with math.MaxUint8 reserved as the impassable
//     sentinel (ImpassableCost).
//   - The result is a RoomSet spanning origin to goal; ordering along the
//     route is deliberately not part of the contract.
//
// Why:
//
//   - Region-level routing for map automation: the caller owns the map and
//     the costs, the router owns only the search. One search, one call, no
//     retained state — concurrent independent searches need no locking.
//
// Deviations from textbook A*, preserved on purpose:
//
//   - Rooms are closed at discovery time, not at expansion time: each room
//     is enqueued at most once and never re-opened. Equivalent to canonical
//     A* when the heuristic is consistent and costs are non-negative
//     integers, which the intended collaborators satisfy.
//   - The goal test runs when a neighbor is discovered, before its cost is
//     evaluated. An edge into a goal always succeeds, even when the cost
//     collaborator calls the goal impassable, and with several goals the
//     first one discovered wins — not necessarily the cheapest.
//   - When expanding an entry, the single step back toward the room that
//     opened it is skipped up front; all other revisits are rejected by the
//     ledger.
//
// Complexity:
//
//   - Time:  O(E log E + E·G) — each discovered edge costs one heap push
//     (O(log E)) plus one O(G) heuristic scan over G goals.
//   - Space: O(V) visited ledger + O(V) frontier.
//
// Options:
//
//   - WithMaxExpansions(n): stop after n expansions with ErrBudgetExhausted.
//   - WithStats(&s): receive Discovered/Expanded/Pushed counters on return.
//
// Errors:
//
//   - ErrNilWorld, ErrNilCost, ErrNoGoals: invalid inputs, checked first.
//   - ErrNoPath: frontier exhausted without discovering a goal.
//   - ErrBudgetExhausted: expansion cap reached; reachability unproven.
package route
