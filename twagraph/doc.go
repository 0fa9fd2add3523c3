// Package twagraph implements component D's labelled transition digraph:
// dense state ids, edges carrying a (label, mark-set) pair that reach
// either a single ("existential") state or a shared universal-destination
// record (≥2 states an alternating edge reaches simultaneously), and the
// append-only construction plus in-place mutation passes (merge edges,
// purge unreachable states, purge dead states, defragment) spec.md §4.D
// describes.
//
// Per-state successor lists are intrusive: each Edge carries a next index
// chaining it to the following edge out of the same source, mirroring the
// teacher's adjacency bookkeeping but at the array level rather than via a
// map, which is what lets new_edge append in O(1) and out(src) iterate in
// O(|out|).
package twagraph
