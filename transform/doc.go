// Package transform rewrites one acceptance condition into another while
// preserving language: Streett-like conditions into generalized Büchi,
// Rabin-like conditions into plain Büchi when the input permits it,
// arbitrary Fin/Inf formulas into generalized Büchi by elimination of Fin,
// and a strength-based decomposition into terminal/weak/strong
// sub-automata. See spec.md §4.I.
//
// All four operations are named-package functions rather than a
// sub-package each, since every one of them starts from a single reachable
// automaton and ends with another; the package boundary is drawn at "what
// it does to the acceptance condition," not at the shape of the input.
package transform
