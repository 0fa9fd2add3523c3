// Package determinize implements component J: Safra-like determinization
// of a non-deterministic Büchi automaton (degeneralizing or eliminating
// Fin first, if needed) into an equivalent deterministic parity automaton.
// See Determinize and spec.md §4.J for the construction.
package determinize
