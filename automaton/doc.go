// Package automaton implements component E, the automaton object: a
// twagraph.Graph, an acceptance.Formula over a declared universe size, a
// per-automaton ordered list of registered atomic propositions, an initial
// state, a three-valued property-flag record with the implications spec.md
// §4.E names, and a typed named-property registry for auxiliary annotations
// (state names, highlight maps, origin traces) that ride along with the
// automaton without the core knowing their type.
//
// An automaton exclusively owns its digraph, acceptance formula, AP list,
// and named properties. Edge labels and marks are value-copied or
// reference-shared with the rest of the program; the BDD dictionary backing
// labels is shared process-wide across every automaton that registers
// atomic propositions against it.
package automaton
