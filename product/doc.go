// Package product implements component G, the synchronous product of two
// automata sharing a BDD dictionary: states are reachable pairs (sL, sR),
// built on the fly from a work-list with pair interning so each pair yields
// exactly one product state, and edges carry the conjunction of the two
// source labels and the union of their marks after shifting the right
// automaton's marks and acceptance-set references past the left
// automaton's universe.
package product
