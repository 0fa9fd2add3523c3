// Package sccinfo implements component F, the SCC analyzer: an iterative
// Tarjan decomposition of an automaton's reachable part adapted for
// transition-based acceptance, numbering components in reverse topological
// order and computing, per component, the union of intra-component marks
// and provisional accepting/rejecting bits per spec.md §4.F. Build produces
// the decomposition; RefineUnknown resolves components left ambiguous by
// the provisional bits via the internal brute-force emptiness oracle, and
// DetermineUsefulness runs the reverse-topological usefulness sweep.
package sccinfo
