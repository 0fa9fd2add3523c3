// Package acceptance implements the generic acceptance-condition algebra of
// the ω-automaton engine: a tree-shaped Boolean expression over
//
//	acc ::= t | f | Inf(M) | Fin(M) | acc ∧ acc | acc ∨ acc
//
// where M is a mark.Mark. Formula is an immutable value (safe to share and
// use as a map key via Key()); construction via And/Or/Inf/Fin always
// canonicalizes per spec.md §3: Inf(∅)=t, Fin(∅)=f, adjacent Inf terms under
// ∧ union their marks, adjacent Fin terms under ∨ union their marks, and
// equality is structural modulo commutativity/associativity because And/Or
// nodes store their children flattened and canonically sorted.
//
// DNF/CNF normalization, unsat-mark search, and the SAT-minimization
// "missing" query are all implemented via a small reduced-ordered BDD
// (robdd.go) allocated fresh per call over one Boolean variable per acceptance
// set referenced by the formula. That allocator is intentionally distinct
// from the automaton's label BDD (package bddlabel) — see DESIGN.md — so
// that the two variable spaces never collide.
package acceptance
