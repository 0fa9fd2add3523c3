// Package bddlabel implements component C's edge-label contract: an
// opaque, reference-counted handle to a Boolean function over a shared pool
// of atomic propositions. Only the contract spec.md §3.C names is exposed —
// conjunction, disjunction, negation, existential/universal quantification,
// support, restricted one-model extraction ("pick one cube"), and identity
// equality — backed by a reduced, ordered, structurally-hashed BDD.
//
// A Dict owns the shared AP pool and the BDD node table; Label values are
// cheap handles into a Dict and are meaningless outside the Dict that
// produced them. Every function that returns a fresh Label hands the caller
// one owned reference; callers release it with Label.Unref when done,
// mirroring the reference-discipline of the BDD packages (BuDDy, CUDD, and
// this corpus's own go-air/gini circuit) this package's strashing is
// modeled on.
//
// This allocator is intentionally separate from the small BDD the
// acceptance package builds internally for DNF/CNF normalization — spec.md
// §9 warns that sharing one variable space between the two would let an
// acceptance-set index collide with an atomic-proposition index.
package bddlabel
