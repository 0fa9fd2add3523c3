// Package mark implements the fixed-width acceptance-set bitset used
// throughout the ω-automaton engine: Mark is a value type over the universe
// {0, 1, ..., Width-1} with total, O(1) set algebra.
//
// Mark is deliberately NOT backed by hashicorp/go-set: go-set targets
// dynamically sized generic collections, while every operation here must be
// O(1) under a compile-time-fixed universe (see DESIGN.md). A single uint64
// gives Width=64, comfortably above the "at least 32" floor spec.md
// requires, at the cost of an ErrOutOfRange for any index above 63.
//
// All Mark operations are value semantics: there is no shared mutable state,
// so a Mark can be freely copied, used as a map key, and compared with ==.
package mark

import "errors"

// Width is the number of addressable acceptance-set indices, K in spec.md §3/§4.A.
const Width = 64

// ErrOutOfRange is returned whenever an operation addresses an index >= Width.
var ErrOutOfRange = errors.New("mark: index out of range")
