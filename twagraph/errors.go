package twagraph

import "errors"

// Sentinel errors for digraph operations.
var (
	// ErrStateOutOfRange indicates src or an existential dst is not a valid
	// state index.
	ErrStateOutOfRange = errors.New("twagraph: state index out of range")

	// ErrEmptyUnivDests indicates new_univ_edge was called with zero
	// destinations.
	ErrEmptyUnivDests = errors.New("twagraph: universal edge needs at least one destination")

	// ErrInvalidPermutation indicates defrag_states was given a permutation
	// that doesn't cover every live state or maps two states onto the same
	// target.
	ErrInvalidPermutation = errors.New("twagraph: invalid state permutation")
)
