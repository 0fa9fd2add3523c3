package automaton

import "errors"

// Sentinel errors for automaton operations.
var (
	// ErrStateOutOfRange indicates an initial-state index is not a valid
	// state of the underlying digraph.
	ErrStateOutOfRange = errors.New("automaton: state index out of range")

	// ErrNegativeNumSets indicates SetAcceptance was given a negative
	// universe size.
	ErrNegativeNumSets = errors.New("automaton: acceptance set count must be non-negative")

	// ErrNilFormula indicates SetAcceptance was given a nil formula.
	ErrNilFormula = errors.New("automaton: acceptance formula must not be nil")

	// ErrDictMismatch indicates an operation was attempted across two
	// automata that do not share a BDD dictionary, so their atomic
	// proposition variable indices are not comparable.
	ErrDictMismatch = errors.New("automaton: automata do not share a BDD dictionary")

	// ErrAcceptanceSetOutOfRange indicates the acceptance formula
	// references a mark index at or beyond the declared universe size.
	ErrAcceptanceSetOutOfRange = errors.New("automaton: acceptance formula references a set beyond its declared universe")
)
