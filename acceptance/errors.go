package acceptance

import "errors"

// Sentinel errors returned by the acceptance package. Callers should branch
// with errors.Is, never string comparison.
var (
	// ErrOutOfUniverse indicates that Inf/Fin was built with a mark referencing
	// an index beyond the declared universe size.
	ErrOutOfUniverse = errors.New("acceptance: mark set exceeds universe size")

	// ErrCapacityExceeded indicates that DNF/CNF normalization needed more
	// BDD variables than the internal allocator bound supports.
	ErrCapacityExceeded = errors.New("acceptance: BDD variable capacity exceeded")

	// ErrParse is returned by Parse on any syntax error in the acceptance grammar.
	ErrParse = errors.New("acceptance: parse error")
)

// maxBDDVars bounds the internal DNF/CNF allocator (one BDD variable per used
// acceptance set). It lies above package mark's fixed Width of 64, so a
// formula built from mark.Mark values never reaches it.
const maxBDDVars = 4096
