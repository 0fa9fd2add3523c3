package bddlabel

import "errors"

var (
	// ErrUnknownAP is returned when an atomic-proposition index or name is
	// not registered in the Dict.
	ErrUnknownAP = errors.New("bddlabel: unknown atomic proposition")

	// ErrDictMismatch is returned when an operation combines Labels that
	// were not produced by the same Dict.
	ErrDictMismatch = errors.New("bddlabel: labels belong to different dictionaries")

	// ErrCapacityExceeded is returned when the AP pool would grow beyond
	// maxAPs.
	ErrCapacityExceeded = errors.New("bddlabel: atomic proposition capacity exceeded")
)

// maxAPs bounds the shared AP pool; the variable-order slice and every BDD
// node's variable field assume this fits comfortably in an int32.
const maxAPs = 1 << 20
