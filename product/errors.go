package product

import "errors"

// ErrDictMismatch indicates the two automata passed to Build do not share a
// BDD dictionary, so their labels and atomic-proposition indices are not
// comparable.
var ErrDictMismatch = errors.New("product: automata do not share a BDD dictionary")
