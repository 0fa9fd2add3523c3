package degen

import "errors"

// ErrNotGeneralizedBuchi indicates Build was given an automaton whose
// acceptance formula is not a (possibly singleton) Inf node.
var ErrNotGeneralizedBuchi = errors.New("degen: acceptance is not generalized Büchi")
