package sccinfo

import "errors"

// ErrUnknownState indicates a query referenced a state Build never visited
// (not part of the automaton's reachable part at decomposition time).
var ErrUnknownState = errors.New("sccinfo: state is not part of the decomposition")
