package determinize

import "errors"

// ErrCapacityExceeded indicates the construction produced a parity color
// (derived from a brace index) beyond mark.Width's addressable range.
var ErrCapacityExceeded = errors.New("determinize: brace capacity exceeded")
