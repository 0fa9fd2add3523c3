package transform

import "errors"

// ErrNotStreettLike indicates StreettToGeneralizedBuchi was given a formula
// that is not a conjunction of (Fin, Inf) pairs plus bare Inf leaves.
var ErrNotStreettLike = errors.New("transform: acceptance is not Streett-like")

// ErrNotRabinLike indicates RabinToBuchi was given a formula that is not a
// disjunction of (Fin(singleton), Inf) pairs.
var ErrNotRabinLike = errors.New("transform: acceptance is not Rabin-like")
