package transform

import (
	"github.com/hashicorp/go-hclog"
	"github.com/wautomata/omega/internal/envknobs"
)

// Options carries the knobs shared by the long-running constructions
// (RabinToBuchi's per-SCC typability search, EliminateFin's per-term
// cloning, StreettToGeneralizedBuchi's minimum-pair skip threshold): an
// optional progress logger plus the minimum pair count below which
// StreettToGeneralizedBuchi skips its conversion.
type Options struct {
	Logger   hclog.Logger
	MinPairs int
}

// Option configures a RabinToBuchi, EliminateFin, or
// StreettToGeneralizedBuchi call.
type Option func(*Options)

// WithLogger attaches l so the construction can trace per-SCC and per-term
// progress on large inputs.
func WithLogger(l hclog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithMinPairs overrides §6's Streett-to-generalized-Büchi minimum pair
// threshold for this call, taking precedence over OMEGA_STREETT_MIN_PAIRS
// and its built-in default.
func WithMinPairs(n int) Option {
	return func(o *Options) { o.MinPairs = n }
}

func newOptions(opts []Option) Options {
	o := Options{Logger: hclog.NewNullLogger(), MinPairs: envknobs.StreettMinPairs()}
	for _, apply := range opts {
		apply(&o)
	}

	return o
}
