// Package envknobs centralizes spec.md §6's three environment-observed
// runtime knobs: each is read from its environment variable at most once,
// cached, and checked against the range the spec describes (an unparsable or
// out-of-range value yields the knob's default). A functional option
// on the consuming call always takes precedence over the environment value,
// mirroring how hashicorp-nomad layers go-envparse-sourced defaults under
// explicit CLI/API overrides — here hand-rolled with strconv, since there
// are three scalars to parse rather than a whole env file.
package envknobs

import (
	"os"
	"strconv"
	"sync"
)

const (
	streettMinPairsEnv = "OMEGA_STREETT_MIN_PAIRS"
	stutterCheckEnv    = "OMEGA_STUTTER_CHECK"
	dotExtraEnv        = "OMEGA_DOT_EXTRA"

	// DefaultStreettMinPairs is the threshold below which
	// StreettToGeneralizedBuchi's conversion is skipped.
	DefaultStreettMinPairs = 3
	// DefaultStutterCheck is the stutter-invariance check algorithm
	// selector's default variant.
	DefaultStutterCheck = 8
	// MaxStutterCheck is the highest valid stutter-invariance selector.
	MaxStutterCheck = 9
)

var (
	once            sync.Once
	streettMinPairs int
	stutterCheck    int
	dotExtra        string
)

func load() {
	streettMinPairs = DefaultStreettMinPairs
	if v, ok := os.LookupEnv(streettMinPairsEnv); ok {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			streettMinPairs = n
		}
	}

	stutterCheck = DefaultStutterCheck
	if v, ok := os.LookupEnv(stutterCheckEnv); ok {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 && n <= MaxStutterCheck {
			stutterCheck = n
		}
	}

	dotExtra = os.Getenv(dotExtraEnv)
}

// StreettMinPairs returns OMEGA_STREETT_MIN_PAIRS, or DefaultStreettMinPairs
// if unset, unparsable or negative.
func StreettMinPairs() int {
	once.Do(load)

	return streettMinPairs
}

// StutterCheck returns OMEGA_STUTTER_CHECK when it parses to a value in
// [0, MaxStutterCheck], or DefaultStutterCheck if unset, unparsable or out of
// range.
func StutterCheck() int {
	once.Do(load)

	return stutterCheck
}

// DotExtra returns OMEGA_DOT_EXTRA verbatim (empty string if unset), a
// caller-supplied string appended to DOT output headers.
func DotExtra() string {
	once.Do(load)

	return dotExtra
}

// resetForTest discards the cached knob values so a test can observe a
// freshly-set environment. Only called from this package's own tests.
func resetForTest() {
	once = sync.Once{}
}
