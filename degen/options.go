package degen

// options carries Build's construction knobs. skipConsecutiveHits defaults
// on, matching spec.md §4.H's literal "smallest ℓ' ≥ ℓ" rule, which already
// advances through every consecutively-hit set in one transition.
type options struct {
	acceptingInitialSelfLoop bool
	resetLevel               bool
	levelCache               bool
	tba                      bool
	skipConsecutiveHits      bool
}

// Option configures a Build call.
type Option func(*options)

// WithAcceptingInitialSelfLoop starts the construction at the accepting
// level (n, the level just short of wrapping) instead of 0 when the input's
// initial state carries a self-loop whose own marks already satisfy the
// acceptance formula — the "accepting initial self-loop" heuristic.
func WithAcceptingInitialSelfLoop() Option {
	return func(o *options) { o.acceptingInitialSelfLoop = true }
}

// WithResetLevel resets the level to 0 whenever a transition crosses from
// one strongly connected component into another, rather than carrying the
// source level's in-progress scan forward. Requires computing the input's
// SCC decomposition.
func WithResetLevel() Option {
	return func(o *options) { o.resetLevel = true }
}

// WithLevelCache remembers the first level at which each source state was
// reached within its SCC and forces every later re-entry of that state
// (within the same SCC) back to that level, bounding the (state, level)
// blow-up.
func WithLevelCache() Option {
	return func(o *options) { o.levelCache = true }
}

// WithTBA selects the transition-based-acceptance variant: the level-n
// state is never materialized, and the wrap-around is tagged directly onto
// the transition that would have entered it.
func WithTBA() Option {
	return func(o *options) { o.tba = true }
}

// WithSingleStepAdvance disables skipping consecutive hit sets: a
// transition advances the level by at most one position even if the next
// several sets in the order are all already present in its marks.
func WithSingleStepAdvance() Option {
	return func(o *options) { o.skipConsecutiveHits = false }
}

func newOptions(opts []Option) options {
	o := options{skipConsecutiveHits: true}
	for _, apply := range opts {
		apply(&o)
	}

	return o
}
