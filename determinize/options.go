package determinize

import (
	"github.com/hashicorp/go-hclog"
	"github.com/wautomata/omega/bddlabel"
)

// options carries Determinize's construction knobs.
type options struct {
	useSCC       bool
	useStutter   bool
	implications map[int]bddlabel.Label
	logger       hclog.Logger
}

// Option configures a Determinize call.
type Option func(*options)

// WithoutSCCAwareness disables the "entering an accepting/non-accepting
// SCC seeds or discards braces" shortcut, falling back to treating every
// transition as intra-component. Mostly useful for comparing output size
// against the SCC-aware default.
func WithoutSCCAwareness() Option {
	return func(o *options) { o.useSCC = false }
}

// WithStutterInvariance enables the repeat-until-cycle optimisation of
// spec.md §4.J: when the source automaton is flagged stutter-invariant,
// each output transition is computed by repeating the successor step on
// the same letter until the Safra state recurs, then emitting the minimum
// color seen along that cycle and its lexicographically smallest state.
func WithStutterInvariance() Option {
	return func(o *options) { o.useStutter = true }
}

// WithImplications supplies a pre-computed language-implication witness
// per input state (state s implies state t's language iff
// implications[s] ⇒ implications[t] as Boolean functions), enabling the
// simulation-merge step. Determinize does not compute this vector itself;
// see DESIGN.md for why it is accepted as an external input instead.
func WithImplications(implications map[int]bddlabel.Label) Option {
	return func(o *options) { o.implications = implications }
}

// WithLogger attaches a logger for Trace-level progress notes.
func WithLogger(l hclog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func newOptions(opts []Option) options {
	o := options{useSCC: true, logger: hclog.NewNullLogger()}
	for _, apply := range opts {
		apply(&o)
	}

	return o
}
