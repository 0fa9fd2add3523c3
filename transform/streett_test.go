package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wautomata/omega/acceptance"
	"github.com/wautomata/omega/automaton"
	"github.com/wautomata/omega/bddlabel"
	"github.com/wautomata/omega/mark"
)

func TestStreettToGeneralizedBuchiRejectsNonStreett(t *testing.T) {
	a := automaton.New(bddlabel.NewDict())
	formula, err := acceptance.Rabin(1)
	require.NoError(t, err)
	require.NoError(t, a.SetAcceptance(2, formula))

	_, err = StreettToGeneralizedBuchi(a)
	assert.ErrorIs(t, err, ErrNotStreettLike)
}

// TestStreettToGeneralizedBuchiSinglePairAlwaysDischarged builds a one-state
// self-loop whose every transition visits Inf(1) and never Fin(0) (a single
// Streett pair Fin(0) ∨ Inf(1)): Fin(0) never fires, so the pending index 0
// never enters P, and the output's sole generalized-Büchi tag must be set on
// every edge (vacuously satisfied throughout).
func TestStreettToGeneralizedBuchiSinglePairAlwaysDischarged(t *testing.T) {
	d := bddlabel.NewDict()
	a := automaton.New(d)
	fin0, err := mark.New(0)
	require.NoError(t, err)
	inf1, err := mark.New(1)
	require.NoError(t, err)
	formula := acceptance.And(acceptance.Or(acceptance.Fin(fin0), acceptance.Inf(inf1)))
	require.NoError(t, a.SetAcceptance(2, formula))
	_, err = a.Graph().NewEdge(0, 0, d.True(), inf1)
	require.NoError(t, err)

	out, err := StreettToGeneralizedBuchi(a, WithMinPairs(0))
	require.NoError(t, err)
	assert.Equal(t, 1, out.NumSets())
	require.Len(t, out.Graph().Edges(), 1)
	tag0, err := mark.New(0)
	require.NoError(t, err)
	assert.True(t, out.Graph().Edges()[0].Marks.Equal(tag0))
}

// TestStreettToGeneralizedBuchiPendingPairNeedsDischarge builds a two-state
// cycle where state 0 -> 1 fires Fin(0) (entering pending) and 1 -> 0 never
// fires Inf(1) (never discharging it). The pending set is empty before pair
// 0 is first owed, so the very first transition gets a vacuous free pass,
// but once pair 0 is pending it can never again be discharged: the
// construction must settle into a recurring two-state loop whose edges are
// both untagged, with only that one transient edge ever tagged.
func TestStreettToGeneralizedBuchiPendingPairNeedsDischarge(t *testing.T) {
	d := bddlabel.NewDict()
	a := automaton.New(d)
	a.Graph().NewStates(1)
	fin0, err := mark.New(0)
	require.NoError(t, err)
	inf1, err := mark.New(1)
	require.NoError(t, err)
	formula := acceptance.And(acceptance.Or(acceptance.Fin(fin0), acceptance.Inf(inf1)))
	require.NoError(t, a.SetAcceptance(2, formula))
	_, err = a.Graph().NewEdge(0, 1, d.True(), fin0)
	require.NoError(t, err)
	_, err = a.Graph().NewEdge(1, 0, d.True(), mark.Empty())
	require.NoError(t, err)

	out, err := StreettToGeneralizedBuchi(a, WithMinPairs(0))
	require.NoError(t, err)
	assert.Equal(t, 3, out.Graph().NumStates())
	tagged, untagged := 0, 0
	for _, e := range out.Graph().Edges() {
		if e.Marks.IsEmpty() {
			untagged++
		} else {
			tagged++
		}
	}
	assert.Equal(t, 1, tagged, "only the transient not-yet-owed transition gets a free pass")
	assert.Equal(t, 2, untagged, "the recurring loop never discharges pair 0 once it's pending")
}

// TestStreettToGeneralizedBuchiStandaloneInfStaysPermanentlyPending builds a
// one-state automaton whose acceptance is a bare Inf(0) conjunct with no
// paired Fin. Per spec.md §4.I, a standalone Inf never leaves the pending
// set once entered, so its generalized-Büchi tag must fire only on the
// individual edges that actually witness Inf(0) -- not unconditionally on
// every edge from the first witness onward, which was the pre-fix (buggy)
// behavior.
func TestStreettToGeneralizedBuchiStandaloneInfStaysPermanentlyPending(t *testing.T) {
	d := bddlabel.NewDict()
	a := automaton.New(d)
	inf0, err := mark.New(0)
	require.NoError(t, err)
	formula := acceptance.And(acceptance.Inf(inf0))
	require.NoError(t, a.SetAcceptance(1, formula))
	_, err = a.Graph().NewEdge(0, 0, d.True(), inf0)
	require.NoError(t, err)
	_, err = a.Graph().NewEdge(0, 0, d.True(), mark.Empty())
	require.NoError(t, err)

	out, err := StreettToGeneralizedBuchi(a, WithMinPairs(0))
	require.NoError(t, err)
	assert.Equal(t, 1, out.Graph().NumStates(), "the pending set never changes, so no new state is ever split off")
	require.Len(t, out.Graph().Edges(), 2)
	tag0, err := mark.New(0)
	require.NoError(t, err)
	var tagged, untagged int
	for _, e := range out.Graph().Edges() {
		if e.Marks.Equal(tag0) {
			tagged++
		} else if e.Marks.IsEmpty() {
			untagged++
		}
	}
	assert.Equal(t, 1, tagged, "only the edge that actually witnesses Inf(0) gets the tag")
	assert.Equal(t, 1, untagged, "the edge that never witnesses Inf(0) must stay untagged, not vacuously satisfied forever")
}

// TestStreettToGeneralizedBuchiBelowThresholdReturnsInputUnchanged exercises
// spec.md §6's minimum-pair threshold: a single-pair formula, with the
// default threshold of 3, must be handed back untouched rather than
// converted.
func TestStreettToGeneralizedBuchiBelowThresholdReturnsInputUnchanged(t *testing.T) {
	d := bddlabel.NewDict()
	a := automaton.New(d)
	fin0, err := mark.New(0)
	require.NoError(t, err)
	inf1, err := mark.New(1)
	require.NoError(t, err)
	formula := acceptance.And(acceptance.Or(acceptance.Fin(fin0), acceptance.Inf(inf1)))
	require.NoError(t, a.SetAcceptance(2, formula))
	_, err = a.Graph().NewEdge(0, 0, d.True(), inf1)
	require.NoError(t, err)

	out, err := StreettToGeneralizedBuchi(a)
	require.NoError(t, err)
	assert.Same(t, a, out)
}
