package determinize

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wautomata/omega/acceptance"
	"github.com/wautomata/omega/automaton"
	"github.com/wautomata/omega/bddlabel"
	"github.com/wautomata/omega/mark"
)

// TestDeterminizeSpecExample mirrors spec.md §4.J's worked example: a
// 2-state non-deterministic Büchi automaton (s0 initial, s0--a-->s0,
// s0--b{0}-->s0, s0--b-->s1, s1--a-->s1, acceptance Inf(0)) determinizes
// into a 3-state parity automaton accepting exactly the words with
// infinitely many b's. The two symbols are encoded as a single shared AP p
// (a = ¬p, b = p) so the alphabet partition collapses to exactly {a, b}.
func TestDeterminizeSpecExample(t *testing.T) {
	d := bddlabel.NewDict()
	a := automaton.New(d)
	apIdx, err := a.RegisterAP("p")
	require.NoError(t, err)
	p, err := d.Var(apIdx)
	require.NoError(t, err)
	notP := p.Not()

	require.NoError(t, a.SetAcceptance(1, acceptance.Inf(mustMark(t, 0))))
	a.Graph().NewState() // s1

	m0 := mustMark(t, 0)
	_, err = a.Graph().NewEdge(0, 0, notP, mark.Empty())
	require.NoError(t, err)
	_, err = a.Graph().NewEdge(0, 0, p, m0)
	require.NoError(t, err)
	_, err = a.Graph().NewEdge(0, 1, p, mark.Empty())
	require.NoError(t, err)
	_, err = a.Graph().NewEdge(1, 1, notP, mark.Empty())
	require.NoError(t, err)

	out, err := Determinize(a)
	require.NoError(t, err)

	assert.Equal(t, 3, out.Graph().NumStates())
	assert.Equal(t, automaton.True, out.Flags().Deterministic)
	assert.True(t, out.Acceptance().IsParity(false, true, true))
	// The breakpoint construction must land on this exact formula shape
	// (not just something semantically parity-equivalent); cmp.Diff gives a
	// structural diff instead of a bare true/false on mismatch.
	if diff := cmp.Diff(acceptance.ParityMin(2, true), out.Acceptance()); diff != "" {
		t.Errorf("acceptance formula mismatch (-want +got):\n%s", diff)
	}

	// every state must have exactly one outgoing edge per letter (a, b)
	for s := 0; s < out.Graph().NumStates(); s++ {
		assert.Len(t, out.Graph().Out(s), 2, "state %d", s)
	}

	// exactly one edge in the whole automaton carries a non-empty mark
	// (the witness that b recurs), per the hand-traced construction.
	marked := 0
	for s := 0; s < out.Graph().NumStates(); s++ {
		for _, e := range out.Graph().Out(s) {
			if !e.Marks.IsEmpty() {
				marked++
			}
		}
	}
	assert.Equal(t, 1, marked)
}

// TestDeterminizeAlreadyDeterministicIsReturnedUnchanged covers spec.md
// §4.J's "determinization on an already-deterministic input returns the
// input unchanged" edge case.
func TestDeterminizeAlreadyDeterministicIsReturnedUnchanged(t *testing.T) {
	d := bddlabel.NewDict()
	a := automaton.New(d)
	a.SetDeterministic(automaton.True)

	out, err := Determinize(a)
	require.NoError(t, err)
	assert.Same(t, a, out)
}

// TestDeterminizeEmptyLanguageYieldsSingleRejectingState covers spec.md
// §4.J's "pre-simplifications produce an empty language" edge case: a
// self-loop that can never satisfy Inf(0) because it never carries mark 0.
func TestDeterminizeEmptyLanguageYieldsSingleRejectingState(t *testing.T) {
	d := bddlabel.NewDict()
	a := automaton.New(d)
	require.NoError(t, a.SetAcceptance(1, acceptance.Inf(mustMark(t, 0))))
	_, err := a.Graph().NewEdge(0, 0, d.True(), mark.Empty())
	require.NoError(t, err)

	out, err := Determinize(a)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Graph().NumStates())
	assert.True(t, out.Acceptance().IsF())
	assert.Equal(t, automaton.True, out.Flags().Deterministic)
}

// TestDeterminizeWithoutSCCAwarenessStillAccepts checks that disabling the
// SCC-boundary brace shortcut still produces a correct (if larger or
// differently shaped) deterministic automaton for the same example.
func TestDeterminizeWithoutSCCAwarenessStillAccepts(t *testing.T) {
	d := bddlabel.NewDict()
	a := automaton.New(d)
	apIdx, err := a.RegisterAP("p")
	require.NoError(t, err)
	p, err := d.Var(apIdx)
	require.NoError(t, err)
	notP := p.Not()

	require.NoError(t, a.SetAcceptance(1, acceptance.Inf(mustMark(t, 0))))
	a.Graph().NewState()
	m0 := mustMark(t, 0)
	_, err = a.Graph().NewEdge(0, 0, notP, mark.Empty())
	require.NoError(t, err)
	_, err = a.Graph().NewEdge(0, 0, p, m0)
	require.NoError(t, err)
	_, err = a.Graph().NewEdge(0, 1, p, mark.Empty())
	require.NoError(t, err)
	_, err = a.Graph().NewEdge(1, 1, notP, mark.Empty())
	require.NoError(t, err)

	out, err := Determinize(a, WithoutSCCAwareness())
	require.NoError(t, err)
	assert.Equal(t, automaton.True, out.Flags().Deterministic)
	assert.True(t, out.Graph().NumStates() >= 1)
}

func mustMark(t *testing.T, indices ...int) mark.Mark {
	t.Helper()
	m, err := mark.New(indices...)
	require.NoError(t, err)

	return m
}
