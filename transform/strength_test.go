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

// TestDecomposeTerminalSingleStateCompleteSelfLoop covers a lone accepting
// self-loop under plain Büchi whose label is total: inherently weak (its
// only cycle always satisfies the formula) and complete, so it lands in
// terminal (and, by terminal ⊆ weak, in weak too) but never in strong.
func TestDecomposeTerminalSingleStateCompleteSelfLoop(t *testing.T) {
	d := bddlabel.NewDict()
	a := automaton.New(d)
	m0, err := mark.New(0)
	require.NoError(t, err)
	require.NoError(t, a.SetAcceptance(1, acceptance.Buchi()))
	_, err = a.Graph().NewEdge(0, 0, d.True(), m0)
	require.NoError(t, err)

	terminal, weak, strong, err := Decompose(a)
	require.NoError(t, err)
	require.Len(t, terminal.Graph().Edges(), 1)
	require.Len(t, weak.Graph().Edges(), 1)
	require.Len(t, strong.Graph().Edges(), 1)
	assert.False(t, terminal.Graph().Edges()[0].Marks.IsEmpty())
	assert.False(t, weak.Graph().Edges()[0].Marks.IsEmpty())
	assert.True(t, strong.Graph().Edges()[0].Marks.IsEmpty())
}

// TestDecomposeWeakIncompleteComponentExcludedFromTerminal builds a 2-state
// cycle under plain Büchi whose sole mark-0 edge carries a non-total label:
// inherently weak (Büchi's single Inf side admits no rejecting sub-cycle)
// but incomplete, so it lands in weak but not terminal or strong.
func TestDecomposeWeakIncompleteComponentExcludedFromTerminal(t *testing.T) {
	d := bddlabel.NewDict()
	a := automaton.New(d)
	a.Graph().NewStates(1)
	m0, err := mark.New(0)
	require.NoError(t, err)
	require.NoError(t, a.SetAcceptance(1, acceptance.Buchi()))
	ap, err := a.RegisterAP("p")
	require.NoError(t, err)
	p, err := d.Var(ap)
	require.NoError(t, err)
	_, err = a.Graph().NewEdge(0, 1, p, m0)
	require.NoError(t, err)
	_, err = a.Graph().NewEdge(1, 0, d.True(), mark.Empty())
	require.NoError(t, err)

	terminal, weak, strong, err := Decompose(a)
	require.NoError(t, err)
	require.Len(t, terminal.Graph().Edges(), 2)
	require.Len(t, weak.Graph().Edges(), 2)
	require.Len(t, strong.Graph().Edges(), 2)
	for _, e := range terminal.Graph().Edges() {
		assert.True(t, e.Marks.IsEmpty(), "incomplete component must not appear in terminal")
	}
	for _, e := range weak.Graph().Edges() {
		assert.False(t, e.Marks.IsEmpty(), "inherently weak component belongs in weak regardless of completeness")
	}
	for _, e := range strong.Graph().Edges() {
		assert.True(t, e.Marks.IsEmpty())
	}
}

// TestDecomposeStrongComponentHasRejectingCycle reuses the non-Büchi-typable
// 3-state Rabin shape (Fin(0) ∧ Inf(1)) from the RabinToBuchi tests: the
// 0->1->0 sub-cycle is accepting while the 1->2->1 sub-cycle, sharing state
// 1, is rejecting under the same formula. A reachable rejecting cycle
// within an otherwise-accepting component means it is not inherently weak,
// so it belongs only in strong.
func TestDecomposeStrongComponentHasRejectingCycle(t *testing.T) {
	d := bddlabel.NewDict()
	a := automaton.New(d)
	a.Graph().NewStates(2)
	m0, err := mark.New(0)
	require.NoError(t, err)
	m1, err := mark.New(1)
	require.NoError(t, err)
	formula, err := acceptance.Rabin(1)
	require.NoError(t, err)
	require.NoError(t, a.SetAcceptance(2, formula))
	_, err = a.Graph().NewEdge(0, 1, d.True(), m1)
	require.NoError(t, err)
	_, err = a.Graph().NewEdge(1, 0, d.True(), mark.Empty())
	require.NoError(t, err)
	_, err = a.Graph().NewEdge(1, 2, d.True(), m0)
	require.NoError(t, err)
	_, err = a.Graph().NewEdge(2, 1, d.True(), mark.Empty())
	require.NoError(t, err)

	terminal, weak, strong, err := Decompose(a)
	require.NoError(t, err)
	require.Len(t, terminal.Graph().Edges(), 4)
	require.Len(t, weak.Graph().Edges(), 4)
	require.Len(t, strong.Graph().Edges(), 4)
	for _, e := range terminal.Graph().Edges() {
		assert.True(t, e.Marks.IsEmpty())
	}
	for _, e := range weak.Graph().Edges() {
		assert.True(t, e.Marks.IsEmpty())
	}
	for _, e := range strong.Graph().Edges() {
		assert.False(t, e.Marks.IsEmpty(), "the whole component's intra-edges are accepting in the strong output")
	}
}
