package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wautomata/omega/acceptance"
	"github.com/wautomata/omega/bddlabel"
	"github.com/wautomata/omega/mark"
)

func TestValidateAcceptsFreshAutomaton(t *testing.T) {
	a := New(bddlabel.NewDict())
	assert.NoError(t, a.Validate())
}

func TestValidateCatchesOutOfRangeInitialState(t *testing.T) {
	a := New(bddlabel.NewDict())
	a.initial = 99
	err := a.Validate()
	assert.ErrorIs(t, err, ErrStateOutOfRange)
}

func TestValidateCatchesAcceptanceSetBeyondUniverse(t *testing.T) {
	a := New(bddlabel.NewDict())
	m, err := mark.New(3)
	require.NoError(t, err)
	require.NoError(t, a.SetAcceptance(1, acceptance.Inf(m)))

	err = a.Validate()
	assert.ErrorIs(t, err, ErrAcceptanceSetOutOfRange)
}

func TestValidateCatchesDictMismatchOnEdgeLabel(t *testing.T) {
	a := New(bddlabel.NewDict())
	other := bddlabel.NewDict()
	a.Graph().NewStates(1)
	_, err := a.Graph().NewEdge(0, 1, other.True(), mark.Empty())
	require.NoError(t, err)

	err = a.Validate()
	assert.ErrorIs(t, err, ErrDictMismatch)
}

func TestValidateAggregatesMultipleFailures(t *testing.T) {
	a := New(bddlabel.NewDict())
	a.initial = 99
	other := bddlabel.NewDict()
	a.Graph().NewStates(1)
	_, err := a.Graph().NewEdge(0, 1, other.True(), mark.Empty())
	require.NoError(t, err)

	err = a.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStateOutOfRange)
	assert.ErrorIs(t, err, ErrDictMismatch)
}
