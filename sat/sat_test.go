package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSolverSatisfiable(t *testing.T) {
	// (x1 v x2) & (-x1 v x2) & (-x1 v -x2) is satisfiable only by x1=false, x2=true.
	cnf := CNF{
		NumVars: 2,
		Clauses: []Clause{
			{1, 2},
			{-1, 2},
			{-1, -2},
		},
	}

	model, ok, err := NewDefaultSolver().Solve(cnf)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, model, 2)
	assert.Equal(t, -1, model[0])
	assert.Equal(t, 2, model[1])
}

func TestDefaultSolverUnsatisfiable(t *testing.T) {
	// x1 & -x1 is unsatisfiable.
	cnf := CNF{
		NumVars: 1,
		Clauses: []Clause{
			{1},
			{-1},
		},
	}

	model, ok, err := NewDefaultSolver().Solve(cnf)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, model)
}

func TestNewCommandSolverRequiresBothPlaceholders(t *testing.T) {
	_, err := NewCommandSolver("minisat %I")
	assert.ErrorIs(t, err, ErrMissingPlaceholder)

	_, err = NewCommandSolver("minisat %O")
	assert.ErrorIs(t, err, ErrMissingPlaceholder)

	_, err = NewCommandSolver("minisat %I %O")
	assert.NoError(t, err)
}

func TestNewCommandSolverRejectsEmptyTemplate(t *testing.T) {
	_, err := NewCommandSolver("%I%O")
	assert.ErrorIs(t, err, ErrEmptyTemplate)
}

func TestCommandSolverRunsConfiguredCommand(t *testing.T) {
	// A trivial shell pipeline standing in for an external solver: copy the
	// input file to the output file unchanged, then exercise the DIMACS
	// model reader against a fixed solution appended by a second command.
	// Here we only need to confirm the placeholder substitution and process
	// invocation plumbing, so the stand-in command writes a canned solution
	// directly rather than actually solving %I.
	solver, err := NewCommandSolver("printf 's SATISFIABLE\\nv 1 -2 0\\n' > %O; cat %I > /dev/null")
	require.NoError(t, err)

	cnf := CNF{NumVars: 2, Clauses: []Clause{{1, -2}}}
	model, ok, err := solver.Solve(cnf)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Model{1, -2}, model)
}

func TestCommandSolverReportsUnsatisfiable(t *testing.T) {
	solver, err := NewCommandSolver("printf 's UNSATISFIABLE\\n' > %O")
	require.NoError(t, err)

	cnf := CNF{NumVars: 1, Clauses: []Clause{{1}, {-1}}}
	model, ok, err := solver.Solve(cnf)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, model)
}
