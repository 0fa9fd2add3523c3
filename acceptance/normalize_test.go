package acceptance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wautomata/omega/mark"
)

func allSubsets(t *testing.T, n int) []mark.Mark {
	t.Helper()
	var out []mark.Mark
	for i := 0; i < (1 << uint(n)); i++ {
		var v mark.Mark
		for bit := 0; bit < n; bit++ {
			if i&(1<<uint(bit)) != 0 {
				v, _ = v.Set(bit)
			}
		}
		out = append(out, v)
	}

	return out
}

func TestToDNFIsEquivalentAndInShape(t *testing.T) {
	f := And(Or(Inf(m(t, 0)), Inf(m(t, 1))), Fin(m(t, 2)))
	dnf, err := f.ToDNF()
	require.NoError(t, err)
	assert.True(t, dnf.IsDNF())
	for _, v := range allSubsets(t, 3) {
		assert.Equal(t, f.Accepting(v), dnf.Accepting(v), "v=%s", v)
	}
}

func TestToCNFIsEquivalentAndInShape(t *testing.T) {
	f := Or(And(Inf(m(t, 0)), Fin(m(t, 1))), Inf(m(t, 2)))
	cnf, err := f.ToCNF()
	require.NoError(t, err)
	assert.True(t, cnf.IsCNF())
	for _, v := range allSubsets(t, 3) {
		assert.Equal(t, f.Accepting(v), cnf.Accepting(v), "v=%s", v)
	}
}

func TestUnsatMarkTautology(t *testing.T) {
	unsat, _, err := T().UnsatMark()
	require.NoError(t, err)
	assert.False(t, unsat)
}

func TestUnsatMarkFalsifiable(t *testing.T) {
	f := And(Inf(m(t, 0)), Fin(m(t, 0)))
	unsat, v, err := f.UnsatMark()
	require.NoError(t, err)
	require.True(t, unsat)
	assert.False(t, f.Accepting(v))
}

func TestStripRemovesAndShifts(t *testing.T) {
	f := And(Inf(m(t, 0)), Fin(m(t, 2)))
	stripped := f.Strip(m(t, 0), false)
	// Inf(0) stripped of {0} and not "missing" collapses to t (set assumed
	// permanently present), leaving just Fin({2} shifted down to {1}).
	assert.True(t, stripped.Equal(Fin(m(t, 1))))
}

func TestStripMissingCollapsesOverlappingInf(t *testing.T) {
	f := Inf(m(t, 0, 1))
	stripped := f.Strip(m(t, 0), true)
	assert.True(t, stripped.IsF())
}

func TestMissingOnConstants(t *testing.T) {
	clauses, err := T().Missing(mark.Empty(), true)
	require.NoError(t, err)
	assert.Nil(t, clauses)

	clauses, err = F().Missing(mark.Empty(), true)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{}}, clauses)
}
