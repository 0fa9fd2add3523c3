package mark_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wautomata/omega/mark"
)

func TestNewAndHas(t *testing.T) {
	m, err := mark.New(0, 2, 5)
	require.NoError(t, err)
	assert.True(t, m.Has(0))
	assert.True(t, m.Has(2))
	assert.True(t, m.Has(5))
	assert.False(t, m.Has(1))
	assert.Equal(t, 3, m.Count())
}

func TestNewOutOfRange(t *testing.T) {
	_, err := mark.New(mark.Width)
	require.ErrorIs(t, err, mark.ErrOutOfRange)
}

func TestSetClear(t *testing.T) {
	m := mark.Empty()
	m, err := m.Set(3)
	require.NoError(t, err)
	assert.True(t, m.Has(3))
	m = m.Clear(3)
	assert.False(t, m.Has(3))
}

func TestMaxSetAndLowest(t *testing.T) {
	assert.Equal(t, 0, mark.Empty().MaxSet())
	m, _ := mark.New(1, 4)
	assert.Equal(t, 5, m.MaxSet())
	low := m.Lowest()
	assert.True(t, low.Has(1))
	assert.False(t, low.Has(4))
	idx, ok := m.LowestIndex()
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	_, ok = mark.Empty().LowestIndex()
	assert.False(t, ok)
}

func TestAlgebra(t *testing.T) {
	a, _ := mark.New(0, 1, 2)
	b, _ := mark.New(1, 2, 3)
	assert.Equal(t, []int{0, 1, 2, 3}, a.Union(b).Sets())
	assert.Equal(t, []int{1, 2}, a.Intersect(b).Sets())
	assert.Equal(t, []int{0}, a.Diff(b).Sets())
	assert.Equal(t, []int{0, 3}, a.SymDiff(b).Sets())
	assert.True(t, a.Intersect(b).Subset(a))
}

// Universal invariant from spec.md §8: (M ∪ N) ∩ M = M.
func TestUnionIntersectIdentity(t *testing.T) {
	m, _ := mark.New(0, 3, 6)
	n, _ := mark.New(1, 3, 9)
	assert.True(t, m.Union(n).Intersect(m).Equal(m))
}

// Universal invariant: count(M) = count(M∩N) + count(M\N).
func TestCountPartition(t *testing.T) {
	m, _ := mark.New(0, 1, 2, 3)
	n, _ := mark.New(2, 3, 4, 5)
	assert.Equal(t, m.Count(), m.Intersect(n).Count()+m.Diff(n).Count())
}

func TestComplement(t *testing.T) {
	m, _ := mark.New(0, 2)
	c := m.Complement(4)
	assert.Equal(t, []int{1, 3}, c.Sets())
	assert.True(t, m.Union(c).Equal(func() mark.Mark { f, _ := mark.New(0, 1, 2, 3); return f }()))
}

func TestStripSingleton(t *testing.T) {
	m, _ := mark.New(0, 2, 4)
	mask, _ := mark.New(2)
	stripped := m.Strip(mask)
	// index 0 stays 0, index 2 removed, index 4 becomes 3 (shifted down by one).
	assert.Equal(t, []int{0, 3}, stripped.Sets())
}

// Universal invariant: strip(M,mask) ∪ strip(N,mask) = strip(M∪N,mask).
func TestStripDistributesOverUnion(t *testing.T) {
	m, _ := mark.New(0, 2, 4)
	n, _ := mark.New(1, 2, 5)
	mask, _ := mark.New(2)
	lhs := m.Strip(mask).Union(n.Strip(mask))
	rhs := m.Union(n).Strip(mask)
	assert.True(t, lhs.Equal(rhs))
}

func TestShift(t *testing.T) {
	m, _ := mark.New(0, 1)
	shifted := m.ShiftLeft(3)
	assert.Equal(t, []int{3, 4}, shifted.Sets())
	assert.True(t, shifted.ShiftRight(3).Equal(m))
}

func TestOrderingIsLexicographicOnBits(t *testing.T) {
	a, _ := mark.New(0)
	b, _ := mark.New(1)
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
}

func TestString(t *testing.T) {
	m, _ := mark.New(0, 2, 10)
	assert.Equal(t, "{0,2,10}", m.String())
	assert.Equal(t, "{}", mark.Empty().String())
}
