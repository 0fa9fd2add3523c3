package acceptance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConstants(t *testing.T) {
	f, err := Parse("t")
	require.NoError(t, err)
	assert.True(t, f.IsT())

	f, err = Parse(" f ")
	require.NoError(t, err)
	assert.True(t, f.IsF())
}

func TestParsePrecedenceAndBindsTighterThanOr(t *testing.T) {
	f, err := Parse("Inf(0) | Inf(1) & Fin(2)")
	require.NoError(t, err)
	want := Or(Inf(m(t, 0)), And(Inf(m(t, 1)), Fin(m(t, 2))))
	assert.True(t, f.Equal(want))
}

func TestParseParentheses(t *testing.T) {
	f, err := Parse("(Inf(0) | Inf(1)) & Fin(2)")
	require.NoError(t, err)
	want := And(Or(Inf(m(t, 0)), Inf(m(t, 1))), Fin(m(t, 2)))
	assert.True(t, f.Equal(want))
}

func TestParseRejectsNegation(t *testing.T) {
	_, err := Parse("Fin(!0)")
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
}

func TestParseRejectsTrailingGarbage(t *testing.T) {
	_, err := Parse("t t")
	require.Error(t, err)
}

func TestParsePrinterRoundTrip(t *testing.T) {
	forms := []*Formula{
		T(), F(),
		Inf(m(t, 3)),
		Fin(m(t, 4)),
		And(Inf(m(t, 0)), Fin(m(t, 1))),
		Or(Inf(m(t, 0)), Fin(m(t, 1))),
		And(Or(Inf(m(t, 0)), Inf(m(t, 1))), Fin(m(t, 2))),
		Inf(m(t, 0, 1)),
		Fin(m(t, 0, 1)),
	}
	for _, f := range forms {
		s := f.String()
		reparsed, err := Parse(s)
		require.NoError(t, err, "string=%s", s)
		assert.True(t, f.Equal(reparsed), "string=%s reparsed=%s", s, reparsed)
	}
}
