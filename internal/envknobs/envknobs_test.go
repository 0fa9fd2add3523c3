package envknobs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	resetForTest()
	assert.Equal(t, DefaultStreettMinPairs, StreettMinPairs())
	assert.Equal(t, DefaultStutterCheck, StutterCheck())
	assert.Equal(t, "", DotExtra())
}

func TestOverridesFromEnvironment(t *testing.T) {
	t.Setenv("OMEGA_STREETT_MIN_PAIRS", "7")
	t.Setenv("OMEGA_STUTTER_CHECK", "2")
	t.Setenv("OMEGA_DOT_EXTRA", "built-by-ci")
	resetForTest()

	assert.Equal(t, 7, StreettMinPairs())
	assert.Equal(t, 2, StutterCheck())
	assert.Equal(t, "built-by-ci", DotExtra())
}

func TestOutOfRangeStutterCheckFallsBackToDefault(t *testing.T) {
	t.Setenv("OMEGA_STUTTER_CHECK", "42")
	resetForTest()

	assert.Equal(t, DefaultStutterCheck, StutterCheck())
}

func TestUnparsableValueFallsBackToDefault(t *testing.T) {
	t.Setenv("OMEGA_STREETT_MIN_PAIRS", "not-a-number")
	resetForTest()

	assert.Equal(t, DefaultStreettMinPairs, StreettMinPairs())
}
