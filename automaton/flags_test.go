package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetTerminalPropagatesToWeakAndInherentlyWeak(t *testing.T) {
	var f Flags
	f.SetTerminal(True)
	assert.Equal(t, True, f.Terminal)
	assert.Equal(t, True, f.Weak)
	assert.Equal(t, True, f.InherentlyWeak)
}

func TestSetWeakFalsePropagatesToTerminal(t *testing.T) {
	f := Flags{Terminal: True, Weak: True, InherentlyWeak: True}
	f.SetWeak(False)
	assert.Equal(t, False, f.Weak)
	assert.Equal(t, False, f.Terminal)
}

func TestSetInherentlyWeakFalsePropagatesToWeakAndTerminal(t *testing.T) {
	f := Flags{Terminal: True, Weak: True, InherentlyWeak: True}
	f.SetInherentlyWeak(False)
	assert.Equal(t, False, f.InherentlyWeak)
	assert.Equal(t, False, f.Weak)
	assert.Equal(t, False, f.Terminal)
}

func TestSetDeterministicPropagatesToUnambiguous(t *testing.T) {
	var f Flags
	f.SetDeterministic(True)
	assert.Equal(t, True, f.Deterministic)
	assert.Equal(t, True, f.Unambiguous)
}

func TestSetUnambiguousFalsePropagatesToDeterministic(t *testing.T) {
	f := Flags{Deterministic: True, Unambiguous: True}
	f.SetUnambiguous(False)
	assert.Equal(t, False, f.Unambiguous)
	assert.Equal(t, False, f.Deterministic)
}

func TestIndependentFlagsDoNotCascade(t *testing.T) {
	var f Flags
	f.SetStateBasedAcceptance(True)
	f.SetStutterInvariant(False)
	assert.Equal(t, Unknown, f.Terminal)
	assert.Equal(t, Unknown, f.Deterministic)
}

func TestTriString(t *testing.T) {
	assert.Equal(t, "true", True.String())
	assert.Equal(t, "false", False.String())
	assert.Equal(t, "unknown", Unknown.String())
}
