package determinize_test

import (
	"fmt"

	"github.com/wautomata/omega/acceptance"
	"github.com/wautomata/omega/automaton"
	"github.com/wautomata/omega/bddlabel"
	"github.com/wautomata/omega/determinize"
	"github.com/wautomata/omega/mark"
)

// ExampleDeterminize mirrors spec.md §4.J's worked example: a 2-state
// non-deterministic Büchi automaton over a single atomic proposition p
// (a = ¬p, b = p), with a self-loop on b at s0 marked {0}, determinizes
// into a 3-state parity automaton accepting exactly the words with
// infinitely many b's.
func ExampleDeterminize() {
	d := bddlabel.NewDict()
	a := automaton.New(d)
	apIdx, _ := a.RegisterAP("p")
	p, _ := d.Var(apIdx)
	notP := p.Not()

	m0, _ := mark.New(0)
	_ = a.SetAcceptance(1, acceptance.Inf(m0))
	a.Graph().NewState() // s1

	_, _ = a.Graph().NewEdge(0, 0, notP, mark.Empty())
	_, _ = a.Graph().NewEdge(0, 0, p, m0)
	_, _ = a.Graph().NewEdge(0, 1, p, mark.Empty())
	_, _ = a.Graph().NewEdge(1, 1, notP, mark.Empty())

	out, err := determinize.Determinize(a)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("deterministic:", out.Flags().Deterministic == automaton.True)
	fmt.Println("states:", out.Graph().NumStates())
	fmt.Println("is parity:", out.Acceptance().IsParity(false, true, true))
	// Output:
	// deterministic: true
	// states: 3
	// is parity: true
}
