package automaton_test

import (
	"fmt"

	"github.com/wautomata/omega/acceptance"
	"github.com/wautomata/omega/automaton"
	"github.com/wautomata/omega/bddlabel"
	"github.com/wautomata/omega/mark"
)

// ExampleNew builds a two-state Büchi automaton over one atomic proposition
// p accepting every word with infinitely many p's, then reads back its
// shape through the provided accessors.
func ExampleNew() {
	dict := bddlabel.NewDict()
	a := automaton.New(dict)

	p, err := a.RegisterAP("p")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	pLabel, err := dict.Var(p)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	notP := pLabel.Not()

	a.Graph().NewStates(1)
	accMark, _ := mark.New(0)
	if _, err := a.Graph().NewEdge(0, 0, notP, mark.Empty()); err != nil {
		fmt.Println("error:", err)
		return
	}
	if _, err := a.Graph().NewEdge(0, 1, pLabel, mark.Empty()); err != nil {
		fmt.Println("error:", err)
		return
	}
	if _, err := a.Graph().NewEdge(1, 1, pLabel, accMark); err != nil {
		fmt.Println("error:", err)
		return
	}
	if _, err := a.Graph().NewEdge(1, 0, notP, mark.Empty()); err != nil {
		fmt.Println("error:", err)
		return
	}

	if err := a.SetAcceptance(1, acceptance.Buchi()); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("states:", a.Graph().NumStates())
	fmt.Println("edges:", len(a.Graph().Edges()))
	fmt.Println("acceptance:", a.Acceptance())
	fmt.Println("initial:", a.InitialState())
	// Output:
	// states: 2
	// edges: 4
	// acceptance: Inf(0)
	// initial: 0
}
