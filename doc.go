// Package omega is an in-memory toolkit for building, transforming, and
// deciding properties of ω-automata in Go.
//
// It brings together:
//
//   - mark: bitset-backed acceptance-set membership vectors
//   - acceptance: boolean formulas over Inf/Fin acceptance atoms, with
//     constructors for the common Büchi/Rabin/Streett/parity shapes
//   - bddlabel: a BDD-backed algebra for edge labels over atomic propositions
//   - twagraph: the labelled transition digraph shared by every automaton
//   - automaton: the automaton object tying a digraph to an acceptance formula
//   - sccinfo: strongly-connected-component analysis with per-SCC
//     accepting/rejecting classification
//   - product: synchronous product of two automata
//   - degen: degeneralization from generalized Büchi to plain Büchi
//   - transform: acceptance-condition rewrites (Streett to generalized Büchi,
//     Rabin to Büchi, Fin elimination) and strength decomposition
//   - determinize: Safra-style determinization to deterministic parity
//   - sat: a pluggable SAT-solver contract, answered in-process or by an
//     external command
//
// Quick example: build a 2-state Büchi automaton over one atomic
// proposition and read its acceptance condition back.
//
//	dict := bddlabel.NewDict()
//	a := automaton.New(dict)
//	apIdx, _ := a.RegisterAP("p")
//	p, _ := dict.Var(apIdx)
//	a.Graph().NewState()
//	m0, _ := mark.New(0)
//	a.Graph().NewEdge(0, 1, p, mark.Empty())
//	a.Graph().NewEdge(1, 1, p, m0)
//	a.SetAcceptance(1, acceptance.Buchi())
//
// See the godoc examples of mark, acceptance, automaton, determinize, and
// sat for focused usage of a single concern.
package omega
