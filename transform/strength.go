package transform

import (
	"fmt"

	"github.com/wautomata/omega/acceptance"
	"github.com/wautomata/omega/automaton"
	"github.com/wautomata/omega/bddlabel"
	"github.com/wautomata/omega/internal/emptiness"
	"github.com/wautomata/omega/mark"
	"github.com/wautomata/omega/sccinfo"
	"github.com/wautomata/omega/twagraph"
)

type strengthClass int

const (
	strengthNone strengthClass = iota
	strengthTerminal
	strengthWeak
	strengthStrong
)

// Decompose partitions a by SCC strength: terminal gets acceptance
// restricted to components that are inherently weak (every cycle agrees on
// the acceptance verdict) and complete (every state's in-component
// out-labels cover every letter); weak additionally includes every other
// inherently-weak accepting component; strong gets every accepting
// component that is not inherently weak. All three share a's exact
// reachable structure; only the acceptance condition differs, built as a
// fresh single Inf mark tagging precisely the intra-component edges of
// qualifying components — since a strongly connected component is maximal,
// tagging its own edges accepting exactly restricts acceptance to runs
// whose recurring part never leaves that component.
func Decompose(a *automaton.Automaton) (terminal, weak, strong *automaton.Automaton, err error) {
	info := sccinfo.Build(a)
	if rerr := sccinfo.RefineUnknown(info, a.Graph(), a.Acceptance()); rerr != nil {
		return nil, nil, nil, fmt.Errorf("transform: Decompose: %w", rerr)
	}

	classes, cerr := classifyStrength(a, info)
	if cerr != nil {
		return nil, nil, nil, fmt.Errorf("transform: Decompose: %w", cerr)
	}

	terminal, err = restrictToClass(a, info, func(i int) bool { return classes[i] == strengthTerminal })
	if err != nil {
		return nil, nil, nil, fmt.Errorf("transform: Decompose: %w", err)
	}
	weak, err = restrictToClass(a, info, func(i int) bool {
		return classes[i] == strengthTerminal || classes[i] == strengthWeak
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("transform: Decompose: %w", err)
	}
	strong, err = restrictToClass(a, info, func(i int) bool { return classes[i] == strengthStrong })
	if err != nil {
		return nil, nil, nil, fmt.Errorf("transform: Decompose: %w", err)
	}

	return terminal, weak, strong, nil
}

func classifyStrength(a *automaton.Automaton, info *sccinfo.Info) ([]strengthClass, error) {
	g := a.Graph()
	formula := a.Acceptance()
	comp := formula.Complement()
	classes := make([]strengthClass, info.NumSCCs())

	for idx := 0; idx < info.NumSCCs(); idx++ {
		node := info.Node(idx)
		if !node.Accepting {
			classes[idx] = strengthNone

			continue
		}

		hasRejectingCycle, err := emptiness.Reachable(g, node.States, comp)
		if err != nil {
			return nil, err
		}
		if hasRejectingCycle {
			classes[idx] = strengthStrong

			continue
		}

		member := make(map[int]bool, len(node.States))
		for _, s := range node.States {
			member[s] = true
		}
		if allStatesComplete(a.Dict(), g, member, node.States) {
			classes[idx] = strengthTerminal
		} else {
			classes[idx] = strengthWeak
		}
	}

	return classes, nil
}

func allStatesComplete(d *bddlabel.Dict, g *twagraph.Graph, member map[int]bool, states []int) bool {
	for _, s := range states {
		if !isComplete(d, g, member, s) {
			return false
		}
	}

	return true
}

// isComplete reports whether s's out-edges that stay within member cover
// every letter (their labels disjoin to true).
func isComplete(d *bddlabel.Dict, g *twagraph.Graph, member map[int]bool, s int) bool {
	union := d.False()
	has := false
	for _, e := range g.Out(s) {
		allIn := true
		for _, dd := range g.UnivDests(e) {
			if !member[dd] {
				allIn = false

				break
			}
		}
		if !allIn {
			continue
		}
		u, err := union.Or(e.Label)
		if err != nil {
			return false
		}
		union = u
		has = true
	}

	return has && union.IsTrue()
}

// restrictToClass copies a's graph 1:1 and replaces its acceptance with a
// fresh single Inf mark, tagging exactly the edges that stay within a
// component for which qualifies returns true.
func restrictToClass(a *automaton.Automaton, info *sccinfo.Info, qualifies func(int) bool) (*automaton.Automaton, error) {
	out := automaton.New(a.Dict())
	if err := out.SetAcceptance(1, acceptance.Buchi()); err != nil {
		return nil, err
	}
	if err := out.CopyAPOf(a); err != nil {
		return nil, err
	}

	n := a.Graph().NumStates()
	if n > 1 {
		out.Graph().NewStates(n - 1)
	}
	if err := out.SetInitialState(a.InitialState()); err != nil {
		return nil, err
	}

	acceptMark, _ := mark.New(0)
	for s := 0; s < n; s++ {
		srcIdx, okS := info.SCCOf(s)
		for _, e := range a.Graph().Out(s) {
			dests := a.Graph().UnivDests(e)
			intra := okS
			for _, d := range dests {
				dIdx, okD := info.SCCOf(d)
				if !okD || dIdx != srcIdx {
					intra = false

					break
				}
			}

			marks := mark.Empty()
			if intra && qualifies(srcIdx) {
				marks = acceptMark
			}

			if len(dests) == 1 {
				if _, err := out.Graph().NewEdge(s, dests[0], e.Label, marks); err != nil {
					return nil, err
				}
			} else if _, err := out.Graph().NewUnivEdge(s, dests, e.Label, marks); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
