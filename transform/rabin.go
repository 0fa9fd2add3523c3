package transform

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/wautomata/omega/acceptance"
	"github.com/wautomata/omega/automaton"
	"github.com/wautomata/omega/internal/emptiness"
	"github.com/wautomata/omega/mark"
	"github.com/wautomata/omega/sccinfo"
)

type rabinClass int

const (
	rabinRejecting rabinClass = iota
	rabinSingleAccepting
	rabinTypable
	rabinNonTypable
)

// RabinToBuchi rewrites a's Rabin-like acceptance condition (a disjunction
// of (Fin(singleton), Inf) pairs) into an equivalent plain-Büchi automaton
// when every strongly connected component of a admits one, per spec.md
// §4.I.
//
// Each SCC is classified independently: rejecting (no accepting cycle, left
// untagged), a trivial single accepting state, Büchi-typable (no cycle is
// rejected by every pair at once, so tagging "some pair's Inf witnessed
// without that pair's Fin" suffices), or non-Büchi-typable. For the last
// case the construction splits the component into one main copy (never
// itself tagged, only a source of nondeterministic jumps) and, per residual
// pair firing in the component, one auxiliary copy that drops any edge
// hitting that pair's Fin and tags edges witnessing that pair's Inf; jumps
// from main into an auxiliary copy are restricted to back-edges (src >=
// dst) to bound the nondeterminism. Per-pair typability failures across
// components are aggregated via go-multierror rather than aborting at the
// first.
//
// A pair's Inf side is checked as a single subset test against one edge's
// marks, so a generalized (non-singleton) Inf is only credited when every
// one of its bits is witnessed on the very same transition, not spread
// across several; see DESIGN.md.
func RabinToBuchi(a *automaton.Automaton, opts ...Option) (*automaton.Automaton, error) {
	o := newOptions(opts)
	formula := a.Acceptance()
	pairs, ok := extractRabinPairs(formula)
	if !ok {
		return nil, ErrNotRabinLike
	}

	info := sccinfo.Build(a)
	if err := sccinfo.RefineUnknown(info, a.Graph(), formula); err != nil {
		return nil, fmt.Errorf("transform: RabinToBuchi: %w", err)
	}

	classes := make([]rabinClass, info.NumSCCs())
	badPairs := make([][]int, info.NumSCCs())
	var result *multierror.Error
	for idx := 0; idx < info.NumSCCs(); idx++ {
		node := info.Node(idx)
		if !node.Accepting {
			classes[idx] = rabinRejecting

			continue
		}
		if len(node.States) == 1 && !node.Trivial {
			classes[idx] = rabinSingleAccepting

			continue
		}

		var bad []int
		for i, pr := range pairs {
			reach, err := emptiness.Reachable(a.Graph(), node.States, acceptance.And(acceptance.Fin(pr.inf), acceptance.Inf(pr.fin)))
			if err != nil {
				result = multierror.Append(result, fmt.Errorf("transform: RabinToBuchi: component %d pair %d: %w", idx, i, err))

				continue
			}
			if reach {
				bad = append(bad, i)
			}
		}
		o.Logger.Trace("transform: RabinToBuchi: classified component", "scc", idx, "states", len(node.States), "bad_pairs", len(bad))

		if len(bad) == 0 {
			classes[idx] = rabinTypable
		} else {
			classes[idx] = rabinNonTypable
			badPairs[idx] = bad
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	out := automaton.New(a.Dict())
	if err := out.SetAcceptance(1, acceptance.Buchi()); err != nil {
		return nil, fmt.Errorf("transform: RabinToBuchi: %w", err)
	}
	if err := out.CopyAPOf(a); err != nil {
		return nil, fmt.Errorf("transform: RabinToBuchi: %w", err)
	}
	buchiMark, _ := mark.New(0)

	type copyKey struct{ state, aux int } // aux == -1 is the main copy
	ids := make(map[copyKey]int)

	intern := func(k copyKey, worklist *[]copyKey) int {
		if id, seen := ids[k]; seen {
			return id
		}
		var id int
		if len(ids) == 0 {
			id = out.InitialState()
		} else {
			id = out.Graph().NewState()
		}
		ids[k] = id
		*worklist = append(*worklist, k)

		return id
	}

	initKey := copyKey{a.InitialState(), -1}
	worklist := []copyKey{}
	src0 := intern(initKey, &worklist)
	if err := out.SetInitialState(src0); err != nil {
		return nil, fmt.Errorf("transform: RabinToBuchi: %w", err)
	}

	for len(worklist) > 0 {
		k := worklist[0]
		worklist = worklist[1:]
		src := ids[k]
		sccIdx, _ := info.SCCOf(k.state)
		class := classes[sccIdx]

		for _, e := range a.Graph().Out(k.state) {
			for _, d := range a.Graph().UnivDests(e) {
				dIdx, _ := info.SCCOf(d)
				if dIdx != sccIdx {
					// Leaving the component: always rejoin the main copy,
					// regardless of which copy we're leaving from.
					dst := intern(copyKey{d, -1}, &worklist)
					if _, err := out.Graph().NewEdge(src, dst, e.Label, mark.Empty()); err != nil {
						return nil, fmt.Errorf("transform: RabinToBuchi: %w", err)
					}

					continue
				}

				switch class {
				case rabinRejecting:
					dst := intern(copyKey{d, k.aux}, &worklist)
					if _, err := out.Graph().NewEdge(src, dst, e.Label, mark.Empty()); err != nil {
						return nil, fmt.Errorf("transform: RabinToBuchi: %w", err)
					}
				case rabinSingleAccepting:
					dst := intern(copyKey{d, -1}, &worklist)
					marks := mark.Empty()
					if d == k.state {
						marks = buchiMark
					}
					if _, err := out.Graph().NewEdge(src, dst, e.Label, marks); err != nil {
						return nil, fmt.Errorf("transform: RabinToBuchi: %w", err)
					}
				case rabinTypable:
					dst := intern(copyKey{d, -1}, &worklist)
					marks := mark.Empty()
					for _, pr := range pairs {
						if pr.inf.Subset(e.Marks) && !pr.fin.Subset(e.Marks) {
							marks = buchiMark

							break
						}
					}
					if _, err := out.Graph().NewEdge(src, dst, e.Label, marks); err != nil {
						return nil, fmt.Errorf("transform: RabinToBuchi: %w", err)
					}
				case rabinNonTypable:
					if k.aux == -1 {
						dst := intern(copyKey{d, -1}, &worklist)
						if _, err := out.Graph().NewEdge(src, dst, e.Label, mark.Empty()); err != nil {
							return nil, fmt.Errorf("transform: RabinToBuchi: %w", err)
						}
						if e.Src >= d {
							for _, i := range badPairs[sccIdx] {
								auxDst := intern(copyKey{d, i}, &worklist)
								if _, err := out.Graph().NewEdge(src, auxDst, e.Label, mark.Empty()); err != nil {
									return nil, fmt.Errorf("transform: RabinToBuchi: %w", err)
								}
							}
						}

						continue
					}

					i := k.aux
					if pairs[i].fin.Subset(e.Marks) {
						continue // dropped: this auxiliary copy never visits this pair's Fin
					}
					dst := intern(copyKey{d, i}, &worklist)
					marks := mark.Empty()
					if pairs[i].inf.Subset(e.Marks) {
						marks = buchiMark
					}
					if _, err := out.Graph().NewEdge(src, dst, e.Label, marks); err != nil {
						return nil, fmt.Errorf("transform: RabinToBuchi: %w", err)
					}
				}
			}
		}
	}

	return out, nil
}
