package transform

import (
	"fmt"

	"github.com/wautomata/omega/acceptance"
	"github.com/wautomata/omega/automaton"
	"github.com/wautomata/omega/mark"
)

// EliminateFin rewrites a's acceptance condition, which may freely mix
// Fin and Inf, into an equivalent plain-Büchi automaton via the standard
// Fin-elimination construction: DNF-split the formula (each disjunct is an
// alternative way to accept), then build one main copy, never itself
// dropping edges, plus one auxiliary clone per term with a non-empty Fin
// that drops edges hitting that term's Fin and tags edges witnessing that
// term's Inf. Since the DNF's disjuncts are alternatives rather than
// simultaneous obligations, every clone shares a single Büchi mark rather
// than one generalized-Büchi set per term — the same reasoning that gives
// RabinToBuchi a single shared mark across pairs, here generalized from
// Rabin pairs to arbitrary DNF terms. A term with an empty Fin can never be
// invalidated by anything recurring, so it is tagged directly in the main
// copy; every other term is only ever tagged once a run has committed to
// that term's own clone, where its Fin is guaranteed gone for good.
//
// Clones are built over the whole reachable automaton rather than scoped to
// the minimal affected SCC per term — simpler to construct via the same
// main/clone work-list shape used throughout this package, at the cost of
// some avoidable extra states; see DESIGN.md. A term whose combined Inf
// mark has more than one bit is tagged only when a single transition
// carries every one of those bits at once; see DESIGN.md for why this
// mirrors the same restriction RabinToBuchi and StreettToGeneralizedBuchi
// already make for generalized pairs.
func EliminateFin(a *automaton.Automaton, opts ...Option) (*automaton.Automaton, error) {
	o := newOptions(opts)
	formula := a.Acceptance()
	dnf, err := formula.ToDNF()
	if err != nil {
		return nil, fmt.Errorf("transform: EliminateFin: %w", err)
	}
	terms := dnfTerms(dnf)
	numTerms := len(terms)

	out := automaton.New(a.Dict())
	var acc *acceptance.Formula
	numSets := 0
	if numTerms == 0 {
		acc = acceptance.F()
	} else {
		acc = acceptance.Buchi()
		numSets = 1
	}
	if err := out.SetAcceptance(numSets, acc); err != nil {
		return nil, fmt.Errorf("transform: EliminateFin: %w", err)
	}
	if err := out.CopyAPOf(a); err != nil {
		return nil, fmt.Errorf("transform: EliminateFin: %w", err)
	}
	buchiMark, _ := mark.New(0)

	type copyKey struct{ state, term int } // term == -1 is the main copy
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
		return nil, fmt.Errorf("transform: EliminateFin: %w", err)
	}
	o.Logger.Trace("transform: EliminateFin: split acceptance", "terms", numTerms)

	for len(worklist) > 0 {
		k := worklist[0]
		worklist = worklist[1:]
		src := ids[k]

		for _, e := range a.Graph().Out(k.state) {
			for _, d := range a.Graph().UnivDests(e) {
				if k.term == -1 {
					dst := intern(copyKey{d, -1}, &worklist)
					var tag mark.Mark
					for _, t := range terms {
						if !t.fin.IsEmpty() {
							continue // only safe to credit once committed to this term's own clone
						}
						if !t.hasInf || t.inf.IsEmpty() || t.inf.Subset(e.Marks) {
							tag = buchiMark
						}
					}
					if _, err := out.Graph().NewEdge(src, dst, e.Label, tag); err != nil {
						return nil, fmt.Errorf("transform: EliminateFin: %w", err)
					}
					if e.Src >= d {
						for ti, t := range terms {
							if t.fin.IsEmpty() {
								continue // already fully handled in main
							}
							auxDst := intern(copyKey{d, ti}, &worklist)
							if _, err := out.Graph().NewEdge(src, auxDst, e.Label, mark.Empty()); err != nil {
								return nil, fmt.Errorf("transform: EliminateFin: %w", err)
							}
						}
					}

					continue
				}

				ti := k.term
				t := terms[ti]
				if !t.fin.Intersect(e.Marks).IsEmpty() {
					continue // dropped: this clone never visits this term's Fin again
				}
				dst := intern(copyKey{d, ti}, &worklist)
				var tag mark.Mark
				if !t.hasInf || t.inf.IsEmpty() || t.inf.Subset(e.Marks) {
					tag = buchiMark
				}
				if _, err := out.Graph().NewEdge(src, dst, e.Label, tag); err != nil {
					return nil, fmt.Errorf("transform: EliminateFin: %w", err)
				}
			}
		}
	}

	return out, nil
}
