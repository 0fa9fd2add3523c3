package degen

import (
	"fmt"

	"github.com/wautomata/omega/acceptance"
	"github.com/wautomata/omega/automaton"
	"github.com/wautomata/omega/mark"
	"github.com/wautomata/omega/sccinfo"
)

// stateLevel is a degeneralized state: the source automaton's state paired
// with how far the discovered-set ordering has been scanned since the
// level last reset.
type stateLevel struct {
	state, level int
}

type sccKey struct{ scc, state int }

// Build degeneralizes a, whose acceptance must be a (possibly singleton)
// Inf node over n marks, into an equivalent Büchi automaton (single Inf
// set) whose states are pairs (s, level), level in [0, n]. See Options for
// the available heuristics and output-shape variants.
func Build(a *automaton.Automaton, opts ...Option) (*automaton.Automaton, error) {
	formula := a.Acceptance()
	if !formula.IsGeneralizedBuchi() {
		return nil, ErrNotGeneralizedBuchi
	}
	o := newOptions(opts)
	order := formula.Mark().Sets()
	n := len(order)
	acceptMark, _ := mark.New(0)

	out := automaton.New(a.Dict())
	if err := out.SetAcceptance(1, acceptance.Buchi()); err != nil {
		return nil, fmt.Errorf("degen: Build: %w", err)
	}
	if err := out.CopyAPOf(a); err != nil {
		return nil, fmt.Errorf("degen: Build: %w", err)
	}
	if !o.tba {
		// every outgoing edge of a level-n state is accepting, so the
		// construction is already state-based-compatible.
		out.SetStateBasedAcceptance(automaton.True)
	}

	var scc *sccinfo.Info
	if o.resetLevel || o.levelCache {
		scc = sccinfo.Build(a)
	}

	ids := make(map[stateLevel]int)
	firstLevel := make(map[sccKey]int)

	initLevel := 0
	if o.acceptingInitialSelfLoop && hasAcceptingSelfLoop(a, formula, a.InitialState()) {
		initLevel = n
	}
	initKey := stateLevel{a.InitialState(), initLevel}
	ids[initKey] = out.InitialState()
	if err := out.SetInitialState(ids[initKey]); err != nil {
		return nil, fmt.Errorf("degen: Build: %w", err)
	}

	worklist := []stateLevel{initKey}
	for len(worklist) > 0 {
		k := worklist[0]
		worklist = worklist[1:]
		src := ids[k]

		for _, e := range a.Graph().Out(k.state) {
			for _, d := range a.Graph().UnivDests(e) {
				if k.level == n {
					// From (s, n), next level is 0 unconditionally and the
					// produced edge is accepting, regardless of this
					// edge's own marks.
					dst := intern(out, ids, &worklist, stateLevel{d, 0}, scc, o, firstLevel)
					if _, err := out.Graph().NewEdge(src, dst, e.Label, acceptMark); err != nil {
						return nil, fmt.Errorf("degen: Build: %w", err)
					}

					continue
				}

				entry := k.level
				if o.resetLevel && scc != nil && crossesSCC(scc, k.state, d) {
					entry = 0
				}
				next := nextLevel(order, entry, e.Marks, o.skipConsecutiveHits)

				if next == n && o.tba {
					dst := intern(out, ids, &worklist, stateLevel{d, 0}, scc, o, firstLevel)
					if _, err := out.Graph().NewEdge(src, dst, e.Label, acceptMark); err != nil {
						return nil, fmt.Errorf("degen: Build: %w", err)
					}

					continue
				}

				dst := intern(out, ids, &worklist, stateLevel{d, next}, scc, o, firstLevel)
				if _, err := out.Graph().NewEdge(src, dst, e.Label, mark.Empty()); err != nil {
					return nil, fmt.Errorf("degen: Build: %w", err)
				}
			}
		}
	}

	return out, nil
}

// nextLevel computes the smallest level' >= level such that order[level']
// is not present in m, per spec.md §4.H. When skipConsecutive is false, it
// advances by at most one position per call instead of scanning through
// every consecutively-hit set.
func nextLevel(order []int, level int, m mark.Mark, skipConsecutive bool) int {
	n := len(order)
	if level >= n {
		return n
	}
	if !skipConsecutive {
		if m.Has(order[level]) {
			return level + 1
		}

		return level
	}
	l := level
	for l < n && m.Has(order[l]) {
		l++
	}

	return l
}

func hasAcceptingSelfLoop(a *automaton.Automaton, formula *acceptance.Formula, s int) bool {
	for _, e := range a.Graph().Out(s) {
		for _, d := range a.Graph().UnivDests(e) {
			if d == s && formula.Accepting(e.Marks) {
				return true
			}
		}
	}

	return false
}

func crossesSCC(scc *sccinfo.Info, src, dst int) bool {
	srcIdx, okS := scc.SCCOf(src)
	dstIdx, okD := scc.SCCOf(dst)

	return okS && okD && srcIdx != dstIdx
}

// intern looks up (or, under level caching, remaps then looks up) the
// output state for key, creating and enqueuing a fresh one on first visit.
func intern(out *automaton.Automaton, ids map[stateLevel]int, worklist *[]stateLevel, key stateLevel, scc *sccinfo.Info, o options, firstLevel map[sccKey]int) int {
	if o.levelCache && scc != nil {
		if sccIdx, ok := scc.SCCOf(key.state); ok {
			ck := sccKey{sccIdx, key.state}
			if lvl, seen := firstLevel[ck]; seen {
				key.level = lvl
			} else {
				firstLevel[ck] = key.level
			}
		}
	}
	if id, ok := ids[key]; ok {
		return id
	}
	id := out.Graph().NewState()
	ids[key] = id
	*worklist = append(*worklist, key)

	return id
}
