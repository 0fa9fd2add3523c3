package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/hashicorp/go-set/v3"
	"github.com/wautomata/omega/acceptance"
	"github.com/wautomata/omega/automaton"
	"github.com/wautomata/omega/mark"
)

// StreettToGeneralizedBuchi rewrites a's Streett-like acceptance condition
// (a conjunction of (Fin, Inf) pairs, standalone Inf leaves allowed for
// pairs with no Fin) into an equivalent generalized-Büchi automaton, one
// set per pair, via the standard pending-set breakpoint construction.
//
// Each output state pairs a source state with the set P of pair indices
// currently "owed" a witness: index i enters P when its Fin is seen on an
// edge and leaves when its Inf is seen. An edge gets generalized-Büchi tag
// i whenever index i was not owed at the edge's source (vacuously
// satisfied) or is owed and gets discharged by this very edge. A standalone
// Inf (no paired Fin) starts owed at the initial state and never leaves P,
// since no Fin exists to re-arm it, so its tag is set only on the edges that
// witness it — per spec.md §4.I's "standalone Inf sets remain permanently
// pending" note.
//
// A pair's Inf side is checked as a single subset test against one edge's
// marks, so a generalized (non-singleton) Inf is only discharged when every
// one of its bits is witnessed on the very same transition, not spread
// across several; see DESIGN.md.
//
// Per spec.md §6's Streett-to-generalized-Büchi minimum pair threshold
// (OMEGA_STREETT_MIN_PAIRS, default 3, overridable with WithMinPairs): when
// the formula has fewer pairs than the threshold, the conversion is skipped
// and a is returned unchanged, the same "already satisfies, hand the input
// back" convention Determinize uses for an already-deterministic input.
func StreettToGeneralizedBuchi(a *automaton.Automaton, opts ...Option) (*automaton.Automaton, error) {
	o := newOptions(opts)
	formula := a.Acceptance()
	pairs, ok := extractStreettPairs(formula)
	if !ok {
		return nil, ErrNotStreettLike
	}
	n := len(pairs)
	if n < o.MinPairs {
		o.Logger.Trace("transform: StreettToGeneralizedBuchi: below minimum pair threshold, skipping", "pairs", n, "threshold", o.MinPairs)

		return a, nil
	}

	out := automaton.New(a.Dict())
	gb, err := acceptance.GeneralizedBuchi(n)
	if err != nil {
		return nil, fmt.Errorf("transform: StreettToGeneralizedBuchi: %w", err)
	}
	if err := out.SetAcceptance(n, gb); err != nil {
		return nil, fmt.Errorf("transform: StreettToGeneralizedBuchi: %w", err)
	}
	if err := out.CopyAPOf(a); err != nil {
		return nil, fmt.Errorf("transform: StreettToGeneralizedBuchi: %w", err)
	}

	initP := set.New[int](n)
	for i, p := range pairs {
		if !p.hasFin {
			initP.Insert(i)
		}
	}

	ids := make(map[string]int)
	pendingOf := make(map[string]*set.Set[int])
	initKey := pendingKey(a.InitialState(), initP)
	ids[initKey] = out.InitialState()
	pendingOf[initKey] = initP
	if err := out.SetInitialState(ids[initKey]); err != nil {
		return nil, fmt.Errorf("transform: StreettToGeneralizedBuchi: %w", err)
	}

	type item struct {
		s   int
		key string
	}
	worklist := []item{{a.InitialState(), initKey}}

	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]
		src := ids[cur.key]
		p := pendingOf[cur.key]

		for _, e := range a.Graph().Out(cur.s) {
			for _, d := range a.Graph().UnivDests(e) {
				next := p.Copy()
				for i, pr := range pairs {
					if pr.hasFin && pr.fin.Subset(e.Marks) {
						next.Insert(i)
					}
				}
				var tag mark.Mark
				for i, pr := range pairs {
					discharged := pr.inf.Subset(e.Marks)
					if !p.Contains(i) || discharged {
						m, _ := mark.New(i)
						tag = tag.Union(m)
					}
					// A standalone Inf (no paired Fin) has nothing to
					// re-arm it once discharged, so it must stay pending
					// forever per spec.md §4.I rather than leave the
					// pending set and vacuously satisfy every edge after.
					if discharged && pr.hasFin {
						next.Remove(i)
					}
				}

				nextKey := pendingKey(d, next)
				dst, seen := ids[nextKey]
				if !seen {
					dst = out.Graph().NewState()
					ids[nextKey] = dst
					pendingOf[nextKey] = next
					worklist = append(worklist, item{d, nextKey})
				}

				if _, err := out.Graph().NewEdge(src, dst, e.Label, tag); err != nil {
					return nil, fmt.Errorf("transform: StreettToGeneralizedBuchi: %w", err)
				}
			}
		}
	}

	return out, nil
}

// pendingKey canonicalizes (state, pending-set) into a map key; the pending
// set's members are sorted since set.Set[int].Slice order is unspecified.
func pendingKey(s int, p *set.Set[int]) string {
	items := p.Slice()
	sort.Ints(items)
	var b strings.Builder
	b.WriteString(strconv.Itoa(s))
	b.WriteByte(':')
	for _, i := range items {
		b.WriteString(strconv.Itoa(i))
		b.WriteByte(',')
	}

	return b.String()
}
